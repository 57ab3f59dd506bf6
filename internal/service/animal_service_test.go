package service

import (
	"context"
	"testing"
	"time"

	"livestock_market/internal/errs"
	"livestock_market/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAnimalReq() model.CreateAnimalRequest {
	return model.CreateAnimalRequest{
		Name:     "Bella",
		Species:  "cow",
		Breed:    "holstein",
		DOB:      time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		Weight:   420,
		Location: "Springfield",
	}
}

func TestAnimalService_CreateAnimal(t *testing.T) {
	repo := newFakeAnimalRepo()
	svc := NewAnimalService(repo)
	ctx := context.Background()
	ownerID := uuid.NewString()

	animal, err := svc.CreateAnimal(ctx, ownerID, createAnimalReq())
	require.NoError(t, err)

	assert.Equal(t, ownerID, animal.OwnerID)
	assert.Equal(t, model.AnimalStatusActive, animal.Status)
	assert.Equal(t, model.DefaultHealthScore, animal.HealthScore)
	assert.NotEmpty(t, animal.ID)
	assert.NotNil(t, animal.Photos)
}

func TestAnimalService_GetAnimal_InvalidID(t *testing.T) {
	svc := NewAnimalService(newFakeAnimalRepo())

	_, err := svc.GetAnimal(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestAnimalService_GetAnimal_NotFound(t *testing.T) {
	svc := NewAnimalService(newFakeAnimalRepo())

	_, err := svc.GetAnimal(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAnimalService_UpdateAnimal_OwnerPasses(t *testing.T) {
	repo := newFakeAnimalRepo()
	svc := NewAnimalService(repo)
	ctx := context.Background()
	ownerID := uuid.NewString()

	animal, err := svc.CreateAnimal(ctx, ownerID, createAnimalReq())
	require.NoError(t, err)
	createdUpdatedAt := animal.UpdatedAt

	newWeight := 450.0
	updated, err := svc.UpdateAnimal(ctx, animal.ID, ownerID, model.UpdateAnimalRequest{Weight: &newWeight})
	require.NoError(t, err)
	assert.Equal(t, newWeight, updated.Weight)
	assert.True(t, updated.UpdatedAt.After(createdUpdatedAt) || updated.UpdatedAt.Equal(createdUpdatedAt))
	assert.Equal(t, "Bella", updated.Name) // untouched fields survive partial update
}

func TestAnimalService_UpdateAnimal_NonOwnerForbidden(t *testing.T) {
	repo := newFakeAnimalRepo()
	svc := NewAnimalService(repo)
	ctx := context.Background()

	animal, err := svc.CreateAnimal(ctx, uuid.NewString(), createAnimalReq())
	require.NoError(t, err)

	newWeight := 450.0
	_, err = svc.UpdateAnimal(ctx, animal.ID, uuid.NewString(), model.UpdateAnimalRequest{Weight: &newWeight})
	assert.ErrorIs(t, err, errs.ErrForbidden)

	// The record must be untouched.
	stored, _ := repo.FindByID(ctx, animal.ID)
	assert.Equal(t, 420.0, stored.Weight)
}

func TestAnimalService_UpdateAnimal_AbsentIsNotFoundNotForbidden(t *testing.T) {
	svc := NewAnimalService(newFakeAnimalRepo())

	newWeight := 450.0
	_, err := svc.UpdateAnimal(context.Background(), uuid.NewString(), uuid.NewString(), model.UpdateAnimalRequest{Weight: &newWeight})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NotErrorIs(t, err, errs.ErrForbidden)
}

func TestAnimalService_DeleteAnimal(t *testing.T) {
	repo := newFakeAnimalRepo()
	svc := NewAnimalService(repo)
	ctx := context.Background()
	ownerID := uuid.NewString()

	animal, err := svc.CreateAnimal(ctx, ownerID, createAnimalReq())
	require.NoError(t, err)

	// A stranger cannot delete it.
	err = svc.DeleteAnimal(ctx, animal.ID, uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrForbidden)

	// The owner can.
	require.NoError(t, svc.DeleteAnimal(ctx, animal.ID, ownerID))

	// A second delete reports not found.
	err = svc.DeleteAnimal(ctx, animal.ID, ownerID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAnimalService_ListMyAnimals(t *testing.T) {
	repo := newFakeAnimalRepo()
	svc := NewAnimalService(repo)
	ctx := context.Background()
	ownerID := uuid.NewString()

	_, err := svc.CreateAnimal(ctx, ownerID, createAnimalReq())
	require.NoError(t, err)
	_, err = svc.CreateAnimal(ctx, uuid.NewString(), createAnimalReq())
	require.NoError(t, err)

	resp, err := svc.ListMyAnimals(ctx, ownerID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Animals, 1)
	assert.Equal(t, ownerID, resp.Animals[0].OwnerID)
}
