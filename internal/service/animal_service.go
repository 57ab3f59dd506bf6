package service

import (
	"context"
	"fmt"
	"time"

	"livestock_market/internal/errs"
	"livestock_market/internal/model"
	"livestock_market/internal/repository"

	"github.com/google/uuid"
)

// AnimalService defines operations for animal records
type AnimalService interface {
	CreateAnimal(ctx context.Context, ownerID string, req model.CreateAnimalRequest) (*model.Animal, error)
	GetAnimal(ctx context.Context, animalID string) (*model.Animal, error)
	ListAnimals(ctx context.Context, filters model.AnimalFilters, page, size int) (*model.AnimalListResponse, error)
	ListMyAnimals(ctx context.Context, ownerID string, page, size int) (*model.AnimalListResponse, error)
	UpdateAnimal(ctx context.Context, animalID, requesterID string, req model.UpdateAnimalRequest) (*model.Animal, error)
	DeleteAnimal(ctx context.Context, animalID, requesterID string) error
}

type animalService struct {
	repo repository.AnimalRepository
}

// NewAnimalService creates a new AnimalService
func NewAnimalService(repo repository.AnimalRepository) AnimalService {
	return &animalService{repo: repo}
}

// CreateAnimal registers a new animal owned by the calling farmer
func (s *animalService) CreateAnimal(ctx context.Context, ownerID string, req model.CreateAnimalRequest) (*model.Animal, error) {
	now := time.Now()
	animal := &model.Animal{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		DOB:         req.DOB,
		Weight:      req.Weight,
		Location:    req.Location,
		Photos:      req.Photos,
		HealthScore: model.DefaultHealthScore,
		Vaccination: []string{},
		Status:      model.AnimalStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if animal.Photos == nil {
		animal.Photos = []string{}
	}

	if err := s.repo.Create(ctx, animal); err != nil {
		return nil, fmt.Errorf("failed to create animal in repo: %w", err)
	}
	return animal, nil
}

// GetAnimal retrieves a single animal by id
func (s *animalService) GetAnimal(ctx context.Context, animalID string) (*model.Animal, error) {
	if _, err := uuid.Parse(animalID); err != nil {
		return nil, errs.ErrInvalidID
	}
	animal, err := s.repo.FindByID(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find animal by ID: %w", err)
	}
	if animal == nil {
		return nil, errs.ErrNotFound
	}
	return animal, nil
}

// ListAnimals retrieves a page of animals matching the optional filters
func (s *animalService) ListAnimals(ctx context.Context, filters model.AnimalFilters, page, size int) (*model.AnimalListResponse, error) {
	total, err := s.repo.Count(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to count animals: %w", err)
	}

	animals, err := s.repo.Find(ctx, filters, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	if animals == nil {
		animals = []model.Animal{}
	}

	return &model.AnimalListResponse{Animals: animals, Total: total, Page: page, Size: size}, nil
}

// ListMyAnimals retrieves a page of the caller's own animals
func (s *animalService) ListMyAnimals(ctx context.Context, ownerID string, page, size int) (*model.AnimalListResponse, error) {
	return s.ListAnimals(ctx, model.AnimalFilters{OwnerID: &ownerID}, page, size)
}

// UpdateAnimal applies a partial update. The animal must exist (checked
// before ownership) and belong to the requester.
func (s *animalService) UpdateAnimal(ctx context.Context, animalID, requesterID string, req model.UpdateAnimalRequest) (*model.Animal, error) {
	if _, err := uuid.Parse(animalID); err != nil {
		return nil, errs.ErrInvalidID
	}

	animal, err := s.repo.FindByID(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find animal for update: %w", err)
	}
	if animal == nil {
		return nil, errs.ErrNotFound
	}
	if animal.OwnerID != requesterID {
		return nil, errs.ErrForbidden
	}

	if req.Name != nil {
		animal.Name = *req.Name
	}
	if req.Species != nil {
		animal.Species = *req.Species
	}
	if req.Breed != nil {
		animal.Breed = *req.Breed
	}
	if req.Weight != nil {
		animal.Weight = *req.Weight
	}
	if req.Location != nil {
		animal.Location = *req.Location
	}
	if req.Status != nil {
		animal.Status = *req.Status
	}
	if req.HealthScore != nil {
		animal.HealthScore = *req.HealthScore
	}
	if req.Vaccination != nil {
		animal.Vaccination = *req.Vaccination
	}

	if err := s.repo.Update(ctx, animal); err != nil {
		return nil, fmt.Errorf("failed to update animal in repo: %w", err)
	}
	return animal, nil
}

// DeleteAnimal removes an animal. The animal must exist (checked before
// ownership) and belong to the requester.
func (s *animalService) DeleteAnimal(ctx context.Context, animalID, requesterID string) error {
	if _, err := uuid.Parse(animalID); err != nil {
		return errs.ErrInvalidID
	}

	animal, err := s.repo.FindByID(ctx, animalID)
	if err != nil {
		return fmt.Errorf("failed to find animal for deletion: %w", err)
	}
	if animal == nil {
		return errs.ErrNotFound
	}
	if animal.OwnerID != requesterID {
		return errs.ErrForbidden
	}

	if err := s.repo.Delete(ctx, animalID); err != nil {
		return fmt.Errorf("failed to delete animal in repo: %w", err)
	}
	return nil
}
