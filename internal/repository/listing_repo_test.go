package repository

import (
	"context"
	"testing"
	"time"

	"livestock_market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func testListing() *model.Listing {
	now := time.Now()
	return &model.Listing{
		ID:          uuid.NewString(),
		AnimalID:    uuid.NewString(),
		SellerID:    uuid.NewString(),
		Title:       "Holstein cow",
		Description: "Healthy dairy cow",
		Price:       1500,
		Location:    "Springfield",
		Status:      model.ListingStatusActive,
		Views:       3,
		Offers:      1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func listingRows(l *model.Listing) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "animal_id", "seller_id", "title", "description", "price",
		"location", "status", "views", "offers", "created_at", "updated_at",
	}).AddRow(
		l.ID, l.AnimalID, l.SellerID, l.Title, l.Description, l.Price,
		l.Location, l.Status, l.Views, l.Offers, l.CreatedAt, l.UpdatedAt,
	)
}

func TestListingRepo_FindByID(t *testing.T) {
	mock := newPool(t)
	defer mock.Close()
	r := NewListingRepository(mock)
	ctx := context.Background()
	l := testListing()

	mock.ExpectQuery(`SELECT (.+) FROM listings WHERE id = \$1`).
		WithArgs(l.ID).
		WillReturnRows(listingRows(l))
	got, err := r.FindByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, l.ID, got.ID)
	require.Equal(t, l.AnimalID, got.AnimalID)

	mock.ExpectQuery(`SELECT (.+) FROM listings WHERE id = \$1`).
		WithArgs(l.ID).
		WillReturnError(pgx.ErrNoRows)
	got, err = r.FindByID(ctx, l.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_Find_Filtered(t *testing.T) {
	mock := newPool(t)
	defer mock.Close()
	r := NewListingRepository(mock)
	ctx := context.Background()
	l := testListing()

	status := model.ListingStatusActive
	minPrice := 1000.0
	filters := model.ListingFilters{Status: &status, MinPrice: &minPrice}

	mock.ExpectQuery(`SELECT (.+) FROM listings WHERE status = \$1 AND price >= \$2 ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(status, minPrice, 10, 0).
		WillReturnRows(listingRows(l))

	listings, err := r.Find(ctx, filters, 10, 0)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, l.ID, listings[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_Find_NoFilters(t *testing.T) {
	mock := newPool(t)
	defer mock.Close()
	r := NewListingRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM listings ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 20).
		WillReturnRows(listingRows(testListing()))

	listings, err := r.Find(ctx, model.ListingFilters{}, 20, 20)
	require.NoError(t, err)
	require.Len(t, listings, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_Count(t *testing.T) {
	mock := newPool(t)
	defer mock.Close()
	r := NewListingRepository(mock)
	ctx := context.Background()

	sellerID := uuid.NewString()
	filters := model.ListingFilters{SellerID: &sellerID}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM listings WHERE seller_id = \$1`).
		WithArgs(sellerID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	total, err := r.Count(ctx, filters)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_IncrementViews(t *testing.T) {
	mock := newPool(t)
	defer mock.Close()
	r := NewListingRepository(mock)
	ctx := context.Background()
	id := uuid.NewString()

	mock.ExpectExec(`UPDATE listings SET views = views \+ 1 WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.IncrementViews(ctx, id))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_Delete(t *testing.T) {
	mock := newPool(t)
	defer mock.Close()
	r := NewListingRepository(mock)
	ctx := context.Background()
	id := uuid.NewString()

	mock.ExpectExec(`DELETE FROM listings WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, id))

	mock.ExpectExec(`DELETE FROM listings WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.Error(t, r.Delete(ctx, id))

	require.NoError(t, mock.ExpectationsWereMet())
}
