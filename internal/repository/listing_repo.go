package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"livestock_market/internal/model"

	"github.com/jackc/pgx/v5"
)

// ListingRepository defines operations for marketplace listing data
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	FindByID(ctx context.Context, id string) (*model.Listing, error)
	Find(ctx context.Context, filters model.ListingFilters, limit, offset int) ([]model.Listing, error)
	Count(ctx context.Context, filters model.ListingFilters) (int64, error)
	Update(ctx context.Context, listing *model.Listing) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

type listingRepository struct {
	db PgxPool
}

// NewListingRepository creates a new ListingRepository
func NewListingRepository(db PgxPool) ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, animal_id, seller_id, title, description, price, location, status, views, offers, created_at, updated_at`

// Create inserts a new listing into the database
func (r *listingRepository) Create(ctx context.Context, l *model.Listing) error {
	sql := `INSERT INTO listings (id, animal_id, seller_id, title, description, price, location, status, views, offers, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, sql,
		l.ID, l.AnimalID, l.SellerID, l.Title, l.Description, l.Price, l.Location,
		l.Status, l.Views, l.Offers, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// FindByID retrieves a listing by its ID
func (r *listingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	l := &model.Listing{}
	sql := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&l.ID, &l.AnimalID, &l.SellerID, &l.Title, &l.Description, &l.Price, &l.Location,
		&l.Status, &l.Views, &l.Offers, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find listing by ID: %w", err)
	}
	return l, nil
}

// buildListingFilter renders the optional filter fields as an AND-combined
// WHERE clause, starting at the given placeholder index.
func buildListingFilter(filters model.ListingFilters, argCount int) (string, []interface{}) {
	var conditions []string
	args := []interface{}{}

	if filters.SellerID != nil && *filters.SellerID != "" {
		conditions = append(conditions, fmt.Sprintf("seller_id = $%d", argCount))
		args = append(args, *filters.SellerID)
		argCount++
	}
	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filters.Status)
		argCount++
	}
	if filters.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", argCount))
		args = append(args, *filters.MinPrice)
		argCount++
	}
	if filters.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", argCount))
		args = append(args, *filters.MaxPrice)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// Find retrieves a page of listings matching the optional filters,
// newest first
func (r *listingRepository) Find(ctx context.Context, filters model.ListingFilters, limit, offset int) ([]model.Listing, error) {
	where, args := buildListingFilter(filters, 1)
	sql := fmt.Sprintf(`SELECT %s FROM listings%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		listingColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []model.Listing
	for rows.Next() {
		var l model.Listing
		if err := rows.Scan(
			&l.ID, &l.AnimalID, &l.SellerID, &l.Title, &l.Description, &l.Price, &l.Location,
			&l.Status, &l.Views, &l.Offers, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		listings = append(listings, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing rows: %w", err)
	}
	return listings, nil
}

// Count returns the number of listings matching the optional filters
func (r *listingRepository) Count(ctx context.Context, filters model.ListingFilters) (int64, error) {
	where, args := buildListingFilter(filters, 1)
	sql := "SELECT COUNT(*) FROM listings" + where

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return total, nil
}

// Update modifies an existing listing
func (r *listingRepository) Update(ctx context.Context, l *model.Listing) error {
	sql := `UPDATE listings
            SET title = $1, description = $2, price = $3, location = $4, status = $5, updated_at = NOW()
            WHERE id = $6 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql,
		l.Title, l.Description, l.Price, l.Location, l.Status, l.ID,
	).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("listing not found for update")
		}
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

// Delete removes a listing from the database
func (r *listingRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("listing not found for deletion")
	}
	return nil
}

// IncrementViews bumps the view counter by exactly one
func (r *listingRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE listings SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment listing views: %w", err)
	}
	return nil
}
