package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"livestock_market/internal/model"

	"github.com/jackc/pgx/v5"
)

// AnimalRepository defines operations for animal data
type AnimalRepository interface {
	Create(ctx context.Context, animal *model.Animal) error
	FindByID(ctx context.Context, id string) (*model.Animal, error)
	Find(ctx context.Context, filters model.AnimalFilters, limit, offset int) ([]model.Animal, error)
	Count(ctx context.Context, filters model.AnimalFilters) (int64, error)
	FindIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
	Update(ctx context.Context, animal *model.Animal) error
	Delete(ctx context.Context, id string) error
}

type animalRepository struct {
	db PgxPool
}

// NewAnimalRepository creates a new AnimalRepository
func NewAnimalRepository(db PgxPool) AnimalRepository {
	return &animalRepository{db: db}
}

const animalColumns = `id, owner_id, name, species, breed, dob, weight, location, photos, health_score, vaccination, status, created_at, updated_at`

// Create inserts a new animal into the database
func (r *animalRepository) Create(ctx context.Context, a *model.Animal) error {
	sql := `INSERT INTO animals (id, owner_id, name, species, breed, dob, weight, location, photos, health_score, vaccination, status, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, sql,
		a.ID, a.OwnerID, a.Name, a.Species, a.Breed, a.DOB, a.Weight, a.Location,
		a.Photos, a.HealthScore, a.Vaccination, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create animal: %w", err)
	}
	return nil
}

// FindByID retrieves an animal by its ID
func (r *animalRepository) FindByID(ctx context.Context, id string) (*model.Animal, error) {
	a := &model.Animal{}
	sql := `SELECT ` + animalColumns + ` FROM animals WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&a.ID, &a.OwnerID, &a.Name, &a.Species, &a.Breed, &a.DOB, &a.Weight, &a.Location,
		&a.Photos, &a.HealthScore, &a.Vaccination, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find animal by ID: %w", err)
	}
	return a, nil
}

// buildAnimalFilter renders the optional filter fields as an AND-combined
// WHERE clause, starting at the given placeholder index.
func buildAnimalFilter(filters model.AnimalFilters, argCount int) (string, []interface{}) {
	var conditions []string
	args := []interface{}{}

	if filters.OwnerID != nil && *filters.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", argCount))
		args = append(args, *filters.OwnerID)
		argCount++
	}
	if filters.Species != nil && *filters.Species != "" {
		conditions = append(conditions, fmt.Sprintf("species = $%d", argCount))
		args = append(args, *filters.Species)
		argCount++
	}
	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filters.Status)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// Find retrieves a page of animals matching the optional filters,
// newest first
func (r *animalRepository) Find(ctx context.Context, filters model.AnimalFilters, limit, offset int) ([]model.Animal, error) {
	where, args := buildAnimalFilter(filters, 1)
	sql := fmt.Sprintf(`SELECT %s FROM animals%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		animalColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query animals: %w", err)
	}
	defer rows.Close()

	var animals []model.Animal
	for rows.Next() {
		var a model.Animal
		if err := rows.Scan(
			&a.ID, &a.OwnerID, &a.Name, &a.Species, &a.Breed, &a.DOB, &a.Weight, &a.Location,
			&a.Photos, &a.HealthScore, &a.Vaccination, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan animal row: %w", err)
		}
		animals = append(animals, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating animal rows: %w", err)
	}
	return animals, nil
}

// Count returns the number of animals matching the optional filters
func (r *animalRepository) Count(ctx context.Context, filters model.AnimalFilters) (int64, error) {
	where, args := buildAnimalFilter(filters, 1)
	sql := "SELECT COUNT(*) FROM animals" + where

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count animals: %w", err)
	}
	return total, nil
}

// FindIDsByOwner returns the ids of all animals owned by the given user
func (r *animalRepository) FindIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM animals WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query animal ids by owner: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan animal id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating animal ids: %w", err)
	}
	return ids, nil
}

// Update modifies an existing animal
func (r *animalRepository) Update(ctx context.Context, a *model.Animal) error {
	sql := `UPDATE animals
            SET name = $1, species = $2, breed = $3, weight = $4, location = $5,
                photos = $6, health_score = $7, vaccination = $8, status = $9, updated_at = NOW()
            WHERE id = $10 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql,
		a.Name, a.Species, a.Breed, a.Weight, a.Location,
		a.Photos, a.HealthScore, a.Vaccination, a.Status, a.ID,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("animal not found for update")
		}
		return fmt.Errorf("failed to update animal: %w", err)
	}
	return nil
}

// Delete removes an animal from the database
func (r *animalRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete animal: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("animal not found for deletion")
	}
	return nil
}
