package repository

import (
	"context"
	"errors"
	"fmt"

	"livestock_market/internal/errs"
	"livestock_market/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type userRepository struct {
	db PgxPool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db PgxPool) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, phone, role, location, password_hash, kyc_status, rating, total_transactions, is_active, created_at, updated_at`

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (id, email, name, phone, role, location, password_hash, kyc_status, rating, total_transactions, is_active, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, sql,
		user.ID, user.Email, user.Name, user.Phone, user.Role, user.Location,
		user.PasswordHash, user.KYCStatus, user.Rating, user.TotalTransactions,
		user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by their (case-normalized) email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, sql, email), "email")
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, sql, id), "ID")
}

func (r *userRepository) scanUser(row pgx.Row, by string) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.Phone, &user.Role, &user.Location,
		&user.PasswordHash, &user.KYCStatus, &user.Rating, &user.TotalTransactions,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error for this contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", by, err)
	}
	return user, nil
}
