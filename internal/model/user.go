package model

import "time"

const (
	RoleFarmer = "farmer"
	RoleBuyer  = "buyer"
	RoleVet    = "vet"
	RoleAdmin  = "admin"
)

const (
	KYCPending  = "pending"
	KYCVerified = "verified"
	KYCRejected = "rejected"
)

// User represents a platform account. Role is fixed at registration and never
// changes for the lifetime of the account.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Role              string    `json:"role"`
	Location          *string   `json:"location,omitempty"`
	PasswordHash      string    `json:"-"` // Do not expose password hash in JSON responses
	KYCStatus         string    `json:"kyc_status"`
	Rating            float64   `json:"rating"`
	TotalTransactions int       `json:"total_transactions"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RegisterRequest is used for creating a new account
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Phone    string  `json:"phone" binding:"required,min=10,max=15"`
	Role     string  `json:"role" binding:"required,oneof=farmer buyer vet admin"`
	Location *string `json:"location"`
}

// LoginRequest is used for authenticating an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
