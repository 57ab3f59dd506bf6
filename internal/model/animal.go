package model

import "time"

const (
	AnimalStatusActive   = "active"
	AnimalStatusInactive = "inactive"
	AnimalStatusSold     = "sold"
	AnimalStatusDeceased = "deceased"
)

// DefaultHealthScore is assigned to animals registered without telemetry history.
const DefaultHealthScore = 80.0

// Animal represents a registered animal owned by exactly one farmer.
// OwnerID is set once at creation and never transferred.
type Animal struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	DOB         time.Time `json:"dob"`
	Weight      float64   `json:"weight"`
	Location    string    `json:"location"`
	Photos      []string  `json:"photos"`
	HealthScore float64   `json:"health_score"`
	Vaccination []string  `json:"vaccination"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateAnimalRequest is used for registering a new animal
type CreateAnimalRequest struct {
	Name     string    `json:"name" binding:"required,min=1,max=100"`
	Species  string    `json:"species" binding:"required,min=1,max=50"`
	Breed    string    `json:"breed" binding:"required,min=1,max=50"`
	DOB      time.Time `json:"dob" binding:"required"`
	Weight   float64   `json:"weight" binding:"required,gt=0"`
	Location string    `json:"location" binding:"required,min=1"`
	Photos   []string  `json:"photos"`
}

type UpdateAnimalRequest struct {
	Name        *string   `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Species     *string   `json:"species,omitempty" binding:"omitempty,min=1,max=50"`
	Breed       *string   `json:"breed,omitempty" binding:"omitempty,min=1,max=50"`
	Weight      *float64  `json:"weight,omitempty" binding:"omitempty,gt=0"`
	Location    *string   `json:"location,omitempty" binding:"omitempty,min=1"`
	Status      *string   `json:"status,omitempty" binding:"omitempty,oneof=active inactive sold deceased"`
	HealthScore *float64  `json:"health_score,omitempty" binding:"omitempty,gte=0,lte=100"`
	Vaccination *[]string `json:"vaccination,omitempty"`
}

// AnimalFilters contains optional filter parameters for animal queries.
// Set fields combine with implicit AND.
type AnimalFilters struct {
	OwnerID *string
	Species *string
	Status  *string
}

// AnimalListResponse is a paginated page of animals
type AnimalListResponse struct {
	Animals []Animal `json:"animals"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	Size    int      `json:"size"`
}
