package model

import "time"

const (
	ListingStatusActive    = "active"
	ListingStatusSold      = "sold"
	ListingStatusExpired   = "expired"
	ListingStatusCancelled = "cancelled"
)

// Listing represents a marketplace offer for a single animal. SellerID is the
// creating farmer and never changes. AnimalID is kept as an opaque string so
// that listings survive deletion of the animal they reference.
type Listing struct {
	ID          string    `json:"id"`
	AnimalID    string    `json:"animal_id"`
	SellerID    string    `json:"seller_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Views       int       `json:"views"`
	Offers      int       `json:"offers"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListingView is a listing joined with best-effort seller and animal details.
// The enrichment fields stay nil when the reference is dangling.
type ListingView struct {
	Listing
	SellerName        *string  `json:"seller_name"`
	AnimalName        *string  `json:"animal_name"`
	AnimalHealthScore *float64 `json:"animal_health_score"`
}

// CreateListingRequest is used for publishing a new listing
type CreateListingRequest struct {
	AnimalID    string  `json:"animal_id" binding:"required"`
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"required,min=10,max=1000"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Location    string  `json:"location" binding:"required,min=1"`
}

type UpdateListingRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=10,max=1000"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Location    *string  `json:"location,omitempty" binding:"omitempty,min=1"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=active sold expired cancelled"`
}

// ListingFilters contains optional filter parameters for marketplace queries.
// Set fields combine with implicit AND.
type ListingFilters struct {
	SellerID *string
	Status   *string
	MinPrice *float64
	MaxPrice *float64
}

// ListingListResponse is a paginated page of enriched listings
type ListingListResponse struct {
	Listings []ListingView `json:"listings"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	Size     int           `json:"size"`
}
