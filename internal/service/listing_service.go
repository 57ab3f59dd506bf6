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

// ListingService defines operations for marketplace listings
type ListingService interface {
	CreateListing(ctx context.Context, sellerID string, req model.CreateListingRequest) (*model.Listing, error)
	GetListing(ctx context.Context, listingID string) (*model.ListingView, error)
	ListListings(ctx context.Context, filters model.ListingFilters, page, size int) (*model.ListingListResponse, error)
	ListMyListings(ctx context.Context, seller *model.User, page, size int) (*model.ListingListResponse, error)
	UpdateListing(ctx context.Context, listingID, requesterID string, req model.UpdateListingRequest) (*model.Listing, error)
	DeleteListing(ctx context.Context, listingID, requesterID string) error
}

type listingService struct {
	listings repository.ListingRepository
	animals  repository.AnimalRepository
	users    repository.UserRepository
}

// NewListingService creates a new ListingService
func NewListingService(listings repository.ListingRepository, animals repository.AnimalRepository, users repository.UserRepository) ListingService {
	return &listingService{listings: listings, animals: animals, users: users}
}

// CreateListing publishes a listing for an animal the seller owns. The animal
// must exist (checked before ownership) and belong to the seller.
func (s *listingService) CreateListing(ctx context.Context, sellerID string, req model.CreateListingRequest) (*model.Listing, error) {
	if _, err := uuid.Parse(req.AnimalID); err != nil {
		return nil, errs.ErrInvalidID
	}

	animal, err := s.animals.FindByID(ctx, req.AnimalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find animal for listing: %w", err)
	}
	if animal == nil {
		return nil, errs.ErrNotFound
	}
	if animal.OwnerID != sellerID {
		return nil, errs.ErrForbidden
	}

	now := time.Now()
	listing := &model.Listing{
		ID:          uuid.NewString(),
		AnimalID:    req.AnimalID,
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Status:      model.ListingStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing in repo: %w", err)
	}
	return listing, nil
}

// enrich joins a listing with its animal and seller records. Each lookup is
// independent: a dangling or malformed reference leaves the corresponding
// display fields nil instead of failing the request.
func (s *listingService) enrich(ctx context.Context, l model.Listing) (*model.ListingView, error) {
	view := &model.ListingView{Listing: l}

	if _, err := uuid.Parse(l.AnimalID); err == nil {
		animal, err := s.animals.FindByID(ctx, l.AnimalID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve listing animal: %w", err)
		}
		if animal != nil {
			view.AnimalName = &animal.Name
			view.AnimalHealthScore = &animal.HealthScore
		}
	}

	seller, err := s.users.FindByID(ctx, l.SellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve listing seller: %w", err)
	}
	if seller != nil {
		view.SellerName = &seller.Name
	}

	return view, nil
}

// GetListing retrieves one listing with enrichment and bumps its view counter
// exactly once.
func (s *listingService) GetListing(ctx context.Context, listingID string) (*model.ListingView, error) {
	if _, err := uuid.Parse(listingID); err != nil {
		return nil, errs.ErrInvalidID
	}

	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to find listing by ID: %w", err)
	}
	if listing == nil {
		return nil, errs.ErrNotFound
	}

	if err := s.listings.IncrementViews(ctx, listingID); err != nil {
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}

	return s.enrich(ctx, *listing)
}

// ListListings retrieves a page of enriched listings. A listing whose stored
// animal id does not parse is dropped from the page; a dangling reference is
// kept with nil enrichment fields.
func (s *listingService) ListListings(ctx context.Context, filters model.ListingFilters, page, size int) (*model.ListingListResponse, error) {
	total, err := s.listings.Count(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	listings, err := s.listings.Find(ctx, filters, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	views := make([]model.ListingView, 0, len(listings))
	for _, l := range listings {
		if _, err := uuid.Parse(l.AnimalID); err != nil {
			// Data-integrity tolerance: exclude rows with unparseable refs.
			continue
		}
		view, err := s.enrich(ctx, l)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return &model.ListingListResponse{Listings: views, Total: total, Page: page, Size: size}, nil
}

// ListMyListings retrieves a page of the seller's own listings
func (s *listingService) ListMyListings(ctx context.Context, seller *model.User, page, size int) (*model.ListingListResponse, error) {
	return s.ListListings(ctx, model.ListingFilters{SellerID: &seller.ID}, page, size)
}

// UpdateListing applies a partial update. The listing must exist (checked
// before ownership) and belong to the requester.
func (s *listingService) UpdateListing(ctx context.Context, listingID, requesterID string, req model.UpdateListingRequest) (*model.Listing, error) {
	if _, err := uuid.Parse(listingID); err != nil {
		return nil, errs.ErrInvalidID
	}

	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to find listing for update: %w", err)
	}
	if listing == nil {
		return nil, errs.ErrNotFound
	}
	if listing.SellerID != requesterID {
		return nil, errs.ErrForbidden
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.Status != nil {
		listing.Status = *req.Status
	}

	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to update listing in repo: %w", err)
	}
	return listing, nil
}

// DeleteListing removes a listing. The listing must exist (checked before
// ownership) and belong to the requester.
func (s *listingService) DeleteListing(ctx context.Context, listingID, requesterID string) error {
	if _, err := uuid.Parse(listingID); err != nil {
		return errs.ErrInvalidID
	}

	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return fmt.Errorf("failed to find listing for deletion: %w", err)
	}
	if listing == nil {
		return errs.ErrNotFound
	}
	if listing.SellerID != requesterID {
		return errs.ErrForbidden
	}

	if err := s.listings.Delete(ctx, listingID); err != nil {
		return fmt.Errorf("failed to delete listing in repo: %w", err)
	}
	return nil
}
