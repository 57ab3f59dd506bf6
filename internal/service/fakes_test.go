package service

import (
	"context"
	"strings"
	"time"

	"livestock_market/internal/errs"
	"livestock_market/internal/model"
	"livestock_market/internal/repository"
)

// In-memory fakes for the repository interfaces, shared by the service tests.

type fakeUserRepo struct {
	byID map[string]*model.User

	createErr error
	findErr   error
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return errs.ErrEmailTaken
		}
	}
	cpy := *u
	f.byID[u.ID] = &cpy
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.byID {
		if u.Email == strings.ToLower(email) {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cpy := *u
	return &cpy, nil
}

type fakeAnimalRepo struct {
	byID map[string]*model.Animal
}

var _ repository.AnimalRepository = (*fakeAnimalRepo)(nil)

func newFakeAnimalRepo() *fakeAnimalRepo {
	return &fakeAnimalRepo{byID: map[string]*model.Animal{}}
}

func (f *fakeAnimalRepo) Create(_ context.Context, a *model.Animal) error {
	cpy := *a
	f.byID[a.ID] = &cpy
	return nil
}

func (f *fakeAnimalRepo) FindByID(_ context.Context, id string) (*model.Animal, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cpy := *a
	return &cpy, nil
}

func (f *fakeAnimalRepo) matches(a *model.Animal, filters model.AnimalFilters) bool {
	if filters.OwnerID != nil && a.OwnerID != *filters.OwnerID {
		return false
	}
	if filters.Species != nil && a.Species != *filters.Species {
		return false
	}
	if filters.Status != nil && a.Status != *filters.Status {
		return false
	}
	return true
}

func (f *fakeAnimalRepo) Find(_ context.Context, filters model.AnimalFilters, limit, offset int) ([]model.Animal, error) {
	var out []model.Animal
	for _, a := range f.byID {
		if f.matches(a, filters) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAnimalRepo) Count(_ context.Context, filters model.AnimalFilters) (int64, error) {
	var n int64
	for _, a := range f.byID {
		if f.matches(a, filters) {
			n++
		}
	}
	return n, nil
}

func (f *fakeAnimalRepo) FindIDsByOwner(_ context.Context, ownerID string) ([]string, error) {
	var ids []string
	for _, a := range f.byID {
		if a.OwnerID == ownerID {
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}

func (f *fakeAnimalRepo) Update(_ context.Context, a *model.Animal) error {
	a.UpdatedAt = time.Now()
	cpy := *a
	f.byID[a.ID] = &cpy
	return nil
}

func (f *fakeAnimalRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeListingRepo struct {
	byID map[string]*model.Listing

	viewIncrements map[string]int
}

var _ repository.ListingRepository = (*fakeListingRepo)(nil)

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		byID:           map[string]*model.Listing{},
		viewIncrements: map[string]int{},
	}
}

func (f *fakeListingRepo) Create(_ context.Context, l *model.Listing) error {
	cpy := *l
	f.byID[l.ID] = &cpy
	return nil
}

func (f *fakeListingRepo) FindByID(_ context.Context, id string) (*model.Listing, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cpy := *l
	return &cpy, nil
}

func (f *fakeListingRepo) matches(l *model.Listing, filters model.ListingFilters) bool {
	if filters.SellerID != nil && l.SellerID != *filters.SellerID {
		return false
	}
	if filters.Status != nil && l.Status != *filters.Status {
		return false
	}
	if filters.MinPrice != nil && l.Price < *filters.MinPrice {
		return false
	}
	if filters.MaxPrice != nil && l.Price > *filters.MaxPrice {
		return false
	}
	return true
}

func (f *fakeListingRepo) Find(_ context.Context, filters model.ListingFilters, limit, offset int) ([]model.Listing, error) {
	var out []model.Listing
	for _, l := range f.byID {
		if f.matches(l, filters) {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) Count(_ context.Context, filters model.ListingFilters) (int64, error) {
	var n int64
	for _, l := range f.byID {
		if f.matches(l, filters) {
			n++
		}
	}
	return n, nil
}

func (f *fakeListingRepo) Update(_ context.Context, l *model.Listing) error {
	l.UpdatedAt = time.Now()
	cpy := *l
	f.byID[l.ID] = &cpy
	return nil
}

func (f *fakeListingRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeListingRepo) IncrementViews(_ context.Context, id string) error {
	f.viewIncrements[id]++
	if l, ok := f.byID[id]; ok {
		l.Views++
	}
	return nil
}

type fakeMetricsRepo struct {
	records []model.IoTMetrics
}

var _ repository.MetricsRepository = (*fakeMetricsRepo)(nil)

func (f *fakeMetricsRepo) Create(_ context.Context, m *model.IoTMetrics) error {
	f.records = append(f.records, *m)
	return nil
}

func (f *fakeMetricsRepo) FindByAnimals(_ context.Context, animalIDs []string, limit int) ([]model.IoTMetrics, error) {
	var out []model.IoTMetrics
	for _, m := range f.records {
		for _, id := range animalIDs {
			if m.AnimalID == id {
				out = append(out, m)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMetricsRepo) CountByAnimals(ctx context.Context, animalIDs []string) (int64, error) {
	out, _ := f.FindByAnimals(ctx, animalIDs, len(f.records)+1)
	return int64(len(out)), nil
}

func (f *fakeMetricsRepo) FindLatest(_ context.Context, animalID string) (*model.IoTMetrics, error) {
	var latest *model.IoTMetrics
	for i := range f.records {
		m := &f.records[i]
		if m.AnimalID != animalID {
			continue
		}
		if latest == nil || m.Timestamp.After(latest.Timestamp) {
			latest = m
		}
	}
	if latest == nil {
		return nil, nil
	}
	cpy := *latest
	return &cpy, nil
}

func (f *fakeMetricsRepo) FindInRange(_ context.Context, animalID string, from, to time.Time) ([]model.IoTMetrics, error) {
	var out []model.IoTMetrics
	for _, m := range f.records {
		if m.AnimalID == animalID && !m.Timestamp.Before(from) && !m.Timestamp.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMetricsRepo) CountInRange(ctx context.Context, animalID string, from, to time.Time) (int64, error) {
	out, _ := f.FindInRange(ctx, animalID, from, to)
	return int64(len(out)), nil
}
