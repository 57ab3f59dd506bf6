package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"livestock_market/internal/errs"
	"livestock_market/internal/model"
	"livestock_market/internal/repository"

	"github.com/google/uuid"
)

// MetricsService defines operations for IoT telemetry. Authorization for
// telemetry is always derived from the referenced animal's owner.
type MetricsService interface {
	CreateMetrics(ctx context.Context, requesterID string, req model.CreateMetricsRequest) (*model.IoTMetrics, error)
	SimulateMetrics(ctx context.Context, requesterID, animalID string) (*model.IoTMetrics, error)
	ListMetrics(ctx context.Context, requesterID string, animalID *string, limit int) (*model.MetricsListResponse, error)
	LatestMetrics(ctx context.Context, requesterID, animalID string) (*model.IoTMetrics, error)
	MetricsHistory(ctx context.Context, requesterID, animalID string, hours int) (*model.MetricsListResponse, error)
}

type metricsService struct {
	metrics repository.MetricsRepository
	animals repository.AnimalRepository
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(metrics repository.MetricsRepository, animals repository.AnimalRepository) MetricsService {
	return &metricsService{metrics: metrics, animals: animals}
}

// resolveOwnedAnimal loads the referenced animal and verifies the requester
// owns it. Absence is reported before any ownership comparison.
func (s *metricsService) resolveOwnedAnimal(ctx context.Context, animalID, requesterID string) (*model.Animal, error) {
	if _, err := uuid.Parse(animalID); err != nil {
		return nil, errs.ErrInvalidID
	}
	animal, err := s.animals.FindByID(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find animal for metrics: %w", err)
	}
	if animal == nil {
		return nil, errs.ErrNotFound
	}
	if animal.OwnerID != requesterID {
		return nil, errs.ErrForbidden
	}
	return animal, nil
}

// CreateMetrics ingests a telemetry report for an animal the requester owns
func (s *metricsService) CreateMetrics(ctx context.Context, requesterID string, req model.CreateMetricsRequest) (*model.IoTMetrics, error) {
	if _, err := s.resolveOwnedAnimal(ctx, req.AnimalID, requesterID); err != nil {
		return nil, err
	}

	metrics := &model.IoTMetrics{
		ID:             uuid.NewString(),
		AnimalID:       req.AnimalID,
		Temperature:    req.Temperature,
		Humidity:       req.Humidity,
		ActivityLevel:  req.ActivityLevel,
		FeedingStatus:  req.FeedingStatus,
		WaterLevel:     req.WaterLevel,
		BatteryLevel:   req.BatteryLevel,
		SignalStrength: req.SignalStrength,
		Location:       req.Location,
		AdditionalData: req.AdditionalData,
		Timestamp:      time.Now(),
	}
	if metrics.Location == nil {
		metrics.Location = map[string]float64{}
	}
	if metrics.AdditionalData == nil {
		metrics.AdditionalData = map[string]any{}
	}

	if err := s.metrics.Create(ctx, metrics); err != nil {
		return nil, fmt.Errorf("failed to create metrics in repo: %w", err)
	}
	return metrics, nil
}

// randInRange returns a uniform value in [lo, hi] rounded to one decimal.
func randInRange(lo, hi float64) float64 {
	return math.Round((lo+rand.Float64()*(hi-lo))*10) / 10
}

// SimulateMetrics generates and stores a plausible random telemetry report for
// an animal the requester owns. Demo helper for collars that are not yet
// reporting; the same ownership rule as ingest applies.
func (s *metricsService) SimulateMetrics(ctx context.Context, requesterID, animalID string) (*model.IoTMetrics, error) {
	if _, err := s.resolveOwnedAnimal(ctx, animalID, requesterID); err != nil {
		return nil, err
	}

	feeding := []string{model.FeedingStatusFed, model.FeedingStatusHungry}
	signal := []string{model.SignalWeak, model.SignalMedium, model.SignalStrong}

	metrics := &model.IoTMetrics{
		ID:             uuid.NewString(),
		AnimalID:       animalID,
		Temperature:    randInRange(37.0, 40.0),
		Humidity:       randInRange(50.0, 80.0),
		ActivityLevel:  randInRange(60.0, 100.0),
		FeedingStatus:  feeding[rand.Intn(len(feeding))],
		WaterLevel:     randInRange(30.0, 100.0),
		BatteryLevel:   randInRange(80.0, 100.0),
		SignalStrength: signal[rand.Intn(len(signal))],
		Location:       map[string]float64{"lat": 30.7333, "lng": 76.7794},
		AdditionalData: map[string]any{},
		Timestamp:      time.Now(),
	}

	if err := s.metrics.Create(ctx, metrics); err != nil {
		return nil, fmt.Errorf("failed to store simulated metrics: %w", err)
	}
	return metrics, nil
}

// ListMetrics retrieves recent telemetry. With an animal id the requester must
// own that animal; without one it covers all animals the requester owns.
func (s *metricsService) ListMetrics(ctx context.Context, requesterID string, animalID *string, limit int) (*model.MetricsListResponse, error) {
	var animalIDs []string
	scope := "all"

	if animalID != nil && *animalID != "" {
		if _, err := s.resolveOwnedAnimal(ctx, *animalID, requesterID); err != nil {
			return nil, err
		}
		animalIDs = []string{*animalID}
		scope = *animalID
	} else {
		ids, err := s.animals.FindIDsByOwner(ctx, requesterID)
		if err != nil {
			return nil, fmt.Errorf("failed to find owned animals: %w", err)
		}
		if len(ids) == 0 {
			return &model.MetricsListResponse{
				Metrics:     []model.IoTMetrics{},
				AnimalID:    scope,
				LastUpdated: time.Now(),
			}, nil
		}
		animalIDs = ids
	}

	total, err := s.metrics.CountByAnimals(ctx, animalIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count metrics: %w", err)
	}

	metrics, err := s.metrics.FindByAnimals(ctx, animalIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	if metrics == nil {
		metrics = []model.IoTMetrics{}
	}

	return &model.MetricsListResponse{
		Metrics:     metrics,
		Total:       total,
		AnimalID:    scope,
		LastUpdated: time.Now(),
	}, nil
}

// LatestMetrics retrieves the most recent telemetry record for one animal
func (s *metricsService) LatestMetrics(ctx context.Context, requesterID, animalID string) (*model.IoTMetrics, error) {
	if _, err := s.resolveOwnedAnimal(ctx, animalID, requesterID); err != nil {
		return nil, err
	}

	latest, err := s.metrics.FindLatest(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest metrics: %w", err)
	}
	if latest == nil {
		return nil, errs.ErrNotFound
	}
	return latest, nil
}

// MetricsHistory retrieves telemetry for the trailing time window
func (s *metricsService) MetricsHistory(ctx context.Context, requesterID, animalID string, hours int) (*model.MetricsListResponse, error) {
	if _, err := s.resolveOwnedAnimal(ctx, animalID, requesterID); err != nil {
		return nil, err
	}

	to := time.Now()
	from := to.Add(-time.Duration(hours) * time.Hour)

	total, err := s.metrics.CountInRange(ctx, animalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count metrics history: %w", err)
	}

	metrics, err := s.metrics.FindInRange(ctx, animalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics history: %w", err)
	}
	if metrics == nil {
		metrics = []model.IoTMetrics{}
	}

	return &model.MetricsListResponse{
		Metrics:     metrics,
		Total:       total,
		AnimalID:    animalID,
		LastUpdated: to,
	}, nil
}
