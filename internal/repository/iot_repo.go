package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"livestock_market/internal/model"

	"github.com/jackc/pgx/v5"
)

// MetricsRepository defines operations for IoT telemetry data
type MetricsRepository interface {
	Create(ctx context.Context, metrics *model.IoTMetrics) error
	FindByAnimals(ctx context.Context, animalIDs []string, limit int) ([]model.IoTMetrics, error)
	CountByAnimals(ctx context.Context, animalIDs []string) (int64, error)
	FindLatest(ctx context.Context, animalID string) (*model.IoTMetrics, error)
	FindInRange(ctx context.Context, animalID string, from, to time.Time) ([]model.IoTMetrics, error)
	CountInRange(ctx context.Context, animalID string, from, to time.Time) (int64, error)
}

type metricsRepository struct {
	db PgxPool
}

// NewMetricsRepository creates a new MetricsRepository
func NewMetricsRepository(db PgxPool) MetricsRepository {
	return &metricsRepository{db: db}
}

const metricsColumns = `id, animal_id, temperature, humidity, activity_level, feeding_status, water_level, battery_level, signal_strength, location, additional_data, timestamp`

// Create inserts a new telemetry record into the database
func (r *metricsRepository) Create(ctx context.Context, m *model.IoTMetrics) error {
	sql := `INSERT INTO iot_metrics (id, animal_id, temperature, humidity, activity_level, feeding_status, water_level, battery_level, signal_strength, location, additional_data, timestamp)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, sql,
		m.ID, m.AnimalID, m.Temperature, m.Humidity, m.ActivityLevel, m.FeedingStatus,
		m.WaterLevel, m.BatteryLevel, m.SignalStrength, m.Location, m.AdditionalData, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create iot metrics: %w", err)
	}
	return nil
}

func scanMetrics(rows pgx.Rows) ([]model.IoTMetrics, error) {
	var metrics []model.IoTMetrics
	for rows.Next() {
		var m model.IoTMetrics
		if err := rows.Scan(
			&m.ID, &m.AnimalID, &m.Temperature, &m.Humidity, &m.ActivityLevel, &m.FeedingStatus,
			&m.WaterLevel, &m.BatteryLevel, &m.SignalStrength, &m.Location, &m.AdditionalData, &m.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan metrics row: %w", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metrics rows: %w", err)
	}
	return metrics, nil
}

// FindByAnimals retrieves the latest telemetry records for the given animals
func (r *metricsRepository) FindByAnimals(ctx context.Context, animalIDs []string, limit int) ([]model.IoTMetrics, error) {
	sql := `SELECT ` + metricsColumns + ` FROM iot_metrics WHERE animal_id = ANY($1) ORDER BY timestamp DESC LIMIT $2`
	rows, err := r.db.Query(ctx, sql, animalIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics by animals: %w", err)
	}
	defer rows.Close()
	return scanMetrics(rows)
}

// CountByAnimals returns the number of telemetry records for the given animals
func (r *metricsRepository) CountByAnimals(ctx context.Context, animalIDs []string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM iot_metrics WHERE animal_id = ANY($1)`, animalIDs).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count metrics: %w", err)
	}
	return total, nil
}

// FindLatest retrieves the most recent telemetry record for one animal
func (r *metricsRepository) FindLatest(ctx context.Context, animalID string) (*model.IoTMetrics, error) {
	m := &model.IoTMetrics{}
	sql := `SELECT ` + metricsColumns + ` FROM iot_metrics WHERE animal_id = $1 ORDER BY timestamp DESC LIMIT 1`
	err := r.db.QueryRow(ctx, sql, animalID).Scan(
		&m.ID, &m.AnimalID, &m.Temperature, &m.Humidity, &m.ActivityLevel, &m.FeedingStatus,
		&m.WaterLevel, &m.BatteryLevel, &m.SignalStrength, &m.Location, &m.AdditionalData, &m.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No telemetry yet
		}
		return nil, fmt.Errorf("failed to find latest metrics: %w", err)
	}
	return m, nil
}

// FindInRange retrieves telemetry for one animal within [from, to], newest first
func (r *metricsRepository) FindInRange(ctx context.Context, animalID string, from, to time.Time) ([]model.IoTMetrics, error) {
	sql := `SELECT ` + metricsColumns + ` FROM iot_metrics WHERE animal_id = $1 AND timestamp >= $2 AND timestamp <= $3 ORDER BY timestamp DESC`
	rows, err := r.db.Query(ctx, sql, animalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics in range: %w", err)
	}
	defer rows.Close()
	return scanMetrics(rows)
}

// CountInRange returns the number of telemetry records within [from, to]
func (r *metricsRepository) CountInRange(ctx context.Context, animalID string, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM iot_metrics WHERE animal_id = $1 AND timestamp >= $2 AND timestamp <= $3`,
		animalID, from, to,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count metrics in range: %w", err)
	}
	return total, nil
}
