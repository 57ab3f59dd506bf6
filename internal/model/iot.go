package model

import "time"

const (
	FeedingStatusFed     = "fed"
	FeedingStatusHungry  = "hungry"
	FeedingStatusOverfed = "overfed"
)

const (
	SignalWeak   = "weak"
	SignalMedium = "medium"
	SignalStrong = "strong"
)

// IoTMetrics is a single telemetry report from a collar device. Authorization
// for metrics is derived from the referenced animal's owner; the record itself
// carries no owner field.
type IoTMetrics struct {
	ID             string             `json:"id"`
	AnimalID       string             `json:"animal_id"`
	Temperature    float64            `json:"temperature"`    // Celsius
	Humidity       float64            `json:"humidity"`       // Percentage
	ActivityLevel  float64            `json:"activity_level"` // Percentage
	FeedingStatus  string             `json:"feeding_status"`
	WaterLevel     float64            `json:"water_level"`   // Percentage
	BatteryLevel   float64            `json:"battery_level"` // Percentage
	SignalStrength string             `json:"signal_strength"`
	Location       map[string]float64 `json:"location"`        // {lat, lng}
	AdditionalData map[string]any     `json:"additional_data"`
	Timestamp      time.Time          `json:"timestamp"`
}

// CreateMetricsRequest is used for ingesting a telemetry report
type CreateMetricsRequest struct {
	AnimalID       string             `json:"animal_id" binding:"required"`
	Temperature    float64            `json:"temperature" binding:"required,gte=30,lte=45"`
	Humidity       float64            `json:"humidity" binding:"gte=0,lte=100"`
	ActivityLevel  float64            `json:"activity_level" binding:"gte=0,lte=100"`
	FeedingStatus  string             `json:"feeding_status" binding:"required,oneof=fed hungry overfed"`
	WaterLevel     float64            `json:"water_level" binding:"gte=0,lte=100"`
	BatteryLevel   float64            `json:"battery_level" binding:"gte=0,lte=100"`
	SignalStrength string             `json:"signal_strength" binding:"required,oneof=weak medium strong"`
	Location       map[string]float64 `json:"location"`
	AdditionalData map[string]any     `json:"additional_data"`
}

// MetricsListResponse is a page of telemetry records for one or more animals
type MetricsListResponse struct {
	Metrics     []IoTMetrics `json:"metrics"`
	Total       int64        `json:"total"`
	AnimalID    string       `json:"animal_id"`
	LastUpdated time.Time    `json:"last_updated"`
}
