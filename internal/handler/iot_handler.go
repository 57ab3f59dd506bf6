package handler

import (
	"net/http"
	"strconv"

	"livestock_market/internal/errs"
	"livestock_market/internal/middleware"
	"livestock_market/internal/model"
	"livestock_market/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MetricsHandler handles IoT telemetry requests
type MetricsHandler struct {
	service service.MetricsService
	logger  *zap.Logger
}

// NewMetricsHandler creates a new MetricsHandler
func NewMetricsHandler(s service.MetricsService, logger *zap.Logger) *MetricsHandler {
	return &MetricsHandler{service: s, logger: logger}
}

func (h *MetricsHandler) CreateMetrics(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var req model.CreateMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	metrics, err := h.service.CreateMetrics(c.Request.Context(), user.ID, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, metrics)
}

// SimulateMetrics generates a random telemetry report for one of the caller's
// animals, as if its collar had just reported.
func (h *MetricsHandler) SimulateMetrics(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	metrics, err := h.service.SimulateMetrics(c.Request.Context(), user.ID, c.Param("animal_id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var animalID *string
	if v := c.Query("animal_id"); v != "" {
		animalID = &v
	}
	limit := 10
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && v >= 1 && v <= 100 {
		limit = v
	}

	resp, err := h.service.ListMetrics(c.Request.Context(), user.ID, animalID, limit)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MetricsHandler) GetLatestMetrics(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	metrics, err := h.service.LatestMetrics(c.Request.Context(), user.ID, c.Param("animal_id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *MetricsHandler) GetMetricsHistory(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	hours := 24
	if v, err := strconv.Atoi(c.DefaultQuery("hours", "24")); err == nil && v >= 1 && v <= 168 {
		hours = v
	}

	resp, err := h.service.MetricsHistory(c.Request.Context(), user.ID, c.Param("animal_id"), hours)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterMetricsRoutes registers IoT routes. Ingest requires the farmer role;
// all reads are scoped to animals the caller owns.
func (h *MetricsHandler) RegisterMetricsRoutes(rg *gin.RouterGroup, authMW, farmerMW gin.HandlerFunc) {
	iotGroup := rg.Group("/iot", authMW)
	{
		iotGroup.POST("/metrics", farmerMW, h.CreateMetrics)
		iotGroup.PUT("/metrics/:animal_id/simulate", farmerMW, h.SimulateMetrics)
		iotGroup.GET("/metrics", h.GetMetrics)
		iotGroup.GET("/metrics/:animal_id/latest", h.GetLatestMetrics)
		iotGroup.GET("/metrics/:animal_id/history", h.GetMetricsHistory)
	}
}
