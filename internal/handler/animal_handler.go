package handler

import (
	"net/http"

	"livestock_market/internal/errs"
	"livestock_market/internal/middleware"
	"livestock_market/internal/model"
	"livestock_market/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnimalHandler handles animal related requests
type AnimalHandler struct {
	service service.AnimalService
	logger  *zap.Logger
}

// NewAnimalHandler creates a new AnimalHandler
func NewAnimalHandler(s service.AnimalService, logger *zap.Logger) *AnimalHandler {
	return &AnimalHandler{service: s, logger: logger}
}

func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var req model.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	animal, err := h.service.CreateAnimal(c.Request.Context(), user.ID, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, animal)
}

func (h *AnimalHandler) GetAnimals(c *gin.Context) {
	var filters model.AnimalFilters
	if v := c.Query("owner_id"); v != "" {
		filters.OwnerID = &v
	}
	if v := c.Query("species"); v != "" {
		filters.Species = &v
	}
	if v := c.Query("status"); v != "" {
		filters.Status = &v
	}
	page, size := paginationParams(c)

	resp, err := h.service.ListAnimals(c.Request.Context(), filters, page, size)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AnimalHandler) GetMyAnimals(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}
	page, size := paginationParams(c)

	resp, err := h.service.ListMyAnimals(c.Request.Context(), user.ID, page, size)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AnimalHandler) GetAnimalByID(c *gin.Context) {
	animal, err := h.service.GetAnimal(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

func (h *AnimalHandler) UpdateAnimal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var req model.UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	animal, err := h.service.UpdateAnimal(c.Request.Context(), c.Param("id"), user.ID, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

func (h *AnimalHandler) DeleteAnimal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	if err := h.service.DeleteAnimal(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterAnimalRoutes registers animal routes. All routes require an
// authenticated active user; mutations additionally require the farmer role.
func (h *AnimalHandler) RegisterAnimalRoutes(rg *gin.RouterGroup, authMW, farmerMW gin.HandlerFunc) {
	animalGroup := rg.Group("/animals", authMW)
	{
		animalGroup.POST("", farmerMW, h.CreateAnimal)
		animalGroup.GET("", h.GetAnimals)
		animalGroup.GET("/my/animals", farmerMW, h.GetMyAnimals)
		animalGroup.GET("/:id", h.GetAnimalByID)
		animalGroup.PUT("/:id", farmerMW, h.UpdateAnimal)
		animalGroup.DELETE("/:id", farmerMW, h.DeleteAnimal)
	}
}
