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

// ListingHandler handles marketplace requests
type ListingHandler struct {
	service service.ListingService
	logger  *zap.Logger
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(s service.ListingService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{service: s, logger: logger}
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var req model.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	listing, err := h.service.CreateListing(c.Request.Context(), user.ID, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) GetListings(c *gin.Context) {
	var filters model.ListingFilters
	if v := c.Query("seller_id"); v != "" {
		filters.SellerID = &v
	}
	if v := c.Query("status"); v != "" {
		filters.Status = &v
	}
	if v := c.Query("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return
		}
		filters.MinPrice = &price
	}
	if v := c.Query("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return
		}
		filters.MaxPrice = &price
	}
	page, size := paginationParams(c)

	resp, err := h.service.ListListings(c.Request.Context(), filters, page, size)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) GetMyListings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}
	page, size := paginationParams(c)

	resp, err := h.service.ListMyListings(c.Request.Context(), user, page, size)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) GetListingByID(c *gin.Context) {
	listing, err := h.service.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) UpdateListing(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	var req model.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	listing, err := h.service.UpdateListing(c.Request.Context(), c.Param("id"), user.ID, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, h.logger, errs.ErrUnauthenticated)
		return
	}

	if err := h.service.DeleteListing(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterListingRoutes registers marketplace routes. Browsing requires any
// authenticated active user; publishing and mutation require the farmer role.
func (h *ListingHandler) RegisterListingRoutes(rg *gin.RouterGroup, authMW, farmerMW gin.HandlerFunc) {
	marketGroup := rg.Group("/marketplace", authMW)
	{
		marketGroup.POST("/listings", farmerMW, h.CreateListing)
		marketGroup.GET("/listings", h.GetListings)
		marketGroup.GET("/listings/:id", h.GetListingByID)
		marketGroup.PUT("/listings/:id", farmerMW, h.UpdateListing)
		marketGroup.DELETE("/listings/:id", farmerMW, h.DeleteListing)
		marketGroup.GET("/my/listings", farmerMW, h.GetMyListings)
	}
}
