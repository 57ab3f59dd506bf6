package handler

import (
	"errors"
	"net/http"
	"strconv"

	"livestock_market/internal/errs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps the shared error taxonomy to HTTP statuses. Anything
// outside the taxonomy is logged and surfaced as a generic 500.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
	case errors.Is(err, errs.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrAccountDisabled):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission for this action"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// paginationParams parses page/size query parameters with the platform's
// bounds (page >= 1, 1 <= size <= 100).
func paginationParams(c *gin.Context) (page, size int) {
	page, size = 1, 10
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("size", "10")); err == nil && v >= 1 && v <= 100 {
		size = v
	}
	return page, size
}
