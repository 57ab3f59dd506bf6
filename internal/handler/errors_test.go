package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"livestock_market/internal/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWriteError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"unauthenticated", errs.ErrUnauthenticated, http.StatusUnauthorized, "Could not validate credentials"},
		{"invalid credentials", errs.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect email or password"},
		{"account disabled", errs.ErrAccountDisabled, http.StatusBadRequest, "Inactive user"},
		{"forbidden", errs.ErrForbidden, http.StatusForbidden, "permission"},
		{"not found", errs.ErrNotFound, http.StatusNotFound, "not found"},
		{"invalid id", errs.ErrInvalidID, http.StatusBadRequest, "invalid id"},
		{"email taken", errs.ErrEmailTaken, http.StatusConflict, "already registered"},
		{"unknown", errors.New("pool exhausted"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeError(c, zap.NewNop(), tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestWriteError_WrappedSentinel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Mapping works through errors.Is, so wrapped sentinels map too.
	writeError(c, zap.NewNop(), errors.Join(errors.New("context"), errs.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
