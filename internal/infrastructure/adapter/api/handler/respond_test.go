package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerr "github.com/Vergil4828/KinoService/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"User not found", domainerr.ErrUserNotFound, http.StatusNotFound},
		{"Plan not found", domainerr.ErrPlanNotFound, http.StatusNotFound},
		{"Insufficient funds", domainerr.ErrInsufficientFunds, http.StatusPaymentRequired},
		{"Detailed insufficient funds", domainerr.NewInsufficientFundsError(42, "899.00", "50.00"), http.StatusPaymentRequired},
		{"Invalid amount", domainerr.ErrInvalidAmount, http.StatusBadRequest},
		{"Zero amount", domainerr.ErrZeroAmount, http.StatusBadRequest},
		{"Below minimum", domainerr.ErrAmountBelowMinimum, http.StatusBadRequest},
		{"Invalid request", domainerr.ErrInvalidRequest, http.StatusBadRequest},
		{"Duplicate user", domainerr.ErrDuplicateUser, http.StatusConflict},
		{"Duplicate plan", domainerr.ErrDuplicatePlan, http.StatusConflict},
		{"Plan in use", domainerr.ErrPlanInUse, http.StatusConflict},
		{"Free plan protected", domainerr.ErrFreePlanProtected, http.StatusConflict},
		{"Transient conflict", domainerr.ErrTransientConflict, http.StatusServiceUnavailable},
		{"Database connection", domainerr.ErrDatabaseConnection, http.StatusServiceUnavailable},
		{"Unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
		{"No basic plan", domainerr.ErrNoBasicPlan, http.StatusInternalServerError},
		{"Wrapped error keeps its status", fmt.Errorf("op: %w", domainerr.ErrPlanInUse), http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusFor(tc.err))
		})
	}
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, fmt.Errorf("pq: relation users does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation users")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(value string) (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "userId", Value: value}}
		return c, w
	}

	t.Run("Valid ID", func(t *testing.T) {
		c, _ := newCtx("42")
		id, ok := parseIDParam(c, "userId")
		assert.True(t, ok)
		assert.Equal(t, uint64(42), id)
	})

	t.Run("Zero rejected", func(t *testing.T) {
		c, w := newCtx("0")
		_, ok := parseIDParam(c, "userId")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Non-numeric rejected", func(t *testing.T) {
		c, w := newCtx("abc")
		_, ok := parseIDParam(c, "userId")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Negative rejected", func(t *testing.T) {
		c, w := newCtx("-1")
		_, ok := parseIDParam(c, "userId")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
