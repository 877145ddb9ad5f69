package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/Vergil4828/KinoService/internal/domain/error"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/api/dto"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case domainerr.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case domainerr.IsValidation(err), errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrDuplicatePlan),
		errors.Is(err, domainerr.ErrPlanInUse),
		errors.Is(err, domainerr.ErrFreePlanProtected):
		return http.StatusConflict
	case domainerr.IsTransient(err), errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error body for a domain error
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}
