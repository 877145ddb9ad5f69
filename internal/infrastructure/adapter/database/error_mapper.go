package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	errs "github.com/Vergil4828/KinoService/internal/domain/error"
)

// ErrorMapper maps database errors to domain errors. Commit-time serialization
// failures surface here, so the mapping to ErrTransientConflict is what makes
// the retry wrapper able to distinguish retryable conflicts from real faults.
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "could not serialize") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "write conflict") ||
		strings.Contains(errMsg, "lock timeout") ||
		strings.Contains(errMsg, "40001"):
		return fmt.Errorf("%w: %s", errs.ErrTransientConflict, operation)

	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return errs.ErrDuplicateUser

	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return errs.ErrConstraintViolation

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return errs.ErrDatabaseConnection

	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", errs.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
}
