package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds   = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeZeroAmount          = 4004
	CodeAmountBelowMinimum  = 4005
	CodeConstraintViolation = 4006
	CodeDuplicateUser       = 4007
	CodeDuplicatePlan       = 4008
	CodePlanInUse           = 4009
	CodeFreePlanProtected   = 4010
	CodeUserNotFound        = 4040
	CodePlanNotFound        = 4041
	CodeTransactionNotFound = 4042
	CodeTransientConflict   = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeNoBasicPlan    = 5001
	CodeNotInitialized = 5030
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a wallet debit exceeds the current balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when an amount string is not a valid two-decimal number
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrZeroAmount is returned when a transaction amount is exactly zero
	ErrZeroAmount = errors.New("transaction amount cannot be zero")

	// ErrAmountBelowMinimum is returned when a deposit is below the configured minimum
	ErrAmountBelowMinimum = errors.New("amount is below the minimum deposit")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidPlanID is returned when the plan ID is not a positive integer
	ErrInvalidPlanID = errors.New("plan ID must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrPlanNotFound is returned when the requested subscription plan doesn't exist
	ErrPlanNotFound = errors.New("subscription plan not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateUser is returned when a user with the same email already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicatePlan is returned when a plan with the same name already exists
	ErrDuplicatePlan = errors.New("subscription plan already exists")

	// ErrPlanInUse is returned when deleting a plan that is someone's current subscription
	ErrPlanInUse = errors.New("subscription plan is assigned to users")

	// ErrFreePlanProtected is returned when deleting a free plan, which must always exist
	ErrFreePlanProtected = errors.New("free plan cannot be deleted")

	// ErrNoBasicPlan is returned when no price-zero plan exists; the system cannot
	// demote or register users without one
	ErrNoBasicPlan = errors.New("no basic plan configured")

	// ErrTransientConflict is returned when the database reports a write conflict or
	// transient transaction error; the operation is safe to retry
	ErrTransientConflict = errors.New("transient transaction conflict")

	// ErrNotInitialized is returned when a transactional operation is attempted
	// before the database connection is established
	ErrNotInitialized = errors.New("database connection not initialized")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID), errors.Is(err, ErrInvalidPlanID):
		return CodeInvalidUserID
	case errors.Is(err, ErrZeroAmount):
		return CodeZeroAmount
	case errors.Is(err, ErrAmountBelowMinimum):
		return CodeAmountBelowMinimum
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrDuplicatePlan):
		return CodeDuplicatePlan
	case errors.Is(err, ErrPlanInUse):
		return CodePlanInUse
	case errors.Is(err, ErrFreePlanProtected):
		return CodeFreePlanProtected
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrPlanNotFound):
		return CodePlanNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrTransientConflict):
		return CodeTransientConflict
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrNoBasicPlan):
		return CodeNoBasicPlan
	case errors.Is(err, ErrNotInitialized):
		return CodeNotInitialized
	default:
		return CodeInternalServer
	}
}

// IsNotFound reports whether err is one of the not-found classes
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPlanNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsTransient reports whether err is a conflict-class error that is safe to retry
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientConflict)
}

// IsValidation reports whether err is a pre-transaction validation failure
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrZeroAmount) ||
		errors.Is(err, ErrAmountBelowMinimum) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidPlanID)
}

// InsufficientFundsError carries balance details alongside ErrInsufficientFunds
type InsufficientFundsError struct {
	UserID         uint64
	Amount         string
	CurrentBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d (current balance: %s, amount: %s)",
		e.UserID, e.CurrentBalance, e.Amount)
}

// Unwrap lets errors.Is match ErrInsufficientFunds
func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// NewInsufficientFundsError creates a detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, amount, currentBalance string) *InsufficientFundsError {
	return &InsufficientFundsError{
		UserID:         userID,
		Amount:         amount,
		CurrentBalance: currentBalance,
	}
}
