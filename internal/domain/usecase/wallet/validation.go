package wallet

import (
	"fmt"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
)

// AmountValidator validates wallet operation amounts against the configured policy
type AmountValidator struct {
	minDepositInCents int64
}

// NewAmountValidator creates a validator with the given minimum deposit in cents
func NewAmountValidator(minDepositInCents int64) *AmountValidator {
	return &AmountValidator{minDepositInCents: minDepositInCents}
}

// ValidateDeposit parses a deposit amount and enforces the minimum deposit policy.
// Returns the amount in cents.
func (v *AmountValidator) ValidateDeposit(amount string) (int64, error) {
	cents, err := v.validatePositive(amount)
	if err != nil {
		return 0, err
	}
	if cents < v.minDepositInCents {
		return 0, fmt.Errorf("%w: minimum is %s", errs.ErrAmountBelowMinimum, entity.FormatCents(v.minDepositInCents))
	}
	return cents, nil
}

// ValidateWithdrawal parses a withdrawal amount. Returns the amount in cents.
func (v *AmountValidator) ValidateWithdrawal(amount string) (int64, error) {
	return v.validatePositive(amount)
}

// validatePositive rejects non-numeric, non-finite, over-precise and zero amounts.
// ParseAmount only accepts plain decimal digits, so NaN/Infinity spellings and
// scientific notation never reach the arithmetic below.
func (v *AmountValidator) validatePositive(amount string) (int64, error) {
	cents, err := entity.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, errs.ErrZeroAmount
	}
	return cents, nil
}
