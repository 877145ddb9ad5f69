package entity

import (
	"time"

	errs "github.com/Vergil4828/KinoService/internal/domain/error"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the mutable aggregate root: account identity, the embedded wallet
// balance and the current subscription snapshot.
type User struct {
	ID           uint64
	Email        string
	Username     string
	PasswordHash string
	Role         string

	// Balance stored in cents to avoid floating point precision issues (private).
	// Must never go negative; enforced at the mutation boundary.
	balance int64

	CurrentSubscription *CurrentSubscription

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a user with a zero-balance wallet and no subscription yet.
// The registration flow assigns the free plan before persisting.
func NewUser(email, username, passwordHash string, now time.Time) (*User, error) {
	if email == "" || username == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		balance:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in cents
func (u *User) Balance() int64 {
	return u.balance
}

// GetBalance returns the balance as a decimal string with 2 decimal places
func (u *User) GetBalance() string {
	return FormatCents(u.balance)
}

// SetBalance updates the balance directly (for repositories rehydrating state)
func (u *User) SetBalance(balanceInCents int64, now time.Time) {
	u.balance = balanceInCents
	u.UpdatedAt = now
}

// CanDebit reports whether the wallet covers a debit of the given size
func (u *User) CanDebit(amountInCents int64) bool {
	return u.balance >= amountInCents
}

// ShortfallFor returns how many cents are missing to cover a debit, zero when covered
func (u *User) ShortfallFor(amountInCents int64) int64 {
	if u.balance >= amountInCents {
		return 0
	}
	return amountInCents - u.balance
}

// AssignSubscription replaces the current subscription snapshot wholesale
func (u *User) AssignSubscription(sub *CurrentSubscription, now time.Time) {
	u.CurrentSubscription = sub
	u.UpdatedAt = now
}

// IsAdmin reports whether the user carries the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
