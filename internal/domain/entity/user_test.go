package entity

import (
	"testing"
	"time"

	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates user with zero balance and no subscription", func(t *testing.T) {
		user, err := NewUser("user@example.com", "moviefan", "hashed", now)
		require.NoError(t, err)

		assert.Equal(t, "user@example.com", user.Email)
		assert.Equal(t, "moviefan", user.Username)
		assert.Equal(t, RoleUser, user.Role)
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, "0.00", user.GetBalance())
		assert.Nil(t, user.CurrentSubscription)
		assert.Equal(t, now, user.CreatedAt)
	})

	t.Run("Rejects empty email", func(t *testing.T) {
		_, err := NewUser("", "moviefan", "hashed", now)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Rejects empty username", func(t *testing.T) {
		_, err := NewUser("user@example.com", "", "hashed", now)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestUserBalanceChecks(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	user, err := NewUser("user@example.com", "moviefan", "hashed", now)
	require.NoError(t, err)
	user.SetBalance(5000, now)

	t.Run("CanDebit", func(t *testing.T) {
		assert.True(t, user.CanDebit(4999))
		assert.True(t, user.CanDebit(5000))
		assert.False(t, user.CanDebit(5001))
	})

	t.Run("ShortfallFor", func(t *testing.T) {
		assert.Equal(t, int64(0), user.ShortfallFor(5000))
		assert.Equal(t, int64(0), user.ShortfallFor(100))
		assert.Equal(t, int64(84900), user.ShortfallFor(89900))
	})

	t.Run("GetBalance formats cents", func(t *testing.T) {
		assert.Equal(t, "50.00", user.GetBalance())
	})
}

func TestUserAssignSubscription(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	user, err := NewUser("user@example.com", "moviefan", "hashed", now)
	require.NoError(t, err)

	planID := uint64(2)
	end := now.AddDate(0, 0, 30)
	sub := &CurrentSubscription{
		PlanID:    &planID,
		StartDate: now,
		EndDate:   &end,
		IsActive:  true,
		AutoRenew: true,
	}

	user.AssignSubscription(sub, later)
	assert.Same(t, sub, user.CurrentSubscription)
	assert.Equal(t, later, user.UpdatedAt)

	// Replaces wholesale, including back to nil
	user.AssignSubscription(nil, later)
	assert.Nil(t, user.CurrentSubscription)
}

func TestUserIsAdmin(t *testing.T) {
	now := time.Now()
	user, err := NewUser("admin@example.com", "admin", "hashed", now)
	require.NoError(t, err)

	assert.False(t, user.IsAdmin())
	user.Role = RoleAdmin
	assert.True(t, user.IsAdmin())
}
