package entity

import (
	"testing"
	"time"

	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscriptionPlan(t *testing.T) {
	t.Run("Creates validated plan", func(t *testing.T) {
		plan, err := NewSubscriptionPlan("Премиум+", 119900, 30, []string{"4K"})
		require.NoError(t, err)

		assert.Equal(t, "Премиум+", plan.Name)
		assert.Equal(t, int64(119900), plan.PriceInCents)
		assert.Equal(t, 30, plan.RenewalPeriodDays)
		assert.Equal(t, []string{"4K"}, plan.Features)
	})

	t.Run("Rejects empty name", func(t *testing.T) {
		_, err := NewSubscriptionPlan("", 100, 30, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Rejects negative price", func(t *testing.T) {
		_, err := NewSubscriptionPlan("Broken", -1, 30, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Defaults renewal period", func(t *testing.T) {
		plan, err := NewSubscriptionPlan("Популярный", 89900, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultRenewalPeriodDays, plan.RenewalPeriodDays)
	})
}

func TestPlanIsFree(t *testing.T) {
	free, err := NewSubscriptionPlan("Базовый", 0, 30, nil)
	require.NoError(t, err)
	paid, err := NewSubscriptionPlan("Популярный", 89900, 30, nil)
	require.NoError(t, err)

	assert.True(t, free.IsFree())
	assert.False(t, paid.IsFree())
}

func TestPlanPrice(t *testing.T) {
	plan, err := NewSubscriptionPlan("Популярный", 89900, 30, nil)
	require.NoError(t, err)
	assert.Equal(t, "899.00", plan.Price())
}

func TestPlanPeriodEnd(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Free plan never expires", func(t *testing.T) {
		free, err := NewSubscriptionPlan("Базовый", 0, 30, nil)
		require.NoError(t, err)
		assert.Nil(t, free.PeriodEnd(start))
	})

	t.Run("Paid plan expires after the renewal period", func(t *testing.T) {
		paid, err := NewSubscriptionPlan("Популярный", 89900, 30, nil)
		require.NoError(t, err)

		end := paid.PeriodEnd(start)
		require.NotNil(t, end)
		assert.Equal(t, start.AddDate(0, 0, 30), *end)
	})

	t.Run("Zero period falls back to the default", func(t *testing.T) {
		plan := &SubscriptionPlan{Name: "Legacy", PriceInCents: 100, RenewalPeriodDays: 0}

		end := plan.PeriodEnd(start)
		require.NotNil(t, end)
		assert.Equal(t, start.AddDate(0, 0, DefaultRenewalPeriodDays), *end)
	})
}

func TestNewPlanSubscription(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Paid plan snapshot", func(t *testing.T) {
		paid, err := NewSubscriptionPlan("Популярный", 89900, 30, nil)
		require.NoError(t, err)
		paid.ID = 2

		sub := NewPlanSubscription(paid, start)
		require.NotNil(t, sub.PlanID)
		assert.Equal(t, uint64(2), *sub.PlanID)
		assert.Equal(t, start, sub.StartDate)
		require.NotNil(t, sub.EndDate)
		assert.Equal(t, start.AddDate(0, 0, 30), *sub.EndDate)
		assert.True(t, sub.IsActive)
		assert.True(t, sub.AutoRenew)
	})

	t.Run("Free plan snapshot is non-expiring without auto renew", func(t *testing.T) {
		free, err := NewSubscriptionPlan("Базовый", 0, 30, nil)
		require.NoError(t, err)
		free.ID = 1

		sub := NewPlanSubscription(free, start)
		assert.Nil(t, sub.EndDate)
		assert.True(t, sub.IsActive)
		assert.False(t, sub.AutoRenew)
	})
}

func TestCurrentSubscriptionExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	testCases := []struct {
		name     string
		sub      *CurrentSubscription
		expected bool
	}{
		{"Nil subscription", nil, false},
		{"Nil end date never expires", &CurrentSubscription{IsActive: true}, false},
		{"Future end date", &CurrentSubscription{EndDate: &future, IsActive: true}, false},
		{"Past end date", &CurrentSubscription{EndDate: &past, IsActive: true}, true},
		{"End date exactly now", &CurrentSubscription{EndDate: &now, IsActive: true}, true},
		{"Inactive past end date", &CurrentSubscription{EndDate: &past, IsActive: false}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.sub.Expired(now))
		})
	}
}
