package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quarterly = SubscriptionPlan{
	ID:             2,
	Name:           "3 mois",
	DurationMonths: 3,
	MonthlyAmount:  200000,
	TotalAmount:    550000,
}

func TestActivateSetsValidityWindow(t *testing.T) {
	sub := Subscription{PartnerID: "partner-1", PlanID: quarterly.ID, Status: SubscriptionStatusPending}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, sub.Activate(quarterly, now))

	assert.Equal(t, SubscriptionStatusActive, sub.Status)
	require.NotNil(t, sub.StartDate)
	require.NotNil(t, sub.EndDate)
	assert.Equal(t, now, *sub.StartDate)
	assert.Equal(t, now.AddDate(0, 3, 0), *sub.EndDate)
	assert.Equal(t, int64(550000), sub.TotalPaid)
	assert.Equal(t, int64(50000), sub.SavingsAmount)
}

func TestActivateRequiresPending(t *testing.T) {
	for _, status := range []SubscriptionStatus{
		SubscriptionStatusActive, SubscriptionStatusExpired, SubscriptionStatusDeactivated,
	} {
		sub := Subscription{Status: status}
		assert.ErrorIs(t, sub.Activate(quarterly, time.Now()), ErrSubscriptionNotPending, "status %s", status)
		assert.Equal(t, status, sub.Status)
	}
}

func TestDeactivateRecordsReason(t *testing.T) {
	sub := Subscription{Status: SubscriptionStatusActive}

	require.NoError(t, sub.Deactivate("too expensive"))

	assert.Equal(t, SubscriptionStatusDeactivated, sub.Status)
	assert.Equal(t, "too expensive", sub.DeactivationReason)
}

func TestDeactivateRequiresActive(t *testing.T) {
	for _, status := range []SubscriptionStatus{
		SubscriptionStatusPending, SubscriptionStatusExpired, SubscriptionStatusDeactivated,
	} {
		sub := Subscription{Status: status}
		assert.ErrorIs(t, sub.Deactivate("x"), ErrSubscriptionNotActive, "status %s", status)
		assert.Equal(t, status, sub.Status)
	}
}

func TestExpiredNow(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	active := Subscription{Status: SubscriptionStatusActive, EndDate: &past}
	assert.True(t, active.ExpiredNow(now))

	stillValid := Subscription{Status: SubscriptionStatusActive, EndDate: &future}
	assert.False(t, stillValid.ExpiredNow(now))

	pending := Subscription{Status: SubscriptionStatusPending, EndDate: &past}
	assert.False(t, pending.ExpiredNow(now))

	atBoundary := Subscription{Status: SubscriptionStatusActive, EndDate: &now}
	assert.False(t, atBoundary.ExpiredNow(now), "window closes only once end_date has passed")
}

func TestPlanSavings(t *testing.T) {
	assert.Equal(t, int64(50000), quarterly.Savings())

	monthly := SubscriptionPlan{DurationMonths: 1, MonthlyAmount: 200000, TotalAmount: 200000}
	assert.Equal(t, int64(0), monthly.Savings())
}
