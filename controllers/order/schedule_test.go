package orderControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

func TestDeliverySlots(t *testing.T) {
	slots := DeliverySlots()

	// Half-hour slots between 08:00 and 22:00.
	assert.Len(t, slots, 28)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "21:30", slots[len(slots)-1])
}

func TestImmediateEstimateWithinWindow(t *testing.T) {
	now := time.Now()

	for i := 0; i < 50; i++ {
		est, err := ResolveEstimatedDelivery(TimingImmediate, "", "", now)
		require.NoError(t, err)
		assert.True(t, est.After(now.Add(30*time.Minute)), "estimate %s not strictly after now+30m", est)
		assert.True(t, est.Before(now.Add(45*time.Minute)), "estimate %s not strictly before now+45m", est)
	}
}

func TestScheduledInFuture(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	est, err := ResolveEstimatedDelivery(TimingScheduled, "2025-06-02", "18:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 18, 30, 0, 0, time.Local), est)
}

func TestScheduledInPastFails(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	_, err := ResolveEstimatedDelivery(TimingScheduled, "2025-05-31", "18:30", now)
	assert.ErrorIs(t, err, models.ErrInvalidSchedule)

	// Same day but a slot that already passed.
	_, err = ResolveEstimatedDelivery(TimingScheduled, "2025-06-01", "09:30", now)
	assert.ErrorIs(t, err, models.ErrInvalidSchedule)

	// Exactly now is not strictly in the future.
	_, err = ResolveEstimatedDelivery(TimingScheduled, "2025-06-01", "10:00", now)
	assert.ErrorIs(t, err, models.ErrInvalidSchedule)
}

func TestScheduledRejectsInvalidInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		date string
		slot string
	}{
		{"missing date", "", "18:30"},
		{"missing slot", "2025-06-02", ""},
		{"slot off the half-hour grid", "2025-06-02", "18:15"},
		{"slot before opening", "2025-06-02", "07:30"},
		{"slot at closing", "2025-06-02", "22:00"},
		{"malformed date", "02/06/2025", "18:30"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveEstimatedDelivery(TimingScheduled, tc.date, tc.slot, now)
			assert.ErrorIs(t, err, models.ErrInvalidSchedule)
		})
	}
}

func TestUnknownTimingModeFails(t *testing.T) {
	_, err := ResolveEstimatedDelivery("later", "", "", time.Now())
	assert.ErrorIs(t, err, models.ErrInvalidSchedule)
}
