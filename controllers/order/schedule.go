package orderControllers

import (
	"math/rand"
	"time"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

const (
	TimingImmediate = "immediate"
	TimingScheduled = "scheduled"

	slotOpenHour  = 8
	slotCloseHour = 22
)

// DeliverySlots lists the half-hour slot start times between 08:00 and 22:00.
func DeliverySlots() []string {
	var slots []string
	for h := slotOpenHour; h < slotCloseHour; h++ {
		slots = append(slots, time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04"))
		slots = append(slots, time.Date(0, 1, 1, h, 30, 0, 0, time.UTC).Format("15:04"))
	}
	return slots
}

func validSlot(slot string) bool {
	for _, s := range DeliverySlots() {
		if s == slot {
			return true
		}
	}
	return false
}

// ResolveEstimatedDelivery turns the requested timing into a concrete
// estimated-delivery timestamp. Immediate orders land strictly between 30 and
// 45 minutes out;
// scheduled orders must pick a valid slot strictly in the future.
func ResolveEstimatedDelivery(mode, date, slot string, now time.Time) (time.Time, error) {
	switch mode {
	case TimingImmediate:
		// Strictly inside the 30–45 minute window, with sub-minute jitter.
		offset := 31*time.Minute + time.Duration(rand.Int63n(int64(13*time.Minute)))
		return now.Add(offset), nil
	case TimingScheduled:
		if date == "" || !validSlot(slot) {
			return time.Time{}, models.ErrInvalidSchedule
		}
		day, err := time.ParseInLocation("2006-01-02", date, now.Location())
		if err != nil {
			return time.Time{}, models.ErrInvalidSchedule
		}
		at, err := time.ParseInLocation("15:04", slot, now.Location())
		if err != nil {
			return time.Time{}, models.ErrInvalidSchedule
		}
		scheduled := time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
		if !scheduled.After(now) {
			return time.Time{}, models.ErrInvalidSchedule
		}
		return scheduled, nil
	default:
		return time.Time{}, models.ErrInvalidSchedule
	}
}
