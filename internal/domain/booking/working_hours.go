package booking

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const (
	SlotMinutes = 30

	OpenMinute  = 8 * 60
	CloseMinute = 18 * 60

	// No booking may start after LunchStart and before LunchEnd.
	LunchStart = 11*60 + 30
	LunchEnd   = 13 * 60

	// MaxPendingPerDay caps a client's pending bookings on one date.
	MaxPendingPerDay = 3
)

// ValidateStart checks the minute-of-day a booking would start at.
// Accepted starts are 08:00-11:30 and 13:00-17:30 on the half hour.
func ValidateStart(minute int) error {
	if minute%SlotMinutes != 0 {
		return httperr.ErrBusinessf(
			httperr.CodeInvalidTimeWindow,
			"time must be a multiple of 30 minutes, like 10:00 or 10:30 (got %s)",
			timezone.FormatMinute(minute),
		)
	}

	morning := minute >= OpenMinute && minute <= LunchStart
	afternoon := minute >= LunchEnd && minute <= CloseMinute-SlotMinutes
	if !morning && !afternoon {
		return httperr.ErrBusinessf(
			httperr.CodeOutOfHours,
			"only times between 08:00 and 11:30 or 13:00 and 17:30 are allowed",
		)
	}

	return nil
}

// DaySlots lists every slot start of the business day, lunch included.
// Lunch is enforced by ValidateStart at creation, not here.
func DaySlots() []int {
	slots := make([]int, 0, (CloseMinute-OpenMinute)/SlotMinutes)
	for m := OpenMinute; m < CloseMinute; m += SlotMinutes {
		slots = append(slots, m)
	}
	return slots
}
