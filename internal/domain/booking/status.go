package booking

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func InitialStatus() Status {
	return StatusPending
}

// CanCancel rejects only bookings that are already cancelled; a confirmed
// booking may still be cancelled.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusinessf(httperr.CodeAlreadyCancelled, "booking is already cancelled")
	}
	return nil
}
