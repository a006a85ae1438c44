package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

func NewPending(
	client *models.Actor,
	professional *models.Actor,
	date string,
	minute int,
	service Service,
	phone string,
) *models.Booking {
	return &models.Booking{
		ClientID:       client.ID,
		ProfessionalID: professional.ID,
		Date:           date,
		StartMinute:    minute,
		Service:        string(service),
		ContactPhone:   phone,
		Status:         string(InitialStatus()),
	}
}

// StartOf is the instant the booking begins in now's location.
func StartOf(b *models.Booking, loc *time.Location) (time.Time, error) {
	return timezone.At(b.Date, b.StartMinute, loc)
}

// EnsureNotPast rejects a start strictly before now.
func EnsureNotPast(date string, minute int, now time.Time) error {
	start, err := timezone.At(date, minute, now.Location())
	if err != nil {
		return httperr.ErrBusinessf(httperr.CodeInvalidRequest, "invalid date %q", date)
	}
	if start.Before(now) {
		return httperr.ErrBusinessf(httperr.CodePastDate, "booking date must be in the future")
	}
	return nil
}

// EnsureCancellable allows cancelling until the booking's date has fully
// elapsed. The comparison is by calendar date only.
func EnsureCancellable(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	if timezone.DateOf(now) > b.Date {
		return httperr.ErrBusinessf(
			httperr.CodePastCancellationWindow,
			"bookings can only be cancelled up to their scheduled date",
		)
	}
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := EnsureCancellable(b, now); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// Complete confirms a booking once its 30 minute slot has elapsed.
func Complete(b *models.Booking, now time.Time) error {
	start, err := StartOf(b, now.Location())
	if err != nil {
		return err
	}

	end := start.Add(SlotMinutes * time.Minute)
	if now.Before(end) {
		return httperr.ErrBusinessf(
			httperr.CodeTooEarly,
			"bookings can only be completed 30 minutes after the scheduled time",
		)
	}

	b.Status = string(StatusConfirmed)
	b.CompletedAt = &now
	return nil
}

// CanBeCancelledBy: the booking's client, its professional, or front desk.
func CanBeCancelledBy(b *models.Booking, actor *models.Actor) bool {
	if b.ClientID == actor.ID || b.ProfessionalID == actor.ID {
		return true
	}
	return Role(actor.Role).IsFrontDesk()
}
