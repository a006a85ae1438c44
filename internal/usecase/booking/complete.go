package booking

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// CompleteBooking confirms a booking once its slot is over. Role checks
// belong to the transport.
type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// Execute: requester is only recorded in the audit trail and may be nil.
func (uc *CompleteBooking) Execute(
	ctx context.Context,
	requester *models.Actor,
	bookingID uint,
) (*models.Booking, error) {

	var b *models.Booking
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		b, err = tx.FindBookingForUpdate(ctx, bookingID)
		if errors.Is(err, domain.ErrNotFound) {
			return bookingNotFound(bookingID)
		}
		if err != nil {
			return err
		}

		if err := domain.Complete(b, uc.clock()); err != nil {
			return err
		}
		return tx.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	var actorID *uint
	if requester != nil {
		actorID = &requester.ID
	}

	slog.Info("booking completed", "booking_id", b.ID)

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionBookingCompleted,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
