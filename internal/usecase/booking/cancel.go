package booking

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *CancelBooking) Execute(
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

		now := uc.clock()
		if err := domain.EnsureCancellable(b, now); err != nil {
			return err
		}

		if !domain.CanBeCancelledBy(b, requester) {
			return httperr.ErrBusinessf(httperr.CodeForbidden, "not allowed to cancel this booking")
		}

		if err := domain.Cancel(b, now); err != nil {
			return err
		}
		return tx.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking cancelled", "booking_id", b.ID, "cancelled_by", requester.ID)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &requester.ID,
		Action:   audit.ActionBookingCancelled,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func bookingNotFound(id uint) error {
	return httperr.ErrBusinessf(httperr.CodeNotFound, "booking %d not found", id)
}
