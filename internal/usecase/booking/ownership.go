package booking

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Ownership answers the lookups the transport authorizes with.
type Ownership struct {
	repo domain.Repository
}

func NewOwnership(repo domain.Repository) *Ownership {
	return &Ownership{repo: repo}
}

func (o *Ownership) IsOwnedByClient(ctx context.Context, bookingID uint, actor *models.Actor) (bool, error) {
	b, err := o.find(ctx, bookingID)
	if err != nil {
		return false, err
	}
	return b.ClientID == actor.ID, nil
}

func (o *Ownership) IsOwnedByProfessional(ctx context.Context, bookingID uint, actor *models.Actor) (bool, error) {
	b, err := o.find(ctx, bookingID)
	if err != nil {
		return false, err
	}
	return b.ProfessionalID == actor.ID, nil
}

// Get returns the booking to front desk staff or to either party on it.
func (o *Ownership) Get(ctx context.Context, requester *models.Actor, bookingID uint) (*models.Booking, error) {
	b, err := o.find(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if domain.Role(requester.Role).IsFrontDesk() {
		return b, nil
	}

	asClient, err := o.IsOwnedByClient(ctx, bookingID, requester)
	if err != nil {
		return nil, err
	}
	asProfessional, err := o.IsOwnedByProfessional(ctx, bookingID, requester)
	if err != nil {
		return nil, err
	}

	if !asClient && !asProfessional {
		return nil, httperr.ErrBusinessf(httperr.CodeForbidden, "not allowed to view this booking")
	}
	return b, nil
}

func (o *Ownership) find(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := o.repo.FindBooking(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, bookingNotFound(id)
	}
	return b, err
}
