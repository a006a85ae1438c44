package booking

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
)

// ConflictDetector answers whether a (client, professional, date, time)
// candidate collides with a PENDING booking on either side.
type ConflictDetector struct {
	repo domain.Repository
}

func NewConflictDetector(repo domain.Repository) *ConflictDetector {
	return &ConflictDetector{repo: repo}
}

// HasConflict: clientID may be nil when probing a professional alone.
func (d *ConflictDetector) HasConflict(
	ctx context.Context,
	clientID *uint,
	professionalID uint,
	date string,
	minute int,
) (bool, error) {
	return d.repo.ExistsPending(ctx, clientID, &professionalID, date, minute)
}

// ClientBusy reports a PENDING booking for the client alone.
func (d *ConflictDetector) ClientBusy(ctx context.Context, clientID uint, date string, minute int) (bool, error) {
	return d.repo.ExistsPending(ctx, &clientID, nil, date, minute)
}

// ProfessionalBusy reports a PENDING booking for the professional alone.
func (d *ConflictDetector) ProfessionalBusy(ctx context.Context, professionalID uint, date string, minute int) (bool, error) {
	return d.repo.ExistsPending(ctx, nil, &professionalID, date, minute)
}
