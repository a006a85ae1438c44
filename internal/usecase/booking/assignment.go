package booking

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// AssignmentResolver picks the first active professional, by ascending id,
// who is free at (date, minute). Schedule locks are not consulted.
type AssignmentResolver struct {
	repo      domain.Repository
	conflicts *ConflictDetector
}

func NewAssignmentResolver(repo domain.Repository) *AssignmentResolver {
	return &AssignmentResolver{
		repo:      repo,
		conflicts: NewConflictDetector(repo),
	}
}

func (r *AssignmentResolver) Resolve(
	ctx context.Context,
	date string,
	minute int,
) (*models.Actor, error) {

	professionals, err := r.repo.ListActiveActors(ctx, domain.RoleProfessional)
	if err != nil {
		return nil, err
	}

	for i := range professionals {
		candidate := &professionals[i]

		busy, err := r.conflicts.HasConflict(ctx, nil, candidate.ID, date, minute)
		if err != nil {
			return nil, err
		}
		if !busy {
			return candidate, nil
		}
	}

	return nil, httperr.ErrBusinessf(
		httperr.CodeNoProfessionalAvailable,
		"no professional is available at the requested time",
	)
}
