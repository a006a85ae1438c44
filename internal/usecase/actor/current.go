package actor

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CurrentActor loads the authenticated actor behind a request.
type CurrentActor struct {
	repo domain.Repository
}

func NewCurrentActor(repo domain.Repository) *CurrentActor {
	return &CurrentActor{repo: repo}
}

func (uc *CurrentActor) Resolve(ctx context.Context, id uint) (*models.Actor, error) {
	a, err := uc.repo.FindActor(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, unauthenticated()
	}
	if err != nil {
		return nil, err
	}

	if !a.Active() {
		return nil, unauthenticated()
	}
	return a, nil
}

func unauthenticated() error {
	return httperr.ErrBusinessf(httperr.CodeUnauthenticated, "no authenticated actor")
}
