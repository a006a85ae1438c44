package schedule

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	lockstate "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/keylock"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// ScheduleLock closes and reopens a professional's agenda for one date.
type ScheduleLock struct {
	repo   domain.Repository
	locker keylock.Locker
	audit  *audit.Dispatcher
}

func NewScheduleLock(
	repo domain.Repository,
	locker keylock.Locker,
	audit *audit.Dispatcher,
) *ScheduleLock {
	return &ScheduleLock{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

type mutation func(a *models.Actor, date string) (models.LockState, error)

func (s *ScheduleLock) Close(
	ctx context.Context,
	requester *models.Actor,
	professionalID uint,
	date string,
) (models.LockState, error) {
	return s.mutate(ctx, requester, professionalID, date, lockstate.Close, audit.ActionScheduleClosed)
}

func (s *ScheduleLock) Open(
	ctx context.Context,
	requester *models.Actor,
	professionalID uint,
	date string,
) (models.LockState, error) {
	return s.mutate(ctx, requester, professionalID, date, lockstate.Open, audit.ActionScheduleOpened)
}

func (s *ScheduleLock) IsOpen(ctx context.Context, professionalID uint) (bool, error) {
	a, err := findActor(ctx, s.repo, professionalID)
	if err != nil {
		return false, err
	}
	return lockstate.IsOpen(a), nil
}

// mutate is a read-modify-write of the lock state under the schedule key
// for date, so it never interleaves with a create or availability query on
// the same professional and date.
func (s *ScheduleLock) mutate(
	ctx context.Context,
	requester *models.Actor,
	professionalID uint,
	raw string,
	apply mutation,
	action string,
) (models.LockState, error) {

	date, err := timezone.ParseDate(raw)
	if err != nil {
		return models.LockState{}, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "invalid date %q", raw)
	}

	release, err := s.locker.Lock(ctx, keylock.ScheduleKey(professionalID, date))
	if err != nil {
		return models.LockState{}, err
	}
	defer release()

	var state models.LockState
	err = s.repo.Transaction(ctx, func(tx domain.Repository) error {
		a, err := tx.FindActorForUpdate(ctx, professionalID)
		if errors.Is(err, domain.ErrNotFound) {
			return actorNotFound(professionalID)
		}
		if err != nil {
			return err
		}

		state, err = apply(a, date)
		if err != nil {
			return err
		}
		return tx.SaveActor(ctx, a)
	})
	if err != nil {
		return models.LockState{}, err
	}

	slog.Info("schedule lock changed",
		"action", action,
		"professional_id", professionalID,
		"date", date,
		"open", state.Open,
	)

	var actorID *uint
	if requester != nil {
		actorID = &requester.ID
	}
	s.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   action,
		Entity:   "actor",
		EntityID: &professionalID,
		Metadata: map[string]any{"date": date},
	})

	return state, nil
}

func findActor(ctx context.Context, repo domain.Repository, id uint) (*models.Actor, error) {
	a, err := repo.FindActor(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, actorNotFound(id)
	}
	return a, err
}

func actorNotFound(id uint) error {
	return httperr.ErrBusinessf(httperr.CodeNotFound, "actor %d not found", id)
}
