package actor

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// ======================================================
// QUERIES
// ======================================================

type Directory struct {
	repo domain.Repository
}

func NewDirectory(repo domain.Repository) *Directory {
	return &Directory{repo: repo}
}

// List returns active actors; an empty role lists all of them.
func (d *Directory) List(ctx context.Context, role string) ([]models.Actor, error) {
	var r domain.Role
	if role != "" {
		parsed, ok := domain.ParseRole(strings.ToUpper(role))
		if !ok {
			return nil, httperr.ErrBusinessf(httperr.CodeInvalidRole, "unknown role %q", role)
		}
		r = parsed
	}
	return d.repo.ListActiveActors(ctx, r)
}

func (d *Directory) Get(ctx context.Context, id uint) (*models.Actor, error) {
	a, err := d.repo.FindActor(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, actorNotFound(id)
	}
	return a, err
}

// ======================================================
// UPDATE
// ======================================================

// UpdateInput: nil fields are left untouched.
type UpdateInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
	Role     *string
}

type UpdateActor struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	emailValid validators.EmailChecker
}

func NewUpdateActor(
	repo domain.Repository,
	audit *audit.Dispatcher,
	emailValid validators.EmailChecker,
) *UpdateActor {
	if emailValid == nil {
		emailValid = validators.IsEmailFormatValid
	}
	return &UpdateActor{
		repo:       repo,
		audit:      audit,
		emailValid: emailValid,
	}
}

func (uc *UpdateActor) Execute(
	ctx context.Context,
	requester *models.Actor,
	id uint,
	in UpdateInput,
) (*models.Actor, error) {

	var a *models.Actor
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		a, err = tx.FindActorForUpdate(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return actorNotFound(id)
		}
		if err != nil {
			return err
		}

		if err := uc.apply(a, in); err != nil {
			return err
		}
		return tx.SaveActor(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("actor updated", "actor_id", a.ID, "updated_by", requester.ID)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &requester.ID,
		Action:   audit.ActionActorUpdated,
		Entity:   "actor",
		EntityID: &a.ID,
	})

	return a, nil
}

func (uc *UpdateActor) apply(a *models.Actor, in UpdateInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return httperr.ErrBusinessf(httperr.CodeInvalidRequest, "name cannot be empty")
		}
		a.Name = name
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != "" && !uc.emailValid(email) {
			return httperr.ErrBusinessf(httperr.CodeInvalidEmail, "the e-mail domain does not look valid")
		}
		a.Email = email
	}

	if in.Phone != nil {
		a.Phone = strings.TrimSpace(*in.Phone)
	}

	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return err
		}
		a.PasswordHash = hash
	}

	if in.Role != nil {
		role, ok := domain.ParseRole(strings.ToUpper(strings.TrimSpace(*in.Role)))
		if !ok {
			return httperr.ErrBusinessf(httperr.CodeInvalidRole, "unknown role %q", *in.Role)
		}
		a.Role = string(role)
	}

	return nil
}

// ======================================================
// DISABLE
// ======================================================

// DisableActor is a soft delete; disabled actors keep their bookings.
type DisableActor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewDisableActor(repo domain.Repository, audit *audit.Dispatcher) *DisableActor {
	return &DisableActor{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *DisableActor) Execute(ctx context.Context, requester *models.Actor, id uint) error {
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		a, err := tx.FindActorForUpdate(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return actorNotFound(id)
		}
		if err != nil {
			return err
		}

		if !a.Active() {
			return httperr.ErrBusinessf(httperr.CodeAlreadyDisabled, "actor %d is already disabled", id)
		}

		at := uc.now()
		a.DisabledAt = &at
		return tx.SaveActor(ctx, a)
	})
	if err != nil {
		return err
	}

	slog.Info("actor disabled", "actor_id", id, "disabled_by", requester.ID)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &requester.ID,
		Action:   audit.ActionActorDisabled,
		Entity:   "actor",
		EntityID: &id,
	})

	return nil
}
