package actor

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Document string
	Email    string
	Phone    string
	Username string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

// RegisterActor is the self-service sign up; every new actor is a CLIENT
// with an open schedule. Staff roles are granted through UpdateActor.
type RegisterActor struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	emailValid validators.EmailChecker
}

// NewRegisterActor: a nil checker falls back to a format-only check.
func NewRegisterActor(
	repo domain.Repository,
	audit *audit.Dispatcher,
	emailValid validators.EmailChecker,
) *RegisterActor {
	if emailValid == nil {
		emailValid = validators.IsEmailFormatValid
	}
	return &RegisterActor{
		repo:       repo,
		audit:      audit,
		emailValid: emailValid,
	}
}

func (uc *RegisterActor) Execute(ctx context.Context, in RegisterInput) (*models.Actor, error) {
	username := normalizeUsername(in.Username)
	if username == "" || strings.TrimSpace(in.Name) == "" {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "name and username are required")
	}

	email, err := uc.normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	_, err = uc.repo.FindActorByUsername(ctx, username)
	if err == nil {
		return nil, usernameTaken(username)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	a := &models.Actor{
		Name:         strings.TrimSpace(in.Name),
		Document:     strings.TrimSpace(in.Document),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Username:     username,
		PasswordHash: hash,
		Role:         string(domain.RoleClient),
		Schedule:     schedule.New(),
	}

	if err := uc.repo.CreateActor(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, usernameTaken(username)
		}
		return nil, err
	}

	slog.Info("actor registered", "actor_id", a.ID, "username", a.Username)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &a.ID,
		Action:   audit.ActionActorRegistered,
		Entity:   "actor",
		EntityID: &a.ID,
	})

	return a, nil
}

func (uc *RegisterActor) normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", nil
	}
	if !uc.emailValid(email) {
		return "", httperr.ErrBusinessf(httperr.CodeInvalidEmail, "the e-mail domain does not look valid")
	}
	return email, nil
}

// ------------------------------------------------------
// helpers
// ------------------------------------------------------

const minPasswordLength = 6

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", httperr.ErrBusinessf(
			httperr.CodeInvalidRequest,
			"password must have at least %d characters",
			minPasswordLength,
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func usernameTaken(username string) error {
	return httperr.ErrBusinessf(httperr.CodeUsernameTaken, "username %q is already in use", username)
}

func actorNotFound(id uint) error {
	return httperr.ErrBusinessf(httperr.CodeNotFound, "actor %d not found", id)
}
