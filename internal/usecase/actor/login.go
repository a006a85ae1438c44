package actor

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Actor     *models.Actor
}

// Login checks credentials and issues an HS256 token carrying the actor id
// (sub) and role.
type Login struct {
	repo   domain.Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewLogin(repo domain.Repository, secret string, ttl time.Duration) *Login {
	return &Login{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*LoginResult, error) {
	a, err := uc.repo.FindActorByUsername(ctx, normalizeUsername(username))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, err
	}

	if !a.Active() {
		return nil, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}

	now := uc.now()
	exp := now.Add(uc.ttl)

	claims := jwt.MapClaims{
		"sub":  a.ID,
		"role": a.Role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: exp, Actor: a}, nil
}

func invalidCredentials() error {
	return httperr.ErrBusinessf(httperr.CodeInvalidCredentials, "invalid username or password")
}
