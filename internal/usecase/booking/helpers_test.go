package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/keylock"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const (
	today    = "2026-10-18"
	tomorrow = "2026-10-19"
)

// now is 08:00 on today, in UTC.
var now = time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

type env struct {
	db     *gorm.DB
	repo   domain.Repository
	locker keylock.Locker
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := testutil.NewDB(t)
	return &env{
		db:     db,
		repo:   repository.NewSchedulingGormRepository(db),
		locker: keylock.NewLocal(5 * time.Second),
	}
}

func (e *env) create(attempts int, at time.Time) *CreateBooking {
	return NewCreateBooking(e.repo, e.locker, nil, timezone.FixedClock(at), attempts)
}

func uintPtr(v uint) *uint { return &v }

// staleRepo hides existing PENDING bookings from the first n conflict
// probes, reproducing a concurrent create that commits between the check
// and the insert.
type staleRepo struct {
	domain.Repository

	mu    *sync.Mutex
	blind *int
}

func newStaleRepo(inner domain.Repository, n int) *staleRepo {
	return &staleRepo{Repository: inner, mu: &sync.Mutex{}, blind: &n}
}

func (r *staleRepo) ExistsPending(ctx context.Context, clientID, professionalID *uint, date string, minute int) (bool, error) {
	r.mu.Lock()
	if *r.blind > 0 {
		*r.blind--
		r.mu.Unlock()
		return false, nil
	}
	r.mu.Unlock()

	return r.Repository.ExistsPending(ctx, clientID, professionalID, date, minute)
}

func (r *staleRepo) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	return r.Repository.Transaction(ctx, func(tx domain.Repository) error {
		return fn(&staleRepo{Repository: tx, mu: r.mu, blind: r.blind})
	})
}
