package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ------------------------------------------------------
// cancel
// ------------------------------------------------------

func TestCancel_ByClient(t *testing.T) {
	e := newEnv(t)
	c := testutil.CreateActor(t, e.db, "c", domain.RoleClient)
	p := testutil.CreateActor(t, e.db, "p", domain.RoleProfessional)
	b := testutil.CreateBooking(t, e.db, c, p, tomorrow, 600, domain.StatusPending)

	uc := NewCancelBooking(e.repo, nil, timezone.FixedClock(now))

	got, err := uc.Execute(context.Background(), c, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)

	var stored models.Booking
	require.NoError(t, e.db.First(&stored, b.ID).Error)
	assert.Equal(t, string(domain.StatusCancelled), stored.Status)
	assert.NotNil(t, stored.CancelledAt)

	_, err = uc.Execute(context.Background(), c, b.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyCancelled), "got %v", err)
}

func TestCancel_FreesTheSlot(t *testing.T) {
	e := newEnv(t)
	c1 := testutil.CreateActor(t, e.db, "c1", domain.RoleClient)
	c2 := testutil.CreateActor(t, e.db, "c2", domain.RoleClient)
	p := testutil.CreateActor(t, e.db, "p", domain.RoleProfessional)
	b := testutil.CreateBooking(t, e.db, c1, p, tomorrow, 600, domain.StatusPending)

	_, err := NewCancelBooking(e.repo, nil, timezone.FixedClock(now)).Execute(context.Background(), p, b.ID)
	require.NoError(t, err)

	_, err = e.create(3, now).Execute(context.Background(), c2, CreateBookingInput{
		Date: tomorrow, Minute: 600, Service: domain.ServiceHair, ProfessionalID: &p.ID,
	})
	assert.NoError(t, err)
}

func TestCancel_Authorization(t *testing.T) {
	e := newEnv(t)
	c := testutil.CreateActor(t, e.db, "c", domain.RoleClient)
	stranger := testutil.CreateActor(t, e.db, "stranger", domain.RoleClient)
	otherPro := testutil.CreateActor(t, e.db, "other", domain.RoleProfessional)
	recep := testutil.CreateActor(t, e.db, "recep", domain.RoleReceptionist)
	p := testutil.CreateActor(t, e.db, "p", domain.RoleProfessional)
	b := testutil.CreateBooking(t, e.db, c, p, tomorrow, 600, domain.StatusPending)

	uc := NewCancelBooking(e.repo, nil, timezone.FixedClock(now))

	for _, a := range []*models.Actor{stranger, otherPro} {
		_, err := uc.Execute(context.Background(), a, b.ID)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "%s: got %v", a.Username, err)
	}

	_, err := uc.Execute(context.Background(), recep, b.ID)
	assert.NoError(t, err)
}

func TestCancel_PastWindow(t *testing.T) {
	e := newEnv(t)
	c := testutil.CreateActor(t, e.db, "c", domain.RoleClient)
	p := testutil.CreateActor(t, e.db, "p", domain.RoleProfessional)
	yesterday := testutil.CreateBooking(t, e.db, c, p, "2026-10-17", 600, domain.StatusPending)
	earlierToday := testutil.CreateBooking(t, e.db, c, p, today, 480, domain.StatusPending)

	late := time.Date(2026, 10, 18, 19, 0, 0, 0, time.UTC)
	uc := NewCancelBooking(e.repo, nil, timezone.FixedClock(late))

	_, err := uc.Execute(context.Background(), c, yesterday.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodePastCancellationWindow), "got %v", err)

	_, err = uc.Execute(context.Background(), c, earlierToday.ID)
	assert.NoError(t, err)
}

func TestCancel_NotFound(t *testing.T) {
	e := newEnv(t)
	c := testutil.CreateActor(t, e.db, "c", domain.RoleClient)

	_, err := NewCancelBooking(e.repo, nil, timezone.FixedClock(now)).Execute(context.Background(), c, 404)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound), "got %v", err)
}

func TestCancel_ConfirmedBookingCanStillBeCancelled(t *testing.T) {
	e := newEnv(t)
	c := testutil.CreateActor(t, e.db, "c", domain.RoleClient)
	p := testutil.CreateActor(t, e.db, "p", domain.RoleProfessional)
	b := testutil.CreateBooking(t, e.db, c, p, tomorrow, 600, domain.StatusConfirmed)

	got, err := NewCancelBooking(e.repo, nil, timezone.FixedClock(now)).Execute(context.Background(), c, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
}

// ------------------------------------------------------
// complete
// ------------------------------------------------------

func TestComplete_Window(t *testing.T) {
	e := newEnv(t)
	c := testutil.CreateActor(t, e.db, "c", domain.RoleClient)
	p := testutil.CreateActor(t, e.db, "p", domain.RoleProfessional)
	b := testutil.CreateBooking(t, e.db, c, p, today, 540, domain.StatusPending)

	early := time.Date(2026, 10, 18, 9, 15, 0, 0, time.UTC)
	_, err := NewCompleteBooking(e.repo, nil, timezone.FixedClock(early)).Execute(context.Background(), p, b.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTooEarly), "got %v", err)

	later := time.Date(2026, 10, 18, 9, 31, 0, 0, time.UTC)
	got, err := NewCompleteBooking(e.repo, nil, timezone.FixedClock(later)).Execute(context.Background(), nil, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)

	var stored models.Booking
	require.NoError(t, e.db.First(&stored, b.ID).Error)
	assert.Equal(t, string(domain.StatusConfirmed), stored.Status)
	assert.NotNil(t, stored.CompletedAt)
}

func TestComplete_NotFound(t *testing.T) {
	e := newEnv(t)

	_, err := NewCompleteBooking(e.repo, nil, timezone.FixedClock(now)).Execute(context.Background(), nil, 9)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound), "got %v", err)
}

// ------------------------------------------------------
// ownership
// ------------------------------------------------------

func TestOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := testutil.CreateActor(t, e.db, "c", domain.RoleClient)
	p := testutil.CreateActor(t, e.db, "p", domain.RoleProfessional)
	b := testutil.CreateBooking(t, e.db, c, p, tomorrow, 600, domain.StatusPending)

	o := NewOwnership(e.repo)

	owned, err := o.IsOwnedByClient(ctx, b.ID, c)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = o.IsOwnedByClient(ctx, b.ID, p)
	require.NoError(t, err)
	assert.False(t, owned)

	owned, err = o.IsOwnedByProfessional(ctx, b.ID, p)
	require.NoError(t, err)
	assert.True(t, owned)

	_, err = o.IsOwnedByProfessional(ctx, 999, p)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound), "got %v", err)
}

func TestOwnership_Get(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := testutil.CreateActor(t, e.db, "c", domain.RoleClient)
	stranger := testutil.CreateActor(t, e.db, "stranger", domain.RoleClient)
	admin := testutil.CreateActor(t, e.db, "admin", domain.RoleAdministrator)
	p := testutil.CreateActor(t, e.db, "p", domain.RoleProfessional)
	b := testutil.CreateBooking(t, e.db, c, p, tomorrow, 600, domain.StatusPending)

	o := NewOwnership(e.repo)

	for _, a := range []*models.Actor{c, p, admin} {
		got, err := o.Get(ctx, a, b.ID)
		require.NoError(t, err, a.Username)
		assert.Equal(t, b.ID, got.ID)
	}

	_, err := o.Get(ctx, stranger, b.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "got %v", err)
}
