package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
)

func TestFindActor_NotFound(t *testing.T) {
	repo := NewSchedulingGormRepository(testutil.NewDB(t))

	_, err := repo.FindActor(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListActiveActors_OrderedAndFiltered(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSchedulingGormRepository(db)

	p1 := testutil.CreateActor(t, db, "ana", domain.RoleProfessional)
	testutil.CreateActor(t, db, "bia", domain.RoleClient)
	p2 := testutil.CreateActor(t, db, "caio", domain.RoleProfessional)
	p3 := testutil.CreateActor(t, db, "duda", domain.RoleProfessional)
	testutil.Disable(t, db, p2)

	got, err := repo.ListActiveActors(context.Background(), domain.RoleProfessional)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, p1.ID, got[0].ID)
	assert.Equal(t, p3.ID, got[1].ID)
}

func TestSaveActor_PersistsLockState(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSchedulingGormRepository(db)
	ctx := context.Background()

	p := testutil.CreateActor(t, db, "ana", domain.RoleProfessional)
	date := "2026-10-20"
	p.Schedule.Lock = models.LockState{Open: false, Date: &date}
	require.NoError(t, repo.SaveActor(ctx, p))

	reloaded, err := repo.FindActor(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Schedule.Lock.Open)
	require.NotNil(t, reloaded.Schedule.Lock.Date)
	assert.Equal(t, date, *reloaded.Schedule.Lock.Date)
	assert.True(t, reloaded.Schedule.Configured)
}

func TestExistsPending(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSchedulingGormRepository(db)
	ctx := context.Background()

	client := testutil.CreateActor(t, db, "cli", domain.RoleClient)
	other := testutil.CreateActor(t, db, "other", domain.RoleClient)
	pro := testutil.CreateActor(t, db, "pro", domain.RoleProfessional)
	pro2 := testutil.CreateActor(t, db, "pro2", domain.RoleProfessional)

	testutil.CreateBooking(t, db, client, pro, "2026-10-19", 600, domain.StatusPending)
	testutil.CreateBooking(t, db, other, pro2, "2026-10-19", 630, domain.StatusCancelled)

	ok, err := repo.ExistsPending(ctx, nil, &pro.ID, "2026-10-19", 600)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsPending(ctx, &client.ID, &pro2.ID, "2026-10-19", 600)
	require.NoError(t, err)
	assert.True(t, ok, "client side matches")

	ok, err = repo.ExistsPending(ctx, &other.ID, &pro2.ID, "2026-10-19", 630)
	require.NoError(t, err)
	assert.False(t, ok, "cancelled bookings do not count")

	ok, err = repo.ExistsPending(ctx, nil, nil, "2026-10-19", 600)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateBooking_DuplicatePendingIsTranslated(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSchedulingGormRepository(db)
	ctx := context.Background()

	c1 := testutil.CreateActor(t, db, "c1", domain.RoleClient)
	c2 := testutil.CreateActor(t, db, "c2", domain.RoleClient)
	pro := testutil.CreateActor(t, db, "pro", domain.RoleProfessional)

	first := domain.NewPending(c1, pro, "2026-10-19", 600, domain.ServiceHair, "")
	require.NoError(t, repo.CreateBooking(ctx, first))

	second := domain.NewPending(c2, pro, "2026-10-19", 600, domain.ServiceHair, "")
	err := repo.CreateBooking(ctx, second)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestFindBooking_PreloadsActors(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSchedulingGormRepository(db)

	c := testutil.CreateActor(t, db, "cli", domain.RoleClient)
	p := testutil.CreateActor(t, db, "pro", domain.RoleProfessional)
	b := testutil.CreateBooking(t, db, c, p, "2026-10-19", 600, domain.StatusPending)

	got, err := repo.FindBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "cli", got.Client.Name)
	assert.Equal(t, "pro", got.Professional.Name)
}

func TestListBookingsByClientOrProfessional(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSchedulingGormRepository(db)

	c := testutil.CreateActor(t, db, "cli", domain.RoleClient)
	p := testutil.CreateActor(t, db, "pro", domain.RoleProfessional)
	p2 := testutil.CreateActor(t, db, "pro2", domain.RoleProfessional)
	testutil.CreateBooking(t, db, c, p, "2026-10-20", 600, domain.StatusPending)
	testutil.CreateBooking(t, db, c, p2, "2026-10-19", 600, domain.StatusPending)

	got, err := repo.ListBookingsByClientOrProfessional(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = repo.ListBookingsByClient(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-10-19", got[0].Date)
}

func TestTransaction_RollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSchedulingGormRepository(db)
	ctx := context.Background()

	c := testutil.CreateActor(t, db, "cli", domain.RoleClient)
	p := testutil.CreateActor(t, db, "pro", domain.RoleProfessional)

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateBooking(ctx, domain.NewPending(c, p, "2026-10-19", 600, domain.ServiceHair, "")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.ListBookingsByClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
