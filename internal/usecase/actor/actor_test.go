package actor

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
)

const secret = "test-secret"

func newRepo(t *testing.T) domain.Repository {
	t.Helper()
	return repository.NewSchedulingGormRepository(testutil.NewDB(t))
}

func register(t *testing.T, repo domain.Repository, username string) RegisterInput {
	t.Helper()

	in := RegisterInput{
		Name:     "Ana Souza",
		Email:    "Ana@Salon.com",
		Phone:    "11912345678",
		Username: username,
		Password: "s3cret!",
	}
	_, err := NewRegisterActor(repo, nil, nil).Execute(context.Background(), in)
	require.NoError(t, err)
	return in
}

func strPtr(s string) *string { return &s }

// ------------------------------------------------------
// register
// ------------------------------------------------------

func TestRegister(t *testing.T) {
	repo := newRepo(t)

	a, err := NewRegisterActor(repo, nil, nil).Execute(context.Background(), RegisterInput{
		Name:     " Ana ",
		Email:    "Ana@Salon.com",
		Username: " Ana ",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	assert.NotZero(t, a.ID)
	assert.Equal(t, "Ana", a.Name)
	assert.Equal(t, "ana", a.Username)
	assert.Equal(t, "ana@salon.com", a.Email)
	assert.Equal(t, string(domain.RoleClient), a.Role)
	assert.NotEqual(t, "s3cret!", a.PasswordHash)
	assert.True(t, a.Schedule.Configured)
	assert.True(t, a.Schedule.Lock.Open)
	assert.Nil(t, a.Schedule.Lock.Date)
}

func TestRegister_Rejections(t *testing.T) {
	repo := newRepo(t)
	register(t, repo, "ana")
	ctx := context.Background()

	_, err := NewRegisterActor(repo, nil, nil).Execute(ctx, RegisterInput{
		Name: "Other", Username: "ANA", Password: "s3cret!",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUsernameTaken), "got %v", err)

	_, err = NewRegisterActor(repo, nil, nil).Execute(ctx, RegisterInput{
		Name: "Bia", Username: "bia", Password: "123",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest), "got %v", err)

	_, err = NewRegisterActor(repo, nil, nil).Execute(ctx, RegisterInput{
		Username: "bia", Password: "s3cret!",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest), "got %v", err)

	rejectAll := func(string) bool { return false }
	_, err = NewRegisterActor(repo, nil, rejectAll).Execute(ctx, RegisterInput{
		Name: "Bia", Username: "bia", Password: "s3cret!", Email: "bia@nowhere.invalid",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidEmail), "got %v", err)
}

// ------------------------------------------------------
// login
// ------------------------------------------------------

func TestLogin(t *testing.T) {
	repo := newRepo(t)
	in := register(t, repo, "ana")

	res, err := NewLogin(repo, secret, time.Hour).Execute(context.Background(), "ANA", in.Password)
	require.NoError(t, err)
	assert.Equal(t, "ana", res.Actor.Username)

	tok, err := jwt.Parse(res.Token, func(*jwt.Token) (any, error) { return []byte(secret), nil })
	require.NoError(t, err)

	claims := tok.Claims.(jwt.MapClaims)
	assert.EqualValues(t, res.Actor.ID, claims["sub"])
	assert.Equal(t, string(domain.RoleClient), claims["role"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newRepo(t)
	in := register(t, repo, "ana")
	uc := NewLogin(repo, secret, time.Hour)
	ctx := context.Background()

	_, err := uc.Execute(ctx, "ana", "wrong-password")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials), "got %v", err)

	_, err = uc.Execute(ctx, "nobody", in.Password)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials), "got %v", err)

	a, err := repo.FindActorByUsername(ctx, "ana")
	require.NoError(t, err)
	require.NoError(t, NewDisableActor(repo, nil).Execute(ctx, a, a.ID))

	_, err = uc.Execute(ctx, "ana", in.Password)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials), "got %v", err)
}

// ------------------------------------------------------
// directory / update / disable
// ------------------------------------------------------

func TestDirectory(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSchedulingGormRepository(db)
	ctx := context.Background()

	c := testutil.CreateActor(t, db, "c", domain.RoleClient)
	p := testutil.CreateActor(t, db, "p", domain.RoleProfessional)
	gone := testutil.CreateActor(t, db, "gone", domain.RoleProfessional)
	testutil.Disable(t, db, gone)

	d := NewDirectory(repo)

	all, err := d.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pros, err := d.List(ctx, "professional")
	require.NoError(t, err)
	require.Len(t, pros, 1)
	assert.Equal(t, p.ID, pros[0].ID)

	_, err = d.List(ctx, "owner")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRole), "got %v", err)

	got, err := d.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Username)

	_, err = d.Get(ctx, 404)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound), "got %v", err)
}

func TestUpdateActor(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSchedulingGormRepository(db)
	ctx := context.Background()

	admin := testutil.CreateActor(t, db, "admin", domain.RoleAdministrator)
	a := testutil.CreateActor(t, db, "ana", domain.RoleClient)

	uc := NewUpdateActor(repo, nil, nil)

	got, err := uc.Execute(ctx, admin, a.ID, UpdateInput{
		Phone: strPtr("11900000000"),
		Role:  strPtr("professional"),
	})
	require.NoError(t, err)
	assert.Equal(t, "11900000000", got.Phone)
	assert.Equal(t, string(domain.RoleProfessional), got.Role)
	assert.Equal(t, "ana", got.Name, "untouched fields are kept")

	reloaded, err := repo.FindActor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleProfessional), reloaded.Role)

	_, err = uc.Execute(ctx, admin, a.ID, UpdateInput{Role: strPtr("owner")})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRole), "got %v", err)

	_, err = uc.Execute(ctx, admin, a.ID, UpdateInput{Password: strPtr("abc")})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest), "got %v", err)

	_, err = uc.Execute(ctx, admin, 404, UpdateInput{})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound), "got %v", err)
}

func TestUpdateActor_PasswordIsUsableForLogin(t *testing.T) {
	repo := newRepo(t)
	register(t, repo, "ana")
	ctx := context.Background()

	a, err := repo.FindActorByUsername(ctx, "ana")
	require.NoError(t, err)

	_, err = NewUpdateActor(repo, nil, nil).Execute(ctx, a, a.ID, UpdateInput{Password: strPtr("n3w-pass")})
	require.NoError(t, err)

	_, err = NewLogin(repo, secret, time.Hour).Execute(ctx, "ana", "n3w-pass")
	assert.NoError(t, err)
}

func TestDisableActor(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSchedulingGormRepository(db)
	ctx := context.Background()

	admin := testutil.CreateActor(t, db, "admin", domain.RoleAdministrator)
	p := testutil.CreateActor(t, db, "p", domain.RoleProfessional)

	uc := NewDisableActor(repo, nil)
	require.NoError(t, uc.Execute(ctx, admin, p.ID))

	err := uc.Execute(ctx, admin, p.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyDisabled), "got %v", err)

	err = uc.Execute(ctx, admin, 404)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound), "got %v", err)

	_, err = NewCurrentActor(repo).Resolve(ctx, p.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated), "got %v", err)
}

func TestCurrentActor(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSchedulingGormRepository(db)
	a := testutil.CreateActor(t, db, "ana", domain.RoleClient)

	got, err := NewCurrentActor(repo).Resolve(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = NewCurrentActor(repo).Resolve(context.Background(), 999)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated), "got %v", err)
}
