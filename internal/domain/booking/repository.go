package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness rule,
	// e.g. a second PENDING booking for the same slot.
	ErrDuplicate = errors.New("duplicate record")
)

// Repository is the storage port used by the scheduling engine.
type Repository interface {
	// -------- Actors --------
	FindActor(ctx context.Context, id uint) (*models.Actor, error)

	FindActorForUpdate(ctx context.Context, id uint) (*models.Actor, error)

	FindActorByUsername(ctx context.Context, username string) (*models.Actor, error)

	// ListActiveActors returns non-disabled actors with role, by ascending id.
	// An empty role lists every active actor.
	ListActiveActors(ctx context.Context, role Role) ([]models.Actor, error)

	CreateActor(ctx context.Context, actor *models.Actor) error

	SaveActor(ctx context.Context, actor *models.Actor) error

	// -------- Bookings (read) --------
	FindBooking(ctx context.Context, id uint) (*models.Booking, error)

	FindBookingForUpdate(ctx context.Context, id uint) (*models.Booking, error)

	ListBookingsByClient(ctx context.Context, clientID uint) ([]models.Booking, error)

	ListBookingsByProfessional(ctx context.Context, professionalID uint) ([]models.Booking, error)

	ListBookingsByClientOrProfessional(ctx context.Context, actorID uint) ([]models.Booking, error)

	ListBookingsByProfessionalAndDate(ctx context.Context, professionalID uint, date string) ([]models.Booking, error)

	ListBookingsByClientAndDate(ctx context.Context, clientID uint, date string) ([]models.Booking, error)

	// ExistsPending reports a PENDING booking at (date, minute) for the
	// client or the professional. A nil id is not matched.
	ExistsPending(ctx context.Context, clientID, professionalID *uint, date string, minute int) (bool, error)

	// -------- Bookings (write) --------
	CreateBooking(ctx context.Context, b *models.Booking) error

	UpdateBooking(ctx context.Context, b *models.Booking) error

	// -------- Transactions --------
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}
