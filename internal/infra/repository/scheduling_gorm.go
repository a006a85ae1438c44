package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Errors
// --------------------------------------------------

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	// sqlite reports constraint failures as plain driver errors.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// forUpdate adds a row lock where the dialect supports it.
func (r *SchedulingGormRepository) forUpdate(q *gorm.DB) *gorm.DB {
	if r.db.Dialector.Name() == "postgres" {
		return q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

// --------------------------------------------------
// Actors
// --------------------------------------------------

func (r *SchedulingGormRepository) FindActor(
	ctx context.Context,
	id uint,
) (*models.Actor, error) {

	var actor models.Actor
	if err := r.db.WithContext(ctx).First(&actor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &actor, nil
}

func (r *SchedulingGormRepository) FindActorForUpdate(
	ctx context.Context,
	id uint,
) (*models.Actor, error) {

	var actor models.Actor
	if err := r.forUpdate(r.db.WithContext(ctx)).First(&actor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &actor, nil
}

func (r *SchedulingGormRepository) FindActorByUsername(
	ctx context.Context,
	username string,
) (*models.Actor, error) {

	var actor models.Actor
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&actor).Error; err != nil {
		return nil, translate(err)
	}
	return &actor, nil
}

func (r *SchedulingGormRepository) ListActiveActors(
	ctx context.Context,
	role domain.Role,
) ([]models.Actor, error) {

	q := r.db.WithContext(ctx).Where("disabled_at IS NULL")
	if role != "" {
		q = q.Where("role = ?", string(role))
	}

	var actors []models.Actor
	if err := q.Order("id ASC").Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

func (r *SchedulingGormRepository) CreateActor(
	ctx context.Context,
	actor *models.Actor,
) error {
	return translate(r.db.WithContext(ctx).Create(actor).Error)
}

func (r *SchedulingGormRepository) SaveActor(
	ctx context.Context,
	actor *models.Actor,
) error {
	return translate(r.db.WithContext(ctx).Save(actor).Error)
}

// --------------------------------------------------
// Bookings (read)
// --------------------------------------------------

func (r *SchedulingGormRepository) FindBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *SchedulingGormRepository) FindBookingForUpdate(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.forUpdate(r.db.WithContext(ctx)).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *SchedulingGormRepository) listBookings(
	ctx context.Context,
	query string,
	args ...any,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Where(query, args...).
		Order("date ASC, start_minute ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *SchedulingGormRepository) ListBookingsByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {
	return r.listBookings(ctx, "client_id = ?", clientID)
}

func (r *SchedulingGormRepository) ListBookingsByProfessional(
	ctx context.Context,
	professionalID uint,
) ([]models.Booking, error) {
	return r.listBookings(ctx, "professional_id = ?", professionalID)
}

func (r *SchedulingGormRepository) ListBookingsByClientOrProfessional(
	ctx context.Context,
	actorID uint,
) ([]models.Booking, error) {
	return r.listBookings(ctx, "(client_id = ? OR professional_id = ?)", actorID, actorID)
}

func (r *SchedulingGormRepository) ListBookingsByProfessionalAndDate(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]models.Booking, error) {
	return r.listBookings(ctx, "professional_id = ? AND date = ?", professionalID, date)
}

func (r *SchedulingGormRepository) ListBookingsByClientAndDate(
	ctx context.Context,
	clientID uint,
	date string,
) ([]models.Booking, error) {
	return r.listBookings(ctx, "client_id = ? AND date = ?", clientID, date)
}

func (r *SchedulingGormRepository) ExistsPending(
	ctx context.Context,
	clientID *uint,
	professionalID *uint,
	date string,
	minute int,
) (bool, error) {

	if clientID == nil && professionalID == nil {
		return false, nil
	}

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ? AND date = ? AND start_minute = ?", string(domain.StatusPending), date, minute)

	switch {
	case clientID != nil && professionalID != nil:
		q = q.Where("(client_id = ? OR professional_id = ?)", *clientID, *professionalID)
	case clientID != nil:
		q = q.Where("client_id = ?", *clientID)
	default:
		q = q.Where("professional_id = ?", *professionalID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Bookings (write)
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error)
}

func (r *SchedulingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error)
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *SchedulingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SchedulingGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
