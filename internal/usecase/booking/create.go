package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/keylock"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// ClientID is required for staff requesters and optional for clients,
	// who may only book for themselves.
	ClientID *uint
	Phone    string

	Date    string
	Minute  int
	Service domain.Service

	// Nil lets the AssignmentResolver pick a professional.
	ProfessionalID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	locker   keylock.Locker
	audit    *audit.Dispatcher
	clock    timezone.Clock
	attempts int
}

func NewCreateBooking(
	repo domain.Repository,
	locker keylock.Locker,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	attempts int,
) *CreateBooking {
	if attempts <= 0 {
		attempts = 1
	}
	return &CreateBooking{
		repo:     repo,
		locker:   locker,
		audit:    audit,
		clock:    clock,
		attempts: attempts,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	requester *models.Actor,
	in CreateBookingInput,
) (*models.Booking, error) {

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "invalid date %q", in.Date)
	}
	if _, ok := domain.ParseService(string(in.Service)); !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "unknown service %q", in.Service)
	}

	// --------------------------------------------------
	// 1. Effective client + daily limit
	// --------------------------------------------------
	client, err := uc.resolveClient(ctx, requester, in.ClientID)
	if err != nil {
		return nil, err
	}
	if err := ensureUnderDailyLimit(ctx, uc.repo, client.ID, date); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Time window
	// --------------------------------------------------
	if err := domain.ValidateStart(in.Minute); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3-6. Professional, conflict, past date, persist
	// --------------------------------------------------
	for attempt := 1; ; attempt++ {
		professional, assigned, err := uc.resolveProfessional(ctx, in.ProfessionalID, date, in.Minute)
		if err != nil {
			return nil, err
		}

		b, err := uc.commit(ctx, client, professional, assigned, date, in)
		if errors.Is(err, domain.ErrDuplicate) {
			if assigned && attempt < uc.attempts {
				slog.Warn("booking race lost, reassigning",
					"professional_id", professional.ID,
					"date", date,
					"time", timezone.FormatMinute(in.Minute),
					"attempt", attempt,
				)
				continue
			}
			return nil, slotConflict()
		}
		if err != nil {
			if be, ok := httperr.AsBusiness(err); ok {
				slog.Warn("booking rejected", "code", be.Code, "client_id", client.ID, "date", date)
			}
			return nil, err
		}

		slog.Info("booking created",
			"booking_id", b.ID,
			"client_id", b.ClientID,
			"professional_id", b.ProfessionalID,
			"date", b.Date,
			"time", timezone.FormatMinute(b.StartMinute),
			"requested_by", requester.ID,
		)

		uc.audit.Dispatch(audit.Event{
			ActorID:  &requester.ID,
			Action:   audit.ActionBookingCreated,
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{
				"professional_id": b.ProfessionalID,
				"client_id":       b.ClientID,
				"date":            b.Date,
				"time":            timezone.FormatMinute(b.StartMinute),
				"assigned":        assigned,
			},
		})

		return b, nil
	}
}

// errProfessionalTaken marks an assigned professional that was booked
// between assignment and commit. Execute retries it like a unique violation.
var errProfessionalTaken = fmt.Errorf("%w: assigned professional taken", domain.ErrDuplicate)

// commit runs the conflict and past-date checks and the insert under the
// schedule and client keys, inside one transaction.
func (uc *CreateBooking) commit(
	ctx context.Context,
	client *models.Actor,
	professional *models.Actor,
	assigned bool,
	date string,
	in CreateBookingInput,
) (*models.Booking, error) {

	release, err := keylock.LockAll(ctx, uc.locker,
		keylock.ScheduleKey(professional.ID, date),
		keylock.ClientKey(client.ID, date),
	)
	if err != nil {
		return nil, err
	}
	defer release()

	var created *models.Booking
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := ensureUnderDailyLimit(ctx, tx, client.ID, date); err != nil {
			return err
		}

		if err := checkConflict(ctx, NewConflictDetector(tx), client.ID, professional.ID, assigned, date, in.Minute); err != nil {
			return err
		}

		if err := domain.EnsureNotPast(date, in.Minute, uc.clock()); err != nil {
			return err
		}

		phone := in.Phone
		if phone == "" {
			phone = client.Phone
		}

		b := domain.NewPending(client, professional, date, in.Minute, in.Service, phone)
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (uc *CreateBooking) resolveClient(
	ctx context.Context,
	requester *models.Actor,
	clientID *uint,
) (*models.Actor, error) {

	if domain.Role(requester.Role) == domain.RoleClient {
		if clientID != nil && *clientID != requester.ID {
			return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "clients may only book for themselves")
		}
		return requester, nil
	}

	if clientID == nil {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "client_id is required")
	}

	client, err := uc.repo.FindActor(ctx, *clientID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusinessf(httperr.CodeNotFound, "client %d not found", *clientID)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// resolveProfessional reports assigned=true when the resolver chose.
func (uc *CreateBooking) resolveProfessional(
	ctx context.Context,
	professionalID *uint,
	date string,
	minute int,
) (*models.Actor, bool, error) {

	if professionalID == nil {
		p, err := NewAssignmentResolver(uc.repo).Resolve(ctx, date, minute)
		return p, true, err
	}

	p, err := uc.repo.FindActor(ctx, *professionalID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, httperr.ErrBusinessf(httperr.CodeNotFound, "professional %d not found", *professionalID)
	}
	if err != nil {
		return nil, false, err
	}
	return p, false, nil
}

// checkConflict fails with slot_conflict on a client collision. A collision
// on an assigned professional alone returns errProfessionalTaken so another
// professional can be tried.
func checkConflict(
	ctx context.Context,
	detector *ConflictDetector,
	clientID uint,
	professionalID uint,
	assigned bool,
	date string,
	minute int,
) error {

	if !assigned {
		conflict, err := detector.HasConflict(ctx, &clientID, professionalID, date, minute)
		if err != nil {
			return err
		}
		if conflict {
			return slotConflict()
		}
		return nil
	}

	clientBusy, err := detector.ClientBusy(ctx, clientID, date, minute)
	if err != nil {
		return err
	}
	if clientBusy {
		return slotConflict()
	}

	professionalBusy, err := detector.ProfessionalBusy(ctx, professionalID, date, minute)
	if err != nil {
		return err
	}
	if professionalBusy {
		return errProfessionalTaken
	}
	return nil
}

func ensureUnderDailyLimit(ctx context.Context, repo domain.Repository, clientID uint, date string) error {
	bookings, err := repo.ListBookingsByClientAndDate(ctx, clientID, date)
	if err != nil {
		return err
	}

	pending := 0
	for _, b := range bookings {
		if domain.Status(b.Status) == domain.StatusPending {
			pending++
		}
	}

	if pending >= domain.MaxPendingPerDay {
		return httperr.ErrBusinessf(
			httperr.CodeLimitExceeded,
			"a client may hold at most %d pending bookings per day",
			domain.MaxPendingPerDay,
		)
	}
	return nil
}

func slotConflict() error {
	return httperr.ErrBusinessf(httperr.CodeSlotConflict, "the requested time is already booked")
}
