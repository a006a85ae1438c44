package schedule

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	lockstate "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/keylock"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// SlotAvailability lists a professional's free slot starts for a date.
// Results are computed on every call.
type SlotAvailability struct {
	repo   domain.Repository
	locker keylock.Locker
}

func NewSlotAvailability(
	repo domain.Repository,
	locker keylock.Locker,
) *SlotAvailability {
	return &SlotAvailability{
		repo:   repo,
		locker: locker,
	}
}

// Execute returns minutes of day in ascending order. Lunch slots are
// listed; ValidateStart rejects them at creation.
func (uc *SlotAvailability) Execute(
	ctx context.Context,
	professionalID uint,
	raw string,
) ([]int, error) {

	date, err := timezone.ParseDate(raw)
	if err != nil {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "invalid date %q", raw)
	}

	release, err := uc.locker.Lock(ctx, keylock.ScheduleKey(professionalID, date))
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// Professional + gate
	// --------------------------------------------------
	p, err := findActor(ctx, uc.repo, professionalID)
	if err != nil {
		return nil, err
	}
	if domain.Role(p.Role) != domain.RoleProfessional {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidRole, "actor %d is not a professional", professionalID)
	}
	if !lockstate.IsOpen(p) {
		return nil, httperr.ErrBusinessf(httperr.CodeScheduleClosed, "this professional's schedule is closed")
	}

	// --------------------------------------------------
	// Taken slots
	// --------------------------------------------------
	bookings, err := uc.repo.ListBookingsByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[int]bool, len(bookings))
	for _, b := range bookings {
		if domain.Status(b.Status) == domain.StatusPending {
			taken[b.StartMinute] = true
		}
	}

	free := make([]int, 0, len(domain.DaySlots()))
	for _, m := range domain.DaySlots() {
		if !taken[m] {
			free = append(free, m)
		}
	}

	return free, nil
}
