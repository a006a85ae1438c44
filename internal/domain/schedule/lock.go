package schedule

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// New returns the schedule every actor starts with: configured and open
// with no date restriction.
func New() models.Schedule {
	return models.Schedule{
		Configured: true,
		Lock:       models.LockState{Open: true},
	}
}

func ensureConfigured(a *models.Actor) error {
	if !a.Schedule.Configured {
		return httperr.ErrBusinessf(httperr.CodeNotConfigured, "professional has no schedule configured")
	}
	return nil
}

// Close replaces the lock state with a closed gate for date. Closing again
// overwrites the previous state.
func Close(a *models.Actor, date string) (models.LockState, error) {
	if err := ensureConfigured(a); err != nil {
		return models.LockState{}, err
	}

	d := date
	a.Schedule.Lock = models.LockState{Open: false, Date: &d}
	return a.Schedule.Lock, nil
}

// Open reopens the gate; only valid when the last close recorded date.
// The date is kept as a trace of the last acted-upon day.
func Open(a *models.Actor, date string) (models.LockState, error) {
	if err := ensureConfigured(a); err != nil {
		return models.LockState{}, err
	}

	current := a.Schedule.Lock
	if current.Date == nil || *current.Date != date {
		return models.LockState{}, httperr.ErrBusinessf(
			httperr.CodeNoMatchingLock,
			"there is no lock for %s on this schedule",
			date,
		)
	}

	a.Schedule.Lock.Open = true
	return a.Schedule.Lock, nil
}

func IsOpen(a *models.Actor) bool {
	return a.Schedule.Lock.Open
}
