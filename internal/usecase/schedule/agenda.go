package schedule

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// AgendaQuery serves the read-side views of bookings.
type AgendaQuery struct {
	repo domain.Repository
}

func NewAgendaQuery(repo domain.Repository) *AgendaQuery {
	return &AgendaQuery{repo: repo}
}

// MyAgenda lists the actor's PENDING bookings, as client or professional.
func (q *AgendaQuery) MyAgenda(ctx context.Context, actor *models.Actor) ([]models.Booking, error) {
	all, err := q.repo.ListBookingsByClientOrProfessional(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	pending := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if domain.Status(b.Status) == domain.StatusPending {
			pending = append(pending, b)
		}
	}
	return pending, nil
}

// ProfessionalAgenda lists every booking of the professional, any status.
func (q *AgendaQuery) ProfessionalAgenda(ctx context.Context, professionalID uint) ([]dto.ProfessionalAgendaItemDTO, error) {
	if _, err := findActor(ctx, q.repo, professionalID); err != nil {
		return nil, err
	}

	bookings, err := q.repo.ListBookingsByProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProfessionalAgendaItemDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.ToProfessionalAgendaItem(&bookings[i]))
	}
	return out, nil
}

func (q *AgendaQuery) ClientAgenda(ctx context.Context, clientID uint) ([]dto.ClientAgendaItemDTO, error) {
	if _, err := findActor(ctx, q.repo, clientID); err != nil {
		return nil, err
	}

	bookings, err := q.repo.ListBookingsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ClientAgendaItemDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.ToClientAgendaItem(&bookings[i]))
	}
	return out, nil
}
