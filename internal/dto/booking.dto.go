package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type BookingDTO struct {
	ID             uint       `json:"id"`
	ClientID       uint       `json:"client_id"`
	ProfessionalID uint       `json:"professional_id"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	Service        string     `json:"service"`
	ContactPhone   string     `json:"contact_phone"`
	Status         string     `json:"status"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// ProfessionalAgendaItemDTO is one line of a professional's agenda, seen
// from the client side.
type ProfessionalAgendaItemDTO struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Service     string `json:"service"`
	Status      string `json:"status"`
}

type ClientAgendaItemDTO struct {
	ID                uint   `json:"id"`
	ProfessionalName  string `json:"professional_name"`
	ProfessionalPhone string `json:"professional_phone"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	Service           string `json:"service"`
	Status            string `json:"status"`
}

func FromBooking(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:             b.ID,
		ClientID:       b.ClientID,
		ProfessionalID: b.ProfessionalID,
		Date:           b.Date,
		Time:           timezone.FormatMinute(b.StartMinute),
		Service:        b.Service,
		ContactPhone:   b.ContactPhone,
		Status:         b.Status,
		CancelledAt:    b.CancelledAt,
		CompletedAt:    b.CompletedAt,
	}
}

func FromBookings(bs []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bs))
	for i := range bs {
		out = append(out, FromBooking(&bs[i]))
	}
	return out
}

// ToProfessionalAgendaItem expects Client to be preloaded. The booking's
// contact phone wins over the client's profile phone.
func ToProfessionalAgendaItem(b *models.Booking) ProfessionalAgendaItemDTO {
	phone := b.ContactPhone
	if phone == "" {
		phone = b.Client.Phone
	}

	return ProfessionalAgendaItemDTO{
		ID:          b.ID,
		ClientName:  b.Client.Name,
		ClientPhone: phone,
		Date:        b.Date,
		Time:        timezone.FormatMinute(b.StartMinute),
		Service:     b.Service,
		Status:      b.Status,
	}
}

// ToClientAgendaItem expects Professional to be preloaded.
func ToClientAgendaItem(b *models.Booking) ClientAgendaItemDTO {
	return ClientAgendaItemDTO{
		ID:                b.ID,
		ProfessionalName:  b.Professional.Name,
		ProfessionalPhone: b.Professional.Phone,
		Date:              b.Date,
		Time:              timezone.FormatMinute(b.StartMinute),
		Service:           b.Service,
		Status:            b.Status,
	}
}
