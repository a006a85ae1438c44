package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint  `gorm:"not null;index" json:"client_id"`
	Client   Actor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ProfessionalID uint  `gorm:"not null;index" json:"professional_id"`
	Professional   Actor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Date is a business-timezone calendar date (YYYY-MM-DD).
	Date string `gorm:"size:10;not null;index" json:"date"`
	// StartMinute is minutes since midnight, always a multiple of 30.
	StartMinute int `gorm:"not null" json:"start_minute"`

	Service      string `gorm:"size:30;not null" json:"service"`
	ContactPhone string `gorm:"size:20" json:"contact_phone"`

	Status string `gorm:"size:20;not null;index" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
