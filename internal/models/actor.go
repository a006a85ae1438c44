package models

import "time"

// Actor is any person known to the salon; Role decides what it may do.
type Actor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Document string `gorm:"size:20" json:"document"`
	Email    string `gorm:"size:100" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`

	Username     string `gorm:"size:60;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Role string `gorm:"size:20;not null;index" json:"role"`

	Schedule Schedule `gorm:"embedded;embeddedPrefix:schedule_" json:"schedule"`

	DisabledAt *time.Time `json:"disabled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Schedule is the professional's calendar gate. Configured is false only for
// actors persisted before schedules existed.
type Schedule struct {
	Configured bool      `json:"configured"`
	Lock       LockState `gorm:"embedded;embeddedPrefix:lock_" json:"lock"`
}

// LockState: Open == false implies Date != nil.
type LockState struct {
	Open bool    `json:"open"`
	Date *string `gorm:"size:10" json:"date"`
}

func (a *Actor) Active() bool {
	return a.DisabledAt == nil
}
