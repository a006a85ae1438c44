// Package testutil builds throwaway sqlite databases and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// NewDB opens a migrated in-memory sqlite database. A single connection
// keeps every session on the same memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func CreateActor(t *testing.T, db *gorm.DB, username string, role domain.Role) *models.Actor {
	t.Helper()

	a := &models.Actor{
		Name:         username,
		Username:     username,
		Phone:        "11999999999",
		PasswordHash: "x",
		Role:         string(role),
		Schedule:     schedule.New(),
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("create actor %s: %v", username, err)
	}
	return a
}

func Disable(t *testing.T, db *gorm.DB, a *models.Actor) {
	t.Helper()

	now := time.Now()
	a.DisabledAt = &now
	if err := db.Save(a).Error; err != nil {
		t.Fatalf("disable actor: %v", err)
	}
}

func CreateBooking(t *testing.T, db *gorm.DB, client, professional *models.Actor, date string, minute int, status domain.Status) *models.Booking {
	t.Helper()

	b := &models.Booking{
		ClientID:       client.ID,
		ProfessionalID: professional.ID,
		Date:           date,
		StartMinute:    minute,
		Service:        string(domain.ServiceHair),
		Status:         string(status),
	}
	if err := db.Omit("Client", "Professional").Create(b).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}
