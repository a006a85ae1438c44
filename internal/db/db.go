package db

import (
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		fatal("failed to connect database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		fatal("failed to get sql.DB", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		fatal("failed to migrate", err)
	}

	return db
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

// pendingIndexes enforce at most one PENDING booking per professional slot
// and per client slot, across every process writing to the database.
var pendingIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_bookings_professional_pending
		ON bookings (professional_id, date, start_minute)
		WHERE status = 'PENDING'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_bookings_client_pending
		ON bookings (client_id, date, start_minute)
		WHERE status = 'PENDING'`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Actor{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	for _, stmt := range pendingIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	// Actors created before schedules existed get the default open gate.
	return db.Exec(`
		UPDATE actors
		SET schedule_configured = true, schedule_lock_open = true
		WHERE schedule_configured IS NULL
	`).Error
}
