package db

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// SeedAdmin creates the first administrator when ADMIN_USERNAME and
// ADMIN_PASSWORD are set and the username is free.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.Actor
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Actor{
		Name:         "Administrator",
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         string(domain.RoleAdministrator),
		Schedule:     schedule.New(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	slog.Info("administrator seeded", "actor_id", admin.ID, "username", admin.Username)
	return nil
}
