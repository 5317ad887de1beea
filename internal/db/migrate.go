package db

import (
	"fmt"

	"github.com/702greens/farmos/internal/models"
	"gorm.io/gorm"
)

// AllModels returns every GORM model farmos persists.
func AllModels() []interface{} {
	return []interface{}{
		&models.DailyLog{},
	}
}

// AutoMigrate idempotently creates or updates the daily_logs table. Called
// once at startup, never per request.
func AutoMigrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}
