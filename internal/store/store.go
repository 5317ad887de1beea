// Package store implements the daily-log record store on top of GORM.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/702greens/farmos/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultRecentLimit is how many logs ListRecent returns when the caller
// passes a non-positive limit.
const DefaultRecentLimit = 30

// Store provides upsert-by-date and read access to daily logs. It is safe for
// concurrent use; same-date write races are resolved by the database's
// unique-key conflict handling, not by application locking.
type Store struct {
	db *gorm.DB
}

// New wraps an open GORM handle.
func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// Upsert inserts the log, or replaces all content fields of the existing row
// for the same date. The whole write is a single INSERT ... ON CONFLICT
// statement, so two concurrent submissions for one date cannot interleave
// into a mixed row. id and created_at of an existing row are preserved.
func (s *Store) Upsert(ctx context.Context, log *models.DailyLog) (uint, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns(models.ContentColumns()),
	}).Create(log)
	if result.Error != nil {
		return 0, fmt.Errorf("store: upsert %s: %w", log.Date, result.Error)
	}

	// The conflict-update path does not report the surviving row's id on
	// every driver; resolve it by the unique date key. id is immutable, so
	// this read cannot race with content writes.
	var row struct {
		ID uint
	}
	if err := s.db.WithContext(ctx).Model(&models.DailyLog{}).
		Select("id").Where("date = ?", log.Date).First(&row).Error; err != nil {
		return 0, fmt.Errorf("store: resolve id for %s: %w", log.Date, err)
	}
	log.ID = row.ID
	return row.ID, nil
}

// ListRecent returns up to limit logs, newest date first. An empty store
// yields an empty slice.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]models.DailyLog, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	logs := make([]models.DailyLog, 0, limit)
	if err := s.db.WithContext(ctx).
		Order("date DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("store: list recent: %w", err)
	}
	return logs, nil
}

// GetByDate returns the log for date, or nil when none exists yet.
func (s *Store) GetByDate(ctx context.Context, date string) (*models.DailyLog, error) {
	var log models.DailyLog
	err := s.db.WithContext(ctx).Where("date = ?", date).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", date, err)
	}
	return &log, nil
}
