package wellness

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Store is the persistence boundary the analyzer reads signals from
// and writes alerts to. Reads are newest-first and capped.
type Store struct {
	DB *gorm.DB
}

func (s *Store) CheckinsSince(ctx context.Context, userID uint64, since time.Time, limit int) ([]CheckIn, error) {
	var rows []CheckIn
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at desc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *Store) UserMessagesSince(ctx context.Context, userID uint64, since time.Time, limit int) ([]ChatMessage, error) {
	var rows []ChatMessage
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND role = ? AND created_at >= ?", userID, RoleUser, since).
		Order("created_at desc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *Store) RecentAlerts(ctx context.Context, userID uint64, since time.Time) ([]Alert, error) {
	var rows []Alert
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at desc").
		Find(&rows).Error
	return rows, err
}

// InsertAlerts appends alerts in one batch. The store enforces no
// uniqueness; dedup happens upstream.
func (s *Store) InsertAlerts(ctx context.Context, alerts []Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Create(&alerts).Error
}
