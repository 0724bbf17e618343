package wellness

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidMood = errors.New("invalid mood")
var ErrEmptyContent = errors.New("empty content")

// MaxMessageLen bounds stored chat message content.
const MaxMessageLen = 4000

type Service struct {
	DB *gorm.DB
}

type CreateCheckInInput struct {
	Mood    string
	Journal string
}

func (s *Service) CreateCheckIn(ctx context.Context, userID uint64, in CreateCheckInInput) (uint64, error) {
	mood := strings.ToLower(strings.TrimSpace(in.Mood))
	if !ValidMood(mood) {
		return 0, ErrInvalidMood
	}

	c := CheckIn{
		UserID:  userID,
		Mood:    mood,
		Journal: strings.TrimSpace(in.Journal),
	}
	if err := s.DB.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *Service) CreateMessage(ctx context.Context, userID uint64, content string) (uint64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, ErrEmptyContent
	}
	if len(content) > MaxMessageLen {
		content = content[:MaxMessageLen]
	}

	m := ChatMessage{
		UserID:      userID,
		Role:        RoleUser,
		Content:     content,
		MessageType: "chat",
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, err
	}
	return m.ID, nil
}

// MarkAlertRead is the one permitted alert mutation.
func (s *Service) MarkAlertRead(ctx context.Context, userID, alertID uint64) error {
	res := s.DB.WithContext(ctx).
		Model(&Alert{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
