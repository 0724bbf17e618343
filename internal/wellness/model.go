package wellness

import (
	"time"

	"github.com/lib/pq"
)

// CheckIn is a user mood sample, optionally with a journal entry.
// Immutable once written; the analyzer only reads these.
type CheckIn struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"index;not null"`
	Mood      string    `gorm:"type:text;not null"`
	Journal   string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"index;not null;default:now()"`
}

// ChatMessage is one turn of a support conversation. Only role=user
// messages feed the analyzer.
type ChatMessage struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"index;not null"`
	Role        string    `gorm:"type:text;not null"`
	Content     string    `gorm:"type:text;not null"`
	MessageType string    `gorm:"type:text;not null;default:'chat'"`
	CreatedAt   time.Time `gorm:"index;not null;default:now()"`
}

// Alert is append-only from the analyzer's side; the only mutation
// allowed afterwards is marking it read.
type Alert struct {
	ID         uint64         `gorm:"primaryKey"`
	UserID     uint64         `gorm:"index;not null"`
	AlertType  string         `gorm:"type:text;not null"`
	Message    string         `gorm:"type:text;not null"`
	Severity   string         `gorm:"type:text;not null"`
	Categories pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	IsRead     bool           `gorm:"not null;default:false"`
	CreatedAt  time.Time      `gorm:"index;not null;default:now()"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Moods is the closed check-in vocabulary. Values outside it are
// rejected at the write boundary; the analyzer additionally treats
// anything unrecognized as neutral.
var Moods = map[string]bool{
	"great":       true,
	"good":        true,
	"okay":        true,
	"sad":         true,
	"angry":       true,
	"anxious":     true,
	"stressed":    true,
	"overwhelmed": true,
	"tired":       true,
	"calm":        true,
}

func ValidMood(m string) bool { return Moods[m] }
