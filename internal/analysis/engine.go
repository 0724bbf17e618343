package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"pulsecheck/internal/ratelimit"
	"pulsecheck/internal/wellness"
)

// RateLimitAction is the quota bucket a full scan draws from.
const RateLimitAction = "wellness_scan"

var (
	// ErrRateLimited means the scan was refused before any analysis ran.
	ErrRateLimited = errors.New("rate limited")
	// ErrLoad wraps signal read failures; no detector ran.
	ErrLoad = errors.New("load signals")
	// ErrPersist wraps alert write failures; detection completed but
	// nothing was saved.
	ErrPersist = errors.New("persist alerts")
)

// Store is what the engine needs from persistence.
type Store interface {
	CheckinsSince(ctx context.Context, userID uint64, since time.Time, limit int) ([]wellness.CheckIn, error)
	UserMessagesSince(ctx context.Context, userID uint64, since time.Time, limit int) ([]wellness.ChatMessage, error)
	RecentAlerts(ctx context.Context, userID uint64, since time.Time) ([]wellness.Alert, error)
	InsertAlerts(ctx context.Context, alerts []wellness.Alert) error
}

// RateLimiter is the quota collaborator. Check is an atomic
// check-and-increment; infrastructure failure comes back as a
// CheckFailed decision, never as a hard error.
type RateLimiter interface {
	Check(ctx context.Context, userID uint64, action string, max, windowMinutes int) ratelimit.Result
}

// Engine runs one full pattern scan per call. It holds no state
// between runs; everything flows through Store.
type Engine struct {
	Store   Store
	Limiter RateLimiter
	Rules   Rules
	Log     *zap.SugaredLogger

	ScanMaxRequests   int
	ScanWindowMinutes int

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Run executes the full pipeline for one user: rate limit, load,
// aggregate, detect, dedup, emit. Denied quota aborts before any
// read; a failed quota check is logged and treated as allowed.
func (e *Engine) Run(ctx context.Context, userID uint64) (Summary, error) {
	res := e.Limiter.Check(ctx, userID, RateLimitAction, e.ScanMaxRequests, e.ScanWindowMinutes)
	switch res.Decision {
	case ratelimit.Denied:
		return Summary{}, ErrRateLimited
	case ratelimit.CheckFailed:
		e.Log.Warnw("rate limit check failed, proceeding", "user_id", userID, "error", res.Err)
	}

	now := e.now()
	since := now.AddDate(0, 0, -e.Rules.LookbackDays)

	checkins, err := e.Store.CheckinsSince(ctx, userID, since, e.Rules.MaxRecords)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	msgs, err := e.Store.UserMessagesSince(ctx, userID, since, e.Rules.MaxRecords)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	days := DailyMoods(checkins)

	patterns := map[string]string{
		"mood":      status(len(days) >= e.Rules.MinMoodSamples),
		"symptoms":  status(len(msgs) > 0),
		"lifestyle": status(len(checkins) >= e.Rules.LifestyleMinEntries),
		"activity":  status(len(checkins) > 0),
	}

	var candidates []Candidate
	if c := DetectLowStreak(e.Rules, days); c != nil {
		candidates = append(candidates, *c)
	}
	if c := DetectStressSpike(e.Rules, days); c != nil {
		candidates = append(candidates, *c)
	}
	if c := DetectVolatility(e.Rules, days); c != nil {
		candidates = append(candidates, *c)
	}
	candidates = append(candidates, ExtractSymptoms(e.Rules, msgs)...)
	candidates = append(candidates, ExtractLifestyle(e.Rules, checkins)...)
	if c := DetectInactivity(e.Rules, checkins, now); c != nil {
		candidates = append(candidates, *c)
	}

	existing, err := e.Store.RecentAlerts(ctx, userID, now.AddDate(0, 0, -e.Rules.DedupDays))
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	fresh := FilterSeen(candidates, existing)

	if len(fresh) > 0 {
		alerts := make([]wellness.Alert, 0, len(fresh))
		for _, c := range fresh {
			alerts = append(alerts, wellness.Alert{
				UserID:     userID,
				AlertType:  c.Type,
				Message:    formatMessage(c),
				Severity:   c.Severity,
				Categories: pq.StringArray(c.Categories),
				CreatedAt:  now,
			})
		}
		if err := e.Store.InsertAlerts(ctx, alerts); err != nil {
			return Summary{}, fmt.Errorf("%w: %v", ErrPersist, err)
		}
	}

	e.Log.Infow("scan complete",
		"user_id", userID,
		"candidates", len(candidates),
		"alerts_generated", len(fresh),
	)

	return Summary{AlertsGenerated: len(fresh), Patterns: patterns}, nil
}

func status(analyzed bool) string {
	if analyzed {
		return StatusAnalyzed
	}
	return StatusInsufficientData
}
