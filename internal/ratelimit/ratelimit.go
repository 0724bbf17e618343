package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Decision is the three-state outcome of a quota check. CheckFailed
// is deliberately distinct from Allowed: the caller decides whether
// to fail open, the limiter never decides for it.
type Decision int

const (
	Allowed Decision = iota
	Denied
	CheckFailed
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Denied:
		return "denied"
	case CheckFailed:
		return "check_failed"
	}
	return "unknown"
}

type Result struct {
	Decision  Decision
	Remaining int
	ResetAt   time.Time
	Err       error
}

// Limiter counts requests per user+action in fixed windows backed by
// Redis. INCR plus EXPIRE in one pipeline makes the check-and-increment
// atomic enough for quota purposes.
type Limiter struct {
	RDB *redis.Client
}

func New(addr, password string) *Limiter {
	return &Limiter{RDB: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})}
}

func (l *Limiter) Check(ctx context.Context, userID uint64, action string, max, windowMinutes int) Result {
	window := time.Duration(windowMinutes) * time.Minute
	start := time.Now().Truncate(window)
	key := windowKey(userID, action, start)

	pipe := l.RDB.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{Decision: CheckFailed, Err: err}
	}

	n := int(incr.Val())
	resetAt := start.Add(window)
	if n > max {
		return Result{Decision: Denied, ResetAt: resetAt}
	}
	return Result{Decision: Allowed, Remaining: max - n, ResetAt: resetAt}
}

func windowKey(userID uint64, action string, windowStart time.Time) string {
	return fmt.Sprintf("ratelimit:%d:%s:%d", userID, action, windowStart.Unix())
}
