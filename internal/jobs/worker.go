package jobs

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"pulsecheck/internal/analysis"
)

type Worker struct {
	ID     string
	Repo   *Repo
	Engine *analysis.Engine
	Log    *zap.SugaredLogger
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(800 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				w.Log.Errorw("worker claim error", "error", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(ctx, job)
		}
	}
}

func (w *Worker) handle(ctx context.Context, job *Job) {
	switch job.Type {
	case TypeWellnessScan:
		w.handleScan(ctx, job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleScan(ctx context.Context, job *Job) {
	summary, err := w.Engine.Run(ctx, job.UserID)
	if err != nil {
		// the user's own quota ran out; the scheduled scan is redundant,
		// not broken
		if errors.Is(err, analysis.ErrRateLimited) {
			_ = w.Repo.MarkDone(job.ID)
			return
		}
		w.retry(job, err.Error())
		return
	}

	w.Log.Infow("scheduled scan done",
		"user_id", job.UserID,
		"alerts_generated", summary.AlertsGenerated,
	)
	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}
