package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"pulsecheck/internal/auth"
	"pulsecheck/internal/jobs"
	"pulsecheck/internal/wellness"

	"gorm.io/gorm"
)

// scanDebounce delays the post-check-in scan so a burst of check-ins
// triggers a single run.
const scanDebounce = 2 * time.Minute

type CheckinHandler struct {
	Svc  *wellness.Service
	Jobs *jobs.Repo
	DB   *gorm.DB
}

type createCheckinReq struct {
	Mood    string `json:"mood"`
	Journal string `json:"journal"`
}

func (h *CheckinHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createCheckinReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	id, err := h.Svc.CreateCheckIn(r.Context(), uid, wellness.CreateCheckInInput{
		Mood:    req.Mood,
		Journal: req.Journal,
	})
	if err != nil {
		if err == wellness.ErrInvalidMood {
			http.Error(w, "invalid mood", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	// schedule a deferred scan; failing to enqueue loses a scheduled
	// scan, not the check-in
	if err := h.Jobs.EnqueueScan(uid, time.Now().Add(scanDebounce)); err != nil {
		http.Error(w, "failed enqueue scan", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id})
}

type checkinDTO struct {
	ID        uint64    `json:"id"`
	Mood      string    `json:"mood"`
	Journal   string    `json:"journal,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *CheckinHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var rows []wellness.CheckIn
	if err := h.DB.
		Where("user_id = ?", uid).
		Order("created_at desc").
		Limit(100).
		Find(&rows).Error; err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]checkinDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, checkinDTO{
			ID:        c.ID,
			Mood:      c.Mood,
			Journal:   c.Journal,
			CreatedAt: c.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
