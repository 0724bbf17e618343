package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pulsecheck/internal/auth"
	"pulsecheck/internal/wellness"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type AlertHandler struct {
	Svc *wellness.Service
	DB  *gorm.DB
}

type alertDTO struct {
	ID         uint64    `json:"id"`
	AlertType  string    `json:"alert_type"`
	Message    string    `json:"message"`
	Severity   string    `json:"severity"`
	Categories []string  `json:"categories"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	q := h.DB.Where("user_id = ?", uid)
	if strings.TrimSpace(strings.ToLower(r.URL.Query().Get("unread"))) == "true" {
		q = q.Where("is_read = false")
	}

	var rows []wellness.Alert
	if err := q.Order("created_at desc").Limit(100).Find(&rows).Error; err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]alertDTO, 0, len(rows))
	for _, a := range rows {
		out = append(out, alertDTO{
			ID:         a.ID,
			AlertType:  a.AlertType,
			Message:    a.Message,
			Severity:   a.Severity,
			Categories: []string(a.Categories),
			IsRead:     a.IsRead,
			CreatedAt:  a.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (h *AlertHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	idStr := chi.URLParam(r, "id")
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Svc.MarkAlertRead(r.Context(), uid, id64); err != nil {
		if err == wellness.ErrNotFound {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
