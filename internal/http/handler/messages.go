package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"pulsecheck/internal/auth"
	"pulsecheck/internal/wellness"

	"gorm.io/gorm"
)

type MessageHandler struct {
	Svc *wellness.Service
	DB  *gorm.DB
}

type createMessageReq struct {
	Content string `json:"content"`
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createMessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	id, err := h.Svc.CreateMessage(r.Context(), uid, req.Content)
	if err != nil {
		if err == wellness.ErrEmptyContent {
			http.Error(w, "content required", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id})
}

type messageDTO struct {
	ID          uint64    `json:"id"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var rows []wellness.ChatMessage
	if err := h.DB.
		Where("user_id = ?", uid).
		Order("created_at desc").
		Limit(100).
		Find(&rows).Error; err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]messageDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, messageDTO{
			ID:          m.ID,
			Role:        m.Role,
			Content:     m.Content,
			MessageType: m.MessageType,
			CreatedAt:   m.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
