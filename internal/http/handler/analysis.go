package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pulsecheck/internal/analysis"
	"pulsecheck/internal/auth"
)

type AnalysisHandler struct {
	Engine *analysis.Engine
}

// Run triggers a full pattern scan for the authenticated user and
// returns the summary. Rate-limit refusal maps to 429; every other
// engine failure collapses to a generic 500.
func (h *AnalysisHandler) Run(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	summary, err := h.Engine.Run(r.Context(), uid)
	if err != nil {
		if errors.Is(err, analysis.ErrRateLimited) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summary)
}
