package http

import (
	"net/http"

	"pulsecheck/internal/analysis"
	"pulsecheck/internal/auth"
	"pulsecheck/internal/config"
	"pulsecheck/internal/http/handler"
	mw "pulsecheck/internal/http/middleware"
	"pulsecheck/internal/jobs"
	"pulsecheck/internal/wellness"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, engine *analysis.Engine) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	svc := &wellness.Service{DB: db}
	jobsRepo := &jobs.Repo{DB: db}

	checkinH := &handler.CheckinHandler{Svc: svc, Jobs: jobsRepo, DB: db}
	r.Route("/checkins", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Post("/", checkinH.Create)
		r.Get("/", checkinH.List)
	})

	messageH := &handler.MessageHandler{Svc: svc, DB: db}
	r.Route("/messages", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Post("/", messageH.Create)
		r.Get("/", messageH.List)
	})

	alertH := &handler.AlertHandler{Svc: svc, DB: db}
	r.Route("/alerts", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))
		r.Get("/", alertH.List)
		r.Post("/{id}/read", alertH.MarkRead)
	})

	analysisH := &handler.AnalysisHandler{Engine: engine}
	r.With(auth.RequireAuth(jwtSvc)).Post("/analysis/run", analysisH.Run)

	return r
}
