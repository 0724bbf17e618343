package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulsecheck/internal/analysis"
	"pulsecheck/internal/auth"
	"pulsecheck/internal/config"
	"pulsecheck/internal/db"
	httpx "pulsecheck/internal/http"
	"pulsecheck/internal/jobs"
	"pulsecheck/internal/logging"
	"pulsecheck/internal/ratelimit"
	"pulsecheck/internal/wellness"
)

func main() {
	cfg, _ := config.Load()

	logger := logging.New(cfg.LogPath)
	defer func() { _ = logger.Sync() }()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal(err)
	}

	limiter := ratelimit.New(cfg.RedisAddr, cfg.RedisPassword)
	if err := limiter.RDB.Ping(context.Background()).Err(); err != nil {
		// the limiter fails open, so a missing Redis degrades quota
		// enforcement instead of blocking startup
		logger.Warnw("redis unreachable, rate limiting degraded", "error", err)
	}

	engine := &analysis.Engine{
		Store:             &wellness.Store{DB: gdb},
		Limiter:           limiter,
		Rules:             analysis.DefaultRules(),
		Log:               logger,
		ScanMaxRequests:   cfg.ScanMaxRequests,
		ScanWindowMinutes: cfg.ScanWindowMinutes,
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	r := httpx.NewRouter(cfg, gdb, jwtSvc, engine)

	// worker
	jobsRepo := &jobs.Repo{DB: gdb}
	worker := &jobs.Worker{ID: "worker-1", Repo: jobsRepo, Engine: engine, Log: logger}

	ctx, cancel := context.WithCancel(context.Background())
	go worker.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
