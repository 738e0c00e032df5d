package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ekaraca/gymhub-backend/internal/api"
	"github.com/ekaraca/gymhub-backend/internal/auth"
	"github.com/ekaraca/gymhub-backend/internal/config"
	"github.com/ekaraca/gymhub-backend/internal/db"
	"github.com/ekaraca/gymhub-backend/internal/logger"
	"github.com/ekaraca/gymhub-backend/internal/metrics"
	"github.com/ekaraca/gymhub-backend/internal/repository/postgres"
	"github.com/ekaraca/gymhub-backend/internal/services"
	"github.com/ekaraca/gymhub-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTAccess, cfg.JWTRefresh, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	userSvc := services.NewUserService(repos.Users, tm, repos.AuditLogs, wp)
	gymSvc := services.NewGymService(repos.Gyms, cfg.GymCreateOpen, repos.AuditLogs, wp)
	memSvc := services.NewMembershipService(repos.Memberships, repos.AuditLogs, wp)

	metrics.Init()
	metrics.ObserveWorkerQueue(wp.Pending)
	r := api.NewRouter(cfg, tm, userSvc, gymSvc, memSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "gym_create_open", cfg.GymCreateOpen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
