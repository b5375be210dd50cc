package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	authsvc "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
	projectsvc "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/service"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/uploads"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("development", "info").Error(context.Background(), "config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := bootstrap.OpenStore(ctx, &cfg.Database, log)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	var cachePing httpapi.PingFunc
	repo, rdb, err := bootstrap.WithCache(ctx, store.Repo, &cfg.Redis, log)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		cachePing = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info(ctx, "project cache enabled", "ttl", cfg.Redis.CacheTTL)
	}

	uploadStore, err := bootstrap.NewUploadStore(ctx, &cfg.Storage)
	if err != nil {
		return err
	}
	intake := uploads.NewIntake(uploadStore, cfg.Storage.MaxFiles, cfg.Storage.MaxFileBytes, log)

	var uploadDir string
	if local, ok := uploadStore.(*uploads.LocalStore); ok {
		uploadDir = local.Dir()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   serviceName,
		Version:       cfg.App.Version,
		AllowedOrigin: cfg.Server.AllowedOrigin,
		Log:           log,
		DBPing:        store.Ping,
		CachePing:     cachePing,
		Auth: authsvc.NewAuthService(
			cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, cfg.Auth.JWTSecret, authsvc.TokenTTL, log,
		),
		Projects:    projectsvc.NewProjectService(repo, intake, log),
		UploadDir:   uploadDir,
		FrontendDir: cfg.App.FrontendDir,
		BodyLimit:   int64(cfg.Storage.MaxFiles)*cfg.Storage.MaxFileBytes + 1<<20,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", srv.Addr, "env", cfg.App.Environment, "store", cfg.Database.Driver, "uploads", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
