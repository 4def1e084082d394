package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hemis/m/internal/api"
	"hemis/m/internal/auth"
	"hemis/m/internal/config"
	"hemis/m/internal/database"
	"hemis/m/internal/inventory"
	"hemis/m/internal/logger"
	"hemis/m/internal/metrics"
	"hemis/m/internal/migrations"
	"hemis/m/internal/seed"
	"hemis/m/internal/store"
	"hemis/m/internal/sweeper"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat, "hemis")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, lg *zap.Logger) error {
	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return err
	}

	st := store.New(db)
	repos := inventory.Repositories{
		Accounts:    st.Accounts,
		Medicines:   st.Medicines,
		Equipment:   st.Equipment,
		Maintenance: st.Maintenance,
		Suppliers:   st.Suppliers,
		Orders:      st.Orders,
	}
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.Secret, cfg.JWTExpiration)
	service := inventory.NewService(repos, hasher, lg.Named("inventory"))
	reports := inventory.NewReports(repos)
	m := metrics.New()

	ctx := context.Background()
	seeder := seed.New(service, seed.Tables{
		Accounts:  st.Accounts,
		Suppliers: st.Suppliers,
		Medicines: st.Medicines,
		Equipment: st.Equipment,
	}, lg.Named("seed"))
	if cfg.SeedDefaults {
		if err := seeder.Defaults(ctx); err != nil {
			return fmt.Errorf("seed defaults: %w", err)
		}
	}
	if cfg.SeedMedicinesCSV != "" {
		if _, err := seeder.LoadMedicines(ctx, cfg.SeedMedicinesCSV); err != nil {
			lg.Warn("medicine intake skipped", zap.Error(err))
		}
	}

	scheduler := sweeper.NewScheduler(lg.Named("cron"))
	sweep := sweeper.New(reports, lg.Named("sweeper"), m, cfg.SweepTimeout)
	if _, err := sweeper.Schedule(scheduler, cfg.SweepSchedule, sweep); err != nil {
		return err
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	handler := api.New(api.Deps{
		Service:       service,
		Reports:       reports,
		Authenticator: auth.NewAuthenticator(st.Accounts, hasher, tokens, lg.Named("auth")),
		Tokens:        tokens,
		Policy:        auth.DefaultPolicy(),
		Metrics:       m,
		Logger:        lg.Named("http"),
	}, api.Options{
		LowStockThreshold:  cfg.LowStockThreshold,
		ExpiryWindowDays:   cfg.ExpiryWindowDays,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("HEMIS server starting",
			zap.String("addr", srv.Addr),
			zap.String("driver", cfg.DatabaseDriver),
			zap.String("sweep_schedule", cfg.SweepSchedule))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		lg.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
