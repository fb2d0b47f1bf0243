package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "vet-clinic-ledger/internal/adapters/storage/postgres"
	lite "vet-clinic-ledger/internal/adapters/storage/sqlite"
	"vet-clinic-ledger/internal/platform/config"
	"vet-clinic-ledger/internal/platform/logger"
	"vet-clinic-ledger/internal/router"
)

// @title Vet Clinic Ledger API
// @version 1.0
// @description Estado clínico de mascotas, tratamientos y facturación de la clínica.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	db, err := openStorage(cfg)
	if err != nil {
		log.Error("storage unavailable", map[string]any{"storage": string(cfg.Storage), "err": err})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	r := router.NewRouter(router.Options{
		Logger:  log,
		Storage: cfg.Storage,
		DB:      db,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr(), "storage": string(cfg.Storage)})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

// openStorage devuelve nil para STORAGE=memory.
func openStorage(cfg config.Config) (*sql.DB, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	case config.StorageSQLite:
		return lite.Open(cfg.SQLitePath)
	default:
		return nil, nil
	}
}
