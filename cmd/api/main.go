package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-journal/internal/adapters/auth/jwtauth"
	pg "pet-care-journal/internal/adapters/storage/postgres"
	"pet-care-journal/internal/platform/config"
	"pet-care-journal/internal/platform/logger"
	"pet-care-journal/internal/ports/auth"
	"pet-care-journal/internal/router"
)

// @title Pet Care Journal API
// @version 1.0
// @description Diario de cuidado de mascotas: grupos, agenda, registros y monitoreos diarios.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run arranca el servicio. Sólo main llama a os.Exit.
func run() error {
	cfg := config.Load()

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var db *sql.DB
	if cfg.DB.DSN != "" {
		db, err = pg.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("db open failed", map[string]any{"error": err.Error()})
			return err
		}
		defer db.Close()

		if cfg.DB.AutoMigrate {
			if err := pg.Migrate(db); err != nil {
				log.Error("db migrate failed", map[string]any{"error": err.Error()})
				return err
			}
		}
	}

	var (
		tokens   *jwtauth.Service
		verifier auth.AuthVerifier
	)
	if cfg.DevMode() {
		// sin verifier: se acepta X-Debug-Username
		log.Warn("JWT_SECRET not set, running in dev mode", nil)
	} else {
		tokens = jwtauth.New(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
		verifier = tokens
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
		Tokens:       tokens,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr(), "postgres": db != nil})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			log.Error("server error", map[string]any{"error": err.Error()})
			return err
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}
