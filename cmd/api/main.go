package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/locauto/locauto-go/internal/config"
	"github.com/locauto/locauto-go/internal/handler"
	"github.com/locauto/locauto-go/internal/middleware"
	"github.com/locauto/locauto-go/internal/repository"
	"github.com/locauto/locauto-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	store, err := newStore(cfg)
	if err != nil {
		slog.Error("failed to initialize vehicle store", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}

	if err := repository.Seed(context.Background(), store); err != nil {
		slog.Warn("failed to seed sample vehicles", "error", err)
	}

	vehicleService := service.NewVehicleService(store)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)

	authService, err := service.NewAuthService(cfg.AdminEmail, cfg.AdminPassword, cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		slog.Error("failed to initialize auth service", "error", err)
		os.Exit(1)
	}
	authHandler := handler.NewAuthHandler(authService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/login", authHandler.HandleLogin)
	})

	r.Get("/api/veiculos", vehicleHandler.HandleList)
	r.Get("/api/veiculos/{id}", vehicleHandler.HandleGet)

	r.Group(func(r chi.Router) {
		if cfg.ProtectWrites {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
		}
		r.Post("/api/veiculos", vehicleHandler.HandleCreate)
		r.Put("/api/veiculos/{id}", vehicleHandler.HandleUpdate)
		r.Delete("/api/veiculos/{id}", vehicleHandler.HandleDelete)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Rota não encontrada"}`))
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env,
			"backend", cfg.StorageBackend, "protect_writes", cfg.ProtectWrites)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newStore selects the persistence backend from configuration: the JSON
// file document or the veiculos table.
func newStore(cfg config.Config) (repository.VehicleStore, error) {
	switch cfg.StorageBackend {
	case "mysql":
		db, err := repository.NewDB(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		store := repository.NewMySQLStore(db)
		if err := store.Bootstrap(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return repository.NewFileStore(cfg.DataFile)
	}
}
