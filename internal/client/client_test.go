package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/locauto/locauto-go/internal/handler"
	"github.com/locauto/locauto-go/internal/middleware"
	"github.com/locauto/locauto-go/internal/model"
	"github.com/locauto/locauto-go/internal/repository"
	"github.com/locauto/locauto-go/internal/service"
	"github.com/locauto/locauto-go/internal/session"
)

// newTestServer runs the real API with protected writes against an empty
// file store and returns a client bound to it.
func newTestServer(t *testing.T) (*Client, *session.Session) {
	t.Helper()

	store, err := repository.NewFileStore(filepath.Join(t.TempDir(), "veiculos.json"))
	if err != nil {
		t.Fatalf("NewFileStore() unexpected error: %v", err)
	}

	vehicleHandler := handler.NewVehicleHandler(service.NewVehicleService(store))
	authService, err := service.NewAuthService("admin@example.com", "admin123", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewAuthService() unexpected error: %v", err)
	}
	authHandler := handler.NewAuthHandler(authService)

	r := chi.NewRouter()
	r.Post("/api/login", authHandler.HandleLogin)
	r.Get("/api/veiculos", vehicleHandler.HandleList)
	r.Get("/api/veiculos/{id}", vehicleHandler.HandleGet)
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth("test-secret"))
		r.Post("/api/veiculos", vehicleHandler.HandleCreate)
		r.Put("/api/veiculos/{id}", vehicleHandler.HandleUpdate)
		r.Delete("/api/veiculos/{id}", vehicleHandler.HandleDelete)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	sess := session.New("")
	return New(srv.URL, sess), sess
}

func civicRequest() model.VehicleRequest {
	return model.VehicleRequest{
		Nome:        "Civic",
		Marca:       "Honda",
		Ano:         2021,
		ValorDiaria: 140,
		Status:      model.StatusAvailable,
		ImagemURL:   "http://x/y.jpg",
	}
}

func TestListEmpty(t *testing.T) {
	c, _ := newTestServer(t)

	vehicles, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(vehicles) != 0 {
		t.Errorf("List() returned %d vehicles, want 0", len(vehicles))
	}
}

func TestCreateWithoutLogin(t *testing.T) {
	c, _ := newTestServer(t)

	_, err := c.Create(context.Background(), civicRequest())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Create() error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("APIError status = %d, want 401", apiErr.Status)
	}
}

func TestLoginFailureSurfacesError(t *testing.T) {
	c, sess := newTestServer(t)

	err := c.Login(context.Background(), "admin@example.com", "wrong")
	if err == nil {
		t.Fatal("Login() expected error for bad credentials")
	}
	if sess.IsAuthenticated() {
		t.Error("session authenticated after failed login")
	}
	if sess.Err() == nil {
		t.Error("session did not record the login error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Login() error = %v, want 401 APIError", err)
	}
}

func TestLoginAndCreate(t *testing.T) {
	c, sess := newTestServer(t)
	ctx := context.Background()

	if err := c.Login(ctx, "admin@example.com", "admin123"); err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if !sess.IsAuthenticated() {
		t.Fatal("session not authenticated after login")
	}

	created, err := c.Create(ctx, civicRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("Create() returned zero id")
	}

	got, err := c.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.Nome != "Civic" {
		t.Errorf("Get() nome = %q, want Civic", got.Nome)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	c, _ := newTestServer(t)
	ctx := context.Background()

	if err := c.Login(ctx, "admin@example.com", "admin123"); err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	created, err := c.Create(ctx, civicRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	newPrice := 199.0
	updated, err := c.Update(ctx, created.ID, model.VehicleUpdate{ValorDiaria: &newPrice})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.ValorDiaria != 199 || updated.Nome != created.Nome {
		t.Errorf("Update() = %+v, want only valor_diaria changed", updated)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}

	_, err = c.Get(ctx, created.ID)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Errorf("Get() after delete error = %v, want 404 APIError", err)
	}
	if apiErr != nil && apiErr.Message != "Veículo não encontrado" {
		t.Errorf("APIError message = %q", apiErr.Message)
	}
}

func TestLogoutDropsBearer(t *testing.T) {
	c, sess := newTestServer(t)
	ctx := context.Background()

	if err := c.Login(ctx, "admin@example.com", "admin123"); err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	c.Logout()
	if sess.IsAuthenticated() {
		t.Fatal("session still authenticated after logout")
	}

	_, err := c.Create(ctx, civicRequest())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Create() after logout error = %v, want 401 APIError", err)
	}
}
