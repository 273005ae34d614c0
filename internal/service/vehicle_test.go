package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/locauto/locauto-go/internal/model"
	"github.com/locauto/locauto-go/internal/repository"
)

func newTestVehicleService(t *testing.T) *VehicleService {
	t.Helper()
	store, err := repository.NewFileStore(filepath.Join(t.TempDir(), "veiculos.json"))
	if err != nil {
		t.Fatalf("NewFileStore() unexpected error: %v", err)
	}
	return NewVehicleService(store)
}

func validRequest() model.VehicleRequest {
	return model.VehicleRequest{
		Nome:        "Civic",
		Marca:       "Honda",
		Ano:         2021,
		ValorDiaria: 140,
		Status:      model.StatusAvailable,
		ImagemURL:   "http://x/y.jpg",
	}
}

func TestCreateAssignsIDAndEchoesFields(t *testing.T) {
	svc := newTestVehicleService(t)

	v, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if v.ID != 1 {
		t.Errorf("Create() id = %d, want 1", v.ID)
	}
	if v.Nome != "Civic" || v.Marca != "Honda" || v.Ano != 2021 || v.ValorDiaria != 140 {
		t.Errorf("Create() did not echo the submitted fields: %+v", v)
	}

	got, err := svc.Get(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.Nome != v.Nome || got.CreatedAt != v.CreatedAt {
		t.Errorf("Get() = %+v, want the created record %+v", got, v)
	}
}

func TestCreateDefaultsStatus(t *testing.T) {
	svc := newTestVehicleService(t)

	req := validRequest()
	req.Status = ""
	v, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if v.Status != model.StatusAvailable {
		t.Errorf("Create() status = %q, want default %q", v.Status, model.StatusAvailable)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestVehicleService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.VehicleRequest)
		want   error
	}{
		{"missing nome", func(r *model.VehicleRequest) { r.Nome = "" }, ErrNomeRequired},
		{"missing marca", func(r *model.VehicleRequest) { r.Marca = "" }, ErrMarcaRequired},
		{"missing imagem", func(r *model.VehicleRequest) { r.ImagemURL = "" }, ErrImagemRequired},
		{"year too old", func(r *model.VehicleRequest) { r.Ano = 1899 }, ErrAnoOutOfRange},
		{"year in future", func(r *model.VehicleRequest) { r.Ano = 3000 }, ErrAnoOutOfRange},
		{"negative price", func(r *model.VehicleRequest) { r.ValorDiaria = -1 }, ErrValorNegative},
		{"bad status", func(r *model.VehicleRequest) { r.Status = "reservado" }, ErrStatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			if _, err := svc.Create(ctx, req); !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdatePartialMerge(t *testing.T) {
	svc := newTestVehicleService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	newPrice := 199.0
	updated, err := svc.Update(ctx, created.ID, model.VehicleUpdate{ValorDiaria: &newPrice})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	if updated.ValorDiaria != 199 {
		t.Errorf("ValorDiaria = %v, want 199", updated.ValorDiaria)
	}
	if updated.Nome != created.Nome || updated.Marca != created.Marca ||
		updated.Ano != created.Ano || updated.Status != created.Status ||
		updated.ImagemURL != created.ImagemURL {
		t.Errorf("Update() changed fields other than valor_diaria: %+v", updated)
	}
}

func TestUpdateMissing(t *testing.T) {
	svc := newTestVehicleService(t)

	nome := "Novo"
	_, err := svc.Update(context.Background(), 999, model.VehicleUpdate{Nome: &nome})
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("Update() error = %v, want ErrVehicleNotFound", err)
	}
}

func TestUpdateValidatesMergedRecord(t *testing.T) {
	svc := newTestVehicleService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	empty := ""
	if _, err := svc.Update(ctx, created.ID, model.VehicleUpdate{Nome: &empty}); !errors.Is(err, ErrNomeRequired) {
		t.Errorf("Update() error = %v, want ErrNomeRequired", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := newTestVehicleService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrVehicleNotFound", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Errorf("Delete() of absent id error = %v, want nil", err)
	}
}

func TestListLengthTracksCreatesAndDeletes(t *testing.T) {
	svc := newTestVehicleService(t)
	ctx := context.Background()

	before, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	created, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	after, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Errorf("List() length = %d after create, want %d", len(after), len(before)+1)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}

	final, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(final) != len(before) {
		t.Errorf("List() length = %d after delete, want %d", len(final), len(before))
	}
}
