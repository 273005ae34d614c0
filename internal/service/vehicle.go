package service

import (
	"context"
	"errors"
	"time"

	"github.com/locauto/locauto-go/internal/model"
	"github.com/locauto/locauto-go/internal/repository"
)

// Validation sentinels double as wire messages, matching the API's
// Portuguese error bodies.
var (
	ErrNomeRequired    = errors.New("nome é obrigatório")
	ErrMarcaRequired   = errors.New("marca é obrigatória")
	ErrImagemRequired  = errors.New("imagem_url é obrigatória")
	ErrAnoOutOfRange   = errors.New("ano fora do intervalo permitido")
	ErrValorNegative   = errors.New("valor_diaria não pode ser negativo")
	ErrStatusInvalid   = errors.New("status inválido")
	ErrVehicleNotFound = errors.New("veículo não encontrado")
)

const MinYear = 1900

// IsValidationError reports whether err is one of the field validation
// sentinels, so handlers can map the whole family to a 400.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrNomeRequired, ErrMarcaRequired, ErrImagemRequired,
		ErrAnoOutOfRange, ErrValorNegative, ErrStatusInvalid,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// VehicleService handles vehicle business logic over a VehicleStore.
type VehicleService struct {
	store repository.VehicleStore
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(store repository.VehicleStore) *VehicleService {
	return &VehicleService{store: store}
}

// List returns all vehicles, most recent first.
func (s *VehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	return s.store.List(ctx)
}

// Get returns the vehicle with the given id.
func (s *VehicleService) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	v, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// Create validates the request, assigns created_at, and persists a new
// vehicle. The store assigns the id.
func (s *VehicleService) Create(ctx context.Context, req model.VehicleRequest) (*model.Vehicle, error) {
	if req.Status == "" {
		req.Status = model.StatusAvailable
	}
	if err := validateFields(req.Nome, req.Marca, req.ImagemURL, req.Ano, req.ValorDiaria, req.Status); err != nil {
		return nil, err
	}

	v := &model.Vehicle{
		Nome:            req.Nome,
		Marca:           req.Marca,
		Ano:             req.Ano,
		ValorDiaria:     req.ValorDiaria,
		Status:          req.Status,
		ImagemURL:       req.ImagemURL,
		Descricao:       req.Descricao,
		Caracteristicas: req.Caracteristicas,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.store.Create(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

// Update merges the fields present in upd into the stored record and
// persists the result. Absent fields are left untouched.
func (s *VehicleService) Update(ctx context.Context, id int64, upd model.VehicleUpdate) (*model.Vehicle, error) {
	v, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	if upd.Nome != nil {
		v.Nome = *upd.Nome
	}
	if upd.Marca != nil {
		v.Marca = *upd.Marca
	}
	if upd.Ano != nil {
		v.Ano = *upd.Ano
	}
	if upd.ValorDiaria != nil {
		v.ValorDiaria = *upd.ValorDiaria
	}
	if upd.Status != nil {
		v.Status = *upd.Status
	}
	if upd.ImagemURL != nil {
		v.ImagemURL = *upd.ImagemURL
	}
	if upd.Descricao != nil {
		v.Descricao = *upd.Descricao
	}
	if upd.Caracteristicas != nil {
		v.Caracteristicas = upd.Caracteristicas
	}

	if err := validateFields(v.Nome, v.Marca, v.ImagemURL, v.Ano, v.ValorDiaria, v.Status); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, v); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	return v, nil
}

// Delete removes the vehicle if present. Deleting an absent id succeeds.
func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func validateFields(nome, marca, imagemURL string, ano int, valorDiaria float64, status string) error {
	if nome == "" {
		return ErrNomeRequired
	}
	if marca == "" {
		return ErrMarcaRequired
	}
	if imagemURL == "" {
		return ErrImagemRequired
	}
	if ano < MinYear || ano > time.Now().Year()+1 {
		return ErrAnoOutOfRange
	}
	if valorDiaria < 0 {
		return ErrValorNegative
	}
	if status != model.StatusAvailable && status != model.StatusUnavailable {
		return ErrStatusInvalid
	}
	return nil
}
