package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/locauto/locauto-go/internal/model"
	"github.com/locauto/locauto-go/internal/service"
)

// VehicleHandler handles HTTP requests for vehicle operations.
type VehicleHandler struct {
	service *service.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(svc *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: svc}
}

// HandleList handles GET /api/veiculos requests.
func (h *VehicleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("failed to list vehicles", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Erro ao buscar veículos"))
		return
	}

	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// HandleGet handles GET /api/veiculos/{id} requests.
func (h *VehicleHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	vehicle, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("Veículo não encontrado"))
			return
		}
		slog.Error("failed to fetch vehicle", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Erro ao buscar veículo"))
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

// HandleCreate handles POST /api/veiculos requests.
func (h *VehicleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Corpo da requisição inválido"))
		return
	}

	vehicle, err := h.service.Create(r.Context(), req)
	if err != nil {
		if service.IsValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("failed to create vehicle", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Erro ao adicionar veículo"))
		return
	}

	writeJSON(w, http.StatusCreated, vehicle)
}

// HandleUpdate handles PUT /api/veiculos/{id} requests. Only the fields
// present in the body are replaced.
func (h *VehicleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var upd model.VehicleUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Corpo da requisição inválido"))
		return
	}

	vehicle, err := h.service.Update(r.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVehicleNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Veículo não encontrado"))
		case service.IsValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("failed to update vehicle", "id", id, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Erro ao atualizar veículo"))
		}
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

// HandleDelete handles DELETE /api/veiculos/{id} requests. Deleting an
// absent id is a no-op success.
func (h *VehicleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete vehicle", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Erro ao excluir veículo"))
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Veículo excluído com sucesso"})
}

func vehicleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("ID inválido"))
		return 0, false
	}
	return id, true
}
