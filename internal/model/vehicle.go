package model

import "time"

// Vehicle statuses as persisted and served on the wire.
const (
	StatusAvailable   = "disponível"
	StatusUnavailable = "indisponível"
)

// Vehicle represents a rentable vehicle record in the store.
type Vehicle struct {
	ID              int64     `json:"id"`
	Nome            string    `json:"nome"`
	Marca           string    `json:"marca"`
	Ano             int       `json:"ano"`
	ValorDiaria     float64   `json:"valor_diaria"`
	Status          string    `json:"status"`
	ImagemURL       string    `json:"imagem_url"`
	Descricao       string    `json:"descricao,omitempty"`
	Caracteristicas []string  `json:"caracteristicas,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// VehicleRequest represents a vehicle creation request. The store assigns
// id and created_at.
type VehicleRequest struct {
	Nome            string   `json:"nome"`
	Marca           string   `json:"marca"`
	Ano             int      `json:"ano"`
	ValorDiaria     float64  `json:"valor_diaria"`
	Status          string   `json:"status"`
	ImagemURL       string   `json:"imagem_url"`
	Descricao       string   `json:"descricao"`
	Caracteristicas []string `json:"caracteristicas"`
}

// VehicleUpdate represents a partial vehicle update. Nil fields are left
// unchanged on the stored record.
type VehicleUpdate struct {
	Nome            *string  `json:"nome"`
	Marca           *string  `json:"marca"`
	Ano             *int     `json:"ano"`
	ValorDiaria     *float64 `json:"valor_diaria"`
	Status          *string  `json:"status"`
	ImagemURL       *string  `json:"imagem_url"`
	Descricao       *string  `json:"descricao"`
	Caracteristicas []string `json:"caracteristicas"`
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the signed session token issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the generic success body used by delete.
type MessageResponse struct {
	Message string `json:"message"`
}
