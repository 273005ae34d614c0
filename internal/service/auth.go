package service

import (
	"context"
	"errors"
	"time"

	"github.com/locauto/locauto-go/internal/crypto"
	"github.com/locauto/locauto-go/internal/model"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminRole is the only role the system issues tokens for.
const AdminRole = "admin"

// AuthService authenticates the single configured admin identity. The
// plaintext password from the environment is hashed once at construction;
// login verifies against the hash.
type AuthService struct {
	adminEmail string
	adminHash  string
	jwtSecret  string
	jwtExpiry  time.Duration
}

// NewAuthService creates a new AuthService for the given admin credentials.
func NewAuthService(adminEmail, adminPassword, secret string, expiry time.Duration) (*AuthService, error) {
	hash, err := crypto.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		adminEmail: adminEmail,
		adminHash:  hash,
		jwtSecret:  secret,
		jwtExpiry:  expiry,
	}, nil
}

// Login checks the credentials against the admin identity and returns a
// signed session token on match.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	if req.Email != s.adminEmail {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	match, err := crypto.VerifyPassword(req.Password, s.adminHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(s.adminEmail, AdminRole, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}
