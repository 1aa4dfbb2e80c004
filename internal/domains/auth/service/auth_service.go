package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bookcatalog/internal/domains/auth/model"
	"bookcatalog/pkg/jwt"
)

// ServiceInterface is the (single-credential) authentication contract.
type ServiceInterface interface {
	Login(ctx context.Context, req *model.LoginRequest) (model.LoginResponse, error)
}

// authService checks the one configured credential and issues JWTs.
type authService struct {
	username     string
	passwordHash []byte
	tokens       *jwt.Manager
}

// NewAuthService hashes the configured password once at startup so login
// compares against a bcrypt hash, never the plaintext.
func NewAuthService(username, password string, tokens *jwt.Manager) (ServiceInterface, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{
		username:     username,
		passwordHash: hash,
		tokens:       tokens,
	}, nil
}

func (s *authService) Login(_ context.Context, req *model.LoginRequest) (model.LoginResponse, error) {
	if req.Username != s.username {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(req.Username)
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return model.LoginResponse{
		Message: "Login successful",
		Token:   token,
	}, nil
}
