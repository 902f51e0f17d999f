package auth

import (
	"context"

	"github.com/iudanet/gophershop/internal/client/storage"
	"github.com/iudanet/gophershop/pkg/api"
)

//go:generate moq -out remote_mock.go . Remote
//go:generate moq -out sessionstore_mock.go . SessionStore

// Remote is the identity part of the REST backend.
// Implemented by *api.Client.
type Remote interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	RefreshToken(ctx context.Context, req api.RefreshTokenRequest) (*api.AuthResponse, error)
	ValidateToken(ctx context.Context, accessToken string) (bool, error)
}

// SessionStore is the part of session.Store the workflow needs
type SessionStore interface {
	// Current reads the whole session once
	Current(ctx context.Context) (storage.Session, error)

	// Save replaces all seven fields atomically
	Save(ctx context.Context, session storage.Session) error

	// Clear wipes the session back to defaults
	Clear(ctx context.Context) error

	// IsTokenValid reports now < tokenExpiration
	IsTokenValid(ctx context.Context) (bool, error)
}
