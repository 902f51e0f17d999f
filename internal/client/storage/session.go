package storage

import (
	"context"
)

// SessionStorage defines interface for storing the authentication session on client.
// This is the lowest storage layer - it works with raw data (tokens may already be sealed)
// and doesn't perform any encryption/decryption itself.
type SessionStorage interface {
	// SaveSession replaces all session fields in a single transaction
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session as-is.
	// Returns a zero Session (all defaults) if nothing has been saved yet.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes all session fields (logout).
	// Deleting an absent session is not an error.
	DeleteSession(ctx context.Context) error
}

// Session represents the authentication session in storage.
// An empty AccessToken means the device is unauthenticated.
// Expirations are epoch milliseconds.
type Session struct {
	AccessToken       string `json:"access_token"`
	RefreshToken      string `json:"refresh_token"`
	UserID            string `json:"user_id"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	TokenExpiration   int64  `json:"token_expiration"`
	RefreshExpiration int64  `json:"refresh_expiration"`
}

// IsZero reports whether every field holds its default value
func (s Session) IsZero() bool {
	return s == Session{}
}
