package session

import (
	"context"

	"github.com/iudanet/gophershop/internal/client/storage"
)

// Field selects one value out of the session record
type Field[T any] struct {
	get  func(storage.Session) T
	Name string
}

// Get extracts the field value from a session
func (f Field[T]) Get(s storage.Session) T {
	return f.get(s)
}

// Seven session fields
var (
	FieldAccessToken       = Field[string]{Name: "access_token", get: func(s storage.Session) string { return s.AccessToken }}
	FieldRefreshToken      = Field[string]{Name: "refresh_token", get: func(s storage.Session) string { return s.RefreshToken }}
	FieldUserID            = Field[string]{Name: "user_id", get: func(s storage.Session) string { return s.UserID }}
	FieldEmail             = Field[string]{Name: "email", get: func(s storage.Session) string { return s.Email }}
	FieldRole              = Field[string]{Name: "role", get: func(s storage.Session) string { return s.Role }}
	FieldTokenExpiration   = Field[int64]{Name: "token_expiration", get: func(s storage.Session) int64 { return s.TokenExpiration }}
	FieldRefreshExpiration = Field[int64]{Name: "refresh_expiration", get: func(s storage.Session) int64 { return s.RefreshExpiration }}
)

// Read returns a live feed of one field: the persisted value first,
// then the value after every write. The feed closes when ctx is done.
func Read[T any](ctx context.Context, s *Store, field Field[T]) <-chan T {
	out := make(chan T)
	snapshots := s.Watch(ctx)

	go func() {
		defer close(out)
		for session := range snapshots {
			select {
			case out <- field.Get(session):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
