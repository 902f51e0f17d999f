// Package session хранит сессию аутентификации устройства: токены,
// идентичность пользователя и сроки действия. Store создается один раз
// при старте процесса и передается явно всем, кому нужна сессия.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/iudanet/gophershop/internal/client/notify"
	"github.com/iudanet/gophershop/internal/client/storage"
	"github.com/iudanet/gophershop/internal/crypto"
)

// Store provides durable, observable storage of the authentication session.
// Every write replaces all seven fields in one storage transaction and
// then wakes live readers. Concurrent Saves are last-write-wins.
type Store struct {
	storage storage.SessionStorage
	sealer  *crypto.Sealer
	changes *notify.Broadcaster
	now     func() time.Time
	logger  zerolog.Logger
}

// Option настраивает Store
type Option func(*Store)

// WithSealer включает шифрование access и refresh токенов на диске
func WithSealer(sealer *crypto.Sealer) Option {
	return func(s *Store) {
		s.sealer = sealer
	}
}

// WithClock подменяет источник текущего времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger задает логгер
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a session store over the given storage
func New(st storage.SessionStorage, opts ...Option) *Store {
	s := &Store{
		storage: st,
		changes: notify.New(),
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current reads the session once. On first launch all fields are empty.
func (s *Store) Current(ctx context.Context) (storage.Session, error) {
	stored, err := s.storage.GetSession(ctx)
	if err != nil {
		return storage.Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	session := *stored
	if s.sealer == nil {
		return session, nil
	}

	if session.AccessToken, err = s.sealer.Open(FieldAccessToken.Name, stored.AccessToken); err != nil {
		return storage.Session{}, fmt.Errorf("failed to open access token: %w", err)
	}
	if session.RefreshToken, err = s.sealer.Open(FieldRefreshToken.Name, stored.RefreshToken); err != nil {
		return storage.Session{}, fmt.Errorf("failed to open refresh token: %w", err)
	}

	return session, nil
}

// Save replaces the whole session in one atomic write
func (s *Store) Save(ctx context.Context, session storage.Session) error {
	toStore := session

	if s.sealer != nil {
		var err error
		if toStore.AccessToken, err = s.sealer.Seal(FieldAccessToken.Name, session.AccessToken); err != nil {
			return fmt.Errorf("failed to seal access token: %w", err)
		}
		if toStore.RefreshToken, err = s.sealer.Seal(FieldRefreshToken.Name, session.RefreshToken); err != nil {
			return fmt.Errorf("failed to seal refresh token: %w", err)
		}
	}

	if err := s.storage.SaveSession(ctx, &toStore); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug().Str("user_id", session.UserID).Msg("session saved")
	s.changes.Notify()

	return nil
}

// Clear removes all seven fields, returning them to defaults
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Debug().Msg("session cleared")
	s.changes.Notify()

	return nil
}

// IsTokenValid reports whether now is strictly before tokenExpiration.
// Only the local clock is consulted.
func (s *Store) IsTokenValid(ctx context.Context) (bool, error) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return s.now().UnixMilli() < session.TokenExpiration, nil
}

// Token returns the session as an oauth2 bearer token; this is the per-request
// source of the bearer transport. It is read from storage on every call so the
// latest write is always seen. A zero Expiry means the expiration is unknown.
func (s *Store) Token(ctx context.Context) (*oauth2.Token, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	tok := &oauth2.Token{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    "Bearer",
	}
	if session.TokenExpiration > 0 {
		tok.Expiry = time.UnixMilli(session.TokenExpiration)
	}

	return tok, nil
}

// Watch emits the persisted session, then a fresh snapshot after every
// Save or Clear until ctx is done. Each subscriber gets its own feed.
// Slow readers observe the latest snapshot, intermediate ones may be skipped.
func (s *Store) Watch(ctx context.Context) <-chan storage.Session {
	out := make(chan storage.Session)

	// Подписываемся до первого чтения, чтобы не пропустить запись между ними
	changes, unsubscribe := s.changes.Subscribe()

	go func() {
		defer close(out)
		defer unsubscribe()

		for {
			session, err := s.Current(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Warn().Err(err).Msg("session watch: read failed")
			} else {
				select {
				case out <- session:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-changes:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
