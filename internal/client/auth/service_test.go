package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophershop/internal/client/api"
	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/internal/client/session"
	"github.com/iudanet/gophershop/internal/client/storage"
	"github.com/iudanet/gophershop/internal/client/storage/boltdb"
	"github.com/iudanet/gophershop/pkg/api"
)

const scenarioLoginBody = `{"userId":"u1","email":"a@b.com","role":"user","accessToken":"tok",` +
	`"refreshToken":"rtok","expirationTime":9999999999999,"refreshExpirationTime":9999999999999}`

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()

	db, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return session.New(db)
}

// fakeAuthServer отвечает фиксированным статусом и телом и считает запросы
func fakeAuthServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, &hits
}

func firstValue[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("no value received")
	}
	var zero T
	return zero
}

func TestService_Login_Success(t *testing.T) {
	server, hits := fakeAuthServer(t, http.StatusOK, scenarioLoginBody)
	store := newSessionStore(t)
	svc := NewService(clientapi.NewClient(server.URL), store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res := svc.Login(ctx, "a@b.com", "pw")

	require.True(t, res.IsSuccess(), res.Message)
	require.NotNil(t, res.Data)
	assert.Equal(t, "u1", res.Data.UserID)
	assert.Equal(t, int32(1), hits.Load())

	// Сессия записана до возврата результата
	assert.Equal(t, "tok", firstValue(t, session.Read(ctx, store, session.FieldAccessToken)))

	current, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, storage.Session{
		AccessToken:       "tok",
		RefreshToken:      "rtok",
		UserID:            "u1",
		Email:             "a@b.com",
		Role:              "user",
		TokenExpiration:   9999999999999,
		RefreshExpiration: 9999999999999,
	}, current)
}

func TestService_Login_Unauthorized(t *testing.T) {
	server, _ := fakeAuthServer(t, http.StatusUnauthorized, `{"error":"Unauthorized","message":"invalid credentials"}`)
	store := newSessionStore(t)
	ctx := context.Background()

	before := storage.Session{AccessToken: "old", RefreshToken: "old-r", UserID: "u0", TokenExpiration: 42}
	require.NoError(t, store.Save(ctx, before))

	svc := NewService(clientapi.NewClient(server.URL), store, zerolog.Nop())
	res := svc.Login(ctx, "a@b.com", "wrong")

	require.True(t, res.IsError())
	assert.Contains(t, res.Message, "401")
	assert.Equal(t, "Unauthorized (401)", res.Message)
	assert.Equal(t, resource.KindUnauthorized, res.Kind)
	assert.Nil(t, res.Data)

	after, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_Login_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "not json at all"} {
		server, _ := fakeAuthServer(t, http.StatusOK, body)
		sessions := &SessionStoreMock{}

		svc := NewService(clientapi.NewClient(server.URL), sessions, zerolog.Nop())
		res := svc.Login(context.Background(), "a@b.com", "pw")

		require.True(t, res.IsSuccess(), "body %q", body)
		assert.Nil(t, res.Data)
		assert.Empty(t, sessions.SaveCalls())
	}
}

func TestService_Login_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	sessions := &SessionStoreMock{}
	svc := NewService(clientapi.NewClient(url), sessions, zerolog.Nop())

	res := svc.Login(context.Background(), "a@b.com", "pw")

	require.True(t, res.IsError())
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, resource.KindNetwork, res.Kind)
	assert.Empty(t, sessions.SaveCalls())
}

func TestService_Login_SaveFailure(t *testing.T) {
	remote := &RemoteMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
			return &api.AuthResponse{UserID: "u1", AccessToken: "tok"}, nil
		},
	}
	sessions := &SessionStoreMock{
		SaveFunc: func(ctx context.Context, s storage.Session) error {
			return errors.New("disk full")
		},
	}

	svc := NewService(remote, sessions, zerolog.Nop())
	res := svc.Login(context.Background(), "a@b.com", "pw")

	require.True(t, res.IsError())
	assert.Equal(t, resource.KindStorage, res.Kind)
	assert.Contains(t, res.Message, "disk full")
	require.NotNil(t, res.Data)
	assert.Equal(t, "u1", res.Data.UserID)
}

func TestService_Register_FillsFromClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u-42",
		"email": "new@b.com",
		"role":  "ADMIN",
		"exp":   exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	remote := &RemoteMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
			assert.Equal(t, "Ann", req.FirstName)
			return &api.AuthResponse{AccessToken: token, RefreshToken: "r"}, nil
		},
	}

	var saved storage.Session
	sessions := &SessionStoreMock{
		SaveFunc: func(ctx context.Context, s storage.Session) error {
			saved = s
			return nil
		},
	}

	svc := NewService(remote, sessions, zerolog.Nop())
	res := svc.Register(context.Background(), api.RegisterRequest{FirstName: "Ann", Email: "new@b.com", Password: "pw"})

	require.True(t, res.IsSuccess(), res.Message)
	assert.Equal(t, "u-42", saved.UserID)
	assert.Equal(t, "new@b.com", saved.Email)
	assert.Equal(t, "ADMIN", saved.Role)
	assert.Equal(t, exp.UnixMilli(), saved.TokenExpiration)
	assert.Equal(t, "r", saved.RefreshToken)
}

func TestService_RefreshToken_NoRefreshToken(t *testing.T) {
	server, hits := fakeAuthServer(t, http.StatusOK, scenarioLoginBody)
	store := newSessionStore(t)

	svc := NewService(clientapi.NewClient(server.URL), store, zerolog.Nop())
	res := svc.RefreshToken(context.Background())

	require.True(t, res.IsError())
	assert.Equal(t, MsgNoRefreshToken, res.Message)
	assert.Equal(t, resource.KindPrecondition, res.Kind)
	assert.Zero(t, hits.Load())
}

func TestService_RefreshToken_KeepsRefreshTokenWhenOmitted(t *testing.T) {
	current := storage.Session{
		AccessToken:       "old",
		RefreshToken:      "rtok",
		UserID:            "u1",
		Email:             "a@b.com",
		Role:              "user",
		TokenExpiration:   1,
		RefreshExpiration: 77,
	}

	remote := &RemoteMock{
		RefreshTokenFunc: func(ctx context.Context, req api.RefreshTokenRequest) (*api.AuthResponse, error) {
			assert.Equal(t, "rtok", req.RefreshToken)
			return &api.AuthResponse{AccessToken: "new", ExpirationTime: 99}, nil
		},
	}

	var saved storage.Session
	sessions := &SessionStoreMock{
		CurrentFunc: func(ctx context.Context) (storage.Session, error) {
			return current, nil
		},
		SaveFunc: func(ctx context.Context, s storage.Session) error {
			saved = s
			return nil
		},
	}

	svc := NewService(remote, sessions, zerolog.Nop())
	res := svc.RefreshToken(context.Background())

	require.True(t, res.IsSuccess(), res.Message)
	assert.Equal(t, storage.Session{
		AccessToken:       "new",
		RefreshToken:      "rtok",
		UserID:            "u1",
		Email:             "a@b.com",
		Role:              "user",
		TokenExpiration:   99,
		RefreshExpiration: 77,
	}, saved)
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("no access token", func(t *testing.T) {
		remote := &RemoteMock{}
		sessions := &SessionStoreMock{
			CurrentFunc: func(ctx context.Context) (storage.Session, error) {
				return storage.Session{}, nil
			},
		}

		res := NewService(remote, sessions, zerolog.Nop()).ValidateToken(context.Background())

		require.True(t, res.IsError())
		assert.Equal(t, MsgNoAccessToken, res.Message)
		assert.Empty(t, remote.ValidateTokenCalls())
	})

	t.Run("server answers", func(t *testing.T) {
		remote := &RemoteMock{
			ValidateTokenFunc: func(ctx context.Context, accessToken string) (bool, error) {
				return accessToken == "tok", nil
			},
		}
		sessions := &SessionStoreMock{
			CurrentFunc: func(ctx context.Context) (storage.Session, error) {
				return storage.Session{AccessToken: "tok"}, nil
			},
		}

		res := NewService(remote, sessions, zerolog.Nop()).ValidateToken(context.Background())

		require.True(t, res.IsSuccess())
		valid, ok := res.Value()
		assert.True(t, ok)
		assert.True(t, valid)
	})

	t.Run("server error", func(t *testing.T) {
		remote := &RemoteMock{
			ValidateTokenFunc: func(ctx context.Context, accessToken string) (bool, error) {
				return false, &clientapi.HTTPError{StatusCode: 500, Status: "Internal Server Error"}
			},
		}
		sessions := &SessionStoreMock{
			CurrentFunc: func(ctx context.Context) (storage.Session, error) {
				return storage.Session{AccessToken: "tok"}, nil
			},
		}

		res := NewService(remote, sessions, zerolog.Nop()).ValidateToken(context.Background())

		require.True(t, res.IsError())
		assert.Equal(t, "Internal Server Error (500)", res.Message)
		assert.Equal(t, resource.KindServer, res.Kind)
	})
}

func TestService_Logout(t *testing.T) {
	server, _ := fakeAuthServer(t, http.StatusOK, scenarioLoginBody)
	store := newSessionStore(t)
	svc := NewService(clientapi.NewClient(server.URL), store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.True(t, svc.Login(ctx, "a@b.com", "pw").IsSuccess())
	require.True(t, svc.Logout(ctx).IsSuccess())

	assert.Equal(t, "", firstValue(t, session.Read(ctx, store, session.FieldAccessToken)))

	current, err := store.Current(ctx)
	require.NoError(t, err)
	assert.True(t, current.IsZero())
}

func TestService_Status(t *testing.T) {
	tests := []struct {
		session storage.Session
		name    string
		valid   bool
		want    Status
	}{
		{name: "no session", want: StatusUnauthenticated},
		{name: "valid token", session: storage.Session{AccessToken: "tok"}, valid: true, want: StatusAuthenticated},
		{name: "expired token", session: storage.Session{AccessToken: "tok"}, valid: false, want: StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &SessionStoreMock{
				CurrentFunc: func(ctx context.Context) (storage.Session, error) {
					return tt.session, nil
				},
				IsTokenValidFunc: func(ctx context.Context) (bool, error) {
					return tt.valid, nil
				},
			}

			status, err := NewService(&RemoteMock{}, sessions, zerolog.Nop()).Status(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestParseClaims(t *testing.T) {
	_, ok := ParseClaims("opaque-token")
	assert.False(t, ok)

	_, ok = ParseClaims("")
	assert.False(t, ok)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "legacy-id",
		"exp":     int64(2000000000),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	claims, ok := ParseClaims(token)
	require.True(t, ok)
	assert.Equal(t, "legacy-id", claims.UserID)
	assert.Equal(t, int64(2000000000000), claims.ExpiresAt)
}
