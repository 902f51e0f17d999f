package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophershop/internal/client/api"
	"github.com/iudanet/gophershop/internal/client/storage"
	"github.com/iudanet/gophershop/internal/client/storage/boltdb"
	"github.com/iudanet/gophershop/internal/crypto"
)

func newTestBolt(t *testing.T) *boltdb.Storage {
	t.Helper()

	bolt, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, bolt.Close())
	})

	return bolt
}

func fullSession() storage.Session {
	return storage.Session{
		AccessToken:       "tok",
		RefreshToken:      "rtok",
		UserID:            "u1",
		Email:             "a@b.com",
		Role:              "user",
		TokenExpiration:   9999999999999,
		RefreshExpiration: 9999999999999,
	}
}

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestStore_SaveAndCurrent(t *testing.T) {
	ctx := context.Background()
	store := New(newTestBolt(t))

	got, err := store.Current(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	require.NoError(t, store.Save(ctx, fullSession()))

	got, err = store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, fullSession(), got)

}

func TestStore_ClearResetsAllFields(t *testing.T) {
	ctx := context.Background()
	store := New(newTestBolt(t))

	require.NoError(t, store.Save(ctx, fullSession()))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.AccessToken)
	assert.Empty(t, got.RefreshToken)
	assert.Empty(t, got.UserID)
	assert.Empty(t, got.Email)
	assert.Empty(t, got.Role)
	assert.Zero(t, got.TokenExpiration)
	assert.Zero(t, got.RefreshExpiration)

	// Повторная очистка не ошибка
	assert.NoError(t, store.Clear(ctx))
}

func TestStore_IsTokenValid_Boundary(t *testing.T) {
	ctx := context.Background()
	const expiration = int64(1_700_000_000_000)

	tests := []struct {
		name string
		now  int64
		want bool
	}{
		{name: "before expiration", now: expiration - 1, want: true},
		{name: "exactly at expiration", now: expiration, want: false},
		{name: "after expiration", now: expiration + 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New(newTestBolt(t), WithClock(func() time.Time {
				return time.UnixMilli(tt.now)
			}))

			s := fullSession()
			s.TokenExpiration = expiration
			require.NoError(t, store.Save(ctx, s))

			valid, err := store.IsTokenValid(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}

func TestStore_IsTokenValid_NoSession(t *testing.T) {
	store := New(newTestBolt(t))

	valid, err := store.IsTokenValid(context.Background())
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestStore_Token(t *testing.T) {
	ctx := context.Background()
	store := New(newTestBolt(t))

	require.NoError(t, store.Save(ctx, fullSession()))

	var tokens api.TokenSource = store
	tok, err := tokens.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
	assert.Equal(t, "rtok", tok.RefreshToken)
	assert.Equal(t, "Bearer", tok.Type())
	assert.Equal(t, int64(9999999999999), tok.Expiry.UnixMilli())

	require.NoError(t, store.Clear(ctx))
	tok, err = store.Token(ctx)
	require.NoError(t, err)
	assert.True(t, tok.Expiry.IsZero())
	assert.Empty(t, tok.AccessToken)
}

func TestStore_SealedAtRest(t *testing.T) {
	ctx := context.Background()
	bolt := newTestBolt(t)

	sealer, err := crypto.NewSessionSealer(filepath.Join(t.TempDir(), "session.key"))
	require.NoError(t, err)

	store := New(bolt, WithSealer(sealer))
	require.NoError(t, store.Save(ctx, fullSession()))

	// На диске токены зашифрованы, остальные поля как есть
	raw, err := bolt.GetSession(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "tok", raw.AccessToken)
	assert.NotEqual(t, "rtok", raw.RefreshToken)
	assert.Equal(t, "u1", raw.UserID)

	got, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, fullSession(), got)

	// Токены, переставленные местами на диске, не открываются
	raw.AccessToken, raw.RefreshToken = raw.RefreshToken, raw.AccessToken
	require.NoError(t, bolt.SaveSession(ctx, raw))
	_, err = store.Current(ctx)
	assert.ErrorIs(t, err, crypto.ErrSealedValue)
}

func TestStore_WatchEmitsOnEveryWrite(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := New(newTestBolt(t))
	feed := store.Watch(ctx)

	initial := recv(t, feed)
	assert.True(t, initial.IsZero())

	require.NoError(t, store.Save(ctx, fullSession()))
	assert.Equal(t, fullSession(), recv(t, feed))

	require.NoError(t, store.Clear(ctx))
	assert.True(t, recv(t, feed).IsZero())

	cancel()
	for range feed {
		// дочитываем до закрытия
	}
}

func TestRead_Field(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := New(newTestBolt(t))

	tokens := Read(ctx, store, FieldAccessToken)
	expirations := Read(ctx, store, FieldTokenExpiration)

	assert.Equal(t, "", recv(t, tokens))
	assert.Equal(t, int64(0), recv(t, expirations))

	require.NoError(t, store.Save(ctx, fullSession()))

	assert.Equal(t, "tok", recv(t, tokens))
	assert.Equal(t, int64(9999999999999), recv(t, expirations))
}

func TestFields_Get(t *testing.T) {
	s := fullSession()

	assert.Equal(t, "tok", FieldAccessToken.Get(s))
	assert.Equal(t, "rtok", FieldRefreshToken.Get(s))
	assert.Equal(t, "u1", FieldUserID.Get(s))
	assert.Equal(t, "a@b.com", FieldEmail.Get(s))
	assert.Equal(t, "user", FieldRole.Get(s))
	assert.Equal(t, int64(9999999999999), FieldTokenExpiration.Get(s))
	assert.Equal(t, int64(9999999999999), FieldRefreshExpiration.Get(s))
}

// failingStorage всегда возвращает ошибку
type failingStorage struct{}

func (failingStorage) SaveSession(context.Context, *storage.Session) error { return errors.New("disk full") }
func (failingStorage) GetSession(context.Context) (*storage.Session, error) {
	return nil, errors.New("disk gone")
}
func (failingStorage) DeleteSession(context.Context) error { return errors.New("disk gone") }

func TestStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	store := New(failingStorage{})

	assert.ErrorContains(t, store.Save(ctx, fullSession()), "disk full")
	assert.ErrorContains(t, store.Clear(ctx), "disk gone")

	_, err := store.Current(ctx)
	assert.Error(t, err)
	_, err = store.IsTokenValid(ctx)
	assert.Error(t, err)
	_, err = store.Token(ctx)
	assert.Error(t, err)
}
