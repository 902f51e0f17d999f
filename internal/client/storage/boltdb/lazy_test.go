package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophershop/internal/client/storage"
)

func TestLazy_OpensOnFirstUse(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "session.db")

	lazy := NewLazy(dbPath)
	assert.False(t, lazy.Opened())
	_, err := os.Stat(dbPath)
	assert.ErrorIs(t, err, os.ErrNotExist)

	got, err := lazy.GetSession(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
	assert.True(t, lazy.Opened())

	require.NoError(t, lazy.SaveSession(ctx, &storage.Session{AccessToken: "tok", UserID: "u1"}))
	require.NoError(t, lazy.Close())

	// После Close блокировка снята: файл открывается другим дескриптором
	other, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, other.Close()) }()

	got, err = other.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", got.AccessToken)
}

// Пока Lazy не трогали, файл свободен для другого процесса
func TestLazy_UnusedDoesNotHoldLock(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "session.db")

	idle := NewLazy(dbPath)
	defer func() { require.NoError(t, idle.Close()) }()

	busy := NewLazy(dbPath)
	require.NoError(t, busy.DeleteSession(ctx))
	require.NoError(t, busy.Close())

	assert.False(t, idle.Opened())
}

func TestLazy_Closed(t *testing.T) {
	ctx := context.Background()
	lazy := NewLazy(filepath.Join(t.TempDir(), "session.db"))

	require.NoError(t, lazy.Close())
	require.NoError(t, lazy.Close())

	_, err := lazy.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, lazy.SaveSession(ctx, &storage.Session{}), storage.ErrStorageClosed)
	assert.ErrorIs(t, lazy.DeleteSession(ctx), storage.ErrStorageClosed)
}

func TestLazy_OpenErrorIsRetried(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "later")
	lazy := NewLazy(filepath.Join(dir, "session.db"))
	defer func() { _ = lazy.Close() }()

	_, err := lazy.GetSession(ctx)
	require.Error(t, err)
	assert.False(t, lazy.Opened())

	require.NoError(t, os.MkdirAll(dir, 0o700))
	_, err = lazy.GetSession(ctx)
	require.NoError(t, err)
}
