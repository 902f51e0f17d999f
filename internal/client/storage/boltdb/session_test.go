package boltdb

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gophershop/internal/client/storage"
)

// создаём тестовое BoltDB хранилище с session bucket
func createTestSessionStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "session_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func testSession(suffix string) *storage.Session {
	return &storage.Session{
		AccessToken:       "access-" + suffix,
		RefreshToken:      "refresh-" + suffix,
		UserID:            "user-" + suffix,
		Email:             suffix + "@example.com",
		Role:              "user",
		TokenExpiration:   1700000000000,
		RefreshExpiration: 1800000000000,
	}
}

func TestStorage_SaveGetDeleteSession(t *testing.T) {
	ctx := context.Background()
	store := createTestSessionStorage(t)

	// До сохранения получаем сессию по умолчанию
	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	session := testSession("a")
	require.NoError(t, store.SaveSession(ctx, session))

	got, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, *session, *got)

	// Перезапись заменяет все поля
	replacement := testSession("b")
	replacement.Role = "admin"
	require.NoError(t, store.SaveSession(ctx, replacement))

	got, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, *replacement, *got)

	require.NoError(t, store.DeleteSession(ctx))

	got, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	// Повторное удаление не ошибка
	assert.NoError(t, store.DeleteSession(ctx))
}

func TestStorage_SaveSession_Nil(t *testing.T) {
	store := createTestSessionStorage(t)
	assert.Error(t, store.SaveSession(context.Background(), nil))
}

func TestStorage_Session_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestSessionStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSession)
	})
	require.NoError(t, err)

	_, err = store.GetSession(ctx)
	assert.ErrorContains(t, err, "session bucket not found")

	err = store.SaveSession(ctx, testSession("a"))
	assert.ErrorContains(t, err, "session bucket not found")

	err = store.DeleteSession(ctx)
	assert.ErrorContains(t, err, "session bucket not found")
}

func TestStorage_Session_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.SaveSession(ctx, testSession("a")), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.DeleteSession(ctx), storage.ErrStorageClosed)
}

// Читатели никогда не видят смесь полей из разных записей
func TestStorage_Session_NoTornReads(t *testing.T) {
	ctx := context.Background()
	store := createTestSessionStorage(t)

	sessions := []*storage.Session{testSession("a"), testSession("b")}
	require.NoError(t, store.SaveSession(ctx, sessions[0]))

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = store.SaveSession(ctx, sessions[i%2])
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			got, err := store.GetSession(ctx)
			if !assert.NoError(t, err) {
				return
			}
			assert.True(t, *got == *sessions[0] || *got == *sessions[1], "torn session read: %+v", got)
		}
	}()

	wg.Wait()
}
