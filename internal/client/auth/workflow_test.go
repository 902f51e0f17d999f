package auth

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophershop/internal/client/api"
	"github.com/iudanet/gophershop/internal/testutil/backend"
	"github.com/iudanet/gophershop/pkg/api"
)

// Полный цикл против фейкового backend с настоящими JWT
func TestWorkflow_AgainstBackend(t *testing.T) {
	srv := backend.New(t)
	store := newSessionStore(t)
	client := clientapi.NewClient(srv.URL, clientapi.WithTokenSource(store))
	svc := NewService(client, store, zerolog.Nop())
	ctx := context.Background()

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusUnauthenticated, status)

	reg := svc.Register(ctx, api.RegisterRequest{FirstName: "Ann", LastName: "Lee", Email: "ann@b.com", Password: "secret-pass"})
	require.True(t, reg.IsSuccess(), reg.Message)

	status, err = svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusAuthenticated, status)

	valid := svc.ValidateToken(ctx)
	require.True(t, valid.IsSuccess(), valid.Message)
	assert.True(t, *valid.Data)

	before, err := store.Current(ctx)
	require.NoError(t, err)

	refreshed := svc.RefreshToken(ctx)
	require.True(t, refreshed.IsSuccess(), refreshed.Message)

	after, err := store.Current(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, before.RefreshToken, after.RefreshToken)
	assert.Equal(t, before.UserID, after.UserID)
	assert.Equal(t, 1, srv.Hits("POST /api/auth/refresh-token"))

	// Старый refresh token одноразовый
	require.NoError(t, store.Save(ctx, before))
	reused := svc.RefreshToken(ctx)
	require.True(t, reused.IsError())
	assert.Equal(t, "Unauthorized (401)", reused.Message)

	require.True(t, svc.Logout(ctx).IsSuccess())
	status, err = svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusUnauthenticated, status)
}

func TestWorkflow_ExpiredTokenStaysAuthenticated(t *testing.T) {
	srv := backend.New(t)
	srv.AddUser("a@b.com", "pw", "A", "B")
	srv.SetAccessTokenTTL(-time.Minute)

	store := newSessionStore(t)
	svc := NewService(clientapi.NewClient(srv.URL), store, zerolog.Nop())
	ctx := context.Background()

	require.True(t, svc.Login(ctx, "a@b.com", "pw").IsSuccess())

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, status)

	srv.SetAccessTokenTTL(time.Hour)
	require.True(t, svc.RefreshToken(ctx).IsSuccess())

	status, err = svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusAuthenticated, status)
}
