package crypto

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSealer(t *testing.T, fill byte) *Sealer {
	t.Helper()
	s, err := NewSealer(bytes.Repeat([]byte{fill}, KeySize))
	require.NoError(t, err)
	return s
}

func TestSealer_RoundTrip(t *testing.T) {
	s := newTestSealer(t, 1)

	for _, value := range []string{"a", "access-token", strings.Repeat("jwt.", 300)} {
		sealed, err := s.Seal("access_token", value)
		require.NoError(t, err)
		assert.NotContains(t, sealed, value)

		opened, err := s.Open("access_token", sealed)
		require.NoError(t, err)
		assert.Equal(t, value, opened)
	}
}

func TestSealer_FreshNoncePerSeal(t *testing.T) {
	s := newTestSealer(t, 1)

	first, err := s.Seal("refresh_token", "rtok")
	require.NoError(t, err)
	second, err := s.Seal("refresh_token", "rtok")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSealer_EmptyStaysEmpty(t *testing.T) {
	s := newTestSealer(t, 1)

	sealed, err := s.Seal("access_token", "")
	require.NoError(t, err)
	assert.Empty(t, sealed)

	opened, err := s.Open("access_token", "")
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestSealer_Rejects(t *testing.T) {
	s := newTestSealer(t, 1)
	sealed, err := s.Seal("access_token", "tok")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	tests := []struct {
		name   string
		sealer *Sealer
		field  string
		value  string
	}{
		{name: "other field", sealer: s, field: "refresh_token", value: sealed},
		{name: "other key", sealer: newTestSealer(t, 2), field: "access_token", value: sealed},
		{name: "tampered", sealer: s, field: "access_token", value: tampered},
		{name: "too short", sealer: s, field: "access_token", value: "AAAA"},
		{name: "not base64", sealer: s, field: "access_token", value: "not base64!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sealer.Open(tt.field, tt.value)
			assert.ErrorIs(t, err, ErrSealedValue)
		})
	}
}

func TestNewSealer_KeySize(t *testing.T) {
	_, err := NewSealer([]byte("short"))
	assert.ErrorContains(t, err, "must be 32 bytes")
}
