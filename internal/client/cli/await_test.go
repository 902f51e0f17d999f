package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophershop/internal/client/resource"
)

func TestAwait(t *testing.T) {
	t.Run("success logs loading", func(t *testing.T) {
		var logs bytes.Buffer
		logger := zerolog.New(&logs).Level(zerolog.DebugLevel)

		value := 42
		got, err := await(context.Background(), logger, "answer", func(context.Context) resource.Resource[int] {
			return resource.Success(&value)
		})

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 42, *got)
		assert.Contains(t, logs.String(), `"op":"answer"`)
		assert.Contains(t, logs.String(), `"message":"loading"`)
	})

	t.Run("error", func(t *testing.T) {
		got, err := await(context.Background(), zerolog.Nop(), "missing", func(context.Context) resource.Resource[int] {
			return resource.Fail[int](resource.KindNotFound, "no such thing")
		})

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, resource.KindNotFound, resource.KindOf(err))
	})
}
