package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_Variants(t *testing.T) {
	data := "payload"

	loading := Loading[string]()
	assert.True(t, loading.IsLoading())
	assert.Nil(t, loading.Err())

	ok := Success(&data)
	assert.True(t, ok.IsSuccess())
	v, has := ok.Value()
	assert.True(t, has)
	assert.Equal(t, "payload", v)

	// Success без данных допустим: вызывающий обязан проверить наличие
	empty := Success[string](nil)
	assert.True(t, empty.IsSuccess())
	_, has = empty.Value()
	assert.False(t, has)

	failed := Fail[string](KindServer, "Internal Server Error (500)")
	assert.True(t, failed.IsError())
	require.Error(t, failed.Err())
	assert.Equal(t, "Internal Server Error (500)", failed.Err().Error())
	assert.Equal(t, KindServer, KindOf(failed.Err()))
}

func TestFromError(t *testing.T) {
	res := FromError[int](KindNetwork, errors.New("dial tcp: connection refused"))
	assert.Equal(t, StateError, res.State)
	assert.Equal(t, "dial tcp: connection refused", res.Message)

	res = FromError[int](KindTimeout, nil)
	assert.Equal(t, "timeout", res.Message)
}

func TestFailWith_KeepsData(t *testing.T) {
	data := 42
	res := FailWith(KindNetwork, "offline", &data)
	v, ok := res.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestRun_EmitsLoadingThenOneTerminal(t *testing.T) {
	ctx := context.Background()
	data := 7

	ch := Run(ctx, func(ctx context.Context) Resource[int] {
		return Success(&data)
	})

	var got []Resource[int]
	for r := range ch {
		got = append(got, r)
	}

	require.Len(t, got, 2)
	assert.True(t, got[0].IsLoading())
	assert.True(t, got[1].IsSuccess())
}

func TestRun_LoadingResultBecomesError(t *testing.T) {
	res := Await(Run(context.Background(), func(ctx context.Context) Resource[int] {
		return Loading[int]()
	}))
	assert.True(t, res.IsError())
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})

	ch := Run(ctx, func(ctx context.Context) Resource[int] {
		<-release
		return Fail[int](KindServer, "late")
	})

	first := <-ch
	assert.True(t, first.IsLoading())

	cancel()
	close(release)

	res := Await(ch)
	// Результат либо отброшен, либо успел попасть в буфер канала
	assert.True(t, res.IsError())
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		kind     Kind
		contains string
	}{
		{KindNetwork, "internet connection"},
		{KindTimeout, "too long"},
		{KindUnauthorized, "sign in"},
		{KindNotSupported, "not available"},
		{Kind(999), "Something went wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Contains(t, UserMessage(tt.kind), tt.contains)
		})
	}
}
