package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcaster_NotifyReachesAllSubscribers(t *testing.T) {
	b := New()

	ch1, cancel1 := b.Subscribe()
	defer cancel1()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()

	assert.Equal(t, 2, b.Len())

	b.Notify()

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}

func TestBroadcaster_Coalesces(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe()
	defer cancel()

	// Несколько изменений подряд не блокируют писателя
	for i := 0; i < 10; i++ {
		b.Notify()
	}

	assert.Len(t, ch, 1)
	<-ch
	assert.Len(t, ch, 0)
}

func TestBroadcaster_Cancel(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe()

	cancel()
	cancel()

	assert.Equal(t, 0, b.Len())

	_, open := <-ch
	assert.False(t, open)

	// Notify после отписки не паникует
	assert.NotPanics(t, b.Notify)
}
