// Package notify рассылает уведомления об изменении локальных данных
// подписчикам живых чтений (сессия, избранное).
package notify

import "sync"

// Broadcaster fans a change signal out to every subscriber.
// Signals coalesce: a subscriber that has not consumed the previous
// signal gets one pending signal, never a backlog, and Notify never blocks.
type Broadcaster struct {
	subs   map[uint64]chan struct{}
	mu     sync.Mutex
	nextID uint64
}

// New creates an empty Broadcaster
func New() *Broadcaster {
	return &Broadcaster{
		subs: make(map[uint64]chan struct{}),
	}
}

// Subscribe registers a subscriber. The returned cancel func unregisters
// it and closes the channel; calling it twice is safe.
func (b *Broadcaster) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Notify signals every current subscriber
func (b *Broadcaster) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
			// сигнал уже ожидает обработки
		}
	}
}

// Len returns the number of active subscribers
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
