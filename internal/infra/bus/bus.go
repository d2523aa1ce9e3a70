// Package bus implements the process-wide change-notification channel.
package bus

import (
	"log/slog"
	"sync"

	"salepoint/internal/domain/service"
)

// Broadcaster fans a changed-slot key out to every registered listener,
// synchronously and without any delivery guarantee. A listener that
// panics is contained so one bad consumer cannot take down a mutation.
type Broadcaster struct {
	logger *slog.Logger

	mu        sync.Mutex
	nextID    int
	listeners map[int]service.ChangeListener
}

var _ service.ChangePublisher = (*Broadcaster)(nil)

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		logger:    logger,
		listeners: make(map[int]service.ChangeListener),
	}
}

// StorageChanged announces that the collection under key changed.
// Listeners run synchronously at call time; whoever is not subscribed
// right now simply misses the event.
func (b *Broadcaster) StorageChanged(key string) {
	b.mu.Lock()
	listeners := make([]service.ChangeListener, 0, len(b.listeners))
	for _, listener := range b.listeners {
		listeners = append(listeners, listener)
	}
	b.mu.Unlock()

	for _, listener := range listeners {
		b.dispatch(listener, key)
	}
}

// Subscribe registers a listener and returns its deregistration function.
func (b *Broadcaster) Subscribe(listener service.ChangeListener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.listeners[id] = listener

	var once sync.Once

	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.listeners, id)
		})
	}
}

func (b *Broadcaster) dispatch(listener service.ChangeListener, key string) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("change listener panicked", slog.String("key", key), slog.Any("panic", r))
		}
	}()

	listener(key)
}
