package notify

import (
	"context"
	"sync"

	"thesishub-backend/internal/domain"
)

// Publisher receives every notification the lifecycle engine emits. The
// engine never knows who listens; delivery is best-effort and must not block
// or fail the state transition that produced the notification.
type Publisher interface {
	Publish(ctx context.Context, note domain.Notification)
}

// Subscriber is a callback registered by an interested party (the UI badge
// refresher, a websocket hub, tests).
type Subscriber func(note domain.Notification)

// Bus is an in-process fan-out of notification events.
type Bus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a callback for all future notifications.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish invokes every subscriber synchronously with the notification.
func (b *Bus) Publish(ctx context.Context, note domain.Notification) {
	b.mu.RLock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(note)
	}
}

// Multi fans one Publish out to several publishers.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, note domain.Notification) {
	for _, p := range m {
		p.Publish(ctx, note)
	}
}
