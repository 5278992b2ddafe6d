package notify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/notify"
)

func TestBus_FanOut(t *testing.T) {
	bus := notify.NewBus()
	ctx := context.Background()

	var first, second []domain.Notification
	bus.Subscribe(func(note domain.Notification) { first = append(first, note) })
	bus.Subscribe(func(note domain.Notification) { second = append(second, note) })

	bus.Publish(ctx, domain.Notification{ID: 1, UserID: 42, Title: "Access Request Approved"})

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	assert.Equal(t, int32(42), first[0].UserID)
}

func TestBus_NoSubscribers(t *testing.T) {
	bus := notify.NewBus()
	// Publishing into the void must not panic.
	bus.Publish(context.Background(), domain.Notification{ID: 1})
}

func TestMulti_PublishesToAll(t *testing.T) {
	busA := notify.NewBus()
	busB := notify.NewBus()

	var gotA, gotB int
	busA.Subscribe(func(domain.Notification) { gotA++ })
	busB.Subscribe(func(domain.Notification) { gotB++ })

	multi := notify.Multi{busA, busB}
	multi.Publish(context.Background(), domain.Notification{ID: 1})

	assert.Equal(t, 1, gotA)
	assert.Equal(t, 1, gotB)
}
