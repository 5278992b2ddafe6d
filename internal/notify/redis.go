package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/logger"
)

// RedisPublisher pushes notification events onto a Redis channel so other
// portal instances can refresh their clients' notification badges.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher builds a Redis-backed publisher.
func NewRedisPublisher(addr, password, channel string) *RedisPublisher {
	return &RedisPublisher{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		channel: channel,
	}
}

// Publish serializes the notification and publishes it. Errors are logged,
// never returned: the event bus sits outside the transition's boundary.
func (p *RedisPublisher) Publish(ctx context.Context, note domain.Notification) {
	payload, err := json.Marshal(note)
	if err != nil {
		logger.Error("Failed to marshal notification event", "error", err)
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := p.client.Publish(pubCtx, p.channel, payload).Err(); err != nil {
		logger.Error("Failed to publish notification event", "error", err, "channel", p.channel)
	}
}

// Close releases the underlying client.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
