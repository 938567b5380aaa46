package notification

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// AdminChannel is the Redis pub/sub channel the admin stream listens on.
const AdminChannel = "notifications:admin"

// Broadcaster pushes a freshly stored notification to live listeners.
type Broadcaster interface {
	Broadcast(ctx context.Context, n *Notification) error
}

type redisBroadcaster struct {
	client *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) Broadcaster {
	return &redisBroadcaster{client: client}
}

func (b *redisBroadcaster) Broadcast(ctx context.Context, n *Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, AdminChannel, string(payload)).Err()
}
