package seva

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const activeSevasKey = "sevas:active"

// Cache keeps the public catalog listing warm.
type Cache interface {
	GetActive(ctx context.Context) ([]Seva, bool, error)
	SetActive(ctx context.Context, sevas []Seva) error
	Invalidate(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) GetActive(ctx context.Context) ([]Seva, bool, error) {
	data, err := c.client.Get(ctx, activeSevasKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var sevas []Seva
	if err := json.Unmarshal(data, &sevas); err != nil {
		return nil, false, err
	}
	return sevas, true, nil
}

func (c *redisCache) SetActive(ctx context.Context, sevas []Seva) error {
	payload, err := json.Marshal(sevas)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, activeSevasKey, payload, c.ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeSevasKey).Err()
}
