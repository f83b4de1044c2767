package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRenderCache struct {
	client redisStringCmdable
	ttl    time.Duration
	prefix string
}

type redisStringCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// NewRedisRenderCache construye la cache de HTML renderizado. Con client
// nil devuelve nil y el servicio trabaja sin cache.
func NewRedisRenderCache(client *redis.Client, ttl time.Duration) RenderCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisRenderCache{
		client: client,
		ttl:    ttl,
		prefix: "render:html:",
	}
}

func (c *redisRenderCache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil || key == "" {
		return "", false
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		// redis.Nil y fallas de red se tratan igual: miss.
		return "", false
	}
	return val, true
}

func (c *redisRenderCache) Set(ctx context.Context, key, html string) {
	if c == nil || c.client == nil || key == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	_ = c.client.Set(ctx, c.prefix+key, html, c.ttl).Err()
}
