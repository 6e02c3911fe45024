package notify

import (
	"context"
	"time"

	"pawhaven/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// DedupIndex answers whether a notification key is the first occurrence
// within the de-duplication window. It is a fast-path hint only: the
// store query in the gateway remains the authoritative duplicate check.
type DedupIndex interface {
	FirstSeen(ctx context.Context, key string, window time.Duration) (bool, error)
}

type redisDedup struct {
	client *redis.Client
}

func NewRedisDedup(cfg config.RedisConfig) DedupIndex {
	if cfg.Addr == "" {
		return nopDedup{}
	}
	return &redisDedup{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (d *redisDedup) FirstSeen(ctx context.Context, key string, window time.Duration) (bool, error) {
	return d.client.SetNX(ctx, "notify:dedup:"+key, 1, window).Result()
}

// nopDedup always defers to the store query.
type nopDedup struct{}

func (nopDedup) FirstSeen(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}

func NewNopDedup() DedupIndex {
	return nopDedup{}
}
