package snapshot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis stores snapshots in a shared Redis so replicas warm each other.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	log    *zap.Logger
}

// NewRedis builds a Redis-backed store. Keys are namespaced under prefix.
func NewRedis(client *redis.Client, ttl time.Duration, prefix string, log *zap.Logger) *Redis {
	return &Redis{client: client, ttl: ttl, prefix: prefix, log: log}
}

func (r *Redis) Get(ctx context.Context, key string, dst any) bool {
	payload, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("snapshot read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		r.log.Warn("snapshot undecodable", zap.String("key", key), zap.Error(err))
		r.Invalidate(ctx, key)
		return false
	}
	return true
}

func (r *Redis) Set(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		r.log.Warn("snapshot unencodable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, payload, r.ttl).Err(); err != nil {
		r.log.Warn("snapshot write failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Invalidate(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		r.log.Warn("snapshot delete failed", zap.String("key", key), zap.Error(err))
	}
}
