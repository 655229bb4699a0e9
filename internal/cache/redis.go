package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisOpTimeout bounds every cache round-trip so a slow Redis never delays an upstream fetch for long.
const redisOpTimeout = 2 * time.Second

func init() {
	Register("redis", newRedisCache)
}

// redisCache stores each entry as a plain string key "{prefix}{key}" with a
// PX expiry. Size is not enforced here: bounding memory is left to the
// server's maxmemory policy (allkeys-lru for a dedicated cache instance),
// which is why eviction callbacks never fire for this provider.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger Logger
}

func newRedisCache(cfg ProviderConfig) (Cache, error) {
	if cfg.RedisAddress == "" {
		return nil, errors.New("redis cache: address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisCache{
		client: client,
		ttl:    cfg.TTL,
		prefix: cfg.keyPrefix(),
		logger: cfg.Logger,
	}, nil
}

func (r *redisCache) key(k string) string {
	return r.prefix + k
}

func (r *redisCache) logError(msg string, err error) {
	if r.logger != nil {
		r.logger.Error(msg, err)
	}
}

func (r *redisCache) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logError("redis cache Get failed", err)
		}
		return nil, false
	}
	return val, true
}

func (r *redisCache) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		r.logError("redis cache Set failed", err)
	}
}

func (r *redisCache) Contains(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		r.logError("redis cache Contains failed", err)
		return false
	}
	return n > 0
}

// Len counts keys under the configured prefix with SCAN, so other data in the
// same database is not included.
func (r *redisCache) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	count := 0
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 500).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		r.logError("redis cache Len failed", err)
		return 0
	}
	return count
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
