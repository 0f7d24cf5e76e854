package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements Cache on top of a redis server. Every key is stored
// under prefix so several deployments can share one server.
type RedisCache struct {
	rc     *redis.Client
	prefix string
}

// NewRedisCache wraps an already connected client
func NewRedisCache(rc *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "podcastr"
	}
	return &RedisCache{rc: rc, prefix: prefix}
}

func (r *RedisCache) key(k string) string {
	return r.prefix + ":" + k
}

// Get retrieves a value from the cache
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rc.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[WARN] redis get %s failed: %v", key, err)
		}
		return nil, false
	}
	return val, true
}

// Set stores a value in the cache with a TTL
func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return r.rc.Set(ctx, r.key(key), value, ttl).Err()
}

// Delete removes a value from the cache
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.rc.Del(ctx, r.key(key)).Err()
}

// Clear removes every key under the cache prefix
func (r *RedisCache) Clear(ctx context.Context) error {
	iter := r.rc.Scan(ctx, 0, r.prefix+":*", 100).Iterator()
	pipe := r.rc.Pipeline()
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Has checks if a key exists in the cache
func (r *RedisCache) Has(ctx context.Context, key string) bool {
	n, err := r.rc.Exists(ctx, r.key(key)).Result()
	return err == nil && n > 0
}

// Stop closes the underlying client
func (r *RedisCache) Stop() {
	if err := r.rc.Close(); err != nil {
		log.Printf("[WARN] closing redis client: %v", err)
	}
}
