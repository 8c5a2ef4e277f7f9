package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisDialTimeout = 2 * time.Second

// RedisKV stores keys as plain redis strings under a namespace prefix.
type RedisKV struct {
	client *redis.Client
	prefix string
	owned  bool
}

// OpenRedis connects to addr and verifies the connection with PING.
func OpenRedis(ctx context.Context, addr string, db int, prefix string) (*RedisKV, error) {
	if addr == "" {
		return nil, errors.New("redis storage: missing address")
	}
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DB:          db,
		DialTimeout: redisDialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis storage: %w", err)
	}
	kv := NewRedisKV(client, prefix)
	kv.owned = true
	return kv, nil
}

// NewRedisKV wraps an existing client. Close does not close a client it
// did not open.
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis storage: %w", err)
	}
	return data, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis storage: %w", err)
	}
	return nil
}

func (r *RedisKV) Close() error {
	if !r.owned {
		return nil
	}
	return r.client.Close()
}
