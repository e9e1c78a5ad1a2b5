package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickjot/quickjot/internal/shared"
)

// RedisPool implements Pool on top of a go-redis client. The client owns
// the physical connection pool; Acquire checks out a dedicated connection
// so that keyspace selection stays private to one lease.
type RedisPool struct {
	client *redis.Client
}

// NewRedisPool connects to the store at the given redis:// or rediss://
// URL with a bounded connection pool. Waiting for a free connection gives
// up after poolTimeout rather than queueing forever.
func NewRedisPool(url string, poolSize int, poolTimeout time.Duration) (*RedisPool, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}

	opts.PoolSize = poolSize
	opts.PoolTimeout = poolTimeout

	return &RedisPool{client: redis.NewClient(opts)}, nil
}

// Acquire leases a dedicated connection from the pool.
func (p *RedisPool) Acquire(ctx context.Context) (Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return &redisConn{rc: p.client.Conn()}, nil
}

// Ping verifies connectivity, for startup checks and health probes.
func (p *RedisPool) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}

// Close releases all pooled connections.
func (p *RedisPool) Close() error {
	return p.client.Close()
}

// redisConn is one leased connection. Not safe for concurrent use; the
// lease contract gives it a single owner.
type redisConn struct {
	rc       *redis.Conn
	prefix   string
	released bool
}

func (c *redisConn) Use(ns Keyspace) {
	c.prefix = string(ns) + ":"
}

func (c *redisConn) key(k string) string {
	return c.prefix + k
}

func (c *redisConn) Get(ctx context.Context, key string) (string, error) {
	v, err := c.rc.Get(ctx, c.key(key)).Result()
	if err != nil {
		return "", translate("get", key, err)
	}
	return v, nil
}

func (c *redisConn) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.rc.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return translate("set", key, err)
	}
	return nil
}

func (c *redisConn) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	if err := c.rc.Del(ctx, prefixed...).Err(); err != nil {
		return translate("del", keys[0], err)
	}
	return nil
}

func (c *redisConn) HSet(ctx context.Context, key, field, value string) error {
	if err := c.rc.HSet(ctx, c.key(key), field, value).Err(); err != nil {
		return translate("hset", key, err)
	}
	return nil
}

func (c *redisConn) HGet(ctx context.Context, key, field string) (string, error) {
	v, err := c.rc.HGet(ctx, c.key(key), field).Result()
	if err != nil {
		return "", translate("hget", key, err)
	}
	return v, nil
}

func (c *redisConn) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	v, err := c.rc.HGetAll(ctx, c.key(key)).Result()
	if err != nil {
		return nil, translate("hgetall", key, err)
	}
	return v, nil
}

func (c *redisConn) HDel(ctx context.Context, key string, fields ...string) (int64, error) {
	n, err := c.rc.HDel(ctx, c.key(key), fields...).Result()
	if err != nil {
		return 0, translate("hdel", key, err)
	}
	return n, nil
}

func (c *redisConn) Release() {
	if c.released {
		return
	}
	c.released = true
	_ = c.rc.Close()
}

// translate maps the store-client error space onto ours: a missing key is
// shared.ErrNotFound, everything else keeps its cause in the chain.
func translate(op, key string, err error) error {
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%s %q: %w", op, key, shared.ErrNotFound)
	}
	return fmt.Errorf("%s %q: %w", op, key, err)
}
