// Package store is the key-value document store the migrated entities
// land in. Documents are JSON strings keyed "<Table>:<id>"; writes are
// upserts and nothing is ever deleted.
package store

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned by Get when no document exists under the key.
// Absence is a normal outcome for this job, not a failure.
var ErrNotFound = errors.New("record not found")

type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

type RedisKV struct {
	c *redis.Client
}

func NewRedisKV(c *redis.Client) *RedisKV { return &RedisKV{c: c} }

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.c.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", err
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value string) error {
	return r.c.Set(ctx, key, value, 0).Err()
}
