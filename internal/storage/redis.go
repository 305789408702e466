package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "gymdash:snapshot:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisClient dials addr and pings it before returning.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

func Key(name string) string {
	return keyPrefix + name
}

func (r *RedisStore) Load(ctx context.Context, name string, dst any) (bool, error) {
	const op = "storage.RedisStore.Load"
	if name == "" {
		return false, fmt.Errorf("%s: %w", op, ErrEmptyName)
	}

	val, err := r.client.Get(ctx, Key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal([]byte(val), dst); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (r *RedisStore) Save(ctx context.Context, name string, src any) error {
	const op = "storage.RedisStore.Save"
	if name == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyName)
	}

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.client.Set(ctx, Key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
