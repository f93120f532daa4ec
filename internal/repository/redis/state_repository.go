package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"github.com/iyhunko/storefront-search/internal/config"
	"github.com/iyhunko/storefront-search/internal/repository"
)

// NewClient connects to the configured Redis server and pings it.
func NewClient(ctx context.Context, conf config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	slog.Info("Redis connection done", slog.String("addr", conf.Addr))
	return client, nil
}

// StateRepository stores store aggregates as JSON strings, one Redis key per aggregate.
type StateRepository struct {
	client redis.Cmdable
}

// NewStateRepository creates a new StateRepository instance.
func NewStateRepository(client redis.Cmdable) *StateRepository {
	return &StateRepository{client: client}
}

func (r *StateRepository) Load(ctx context.Context, key repository.StateKey, dst any) (bool, error) {
	raw, err := r.client.Get(ctx, string(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		slog.Error("failed to load state", slog.String("key", string(key)), slog.Any("err", err))
		return false, fmt.Errorf("failed to get state %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode state %s: %w", key, err)
	}
	return true, nil
}

func (r *StateRepository) Save(ctx context.Context, key repository.StateKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state %s: %w", key, err)
	}
	if err := r.client.Set(ctx, string(key), raw, 0).Err(); err != nil {
		slog.Error("failed to save state", slog.String("key", string(key)), slog.Any("err", err))
		return fmt.Errorf("failed to set state %s: %w", key, err)
	}
	return nil
}

func (r *StateRepository) Delete(ctx context.Context, key repository.StateKey) error {
	if err := r.client.Del(ctx, string(key)).Err(); err != nil {
		slog.Error("failed to delete state", slog.String("key", string(key)), slog.Any("err", err))
		return fmt.Errorf("failed to delete state %s: %w", key, err)
	}
	return nil
}
