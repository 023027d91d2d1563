package sessionstorage

import (
	"context"
	"errors"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisStorage struct {
	client *redis.Client
	Log    *zap.Logger
}

// NewRedisStorage keeps items as plain Redis strings without expiry; the
// session lives until an explicit logout.
func NewRedisStorage(client *redis.Client, logger *zap.Logger) contracts.SessionStorage {
	return &redisStorage{client: client, Log: logger}
}

func (r *redisStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		r.Log.Error("redisStorage.GetItem error",
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return "", false, exceptions.ErrStorageRead(err, key)
	}
	return data, true, nil
}

func (r *redisStorage) SetItem(ctx context.Context, key, value string) error {
	err := r.client.Set(ctx, key, value, 0).Err()
	if err != nil {
		r.Log.Error("redisStorage.SetItem error",
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(err, key)
	}
	return nil
}

func (r *redisStorage) RemoveItem(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.Log.Error("redisStorage.RemoveItem error",
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStorageRemove(err, key)
	}
	return nil
}
