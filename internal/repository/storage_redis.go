package repository

import (
	"context"
	"errors"
	"fmt"

	"game-marketplace/internal/model"

	"github.com/redis/go-redis/v9"
)

type redisStorageRepoImpl struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStorageRepository stores every key under prefix, so several
// storefront instances can share one redis database.
func NewRedisStorageRepository(rdb *redis.Client, prefix string) StorageRepository {
	return &redisStorageRepoImpl{
		rdb:    rdb,
		prefix: prefix,
	}
}

func (r *redisStorageRepoImpl) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("storage key %s: %w", key, model.ErrNotFound)
		}
		return nil, err
	}

	return value, nil
}

func (r *redisStorageRepoImpl) Put(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *redisStorageRepoImpl) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.prefix+key).Err()
}
