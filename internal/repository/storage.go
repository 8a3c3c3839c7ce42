package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"game-marketplace/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keys of the session mirror.
const (
	KeyUserProfile  = "userProfile"
	KeyUserOrders   = "userOrders"
	KeyUserWishlist = "userWishlist"
)

// StorageRepository is a durable key-value store for session state. Get
// returns an error wrapping model.ErrNotFound for a missing key.
type StorageRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type storageRepoImpl struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepoImpl{
		db: db,
	}
}

func (r *storageRepoImpl) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.StorageEntry
	err := r.db.WithContext(ctx).
		Where("storage_key = ?", key).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("storage key %s: %w", key, model.ErrNotFound)
		}
		return nil, err
	}

	return entry.Value, nil
}

func (r *storageRepoImpl) Put(ctx context.Context, key string, value []byte) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&model.StorageEntry{
		Key:   key,
		Value: value,
	}).Error
}

func (r *storageRepoImpl) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("storage_key = ?", key).
		Delete(&model.StorageEntry{}).Error
}
