package model

import "time"

// StorageEntry is one row of the durable key-value mirror.
type StorageEntry struct {
	Key       string `gorm:"column:storage_key;primaryKey;size:64;not null"` // userProfile, userOrders, userWishlist
	Value     []byte `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
