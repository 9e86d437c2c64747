package store

import (
	"context"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record is one row of the key-value namespace when backed by SQLite.
// Version implements optimistic compare-and-swap: every update increments it
// and the UPDATE is conditioned on the version read.
type Record struct {
	Key     string `gorm:"primaryKey"`
	Value   []byte
	Version int64 `gorm:"not null;default:0"`
}

func (Record) TableName() string { return "records" }

// GormStore persists the namespace in a single SQLite table.
type GormStore struct {
	db *gorm.DB
}

const gormCASRetries = 5

// NewGormStore opens (and migrates) the SQLite database at path.
func NewGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

func (s *GormStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	for attempt := 0; attempt < gormCASRetries; attempt++ {
		var rec Record
		exists := true
		err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			exists = false
			rec = Record{Key: key}
		} else if err != nil {
			return err
		}

		next, err := fn(rec.Value)
		if err != nil {
			return err
		}

		if !exists {
			res := s.db.WithContext(ctx).Create(&Record{Key: key, Value: next, Version: 1})
			if res.Error == nil {
				return nil
			}
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				// Someone created the key first — retry against their value.
				continue
			}
			return res.Error
		}

		res := s.db.WithContext(ctx).
			Model(&Record{}).
			Where("key = ? AND version = ?", key, rec.Version).
			Updates(map[string]interface{}{"value": next, "version": rec.Version + 1})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			return nil
		}
		// CAS miss, retry
	}
	return ErrConflict
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error
}
