package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "invoicemanager/internal/models/db_models"
)

type WaitlistRepository interface {
	// Add is idempotent on email; signing up twice is not an error.
	Add(ctx context.Context, entry *dbm.WaitlistEntry) error
	Count(ctx context.Context) (int64, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (r *waitlistRepository) Add(ctx context.Context, entry *dbm.WaitlistEntry) error {
	return r.db.WithContext(ctx).
		Where("email = ?", entry.Email).
		FirstOrCreate(entry).Error
}

func (r *waitlistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbm.WaitlistEntry{}).Count(&count).Error
	return count, err
}
