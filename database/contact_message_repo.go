package database

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Add inserts one contact message. ID is assigned on insert, and CreatedAt
// is set to the call time unless the caller already set it.
func (r *ContactMessageRepo) Add(ctx context.Context, message *models.ContactMessage) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(message).Error
}

// Count returns the number of stored contact messages
func (r *ContactMessageRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}
