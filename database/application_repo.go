package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type ApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo {
	return &ApplicationRepo{db}
}

// Add inserts a new application row. Every call inserts: duplicate
// submissions are not deduplicated here.
func (r *ApplicationRepo) Add(ctx context.Context, application *models.Application) error {
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(application).Error
}
