package database

import (
	"context"

	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type SiteConfigRepo struct {
	db *gorm.DB
}

func NewSiteConfigRepo(db *gorm.DB) *SiteConfigRepo {
	return &SiteConfigRepo{db}
}

// FindBool reads one boolean toggle by key. A missing row is an error the
// caller is expected to translate into its fail-safe default.
func (r *SiteConfigRepo) FindBool(ctx context.Context, key string) (bool, error) {
	var row models.SiteConfig
	err := r.db.WithContext(ctx).Where("key_name = ?", key).First(&row).Error
	if err != nil {
		return false, err
	}
	return row.ValueBoolean, nil
}
