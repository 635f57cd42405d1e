package database

import (
	"context"

	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db}
}

// FindAllOrdered returns every media row, primary rows first. The aggregator
// builds its thumbnail and count index from this single pass; ordering makes
// the first row seen per entity the thumbnail even when no row is flagged
// primary.
func (r *MediaRepo) FindAllOrdered(ctx context.Context) ([]*models.MediaAsset, error) {
	var assets []*models.MediaAsset
	err := r.db.WithContext(ctx).Order("is_primary desc, id asc").Find(&assets).Error
	return assets, err
}

// FindByEntity returns the full image set for one entity, primary first
func (r *MediaRepo) FindByEntity(ctx context.Context, entityType models.EntityType, entityID int64) ([]*models.MediaAsset, error) {
	var assets []*models.MediaAsset
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("is_primary desc, id asc").
		Find(&assets).Error
	return assets, err
}
