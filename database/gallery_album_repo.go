package database

import (
	"context"

	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type GalleryAlbumRepo struct {
	db *gorm.DB
}

func NewGalleryAlbumRepo(db *gorm.DB) *GalleryAlbumRepo {
	return &GalleryAlbumRepo{db}
}

// FindAll returns all gallery albums, newest first
func (r *GalleryAlbumRepo) FindAll(ctx context.Context) ([]*models.GalleryAlbum, error) {
	var albums []*models.GalleryAlbum
	err := r.db.WithContext(ctx).Order("event_date desc").Find(&albums).Error
	return albums, err
}
