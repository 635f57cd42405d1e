package database

import (
	"context"

	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type PartnerRepo struct {
	db *gorm.DB
}

func NewPartnerRepo(db *gorm.DB) *PartnerRepo {
	return &PartnerRepo{db}
}

func (r *PartnerRepo) FindAll(ctx context.Context) ([]*models.Partner, error) {
	var partners []*models.Partner
	err := r.db.WithContext(ctx).Order("sort_order asc").Find(&partners).Error
	return partners, err
}
