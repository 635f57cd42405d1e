package database

import (
	"context"

	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type AchievementRepo struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) *AchievementRepo {
	return &AchievementRepo{db}
}

func (r *AchievementRepo) FindAll(ctx context.Context) ([]*models.Achievement, error) {
	var achievements []*models.Achievement
	err := r.db.WithContext(ctx).Order("sort_order asc").Find(&achievements).Error
	return achievements, err
}
