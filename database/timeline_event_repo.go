package database

import (
	"context"

	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type TimelineEventRepo struct {
	db *gorm.DB
}

func NewTimelineEventRepo(db *gorm.DB) *TimelineEventRepo {
	return &TimelineEventRepo{db}
}

func (r *TimelineEventRepo) FindAll(ctx context.Context) ([]*models.TimelineEvent, error) {
	var events []*models.TimelineEvent
	err := r.db.WithContext(ctx).Order("sort_order asc").Find(&events).Error
	return events, err
}
