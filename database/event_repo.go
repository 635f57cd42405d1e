package database

import (
	"context"

	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db}
}

// FindAll returns all events ordered for display. The upcoming/past split
// happens at response-assembly time, not here.
func (r *EventRepo) FindAll(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.WithContext(ctx).Order("sort_order asc").Find(&events).Error
	return events, err
}
