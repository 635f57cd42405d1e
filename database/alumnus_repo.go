package database

import (
	"context"

	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type AlumnusRepo struct {
	db *gorm.DB
}

func NewAlumnusRepo(db *gorm.DB) *AlumnusRepo {
	return &AlumnusRepo{db}
}

func (r *AlumnusRepo) FindAll(ctx context.Context) ([]*models.Alumnus, error) {
	var alumni []*models.Alumnus
	err := r.db.WithContext(ctx).Order("sort_order asc").Find(&alumni).Error
	return alumni, err
}
