package database

import (
	"context"

	"github.com/nexus-sb/club-site-backend/models"
	"gorm.io/gorm"
)

type TeamMemberRepo struct {
	db *gorm.DB
}

func NewTeamMemberRepo(db *gorm.DB) *TeamMemberRepo {
	return &TeamMemberRepo{db}
}

func (r *TeamMemberRepo) FindAll(ctx context.Context) ([]*models.TeamMember, error) {
	var members []*models.TeamMember
	err := r.db.WithContext(ctx).Order("sort_order asc").Find(&members).Error
	return members, err
}
