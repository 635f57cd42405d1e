package database

import (
	"context"
	"testing"

	"github.com/nexus-sb/club-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteConfigRepoFindBool(t *testing.T) {
	db := newTestDB(t)
	repo := NewSiteConfigRepo(db)

	require.NoError(t, db.Create(&models.SiteConfig{KeyName: "enrollment_open", ValueBoolean: true}).Error)

	value, err := repo.FindBool(context.Background(), "enrollment_open")
	require.NoError(t, err)
	assert.True(t, value)
}

func TestSiteConfigRepoFindBoolMissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewSiteConfigRepo(db)

	value, err := repo.FindBool(context.Background(), "enrollment_open")
	assert.Error(t, err)
	assert.False(t, value)
}
