package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nexus-sb/club-site-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Project{},
		&models.Event{},
		&models.GalleryAlbum{},
		&models.MediaAsset{},
		&models.Application{},
		&models.SiteConfig{},
	))

	return db
}
