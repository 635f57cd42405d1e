package api

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nexus-sb/club-site-backend/database"
	"github.com/nexus-sb/club-site-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDatabase opens an in-memory sqlite store with the full schema. The
// pool is pinned to a single connection: each sqlite ":memory:" connection
// is its own database, so the aggregator's concurrent queries must share one.
func newTestDatabase(t *testing.T) (database.Database, *gorm.DB) {
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
		&models.TeamMember{},
		&models.Alumnus{},
		&models.TimelineEvent{},
		&models.Achievement{},
		&models.Partner{},
		&models.MediaAsset{},
		&models.Application{},
		&models.SiteConfig{},
	))

	return database.New(db), db
}
