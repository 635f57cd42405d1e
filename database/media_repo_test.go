package database

import (
	"context"
	"testing"

	"github.com/nexus-sb/club-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaRepoFindByEntityOrdersPrimaryFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewMediaRepo(db)

	// insert the primary last to prove ordering comes from the query
	require.NoError(t, db.Create(&models.MediaAsset{
		EntityType: models.EntityTypeProject, EntityID: 1, ImageURL: "b.jpg",
	}).Error)
	require.NoError(t, db.Create(&models.MediaAsset{
		EntityType: models.EntityTypeProject, EntityID: 1, ImageURL: "c.jpg",
	}).Error)
	require.NoError(t, db.Create(&models.MediaAsset{
		EntityType: models.EntityTypeProject, EntityID: 1, ImageURL: "a.jpg", IsPrimary: true,
	}).Error)
	require.NoError(t, db.Create(&models.MediaAsset{
		EntityType: models.EntityTypeProject, EntityID: 2, ImageURL: "other.jpg", IsPrimary: true,
	}).Error)

	assets, err := repo.FindByEntity(context.Background(), models.EntityTypeProject, 1)
	require.NoError(t, err)

	require.Len(t, assets, 3)
	assert.Equal(t, "a.jpg", assets[0].ImageURL)
	assert.True(t, assets[0].IsPrimary)
}

func TestMediaRepoFindByEntityNoMatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewMediaRepo(db)

	assets, err := repo.FindByEntity(context.Background(), models.EntityTypeGallery, 42)
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestMediaRepoFindAllOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewMediaRepo(db)

	require.NoError(t, db.Create(&models.MediaAsset{
		EntityType: models.EntityTypeEvent, EntityID: 5, ImageURL: "extra.jpg",
	}).Error)
	require.NoError(t, db.Create(&models.MediaAsset{
		EntityType: models.EntityTypeEvent, EntityID: 5, ImageURL: "primary.jpg", IsPrimary: true,
	}).Error)

	assets, err := repo.FindAllOrdered(context.Background())
	require.NoError(t, err)

	require.Len(t, assets, 2)
	assert.True(t, assets[0].IsPrimary)
	assert.Equal(t, "primary.jpg", assets[0].ImageURL)
}
