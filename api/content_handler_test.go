package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nexus-sb/club-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContentListMode(t *testing.T) {
	db, gormDB := newTestDatabase(t)

	require.NoError(t, gormDB.Create(&models.Project{
		ID: 1, Title: "Mars Rover", Description: "Autonomous rover", ProjectYear: 2024, SortOrder: 1,
	}).Error)
	require.NoError(t, gormDB.Create(&models.MediaAsset{
		EntityType: models.EntityTypeProject, EntityID: 1, ImageURL: "a.jpg", IsPrimary: true,
	}).Error)
	require.NoError(t, gormDB.Create(&models.MediaAsset{
		EntityType: models.EntityTypeProject, EntityID: 1, ImageURL: "b.jpg",
	}).Error)

	require.NoError(t, gormDB.Create(&models.Event{
		ID: 10, Title: "Hackathon", EventDate: "2999-06-01T18:00:00Z", SortOrder: 1,
	}).Error)
	require.NoError(t, gormDB.Create(&models.Event{
		ID: 11, Title: "Orientation", EventDate: "2001-08-01T10:00:00Z", SortOrder: 2,
	}).Error)

	require.NoError(t, gormDB.Create(&models.TeamMember{
		ID: 5, Name: "Asha", TeamRole: "Lead", Department: "CS",
		ImageURL: "https://abc.supabase.co/storage/v1/object/public/team/asha.png",
	}).Error)
	require.NoError(t, gormDB.Create(&models.Alumnus{
		ID: 6, Name: "Ravi", JobTitle: "SDE", GraduationYear: 2021, LinkedinURL: "https://linkedin.com/in/ravi",
	}).Error)
	require.NoError(t, gormDB.Create(&models.Achievement{
		ID: 7, Title: "National Winner",
	}).Error)
	require.NoError(t, gormDB.Create(&models.Partner{
		ID: 8, Name: "Acme", LogoURL: "https://acme.example/logo.png", WebsiteURL: "https://acme.example",
	}).Error)

	handler := newContentHandler(db)
	recorder := httptest.NewRecorder()
	handler.getContent()(recorder, httptest.NewRequest(http.MethodGet, "/content", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response contentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	require.Len(t, response.ProjectsData, 1)
	project := response.ProjectsData[0]
	assert.Equal(t, []string{"a.jpg"}, project.Images)
	assert.Equal(t, 2, project.TotalImages)
	assert.False(t, project.DetailsLoaded)
	assert.Equal(t, 2024, project.Year)
	assert.NotNil(t, project.Technologies)
	assert.NotNil(t, project.TeamMembers)

	// events form a disjoint upcoming/past cover
	require.Len(t, response.Events.Upcoming, 1)
	require.Len(t, response.Events.Past, 1)
	assert.Equal(t, int64(10), response.Events.Upcoming[0].ID)
	assert.Equal(t, "2999-06-01T18:00:00Z", response.Events.Upcoming[0].Date)
	assert.Equal(t, int64(11), response.Events.Past[0].ID)

	// events own no media rows: placeholder thumbnail, fully loaded
	assert.Equal(t, []string{placeholderImage}, response.Events.Upcoming[0].Images)
	assert.Equal(t, 1, response.Events.Upcoming[0].TotalImages)
	assert.True(t, response.Events.Upcoming[0].DetailsLoaded)

	require.Len(t, response.Team, 1)
	assert.Equal(t, "Lead", response.Team[0].Role)
	assert.Equal(t,
		"https://abc.supabase.co/storage/v1/object/public/team/asha.png?width=400&resize=contain&quality=85",
		response.Team[0].Image)

	require.Len(t, response.Alumni, 1)
	assert.Equal(t, "SDE", response.Alumni[0].CurrentRole)
	assert.Equal(t, 2021, response.Alumni[0].Year)
	assert.Equal(t, "https://linkedin.com/in/ravi", response.Alumni[0].Link)

	require.Len(t, response.Achievements, 1)
	assert.Equal(t, "award", response.Achievements[0].Icon)

	require.Len(t, response.PartnersData, 1)
	assert.Equal(t, "https://acme.example/logo.png", response.PartnersData[0].LogoURL)
	assert.Equal(t, "https://acme.example", response.PartnersData[0].WebsiteURL)

	// empty groups serialize as empty arrays, never null
	assert.NotNil(t, response.Gallery)
	assert.NotNil(t, response.TimelineEvents)
}

func TestGetContentListModeDegradesFailedGroup(t *testing.T) {
	db, gormDB := newTestDatabase(t)

	require.NoError(t, gormDB.Create(&models.TeamMember{ID: 5, Name: "Asha", TeamRole: "Lead"}).Error)
	require.NoError(t, gormDB.Create(&models.Event{
		ID: 10, Title: "Hackathon", EventDate: "2999-06-01T18:00:00Z",
	}).Error)

	// a failing group must not take the page down with it
	require.NoError(t, gormDB.Migrator().DropTable(&models.Project{}))

	handler := newContentHandler(db)
	recorder := httptest.NewRecorder()
	handler.getContent()(recorder, httptest.NewRequest(http.MethodGet, "/content", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response contentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.NotNil(t, response.ProjectsData)
	assert.Empty(t, response.ProjectsData)

	require.Len(t, response.Team, 1)
	assert.Equal(t, "Asha", response.Team[0].Name)
	require.Len(t, response.Events.Upcoming, 1)
	assert.Equal(t, int64(10), response.Events.Upcoming[0].ID)
}

func TestGetContentDetailMode(t *testing.T) {
	db, gormDB := newTestDatabase(t)

	require.NoError(t, gormDB.Create(&models.MediaAsset{
		EntityType: models.EntityTypeProject, EntityID: 1, ImageURL: "b.jpg",
	}).Error)
	require.NoError(t, gormDB.Create(&models.MediaAsset{
		EntityType: models.EntityTypeProject, EntityID: 1, ImageURL: "a.jpg", IsPrimary: true,
	}).Error)
	require.NoError(t, gormDB.Create(&models.MediaAsset{
		EntityType: models.EntityTypeEvent, EntityID: 1, ImageURL: "other-entity.jpg", IsPrimary: true,
	}).Error)

	handler := newContentHandler(db)

	t.Run("returns all images primary first", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.getContent()(recorder, httptest.NewRequest(http.MethodGet, "/content?type=project_details&id=1", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var response detailImagesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, response.Images)
	})

	t.Run("unknown type yields an empty list", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.getContent()(recorder, httptest.NewRequest(http.MethodGet, "/content?type=team&id=1", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var response detailImagesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Empty(t, response.Images)
		assert.NotNil(t, response.Images)
	})

	t.Run("non-numeric id yields an empty list", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.getContent()(recorder, httptest.NewRequest(http.MethodGet, "/content?type=gallery&id=abc", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var response detailImagesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Empty(t, response.Images)
	})

	t.Run("entity with no media yields an empty list", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.getContent()(recorder, httptest.NewRequest(http.MethodGet, "/content?type=timeline&id=42", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var response detailImagesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Empty(t, response.Images)
	})
}
