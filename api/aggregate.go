package api

import (
	"fmt"
	"strings"

	"github.com/nexus-sb/club-site-backend/models"
	"github.com/samber/lo"
)

// mediaIndex is built from one primary-first scan of the media table. The
// first URL seen per entity is its thumbnail (the primary row when one
// exists), the per-key count is the entity's total image count.
type mediaIndex struct {
	thumbnails map[string]string
	counts     map[string]int
}

func buildMediaIndex(assets []*models.MediaAsset) mediaIndex {
	idx := mediaIndex{
		thumbnails: make(map[string]string, len(assets)),
		counts:     make(map[string]int, len(assets)),
	}
	for _, asset := range assets {
		key := mediaKey(asset.EntityType, asset.EntityID)
		if _, ok := idx.thumbnails[key]; !ok {
			idx.thumbnails[key] = optimizeImageURL(asset.ImageURL, thumbnailWidth, thumbnailQuality)
		}
		idx.counts[key]++
	}
	return idx
}

func mediaKey(entityType models.EntityType, entityID int64) string {
	return fmt.Sprintf("%s_%d", entityType, entityID)
}

// attach resolves the thumbnail block for one entity. An entity with no
// media rows gets the placeholder and counts as fully loaded.
func (idx mediaIndex) attach(entityType models.EntityType, entityID int64) mediaInfo {
	key := mediaKey(entityType, entityID)
	thumbnail, ok := idx.thumbnails[key]
	if !ok {
		thumbnail = placeholderImage
	}
	total := idx.counts[key]
	if total < 1 {
		total = 1
	}
	return mediaInfo{
		Images:        []string{thumbnail},
		TotalImages:   total,
		DetailsLoaded: total <= 1,
	}
}

// matchEntityType maps a detail-mode type parameter to a media entity type.
// The checks are ordered substring matches because deployed clients send
// values like "project_details"; the fixed order keeps ambiguous values
// deterministic.
func matchEntityType(typeParam string) (models.EntityType, bool) {
	switch {
	case strings.Contains(typeParam, "project"):
		return models.EntityTypeProject, true
	case strings.Contains(typeParam, "event"):
		return models.EntityTypeEvent, true
	case strings.Contains(typeParam, "gallery"):
		return models.EntityTypeGallery, true
	case strings.Contains(typeParam, "timeline"):
		return models.EntityTypeTimeline, true
	}
	return "", false
}

func buildProjects(rows []*models.Project, idx mediaIndex) []projectPayload {
	return lo.Map(rows, func(p *models.Project, _ int) projectPayload {
		return projectPayload{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Year:         p.ProjectYear,
			Technologies: orEmpty(p.Technologies),
			TeamMembers:  orEmpty(p.Contributors),
			GithubURL:    p.GithubURL,
			mediaInfo:    idx.attach(models.EntityTypeProject, p.ID),
		}
	})
}

func buildEvents(rows []*models.Event, idx mediaIndex) []eventPayload {
	return lo.Map(rows, func(e *models.Event, _ int) eventPayload {
		return eventPayload{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Date:        e.EventDate,
			mediaInfo:   idx.attach(models.EntityTypeEvent, e.ID),
		}
	})
}

// partitionEvents splits events into a disjoint upcoming/past cover by
// comparing each ISO-8601 date string lexicographically against now. This
// is only correct while all stored dates use one timezone-qualified format,
// which the content-management side enforces at write time.
func partitionEvents(events []eventPayload, now string) eventGroups {
	upcoming := lo.Filter(events, func(e eventPayload, _ int) bool {
		return e.Date >= now
	})
	past := lo.Filter(events, func(e eventPayload, _ int) bool {
		return e.Date < now
	})
	return eventGroups{Upcoming: upcoming, Past: past}
}

func buildGallery(rows []*models.GalleryAlbum, idx mediaIndex) []galleryPayload {
	return lo.Map(rows, func(g *models.GalleryAlbum, _ int) galleryPayload {
		return galleryPayload{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			EventDate:   g.EventDate,
			mediaInfo:   idx.attach(models.EntityTypeGallery, g.ID),
		}
	})
}

func buildTeam(rows []*models.TeamMember) []teamPayload {
	return lo.Map(rows, func(t *models.TeamMember, _ int) teamPayload {
		return teamPayload{
			ID:         t.ID,
			Name:       t.Name,
			Role:       t.TeamRole,
			Department: t.Department,
			Image:      optimizeImageURL(t.ImageURL, portraitWidth, portraitQuality),
		}
	})
}

func buildAlumni(rows []*models.Alumnus) []alumnusPayload {
	return lo.Map(rows, func(a *models.Alumnus, _ int) alumnusPayload {
		return alumnusPayload{
			ID:          a.ID,
			Name:        a.Name,
			CurrentRole: a.JobTitle,
			Year:        a.GraduationYear,
			Image:       optimizeImageURL(a.ImageURL, portraitWidth, portraitQuality),
			Link:        a.LinkedinURL,
		}
	})
}

func buildTimeline(rows []*models.TimelineEvent, idx mediaIndex) []timelinePayload {
	return lo.Map(rows, func(t *models.TimelineEvent, _ int) timelinePayload {
		return timelinePayload{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Year:        t.Year,
			mediaInfo:   idx.attach(models.EntityTypeTimeline, t.ID),
		}
	})
}

func buildAchievements(rows []*models.Achievement) []achievementPayload {
	return lo.Map(rows, func(a *models.Achievement, _ int) achievementPayload {
		icon := a.Icon
		if icon == "" {
			icon = "award"
		}
		return achievementPayload{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        icon,
		}
	})
}

func buildPartners(rows []*models.Partner) []partnerPayload {
	return lo.Map(rows, func(p *models.Partner, _ int) partnerPayload {
		return partnerPayload{
			ID:         p.ID,
			Name:       p.Name,
			LogoURL:    optimizeImageURL(p.LogoURL, logoWidth, logoQuality),
			WebsiteURL: p.WebsiteURL,
		}
	})
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
