package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/nexus-sb/club-site-backend/database"
	"github.com/nexus-sb/club-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type contentHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newContentHandler(db database.Database) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// getContent serves the aggregated page content. With no parameters it
// returns every section in one payload; with type and id it returns the
// full image set for a single entity.
func (h contentHandler) getContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		typeParam := query.Get("type")
		idParam := query.Get("id")

		if typeParam != "" && idParam != "" {
			h.serveEntityImages(w, r, typeParam, idParam)
			return
		}

		h.serveAllContent(w, r)
	}
}

// serveEntityImages returns all image URLs for one entity, primary first,
// upgraded to the full-screen rendition. Unknown types, unparseable ids and
// query failures all degrade to an empty list: the client already has the
// thumbnail and an empty result just means nothing more to show.
func (h contentHandler) serveEntityImages(w http.ResponseWriter, r *http.Request, typeParam, idParam string) {
	entityType, ok := matchEntityType(typeParam)
	if !ok {
		h.responder.WriteJSON(w, detailImagesResponse{Images: []string{}})
		return
	}

	entityID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.responder.WriteJSON(w, detailImagesResponse{Images: []string{}})
		return
	}

	assets, err := h.db.MediaRepo().FindByEntity(r.Context(), entityType, entityID)
	if err != nil {
		h.logger.Error().Err(err).
			Str("entityType", string(entityType)).
			Int64("entityID", entityID).
			Msg("media query failed, serving empty image list")
		h.responder.WriteJSON(w, detailImagesResponse{Images: []string{}})
		return
	}

	images := lo.Map(assets, func(asset *models.MediaAsset, _ int) string {
		return optimizeImageURL(asset.ImageURL, fullWidth, fullQuality)
	})

	h.responder.WriteJSON(w, detailImagesResponse{Images: images})
}

// serveAllContent issues the nine content queries concurrently, joins the
// results and assembles the denormalized response. A failed query logs and
// yields an empty section; the page must stay renderable whenever any part
// of the store is reachable.
func (h contentHandler) serveAllContent(w http.ResponseWriter, r *http.Request) {
	var (
		projects     []*models.Project
		events       []*models.Event
		albums       []*models.GalleryAlbum
		team         []*models.TeamMember
		alumni       []*models.Alumnus
		timeline     []*models.TimelineEvent
		achievements []*models.Achievement
		partners     []*models.Partner
		media        []*models.MediaAsset
	)

	g, ctx := errgroup.WithContext(r.Context())

	fetch := func(group string, query func(context.Context) error) {
		g.Go(func() error {
			if err := query(ctx); err != nil {
				h.logger.Error().Err(err).Str("group", group).Msg("content query failed, serving empty group")
			}
			// per-group failures degrade to empty sections, never fail the request
			return nil
		})
	}

	fetch("projects", func(ctx context.Context) (err error) {
		projects, err = h.db.ProjectRepo().FindAll(ctx)
		return err
	})
	fetch("events", func(ctx context.Context) (err error) {
		events, err = h.db.EventRepo().FindAll(ctx)
		return err
	})
	fetch("gallery", func(ctx context.Context) (err error) {
		albums, err = h.db.GalleryAlbumRepo().FindAll(ctx)
		return err
	})
	fetch("team", func(ctx context.Context) (err error) {
		team, err = h.db.TeamMemberRepo().FindAll(ctx)
		return err
	})
	fetch("alumni", func(ctx context.Context) (err error) {
		alumni, err = h.db.AlumnusRepo().FindAll(ctx)
		return err
	})
	fetch("timeline", func(ctx context.Context) (err error) {
		timeline, err = h.db.TimelineEventRepo().FindAll(ctx)
		return err
	})
	fetch("achievements", func(ctx context.Context) (err error) {
		achievements, err = h.db.AchievementRepo().FindAll(ctx)
		return err
	})
	fetch("partners", func(ctx context.Context) (err error) {
		partners, err = h.db.PartnerRepo().FindAll(ctx)
		return err
	})
	fetch("media", func(ctx context.Context) (err error) {
		media, err = h.db.MediaRepo().FindAllOrdered(ctx)
		return err
	})

	// the goroutines never return an error; Wait is the join point
	_ = g.Wait()

	idx := buildMediaIndex(media)
	now := time.Now().UTC().Format(time.RFC3339)

	response := contentResponse{
		ProjectsData:   buildProjects(projects, idx),
		Gallery:        buildGallery(albums, idx),
		Events:         partitionEvents(buildEvents(events, idx), now),
		Team:           buildTeam(team),
		Alumni:         buildAlumni(alumni),
		TimelineEvents: buildTimeline(timeline, idx),
		Achievements:   buildAchievements(achievements),
		PartnersData:   buildPartners(partners),
	}

	h.responder.WriteJSON(w, response)
}
