package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo       *ProjectRepo
	eventRepo         *EventRepo
	galleryAlbumRepo  *GalleryAlbumRepo
	teamMemberRepo    *TeamMemberRepo
	alumnusRepo       *AlumnusRepo
	timelineEventRepo *TimelineEventRepo
	achievementRepo   *AchievementRepo
	partnerRepo       *PartnerRepo
	mediaRepo         *MediaRepo
	applicationRepo   *ApplicationRepo
	siteConfigRepo    *SiteConfigRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:       NewProjectRepo(db),
		eventRepo:         NewEventRepo(db),
		galleryAlbumRepo:  NewGalleryAlbumRepo(db),
		teamMemberRepo:    NewTeamMemberRepo(db),
		alumnusRepo:       NewAlumnusRepo(db),
		timelineEventRepo: NewTimelineEventRepo(db),
		achievementRepo:   NewAchievementRepo(db),
		partnerRepo:       NewPartnerRepo(db),
		mediaRepo:         NewMediaRepo(db),
		applicationRepo:   NewApplicationRepo(db),
		siteConfigRepo:    NewSiteConfigRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) GalleryAlbumRepo() *GalleryAlbumRepo {
	return d.galleryAlbumRepo
}

func (d Database) TeamMemberRepo() *TeamMemberRepo {
	return d.teamMemberRepo
}

func (d Database) AlumnusRepo() *AlumnusRepo {
	return d.alumnusRepo
}

func (d Database) TimelineEventRepo() *TimelineEventRepo {
	return d.timelineEventRepo
}

func (d Database) AchievementRepo() *AchievementRepo {
	return d.achievementRepo
}

func (d Database) PartnerRepo() *PartnerRepo {
	return d.partnerRepo
}

func (d Database) MediaRepo() *MediaRepo {
	return d.mediaRepo
}

func (d Database) ApplicationRepo() *ApplicationRepo {
	return d.applicationRepo
}

func (d Database) SiteConfigRepo() *SiteConfigRepo {
	return d.siteConfigRepo
}
