package models

// EntityType identifies which content table a media row belongs to
type EntityType string

const (
	EntityTypeProject  EntityType = "PROJECT"
	EntityTypeEvent    EntityType = "EVENT"
	EntityTypeGallery  EntityType = "GALLERY"
	EntityTypeTimeline EntityType = "TIMELINE"
)

// MediaAsset is one image attached to a content entity via
// (entity_type, entity_id). At most one row per entity carries
// is_primary=true; that row is the entity's thumbnail.
type MediaAsset struct {
	ID         int64      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	EntityType EntityType `json:"entity_type" db:"entity_type" gorm:"type:text;not null;index:idx_media_entity"`
	EntityID   int64      `json:"entity_id" db:"entity_id" gorm:"not null;index:idx_media_entity"`
	ImageURL   string     `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	IsPrimary  bool       `json:"is_primary" db:"is_primary" gorm:"default:false"`
}

func (MediaAsset) TableName() string {
	return "media_gallery"
}
