package models

// GalleryAlbum represents one album in the photo gallery section
type GalleryAlbum struct {
	ID          int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	EventDate   string `json:"event_date" db:"event_date" gorm:"type:text;index"`
}
