package models

// TimelineEvent represents one milestone on the club history timeline
type TimelineEvent struct {
	ID          int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	Year        int    `json:"year" db:"year"`
	SortOrder   int    `json:"sort_order" db:"sort_order" gorm:"default:0;index"`
}
