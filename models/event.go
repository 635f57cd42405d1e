package models

// Event represents a club event. EventDate is stored as a timezone-qualified
// ISO-8601 string so that the upcoming/past split can compare it
// lexicographically against the current instant.
type Event struct {
	ID          int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	EventDate   string `json:"event_date" db:"event_date" gorm:"type:text;index"`
	SortOrder   int    `json:"sort_order" db:"sort_order" gorm:"default:0;index"`
}
