package models

// Achievement represents an award or recognition shown on the landing page
type Achievement struct {
	ID          int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	Icon        string `json:"icon" db:"icon" gorm:"type:text"`
	SortOrder   int    `json:"sort_order" db:"sort_order" gorm:"default:0;index"`
}
