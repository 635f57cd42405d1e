package models

// TeamMember represents a current member shown in the team section
type TeamMember struct {
	ID         int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" db:"name" gorm:"type:text;not null"`
	TeamRole   string `json:"team_role" db:"team_role" gorm:"type:text"`
	Department string `json:"department" db:"department" gorm:"type:text"`
	ImageURL   string `json:"image_url" db:"image_url" gorm:"type:text"`
	SortOrder  int    `json:"sort_order" db:"sort_order" gorm:"default:0;index"`
}
