package models

// Partner represents a sponsor or collaborating organization
type Partner struct {
	ID         int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" db:"name" gorm:"type:text;not null"`
	LogoURL    string `json:"logo_url" db:"logo_url" gorm:"type:text"`
	WebsiteURL string `json:"website_url" db:"website_url" gorm:"type:text"`
	SortOrder  int    `json:"sort_order" db:"sort_order" gorm:"default:0;index"`
}
