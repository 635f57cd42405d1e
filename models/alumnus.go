package models

// Alumnus represents a graduated member shown in the alumni section
type Alumnus struct {
	ID             int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name           string `json:"name" db:"name" gorm:"type:text;not null"`
	JobTitle       string `json:"job_title" db:"job_title" gorm:"type:text"`
	GraduationYear int    `json:"graduation_year" db:"graduation_year"`
	ImageURL       string `json:"image_url" db:"image_url" gorm:"type:text"`
	LinkedinURL    string `json:"linkedin_url" db:"linkedin_url" gorm:"type:text"`
	SortOrder      int    `json:"sort_order" db:"sort_order" gorm:"default:0;index"`
}

func (Alumnus) TableName() string {
	return "alumni"
}
