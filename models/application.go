package models

import (
	"time"

	"github.com/google/uuid"
)

// Application represents one membership application submitted through the
// site form. Rows are inserted once and never updated or deleted here.
type Application struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email      string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone      string    `json:"phone" db:"phone" gorm:"type:text"`
	PRN        string    `json:"prn" db:"prn" gorm:"type:text;not null"`
	Branch     string    `json:"branch" db:"branch" gorm:"type:text;not null"`
	Year       string    `json:"year" db:"year" gorm:"type:text"`
	Motivation string    `json:"motivation" db:"motivation" gorm:"type:text"`
	Experience string    `json:"experience" db:"experience" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}
