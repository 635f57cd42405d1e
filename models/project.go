package models

import "gorm.io/datatypes"

// Project represents a club project shown on the landing page
type Project struct {
	ID           int64                       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string                      `json:"description" db:"description" gorm:"type:text"`
	ProjectYear  int                         `json:"project_year" db:"project_year"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" db:"technologies"`
	Contributors datatypes.JSONSlice[string] `json:"contributors" db:"contributors"`
	GithubURL    string                      `json:"github_url" db:"github_url" gorm:"type:text"`
	SortOrder    int                         `json:"sort_order" db:"sort_order" gorm:"default:0;index"`
}
