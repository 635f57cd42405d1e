package models

// SiteConfig is a key/value row for runtime site toggles, e.g. the
// enrollment_open flag behind the application form.
type SiteConfig struct {
	KeyName      string `json:"key_name" db:"key_name" gorm:"type:text;primaryKey"`
	ValueBoolean bool   `json:"value_boolean" db:"value_boolean" gorm:"default:false"`
}

func (SiteConfig) TableName() string {
	return "site_config"
}
