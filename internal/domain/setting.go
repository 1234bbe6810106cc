package domain

import "time"

// Well-known setting keys seeded at startup.
const (
	SettingAutoApprove      = "auto_approve_uploads"
	SettingMaxFileSize      = "max_file_size"
	SettingAllowedFileTypes = "allowed_file_types"
)

// Setting is a key/value configuration row. Seeded once, read-mostly.
type Setting struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Key         string    `gorm:"column:setting_key;not null;uniqueIndex" json:"setting_key"`
	Value       string    `gorm:"column:setting_value" json:"setting_value"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Setting) TableName() string { return "settings" }
