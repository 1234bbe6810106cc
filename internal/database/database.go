package database

import (
	"fmt"
	"log"
	"strings"

	"weddingshare/internal/config"
	"weddingshare/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	// Registers the cgo-free "sqlite" driver used for local development.
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the uploads, gallery and settings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Upload{},
		&domain.GalleryEntry{},
		&domain.Setting{},
	)
}

// SeedSettings inserts the default admin settings if they are not present.
// Existing rows are never overwritten, so operator edits survive restarts.
func SeedSettings(db *gorm.DB, cfg *config.Config) error {
	defaults := []domain.Setting{
		{
			Key:         domain.SettingAutoApprove,
			Value:       "true",
			Description: "Automatically approve new uploads",
		},
		{
			Key:         domain.SettingMaxFileSize,
			Value:       fmt.Sprintf("%d", cfg.MaxFileSize),
			Description: "Maximum file size in bytes",
		},
		{
			Key:         domain.SettingAllowedFileTypes,
			Value:       strings.Join(cfg.AllowedFileTypes, ","),
			Description: "Allowed file extensions",
		},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoNothing: true,
	}).Create(&defaults).Error
}
