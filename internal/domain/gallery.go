package domain

import "time"

// GalleryEntry is the curation annotation for an approved upload: ordering,
// featured flag and an optional caption. At most one entry exists per upload;
// the unique index on upload_id backs the upsert in the gallery repository.
type GalleryEntry struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	UploadID     int64     `gorm:"column:upload_id;not null;uniqueIndex" json:"upload_id"`
	DisplayOrder int       `gorm:"column:display_order;default:0" json:"display_order"`
	IsFeatured   bool      `gorm:"column:is_featured;default:false" json:"is_featured"`
	Caption      *string   `gorm:"column:caption" json:"caption"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (GalleryEntry) TableName() string { return "gallery" }
