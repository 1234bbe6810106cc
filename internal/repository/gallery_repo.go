package repository

import (
	"context"

	"weddingshare/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) DB() *gorm.DB { return r.db }

// Upsert creates the gallery entry for an upload or refreshes its
// order/featured/caption fields if one already exists. Backed by the unique
// index on upload_id.
func (r *GalleryRepository) Upsert(ctx context.Context, e *domain.GalleryEntry) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "upload_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_order", "is_featured", "caption"}),
	}).Create(e).Error
	if err != nil && isUniqueViolation(err) {
		// Conflict resolution raced with a concurrent upsert; refresh in place.
		return r.db.WithContext(ctx).
			Model(&domain.GalleryEntry{}).
			Where("upload_id = ?", e.UploadID).
			Updates(map[string]interface{}{
				"display_order": e.DisplayOrder,
				"is_featured":   e.IsFeatured,
				"caption":       e.Caption,
			}).Error
	}
	return err
}

// GetByUploadID returns the entry for one upload, if any.
func (r *GalleryRepository) GetByUploadID(ctx context.Context, uploadID int64) (*domain.GalleryEntry, error) {
	var e domain.GalleryEntry
	if err := r.db.WithContext(ctx).Where("upload_id = ?", uploadID).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
