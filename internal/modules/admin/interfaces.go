package admin

import (
	"context"

	"weddingshare/internal/domain"
	"weddingshare/internal/repository"
)

// UploadStore is the slice of the metadata store the admin surface needs.
type UploadStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Upload, error)
	ListAll(ctx context.Context) ([]domain.Upload, error)
	UpdateApproval(ctx context.Context, id int64, approved bool) (*domain.Upload, error)
	Stats(ctx context.Context) (*repository.UploadStats, error)
}

// GalleryStore maintains the curation annotation for approved uploads.
type GalleryStore interface {
	Upsert(ctx context.Context, e *domain.GalleryEntry) error
}
