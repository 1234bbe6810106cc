package admin

import (
	"context"
	"errors"

	"weddingshare/internal/domain"
	"weddingshare/internal/repository"
	"weddingshare/internal/storage"

	"gorm.io/gorm"
)

// Service covers the administrative surface: curation, the full listing,
// statistics and export.
type Service struct {
	uploads UploadStore
	gallery GalleryStore
	blobs   storage.Store
}

func NewService(uploads UploadStore, gallery GalleryStore, blobs storage.Store) *Service {
	return &Service{
		uploads: uploads,
		gallery: gallery,
		blobs:   blobs,
	}
}

// SetApproval flips an upload's approval state. Approving also creates or
// refreshes the gallery entry; disapproving leaves the entry in place so
// curation metadata survives re-approval. The public listing filters on
// is_approved, so a lingering entry is never visible.
func (s *Service) SetApproval(ctx context.Context, id int64, approved bool) (*domain.Upload, error) {
	u, err := s.uploads.UpdateApproval(ctx, id, approved)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}

	if approved {
		if err := s.gallery.Upsert(ctx, &domain.GalleryEntry{UploadID: u.ID}); err != nil {
			return nil, err
		}
	}

	return u, nil
}

// ListUploads returns every upload regardless of approval, newest first.
func (s *Service) ListUploads(ctx context.Context) ([]domain.Upload, error) {
	return s.uploads.ListAll(ctx)
}

// Stats computes the aggregate over the uploads table at query time.
func (s *Service) Stats(ctx context.Context) (*repository.UploadStats, error) {
	return s.uploads.Stats(ctx)
}
