package gallery

import (
	"context"

	"weddingshare/internal/repository"
)

// URLBase is the static mount under which stored blobs are served.
const URLBase = "/uploads"

// GalleryReader is the listing slice of the metadata store.
type GalleryReader interface {
	ListApproved(ctx context.Context) ([]repository.GalleryRow, error)
}

// Service projects approved uploads into the public gallery view. The
// listing filters strictly on current approval, so an upload whose gallery
// entry survived disapproval stays invisible.
type Service struct {
	uploads GalleryReader
}

func NewService(uploads GalleryReader) *Service {
	return &Service{uploads: uploads}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	rows, err := s.uploads.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		item := Item{
			ID:           r.ID,
			Filename:     r.StoredFilename,
			OriginalName: r.OriginalFilename,
			Size:         r.FileSize,
			UploadDate:   r.UploadDate,
			UploaderName: r.UploaderName,
			Message:      r.Message,
			FileType:     r.FileType,
			URL:          URLBase + "/" + r.StoredFilename,
			Caption:      r.Caption,
		}
		if r.IsFeatured != nil {
			item.IsFeatured = *r.IsFeatured
		}
		items = append(items, item)
	}
	return items, nil
}
