package upload

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"weddingshare/internal/domain"
	"weddingshare/internal/storage"

	"github.com/google/uuid"
)

// UploadStore is the slice of the metadata store ingestion needs.
type UploadStore interface {
	Create(ctx context.Context, u *domain.Upload) error
}

// SettingsReader resolves the auto-approve flag at ingestion time.
type SettingsReader interface {
	GetBool(ctx context.Context, key string, fallback bool) bool
}

// Service validates and accepts guest submissions: allow-list checks first,
// then per file a blob write followed by a metadata insert. The blob+row
// pair is best-effort — a row that fails to insert leaves its blob orphaned
// on disk, logged and skipped, and the rest of the batch continues.
type Service struct {
	uploads     UploadStore
	settings    SettingsReader
	blobs       storage.Store
	maxFileSize int64
	allowed     map[string]bool
}

func NewService(uploads UploadStore, settings SettingsReader, blobs storage.Store, maxFileSize int64, allowedTypes []string) *Service {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return &Service{
		uploads:     uploads,
		settings:    settings,
		blobs:       blobs,
		maxFileSize: maxFileSize,
		allowed:     allowed,
	}
}

// Ingest processes one submission batch. Validation covers the whole batch
// before any storage write: a single disallowed or oversize file rejects the
// entire request.
func (s *Service) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	uploaderName := strings.TrimSpace(req.UploaderName)
	if uploaderName == "" {
		return nil, ErrMissingName
	}
	if len(req.Files) == 0 {
		return nil, ErrNoFiles
	}

	for _, fh := range req.Files {
		if err := s.validate(fh); err != nil {
			return nil, err
		}
	}

	autoApprove := s.settings.GetBool(ctx, domain.SettingAutoApprove, true)

	var message *string
	if m := strings.TrimSpace(req.Message); m != "" {
		message = &m
	}

	result := &IngestResult{}
	for _, fh := range req.Files {
		stored := storedFilename(fh.Filename)

		size, err := s.saveBlob(fh, stored)
		if err != nil {
			log.Printf("upload: storing %q failed: %v", fh.Filename, err)
			continue
		}

		mimeType := declaredMime(fh)
		u := &domain.Upload{
			UploaderName:     uploaderName,
			OriginalFilename: fh.Filename,
			StoredFilename:   stored,
			FilePath:         stored,
			FileSize:         size,
			FileType:         fileTypeOf(mimeType),
			MimeType:         mimeType,
			Message:          message,
			UploadDate:       time.Now(),
			IPAddress:        req.IPAddress,
			UserAgent:        req.UserAgent,
			IsApproved:       autoApprove,
		}

		if err := s.uploads.Create(ctx, u); err != nil {
			// The blob stays on disk with no row. The admin export manifest
			// is the channel that surfaces such drift.
			log.Printf("upload: recording %q failed, blob %q orphaned: %v", fh.Filename, stored, err)
			continue
		}

		result.Accepted = append(result.Accepted, AcceptedFile{
			ID:           u.ID,
			OriginalName: u.OriginalFilename,
			Filename:     u.StoredFilename,
			Size:         u.FileSize,
			Path:         u.FilePath,
			UploadDate:   u.UploadDate,
		})
		log.Printf("upload: %s uploaded %q (%.2f MB)", uploaderName, fh.Filename, float64(size)/1024/1024)
	}

	if len(result.Accepted) == 0 {
		return nil, ErrNothingPersisted
	}
	return result, nil
}

func (s *Service) validate(fh *multipart.FileHeader) error {
	if fh.Size > s.maxFileSize {
		return fmt.Errorf("%w: %s", ErrFileTooLarge, fh.Filename)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	if !s.allowed[ext] {
		return fmt.Errorf("%w: %s", ErrDisallowedType, fh.Filename)
	}
	if !s.mimeAllowed(declaredMime(fh)) {
		return fmt.Errorf("%w: %s", ErrDisallowedType, fh.Filename)
	}
	return nil
}

// mimeAllowed accepts a declared media type when it mentions one of the
// allow-listed formats, e.g. "video/3gpp" matches "3gp" and "image/jpeg"
// matches "jpeg".
func (s *Service) mimeAllowed(mimeType string) bool {
	mimeType = strings.ToLower(mimeType)
	for t := range s.allowed {
		if strings.Contains(mimeType, t) {
			return true
		}
	}
	return false
}

func (s *Service) saveBlob(fh *multipart.FileHeader, stored string) (int64, error) {
	f, err := fh.Open()
	if err != nil {
		return 0, fmt.Errorf("opening part: %w", err)
	}
	defer f.Close()

	return s.blobs.Save(stored, f)
}

func declaredMime(fh *multipart.FileHeader) string {
	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		return "application/octet-stream"
	}
	return strings.TrimSpace(strings.Split(mimeType, ";")[0])
}

func fileTypeOf(mimeType string) string {
	switch strings.Split(mimeType, "/")[0] {
	case "image":
		return domain.FileTypeImage
	case "video":
		return domain.FileTypeVideo
	default:
		return domain.FileTypeOther
	}
}

// storedFilename derives a collision-resistant disk name from the original:
// sanitized base, millisecond timestamp and a random fragment, keeping the
// original extension. Repeated originals in the same millisecond still get
// distinct names.
func storedFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := sanitizeName(original)
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
