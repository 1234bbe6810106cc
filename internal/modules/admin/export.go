package admin

import (
	"archive/zip"
	"compress/flate"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"weddingshare/internal/domain"
	"weddingshare/internal/storage"

	"gorm.io/gorm"
)

const manifestName = "upload-list.txt"

// OpenDownload resolves an upload id to its blob for a single-file download.
// A row whose blob was deleted out-of-band is reported as missing, not as a
// generic server error.
func (s *Service) OpenDownload(ctx context.Context, id int64) (*domain.Upload, io.ReadCloser, error) {
	u, err := s.uploads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUploadNotFound
		}
		return nil, nil, err
	}

	ok, err := s.blobs.Exists(u.FilePath)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrFileMissing, u.StoredFilename)
	}

	rc, err := s.blobs.Open(u.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return u, rc, nil
}

// ArchiveJob is a prepared bulk export: every upload row plus the subset
// whose blobs actually exist on disk. Existence is resolved up front so the
// caller can fail with not-found before writing any response headers.
type ArchiveJob struct {
	uploads []domain.Upload
	present map[int64]bool
	store   storage.Store
}

// PrepareArchive enumerates all uploads (approval is not a filter — this is
// the full administrative export) and checks which blobs survive on disk.
// Returns ErrNoFiles when there are no rows, or rows but no blobs.
func (s *Service) PrepareArchive(ctx context.Context) (*ArchiveJob, error) {
	uploads, err := s.uploads.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, ErrNoFiles
	}

	present := make(map[int64]bool, len(uploads))
	found := 0
	for _, u := range uploads {
		ok, err := s.blobs.Exists(u.FilePath)
		if err != nil {
			return nil, err
		}
		if ok {
			present[u.ID] = true
			found++
		}
	}
	if found == 0 {
		return nil, ErrNoFiles
	}

	return &ArchiveJob{uploads: uploads, present: present, store: s.blobs}, nil
}

// Write streams the ZIP archive: each existing blob under a Photos/ or
// Videos/ folder as <uploaderName>_<originalFilename>, at maximum
// compression, followed by a manifest listing every row — including rows
// whose blob was missing, so the manifest reveals drift.
func (j *ArchiveJob) Write(w io.Writer) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	added := 0
	for _, u := range j.uploads {
		if !j.present[u.ID] {
			continue
		}
		if err := j.addBlob(zw, u); err != nil {
			return err
		}
		added++
	}

	if err := j.writeManifest(zw); err != nil {
		return err
	}

	log.Printf("admin: archived %d of %d uploads", added, len(j.uploads))
	return zw.Close()
}

func (j *ArchiveJob) addBlob(zw *zip.Writer, u domain.Upload) error {
	folder := "Videos"
	if u.FileType == domain.FileTypeImage {
		folder = "Photos"
	}
	name := fmt.Sprintf("%s/%s_%s", folder, u.UploaderName, u.OriginalFilename)

	entry, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating archive entry %s: %w", name, err)
	}

	rc, err := j.store.Open(u.FilePath)
	if err != nil {
		return err
	}
	defer rc.Close()

	if _, err := io.Copy(entry, rc); err != nil {
		return fmt.Errorf("archiving %s: %w", u.StoredFilename, err)
	}
	return nil
}

func (j *ArchiveJob) writeManifest(zw *zip.Writer) error {
	var b strings.Builder
	for _, u := range j.uploads {
		fmt.Fprintf(&b, "%s - %s - %s\n",
			u.UploaderName,
			u.OriginalFilename,
			u.UploadDate.Format("2006-01-02 15:04:05"),
		)
	}

	entry, err := zw.Create(manifestName)
	if err != nil {
		return fmt.Errorf("creating manifest: %w", err)
	}
	if _, err := io.WriteString(entry, b.String()); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
