package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"weddingshare/internal/database"
	"weddingshare/internal/domain"
	"weddingshare/internal/repository"
	"weddingshare/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB, *storage.Filesystem) {
	t.Helper()
	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	blobs := storage.NewFilesystem(t.TempDir())
	svc := NewService(
		repository.NewUploadRepository(db),
		repository.NewGalleryRepository(db),
		blobs,
	)
	return svc, db, blobs
}

func seedUpload(t *testing.T, db *gorm.DB, stored, fileType string, approved bool) *domain.Upload {
	t.Helper()
	u := &domain.Upload{
		UploaderName:     "Guest",
		OriginalFilename: stored + ".orig",
		StoredFilename:   stored,
		FilePath:         stored,
		FileSize:         10,
		FileType:         fileType,
		MimeType:         fileType + "/any",
		UploadDate:       time.Now(),
		IsApproved:       approved,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func galleryCount(t *testing.T, db *gorm.DB, uploadID int64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&domain.GalleryEntry{}).Where("upload_id = ?", uploadID).Count(&count).Error)
	return count
}

func TestSetApprovalApproveCreatesGalleryEntry(t *testing.T) {
	svc, db, _ := setupService(t)
	ctx := context.Background()

	u := seedUpload(t, db, "a.jpg", domain.FileTypeImage, false)

	updated, err := svc.SetApproval(ctx, u.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsApproved)
	assert.Equal(t, int64(1), galleryCount(t, db, u.ID))
}

func TestSetApprovalTwiceKeepsSingleEntry(t *testing.T) {
	svc, db, _ := setupService(t)
	ctx := context.Background()

	u := seedUpload(t, db, "a.jpg", domain.FileTypeImage, false)

	_, err := svc.SetApproval(ctx, u.ID, true)
	require.NoError(t, err)
	_, err = svc.SetApproval(ctx, u.ID, true)
	require.NoError(t, err)

	assert.Equal(t, int64(1), galleryCount(t, db, u.ID))
}

func TestSetApprovalDisapproveKeepsGalleryEntry(t *testing.T) {
	svc, db, _ := setupService(t)
	ctx := context.Background()

	u := seedUpload(t, db, "a.jpg", domain.FileTypeImage, false)

	_, err := svc.SetApproval(ctx, u.ID, true)
	require.NoError(t, err)

	updated, err := svc.SetApproval(ctx, u.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsApproved)

	// The entry lingers; the public listing filters on is_approved.
	assert.Equal(t, int64(1), galleryCount(t, db, u.ID))
}

func TestSetApprovalUnknownID(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.SetApproval(context.Background(), 404, true)
	require.ErrorIs(t, err, ErrUploadNotFound)
}

func TestListUploadsIncludesPending(t *testing.T) {
	svc, db, _ := setupService(t)

	seedUpload(t, db, "approved.jpg", domain.FileTypeImage, true)
	seedUpload(t, db, "pending.jpg", domain.FileTypeImage, false)

	uploads, err := svc.ListUploads(context.Background())
	require.NoError(t, err)
	assert.Len(t, uploads, 2)
}

func TestStatsConsistency(t *testing.T) {
	svc, db, _ := setupService(t)

	seedUpload(t, db, "1.jpg", domain.FileTypeImage, true)
	seedUpload(t, db, "2.jpg", domain.FileTypeImage, false)
	seedUpload(t, db, "3.mp4", domain.FileTypeVideo, true)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.TotalUploads, stats.ApprovedUploads+stats.PendingUploads)
	assert.LessOrEqual(t, stats.ImageCount+stats.VideoCount, stats.TotalUploads)
}
