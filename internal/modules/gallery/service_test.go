package gallery

import (
	"context"
	"fmt"
	"testing"
	"time"

	"weddingshare/internal/database"
	"weddingshare/internal/domain"
	"weddingshare/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (*repository.UploadRepository, *repository.GalleryRepository) {
	t.Helper()
	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return repository.NewUploadRepository(db), repository.NewGalleryRepository(db)
}

func seedUpload(t *testing.T, repo *repository.UploadRepository, stored string, approved bool, age time.Duration) *domain.Upload {
	t.Helper()
	u := &domain.Upload{
		UploaderName:     "Guest",
		OriginalFilename: stored + ".orig",
		StoredFilename:   stored,
		FilePath:         stored,
		FileSize:         10,
		FileType:         domain.FileTypeImage,
		MimeType:         "image/jpeg",
		UploadDate:       time.Now().Add(-age),
		IsApproved:       approved,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestListNeverIncludesUnapproved(t *testing.T) {
	uploads, galleryRepo := setupRepos(t)
	ctx := context.Background()

	seedUpload(t, uploads, "approved.jpg", true, 0)
	hidden := seedUpload(t, uploads, "hidden.jpg", false, 0)

	// Even with curation metadata, an unapproved upload stays out.
	require.NoError(t, galleryRepo.Upsert(ctx, &domain.GalleryEntry{UploadID: hidden.ID, IsFeatured: true}))

	svc := NewService(uploads)
	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "approved.jpg", items[0].Filename)
}

func TestListProjection(t *testing.T) {
	uploads, galleryRepo := setupRepos(t)
	ctx := context.Background()

	u := seedUpload(t, uploads, "dance.jpg", true, 0)
	caption := "the first dance"
	require.NoError(t, galleryRepo.Upsert(ctx, &domain.GalleryEntry{
		UploadID:   u.ID,
		IsFeatured: true,
		Caption:    &caption,
	}))

	svc := NewService(uploads)
	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, u.ID, item.ID)
	assert.Equal(t, "dance.jpg", item.Filename)
	assert.Equal(t, "dance.jpg.orig", item.OriginalName)
	assert.Equal(t, "/uploads/dance.jpg", item.URL)
	assert.True(t, item.IsFeatured)
	require.NotNil(t, item.Caption)
	assert.Equal(t, "the first dance", *item.Caption)
}

func TestListUploadWithoutEntryStillAppears(t *testing.T) {
	uploads, _ := setupRepos(t)

	seedUpload(t, uploads, "plain.jpg", true, 0)

	svc := NewService(uploads)
	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].IsFeatured)
	assert.Nil(t, items[0].Caption)
}
