package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"weddingshare/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateStoredName is returned when an insert collides on the
// stored_filename unique index. Stored names carry a uniqueness token, so
// this only happens if name generation is broken.
var ErrDuplicateStoredName = errors.New("stored filename already exists")

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

func (r *UploadRepository) DB() *gorm.DB { return r.db }

func (r *UploadRepository) Create(ctx context.Context, u *domain.Upload) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateStoredName
		}
		return err
	}
	return nil
}

func (r *UploadRepository) GetByID(ctx context.Context, id int64) (*domain.Upload, error) {
	var u domain.Upload
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAll returns every upload regardless of approval, newest first.
func (r *UploadRepository) ListAll(ctx context.Context) ([]domain.Upload, error) {
	var uploads []domain.Upload
	err := r.db.WithContext(ctx).
		Order("upload_date DESC").
		Find(&uploads).Error
	return uploads, err
}

// GalleryRow is an approved upload joined with its optional curation
// metadata. The gallery columns are nullable because the join is LEFT:
// an approved upload without a gallery entry still appears.
type GalleryRow struct {
	ID               int64     `gorm:"column:id"`
	UploaderName     string    `gorm:"column:uploader_name"`
	OriginalFilename string    `gorm:"column:original_filename"`
	StoredFilename   string    `gorm:"column:stored_filename"`
	FileSize         int64     `gorm:"column:file_size"`
	FileType         string    `gorm:"column:file_type"`
	Message          *string   `gorm:"column:message"`
	UploadDate       time.Time `gorm:"column:upload_date"`
	DisplayOrder     *int      `gorm:"column:display_order"`
	IsFeatured       *bool     `gorm:"column:is_featured"`
	Caption          *string   `gorm:"column:caption"`
}

// ListApproved returns the public gallery projection: approved uploads with
// their curation metadata, most prominent first, then most recent.
func (r *UploadRepository) ListApproved(ctx context.Context) ([]GalleryRow, error) {
	var rows []GalleryRow
	err := r.db.WithContext(ctx).
		Table("uploads").
		Select("uploads.id, uploads.uploader_name, uploads.original_filename, uploads.stored_filename, " +
			"uploads.file_size, uploads.file_type, uploads.message, uploads.upload_date, " +
			"gallery.display_order, gallery.is_featured, gallery.caption").
		Joins("LEFT JOIN gallery ON gallery.upload_id = uploads.id").
		Where("uploads.is_approved = ?", true).
		Order("gallery.display_order DESC, uploads.upload_date DESC").
		Scan(&rows).Error
	return rows, err
}

// UpdateApproval flips is_approved for one upload and returns the updated
// row. Returns gorm.ErrRecordNotFound for an unknown id.
func (r *UploadRepository) UpdateApproval(ctx context.Context, id int64, approved bool) (*domain.Upload, error) {
	var u domain.Upload
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}

	u.IsApproved = approved
	u.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Model(&u).Updates(map[string]interface{}{
		"is_approved": u.IsApproved,
		"updated_at":  u.UpdatedAt,
	}).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UploadStats is the aggregate computed over the uploads table per request.
type UploadStats struct {
	TotalUploads    int64 `gorm:"column:total_uploads" json:"total_uploads"`
	ApprovedUploads int64 `gorm:"column:approved_uploads" json:"approved_uploads"`
	PendingUploads  int64 `gorm:"column:pending_uploads" json:"pending_uploads"`
	TotalSize       int64 `gorm:"column:total_size" json:"total_size"`
	ImageCount      int64 `gorm:"column:image_count" json:"image_count"`
	VideoCount      int64 `gorm:"column:video_count" json:"video_count"`
}

func (r *UploadRepository) Stats(ctx context.Context) (*UploadStats, error) {
	var stats UploadStats
	err := r.db.WithContext(ctx).
		Table("uploads").
		Select("COUNT(*) AS total_uploads, " +
			"COALESCE(SUM(CASE WHEN is_approved THEN 1 ELSE 0 END), 0) AS approved_uploads, " +
			"COALESCE(SUM(CASE WHEN is_approved THEN 0 ELSE 1 END), 0) AS pending_uploads, " +
			"COALESCE(SUM(file_size), 0) AS total_size, " +
			"COALESCE(SUM(CASE WHEN file_type = 'image' THEN 1 ELSE 0 END), 0) AS image_count, " +
			"COALESCE(SUM(CASE WHEN file_type = 'video' THEN 1 ELSE 0 END), 0) AS video_count").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
