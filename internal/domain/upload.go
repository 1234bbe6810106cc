package domain

import "time"

// FileType is the coarse media category derived from the MIME major type.
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
	FileTypeOther = "other"
)

// Upload is one accepted guest submission: a physical file on disk plus
// attribution metadata and its moderation state.
type Upload struct {
	ID               int64     `gorm:"column:id;primaryKey" json:"id"`
	UploaderName     string    `gorm:"column:uploader_name;not null" json:"uploader_name"`
	OriginalFilename string    `gorm:"column:original_filename;not null" json:"original_filename"`
	StoredFilename   string    `gorm:"column:stored_filename;not null;uniqueIndex" json:"stored_filename"`
	FilePath         string    `gorm:"column:file_path;not null" json:"file_path"` // relative to the upload dir
	FileSize         int64     `gorm:"column:file_size;not null" json:"file_size"`
	FileType         string    `gorm:"column:file_type;not null" json:"file_type"`
	MimeType         string    `gorm:"column:mime_type;not null" json:"mime_type"`
	Message          *string   `gorm:"column:message" json:"message"`
	UploadDate       time.Time `gorm:"column:upload_date" json:"upload_date"`
	IPAddress        string    `gorm:"column:ip_address" json:"ip_address"`
	UserAgent        string    `gorm:"column:user_agent" json:"user_agent"`
	IsApproved       bool      `gorm:"column:is_approved;default:true" json:"is_approved"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Upload) TableName() string { return "uploads" }
