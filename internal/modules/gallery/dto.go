package gallery

import "time"

// Item is the public-safe projection of an approved upload.
type Item struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	UploadDate   time.Time `json:"uploadDate"`
	UploaderName string    `json:"uploaderName"`
	Message      *string   `json:"message"`
	FileType     string    `json:"fileType"`
	URL          string    `json:"url"`
	IsFeatured   bool      `json:"isFeatured"`
	Caption      *string   `json:"caption"`
}
