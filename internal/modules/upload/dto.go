package upload

import (
	"mime/multipart"
	"time"
)

// IngestRequest is one guest submission: a batch of files plus attribution.
type IngestRequest struct {
	UploaderName string
	Message      string
	Files        []*multipart.FileHeader
	IPAddress    string
	UserAgent    string
}

// AcceptedFile describes one fully persisted file in the success response.
type AcceptedFile struct {
	ID           int64     `json:"id"`
	OriginalName string    `json:"originalName"`
	Filename     string    `json:"filename"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	UploadDate   time.Time `json:"uploadDate"`
}

// IngestResult lists the files that made it through both the blob write and
// the metadata insert.
type IngestResult struct {
	Accepted []AcceptedFile
}
