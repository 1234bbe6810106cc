package admin

import "errors"

var (
	ErrUploadNotFound = errors.New("upload not found")
	ErrFileMissing    = errors.New("file is missing from storage")
	ErrNoFiles        = errors.New("no files to download")
)
