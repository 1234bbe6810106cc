package upload

import "errors"

var (
	ErrNoFiles          = errors.New("no files were uploaded")
	ErrMissingName      = errors.New("uploader name is required")
	ErrDisallowedType   = errors.New("only image and video files are allowed")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrNothingPersisted = errors.New("files were stored but none could be recorded")
)
