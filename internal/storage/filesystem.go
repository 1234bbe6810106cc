package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var _ Store = (*Filesystem)(nil)

// Filesystem stores blobs as flat files under a single base directory.
// Stored names are uniquified at generation time, so concurrent saves never
// contend on the same path.
type Filesystem struct {
	baseDir string
}

func NewFilesystem(baseDir string) *Filesystem {
	return &Filesystem{baseDir: baseDir}
}

func (fs *Filesystem) path(name string) string {
	return filepath.Join(fs.baseDir, filepath.Base(name))
}

// Save writes data to a temp file in the base directory and renames it into
// place, creating the directory on first use.
func (fs *Filesystem) Save(name string, data io.Reader) (int64, error) {
	if err := os.MkdirAll(fs.baseDir, 0755); err != nil {
		return 0, fmt.Errorf("creating upload directory %s: %w", fs.baseDir, err)
	}

	tmp, err := os.CreateTemp(fs.baseDir, "upload-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	n, err := io.Copy(tmp, data)
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("writing blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing temp file: %w", err)
	}

	dst := fs.path(name)
	if err := os.Rename(tmpPath, dst); err != nil {
		return 0, fmt.Errorf("renaming temp file to %s: %w", dst, err)
	}
	tmpPath = ""

	return n, nil
}

func (fs *Filesystem) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(fs.path(name))
	if err != nil {
		return nil, fmt.Errorf("opening blob %s: %w", name, err)
	}
	return f, nil
}

func (fs *Filesystem) Exists(name string) (bool, error) {
	_, err := os.Stat(fs.path(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking blob %s: %w", name, err)
}
