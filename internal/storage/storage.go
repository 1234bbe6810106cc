package storage

import "io"

// Store is the blob store: raw file bytes addressed by their generated
// stored filename. Blobs are written once by ingestion and never mutated.
type Store interface {
	// Save writes the blob under name and returns the number of bytes written.
	Save(name string, data io.Reader) (int64, error)

	// Open returns a reader over the stored blob.
	Open(name string) (io.ReadCloser, error)

	// Exists reports whether a blob is present under name.
	Exists(name string) (bool, error)
}
