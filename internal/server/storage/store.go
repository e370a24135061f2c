// Package storage persists uploaded brochure files under generated unique
// keys. Two backends exist: a local-disk store (default) and an
// S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// BlobStore is the durable file storage used for brochure uploads.
//
// Put writes the full contents of r under key. Delete removes a previously
// stored object; it is the compensating action when the row transaction
// fails after the file was written.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
}

// NewStorageKey returns a unique key for a brochure upload. Keys are
// date-partitioned so the backing store stays browsable, and carry the
// original file extension (including the leading dot, may be empty).
func NewStorageKey(ext string) string {
	d := time.Now()
	return fmt.Sprintf("brochures/%d/%d/%d/%v%s", d.Year(), int(d.Month()), d.Day(), uuid.New(), ext)
}
