// Package formstate persists staged registration snapshots in the client's
// local SQLite database, keyed by a fixed storage key.
package formstate

import "context"

type Repository interface {
	// Load returns the snapshot stored under key, or common.ErrorNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save upserts the snapshot stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the snapshot stored under key. Missing keys are fine.
	Delete(ctx context.Context, key string) error
}
