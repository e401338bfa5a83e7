// Package storage persists collected comments to SQLite and CSV.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for common storage conditions.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("storage: not found")
	// ErrInvalidInput indicates invalid or malformed input was provided.
	ErrInvalidInput = errors.New("storage: invalid input")
	// ErrClosed indicates the store has already been closed.
	ErrClosed = errors.New("storage: store closed")
)

// StorageError wraps storage errors with operation and entity context.
// Use errors.As() to extract it:
//
//	var storErr *storage.StorageError
//	if errors.As(err, &storErr) {
//		fmt.Printf("Failed to %s %s %s: %v\n", storErr.Op, storErr.Entity, storErr.ID, storErr.Err)
//	}
type StorageError struct {
	// Op is the operation that failed ("save", "list", "count", "migrate").
	Op string
	// Entity is the entity type ("comment", "video").
	Entity string
	// ID is the entity ID if applicable.
	ID string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the storage error.
func (e *StorageError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("storage: %s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Entity, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *StorageError) Unwrap() error { return e.Err }

// ListOptions controls comment listing for coding-sheet generation.
type ListOptions struct {
	// Limit caps the number of comments returned (0 = all).
	Limit int
	// Seed, when non-nil, selects a deterministic pseudo-random ordering so
	// repeated sampling runs with the same seed produce the same sheet.
	Seed *int64
	// VideoID restricts the listing to one video when non-empty.
	VideoID string
}

// Store is the persistence interface for collected comments.
// Implementations must be safe for concurrent use.
type Store interface {
	// SaveVideos inserts video records, ignoring already-known IDs.
	SaveVideos(ctx context.Context, videos []Video) error
	// SaveComments inserts comments, deduplicating on the comment ID primary
	// key. It returns the number of newly inserted rows; the difference from
	// len(comments) is the duplicate count.
	SaveComments(ctx context.Context, comments []Comment) (int, error)
	// CountComments returns the number of stored comments for a video, or
	// the total when videoID is empty.
	CountComments(ctx context.Context, videoID string) (int, error)
	// ListComments retrieves stored comments according to opts.
	ListComments(ctx context.Context, opts ListOptions) ([]Comment, error)

	// Close releases any resources held by the store.
	Close() error
}
