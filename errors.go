package ytpilot

import (
	"ytpilot/internal/retry"
	"ytpilot/labeler"
	"ytpilot/storage"
	"ytpilot/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytpilot.ErrCommentsDisabled) {
//		fmt.Println("Comments are turned off for this video")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var fetchErr *ytpilot.FetchError
//	if errors.As(err, &fetchErr) {
//		fmt.Printf("Fetch failed for %s: %v\n", fetchErr.VideoID, fetchErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// FetchError wraps errors from the Data API with video context.
	FetchError = youtube.FetchError
	// StorageError wraps errors during storage operations.
	StorageError = storage.StorageError
	// RetryableError wraps errors that persisted after retries were exhausted.
	RetryableError = retry.RetryableError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrAPIKeyRequired indicates no Data API key was provided.
	ErrAPIKeyRequired = youtube.ErrAPIKeyRequired
	// ErrVideoNotFound indicates the video does not exist or is private.
	ErrVideoNotFound = youtube.ErrVideoNotFound
	// ErrCommentsDisabled indicates comments are turned off for the video.
	ErrCommentsDisabled = youtube.ErrCommentsDisabled
	// ErrQuotaExceeded indicates the daily API quota is exhausted.
	ErrQuotaExceeded = youtube.ErrQuotaExceeded

	// ErrInvalidText indicates the labeler rejected malformed input text.
	ErrInvalidText = labeler.ErrInvalidText

	// ErrNotFound indicates an entity was not found in storage.
	ErrNotFound = storage.ErrNotFound
	// ErrInvalidInput indicates invalid input was provided to storage.
	ErrInvalidInput = storage.ErrInvalidInput
)
