package youtube

import (
	"errors"
	"fmt"
)

// Sentinel errors for common API conditions.
var (
	// ErrAPIKeyRequired indicates no API key was provided.
	ErrAPIKeyRequired = errors.New("youtube: api key required")
	// ErrVideoNotFound indicates the video does not exist or is private.
	ErrVideoNotFound = errors.New("youtube: video not found")
	// ErrCommentsDisabled indicates comments are turned off for the video.
	ErrCommentsDisabled = errors.New("youtube: comments disabled")
	// ErrQuotaExceeded indicates the daily API quota is exhausted.
	ErrQuotaExceeded = errors.New("youtube: quota exceeded")
	// ErrInvalidOrder indicates an unsupported comment ordering was requested.
	ErrInvalidOrder = errors.New("youtube: invalid comment order")
)

// FetchError wraps errors from the Data API with the video and operation
// that failed.
type FetchError struct {
	// VideoID is the video the operation concerned.
	VideoID string
	// Op is the failing operation ("comments", "video_info").
	Op string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the fetch error.
func (e *FetchError) Error() string {
	return fmt.Sprintf("youtube: %s %s: %v", e.Op, e.VideoID, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *FetchError) Unwrap() error { return e.Err }
