package storage

// Video holds the metadata kept for a video whose comments were collected.
type Video struct {
	// VideoID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	VideoID string
	// PublishedAt is the upload timestamp as returned by the API (RFC3339),
	// empty when the lookup failed or was skipped.
	PublishedAt string
}

// Comment is one top-level YouTube comment as collected from the API.
// Timestamps are kept as the RFC3339 strings the API returns; the pipeline
// never computes with them, only carries them into output files.
type Comment struct {
	// CommentID is the comment thread ID, the primary key for deduplication.
	CommentID string
	// VideoID is the video the comment belongs to.
	VideoID string
	// VideoPublishedAt is the upload timestamp of the parent video.
	VideoPublishedAt string
	// PublishedAt is when the comment was posted.
	PublishedAt string
	// UpdatedAt is when the comment was last edited.
	UpdatedAt string
	// LikeCount is the number of likes at collection time.
	LikeCount int64
	// TotalReplyCount is the number of replies at collection time.
	TotalReplyCount int64
	// Text is the plain-text comment body.
	Text string
}
