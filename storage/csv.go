package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// CommentFields is the CSV header for collected comments, in the order the
// collection pipeline has always emitted them.
var CommentFields = []string{
	"videoId", "videoPublishedAt", "commentId",
	"publishedAt", "updatedAt", "likeCount",
	"totalReplyCount", "text",
}

// WriteCommentsCSV writes all comments to a UTF-8 CSV file at path,
// overwriting any existing file. Parent directories are created as needed.
func WriteCommentsCSV(path string, comments []Comment) error {
	if path == "" {
		return fmt.Errorf("%w: empty csv path", ErrInvalidInput)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &StorageError{Op: "write", Entity: "csv", ID: path, Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &StorageError{Op: "write", Entity: "csv", ID: path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CommentFields); err != nil {
		return &StorageError{Op: "write", Entity: "csv", ID: path, Err: err}
	}

	for _, c := range comments {
		record := []string{
			c.VideoID, c.VideoPublishedAt, c.CommentID,
			c.PublishedAt, c.UpdatedAt, strconv.FormatInt(c.LikeCount, 10),
			strconv.FormatInt(c.TotalReplyCount, 10), c.Text,
		}
		if err := w.Write(record); err != nil {
			return &StorageError{Op: "write", Entity: "csv", ID: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &StorageError{Op: "write", Entity: "csv", ID: path, Err: err}
	}
	return f.Close()
}
