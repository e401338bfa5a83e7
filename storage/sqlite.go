package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// SQLiteStore persists videos and comments in a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	log *logrus.Entry
}

// NewSQLite opens (creating if necessary) a SQLite database at dbPath and
// runs the schema migration. Parent directories are created as needed.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: empty database path", ErrInvalidInput)
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &StorageError{Op: "open", Entity: "database", ID: dbPath, Err: err}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &StorageError{Op: "open", Entity: "database", ID: dbPath, Err: err}
	}

	s := &SQLiteStore{
		db:  db,
		log: logrus.WithField("component", "storage"),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, &StorageError{Op: "migrate", Entity: "database", ID: dbPath, Err: err}
	}

	s.log.WithField("path", dbPath).Debug("database initialized")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS videos (
		video_id TEXT PRIMARY KEY,
		published_at TEXT
	);

	CREATE TABLE IF NOT EXISTS comments (
		comment_id TEXT PRIMARY KEY,
		video_id TEXT,
		video_published_at TEXT,
		published_at TEXT,
		updated_at TEXT,
		like_count INTEGER,
		total_reply_count INTEGER,
		text TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_comments_video ON comments(video_id);
	CREATE INDEX IF NOT EXISTS idx_comments_published ON comments(published_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveVideos inserts video records, ignoring IDs already present.
func (s *SQLiteStore) SaveVideos(ctx context.Context, videos []Video) error {
	if len(videos) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "save", Entity: "video", Err: err}
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO videos (video_id, published_at) VALUES (?, ?)`)
	if err != nil {
		return &StorageError{Op: "save", Entity: "video", Err: err}
	}
	defer stmt.Close()

	for _, v := range videos {
		if v.VideoID == "" {
			return &StorageError{Op: "save", Entity: "video", Err: ErrInvalidInput}
		}
		if _, err := stmt.ExecContext(ctx, v.VideoID, v.PublishedAt); err != nil {
			return &StorageError{Op: "save", Entity: "video", ID: v.VideoID, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "save", Entity: "video", Err: err}
	}
	return nil
}

// SaveComments inserts comments in one transaction, deduplicating on the
// comment ID primary key. Returns the number of newly inserted rows.
func (s *SQLiteStore) SaveComments(ctx context.Context, comments []Comment) (int, error) {
	if len(comments) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &StorageError{Op: "save", Entity: "comment", Err: err}
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO comments (
			comment_id, video_id, video_published_at,
			published_at, updated_at, like_count,
			total_reply_count, text
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, &StorageError{Op: "save", Entity: "comment", Err: err}
	}
	defer stmt.Close()

	inserted := 0
	for _, c := range comments {
		if c.CommentID == "" {
			return inserted, &StorageError{Op: "save", Entity: "comment", Err: ErrInvalidInput}
		}
		res, err := stmt.ExecContext(ctx,
			c.CommentID, c.VideoID, c.VideoPublishedAt,
			c.PublishedAt, c.UpdatedAt, c.LikeCount,
			c.TotalReplyCount, c.Text,
		)
		if err != nil {
			return inserted, &StorageError{Op: "save", Entity: "comment", ID: c.CommentID, Err: err}
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &StorageError{Op: "save", Entity: "comment", Err: err}
	}

	s.log.WithFields(logrus.Fields{
		"fetched": len(comments),
		"new":     inserted,
		"skipped": len(comments) - inserted,
	}).Debug("comments saved")
	return inserted, nil
}

// CountComments returns the number of stored comments for a video, or the
// total count when videoID is empty.
func (s *SQLiteStore) CountComments(ctx context.Context, videoID string) (int, error) {
	var (
		count int
		err   error
	)
	if videoID == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE video_id = ?`, videoID).Scan(&count)
	}
	if err != nil {
		return 0, &StorageError{Op: "count", Entity: "comment", ID: videoID, Err: err}
	}
	return count, nil
}

// ListComments retrieves stored comments. With a seed the rows come back in
// a deterministic pseudo-random order (a fixed function of comment ID and
// seed), so sampling for coding sheets is reproducible; without one the
// order is by comment ID.
func (s *SQLiteStore) ListComments(ctx context.Context, opts ListOptions) ([]Comment, error) {
	query := `
		SELECT comment_id, video_id, video_published_at, published_at,
		       updated_at, like_count, total_reply_count, text
		FROM comments`
	var args []any

	if opts.VideoID != "" {
		query += ` WHERE video_id = ?`
		args = append(args, opts.VideoID)
	}

	if opts.Seed != nil {
		query += ` ORDER BY ((length(comment_id) * ?) % 100), comment_id`
		args = append(args, *opts.Seed)
	} else {
		query += ` ORDER BY comment_id`
	}

	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &StorageError{Op: "list", Entity: "comment", Err: err}
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(
			&c.CommentID, &c.VideoID, &c.VideoPublishedAt, &c.PublishedAt,
			&c.UpdatedAt, &c.LikeCount, &c.TotalReplyCount, &c.Text,
		); err != nil {
			return nil, &StorageError{Op: "list", Entity: "comment", Err: err}
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list", Entity: "comment", Err: err}
	}
	return comments, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
