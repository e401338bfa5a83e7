// Package coding generates manual-coding sheets: CSV files pairing stored
// comments with dictionary predictions, blank columns for human coders, and
// optional debug columns explaining each prediction.
package coding

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"ytpilot/labeler"
	"ytpilot/storage"
)

// manualColumns are left blank for the human coder to fill in.
var manualColumns = []string{"VP", "E_int", "E_ext", "Cyn", "Norm", "Info", "Mobi", "unsure", "coder_memo"}

// Options controls coding-sheet generation.
type Options struct {
	// Limit caps the number of comments sampled (0 = all).
	Limit int
	// Seed selects a deterministic pseudo-random sample ordering when
	// non-nil; nil keeps comment-ID order.
	Seed *int64
	// IncludeDebug adds the priority_rules and detected_keywords columns.
	IncludeDebug bool
}

// Generator produces coding sheets from stored comments.
type Generator struct {
	store   storage.Store
	labeler *labeler.Labeler
	log     *logrus.Entry
}

// NewGenerator creates a generator over the given store and labeler.
func NewGenerator(store storage.Store, l *labeler.Labeler) *Generator {
	return &Generator{
		store:   store,
		labeler: l,
		log:     logrus.WithField("component", "coding"),
	}
}

// Generate writes a coding sheet CSV to path and returns the number of
// comment rows written. Rows whose text the labeler rejects are skipped and
// reported, not silently recovered.
func (g *Generator) Generate(ctx context.Context, path string, opts Options) (int, error) {
	comments, err := g.store.ListComments(ctx, storage.ListOptions{
		Limit: opts.Limit,
		Seed:  opts.Seed,
	})
	if err != nil {
		return 0, fmt.Errorf("coding: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("coding: create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("coding: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headerRow(opts.IncludeDebug)); err != nil {
		return 0, fmt.Errorf("coding: write header: %w", err)
	}

	written := 0
	for _, c := range comments {
		pred, err := g.labeler.PredictDetailed(c.Text)
		if err != nil {
			// Malformed text is surfaced per row for manual review, the
			// rest of the sheet still gets generated.
			g.log.WithFields(logrus.Fields{
				"comment_id": c.CommentID,
				"error":      err,
			}).Warn("skipping comment with invalid text")
			continue
		}

		if err := w.Write(commentRow(c, pred, opts.IncludeDebug)); err != nil {
			return written, fmt.Errorf("coding: write row %s: %w", c.CommentID, err)
		}
		written++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return written, fmt.Errorf("coding: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return written, fmt.Errorf("coding: close %s: %w", path, err)
	}

	g.log.WithFields(logrus.Fields{
		"rows": written,
		"path": path,
	}).Info("coding sheet generated")
	return written, nil
}

// headerRow builds the CSV header: comment metadata, prediction columns in
// canonical label order, manual-coding blanks, then debug columns.
func headerRow(debug bool) []string {
	header := []string{"video_id", "comment_id", "published_at", "like_count", "total_reply_count", "text"}
	for _, label := range labeler.Labels() {
		header = append(header, label.Column())
	}
	header = append(header, manualColumns...)
	if debug {
		header = append(header, "priority_rules", "detected_keywords")
	}
	return header
}

func commentRow(c storage.Comment, pred *labeler.Prediction, debug bool) []string {
	row := []string{
		c.VideoID,
		c.CommentID,
		c.PublishedAt,
		strconv.FormatInt(c.LikeCount, 10),
		strconv.FormatInt(c.TotalReplyCount, 10),
		c.Text,
	}
	for _, label := range labeler.Labels() {
		if pred.Final[label] {
			row = append(row, "1")
		} else {
			row = append(row, "0")
		}
	}
	// Manual-coding columns stay empty.
	for range manualColumns {
		row = append(row, "")
	}
	if debug {
		row = append(row, pred.TraceString(), pred.Detections.String())
	}
	return row
}
