// Package collector runs batch comment collection over multiple videos.
package collector

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ytpilot/storage"
	"ytpilot/youtube"
)

// Fetcher is the slice of the Data API client the collector needs.
type Fetcher interface {
	VideoInfo(ctx context.Context, videoID string) (storage.Video, error)
	FetchComments(ctx context.Context, videoID string, opts youtube.FetchOptions) ([]storage.Comment, error)
}

// Result is the outcome of collecting one video.
type Result struct {
	// VideoID is the video this result concerns.
	VideoID string
	// Video holds the fetched metadata (zero-valued PublishedAt when the
	// lookup failed).
	Video storage.Video
	// Comments are the fetched comments, stamped with the video timestamp.
	Comments []storage.Comment
	// Fetched is the number of comments returned by the API.
	Fetched int
	// New is the number of comments newly persisted (0 when no store is
	// configured).
	New int
	// Err is the per-video failure, nil on success. One video failing does
	// not abort the batch.
	Err error
}

// ProgressFunc is called once per completed video with the completion count.
type ProgressFunc func(videoID string, done, total int)

// Options controls a batch collection run.
type Options struct {
	// Fetch is passed through to every per-video comment fetch.
	Fetch youtube.FetchOptions
	// Workers bounds concurrent video fetches (default 3).
	Workers int
	// Store, when non-nil, persists videos and comments as they arrive.
	Store storage.Store
	// Progress, when non-nil, receives per-video completion callbacks.
	Progress ProgressFunc
}

// Collector fetches comments for batches of videos.
type Collector struct {
	fetcher Fetcher
	log     *logrus.Entry
}

// New creates a collector over the given fetcher.
func New(fetcher Fetcher) *Collector {
	return &Collector{
		fetcher: fetcher,
		log:     logrus.WithField("component", "collector"),
	}
}

// Collect fetches comments for every video ID and returns one result per
// video, in input order. Videos are fetched concurrently by a bounded worker
// pool; persistence happens in the worker that fetched, so results already
// carry new-versus-duplicate counts.
func (c *Collector) Collect(ctx context.Context, videoIDs []string, opts Options) []Result {
	workers := opts.Workers
	if workers <= 0 {
		workers = 3
	}
	if workers > len(videoIDs) {
		workers = len(videoIDs)
	}

	runID := uuid.NewString()
	log := c.log.WithField("run_id", runID)
	log.WithFields(logrus.Fields{
		"videos":  len(videoIDs),
		"workers": workers,
	}).Info("collection run started")

	results := make([]Result, len(videoIDs))
	jobs := make(chan int)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.collectOne(ctx, videoIDs[i], opts)

				mu.Lock()
				done++
				n := done
				mu.Unlock()
				if opts.Progress != nil {
					opts.Progress(videoIDs[i], n, len(videoIDs))
				}
			}
		}()
	}

	for i := range videoIDs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.WithFields(logrus.Fields{
		"videos": len(videoIDs),
		"failed": failed,
	}).Info("collection run finished")
	return results
}

// collectOne fetches metadata and comments for a single video and persists
// them when a store is configured.
func (c *Collector) collectOne(ctx context.Context, videoID string, opts Options) Result {
	result := Result{VideoID: videoID}

	video, err := c.fetcher.VideoInfo(ctx, videoID)
	if err != nil {
		// Metadata is best-effort: comments are still worth collecting.
		c.log.WithFields(logrus.Fields{
			"video_id": videoID,
			"error":    err,
		}).Warn("video info lookup failed")
		video = storage.Video{VideoID: videoID}
	}
	result.Video = video

	comments, err := c.fetcher.FetchComments(ctx, videoID, opts.Fetch)
	if err != nil {
		result.Err = err
		return result
	}
	for i := range comments {
		comments[i].VideoPublishedAt = video.PublishedAt
	}
	result.Comments = comments
	result.Fetched = len(comments)

	if opts.Store != nil {
		if err := opts.Store.SaveVideos(ctx, []storage.Video{video}); err != nil {
			result.Err = err
			return result
		}
		inserted, err := opts.Store.SaveComments(ctx, comments)
		if err != nil {
			result.Err = err
			return result
		}
		result.New = inserted
	}
	return result
}
