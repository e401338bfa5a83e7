// Package youtube fetches video metadata and top-level comments through the
// YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"ytpilot/internal/retry"
	"ytpilot/storage"
)

// Comment orderings accepted by the Data API.
const (
	OrderTime      = "time"
	OrderRelevance = "relevance"
)

// pageSize is the API maximum for commentThreads.list.
const pageSize = 100

// FetchOptions controls a comment fetch.
type FetchOptions struct {
	// MaxComments caps the number of comments fetched (0 = default 500).
	MaxComments int
	// Order is the comment ordering, OrderTime or OrderRelevance.
	Order string
}

// Fetcher retrieves comments and video metadata from the Data API. It tracks
// estimated quota usage the way the daily quota accounting works server-side
// (units per call, reset every 24h) and refuses new calls once the
// configured reserve is reached. Safe for concurrent use.
type Fetcher struct {
	service *youtube.Service
	limiter *rate.Limiter
	cache   *gocache.Cache
	log     *logrus.Entry

	retryConfig  retry.Config
	quotaReserve int

	mu             sync.Mutex
	estimatedQuota int
	lastQuotaReset time.Time
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithRateLimit sets the sustained API request rate and burst. The default
// is 5 requests/second with a burst of 5.
func WithRateLimit(rps float64, burst int) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithQuotaReserve sets the minimum estimated quota units to keep in reserve.
func WithQuotaReserve(units int) Option {
	return func(f *Fetcher) { f.quotaReserve = units }
}

// WithRetryConfig overrides the retry behavior for API calls.
func WithRetryConfig(cfg retry.Config) Option {
	return func(f *Fetcher) { f.retryConfig = cfg }
}

// NewFetcher creates a Data API fetcher using the given API key.
func NewFetcher(ctx context.Context, apiKey string, opts ...Option) (*Fetcher, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	f := &Fetcher{
		service:        service,
		limiter:        rate.NewLimiter(rate.Limit(5), 5),
		cache:          gocache.New(1*time.Hour, 10*time.Minute),
		log:            logrus.WithField("component", "youtube"),
		retryConfig:    retry.DefaultConfig(),
		estimatedQuota: 10000, // Default daily quota
		lastQuotaReset: time.Now(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// VideoInfo returns the published-at timestamp for a video. Lookups are
// cached for an hour so repeated collects of the same video spend no quota.
// A failed lookup is not fatal to collection: callers may proceed with an
// empty timestamp.
func (f *Fetcher) VideoInfo(ctx context.Context, videoID string) (storage.Video, error) {
	if cached, ok := f.cache.Get(videoID); ok {
		return cached.(storage.Video), nil
	}

	video := storage.Video{VideoID: videoID}
	err := retry.Do(ctx, f.retryConfig, apiErrorClassifier, func(ctx context.Context) error {
		if err := f.beforeCall(ctx); err != nil {
			return err
		}

		resp, err := f.service.Videos.List([]string{"snippet"}).
			Id(videoID).
			Context(ctx).
			Do()
		f.trackQuotaUsage(1) // videos.list uses 1 unit
		if err != nil {
			return classifyAPIError(err)
		}

		if len(resp.Items) == 0 {
			return ErrVideoNotFound
		}
		video.PublishedAt = resp.Items[0].Snippet.PublishedAt
		return nil
	})
	if err != nil {
		return storage.Video{VideoID: videoID}, &FetchError{VideoID: videoID, Op: "video_info", Err: err}
	}

	f.cache.SetDefault(videoID, video)
	return video, nil
}

// FetchComments retrieves up to opts.MaxComments top-level comments for a
// video, paginating commentThreads.list until the cap or the last page is
// reached. Comments come back in the requested API order.
func (f *Fetcher) FetchComments(ctx context.Context, videoID string, opts FetchOptions) ([]storage.Comment, error) {
	maxComments := opts.MaxComments
	if maxComments <= 0 {
		maxComments = 500
	}
	order := opts.Order
	if order == "" {
		order = OrderTime
	}
	if order != OrderTime && order != OrderRelevance {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrder, order)
	}

	var comments []storage.Comment
	pageToken := ""

	for len(comments) < maxComments {
		remaining := maxComments - len(comments)
		perPage := int64(pageSize)
		if remaining < pageSize {
			perPage = int64(remaining)
		}

		var resp *youtube.CommentThreadListResponse
		err := retry.Do(ctx, f.retryConfig, apiErrorClassifier, func(ctx context.Context) error {
			if err := f.beforeCall(ctx); err != nil {
				return err
			}

			var callErr error
			resp, callErr = f.service.CommentThreads.List([]string{"snippet"}).
				VideoId(videoID).
				MaxResults(perPage).
				Order(order).
				PageToken(pageToken).
				TextFormat("plainText").
				Context(ctx).
				Do()
			f.trackQuotaUsage(1) // commentThreads.list uses 1 unit per page
			if callErr != nil {
				return classifyAPIError(callErr)
			}
			return nil
		})
		if err != nil {
			return comments, &FetchError{VideoID: videoID, Op: "comments", Err: err}
		}

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
				continue
			}
			top := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, storage.Comment{
				CommentID:       item.Id,
				VideoID:         videoID,
				PublishedAt:     top.PublishedAt,
				UpdatedAt:       top.UpdatedAt,
				LikeCount:       top.LikeCount,
				TotalReplyCount: item.Snippet.TotalReplyCount,
				Text:            top.TextDisplay,
			})
			if len(comments) >= maxComments {
				break
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	f.log.WithFields(logrus.Fields{
		"video_id": videoID,
		"fetched":  len(comments),
	}).Debug("comments fetched")
	return comments, nil
}

// beforeCall waits for the rate limiter and checks the quota reserve.
func (f *Fetcher) beforeCall(ctx context.Context) error {
	f.mu.Lock()
	f.maybeResetQuota()
	if f.estimatedQuota <= f.quotaReserve {
		f.mu.Unlock()
		return ErrQuotaExceeded
	}
	f.mu.Unlock()

	return f.limiter.Wait(ctx)
}

// trackQuotaUsage updates the estimated remaining quota.
func (f *Fetcher) trackQuotaUsage(units int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.maybeResetQuota()
	f.estimatedQuota -= units
	if f.estimatedQuota <= f.quotaReserve {
		f.log.WithFields(logrus.Fields{
			"remaining": f.estimatedQuota,
			"reserve":   f.quotaReserve,
		}).Warn("estimated quota exhausted")
	}
}

// maybeResetQuota resets the estimate once a day. Caller holds f.mu.
func (f *Fetcher) maybeResetQuota() {
	if time.Since(f.lastQuotaReset) > 24*time.Hour {
		f.estimatedQuota = 10000
		f.lastQuotaReset = time.Now()
		f.log.Debug("quota estimate reset")
	}
}

// EstimatedQuota returns the estimated remaining quota units.
func (f *Fetcher) EstimatedQuota() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.estimatedQuota
}

// classifyAPIError maps googleapi errors onto the package sentinels so
// callers can use errors.Is.
func classifyAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	for _, e := range apiErr.Errors {
		switch e.Reason {
		case "commentsDisabled":
			return ErrCommentsDisabled
		case "videoNotFound":
			return ErrVideoNotFound
		case "quotaExceeded", "dailyLimitExceeded":
			return ErrQuotaExceeded
		}
	}
	if apiErr.Code == 404 {
		return ErrVideoNotFound
	}
	return err
}

// apiErrorClassifier determines if a Data API error is retryable.
func apiErrorClassifier(err error) bool {
	switch {
	case errors.Is(err, ErrVideoNotFound),
		errors.Is(err, ErrCommentsDisabled),
		errors.Is(err, ErrQuotaExceeded),
		errors.Is(err, ErrInvalidOrder):
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		// Rate limit and server errors are retryable, other client errors
		// are not.
		if apiErr.Code == 429 || apiErr.Code >= 500 {
			return true
		}
		for _, e := range apiErr.Errors {
			if e.Reason == "rateLimitExceeded" || e.Reason == "userRateLimitExceeded" {
				return true
			}
		}
		return false
	}

	// Default to retryable for unknown (likely network) errors.
	return true
}
