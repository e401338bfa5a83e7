package collector

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"ytpilot/storage"
	"ytpilot/youtube"
)

// fakeFetcher serves canned comments per video.
type fakeFetcher struct {
	mu       sync.Mutex
	comments map[string][]storage.Comment
	failing  map[string]error
	calls    int
}

func (f *fakeFetcher) VideoInfo(ctx context.Context, videoID string) (storage.Video, error) {
	return storage.Video{VideoID: videoID, PublishedAt: "2026-06-20T00:00:00Z"}, nil
}

func (f *fakeFetcher) FetchComments(ctx context.Context, videoID string, opts youtube.FetchOptions) ([]storage.Comment, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if err := f.failing[videoID]; err != nil {
		return nil, err
	}
	return f.comments[videoID], nil
}

func fixtureComments(videoID string, n int) []storage.Comment {
	comments := make([]storage.Comment, n)
	for i := range comments {
		comments[i] = storage.Comment{
			CommentID: fmt.Sprintf("%s-c%d", videoID, i),
			VideoID:   videoID,
			Text:      "投票に行ってきた",
		}
	}
	return comments
}

func TestCollectPersistsAndCounts(t *testing.T) {
	store, err := storage.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer store.Close()

	fetcher := &fakeFetcher{comments: map[string][]storage.Comment{
		"v1": fixtureComments("v1", 3),
		"v2": fixtureComments("v2", 2),
	}}
	c := New(fetcher)

	results := c.Collect(context.Background(), []string{"v1", "v2"}, Options{Store: store})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	for i, want := range []int{3, 2} {
		if results[i].Err != nil {
			t.Fatalf("result %d failed: %v", i, results[i].Err)
		}
		if results[i].Fetched != want || results[i].New != want {
			t.Errorf("result %d: fetched=%d new=%d, want %d/%d", i, results[i].Fetched, results[i].New, want, want)
		}
	}

	// Comments must carry the video timestamp stamped during collection.
	stored, err := store.ListComments(context.Background(), storage.ListOptions{VideoID: "v1"})
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	for _, c := range stored {
		if c.VideoPublishedAt != "2026-06-20T00:00:00Z" {
			t.Errorf("comment %s missing video timestamp", c.CommentID)
		}
	}

	// Recollecting finds only duplicates.
	results = c.Collect(context.Background(), []string{"v1"}, Options{Store: store})
	if results[0].Fetched != 3 || results[0].New != 0 {
		t.Errorf("recollect: fetched=%d new=%d, want 3/0", results[0].Fetched, results[0].New)
	}
}

func TestCollectOneFailureDoesNotAbortBatch(t *testing.T) {
	wantErr := errors.New("comments disabled")
	fetcher := &fakeFetcher{
		comments: map[string][]storage.Comment{"v2": fixtureComments("v2", 1)},
		failing:  map[string]error{"v1": wantErr},
	}
	c := New(fetcher)

	results := c.Collect(context.Background(), []string{"v1", "v2"}, Options{})

	if !errors.Is(results[0].Err, wantErr) {
		t.Errorf("result[0].Err = %v, want %v", results[0].Err, wantErr)
	}
	if results[1].Err != nil || results[1].Fetched != 1 {
		t.Errorf("result[1] = %+v, want one fetched comment", results[1])
	}
}

func TestCollectProgressCallback(t *testing.T) {
	fetcher := &fakeFetcher{comments: map[string][]storage.Comment{
		"v1": fixtureComments("v1", 1),
		"v2": fixtureComments("v2", 1),
		"v3": fixtureComments("v3", 1),
	}}
	c := New(fetcher)

	var (
		mu    sync.Mutex
		seen  []string
		final int
	)
	c.Collect(context.Background(), []string{"v1", "v2", "v3"}, Options{
		Workers: 2,
		Progress: func(videoID string, done, total int) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, videoID)
			if done > final {
				final = done
			}
			if total != 3 {
				t.Errorf("total = %d, want 3", total)
			}
		},
	})

	if len(seen) != 3 || final != 3 {
		t.Errorf("progress calls = %v (final %d), want all three videos", seen, final)
	}
}

func TestCollectEmptyBatch(t *testing.T) {
	c := New(&fakeFetcher{})

	results := c.Collect(context.Background(), nil, Options{})
	if len(results) != 0 {
		t.Errorf("got %d results for empty batch, want 0", len(results))
	}
}
