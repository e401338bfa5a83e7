// Package analysis computes descriptive statistics over collected comments.
package analysis

import (
	"sort"
	"time"

	"ytpilot/storage"
)

// Stats summarizes engagement and length over a comment set.
type Stats struct {
	TotalComments int
	AvgLikes      float64
	MedianLikes   float64
	MaxLikes      int64
	AvgReplies    float64
	MaxReplies    int64
	AvgTextLength float64
	MinTextLength int
	MaxTextLength int
}

// Engagement summarizes how engagement concentrates in a comment set.
type Engagement struct {
	// HighEngagementComments is the size of the top decile by likes (at
	// least one comment when any exist).
	HighEngagementComments int
	// WithReplies is the number of comments that received replies.
	WithReplies int
	// ReplyShare is WithReplies over the total, 0 for an empty set.
	ReplyShare float64
}

// Analyzer computes statistics over a fixed comment set.
type Analyzer struct {
	comments []storage.Comment
}

// New creates an analyzer over the given comments.
func New(comments []storage.Comment) *Analyzer {
	return &Analyzer{comments: comments}
}

// BasicStats returns count, like/reply, and text-length statistics.
func (a *Analyzer) BasicStats() Stats {
	if len(a.comments) == 0 {
		return Stats{}
	}

	likes := make([]int64, len(a.comments))
	s := Stats{
		TotalComments: len(a.comments),
		MinTextLength: len([]rune(a.comments[0].Text)),
	}

	var likeSum, replySum, lengthSum int64
	for i, c := range a.comments {
		likes[i] = c.LikeCount
		likeSum += c.LikeCount
		replySum += c.TotalReplyCount
		if c.LikeCount > s.MaxLikes {
			s.MaxLikes = c.LikeCount
		}
		if c.TotalReplyCount > s.MaxReplies {
			s.MaxReplies = c.TotalReplyCount
		}

		n := len([]rune(c.Text))
		lengthSum += int64(n)
		if n < s.MinTextLength {
			s.MinTextLength = n
		}
		if n > s.MaxTextLength {
			s.MaxTextLength = n
		}
	}

	total := float64(len(a.comments))
	s.AvgLikes = float64(likeSum) / total
	s.AvgReplies = float64(replySum) / total
	s.AvgTextLength = float64(lengthSum) / total
	s.MedianLikes = medianInt64(likes)
	return s
}

// TemporalDistribution counts comments per UTC calendar day, keyed
// "2006-01-02". Comments with unparseable timestamps are skipped.
func (a *Analyzer) TemporalDistribution() map[string]int {
	days := make(map[string]int)
	for _, c := range a.comments {
		t, err := time.Parse(time.RFC3339, c.PublishedAt)
		if err != nil {
			continue
		}
		days[t.UTC().Format("2006-01-02")]++
	}
	return days
}

// EngagementAnalysis returns the top-decile and reply-share summary.
func (a *Analyzer) EngagementAnalysis() Engagement {
	if len(a.comments) == 0 {
		return Engagement{}
	}

	topDecile := len(a.comments) / 10
	if topDecile == 0 {
		topDecile = 1
	}

	withReplies := 0
	for _, c := range a.comments {
		if c.TotalReplyCount > 0 {
			withReplies++
		}
	}

	return Engagement{
		HighEngagementComments: topDecile,
		WithReplies:            withReplies,
		ReplyShare:             float64(withReplies) / float64(len(a.comments)),
	}
}

func medianInt64(values []int64) float64 {
	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
