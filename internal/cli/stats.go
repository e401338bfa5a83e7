package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ytpilot/analysis"
	"ytpilot/storage"
)

var (
	statsDB    string
	statsVideo string
)

// statsCmd prints descriptive statistics over stored comments.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics over collected comments",
	Long: `Stats summarizes a collection database: comment counts, like/reply
distribution, text lengths, daily volume, and engagement concentration.

Example:
  ytpilot stats --db data/comments.db
  ytpilot stats --db data/comments.db --video dQw4w9WgXcQ`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsDB, "db", "", "SQLite database to analyze (required)")
	statsCmd.Flags().StringVar(&statsVideo, "video", "", "restrict to one video ID")
	statsCmd.MarkFlagRequired("db")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := storage.NewSQLite(statsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	comments, err := store.ListComments(context.Background(), storage.ListOptions{VideoID: statsVideo})
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		fmt.Println("No comments found.")
		return nil
	}

	a := analysis.New(comments)
	s := a.BasicStats()
	e := a.EngagementAnalysis()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "comments\t%d\n", s.TotalComments)
	fmt.Fprintf(w, "avg likes\t%.2f\n", s.AvgLikes)
	fmt.Fprintf(w, "median likes\t%.1f\n", s.MedianLikes)
	fmt.Fprintf(w, "max likes\t%d\n", s.MaxLikes)
	fmt.Fprintf(w, "avg replies\t%.2f\n", s.AvgReplies)
	fmt.Fprintf(w, "avg text length\t%.1f\n", s.AvgTextLength)
	fmt.Fprintf(w, "with replies\t%d (%.0f%%)\n", e.WithReplies, e.ReplyShare*100)
	w.Flush()

	days := a.TemporalDistribution()
	if len(days) > 0 {
		keys := make([]string, 0, len(days))
		for day := range days {
			keys = append(keys, day)
		}
		sort.Strings(keys)

		fmt.Println("\ncomments per day:")
		for _, day := range keys {
			fmt.Printf("  %s  %d\n", day, days[day])
		}
	}
	return nil
}
