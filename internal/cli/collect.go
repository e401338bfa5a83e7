package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ytpilot/collector"
	"ytpilot/config"
	"ytpilot/internal/retry"
	"ytpilot/storage"
	"ytpilot/youtube"
)

var (
	collectVideos      []string
	collectMaxComments int
	collectOrder       string
	collectCSV         string
	collectDB          string
	collectWorkers     int
)

// collectCmd fetches comments for one or more videos.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect comments for one or more videos",
	Long: `Collect fetches top-level comments for each --video through the Data API
and writes them to a SQLite database (deduplicated by comment ID), a CSV
file, or both. The API key comes from --config, YTPILOT_API_KEY, or the
config file.

Example:
  ytpilot collect --video dQw4w9WgXcQ --video oHg5SJYRHA0 --db data/comments.db
  ytpilot collect --video dQw4w9WgXcQ --max-comments 1000 --order relevance --csv out.csv`,
	RunE: runCollect,
}

func init() {
	rootCmd.AddCommand(collectCmd)

	collectCmd.Flags().StringArrayVar(&collectVideos, "video", nil, "video ID (repeatable)")
	collectCmd.Flags().IntVar(&collectMaxComments, "max-comments", 0, "maximum comments per video (default from config: 500)")
	collectCmd.Flags().StringVar(&collectOrder, "order", "", "comment order: time or relevance (default from config: time)")
	collectCmd.Flags().StringVar(&collectCSV, "csv", "", "CSV output path")
	collectCmd.Flags().StringVar(&collectDB, "db", "", "SQLite database output path")
	collectCmd.Flags().IntVar(&collectWorkers, "workers", 0, "concurrent video fetches (default from config: 3)")
	collectCmd.MarkFlagRequired("video")
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyCollectFlags(cfg)

	if cfg.CSVPath == "" && cfg.DBPath == "" {
		return fmt.Errorf("at least one output must be specified (--csv or --db)")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("no API key configured; set YTPILOT_API_KEY or api_key in the config file")
	}

	ctx := context.Background()

	fetcher, err := youtube.NewFetcher(ctx, cfg.APIKey,
		youtube.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
		youtube.WithQuotaReserve(cfg.QuotaReserve),
		youtube.WithRetryConfig(retry.Config{
			MaxRetries:     cfg.MaxRetries,
			InitialBackoff: cfg.InitialBackoff,
			MaxBackoff:     cfg.MaxBackoff,
			Multiplier:     cfg.BackoffMultiplier,
			JitterFraction: 0.2,
		}),
	)
	if err != nil {
		return err
	}

	var store storage.Store
	if cfg.DBPath != "" {
		s, err := storage.NewSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	c := collector.New(fetcher)
	results := c.Collect(ctx, collectVideos, collector.Options{
		Fetch: youtube.FetchOptions{
			MaxComments: cfg.MaxComments,
			Order:       cfg.Order,
		},
		Workers: cfg.Workers,
		Store:   store,
		Progress: func(videoID string, done, total int) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, total, videoID)
		},
	})

	var all []storage.Comment
	failed := 0
	total := 0
	for _, r := range results {
		fmt.Printf("\nVideo %s:\n", r.VideoID)
		if r.Err != nil {
			failed++
			fmt.Printf("  Error: %v\n", r.Err)
			continue
		}
		fmt.Printf("  Fetched: %d comments\n", r.Fetched)
		if store != nil {
			fmt.Printf("  Saved:   %d new comments\n", r.New)
			fmt.Printf("  Skipped: %d duplicate comments\n", r.Fetched-r.New)
		}
		all = append(all, r.Comments...)
		total += r.Fetched
	}

	if cfg.CSVPath != "" {
		if err := storage.WriteCommentsCSV(cfg.CSVPath, all); err != nil {
			return err
		}
		fmt.Printf("\nCSV saved to: %s\n", cfg.CSVPath)
	}
	if cfg.DBPath != "" {
		fmt.Printf("Database saved to: %s\n", cfg.DBPath)
	}
	fmt.Printf("\nTotal comments collected: %d\n", total)

	if failed == len(results) && len(results) > 0 {
		return fmt.Errorf("all %d videos failed", failed)
	}
	return nil
}

// applyCollectFlags lets explicit flags win over config and environment.
func applyCollectFlags(cfg *config.Config) {
	if collectMaxComments > 0 {
		cfg.MaxComments = collectMaxComments
	}
	if collectOrder != "" {
		cfg.Order = collectOrder
	}
	if collectCSV != "" {
		cfg.CSVPath = collectCSV
	}
	if collectDB != "" {
		cfg.DBPath = collectDB
	}
	if collectWorkers > 0 {
		cfg.Workers = collectWorkers
	}
}
