// Package ytpilot collects YouTube comments and codes them with a
// deterministic dictionary labeler.
//
// It was built for a pilot study of election-related comment sections:
// comments are fetched through the YouTube Data API v3, persisted to SQLite
// and CSV, and tagged with sociological categories (voting intention,
// internal/external efficacy, cynicism, normative appeal, information
// seeking, mobilization) by a keyword-and-rule engine whose every decision
// is explainable per input.
//
// # Overview
//
// The sub-packages compose into a pipeline:
//
//   - youtube: paginated comment fetching with quota tracking, rate
//     limiting, and retries
//   - storage: SQLite (deduplicated by comment ID) and CSV persistence
//   - collector: batch collection over many videos with a worker pool
//   - labeler: the dictionary labeler and its priority-conflict engine
//   - coding: coding-sheet CSVs pairing predictions with blank columns for
//     human coders
//   - analysis: descriptive statistics over collected comments
//
// # Quick start
//
// Label a single comment:
//
//	result, err := ytpilot.Label("みんなで投票に行こう！友達も誘って")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Final[labeler.VP]) // true
//	fmt.Println(result.Trace)             // [Mobi_enhances_VP]
//
// Collect comments into a database:
//
//	ctx := context.Background()
//	fetcher, err := youtube.NewFetcher(ctx, apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	store, err := storage.NewSQLite("comments.db")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	results := collector.New(fetcher).Collect(ctx, []string{"dQw4w9WgXcQ"}, collector.Options{Store: store})
//
// # Labeling semantics
//
// Detection is literal, case-folded substring matching over per-label
// keyword lists; every matching keyword is recorded. After detection, three
// ordered rules resolve conflicts: a negation pattern ("won't vote")
// suppresses voting intention, detected cynicism forces the positive labels
// (VP, E_ext, Norm, Mobi) false while leaving E_int and Info untouched, and
// a mobilization annotation records when Mobi reinforces a surviving VP.
// The fired rules are returned as an ordered trace, and identical input
// always produces identical output.
//
// # Configuration
//
// The CLI loads settings from YTPILOT_* environment variables and an
// optional YAML file (ytpilot.yaml in the working directory or
// ~/.config/ytpilot/). The keyword dictionaries are the only configurable
// surface of the labeler itself; see labeler.LoadDictionary.
package ytpilot
