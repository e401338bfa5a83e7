// Package labeler implements deterministic dictionary-based coding of
// YouTube comments into sociological categories.
//
// Labeling runs in three stages: a Detector scans every dictionary entry and
// records matched keyword spans per label, a negation rule suppresses voting
// intention when a "won't vote" pattern co-occurs, and a priority engine
// applies ordered override rules (cynicism suppressing positive labels,
// mobilization annotating voting intention). The result is a boolean verdict
// for all seven labels plus a trace of every rule that fired, so each
// decision is explainable per input. This is intentionally not a statistical
// classifier: identical input always yields identical output, including
// trace ordering, so coding runs are reproducible and auditable.
package labeler

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidText indicates the input text is not valid UTF-8. The caller is
// expected to skip or report the offending row rather than the labeler
// recovering silently.
var ErrInvalidText = errors.New("labeler: invalid input text")

// Prediction is the full labeling result for a single text.
type Prediction struct {
	// Final holds the post-priority verdict for all seven labels.
	Final map[Label]bool
	// Detections holds the raw keyword spans per label, before any rule ran.
	Detections Detection
	// Trace lists the identifiers of every rule that fired, in application
	// order. Empty when no rule fired.
	Trace []string
}

// TraceString returns the trace joined with semicolons, as written into the
// priority_rules debug column of coding sheets.
func (p *Prediction) TraceString() string {
	return strings.Join(p.Trace, ";")
}

// Labeler is the coding facade. It is read-only after construction and safe
// for concurrent use; every call computes its result fresh from the input
// text alone.
type Labeler struct {
	detector *Detector
	rules    []ruleFunc
}

// New creates a labeler over the given dictionary. A nil dictionary selects
// the built-in default.
func New(dict *Dictionary) (*Labeler, error) {
	if dict == nil {
		dict = DefaultDictionary()
	}
	if err := dict.Validate(); err != nil {
		return nil, fmt.Errorf("labeler: %w", err)
	}
	return &Labeler{
		detector: NewDetector(dict),
		rules:    defaultRules,
	}, nil
}

// PredictDetailed labels one comment text and returns the full result with
// raw detections and the rule trace, for auditing and debug output.
func (l *Labeler) PredictDetailed(text string) (*Prediction, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: not valid UTF-8 (%q)", ErrInvalidText, truncate(text, 40))
	}

	detected := l.detector.Detect(text)

	st := &state{
		detected: detected,
		negated:  l.detector.Negated(text),
		final:    make(map[Label]bool, len(Labels())),
	}
	for _, label := range Labels() {
		st.final[label] = detected.Detected(label)
	}

	for _, rule := range l.rules {
		rule(st)
	}

	return &Prediction{
		Final:      st.final,
		Detections: detected,
		Trace:      st.trace,
	}, nil
}

// Predict labels one comment text and returns only the 0/1 prediction
// columns (pred_VP .. pred_Mobi), for bulk scoring.
func (l *Labeler) Predict(text string) (map[string]int, error) {
	p, err := l.PredictDetailed(text)
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(Labels()))
	for _, label := range Labels() {
		if p.Final[label] {
			cols[label.Column()] = 1
		} else {
			cols[label.Column()] = 0
		}
	}
	return cols, nil
}

// truncate shortens s for error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
