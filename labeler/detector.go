package labeler

import "strings"

// Span records a single keyword hit: the dictionary phrase that matched and
// the byte offset of its first occurrence in the case-folded text.
type Span struct {
	// Keyword is the dictionary phrase as written in the dictionary.
	Keyword string
	// Offset is the byte offset of the first occurrence. It is approximate
	// in the sense that repeated occurrences are not enumerated.
	Offset int
}

// Detection maps each label to its matched spans, in dictionary order.
// A label with no spans was not detected.
type Detection map[Label][]Span

// Detected reports whether the label had at least one keyword hit.
func (d Detection) Detected(l Label) bool {
	return len(d[l]) > 0
}

// Keywords returns the matched phrases for a label, in dictionary order.
func (d Detection) Keywords(l Label) []string {
	spans := d[l]
	if len(spans) == 0 {
		return nil
	}
	words := make([]string, len(spans))
	for i, s := range spans {
		words[i] = s.Keyword
	}
	return words
}

// String renders the detection as a compact dictionary-of-lists form in
// canonical label order, e.g. "VP:[投票に行];Mobi:[みんなで 誘って]".
// Used for the detected_keywords debug column of coding sheets.
func (d Detection) String() string {
	var b strings.Builder
	for _, label := range Labels() {
		spans := d[label]
		if len(spans) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		b.WriteString(string(label))
		b.WriteString(":[")
		for i, s := range spans {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s.Keyword)
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Detector scans text against a dictionary. It holds no mutable state and is
// safe for concurrent use.
type Detector struct {
	dict *Dictionary
}

// NewDetector creates a detector over the given dictionary.
func NewDetector(dict *Dictionary) *Detector {
	return &Detector{dict: dict}
}

// Detect scans the text once per dictionary entry and records every matching
// keyword for every label. Matching is case-folded literal substring
// containment; no normalization or stemming is applied beyond lowercasing,
// so dictionary authors supply all surface variants themselves. All matching
// keywords are recorded, not just the first per label.
func (d *Detector) Detect(text string) Detection {
	folded := strings.ToLower(text)
	result := make(Detection, len(d.dict.Keywords))

	for _, label := range Labels() {
		for _, keyword := range d.dict.Keywords[label] {
			idx := strings.Index(folded, strings.ToLower(keyword))
			if idx < 0 {
				continue
			}
			result[label] = append(result[label], Span{Keyword: keyword, Offset: idx})
		}
	}
	return result
}

// Negated reports whether any VP negation pattern occurs in the text. The
// scan runs over the full text independent of which positive span fired, so
// a positive trigger contained inside a negation phrase still counts as
// negated.
func (d *Detector) Negated(text string) bool {
	folded := strings.ToLower(text)
	for _, pattern := range d.dict.VPNegations {
		if strings.Contains(folded, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
