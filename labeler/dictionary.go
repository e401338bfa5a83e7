package labeler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dictionary holds the trigger phrases for every label, plus the VP negation
// patterns and cynicism modifiers. A Dictionary is read-only configuration:
// it is built once and must not be mutated while a Labeler uses it. Keyword
// order within a label is preserved from construction, which fixes the span
// order in detection results.
type Dictionary struct {
	// Keywords maps each label to its ordered trigger phrases.
	Keywords map[Label][]string `yaml:"keywords"`
	// VPNegations are phrases meaning "not going to vote". Any occurrence
	// suppresses a positive VP detection over the same text.
	VPNegations []string `yaml:"vp_negations"`
	// CynModifiers are intensifiers that frequently accompany cynicism
	// ("どうせ", "結局"). They do not trigger Cyn on their own; they are kept
	// for coders auditing dictionary coverage.
	CynModifiers []string `yaml:"cyn_modifiers"`
}

// DefaultDictionary returns the built-in Japanese election dictionary used by
// the pilot study. Matching is literal substring containment, so every
// surface variant that should match is listed explicitly.
func DefaultDictionary() *Dictionary {
	return &Dictionary{
		Keywords: map[Label][]string{
			VP: {
				"投票行く", "投票いく", "投票いき", "投票に行", "行ってくる", "行ってきた",
				"投票した", "期日前", "投票する", "選挙行", "投票所",
				"投票済", "投票しよう",
			},
			EExt: {
				"一票でも", "変えられる", "声が届く",
				"政治を変える", "社会を変える", "民主主義", "主権在民",
				"私たちの声",
			},
			EInt: {
				"調べる", "調べて", "調べた", "勉強する", "ちゃんと考え",
				"理解して", "判断する", "情報収集", "比較して",
			},
			Cyn: {
				"どうせ変わらない", "意味ない", "無駄", "変わらん",
				"茶番", "出来レース", "利権", "癒着", "腐って",
			},
			Norm: {
				"行くべき", "行かなきゃ", "行かないのは", "責任",
				"国民の義務", "権利を行使",
			},
			Info: {
				"どこで", "やり方", "方法", "候補者", "政策",
				"何時から", "持ち物", "場所", "投票用紙",
			},
			Mobi: {
				"みんなで", "一緒に行こう", "友達と", "家族と",
				"声をかけて", "誘って", "広めて", "シェアして",
				"拡散", "周りの人",
			},
		},
		VPNegations: []string{
			"投票行かない", "投票に行かない", "投票しない", "選挙行かない",
			"投票できない", "投票やめ", "投票いかない",
		},
		CynModifiers: []string{
			"本当に", "マジで", "ガチで", "絶対", "どうせ", "結局",
		},
	}
}

// LoadDictionary reads a dictionary from a YAML file. The file uses label
// names as keys under "keywords":
//
//	keywords:
//	  VP: ["投票行く", "期日前"]
//	  Cyn: ["どうせ変わらない"]
//	vp_negations: ["投票に行かない"]
//
// Labels absent from the file simply detect nothing.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	var dict Dictionary
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}

	if err := dict.Validate(); err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	return &dict, nil
}

// Validate checks that every keyword list is attached to a known label and
// that no trigger phrase is empty.
func (d *Dictionary) Validate() error {
	for label, words := range d.Keywords {
		if !label.Valid() {
			return fmt.Errorf("unknown label %q", label)
		}
		for _, w := range words {
			if w == "" {
				return fmt.Errorf("empty keyword for label %s", label)
			}
		}
	}
	for _, p := range d.VPNegations {
		if p == "" {
			return fmt.Errorf("empty VP negation pattern")
		}
	}
	return nil
}
