package labeler

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDetectRecordsAllMatches(t *testing.T) {
	d := NewDetector(DefaultDictionary())

	det := d.Detect("みんなで投票に行こう！友達も誘って")

	mobi := det.Keywords(Mobi)
	if !reflect.DeepEqual(mobi, []string{"みんなで", "誘って"}) {
		t.Errorf("Mobi keywords = %v, want [みんなで 誘って]", mobi)
	}
	if !det.Detected(VP) {
		t.Error("VP not detected")
	}
}

func TestDetectSpanOffsets(t *testing.T) {
	d := NewDetector(DefaultDictionary())

	text := "みんなで投票に行こう"
	det := d.Detect(text)

	spans := det[Mobi]
	if len(spans) == 0 {
		t.Fatal("no Mobi spans")
	}
	if spans[0].Keyword != "みんなで" || spans[0].Offset != 0 {
		t.Errorf("first Mobi span = %+v, want みんなで at 0", spans[0])
	}

	vp := det[VP]
	if len(vp) != 1 {
		t.Fatalf("VP spans = %v, want one", vp)
	}
	wantOffset := strings.Index(strings.ToLower(text), "投票に行")
	if vp[0].Offset != wantOffset {
		t.Errorf("VP span offset = %d, want %d", vp[0].Offset, wantOffset)
	}
}

func TestDetectDictionaryOrderIsStable(t *testing.T) {
	dict := &Dictionary{
		Keywords: map[Label][]string{
			Mobi: {"みんなで", "誘って", "拡散"},
		},
	}
	d := NewDetector(dict)

	text := "拡散して！誘って、みんなで行こう"
	first := d.Detect(text).Keywords(Mobi)
	for i := 0; i < 10; i++ {
		got := d.Detect(text).Keywords(Mobi)
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("keyword order changed: %v vs %v", got, first)
		}
	}
	// Span order follows dictionary order, not text order.
	if !reflect.DeepEqual(first, []string{"みんなで", "誘って", "拡散"}) {
		t.Errorf("Mobi keywords = %v, want dictionary order", first)
	}
}

func TestDetectCaseFolded(t *testing.T) {
	dict := &Dictionary{
		Keywords: map[Label][]string{
			Info: {"GoTo"},
		},
	}
	d := NewDetector(dict)

	if !d.Detect("goto the polls").Detected(Info) {
		t.Error("lowercased text did not match mixed-case keyword")
	}
	if !d.Detect("GOTO THE POLLS").Detected(Info) {
		t.Error("uppercased text did not match mixed-case keyword")
	}
}

func TestNegatedScansFullText(t *testing.T) {
	d := NewDetector(DefaultDictionary())

	if !d.Negated("今回は投票に行かない") {
		t.Error("Negated = false, want true")
	}
	if d.Negated("投票に行く") {
		t.Error("Negated = true, want false")
	}
	if d.Negated("") {
		t.Error("Negated(\"\") = true, want false")
	}
}

func TestDetectionString(t *testing.T) {
	d := NewDetector(DefaultDictionary())

	got := d.Detect("みんなで投票に行こう").String()
	want := "VP:[投票に行];Mobi:[みんなで]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if s := d.Detect("").String(); s != "" {
		t.Errorf("String() on empty detection = %q, want empty", s)
	}
}

func TestLoadDictionary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.yaml")
	data := `keywords:
  VP: ["投票行く", "期日前"]
  Cyn: ["どうせ変わらない"]
vp_negations: ["投票に行かない"]
cyn_modifiers: ["どうせ"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	dict, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	if !reflect.DeepEqual(dict.Keywords[VP], []string{"投票行く", "期日前"}) {
		t.Errorf("VP keywords = %v", dict.Keywords[VP])
	}
	if len(dict.VPNegations) != 1 {
		t.Errorf("VPNegations = %v, want one entry", dict.VPNegations)
	}

	l, err := New(dict)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cols, err := l.Predict("期日前投票に行ってきた")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if cols["pred_VP"] != 1 {
		t.Error("pred_VP = 0, want 1")
	}
}

func TestLoadDictionaryRejectsUnknownLabel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.yaml")
	data := `keywords:
  Bogus: ["x"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDictionary(path); err == nil {
		t.Error("LoadDictionary accepted unknown label")
	}
}

func TestLoadDictionaryMissingFile(t *testing.T) {
	if _, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadDictionary accepted missing file")
	}
}
