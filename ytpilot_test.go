package ytpilot

import (
	"testing"

	"ytpilot/labeler"
)

func TestLabel(t *testing.T) {
	result, err := Label("みんなで投票に行こう！友達も誘って")
	if err != nil {
		t.Fatalf("Label failed: %v", err)
	}

	if !result.Final[labeler.VP] || !result.Final[labeler.Mobi] {
		t.Errorf("final = %v, want VP and Mobi true", result.Final)
	}
	if len(result.Trace) != 1 || result.Trace[0] != labeler.RuleMobiEnhancesVP {
		t.Errorf("trace = %v, want [%s]", result.Trace, labeler.RuleMobiEnhancesVP)
	}
}

func TestLabelColumns(t *testing.T) {
	cols, err := LabelColumns("投票に行くけど、どうせ変わらないよね")
	if err != nil {
		t.Fatalf("LabelColumns failed: %v", err)
	}

	if cols["pred_Cyn"] != 1 {
		t.Error("pred_Cyn = 0, want 1")
	}
	if cols["pred_VP"] != 0 {
		t.Error("pred_VP = 1, want 0")
	}
	if len(cols) != 7 {
		t.Errorf("got %d columns, want 7", len(cols))
	}
}
