package labeler

// Label identifies one sociological coding category.
// The set of labels is closed; predictions always cover all of them.
type Label string

// The seven coding categories.
const (
	// VP marks voting intention: the commenter expresses intent or
	// encouragement to vote.
	VP Label = "VP"
	// EInt marks internal political efficacy: researching, studying,
	// forming one's own judgement.
	EInt Label = "E_int"
	// EExt marks external political efficacy: belief that one's vote or
	// voice changes political outcomes.
	EExt Label = "E_ext"
	// Cyn marks cynicism: distrust that participation matters.
	Cyn Label = "Cyn"
	// Norm marks normative appeal: civic-duty framing.
	Norm Label = "Norm"
	// Info marks information seeking: asking how, where, or whom.
	Info Label = "Info"
	// Mobi marks mobilization: calls for collective or social action.
	Mobi Label = "Mobi"
)

// Labels returns all labels in canonical column order. Detection scans,
// prediction maps, and CSV columns all follow this order.
func Labels() []Label {
	return []Label{VP, EInt, EExt, Cyn, Norm, Info, Mobi}
}

// Column returns the prediction column name for the label ("pred_VP" etc.),
// as written into coding sheets.
func (l Label) Column() string {
	return "pred_" + string(l)
}

// Valid reports whether l is one of the seven known labels.
func (l Label) Valid() bool {
	switch l {
	case VP, EInt, EExt, Cyn, Norm, Info, Mobi:
		return true
	}
	return false
}
