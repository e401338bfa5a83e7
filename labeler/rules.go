package labeler

// Rule identifiers recorded in a prediction trace, in the order the rules
// can fire.
const (
	// RuleVPNegated fires when a VP-positive keyword and a VP negation
	// pattern co-occur in the same text.
	RuleVPNegated = "VP_negated"
	// RuleCynOverride fires when detected cynicism suppresses at least one
	// otherwise-positive label among VP, E_ext, Norm, and Mobi.
	RuleCynOverride = "Cyn_overrides_positive"
	// RuleMobiEnhancesVP is an annotation recording that mobilization
	// reinforces an already-positive voting intention. It never changes
	// the final booleans.
	RuleMobiEnhancesVP = "Mobi_enhances_VP"
)

// state is the working label-set a rule sequence mutates. final starts as
// the raw detection booleans and ends as the verdict; every rule that fires
// appends its identifier to trace.
type state struct {
	detected Detection
	negated  bool
	final    map[Label]bool
	trace    []string
}

// ruleFunc is one conflict-resolution step. Rules are pure with respect to
// everything except the state they are handed; they run in fixed order.
type ruleFunc func(*state)

// defaultRules is the resolution sequence: negation first, then the
// cynicism override, then the mobilization annotation.
var defaultRules = []ruleFunc{
	ruleVPNegation,
	ruleCynOverride,
	ruleMobiEnhancement,
}

// ruleVPNegation suppresses VP when a negation pattern was found in the same
// text as a VP-positive keyword. Only VP is subject to negation; other
// labels pass through unchanged.
func ruleVPNegation(st *state) {
	if !st.negated || !st.detected.Detected(VP) {
		return
	}
	st.final[VP] = false
	st.trace = append(st.trace, RuleVPNegated)
}

// ruleCynOverride forces VP, E_ext, Norm, and Mobi false whenever Cyn is
// detected. E_int and Info are exempt and keep their detected value: a
// commenter can be cynical while still researching or asking questions. The
// trace entry is appended only when the override actually suppressed
// something.
func ruleCynOverride(st *state) {
	if !st.detected.Detected(Cyn) {
		return
	}
	suppressed := false
	for _, label := range []Label{VP, EExt, Norm, Mobi} {
		if st.final[label] {
			suppressed = true
			st.final[label] = false
		}
	}
	if suppressed {
		st.trace = append(st.trace, RuleCynOverride)
	}
}

// ruleMobiEnhancement records that mobilization reinforces a voting
// intention that survived the earlier rules. Annotation only: VP and Mobi
// keep their truth values. The cynicism override has already run, so a
// cynical text can never reach this point with VP still true.
func ruleMobiEnhancement(st *state) {
	if st.detected.Detected(Cyn) {
		return
	}
	if st.final[VP] && st.final[Mobi] {
		st.trace = append(st.trace, RuleMobiEnhancesVP)
	}
}
