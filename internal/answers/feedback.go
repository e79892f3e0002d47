package answers

// Verdict classifies a checked answer.
type Verdict int

const (
	// VerdictPending means the answer has not been checked yet.
	VerdictPending Verdict = iota
	// VerdictNoSelection means the user checked without choosing an option.
	VerdictNoSelection
	VerdictCorrect
	VerdictIncorrect
	// VerdictUnknown means the correct answer could not be determined.
	VerdictUnknown
)

func (v Verdict) String() string {
	switch v {
	case VerdictPending:
		return "pending"
	case VerdictNoSelection:
		return "no-selection"
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Feedback is everything needed to render the result of a check. Labels are
// empty rather than out of range when an index is unusable.
type Feedback struct {
	Verdict     Verdict
	Chosen      string
	Correct     string
	Explanation string
}

// Evaluate derives feedback from a state. It never indexes out of bounds.
func Evaluate(st State) Feedback {
	fb := Feedback{Explanation: st.Explanation}

	if st.SelectionValid() {
		fb.Chosen = st.Options[st.Selected]
	}
	correctKnown := st.CorrectIndex >= 0 && st.CorrectIndex < len(st.Options)
	if correctKnown {
		fb.Correct = st.Options[st.CorrectIndex]
	}

	switch {
	case !st.Checked:
		fb.Verdict = VerdictPending
	case !st.SelectionValid():
		fb.Verdict = VerdictNoSelection
	case !correctKnown:
		fb.Verdict = VerdictUnknown
	case st.Selected == st.CorrectIndex:
		fb.Verdict = VerdictCorrect
	default:
		fb.Verdict = VerdictIncorrect
	}
	return fb
}
