// Package answers holds per-question answer state for the active batch.
//
// A Store is owned by a single quiz screen and is only touched from the UI
// update loop, so it does no locking of its own.
package answers

import (
	"github.com/abhisek/mcqgen/internal/mcq"
)

// NoSelection marks a state where the user has not picked an option.
const NoSelection = -1

// State is the answer state for one question identity.
type State struct {
	// Selected indexes Options, or is NoSelection.
	Selected int

	// CorrectIndex is captured from the question, or mcq.UnknownIndex.
	CorrectIndex int

	// Options are the labelled option strings shown to the user.
	Options []string

	Explanation string

	// Checked is set once the user has asked for feedback.
	Checked bool
}

// SelectionValid reports whether Selected points at an option.
func (s State) SelectionValid() bool {
	return s.Selected >= 0 && s.Selected < len(s.Options)
}

// Score summarizes checked answers in the current batch.
type Score struct {
	Checked int
	Correct int
	Unknown int // checked questions whose answer key is unknown
}

// Store maps question identities to their answer state.
type Store struct {
	states map[mcq.QuestionID]State
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{states: make(map[mcq.QuestionID]State)}
}

// RecordSelection stores the current selection for q without marking it
// checked. A previously checked state stays checked.
func (s *Store) RecordSelection(id mcq.QuestionID, selected int, q mcq.Question) {
	st, ok := s.states[id]
	if !ok {
		st = snapshot(q)
	}
	st.Selected = clampSelection(selected, len(st.Options))
	s.states[id] = st
}

// RecordCheck locks in selected as the checked answer. The correct index,
// options and explanation are re-captured from q on every check, so the
// state always reflects the question being shown. Calling it twice with the
// same arguments leaves the same state.
func (s *Store) RecordCheck(id mcq.QuestionID, selected int, q mcq.Question) {
	st := snapshot(q)
	st.Selected = clampSelection(selected, len(st.Options))
	st.Checked = true
	s.states[id] = st
}

// Get returns the state for id and whether it exists.
func (s *Store) Get(id mcq.QuestionID) (State, bool) {
	st, ok := s.states[id]
	return st, ok
}

// ResetBatch discards every state. Call it before showing a new batch so
// that identities from the previous batch cannot leak into the new one.
func (s *Store) ResetBatch() {
	clear(s.states)
}

// Len returns the number of stored states.
func (s *Store) Len() int {
	return len(s.states)
}

// Score tallies checked states.
func (s *Store) Score() Score {
	var sc Score
	for _, st := range s.states {
		if !st.Checked {
			continue
		}
		sc.Checked++
		switch Evaluate(st).Verdict {
		case VerdictCorrect:
			sc.Correct++
		case VerdictUnknown:
			sc.Unknown++
		}
	}
	return sc
}

func snapshot(q mcq.Question) State {
	return State{
		Selected:     NoSelection,
		CorrectIndex: q.CorrectIndex,
		Options:      q.Labels(),
		Explanation:  q.Explanation,
	}
}

func clampSelection(selected, n int) int {
	if selected < 0 || selected >= n {
		return NoSelection
	}
	return selected
}
