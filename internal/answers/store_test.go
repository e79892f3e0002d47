package answers

import (
	"testing"

	"github.com/abhisek/mcqgen/internal/mcq"
)

func question(t *testing.T) mcq.Question {
	t.Helper()
	qs, err := mcq.Parse("Question 1: What is 2+2?\na) 3\nb) 4\nc) 5\nd) 6\nCorrect Answer: b) 4\nExplanation: Basic arithmetic.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return qs[0]
}

func TestResetBatchClearsAllStates(t *testing.T) {
	s := NewStore()
	q := question(t)
	ids := []mcq.QuestionID{"q0", "q1", "q2"}
	for _, id := range ids {
		s.RecordCheck(id, 1, q)
	}

	s.ResetBatch()

	for _, id := range ids {
		if _, ok := s.Get(id); ok {
			t.Errorf("%s still present after ResetBatch", id)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestCheckLocksInLatestSelection(t *testing.T) {
	s := NewStore()
	q := question(t)

	s.RecordSelection(q.ID, 0, q)
	s.RecordSelection(q.ID, 2, q)
	s.RecordCheck(q.ID, 1, q)

	st, ok := s.Get(q.ID)
	if !ok {
		t.Fatal("expected state")
	}
	if !st.Checked {
		t.Error("expected checked")
	}
	if st.Selected != 1 {
		t.Errorf("Selected = %d, want 1", st.Selected)
	}
	if Evaluate(st).Verdict != VerdictCorrect {
		t.Errorf("verdict = %v, want correct", Evaluate(st).Verdict)
	}
}

func TestRecordCheckIsIdempotent(t *testing.T) {
	q := question(t)

	once := NewStore()
	once.RecordCheck(q.ID, 3, q)

	twice := NewStore()
	twice.RecordCheck(q.ID, 3, q)
	twice.RecordCheck(q.ID, 3, q)

	a, _ := once.Get(q.ID)
	b, _ := twice.Get(q.ID)
	if !statesEqual(a, b) {
		t.Errorf("states differ: %+v vs %+v", a, b)
	}
}

func TestRecordSelectionKeepsCheckedFlag(t *testing.T) {
	s := NewStore()
	q := question(t)

	s.RecordCheck(q.ID, 0, q)
	s.RecordSelection(q.ID, 1, q)

	st, _ := s.Get(q.ID)
	if !st.Checked {
		t.Error("selection change should not un-check")
	}
	if st.Selected != 1 {
		t.Errorf("Selected = %d, want 1", st.Selected)
	}
}

func TestRecordCheckRecapturesQuestion(t *testing.T) {
	s := NewStore()
	q := question(t)

	stale := q
	stale.CorrectIndex = mcq.UnknownIndex
	s.RecordSelection(q.ID, 1, stale)
	s.RecordCheck(q.ID, 1, q)

	st, _ := s.Get(q.ID)
	if st.CorrectIndex != 1 {
		t.Errorf("CorrectIndex = %d, want 1", st.CorrectIndex)
	}
}

func TestOutOfRangeSelectionBecomesNoSelection(t *testing.T) {
	s := NewStore()
	q := question(t)

	for _, sel := range []int{-5, 4, 100} {
		s.RecordCheck(q.ID, sel, q)
		st, _ := s.Get(q.ID)
		if st.Selected != NoSelection {
			t.Errorf("Selected(%d) = %d, want NoSelection", sel, st.Selected)
		}
		if Evaluate(st).Verdict != VerdictNoSelection {
			t.Errorf("verdict = %v, want no-selection", Evaluate(st).Verdict)
		}
	}
}

func TestScore(t *testing.T) {
	s := NewStore()
	q := question(t)
	unknown := q
	unknown.CorrectIndex = mcq.UnknownIndex

	s.RecordCheck("q0", 1, q)       // correct
	s.RecordCheck("q1", 0, q)       // incorrect
	s.RecordCheck("q2", 2, unknown) // unknown
	s.RecordSelection("q3", 1, q)   // not checked

	got := s.Score()
	want := Score{Checked: 3, Correct: 1, Unknown: 1}
	if got != want {
		t.Errorf("Score = %+v, want %+v", got, want)
	}
}

func statesEqual(a, b State) bool {
	if a.Selected != b.Selected || a.CorrectIndex != b.CorrectIndex ||
		a.Explanation != b.Explanation || a.Checked != b.Checked || len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if a.Options[i] != b.Options[i] {
			return false
		}
	}
	return true
}
