package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var fourOptions = []string{"a) Oxygen", "b) Carbon dioxide", "c) Glucose", "d) Water"}

func TestMultiChoiceStartsUnselected(t *testing.T) {
	mc := NewMultiChoice(fourOptions, 2)
	if mc.Selected != Unselected {
		t.Errorf("Selected = %d, want Unselected", mc.Selected)
	}
	if strings.Contains(mc.View(60), "(•)") {
		t.Error("no option should render as selected")
	}
}

func TestMultiChoiceNavigation(t *testing.T) {
	mc := NewMultiChoice(fourOptions, 2)

	if got := mc.NextIndex(); got != 0 {
		t.Errorf("NextIndex from none = %d, want 0", got)
	}
	if got := mc.PrevIndex(); got != 0 {
		t.Errorf("PrevIndex from none = %d, want 0", got)
	}

	mc.Selected = 3
	if got := mc.NextIndex(); got != 3 {
		t.Errorf("NextIndex at bottom = %d, want 3", got)
	}
	if got := mc.PrevIndex(); got != 2 {
		t.Errorf("PrevIndex = %d, want 2", got)
	}

	mc.Selected = 0
	if got := mc.PrevIndex(); got != 0 {
		t.Errorf("PrevIndex at top = %d, want 0", got)
	}
}

func TestMultiChoiceNavigationWithoutOptions(t *testing.T) {
	mc := NewMultiChoice(nil, -1)
	if mc.NextIndex() != Unselected || mc.PrevIndex() != Unselected {
		t.Error("navigation over no options should stay unselected")
	}
}

func TestMultiChoiceIndexForKey(t *testing.T) {
	mc := NewMultiChoice(fourOptions[:3], 0)

	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"a", 0, true},
		{"c", 2, true},
		{"d", Unselected, false}, // only three options
		{"1", 0, true},
		{"3", 2, true},
		{"4", Unselected, false},
		{"e", Unselected, false},
		{"enter", Unselected, false},
	}
	for _, tt := range tests {
		got, ok := mc.IndexForKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("IndexForKey(%q) = (%d, %v), want (%d, %v)", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMultiChoiceCheckedView(t *testing.T) {
	mc := NewMultiChoice(fourOptions, 2)
	mc.Selected = 0
	mc.Checked = true

	view := mc.View(60)
	if !strings.Contains(view, "c) Glucose ✓") {
		t.Errorf("correct option should be marked, got:\n%s", view)
	}
	if !strings.Contains(view, "a) Oxygen ✗") {
		t.Errorf("wrong selection should be marked, got:\n%s", view)
	}
}

func TestMultiChoiceCheckedViewUnknownAnswer(t *testing.T) {
	mc := NewMultiChoice(fourOptions, -1)
	mc.Selected = 1
	mc.Checked = true

	view := mc.View(60)
	if strings.Contains(view, "✓") || strings.Contains(view, "✗") {
		t.Errorf("no verdict marks expected when the answer is unknown, got:\n%s", view)
	}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "One", Disabled: true},
		{Label: "Two"},
		{Label: "Three", Disabled: true},
		{Label: "Four"},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("after down Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("after up Selected = %d, want 1", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	type pickedMsg struct{}
	m := NewMenu([]MenuItem{
		{Label: "Go", Action: func() tea.Cmd {
			return func() tea.Msg { return pickedMsg{} }
		}},
	})

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(pickedMsg); !ok {
		t.Error("expected pickedMsg")
	}
}

func TestButtonRequiresFocusAndEnabled(t *testing.T) {
	pressed := 0
	b := NewButton("Generate", func() tea.Cmd {
		pressed++
		return nil
	})

	b.Update(specialKey(tea.KeyEnter))
	if pressed != 0 {
		t.Error("unfocused button should ignore enter")
	}

	b.Focused = true
	b.Enabled = false
	b.Update(specialKey(tea.KeyEnter))
	if pressed != 0 {
		t.Error("disabled button should ignore enter")
	}

	b.Enabled = true
	b.Update(specialKey(tea.KeyEnter))
	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}
}

func TestPicker(t *testing.T) {
	p := NewPicker("Difficulty", []string{"Easy", "Medium", "Hard"})

	p, _ = p.Update(specialKey(tea.KeyRight))
	if p.Value() != "Easy" {
		t.Error("unfocused picker should not move")
	}

	p.Focused = true
	p, _ = p.Update(specialKey(tea.KeyRight))
	p, _ = p.Update(specialKey(tea.KeyRight))
	p, _ = p.Update(specialKey(tea.KeyRight))
	if p.Value() != "Hard" {
		t.Errorf("Value = %q, want Hard", p.Value())
	}
	p, _ = p.Update(specialKey(tea.KeyLeft))
	if p.Value() != "Medium" {
		t.Errorf("Value = %q, want Medium", p.Value())
	}
}

func TestStepperClamps(t *testing.T) {
	s := NewStepper("Questions", 12, 1, 10)
	if s.Value != 10 {
		t.Fatalf("Value = %d, want 10", s.Value)
	}

	s.Focused = true
	s, _ = s.Update(keyPress('+'))
	if s.Value != 10 {
		t.Errorf("Value = %d, want 10 at max", s.Value)
	}

	for range 20 {
		s, _ = s.Update(specialKey(tea.KeyLeft))
	}
	if s.Value != 1 {
		t.Errorf("Value = %d, want 1 at min", s.Value)
	}
}

func TestSpinnerIgnoresStaleTicks(t *testing.T) {
	s := NewSpinner("Generating MCQs...")
	s.Start()
	stale := SpinnerTickMsg{ID: s.id}
	s.Stop()
	s.Start()

	s, cmd := s.Update(stale)
	if cmd != nil || s.frame != 0 {
		t.Error("tick from a previous run should be ignored")
	}

	s, cmd = s.Update(SpinnerTickMsg{ID: s.id})
	if cmd == nil || s.frame != 1 {
		t.Error("current tick should advance the frame and schedule another")
	}

	s.Stop()
	if _, cmd = s.Update(SpinnerTickMsg{ID: s.id}); cmd != nil {
		t.Error("stopped spinner should not tick")
	}
}

func TestScoreBar(t *testing.T) {
	bar := NewScoreBar(2, 3, 4, 60)
	if bar.Percent() != 0.5 {
		t.Errorf("Percent = %v, want 0.5", bar.Percent())
	}
	if !strings.Contains(bar.View(), "2/4 correct · 3 checked") {
		t.Errorf("unexpected view: %q", bar.View())
	}
	if NewScoreBar(0, 0, 0, 60).Percent() != 0 {
		t.Error("empty batch should score zero")
	}
}
