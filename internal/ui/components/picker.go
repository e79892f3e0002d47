package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// Picker chooses one value from a short fixed list with left/right.
type Picker struct {
	Label   string
	Choices []string
	Index   int
	Focused bool
}

// NewPicker creates a picker with the first choice selected.
func NewPicker(label string, choices []string) Picker {
	return Picker{Label: label, Choices: choices}
}

// Update handles left/right while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.Focused {
		return p, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if p.Index > 0 {
			p.Index--
		}
	case "right", "l":
		if p.Index < len(p.Choices)-1 {
			p.Index++
		}
	}
	return p, nil
}

// Value returns the selected choice.
func (p Picker) Value() string {
	if p.Index < 0 || p.Index >= len(p.Choices) {
		return ""
	}
	return p.Choices[p.Index]
}

// View renders the label and every choice, highlighting the selected one.
func (p Picker) View() string {
	parts := make([]string, len(p.Choices))
	for i, c := range p.Choices {
		if i == p.Index {
			style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
			if p.Focused {
				style = theme.Selected
			}
			parts[i] = style.Render("[" + c + "]")
		} else {
			parts[i] = theme.Unselected.Render(" " + c + " ")
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, labelFor(p.Label, p.Focused), "  "+strings.Join(parts, " "))
}

// Stepper picks an integer within [Min, Max] with left/right or -/+.
type Stepper struct {
	Label   string
	Value   int
	Min     int
	Max     int
	Focused bool
}

// NewStepper creates a stepper clamped to [lo, hi].
func NewStepper(label string, value, lo, hi int) Stepper {
	s := Stepper{Label: label, Min: lo, Max: hi}
	s.Set(value)
	return s
}

// Set assigns v, clamped to the stepper's range.
func (s *Stepper) Set(v int) {
	s.Value = max(s.Min, min(s.Max, v))
}

// Update handles left/right and -/+ while focused.
func (s Stepper) Update(msg tea.Msg) (Stepper, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.Focused {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h", "-":
		s.Set(s.Value - 1)
	case "right", "l", "+", "=":
		s.Set(s.Value + 1)
	}
	return s, nil
}

// View renders the label and "◂ N ▸" with the range.
func (s Stepper) View() string {
	style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if s.Focused {
		style = theme.Selected
	}
	left, right := "◂", "▸"
	if s.Value <= s.Min {
		left = " "
	}
	if s.Value >= s.Max {
		right = " "
	}
	body := style.Render(fmt.Sprintf("%s %2d %s", left, s.Value, right)) +
		theme.Hint.Render(fmt.Sprintf("  (%d-%d)", s.Min, s.Max))
	return lipgloss.JoinVertical(lipgloss.Left, labelFor(s.Label, s.Focused), "  "+body)
}

func labelFor(label string, focused bool) string {
	if focused {
		return theme.Label.Foreground(theme.Primary).Render(label)
	}
	return theme.Label.Render(label)
}
