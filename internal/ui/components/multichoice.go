package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// Unselected marks a MultiChoice with no option picked.
const Unselected = -1

// MultiChoice renders a single-choice selector over labelled options. It
// holds no state of its own beyond what it is given: the owner decides what
// is selected and whether the answer has been checked.
type MultiChoice struct {
	Options      []string
	Selected     int
	CorrectIndex int
	Checked      bool
	Focused      bool
}

// NewMultiChoice creates a selector with nothing selected.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		Selected:     Unselected,
		CorrectIndex: correctIndex,
	}
}

// NextIndex returns the option below the selection. With nothing selected it
// returns the first option.
func (m MultiChoice) NextIndex() int {
	switch {
	case len(m.Options) == 0:
		return Unselected
	case m.Selected < 0:
		return 0
	case m.Selected < len(m.Options)-1:
		return m.Selected + 1
	}
	return m.Selected
}

// PrevIndex returns the option above the selection. With nothing selected it
// returns the first option.
func (m MultiChoice) PrevIndex() int {
	switch {
	case len(m.Options) == 0:
		return Unselected
	case m.Selected <= 0:
		return 0
	case m.Selected >= len(m.Options):
		return len(m.Options) - 1
	}
	return m.Selected - 1
}

// IndexForKey maps "a"-"d" and "1"-"4" to an option index. Letters resolve
// by position, the same way the parser resolves the answer key.
func (m MultiChoice) IndexForKey(key string) (int, bool) {
	if len(key) != 1 {
		return Unselected, false
	}
	var idx int
	switch c := key[0]; {
	case c >= 'a' && c <= 'd':
		idx = mcq.LetterIndex(c)
	case c >= '1' && c <= '4':
		idx = int(c - '1')
	default:
		return Unselected, false
	}
	if idx >= len(m.Options) {
		return Unselected, false
	}
	return idx, true
}

// View renders the options, one per line, wrapped to width.
func (m MultiChoice) View(width int) string {
	correctKnown := m.CorrectIndex >= 0 && m.CorrectIndex < len(m.Options)

	var b strings.Builder
	for i, opt := range m.Options {
		marker := "( )"
		if i == m.Selected {
			marker = "(•)"
		}

		style := theme.Unselected
		suffix := ""
		switch {
		case m.Checked && correctKnown && i == m.CorrectIndex:
			style = theme.Correct
			suffix = " ✓"
		case m.Checked && i == m.Selected && correctKnown:
			style = theme.Incorrect
			suffix = " ✗"
		case i == m.Selected && m.Focused:
			style = theme.Selected
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		}

		line := marker + " " + opt + suffix
		if width > 6 {
			line = lipgloss.NewStyle().Width(width - 2).Render(line)
		}
		b.WriteString("  ")
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
