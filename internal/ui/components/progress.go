package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// ScoreBar shows how many questions of a batch were answered correctly.
type ScoreBar struct {
	Correct int
	Checked int
	Total   int
	Width   int
}

// NewScoreBar creates a score bar.
func NewScoreBar(correct, checked, total, width int) ScoreBar {
	return ScoreBar{
		Correct: correct,
		Checked: checked,
		Total:   total,
		Width:   width,
	}
}

// Percent returns the fraction of all questions answered correctly.
func (p ScoreBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Total)
}

// View renders "Score  ██████░░░░  2/5 correct · 3 checked".
func (p ScoreBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render("Score") + "  "
	summary := fmt.Sprintf("  %d/%d correct · %d checked", p.Correct, p.Total, p.Checked)

	barWidth := p.Width - lipgloss.Width(label) - lipgloss.Width(summary)
	if barWidth < 4 {
		barWidth = 4
	}

	correct := int(float64(barWidth) * p.Percent())
	correct = max(0, min(barWidth, correct))

	wrong := 0
	if p.Total > 0 {
		wrong = barWidth * (p.Checked - p.Correct) / p.Total
		wrong = max(0, min(barWidth-correct, wrong))
	}
	rest := barWidth - correct - wrong

	var b strings.Builder
	b.WriteString(label)
	b.WriteString(lipgloss.NewStyle().Background(theme.Success).Render(strings.Repeat(" ", correct)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Error).Render(strings.Repeat(" ", wrong)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", rest)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(summary))
	return b.String()
}
