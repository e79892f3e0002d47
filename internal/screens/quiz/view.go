package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/answers"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/ui/components"
	"github.com/abhisek/mcqgen/internal/ui/layout"
	"github.com/abhisek/mcqgen/internal/ui/theme"
)

const maxCardWidth = 90

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseGenerating:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.spinner.View())
	case phaseQuiz:
		return s.renderQuiz(width, height)
	}
	return s.renderSetup(width)
}

func cardWidth(width int) int {
	return max(20, min(maxCardWidth, width-4))
}

// renderSetup renders the generation form with any banners above it.
func (s *QuizScreen) renderSetup(width int) string {
	cw := cardWidth(width)
	textWidth := cw - 6

	var b strings.Builder
	b.WriteString(theme.Title.Width(textWidth).Render("Create a quiz"))
	b.WriteString("\n\n")

	if s.configErr != nil {
		b.WriteString(theme.Warning.Render(layout.Wrap("⚠ "+s.configErr.Error(), textWidth)))
		b.WriteString("\n\n")
	}
	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(layout.Wrap(s.errMsg, textWidth)))
		b.WriteString("\n\n")
	}

	b.WriteString(s.form.topic.View())
	b.WriteString("\n\n")
	b.WriteString(s.form.difficulty.View())
	b.WriteString("\n\n")
	b.WriteString(s.form.count.View())
	b.WriteString("\n\n")
	b.WriteString(s.form.generate.View())

	if s.inputErr != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.inputErr))
	}

	card := theme.Card.Width(cw).Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderQuiz renders the batch summary and one panel per question, scrolled
// so that the focused panel is visible.
func (s *QuizScreen) renderQuiz(width, height int) string {
	cw := cardWidth(width)

	var top []string
	if s.notice != "" {
		top = append(top, theme.Correct.Render("✓ "+s.notice))
	}
	if n := mcq.DegradedCount(s.batch.Issues); n > 0 {
		top = append(top, theme.Warning.Render(fmt.Sprintf("⚠ %d of %d questions could not be fully parsed", n, len(s.batch.Questions))))
	}
	sc := s.answers.Score()
	top = append(top, components.NewScoreBar(sc.Correct, sc.Checked, len(s.batch.Questions), cw).View())

	var lines []string
	for _, l := range top {
		lines = append(lines, strings.Split(l, "\n")...)
	}
	lines = append(lines, "")

	start, end := 0, 0
	for i, q := range s.batch.Questions {
		panel := strings.Split(s.renderPanel(i, q, cw), "\n")
		if i == s.current {
			start, end = len(lines), len(lines)+len(panel)
		}
		lines = append(lines, panel...)
	}

	offset := scrollOffset(start, end, len(lines), height)
	lines = lines[offset:min(len(lines), offset+max(height, 0))]

	block := strings.Join(lines, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// scrollOffset returns the first line to show so that [start, end) fits in a
// window of height lines, preferring the top of the content.
func scrollOffset(start, end, total, height int) int {
	if height <= 0 || end <= height {
		return 0
	}
	offset := start
	if end-start < height {
		offset = end - height
	}
	return max(0, min(offset, total-height))
}

func (s *QuizScreen) renderPanel(i int, q mcq.Question, cw int) string {
	focused := i == s.current
	textWidth := cw - 6

	arrow := "▾"
	if s.collapsed[q.ID] {
		arrow = "▸"
	}
	headerStyle := theme.Label
	if focused {
		headerStyle = theme.Selected
	}
	header := headerStyle.Render(fmt.Sprintf("%s Question %d", arrow, q.Number))

	cardStyle := theme.BlurredCard
	if focused {
		cardStyle = theme.FocusedCard
	}
	if s.collapsed[q.ID] {
		return cardStyle.Width(cw).Render(header)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Render(layout.Wrap(q.Text, textWidth)))
	b.WriteString("\n\n")

	if q.HasOptions() {
		mc := s.selector(q)
		mc.Focused = focused
		b.WriteString(mc.View(textWidth))
	} else {
		b.WriteString(theme.Incorrect.Render("Could not parse options for this question."))
	}
	b.WriteString("\n\n")

	check := components.NewButton("Check Answer", nil)
	check.Focused = focused
	b.WriteString(check.View())

	if st, ok := s.answers.Get(q.ID); ok {
		if fb := renderFeedback(answers.Evaluate(st), textWidth); fb != "" {
			b.WriteString("\n\n")
			b.WriteString(fb)
		}
	}

	return cardStyle.Width(cw).Render(b.String())
}

// renderFeedback renders the result of a checked answer. Unchecked answers
// render nothing.
func renderFeedback(fb answers.Feedback, width int) string {
	var lines []string
	switch fb.Verdict {
	case answers.VerdictPending:
		return ""
	case answers.VerdictNoSelection:
		return theme.Warning.Render("Select an answer first.")
	case answers.VerdictCorrect:
		lines = append(lines, theme.Correct.Render(layout.Wrap("✅ Correct! "+fb.Correct, width)))
	case answers.VerdictIncorrect:
		lines = append(lines,
			theme.Incorrect.Render(layout.Wrap("❌ Wrong! You selected: "+fb.Chosen, width)),
			theme.Warning.Render(layout.Wrap("The correct answer is: "+fb.Correct, width)),
		)
	case answers.VerdictUnknown:
		lines = append(lines, theme.Warning.Render(layout.Wrap("Could not determine the correct answer for this question.", width)))
	}
	if fb.Explanation != "" {
		lines = append(lines, theme.Notice.Render(layout.Wrap("Explanation: "+fb.Explanation, width)))
	}
	return strings.Join(lines, "\n")
}
