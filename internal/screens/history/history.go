package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/router"
	"github.com/abhisek/mcqgen/internal/screen"
	"github.com/abhisek/mcqgen/internal/store"
	"github.com/abhisek/mcqgen/internal/ui/layout"
	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// pageSize is how many generations are loaded.
const pageSize = 50

type historyLoadedMsg struct {
	Generations []store.GenerationEventRecord
	Err         error
}

// HistoryScreen lists past generations, newest first.
type HistoryScreen struct {
	eventRepo   store.EventRepo
	generations []store.GenerationEventRecord
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		gens, err := s.eventRepo.QueryGenerations(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Generations: gens, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.generations = msg.Generations
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.generations)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.generations) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes generated yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.generations {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-24s  %-6s  %d/%d  %s",
			prefix, g.Timestamp.Format("Jan 02 15:04"), truncate(g.Topic, 24),
			g.Difficulty, g.Parsed, g.Requested, outcomeLabel(g.Outcome))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range details(g) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(outcomeColor(g.Outcome)).Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func details(g store.GenerationEventRecord) []string {
	lines := []string{fmt.Sprintf("Model: %s   Batch: %s", g.Model, g.BatchID)}
	if g.Degraded > 0 {
		lines = append(lines, fmt.Sprintf("%d question(s) only partly parsed", g.Degraded))
	}
	if g.ErrorMessage != "" {
		lines = append(lines, "Error: "+g.ErrorMessage)
	}
	return lines
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case mcq.OutcomeOK:
		return "ok"
	case mcq.OutcomeUnparseable:
		return "unparseable"
	case mcq.OutcomeFailed:
		return "failed"
	default:
		return outcome
	}
}

func outcomeColor(outcome string) color.Color {
	switch outcome {
	case mcq.OutcomeOK:
		return theme.Success
	case mcq.OutcomeUnparseable:
		return theme.Accent
	case mcq.OutcomeFailed:
		return theme.Error
	default:
		return theme.TextDim
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
