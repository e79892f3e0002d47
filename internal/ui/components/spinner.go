package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances a Spinner. ID ties the tick to one spinner so
// that ticks from a stopped spinner are ignored.
type SpinnerTickMsg struct {
	ID   int
	Time time.Time
}

// Spinner is a tick-driven loading indicator.
type Spinner struct {
	Label  string
	id     int
	frame  int
	active bool
}

// NewSpinner creates a stopped spinner.
func NewSpinner(label string) Spinner {
	return Spinner{Label: label}
}

// Start activates the spinner and returns its first tick. Each start gets a
// new ID so stale ticks from an earlier run die out.
func (s *Spinner) Start() tea.Cmd {
	s.id++
	s.frame = 0
	s.active = true
	return s.tick()
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.active = false
}

// Active reports whether the spinner is running.
func (s Spinner) Active() bool {
	return s.active
}

// Update advances the frame on its own ticks.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	tick, ok := msg.(SpinnerTickMsg)
	if !ok || !s.active || tick.ID != s.id {
		return s, nil
	}
	s.frame = (s.frame + 1) % len(spinnerFrames)
	return s, s.tick()
}

func (s Spinner) tick() tea.Cmd {
	id := s.id
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg{ID: id, Time: t}
	})
}

// View renders the current frame followed by the label.
func (s Spinner) View() string {
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(spinnerFrames[s.frame]) +
		" " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
}
