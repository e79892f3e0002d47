package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqgen/internal/answers"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/router"
	"github.com/abhisek/mcqgen/internal/screen"
	"github.com/abhisek/mcqgen/internal/screens/history"
	"github.com/abhisek/mcqgen/internal/screens/quiz"
	"github.com/abhisek/mcqgen/internal/store"
	"github.com/abhisek/mcqgen/internal/ui/components"
	"github.com/abhisek/mcqgen/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu      components.Menu
	configErr error
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. generator may be nil, in which case
// configErr says why; the quiz screen then shows the error instead of
// generating. eventRepo may be nil, which disables history.
func New(generator mcq.Generator, configErr error, eventRepo store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:       "NEW QUIZ",
			Description: "Generate questions on a topic of your choice",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quiz.New(generator, answers.NewStore(), configErr)}
				}
			},
		},
		{
			Label:       "SAMPLE QUESTION",
			Description: "Try the quiz flow without generating anything",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quiz.NewSample()}
				}
			},
		},
		{
			Label:       "HISTORY",
			Description: "Past generations and their outcomes",
			Disabled:    eventRepo == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(eventRepo)}
				}
			},
		},
		{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		configErr: configErr,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := contentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if h.configErr != nil {
		sections = append(sections, renderConfigBanner(h.configErr, cw))
	}
	sections = append(sections, renderMenu(h.menu, cw, compact))

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
