package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// Button is a styled button component. It only reacts to Enter while it is
// both enabled and focused.
type Button struct {
	Label   string
	Enabled bool
	Focused bool
	OnPress func() tea.Cmd
}

// NewButton creates a new enabled, unfocused button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Enabled: true,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Enabled || !b.Focused {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	prefix := "    "
	if b.Focused {
		prefix = "  ▸ "
	}
	label := prefix + b.Label + " "
	if b.Enabled && b.Focused {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
