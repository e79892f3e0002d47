package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/ui/components"
	"github.com/abhisek/mcqgen/internal/ui/theme"
)

const titleFull = ` ███╗   ███╗ ██████╗ ██████╗
 ████╗ ████║██╔════╝██╔═══██╗
 ██╔████╔██║██║     ██║   ██║
 ██║╚██╔╝██║██║     ██║▄▄ ██║
 ██║ ╚═╝ ██║╚██████╗╚██████╔╝
 ╚═╝     ╚═╝ ╚═════╝ ╚══▀▀═╝`

const titleCompact = "M · C · Q"

const tagline = "Multiple-choice quizzes on any topic"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	return max(20, min(60, frameWidth-6))
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	block := style.Render(title) + "\n\n" + theme.Subtitle.Render(tagline)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each enabled menu item as a fixed-width button with
// the selected item's description underneath. Compact terminals get the
// plain list instead.
func renderMenu(menu components.Menu, cw int, compact bool) string {
	var block string
	if compact {
		block = menu.View()
	} else {
		block = renderButtons(menu)
		if sel := menu.Selected; sel >= 0 && sel < len(menu.Items) && menu.Items[sel].Description != "" {
			block += "\n\n" + theme.Hint.Render(menu.Items[sel].Description)
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

func renderButtons(menu components.Menu) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := normalBtn.Foreground(theme.TextDim)

	buttons := make([]string, 0, len(menu.Items))
	for i, item := range menu.Items {
		switch {
		case item.Disabled:
			buttons = append(buttons, disabledBtn.Render(item.Label))
		case i == menu.Selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+item.Label))
		default:
			buttons = append(buttons, normalBtn.Render(item.Label))
		}
	}
	return strings.Join(buttons, "\n")
}

// renderConfigBanner renders a warning when no generation service is
// configured.
func renderConfigBanner(err error, cw int) string {
	return theme.Warning.
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + err.Error())
}

// renderFrame wraps content in a double-border frame, centered vertically
// and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
