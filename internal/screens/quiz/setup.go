package quiz

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/samber/lo"

	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/ui/components"
)

type setupField int

const (
	fieldTopic setupField = iota
	fieldDifficulty
	fieldCount
	fieldGenerate
	numSetupFields
)

// setupForm collects the generation inputs.
type setupForm struct {
	topic      components.TextInput
	difficulty components.Picker
	count      components.Stepper
	generate   components.Button
	focus      setupField
}

func newSetupForm(enabled bool) setupForm {
	f := setupForm{
		topic: components.NewTextInput("Topic", "e.g. Photosynthesis", 120),
		difficulty: components.NewPicker("Difficulty",
			lo.Map(mcq.Difficulties, func(d mcq.Difficulty, _ int) string { return string(d) })),
		count: components.NewStepper("Number of questions", mcq.DefaultCount, mcq.MinCount, mcq.MaxCount),
		generate: components.NewButton("Generate MCQs", func() tea.Cmd {
			return func() tea.Msg { return submitMsg{} }
		}),
	}
	f.generate.Enabled = enabled
	f.applyFocus()
	return f
}

// request builds a generation request from the current field values.
func (f setupForm) request() mcq.Request {
	return mcq.Request{
		Topic:      f.topic.Value(),
		Difficulty: mcq.Difficulty(f.difficulty.Value()),
		Count:      f.count.Value,
	}
}

// setRequest fills the form from a previous request.
func (f *setupForm) setRequest(req mcq.Request) {
	f.topic.SetValue(req.Topic)
	if i := lo.IndexOf(mcq.Difficulties, req.Difficulty); i >= 0 {
		f.difficulty.Index = i
	}
	f.count.Set(req.Count)
}

func (f *setupForm) setFocus(field setupField) tea.Cmd {
	f.focus = (field + numSetupFields) % numSetupFields
	return f.applyFocus()
}

func (f *setupForm) applyFocus() tea.Cmd {
	f.difficulty.Focused = f.focus == fieldDifficulty
	f.count.Focused = f.focus == fieldCount
	f.generate.Focused = f.focus == fieldGenerate
	if f.focus == fieldTopic {
		return f.topic.Focus()
	}
	f.topic.Blur()
	return nil
}

// update routes a message to the focused field. Tab, Shift+Tab and the
// vertical arrows move focus; Enter advances until it reaches the button.
func (f setupForm) update(msg tea.Msg) (setupForm, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		next := f.focus
		switch kmsg.String() {
		case "tab", "down":
			next++
		case "shift+tab", "up":
			next--
		case "enter":
			if f.focus != fieldGenerate {
				next++
			}
		}
		if next != f.focus {
			cmd := f.setFocus(next)
			return f, cmd
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTopic:
		f.topic, cmd = f.topic.Update(msg)
	case fieldDifficulty:
		f.difficulty, cmd = f.difficulty.Update(msg)
	case fieldCount:
		f.count, cmd = f.count.Update(msg)
	case fieldGenerate:
		f.generate, cmd = f.generate.Update(msg)
	}
	return f, cmd
}

// inputError converts a validation error into the inline form message.
func inputError(err error) string {
	if errors.Is(err, mcq.ErrEmptyTopic) {
		return "Please enter a topic"
	}
	return err.Error()
}
