package quiz

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqgen/internal/answers"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/screen"
	"github.com/abhisek/mcqgen/internal/ui/components"
	"github.com/abhisek/mcqgen/internal/ui/layout"
)

type phase int

const (
	phaseSetup phase = iota
	phaseGenerating
	phaseQuiz
)

// QuizScreen drives one quiz: it collects the request, runs generation and
// presents the resulting questions, scoring answers through an answers.Store.
type QuizScreen struct {
	generator mcq.Generator
	configErr error
	answers   *answers.Store
	sample    bool

	phase   phase
	form    setupForm
	spinner components.Spinner

	request   mcq.Request
	batch     *mcq.Batch
	current   int
	collapsed map[mcq.QuestionID]bool

	inputErr string
	errMsg   string
	notice   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen at the setup form. A non-nil configErr means no
// generator could be built: the error is shown and generation is disabled.
func New(generator mcq.Generator, store *answers.Store, configErr error) *QuizScreen {
	if generator == nil && configErr == nil {
		configErr = llm.ErrNotConfigured
	}
	return &QuizScreen{
		generator: generator,
		configErr: configErr,
		answers:   store,
		form:      newSetupForm(configErr == nil),
		spinner:   components.NewSpinner("Generating MCQs..."),
		collapsed: make(map[mcq.QuestionID]bool),
	}
}

// NewSample creates a QuizScreen showing the built-in sample question. It
// needs no generator and keeps its answers apart from any generated quiz.
func NewSample() *QuizScreen {
	s := &QuizScreen{
		answers:   answers.NewStore(),
		sample:    true,
		collapsed: make(map[mcq.QuestionID]bool),
	}
	s.install(mcq.SampleBatch())
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.phase == phaseSetup {
		return s.form.topic.Init()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	switch {
	case s.sample:
		return "Sample Question"
	case s.phase == phaseQuiz && s.batch != nil:
		return "Quiz: " + s.batch.Request.Topic
	default:
		return "New Quiz"
	}
}

// Status shows the running score once a batch is on screen.
func (s *QuizScreen) Status() string {
	if s.phase != phaseQuiz || s.batch == nil {
		return ""
	}
	sc := s.answers.Score()
	return fmt.Sprintf("✓ %d/%d", sc.Correct, sc.Checked)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSetup:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "←→", Description: "Change"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseGenerating:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "a-d", Description: "Choose"},
		{Key: "Enter", Description: "Check"},
		{Key: "Tab", Description: "Next question"},
		{Key: "Space", Description: "Collapse"},
	}
	if s.sample {
		return append(hints, layout.KeyHint{Key: "r", Description: "Reset"})
	}
	return append(hints,
		layout.KeyHint{Key: "g", Description: "Regenerate"},
		layout.KeyHint{Key: "r", Description: "Start over"},
	)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		return s.handleBatchReady(msg)

	case selectMsg:
		return s.handleSelect(msg)

	case checkMsg:
		return s.handleCheck(msg)

	case submitMsg:
		return s.submit()

	case components.SpinnerTickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch s.phase {
		case phaseGenerating:
			return s, nil
		case phaseQuiz:
			return s.handleQuizKey(msg)
		}
	}

	if s.phase == phaseSetup {
		var cmd tea.Cmd
		s.form, cmd = s.form.update(msg)
		return s, cmd
	}
	return s, nil
}

// submit validates the form and starts generation.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	if s.phase != phaseSetup || s.configErr != nil {
		return s, nil
	}
	req := s.form.request()
	if err := req.Validate(); err != nil {
		s.inputErr = inputError(err)
		return s, nil
	}
	s.inputErr = ""
	return s, s.startGeneration(req)
}

func (s *QuizScreen) startGeneration(req mcq.Request) tea.Cmd {
	s.request = req
	s.errMsg = ""
	s.notice = ""
	s.phase = phaseGenerating
	s.form.topic.Blur()
	return tea.Batch(s.spinner.Start(), s.generateCmd(req))
}

// generateCmd runs the blocking generation call off the update loop.
func (s *QuizScreen) generateCmd(req mcq.Request) tea.Cmd {
	gen := s.generator
	return func() tea.Msg {
		batch, err := gen.Generate(context.Background(), req)
		return batchReadyMsg{Request: req, Batch: batch, Err: err}
	}
}

func (s *QuizScreen) handleBatchReady(msg batchReadyMsg) (screen.Screen, tea.Cmd) {
	if s.phase != phaseGenerating {
		return s, nil
	}
	s.spinner.Stop()

	if msg.Err != nil || msg.Batch == nil {
		s.answers.ResetBatch()
		s.batch = nil
		s.errMsg = describeFailure(msg.Err)
		s.phase = phaseSetup
		s.form.setRequest(msg.Request)
		return s, s.form.setFocus(fieldGenerate)
	}

	s.install(msg.Batch)
	s.notice = fmt.Sprintf("Generated %d MCQs on %s (%s)",
		len(msg.Batch.Questions), msg.Request.Topic, msg.Request.Difficulty)
	return s, nil
}

// install shows batch, discarding every answer from the previous one first.
func (s *QuizScreen) install(batch *mcq.Batch) {
	s.answers.ResetBatch()
	s.batch = batch
	s.current = 0
	clear(s.collapsed)
	s.phase = phaseQuiz
}

func (s *QuizScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case "tab", "n":
		s.moveQuestion(1)
		return s, nil
	case "shift+tab", "p":
		s.moveQuestion(-1)
		return s, nil
	case "space", " ":
		if q, ok := s.currentQuestion(); ok {
			s.collapsed[q.ID] = !s.collapsed[q.ID]
		}
		return s, nil
	case "r":
		return s, s.startOver()
	case "g":
		if s.sample || s.generator == nil || s.configErr != nil {
			return s, nil
		}
		return s, s.startGeneration(s.request)
	}

	q, ok := s.currentQuestion()
	if !ok || s.collapsed[q.ID] {
		return s, nil
	}
	batchID := s.batch.ID

	switch key {
	case "enter":
		return s, func() tea.Msg { return checkMsg{BatchID: batchID, ID: q.ID} }
	}

	if !q.HasOptions() {
		return s, nil
	}
	mc := s.selector(q)
	var idx int
	switch key {
	case "down", "j":
		idx = mc.NextIndex()
	case "up", "k":
		idx = mc.PrevIndex()
	default:
		i, ok := mc.IndexForKey(key)
		if !ok {
			return s, nil
		}
		idx = i
	}
	return s, func() tea.Msg { return selectMsg{BatchID: batchID, ID: q.ID, Index: idx} }
}

func (s *QuizScreen) handleSelect(msg selectMsg) (screen.Screen, tea.Cmd) {
	q, ok := s.questionFor(msg.BatchID, msg.ID)
	if !ok {
		return s, nil
	}
	s.answers.RecordSelection(msg.ID, msg.Index, q)
	return s, nil
}

func (s *QuizScreen) handleCheck(msg checkMsg) (screen.Screen, tea.Cmd) {
	q, ok := s.questionFor(msg.BatchID, msg.ID)
	if !ok {
		return s, nil
	}
	selected := answers.NoSelection
	if st, ok := s.answers.Get(msg.ID); ok {
		selected = st.Selected
	}
	s.answers.RecordCheck(msg.ID, selected, q)
	return s, nil
}

// startOver clears the quiz. The sample only clears its answers.
func (s *QuizScreen) startOver() tea.Cmd {
	s.answers.ResetBatch()
	if s.sample {
		return nil
	}
	s.batch = nil
	s.notice = ""
	s.errMsg = ""
	s.phase = phaseSetup
	s.form = newSetupForm(s.configErr == nil)
	return s.form.topic.Init()
}

func (s *QuizScreen) moveQuestion(delta int) {
	if s.batch == nil || len(s.batch.Questions) == 0 {
		return
	}
	s.current = max(0, min(len(s.batch.Questions)-1, s.current+delta))
}

func (s *QuizScreen) currentQuestion() (mcq.Question, bool) {
	if s.batch == nil || s.current < 0 || s.current >= len(s.batch.Questions) {
		return mcq.Question{}, false
	}
	return s.batch.Questions[s.current], true
}

// questionFor resolves a message target, dropping messages addressed to a
// batch that is no longer shown.
func (s *QuizScreen) questionFor(batchID string, id mcq.QuestionID) (mcq.Question, bool) {
	if s.batch == nil || s.batch.ID != batchID {
		return mcq.Question{}, false
	}
	return s.batch.Question(id)
}

// selector builds the option selector for q from the stored answer state.
func (s *QuizScreen) selector(q mcq.Question) components.MultiChoice {
	mc := components.NewMultiChoice(q.Labels(), q.CorrectIndex)
	if st, ok := s.answers.Get(q.ID); ok {
		mc.Selected = st.Selected
		mc.Checked = st.Checked
		mc.CorrectIndex = st.CorrectIndex
	}
	return mc
}

// describeFailure turns a generation error into the top-level message.
func describeFailure(err error) string {
	var gerr *mcq.GenerationError
	switch {
	case err == nil:
		return "An error occurred: no questions were returned"
	case errors.Is(err, mcq.ErrUnparseable):
		return "Could not parse the generated MCQs. Please try again."
	case errors.As(err, &gerr):
		return "An error occurred: " + llm.Describe(gerr.Err)
	default:
		return "An error occurred: " + err.Error()
	}
}
