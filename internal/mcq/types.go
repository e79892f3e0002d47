package mcq

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// UnknownIndex marks a question whose correct answer could not be
// determined from the generated text.
const UnknownIndex = -1

// QuestionID is the positional identity of a question within one batch
// ("q0", "q1", ...). It is only meaningful inside the batch that produced it.
type QuestionID string

// IDFor returns the identity of the question at position i.
func IDFor(i int) QuestionID {
	return QuestionID(fmt.Sprintf("q%d", i))
}

// Option is a single answer option as found in the generated text.
type Option struct {
	// Letter is the original label letter, 'a' through 'd'.
	Letter byte

	// Text is the option with its "a)" marker removed.
	Text string

	// Label is the full trimmed line, e.g. "b) 4". The UI displays this.
	Label string
}

// Question is one parsed multiple-choice question. Immutable once parsed.
type Question struct {
	ID QuestionID

	// Number is the 1-based position shown to the user.
	Number int

	Text string

	// Options holds 0-4 options in encounter order. Anything other than
	// 4 means the block was degraded.
	Options []Option

	// CorrectIndex indexes Options, or is UnknownIndex.
	CorrectIndex int

	Explanation string
}

// HasOptions reports whether a selector can be rendered for the question.
func (q Question) HasOptions() bool {
	return len(q.Options) > 0
}

// CorrectKnown reports whether CorrectIndex points at a parsed option.
func (q Question) CorrectKnown() bool {
	return q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

// Labels returns the full labelled option strings.
func (q Question) Labels() []string {
	return lo.Map(q.Options, func(o Option, _ int) string { return o.Label })
}

// Batch is the full set of questions produced by one generation call.
type Batch struct {
	// ID uniquely identifies the batch across runs (used in the event log).
	ID string

	Request   Request
	Questions []Question

	// Raw is the unmodified model output.
	Raw string

	// Issues lists degradations found while parsing. They never remove
	// questions from the batch.
	Issues []Issue

	Model     string
	CreatedAt time.Time
}

// Question returns the question with the given identity.
func (b *Batch) Question(id QuestionID) (Question, bool) {
	if b == nil {
		return Question{}, false
	}
	return lo.Find(b.Questions, func(q Question) bool { return q.ID == id })
}

// Difficulty is the requested difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the selectable levels in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return lo.Contains(Difficulties, d)
}

// ParseDifficulty resolves a case-insensitive level name.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

const (
	MinCount     = 1
	MaxCount     = 10
	DefaultCount = 3
)

// Request holds the user's generation inputs.
type Request struct {
	Topic      string
	Difficulty Difficulty
	Count      int
}
