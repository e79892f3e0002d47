package mcq

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTopic        = errors.New("please enter a topic")
	ErrInvalidDifficulty = errors.New("difficulty must be Easy, Medium or Hard")
	ErrInvalidCount      = fmt.Errorf("question count must be between %d and %d", MinCount, MaxCount)

	// ErrUnparseable means the generated text contained no question blocks
	// at all. It is distinct from an empty result for a valid request.
	ErrUnparseable = errors.New("could not parse the generated MCQs")
)

// GenerationError reports that the generation service call itself failed.
// The raw service error is available through Unwrap; it is never parsed as
// quiz content.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("generating questions with %s: %v", e.Model, e.Err)
	}
	return fmt.Sprintf("generating questions: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
