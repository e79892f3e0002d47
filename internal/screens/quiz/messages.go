package quiz

import "github.com/abhisek/mcqgen/internal/mcq"

// batchReadyMsg is sent when a generation call returns. Batch may be non-nil
// alongside Err when the reply could not be parsed.
type batchReadyMsg struct {
	Request mcq.Request
	Batch   *mcq.Batch
	Err     error
}

// selectMsg records an option choice for one question of one batch.
type selectMsg struct {
	BatchID string
	ID      mcq.QuestionID
	Index   int
}

// checkMsg asks for feedback on one question of one batch.
type checkMsg struct {
	BatchID string
	ID      mcq.QuestionID
}

// submitMsg is sent by the Generate button.
type submitMsg struct{}
