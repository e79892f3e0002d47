package mcq

import "fmt"

// ExpectedOptions is the option count the prompt asks for.
const ExpectedOptions = 4

// Check inspects a parsed question for one kind of degradation.
// Implementations should be stateless and safe for concurrent use.
type Check interface {
	// Name returns a short identifier, e.g. "options" or "answer-key".
	Name() string

	// Inspect returns nil if the question passes.
	Inspect(q Question) *Issue
}

// Issue describes one degradation found in a parsed question. Issues are
// informational: the question stays in the batch and the UI degrades
// locally.
type Issue struct {
	QuestionID QuestionID
	Check      string
	Message    string
}

func (i *Issue) Error() string {
	return fmt.Sprintf("%s: check %q: %s", i.QuestionID, i.Check, i.Message)
}

// DefaultChecks returns the standard check chain.
func DefaultChecks() []Check {
	return []Check{
		&TextCheck{},
		&OptionsCheck{},
		&AnswerKeyCheck{},
		&ExplanationCheck{},
	}
}

// Diagnose runs every check against every question and collects the issues.
// Unlike a validation pipeline it does not stop at the first failure.
func Diagnose(questions []Question, checks []Check) []Issue {
	var issues []Issue
	for _, q := range questions {
		for _, c := range checks {
			if issue := c.Inspect(q); issue != nil {
				issue.QuestionID = q.ID
				issue.Check = c.Name()
				issues = append(issues, *issue)
			}
		}
	}
	return issues
}

// TextCheck flags blocks with no question text.
type TextCheck struct{}

func (c *TextCheck) Name() string { return "text" }

func (c *TextCheck) Inspect(q Question) *Issue {
	if q.Text == "" {
		return &Issue{Message: "question text is empty"}
	}
	return nil
}

// OptionsCheck flags blocks that did not yield exactly four options.
type OptionsCheck struct{}

func (c *OptionsCheck) Name() string { return "options" }

func (c *OptionsCheck) Inspect(q Question) *Issue {
	switch n := len(q.Options); {
	case n == 0:
		return &Issue{Message: "no options could be parsed"}
	case n != ExpectedOptions:
		return &Issue{Message: fmt.Sprintf("expected %d options, found %d", ExpectedOptions, n)}
	}
	return nil
}

// AnswerKeyCheck flags questions whose correct answer is unknown.
type AnswerKeyCheck struct{}

func (c *AnswerKeyCheck) Name() string { return "answer-key" }

func (c *AnswerKeyCheck) Inspect(q Question) *Issue {
	if !q.CorrectKnown() {
		return &Issue{Message: "correct answer could not be determined"}
	}
	return nil
}

// ExplanationCheck flags questions without an explanation.
type ExplanationCheck struct{}

func (c *ExplanationCheck) Name() string { return "explanation" }

func (c *ExplanationCheck) Inspect(q Question) *Issue {
	if q.Explanation == "" {
		return &Issue{Message: "explanation is missing"}
	}
	return nil
}

// DegradedCount returns how many distinct questions have at least one issue.
func DegradedCount(issues []Issue) int {
	seen := make(map[QuestionID]bool)
	for _, i := range issues {
		seen[i.QuestionID] = true
	}
	return len(seen)
}
