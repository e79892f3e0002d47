package mcq

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author who writes clear, accurate multiple-choice questions.

Rules:
- Follow the requested output format exactly. Do not add headings, numbering schemes or markdown of your own.
- Every question has exactly four options labeled a), b), c) and d) in lowercase.
- Exactly one option is correct. Distractors should be plausible, not silly.
- The "Correct Answer:" line names the letter of the correct option.
- Keep explanations to one or two sentences.`

// formatContract is the text layout Parse depends on.
const formatContract = `Question 1: [Question text]
a) [Option a]
b) [Option b]
c) [Option c]
d) [Option d]
Correct Answer: [Letter of correct option]
Explanation: [Explanation text]

Question 2: ...`

// Validate checks the request before any generation call is made.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return ErrEmptyTopic
	}
	if !r.Difficulty.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, r.Difficulty)
	}
	if r.Count < MinCount || r.Count > MaxCount {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, r.Count)
	}
	return nil
}

// BuildPrompt constructs the generation instruction. The nonce is appended
// to the topic so that repeated requests for the same topic are not answered
// verbatim from a cache or a deterministic decode.
func BuildPrompt(req Request, nonce string) string {
	topic := strings.TrimSpace(req.Topic)
	if nonce != "" {
		topic = fmt.Sprintf("%s (request: %s)", topic, nonce)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d unique and varied multiple-choice questions about '%s' at a %s difficulty level.\n\n",
		req.Count, topic, strings.ToLower(string(req.Difficulty)))

	b.WriteString("Each time this is requested, regenerate different versions of questions and options to avoid repetition. ")
	b.WriteString("Add slight randomness to question framing, options order, and phrasing.\n\n")

	b.WriteString("For each question:\n")
	b.WriteString("1. Provide the question\n")
	b.WriteString("2. Provide four options labeled a), b), c), and d)\n")
	b.WriteString("3. Indicate the correct answer\n")
	b.WriteString("4. Give a brief explanation of why that answer is correct\n\n")

	b.WriteString("Format your response as:\n\n")
	b.WriteString(formatContract)

	return b.String()
}
