package mcq

import (
	"strings"
)

const (
	markerWord        = "Question "
	correctAnswerTag  = "Correct Answer:"
	explanationTag    = "Explanation:"
	firstOptionLetter = 'a'
	lastOptionLetter  = 'd'
)

// Parse converts raw model output into questions, in the order the blocks
// appear. It never fails on malformed blocks: those come back as degraded
// questions (no options, UnknownIndex, empty explanation). If the text has no
// "Question <N>:" marker at all, Parse returns ErrUnparseable.
func Parse(raw string) ([]Question, error) {
	blocks := splitBlocks(raw)
	if len(blocks) == 0 {
		return nil, ErrUnparseable
	}

	questions := make([]Question, len(blocks))
	for i, block := range blocks {
		q := parseBlock(block)
		q.ID = IDFor(i)
		q.Number = i + 1
		questions[i] = q
	}
	return questions, nil
}

// marker locates one "Question <N>:" occurrence.
type marker struct {
	start int // index of "Question"
	body  int // index just past the colon
}

// splitBlocks returns the text after each marker, up to the next marker.
// Text before the first marker is discarded.
func splitBlocks(raw string) []string {
	var markers []marker
	for i := 0; i < len(raw); {
		j := strings.Index(raw[i:], markerWord)
		if j < 0 {
			break
		}
		pos := i + j
		digits := pos + len(markerWord)
		end := digits
		for end < len(raw) && isDigit(raw[end]) {
			end++
		}
		if end > digits && end < len(raw) && raw[end] == ':' {
			markers = append(markers, marker{start: pos, body: end + 1})
			i = end + 1
			continue
		}
		i = digits
	}

	blocks := make([]string, len(markers))
	for n, m := range markers {
		stop := len(raw)
		if n+1 < len(markers) {
			stop = markers[n+1].start
		}
		blocks[n] = raw[m.body:stop]
	}
	return blocks
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineText
	lineOption
	lineCorrectAnswer
	lineExplanation
)

// classifyLine expects a trimmed line.
func classifyLine(line string) lineKind {
	switch {
	case line == "":
		return lineBlank
	case isOptionLine(line):
		return lineOption
	case strings.HasPrefix(line, correctAnswerTag):
		return lineCorrectAnswer
	case strings.HasPrefix(line, explanationTag):
		return lineExplanation
	default:
		return lineText
	}
}

func parseBlock(block string) Question {
	q := Question{CorrectIndex: UnknownIndex}

	var (
		haveText        bool
		haveAnswer      bool
		haveExplanation bool
		answer          byte
		seen            [lastOptionLetter - firstOptionLetter + 1]bool
	)

	for _, rawLine := range strings.Split(block, "\n") {
		line := strings.TrimSpace(rawLine)
		kind := classifyLine(line)
		if kind == lineBlank {
			continue
		}
		if !haveText {
			q.Text = line
			haveText = true
		}

		switch kind {
		case lineOption:
			letter := line[0]
			if seen[letter-firstOptionLetter] {
				continue
			}
			seen[letter-firstOptionLetter] = true
			q.Options = append(q.Options, Option{
				Letter: letter,
				Text:   strings.TrimSpace(line[2:]),
				Label:  line,
			})
		case lineCorrectAnswer:
			if haveAnswer {
				continue
			}
			haveAnswer = true
			if l, ok := answerLetter(afterColon(line)); ok {
				answer = l
			}
		case lineExplanation:
			if haveExplanation {
				continue
			}
			haveExplanation = true
			q.Explanation = strings.TrimSpace(afterColon(line))
		}
	}

	if answer != 0 {
		if i := LetterIndex(answer); i < len(q.Options) {
			q.CorrectIndex = i
		}
	}
	return q
}

// LetterIndex maps an option letter to its ordinal position: 'a' is 0,
// 'b' is 1 and so on. Callers must check the result against the option count.
func LetterIndex(letter byte) int {
	return int(letter - firstOptionLetter)
}

// answerLetter returns the first a-d character of a "Correct Answer:" value,
// case-insensitively.
func answerLetter(s string) (byte, bool) {
	s = strings.ToLower(s)
	for i := 0; i < len(s); i++ {
		if isOptionLetter(s[i]) {
			return s[i], true
		}
	}
	return 0, false
}

func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return rest
}

func isOptionLine(line string) bool {
	return len(line) >= 2 && isOptionLetter(line[0]) && line[1] == ')'
}

func isOptionLetter(c byte) bool {
	return c >= firstOptionLetter && c <= lastOptionLetter
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
