package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/answers"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz and print it (no TUI)",
	Long: `Generate multiple-choice questions on a topic and print them.

With --quiz the questions are asked one by one on stdin instead.
Every generation is recorded in the event log (see "mcqgen history").`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Topic to generate questions about (required)")
	generateCmd.Flags().StringP("difficulty", "d", string(mcq.DifficultyEasy), "Difficulty: Easy, Medium or Hard")
	generateCmd.Flags().IntP("count", "n", mcq.DefaultCount, fmt.Sprintf("Number of questions (%d-%d)", mcq.MinCount, mcq.MaxCount))
	generateCmd.Flags().Bool("answers", false, "Print the answer key and explanations")
	generateCmd.Flags().Bool("quiz", false, "Ask the questions interactively")
	generateCmd.Flags().Bool("raw", false, "Print the model's raw reply instead of parsing it")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	showAnswers, _ := cmd.Flags().GetBool("answers")
	interactive, _ := cmd.Flags().GetBool("quiz")
	raw, _ := cmd.Flags().GetBool("raw")

	difficulty, err := mcq.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}
	req := mcq.Request{Topic: strings.TrimSpace(topic), Difficulty: difficulty, Count: count}
	if err := req.Validate(); err != nil {
		return err
	}

	// Logging is best effort: generation works without a database.
	var eventRepo store.EventRepo
	if st, err := openStore(cmd); err != nil {
		warnf("event log unavailable: %v", err)
	} else {
		defer st.Close()
		eventRepo = st.EventRepo()
	}

	gen, err := newGenerator(cmd.Context(), eventRepo)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating %d %s questions on %s...\n\n", req.Count, strings.ToLower(string(req.Difficulty)), req.Topic)

	batch, err := gen.Generate(cmd.Context(), req)
	if raw && batch != nil {
		fmt.Fprintln(out, batch.Raw)
		return err
	}
	if err != nil {
		var gerr *mcq.GenerationError
		if errors.As(err, &gerr) {
			return fmt.Errorf("an error occurred: %s", llm.Describe(gerr.Err))
		}
		return err
	}

	if interactive {
		return runQuiz(cmd.InOrStdin(), out, batch)
	}

	printBatch(out, batch, showAnswers)
	fmt.Fprintf(out, "Generated %d MCQs on %s (%s)\n", len(batch.Questions), req.Topic, req.Difficulty)
	return nil
}

// printBatch writes every question with its options. With showAnswers the
// answer key and explanation follow each question.
func printBatch(w io.Writer, batch *mcq.Batch, showAnswers bool) {
	for _, q := range batch.Questions {
		fmt.Fprintf(w, "── Question %d ──\n", q.Number)
		fmt.Fprintln(w, q.Text)
		if !q.HasOptions() {
			fmt.Fprintln(w, "  Could not parse options for this question.")
		}
		for _, label := range q.Labels() {
			fmt.Fprintf(w, "  %s\n", label)
		}
		if showAnswers {
			if q.CorrectKnown() {
				fmt.Fprintf(w, "Correct Answer: %s\n", q.Options[q.CorrectIndex].Label)
			} else {
				fmt.Fprintln(w, "Correct Answer: unknown")
			}
			if q.Explanation != "" {
				fmt.Fprintf(w, "Explanation: %s\n", q.Explanation)
			}
		}
		fmt.Fprintln(w)
	}
}

// runQuiz asks each question on in and scores the answers, printing
// feedback after each one.
func runQuiz(in io.Reader, out io.Writer, batch *mcq.Batch) error {
	sheet := answers.NewStore()
	scanner := bufio.NewScanner(in)

	for _, q := range batch.Questions {
		fmt.Fprintf(out, "── Question %d/%d ──\n", q.Number, len(batch.Questions))
		fmt.Fprintln(out, q.Text)
		if !q.HasOptions() {
			fmt.Fprintln(out, "Could not parse options for this question.")
			fmt.Fprintln(out)
			continue
		}
		for _, label := range q.Labels() {
			fmt.Fprintf(out, "  %s\n", label)
		}

		fmt.Fprint(out, "\nYour answer (a-d, blank to skip): ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		selected := answerIndex(scanner.Text(), len(q.Options))
		sheet.RecordCheck(q.ID, selected, q)

		st, _ := sheet.Get(q.ID)
		fmt.Fprintln(out, feedbackText(answers.Evaluate(st)))
		fmt.Fprintln(out)
	}

	sc := sheet.Score()
	fmt.Fprintf(out, "── Score: %d/%d correct ──\n", sc.Correct, len(batch.Questions))
	return scanner.Err()
}

// answerIndex maps "a"-"d" or "1"-"4" to an option index.
func answerIndex(s string, n int) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 {
		return answers.NoSelection
	}
	idx := answers.NoSelection
	switch c := s[0]; {
	case c >= 'a' && c <= 'd':
		idx = mcq.LetterIndex(c)
	case c >= '1' && c <= '4':
		idx = int(c - '1')
	}
	if idx >= n {
		return answers.NoSelection
	}
	return idx
}

func feedbackText(fb answers.Feedback) string {
	var lines []string
	switch fb.Verdict {
	case answers.VerdictNoSelection:
		lines = append(lines, "(skipped)")
	case answers.VerdictCorrect:
		lines = append(lines, "✅ Correct! "+fb.Correct)
	case answers.VerdictIncorrect:
		lines = append(lines, "❌ Wrong! You selected: "+fb.Chosen, "The correct answer is: "+fb.Correct)
	case answers.VerdictUnknown:
		lines = append(lines, "Could not determine the correct answer for this question.")
	}
	if fb.Explanation != "" && fb.Verdict != answers.VerdictNoSelection {
		lines = append(lines, "Explanation: "+fb.Explanation)
	}
	return strings.Join(lines, "\n")
}
