package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		outcome, _ := cmd.Flags().GetString("outcome")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		gens, err := s.EventRepo().QueryGenerations(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query generations: %w", err)
		}

		if len(gens) == 0 {
			fmt.Println("No generations recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-28s  %-6s  %-5s  %-4s  %-11s  %s\n",
			"ID", "Timestamp", "Topic", "Level", "Qs", "Bad", "Outcome", "Model")
		fmt.Println(strings.Repeat("─", 100))

		for _, g := range gens {
			if outcome != "" && g.Outcome != outcome {
				continue
			}
			fmt.Printf("%-5d  %-19s  %-28s  %-6s  %-5s  %-4d  %-11s  %s\n",
				g.ID,
				g.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(g.Topic, 28),
				g.Difficulty,
				fmt.Sprintf("%d/%d", g.Parsed, g.Requested),
				g.Degraded,
				g.Outcome,
				g.Model,
			)
			if g.ErrorMessage != "" {
				fmt.Printf("       %s\n", g.ErrorMessage)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of generations to show")
	historyCmd.Flags().StringP("outcome", "o", "", "Filter by outcome (ok, unparseable, failed)")
}
