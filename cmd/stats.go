package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wenqi/pindrill/internal/symbols"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		userID := resolveUser(cmd)
		now := time.Now()

		questions, err := s.Questions().Count(ctx)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}

		records, errorsTotal, err := s.Mistakes().CountByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("count mistakes: %w", err)
		}
		due, err := s.Mistakes().Due(ctx, userID, now)
		if err != nil {
			return fmt.Errorf("count due: %w", err)
		}

		mastered, tracked, err := s.SymbolProgress().MasteryCounts(ctx, userID)
		if err != nil {
			return fmt.Errorf("symbol mastery: %w", err)
		}

		calls, failures, tokens, err := s.AugmentLog().Totals(ctx)
		if err != nil {
			return fmt.Errorf("augment log: %w", err)
		}

		fmt.Printf("Learner: %s\n\n", userID)
		fmt.Printf("Question bank:   %d questions\n", questions)
		fmt.Printf("Mistake records: %d (%d total errors)\n", records, errorsTotal)
		fmt.Printf("Due for review:  %d\n", len(due))
		fmt.Printf("Pinyin symbols:  %d/%d mastered (%d in inventory)\n",
			mastered, tracked, len(symbols.Inventory))
		fmt.Printf("AI requests:     %d (%d failed, %d tokens)\n", calls, failures, tokens)
		return nil
	},
}
