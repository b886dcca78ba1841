package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wenqi/pindrill/internal/symbols"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Flashcard drill over pinyin symbols due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		newCount, _ := cmd.Flags().GetInt("new")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		userID := resolveUser(cmd)
		svc := symbols.NewService(s.SymbolProgress())
		now := time.Now()

		due, err := svc.DueOrUnmastered(ctx, userID, now, limit)
		if err != nil {
			return fmt.Errorf("load due symbols: %w", err)
		}

		cards := make([]symbols.Symbol, 0, len(due)+newCount)
		for _, c := range due {
			cards = append(cards, c.Symbol)
		}
		if newCount > 0 {
			fresh, err := svc.Unstudied(ctx, userID, newCount)
			if err != nil {
				return fmt.Errorf("load new symbols: %w", err)
			}
			cards = append(cards, fresh...)
		}

		if len(cards) == 0 {
			fmt.Println("No symbols to drill right now.")
			return nil
		}

		return runDrillLoop(ctx, svc, userID, cards)
	},
}

func init() {
	drillCmd.Flags().Int("limit", symbols.DefaultDueLimit, "Maximum due symbols per drill")
	drillCmd.Flags().Int("new", 5, "Number of never-studied symbols to introduce")
}

// runDrillLoop shows each symbol card, reveals the mnemonic on Enter,
// then records whether the learner remembered it.
func runDrillLoop(ctx context.Context, svc *symbols.Service, userID string, cards []symbols.Symbol) error {
	reader := bufio.NewReader(os.Stdin)

	for i, sym := range cards {
		fmt.Printf("\n[%d/%d]  %s  (%s)\n", i+1, len(cards), sym.Display, sym.Category)
		fmt.Print("Press Enter to reveal...")
		if _, err := reader.ReadString('\n'); err != nil {
			fmt.Println("\nDrill ended early.")
			return nil
		}

		fmt.Printf("  %s\n", sym.Mnemonic)
		fmt.Printf("  example: %s (%s)\n", sym.Example, sym.ExamplePinyin)
		fmt.Print("Did you remember it? [y/n] ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nDrill ended early.")
			return nil
		}
		remembered := strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")

		if err := svc.RecordStudyOutcome(ctx, userID, sym.ID, remembered, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save outcome for %s: %v\n", sym.ID, err)
		}
	}

	fmt.Printf("\nDrilled %d symbols.\n", len(cards))
	return nil
}
