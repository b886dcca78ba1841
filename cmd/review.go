package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wenqi/pindrill/internal/augment"
	"github.com/wenqi/pindrill/internal/llm"
	"github.com/wenqi/pindrill/internal/mistakes"
	"github.com/wenqi/pindrill/internal/session"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review due mistakes, typing the pinyin for each",
	RunE: func(cmd *cobra.Command, args []string) error {
		supplements, _ := cmd.Flags().GetInt("supplements")
		noShuffle, _ := cmd.Flags().GetBool("no-shuffle")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		scheduler := mistakes.NewService(s.Mistakes())

		var augmenter session.Augmenter
		if supplements > 0 {
			if cfg, ok := llm.DiscoverConfig(); ok {
				provider, err := llm.NewProvider(cfg, s.AugmentLog())
				if err != nil {
					fmt.Fprintf(os.Stderr, "warning: AI supplements disabled: %v\n", err)
				} else {
					augmenter = augment.New(provider, augment.DefaultConfig())
				}
			} else {
				fmt.Fprintln(os.Stderr, "No LLM API key found; reviewing without AI supplements.")
			}
		}

		builder := session.NewBuilder(scheduler, augmenter, s.Questions(), session.Config{
			SupplementCount: supplements,
			Shuffle:         !noShuffle,
		})

		queue, err := builder.Start(ctx, resolveUser(cmd), time.Now())
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		if queue.Len() == 0 {
			fmt.Println("Nothing due. 好好休息!")
			return nil
		}

		return runReviewLoop(ctx, queue)
	},
}

func init() {
	reviewCmd.Flags().Int("supplements", 5, "Number of AI-generated extra items (0 disables)")
	reviewCmd.Flags().Bool("no-shuffle", false, "Keep items in due order")
}

// runReviewLoop drives the line-oriented answer loop over a session queue.
func runReviewLoop(ctx context.Context, queue *session.Queue) error {
	reader := bufio.NewReader(os.Stdin)

	correct := 0
	for queue.HasNext() {
		item := queue.Current()

		tag := ""
		if item.Kind == session.KindAI {
			tag = "  [AI]"
		}
		fmt.Printf("\n[%d/%d]%s  %s\n", queue.Pos()+1, queue.Len(), tag, item.Content)
		fmt.Print("pinyin> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nSession ended early.")
			break
		}
		answer := strings.TrimSpace(line)

		res, err := queue.Submit(ctx, answer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save result: %v\n", err)
		}
		if res.Correct {
			correct++
			fmt.Println("✓ 对了!")
		} else {
			fmt.Printf("✗ correct answer: %s\n", res.CorrectPinyin)
		}
	}

	fmt.Printf("\nDone: %d/%d correct.\n", correct, queue.Pos())
	return nil
}
