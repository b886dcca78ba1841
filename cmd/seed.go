package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wenqi/pindrill/internal/bank"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in starter question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		res, err := bank.Seed(context.Background(), s.Questions(), time.Now())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		printImportResult(res)
		return nil
	},
}
