package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wenqi/pindrill/internal/bank"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Import questions into the bank from a spreadsheet",
	Long: `Import questions from an .xlsx or .csv file.

Expected columns: content, pinyin, category. Pinyin may use numeric
tones (ni3 hao3); it is normalized to diacritics on import. The first
row is treated as a header.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, _ := cmd.Flags().GetString("sheet")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		cfg := bank.DefaultImportConfig(args[0])
		if sheet != "" {
			cfg.Sheet = sheet
		}

		res, err := bank.Import(context.Background(), s.Questions(), cfg, time.Now())
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		printImportResult(res)
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "", "Worksheet name for .xlsx files (default Sheet1)")
}

func printImportResult(res *bank.ImportResult) {
	fmt.Printf("Processed %d rows: %d created, %d already present.\n",
		res.Processed, res.Created, res.Skipped)
	for _, e := range res.Errors {
		fmt.Printf("  skipped %s\n", e)
	}
}
