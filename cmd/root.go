package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wenqi/pindrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pindrill",
	Short: "Pinyin mistake drills with spaced repetition",
	Long:  "Pindrill — terminal trainer for Chinese pinyin reading: mistake review on an Ebbinghaus ladder, symbol flashcards, and AI-generated supplements.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PINDRILL_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner ID (overrides PINDRILL_USER env var)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PINDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the learner ID from --user, PINDRILL_USER, or
// "default".
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("PINDRILL_USER"); u != "" {
		return u
	}
	return "default"
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
