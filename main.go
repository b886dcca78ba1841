package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/wenqi/pindrill/cmd"
)

func main() {
	// Optional .env for API keys; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
