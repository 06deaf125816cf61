package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crosswarped.com/cryptics/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "cryptics",
	Short: "Cryptic crossword clue solver",
	Long:  "Parses cryptic clues, tries anagram and hidden-word readings against a synonym list, and ranks the answers by how well they match the definition.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
