package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crosswarped.com/cryptics"
)

var solveCmd = &cobra.Command{
	Use:   "solve <clue>",
	Short: "Solve one clue",
	Long: `Solve one clue written as

  <clue text> (<lengths>) <pattern> | <known answer>

for example: cryptics solve "Spin broken shingle (7) e...... | english"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		limit, _ := cmd.Flags().GetInt("limit")
		showDerivations, _ := cmd.Flags().GetBool("derivations")
		format, _ := cmd.Flags().GetString("format")
		if !validFormat(format) {
			return eris.Errorf("solve: unknown format %q", format)
		}

		words, err := cryptics.LoadWordList(ctx, cfg.WordList)
		if err != nil {
			return eris.Wrap(err, "solve: load word list")
		}
		zap.L().Info("solve: word list loaded",
			zap.String("source", cfg.WordList.Source),
			zap.Int("words", words.Len()),
		)

		text := strings.Join(args, " ")
		result, err := cryptics.NewService(words, cfg).Solve(ctx, text, limit)
		if err != nil {
			if eris.Is(err, context.Canceled) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Interrupted.")
			}
			return eris.Wrap(err, "solve")
		}
		return writeResult(cmd.OutOrStdout(), result, format, showDerivations)
	},
}

func init() {
	solveCmd.Flags().Int("limit", 0, "max number of answers to list (0 uses output.limit)")
	solveCmd.Flags().Bool("derivations", false, "show how each answer was derived")
	solveCmd.Flags().String("format", formatTable, "output format (table, json, yaml)")

	rootCmd.AddCommand(solveCmd)
}
