package main

import (
	"os"
	"strconv"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Registers the SolveClue function.
	_ "crosswarped.com/cryptics"
)

const functionTarget = "SolveClue"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the SolveClue function locally",
	Long:  "Runs the functions framework on server.port. Clues are accepted as GET /?clue=... or as a JSON POST body.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Server.Port
		}
		if os.Getenv("FUNCTION_TARGET") == "" {
			if err := os.Setenv("FUNCTION_TARGET", functionTarget); err != nil {
				return eris.Wrap(err, "serve: set function target")
			}
		}

		zap.L().Info("serve: listening", zap.Int("port", port), zap.String("function", functionTarget))
		if err := funcframework.StartHostPort("", strconv.Itoa(port)); err != nil {
			return eris.Wrap(err, "serve")
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (0 uses server.port)")

	rootCmd.AddCommand(serveCmd)
}
