package cmd

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var verbose bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "belote",
	Short: "Play and manage belote matches in the terminal",
	Long: `Belote is a command-line card game for four seats in two teams.
It plays matches against bots or a human at the South seat, and manages
the rules files kept in your rules library.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every card and trick")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newLogger builds the slog logger handed to the game, printed through pterm.
func newLogger() *slog.Logger {
	logger := pterm.DefaultLogger.WithLevel(pterm.LogLevelInfo)
	if verbose {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDebug)
	}
	return slog.New(pterm.NewSlogHandler(logger))
}
