package cmd

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var logger = slog.Default()

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play blackjack against the dealer in your terminal",
	Long: `Blackjack is a single-table blackjack game for the terminal.
You play against a dealer who hits on 16 and stands on 17. Wins are tallied
across rounds until you decide to stop.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(verbose)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log round details to stderr")

	RootCmd.AddCommand(validateCmd)
}

// newLogger routes slog records through the pterm logger on stderr
func newLogger(verbose bool) *slog.Logger {
	pterm.DefaultLogger.Writer = os.Stderr
	pterm.DefaultLogger.Level = pterm.LogLevelWarn
	if verbose {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	return slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
