package cmd

import (
	"fmt"
	"math/rand"
	"os"

	colorize "github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/display"
	"github.com/arcanaland/blackjack/internal/game"
	"github.com/arcanaland/blackjack/internal/prompt"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a blackjack session",
	Long: `Play deals rounds of blackjack until you choose to stop.
Answer H to hit or S to stand on your turn, and Y or N when asked to play again.

Settings are read from the config file (see 'blackjack config path').

Examples:
  blackjack play
  blackjack play --seed 42
  blackjack play --no-color`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("seed") {
			cfg.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			cfg.Color = false
		}

		useColor := cfg.Color && term.IsTerminal(int(os.Stdout.Fd()))
		if !useColor {
			colorize.NoColor = true
			pterm.DisableColor()
		}

		renderer, err := display.New(os.Stdout, display.Options{
			Color:       useColor,
			ClearScreen: cfg.ClearScreen,
			DealerPause: cfg.DealerPause(),
			CardBack:    cfg.CardBack,
		})
		if err != nil {
			return fmt.Errorf("error in config file: %v", err)
		}

		opts := []game.Option{game.WithLogger(logger)}
		if cfg.Seed != 0 {
			opts = append(opts, game.WithRand(rand.New(rand.NewSource(cfg.Seed))))
		}

		session := game.NewSession(prompt.NewTerminal(os.Stdin, os.Stdout), renderer, opts...)
		return session.Run()
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64P("seed", "s", 0, "Seed the shuffle for a reproducible session")
	playCmd.Flags().Bool("no-color", false, "Disable colored output")
}
