package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/hand"
)

// handCmd represents the hand command
var handCmd = &cobra.Command{
	Use:   "hand [card]...",
	Short: "Score a blackjack hand",
	Long: `Hand prints the value of the given cards and whether they make a blackjack or a bust.
Cards are written as rank followed by suit, using a letter or a symbol.

Examples:
  blackjack hand AS 10h
  blackjack hand A♠ A♣ 9♦`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := hand.New(hand.Player)
		for _, arg := range args {
			c, err := card.Parse(arg)
			if err != nil {
				return err
			}
			h.AddCard(c)
		}

		kind := "hard"
		if h.IsSoft() {
			kind = "soft"
		}

		names := make([]string, 0, h.Len())
		for _, c := range h.Cards() {
			names = append(names, c.String())
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, colorize.CyanString("Cards: ")+strings.Join(names, " "))
		fmt.Fprintln(out, colorize.CyanString("Value: ")+fmt.Sprintf("%d (%s)", h.Value(), kind))
		switch {
		case h.IsBlackjack():
			fmt.Fprintln(out, colorize.GreenString("Blackjack!"))
		case h.IsBust():
			fmt.Fprintln(out, colorize.RedString("Bust"))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(handCmd)
}
