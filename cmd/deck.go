package cmd

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Print the deck in draw order",
	Long: `Deck prints the 52 cards in the order they would be dealt.
Without --shuffle this is the fill order; with --shuffle and --seed it shows
the order a seeded 'blackjack play --seed' session starts its first round with.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var rng *rand.Rand
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			rng = rand.New(rand.NewSource(seed))
		}

		d := deck.New(rng)
		d.Fill()
		if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
			d.Shuffle()
		}

		out := cmd.OutOrStdout()
		for _, row := range rows(d.Cards(), len(card.Ranks)) {
			fmt.Fprintln(out, strings.Join(row, " "))
		}
		fmt.Fprintf(out, "%d cards\n", d.Len())
	},
}

// rows splits cards into lines of n
func rows(cards []card.Card, n int) [][]string {
	var out [][]string
	for start := 0; start < len(cards); start += n {
		end := min(start+n, len(cards))
		row := make([]string, 0, n)
		for _, c := range cards[start:end] {
			row = append(row, fmt.Sprintf("%3s", c.String()))
		}
		out = append(out, row)
	}
	return out
}

func init() {
	RootCmd.AddCommand(deckCmd)

	deckCmd.Flags().Bool("shuffle", false, "Shuffle before printing")
	deckCmd.Flags().Int64("seed", 0, "Seed for --shuffle")
}
