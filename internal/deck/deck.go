package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/arcanaland/blackjack/internal/card"
)

// ErrDeckExhausted is returned when drawing from an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Size of a full deck
const Size = 52

// Deck represents an ordered pile of playing cards
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// New creates an empty deck. A nil rng seeds one from the clock.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Deck{
		cards: make([]card.Card, 0, Size),
		rng:   rng,
	}
}

// Fill replaces the contents with one card per rank and suit, rank-major
func (d *Deck) Fill() {
	d.cards = d.cards[:0]
	for _, rank := range card.Ranks {
		for _, suit := range card.Suits {
			d.cards = append(d.cards, card.MustNew(rank, suit))
		}
	}
}

// Shuffle permutes the cards in place
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Clear empties the deck
func (d *Deck) Clear() {
	d.cards = d.cards[:0]
}

// Deal removes and returns the top card
func (d *Deck) Deal() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrDeckExhausted
	}
	c := d.cards[0]
	d.cards = append(d.cards[:0], d.cards[1:]...)
	return c, nil
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw order
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Stack moves the given cards to the top of the deck in the order given.
// Every card must already be in the deck.
func (d *Deck) Stack(top ...card.Card) error {
	rest := make([]card.Card, 0, len(d.cards))
	rest = append(rest, d.cards...)
	for _, c := range top {
		i := indexOf(rest, c)
		if i < 0 {
			return fmt.Errorf("cannot stack %s: not in deck", c)
		}
		rest = append(rest[:i], rest[i+1:]...)
	}
	d.cards = append(d.cards[:0], top...)
	d.cards = append(d.cards, rest...)
	return nil
}

func indexOf(cards []card.Card, c card.Card) int {
	for i, x := range cards {
		if x == c {
			return i
		}
	}
	return -1
}
