package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a rank or suit is outside the legal set
var ErrInvalidCard = errors.New("invalid card")

// Suit of a playing card
type Suit string

const (
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
	Hearts   Suit = "Hearts"
	Spades   Suit = "Spades"
)

// Ranks in deck order
var Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Suits in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Hidden stands in for a face-down card when a hand is rendered
var Hidden = Card{rank: "hidden"}

// Card represents a standard playing card
type Card struct {
	rank string // 2-10, J, Q, K or A
	suit Suit
}

// New creates a card, rejecting any rank or suit outside the standard deck
func New(rank string, suit Suit) (Card, error) {
	if !validRank(rank) {
		return Card{}, fmt.Errorf("%w: rank %q", ErrInvalidCard, rank)
	}
	if _, ok := glyphs[suit]; !ok {
		return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCard, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustNew is like New but panics on an invalid card
func MustNew(rank string, suit Suit) Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() string { return c.rank }
func (c Card) Suit() Suit   { return c.suit }

// IsHidden reports whether c is the face-down placeholder
func (c Card) IsHidden() bool { return c == Hidden }

func (c Card) IsAce() bool { return c.rank == "A" }

// IsRed reports whether the card belongs to a red suit
func (c Card) IsRed() bool { return c.suit == Hearts || c.suit == Diamonds }

// Points returns the blackjack value of the card, counting an ace as 11
func (c Card) Points() int {
	switch c.rank {
	case "A":
		return 11
	case "J", "Q", "K":
		return 10
	}
	n, err := strconv.Atoi(c.rank)
	if err != nil {
		return 0
	}
	return n
}

// Glyph returns the suit symbol, or an empty string for the hidden card
func (c Card) Glyph() string {
	return glyphs[c.suit]
}

func (c Card) String() string {
	return c.rank + c.Glyph()
}

// Parse reads a card token such as "A♠", "10h" or "QD"
func Parse(token string) (Card, error) {
	token = strings.TrimSpace(token)
	for suit, glyph := range glyphs {
		if rank, ok := strings.CutSuffix(token, glyph); ok {
			return New(strings.ToUpper(rank), suit)
		}
	}
	if len(token) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}
	rank, letter := token[:len(token)-1], strings.ToUpper(token[len(token)-1:])
	suit, ok := letters[letter]
	if !ok {
		return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCard, letter)
	}
	return New(strings.ToUpper(rank), suit)
}

func validRank(rank string) bool {
	for _, r := range Ranks {
		if r == rank {
			return true
		}
	}
	return false
}

var glyphs = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

var letters = map[string]Suit{
	"C": Clubs,
	"D": Diamonds,
	"H": Hearts,
	"S": Spades,
}
