package hand

import (
	"strings"

	"github.com/arcanaland/blackjack/internal/card"
)

// Role identifies who holds a hand
type Role int

const (
	Player Role = iota
	Dealer
)

func (r Role) String() string {
	if r == Dealer {
		return "Dealer"
	}
	return "Player"
}

// Hand holds one participant's cards and their running win count
type Hand struct {
	Role   Role
	Active bool

	cards []card.Card
	wins  int
}

// New creates an empty hand for the given role
func New(role Role) *Hand {
	return &Hand{Role: role}
}

func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, c)
}

// Clear drops the cards but keeps the role and win count
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int { return len(h.cards) }

// Value scores the hand, counting aces as 11 until that would bust
func (h *Hand) Value() int {
	total, _ := h.score()
	return total
}

// IsSoft reports whether an ace is still counted as 11
func (h *Hand) IsSoft() bool {
	_, soft := h.score()
	return soft > 0
}

func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == 21
}

func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

func (h *Hand) score() (total, soft int) {
	for _, c := range h.cards {
		total += c.Points()
		if c.IsAce() {
			soft++
		}
	}
	for total > 21 && soft > 0 {
		total -= 10
		soft--
	}
	return total, soft
}

func (h *Hand) Wins() int { return h.wins }

// Win records a round won by this hand
func (h *Hand) Win() { h.wins++ }

// Visible returns the cards as shown at the table. With hide set, a dealer's
// first card is replaced by card.Hidden.
func (h *Hand) Visible(hide bool) []card.Card {
	out := h.Cards()
	if hide && h.Role == Dealer && len(out) > 0 {
		out[0] = card.Hidden
	}
	return out
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return h.Role.String() + ": " + strings.Join(parts, " ")
}
