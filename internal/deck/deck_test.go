package deck

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/arcanaland/blackjack/internal/card"
)

func seeded() *Deck {
	return New(rand.New(rand.NewSource(42)))
}

func TestFill(t *testing.T) {
	d := seeded()
	d.Fill()

	if d.Len() != Size {
		t.Fatalf("Len() = %d, want %d", d.Len(), Size)
	}
	seen := make(map[card.Card]bool)
	for _, c := range d.Cards() {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
	}

	// Refilling never grows the deck
	d.Fill()
	if d.Len() != Size {
		t.Errorf("Len() after second Fill = %d, want %d", d.Len(), Size)
	}
}

func TestFillOrderIsDeterministic(t *testing.T) {
	a, b := seeded(), New(nil)
	a.Fill()
	b.Fill()
	ac, bc := a.Cards(), b.Cards()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("card %d: %s != %s", i, ac[i], bc[i])
		}
	}
	if ac[0] != card.MustNew("A", card.Clubs) {
		t.Errorf("first card = %s, want A♣", ac[0])
	}
}

func TestShufflePreservesCards(t *testing.T) {
	d := seeded()
	d.Fill()
	before := d.Cards()
	d.Shuffle()
	after := d.Cards()

	if len(after) != len(before) {
		t.Fatalf("Len() after Shuffle = %d, want %d", len(after), len(before))
	}
	counts := make(map[card.Card]int)
	for _, c := range before {
		counts[c]++
	}
	for _, c := range after {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %s count changed by %d", c, -n)
		}
	}

	moved := false
	for i := range before {
		if before[i] != after[i] {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("Shuffle left the deck in fill order")
	}
}

func TestDeal(t *testing.T) {
	d := seeded()
	d.Fill()
	first := d.Cards()[0]

	c, err := d.Deal()
	if err != nil {
		t.Fatalf("Deal() unexpected error: %v", err)
	}
	if c != first {
		t.Errorf("Deal() = %s, want top card %s", c, first)
	}
	if d.Len() != Size-1 {
		t.Errorf("Len() = %d, want %d", d.Len(), Size-1)
	}
}

func TestDealExhausted(t *testing.T) {
	d := seeded()
	d.Fill()
	for i := 0; i < Size; i++ {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("Deal() #%d unexpected error: %v", i, err)
		}
	}
	if _, err := d.Deal(); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("Deal() on empty deck error = %v, want ErrDeckExhausted", err)
	}
}

func TestClear(t *testing.T) {
	d := seeded()
	d.Fill()
	d.Clear()
	if d.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", d.Len())
	}
	if _, err := d.Deal(); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("Deal() after Clear error = %v, want ErrDeckExhausted", err)
	}
}

func TestStack(t *testing.T) {
	d := seeded()
	d.Fill()
	d.Shuffle()
	top := []card.Card{
		card.MustNew("10", card.Diamonds),
		card.MustNew("A", card.Spades),
		card.MustNew("7", card.Hearts),
	}
	if err := d.Stack(top...); err != nil {
		t.Fatalf("Stack() unexpected error: %v", err)
	}
	if d.Len() != Size {
		t.Fatalf("Len() after Stack = %d, want %d", d.Len(), Size)
	}
	for i, want := range top {
		got, _ := d.Deal()
		if got != want {
			t.Errorf("Deal() #%d = %s, want %s", i, got, want)
		}
	}

	d.Clear()
	if err := d.Stack(top[0]); err == nil {
		t.Error("Stack() of a missing card should fail")
	}
}
