package game

import (
	"github.com/arcanaland/blackjack/internal/card"
)

// State is a phase of a round
type State int

const (
	Dealing State = iota
	BlackjackCheck
	PlayerTurn
	DealerTurn
	Resolution
	RoundOver
)

var stateNames = map[State]string{
	Dealing:        "dealing",
	BlackjackCheck: "blackjack-check",
	PlayerTurn:     "player-turn",
	DealerTurn:     "dealer-turn",
	Resolution:     "resolution",
	RoundOver:      "round-over",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Decision is the player's choice during their turn
type Decision int

const (
	Hit Decision = iota
	Stand
)

func (d Decision) String() string {
	if d == Stand {
		return "stand"
	}
	return "hit"
}

// View is a snapshot of the table handed to renderers and deciders
type View struct {
	State   State
	Player  []card.Card
	Dealer  []card.Card // first card is card.Hidden while DealerHidden is set
	Message string

	PlayerValue  int
	DealerValue  int // zero while DealerHidden is set
	DealerHidden bool

	PlayerWins int
	DealerWins int
}

// Renderer receives the table after every change
type Renderer interface {
	Render(v View)
}

// Decider supplies the player's choices. Implementations block until a
// valid answer is available.
type Decider interface {
	Decide(v View) (Decision, error)
	Continue(v View) (bool, error)
}
