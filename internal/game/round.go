package game

import (
	"fmt"
	"log/slog"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/hand"
)

// Dealer hits on this value or below
const dealerHitLimit = 16

// Reason explains how a round was decided
type Reason int

const (
	DealerBlackjack Reason = iota
	PlayerBlackjack
	PlayerBust
	DealerBust
	HigherTotal
)

func (r Reason) String() string {
	switch r {
	case DealerBlackjack:
		return "dealer-blackjack"
	case PlayerBlackjack:
		return "player-blackjack"
	case PlayerBust:
		return "player-bust"
	case DealerBust:
		return "dealer-bust"
	case HigherTotal:
		return "higher-total"
	}
	return "unknown"
}

// Result is the outcome of a finished round
type Result struct {
	Winner      hand.Role
	Reason      Reason
	PlayerValue int
	DealerValue int
	Message     string
}

// Round drives one deal through to its outcome
type Round struct {
	deck     *deck.Deck
	player   *hand.Hand
	dealer   *hand.Hand
	decider  Decider
	renderer Renderer
	logger   *slog.Logger

	state  State
	result Result
}

// NewRound prepares a round over an already shuffled deck and empty hands
func NewRound(d *deck.Deck, player, dealer *hand.Hand, decider Decider, renderer Renderer, logger *slog.Logger) *Round {
	if logger == nil {
		logger = slog.Default()
	}
	return &Round{
		deck:     d,
		player:   player,
		dealer:   dealer,
		decider:  decider,
		renderer: renderer,
		logger:   logger,
		state:    Dealing,
	}
}

// State returns the phase the round is in
func (r *Round) State() State {
	return r.state
}

// Play runs the round to completion. The winner's win count is incremented
// once. A deck or decision error aborts the round with no winner.
func (r *Round) Play() (Result, error) {
	for r.state != RoundOver {
		var err error
		switch r.state {
		case Dealing:
			err = r.deal()
		case BlackjackCheck:
			r.checkBlackjack()
		case PlayerTurn:
			err = r.playerTurn()
		case DealerTurn:
			err = r.dealerTurn()
		case Resolution:
			r.resolve()
		default:
			return Result{}, fmt.Errorf("round in unexpected state %s", r.state)
		}
		if err != nil {
			r.player.Active = false
			r.dealer.Active = false
			return Result{}, fmt.Errorf("%s: %w", r.state, err)
		}
	}
	return r.result, nil
}

func (r *Round) deal() error {
	for i := 0; i < 2; i++ {
		for _, h := range []*hand.Hand{r.dealer, r.player} {
			c, err := r.deck.Deal()
			if err != nil {
				return err
			}
			h.AddCard(c)
		}
	}
	r.logger.Debug("dealt", "player", r.player.String(), "dealer", r.dealer.String())
	r.state = BlackjackCheck
	r.render("")
	return nil
}

func (r *Round) checkBlackjack() {
	switch {
	case r.dealer.IsBlackjack():
		r.finish(r.dealer, DealerBlackjack, "Dealer has blackjack. You lose.")
	case r.player.IsBlackjack():
		r.finish(r.player, PlayerBlackjack, "Player has blackjack! You win!")
	default:
		r.state = PlayerTurn
		r.player.Active = true
	}
}

func (r *Round) playerTurn() error {
	r.render("")
	for r.player.Active {
		decision, err := r.decider.Decide(r.view(""))
		if err != nil {
			return err
		}
		r.logger.Debug("player decision", "decision", decision.String(), "value", r.player.Value())

		if decision == Stand {
			r.player.Active = false
			r.state = DealerTurn
			r.render(fmt.Sprintf("Player stands with %d.", r.player.Value()))
			return nil
		}

		if err := r.draw(r.player); err != nil {
			return err
		}
		if r.player.IsBust() {
			r.player.Active = false
			r.finish(r.dealer, PlayerBust, fmt.Sprintf("Player busts with %d. You lose!", r.player.Value()))
			return nil
		}
		r.render("Player hits.")
	}
	return nil
}

func (r *Round) dealerTurn() error {
	r.dealer.Active = true
	for r.dealer.Value() <= dealerHitLimit {
		if err := r.draw(r.dealer); err != nil {
			return err
		}
		if r.dealer.IsBust() {
			r.dealer.Active = false
			r.finish(r.player, DealerBust, fmt.Sprintf("Dealer busts with %d. You win!", r.dealer.Value()))
			return nil
		}
		r.render("Dealer hits.")
	}
	r.dealer.Active = false
	r.state = Resolution
	r.render(fmt.Sprintf("Dealer stands with %d.", r.dealer.Value()))
	return nil
}

// resolve compares totals. Ties go to the dealer.
func (r *Round) resolve() {
	pv, dv := r.player.Value(), r.dealer.Value()
	if dv >= pv {
		r.finish(r.dealer, HigherTotal, fmt.Sprintf("You lose with %d. Dealer has %d.", pv, dv))
		return
	}
	r.finish(r.player, HigherTotal, fmt.Sprintf("You win with %d. Dealer has %d.", pv, dv))
}

func (r *Round) draw(h *hand.Hand) error {
	c, err := r.deck.Deal()
	if err != nil {
		return err
	}
	h.AddCard(c)
	r.logger.Debug("draw", "hand", h.Role.String(), "card", c.String(), "value", h.Value())
	return nil
}

func (r *Round) finish(winner *hand.Hand, reason Reason, msg string) {
	winner.Win()
	r.state = RoundOver
	r.result = Result{
		Winner:      winner.Role,
		Reason:      reason,
		PlayerValue: r.player.Value(),
		DealerValue: r.dealer.Value(),
		Message:     msg,
	}
	r.render(msg)
}

// dealerHidden reports whether the dealer's first card is still face down
func (r *Round) dealerHidden() bool {
	return r.state == Dealing || r.state == BlackjackCheck || r.state == PlayerTurn
}

func (r *Round) view(msg string) View {
	hide := r.dealerHidden()
	v := View{
		State:        r.state,
		Player:       r.player.Cards(),
		Dealer:       r.dealer.Visible(hide),
		Message:      msg,
		PlayerValue:  r.player.Value(),
		DealerHidden: hide,
		PlayerWins:   r.player.Wins(),
		DealerWins:   r.dealer.Wins(),
	}
	if !hide {
		v.DealerValue = r.dealer.Value()
	}
	return v
}

func (r *Round) render(msg string) {
	if r.renderer != nil {
		r.renderer.Render(r.view(msg))
	}
}
