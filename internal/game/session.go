package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/hand"
)

// Session plays rounds against the dealer until the player stops.
// Deck and hands live for the whole session; win counts carry over.
type Session struct {
	ID     string
	Deck   *deck.Deck
	Player *hand.Hand
	Dealer *hand.Hand

	decider  Decider
	renderer Renderer
	logger   *slog.Logger
	rng      *rand.Rand
	shuffle  func(d *deck.Deck) error
	rounds   int
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRand sets the random source used to shuffle
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithShuffle replaces the shuffle step run on the freshly filled deck
func WithShuffle(fn func(d *deck.Deck) error) Option {
	return func(s *Session) { s.shuffle = fn }
}

// NewSession creates a session with an empty deck and both hands
func NewSession(decider Decider, renderer Renderer, opts ...Option) *Session {
	s := &Session{
		ID:       uuid.New().String(),
		Player:   hand.New(hand.Player),
		Dealer:   hand.New(hand.Dealer),
		decider:  decider,
		renderer: renderer,
		logger:   slog.Default(),
		shuffle: func(d *deck.Deck) error {
			d.Shuffle()
			return nil
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.Deck = deck.New(s.rng)
	s.logger = s.logger.With("session", s.ID)
	return s
}

// Rounds returns how many rounds have finished
func (s *Session) Rounds() int {
	return s.rounds
}

// PlayRound resets the deck and hands and plays a single round
func (s *Session) PlayRound() (Result, error) {
	s.Deck.Clear()
	s.Deck.Fill()
	if err := s.shuffle(s.Deck); err != nil {
		return Result{}, fmt.Errorf("shuffle: %w", err)
	}
	s.Player.Clear()
	s.Dealer.Clear()

	logger := s.logger.With("round", s.rounds+1)
	logger.Debug("round started")

	res, err := NewRound(s.Deck, s.Player, s.Dealer, s.decider, s.renderer, logger).Play()
	if err != nil {
		logger.Error("round aborted", "error", err)
		return Result{}, err
	}
	s.rounds++
	logger.Info("round over",
		"winner", res.Winner.String(),
		"reason", res.Reason.String(),
		"player", res.PlayerValue,
		"dealer", res.DealerValue)
	return res, nil
}

// Run plays rounds until the decider declines to continue
func (s *Session) Run() error {
	for {
		res, err := s.PlayRound()
		if err != nil {
			return err
		}

		again, err := s.decider.Continue(s.summary(res.Message))
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	s.logger.Debug("session finished",
		"rounds", s.rounds,
		"player_wins", s.Player.Wins(),
		"dealer_wins", s.Dealer.Wins())
	if s.renderer != nil {
		s.renderer.Render(s.summary("Thanks for playing."))
	}
	return nil
}

func (s *Session) summary(msg string) View {
	return View{
		State:       RoundOver,
		Player:      s.Player.Cards(),
		Dealer:      s.Dealer.Cards(),
		Message:     msg,
		PlayerValue: s.Player.Value(),
		DealerValue: s.Dealer.Value(),
		PlayerWins:  s.Player.Wins(),
		DealerWins:  s.Dealer.Wins(),
	}
}
