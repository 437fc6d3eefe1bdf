package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/arcanaland/blackjack/internal/game"
)

// errInvalidInput marks an answer outside the accepted tokens. It never
// leaves this package; the question is asked again instead.
var errInvalidInput = errors.New("invalid input")

var _ game.Decider = (*Terminal)(nil)

// Terminal asks the player for decisions on a line-oriented stream
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal reading answers from in and writing
// questions to out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Decide asks whether to hit or stand
func (t *Terminal) Decide(v game.View) (game.Decision, error) {
	choices := map[string]game.Decision{"h": game.Hit, "s": game.Stand}
	return ask(t, "Hit or Stand? H/S: ", choices)
}

// Continue asks whether to play another round
func (t *Terminal) Continue(v game.View) (bool, error) {
	choices := map[string]bool{"y": true, "n": false}
	return ask(t, "Play again? Y/N: ", choices)
}

func ask[T any](t *Terminal, question string, choices map[string]T) (T, error) {
	for {
		fmt.Fprint(t.out, question)
		answer, err := t.readLine()
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(answer, choices)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(t.out, color.YellowString("%q is not a valid answer, try again.", answer))
	}
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		// A final answer without a trailing newline still counts
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return line, nil
}

func parse[T any](answer string, choices map[string]T) (T, error) {
	v, ok := choices[strings.ToLower(strings.TrimSpace(answer))]
	if !ok {
		var zero T
		return zero, errInvalidInput
	}
	return v, nil
}
