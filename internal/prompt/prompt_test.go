package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/arcanaland/blackjack/internal/game"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     game.Decision
		reprompt int
	}{
		{name: "hit", input: "h\n", want: game.Hit},
		{name: "stand", input: "s\n", want: game.Stand},
		{name: "upper case", input: "H\n", want: game.Hit},
		{name: "padded", input: "  S \r\n", want: game.Stand},
		{name: "no trailing newline", input: "s", want: game.Stand},
		{name: "reprompts", input: "x\nhit\n\ns\n", want: game.Stand, reprompt: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewTerminal(strings.NewReader(tt.input), &out).Decide(game.View{})
			if err != nil {
				t.Fatalf("Decide() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decide() = %s, want %s", got, tt.want)
			}
			if n := strings.Count(out.String(), "Hit or Stand?"); n != tt.reprompt+1 {
				t.Errorf("asked %d times, want %d", n, tt.reprompt+1)
			}
			if n := strings.Count(out.String(), "not a valid answer"); n != tt.reprompt {
				t.Errorf("%d invalid answer notices, want %d", n, tt.reprompt)
			}
		})
	}
}

func TestContinue(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"N\n", false},
		{"yes\nmaybe\nn\n", false},
	}

	for _, tt := range tests {
		got, err := NewTerminal(strings.NewReader(tt.input), io.Discard).Continue(game.View{})
		if err != nil {
			t.Fatalf("Continue(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Continue(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSequentialAnswers(t *testing.T) {
	term := NewTerminal(strings.NewReader("h\nh\ns\ny\n"), io.Discard)
	want := []game.Decision{game.Hit, game.Hit, game.Stand}
	for i, w := range want {
		got, err := term.Decide(game.View{})
		if err != nil || got != w {
			t.Fatalf("Decide() #%d = %s, %v, want %s", i, got, err, w)
		}
	}
	again, err := term.Continue(game.View{})
	if err != nil || !again {
		t.Errorf("Continue() = %v, %v, want true", again, err)
	}
}

func TestEOF(t *testing.T) {
	_, err := NewTerminal(strings.NewReader("x\n"), io.Discard).Decide(game.View{})
	if !errors.Is(err, io.EOF) {
		t.Errorf("Decide() error = %v, want io.EOF", err)
	}
}
