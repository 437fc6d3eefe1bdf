package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/game"
)

const clearScreen = "\x1b[H\x1b[2J"

// Options controls how the table is drawn
type Options struct {
	Color       bool
	ClearScreen bool
	DealerPause time.Duration
	CardBack    string // hex color of the face-down card
}

// Terminal draws the table to a terminal or any other writer
type Terminal struct {
	out   io.Writer
	opts  Options
	tty   bool
	back  colorful.Color
	sleep func(time.Duration)

	red   *colorize.Color
	black *colorize.Color
	label *colorize.Color
	note  *colorize.Color
}

var _ game.Renderer = (*Terminal)(nil)

// New creates a Terminal renderer writing to out
func New(out io.Writer, opts Options) (*Terminal, error) {
	back, err := colorful.Hex(opts.CardBack)
	if err != nil {
		return nil, fmt.Errorf("invalid card back color %q: %v", opts.CardBack, err)
	}

	t := &Terminal{
		out:   out,
		opts:  opts,
		back:  back,
		sleep: time.Sleep,
		red:   colorize.New(colorize.FgRed, colorize.Bold),
		black: colorize.New(colorize.FgHiWhite, colorize.Bold),
		label: colorize.New(colorize.FgCyan),
		note:  colorize.New(colorize.FgHiYellow),
	}
	if f, ok := out.(*os.File); ok {
		t.tty = term.IsTerminal(int(f.Fd()))
	}
	if opts.Color {
		for _, c := range []*colorize.Color{t.red, t.black, t.label, t.note} {
			c.EnableColor()
		}
	} else {
		for _, c := range []*colorize.Color{t.red, t.black, t.label, t.note} {
			c.DisableColor()
		}
	}
	return t, nil
}

// Render draws one frame of the table
func (t *Terminal) Render(v game.View) {
	if t.opts.ClearScreen && t.tty {
		fmt.Fprint(t.out, clearScreen)
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.handLine("Dealer", v.Dealer, v.DealerValue, !v.DealerHidden))
	fmt.Fprintln(t.out, t.handLine("Player", v.Player, v.PlayerValue, true))
	fmt.Fprintln(t.out)

	if v.Message != "" {
		for _, line := range wrapText(v.Message, t.width()) {
			fmt.Fprintln(t.out, t.note.Sprint(line))
		}
	}

	if v.State == game.RoundOver {
		fmt.Fprintln(t.out, Scoreboard(v.PlayerWins, v.DealerWins))
	}

	if v.State == game.DealerTurn && t.opts.DealerPause > 0 {
		t.sleep(t.opts.DealerPause)
	}
}

// Scoreboard renders both win counts in a box
func Scoreboard(playerWins, dealerWins int) string {
	body := fmt.Sprintf("Player: %d\nDealer: %d", playerWins, dealerWins)
	return pterm.DefaultBox.
		WithTitle("Wins").
		WithTitleTopCenter().
		WithHorizontalPadding(2).
		Sprint(body)
}

func (t *Terminal) handLine(name string, cards []card.Card, value int, showValue bool) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = t.Card(c)
	}
	line := t.label.Sprint(name+": ") + strings.Join(parts, " ")
	if showValue && len(cards) > 0 {
		line += fmt.Sprintf(" (%d)", value)
	}
	return line
}

// Card renders a single card, drawing the hidden card as a colored back
func (t *Terminal) Card(c card.Card) string {
	if c.IsHidden() {
		if !t.opts.Color {
			return c.String()
		}
		r, g, b := t.back.RGB255()
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, b, "  ??  ")
	}
	if c.IsRed() {
		return t.red.Sprint(c.String())
	}
	return t.black.Sprint(c.String())
}

func (t *Terminal) width() int {
	if f, ok := t.out.(*os.File); ok && t.tty {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= width:
			currentLine += " " + word
		default:
			result = append(result, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		result = append(result, currentLine)
	}
	return result
}
