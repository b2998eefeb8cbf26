// Package ansii prints colored text for plain terminal output such as the
// match history listing.
package ansii

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"termpong/internal/pong"
)

type ANSI string

const (
	reset     ANSI = "\033[0m"
	bold      ANSI = "\033[1m"
	underline ANSI = "\033[4m"
	faint     ANSI = "\033[2m"
	red       ANSI = "\033[31m"
	blue      ANSI = "\033[34m"
)

type style struct {
	Reset     ANSI
	Bold      ANSI
	Underline ANSI
	Faint     ANSI
}

type color struct {
	Red  ANSI
	Blue ANSI
}

var (
	Styles = style{Bold: bold, Underline: underline, Faint: faint, Reset: reset}
	Colors = color{Red: red, Blue: blue}
)

const ruleRune = "─"

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func GetTermSize(f *os.File) (width int, height int, err error) {
	return term.GetSize(int(f.Fd()))
}

// Printer writes styled lines. With Color unset it writes plain text.
type Printer struct {
	W     io.Writer
	Color bool
	Width int
}

func (p Printer) paint(text string, styles ...ANSI) string {
	if !p.Color || len(styles) == 0 {
		return text
	}
	var b strings.Builder
	for _, s := range styles {
		b.WriteString(string(s))
	}
	b.WriteString(text)
	b.WriteString(string(Styles.Reset))
	return b.String()
}

// WriteHistory prints records as given, one line each, under a header.
func (p Printer) WriteHistory(records []pong.MatchRecord) error {
	if _, err := fmt.Fprintln(p.W, p.paint("Recent matches", Styles.Bold, Styles.Underline)); err != nil {
		return err
	}
	if len(records) == 0 {
		_, err := fmt.Fprintln(p.W, p.paint("No games played yet", Styles.Faint))
		return err
	}

	for _, rec := range records {
		winner := Colors.Red
		if rec.PlayerWon() {
			winner = Colors.Blue
		}
		line := fmt.Sprintf("%s  %s  %s",
			p.paint(rec.CompletedAt.Local().Format("2006-01-02 15:04:05"), Styles.Faint),
			pong.ScoreLine(rec.PlayerScore, rec.AIScore),
			p.paint("Winner: "+rec.Winner, winner, Styles.Bold),
		)
		if _, err := fmt.Fprintln(p.W, line); err != nil {
			return err
		}
	}

	if p.Width > 0 {
		_, err := fmt.Fprintln(p.W, p.paint(strings.Repeat(ruleRune, min(p.Width, 72)), Styles.Faint))
		return err
	}
	return nil
}
