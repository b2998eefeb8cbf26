// Package renderer draws game snapshots onto a tcell screen.
package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"termpong/internal/pong"
)

const (
	MinWidth  = 40
	MinHeight = 12

	// the history panel is only shown when the screen is at least this wide
	panelMinScreenWidth = 100
	panelWidth          = 36
	historyLines        = 3
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleNet     = styleDefault.Foreground(tcell.ColorGray)
	styleHeader  = styleDefault.Bold(true)
	styleHint    = styleDefault.Foreground(tcell.ColorDarkGray)
	styleWarning = styleDefault.Foreground(tcell.ColorYellow)
	stylePanel   = styleDefault.Foreground(tcell.ColorSilver)
)

type Rect struct {
	X, Y, W, H int
}

// Layout splits a screen into the court and the optional history panel.
// Row 0 always holds the current score line.
func Layout(screenW, screenH int) (court Rect, panel Rect) {
	court = Rect{X: 0, Y: 1, W: screenW, H: screenH - 1}
	if screenW >= panelMinScreenWidth {
		court.W = screenW - panelWidth - 1
		panel = Rect{X: court.W + 1, Y: 1, W: panelWidth, H: screenH - 1}
	}
	return court, panel
}

// DrawText puts a string on the screen, clipped to maxW cells.
func DrawText(s tcell.Screen, x, y, maxW int, text string, style tcell.Style) {
	i := 0
	for _, r := range text {
		if i >= maxW {
			return
		}
		s.SetContent(x+i, y, r, nil, style)
		i++
	}
}

// Render draws one frame and shows it. recent is newest first.
func Render(s tcell.Screen, snap pong.Snapshot, recent []pong.MatchRecord) {
	s.SetStyle(styleDefault)
	s.Clear()

	w, h := s.Size()
	if w < MinWidth || h < MinHeight {
		DrawText(s, 0, 0, w, "SCREEN TOO SMALL", styleWarning)
		DrawText(s, 0, 1, w, fmt.Sprintf("resize to at least %d x %d", MinWidth, MinHeight), styleWarning)
		s.Show()
		return
	}

	court, panel := Layout(w, h)

	DrawText(s, 0, 0, w, pong.ScoreLine(snap.PlayerScore, snap.AIScore), styleHeader)
	hint := "q quit  r reset"
	if len(hint) < w-40 {
		DrawText(s, w-len(hint), 0, len(hint), hint, styleHint)
	}

	drawCourt(s, court, snap)
	if panel.W > 0 {
		drawHistory(s, panel, recent)
	}

	s.Show()
}

type scaler struct {
	court         Rect
	width, height float64
}

func (sc scaler) col(x float64) int {
	c := int(x * float64(sc.court.W) / sc.width)
	return min(max(c, 0), sc.court.W-1)
}

func (sc scaler) row(y float64) int {
	r := int(y * float64(sc.court.H) / sc.height)
	return min(max(r, 0), sc.court.H-1)
}

func drawCourt(s tcell.Screen, court Rect, snap pong.Snapshot) {
	sc := scaler{court: court, width: snap.Width, height: snap.Height}

	netX := court.X + court.W/2
	for y := 0; y < court.H; y += 2 {
		s.SetContent(netX, court.Y+y, '│', nil, styleNet)
	}

	scoreStyle := styleHeader
	quarter := court.W / 4
	drawCentered(s, court.X+quarter, court.Y+1, fmt.Sprint(snap.PlayerScore), scoreStyle)
	drawCentered(s, court.X+quarter, court.Y+2, pong.PlayerLabel, styleDefault)
	drawCentered(s, court.X+3*quarter, court.Y+1, fmt.Sprint(snap.AIScore), scoreStyle)
	drawCentered(s, court.X+3*quarter, court.Y+2, pong.AILabel, styleDefault)

	drawPaddle(s, court, sc, snap.Player)
	drawPaddle(s, court, sc, snap.AI)

	ballStyle := styleDefault.Foreground(tcell.GetColor(snap.Ball.Color))
	s.SetContent(court.X+sc.col(snap.Ball.X), court.Y+sc.row(snap.Ball.Y), '●', nil, ballStyle)
}

func drawPaddle(s tcell.Screen, court Rect, sc scaler, p pong.Paddle) {
	style := styleDefault.Foreground(tcell.GetColor(p.Color))
	c0, c1 := sc.col(p.X), max(sc.col(p.X+p.Width)-1, sc.col(p.X))
	r0, r1 := sc.row(p.Y), max(sc.row(p.Y+p.Height)-1, sc.row(p.Y))
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			s.SetContent(court.X+c, court.Y+r, '█', nil, style)
		}
	}
}

func drawCentered(s tcell.Screen, cx, y int, text string, style tcell.Style) {
	n := len([]rune(text))
	DrawText(s, cx-n/2, y, n, text, style)
}

func drawHistory(s tcell.Screen, panel Rect, recent []pong.MatchRecord) {
	for y := panel.Y; y < panel.Y+panel.H; y++ {
		s.SetContent(panel.X-1, y, tcell.RuneVLine, nil, styleNet)
	}

	DrawText(s, panel.X+1, panel.Y, panel.W-1, "Recent matches", styleHeader)
	if len(recent) == 0 {
		DrawText(s, panel.X+1, panel.Y+2, panel.W-1, "No games played yet", stylePanel)
		return
	}

	y := panel.Y + 2
	for _, rec := range recent {
		if y+historyLines > panel.Y+panel.H {
			return
		}
		winStyle := styleDefault.Foreground(tcell.GetColor(pong.AIColor))
		if rec.PlayerWon() {
			winStyle = styleDefault.Foreground(tcell.GetColor(pong.PlayerColor))
		}
		DrawText(s, panel.X+1, y, panel.W-1, pong.ScoreLine(rec.PlayerScore, rec.AIScore), stylePanel)
		DrawText(s, panel.X+1, y+1, panel.W-1, "Winner: "+rec.Winner, winStyle)
		DrawText(s, panel.X+1, y+2, panel.W-1, rec.CompletedAt.Local().Format("2006-01-02 15:04:05"), styleHint)
		y += historyLines + 1
	}
}
