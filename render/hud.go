package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ajikmega/GAME-SURF/engine"
)

// drawText writes s starting at x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(1, runewidth.RuneWidth(ch))
	}
	return x
}

// drawCentered writes s centered on row y
func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	x := (r.width - runewidth.StringWidth(s)) / 2
	r.drawText(max(0, x), y, s, style)
}

// drawHUD draws the score line on the top row
func (r *TerminalRenderer) drawHUD(f Frame, defaultStyle tcell.Style) {
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, defaultStyle)
	}

	label := defaultStyle.Foreground(tc(RgbStatusText))
	value := defaultStyle.Foreground(tc(RgbHUDText)).Bold(true)
	coin := defaultStyle.Foreground(tc(RgbCoin)).Bold(true)

	x := r.drawText(1, 0, "DIST ", label)
	x = r.drawText(x, 0, fmt.Sprintf("%-6d", r.score.Distance), value)
	x = r.drawText(x+1, 0, "COINS ", label)
	x = r.drawText(x, 0, fmt.Sprintf("%-4d", r.score.Coins), coin)
	x = r.drawText(x+1, 0, "BEST ", label)
	r.drawText(x, 0, fmt.Sprintf("%d", f.HighScore), value)

	right := strings.ToUpper(f.Theme.Name)
	if f.Replay {
		right = "REPLAY " + right
	}
	r.drawText(r.width-runewidth.StringWidth(right)-1, 0, right, defaultStyle.Foreground(tc(RgbAccentCyan)))
}

// drawPanel draws a bordered box centered on the track with the given lines
func (r *TerminalRenderer) drawPanel(lines []string, styles []tcell.Style) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	w := min(r.width-2, inner+4)
	h := len(lines) + 2
	x0 := (r.width - w) / 2
	y0 := r.track.Y + (r.track.Height-h)/2

	bg := tcell.StyleDefault.Background(tc(RgbHUDBg))
	border := bg.Foreground(tc(RgbMenuBorder))
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+h-1) && (x == x0 || x == x0+w-1):
				ch = '+'
			case y == y0 || y == y0+h-1:
				ch = '-'
			case x == x0 || x == x0+w-1:
				ch = '|'
			}
			r.screen.SetContent(x, y, ch, nil, border)
		}
	}

	for i, l := range lines {
		style := bg.Foreground(tc(RgbHUDText))
		if i < len(styles) {
			style = styles[i]
		}
		r.drawCentered(y0+1+i, l, style)
	}
}

func (r *TerminalRenderer) drawStartMenu(f Frame) {
	bg := tcell.StyleDefault.Background(tc(RgbHUDBg))
	title := bg.Foreground(tc(RgbHighlight)).Bold(true)
	text := bg.Foreground(tc(RgbHUDText))
	dim := bg.Foreground(tc(RgbStatusText))

	r.drawPanel([]string{
		"G A M E   S U R F",
		"",
		fmt.Sprintf("Theme: %s", f.Theme.Name),
		fmt.Sprintf("Best: %d", f.HighScore),
		"",
		"Enter / r  run",
		"t  change theme",
		"q  quit",
		"",
		"<-/->/A/D lane  W/space jump  S slide",
	}, []tcell.Style{title, text, text, text, text, text, text, text, text, dim})
}

func (r *TerminalRenderer) drawGameOver(f Frame) {
	bg := tcell.StyleDefault.Background(tc(RgbHUDBg))
	title := bg.Foreground(tc(RgbObstacle)).Bold(true)
	text := bg.Foreground(tc(RgbHUDText))
	gold := bg.Foreground(tc(RgbHighlight)).Bold(true)

	lines := []string{"B U S T E D", ""}
	styles := []tcell.Style{title, text}
	if res := f.Result; res != nil {
		lines = append(lines,
			fmt.Sprintf("Distance: %d", res.FinalDistance),
			fmt.Sprintf("Coins: %d", res.FinalCoins),
		)
		styles = append(styles, text, text)
		if res.NewHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
			styles = append(styles, gold)
		} else {
			lines = append(lines, fmt.Sprintf("Best: %d", res.HighScore))
			styles = append(styles, text)
		}
	}
	lines = append(lines, "", "Enter / r  run again    q  quit")
	styles = append(styles, text, text)

	r.drawPanel(lines, styles)
}

// drawStatusBar shows key hints, or the metrics line in debug mode
func (r *TerminalRenderer) drawStatusBar(f Frame, defaultStyle tcell.Style) {
	y := r.height - 1
	style := defaultStyle.Foreground(tc(RgbStatusText))
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	var line string
	switch {
	case r.debug && f.Status != nil:
		line = f.Status.Line()
	case f.Phase == engine.PhasePlaying:
		line = "arrows/WASD move  space jump  q quit  F1 debug"
	default:
		line = "Enter run  t theme  q quit  F1 debug"
	}
	r.drawText(1, y, runewidth.Truncate(line, r.width-2, "~"), style)
}

func (r *TerminalRenderer) drawTooSmall(style tcell.Style) {
	msg := fmt.Sprintf("terminal too small (%dx%d)", r.width, r.height)
	r.drawText(0, 0, runewidth.Truncate(msg, r.width, "~"), style)
}
