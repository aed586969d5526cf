package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stacker/board"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/piece"
)

const (
	cellWidth  = 2
	panelWidth = 16
	boardWidth = board.Columns*cellWidth + 2
	fieldWidth = boardWidth + panelWidth + 2
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 120, 140))
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 100))
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var palette = [...]tcell.Color{
	board.ColorNone:    tcell.ColorDefault,
	board.ColorCyan:    tcell.NewRGBColor(0, 200, 220),
	board.ColorYellow:  tcell.NewRGBColor(230, 210, 0),
	board.ColorPurple:  tcell.NewRGBColor(170, 60, 200),
	board.ColorGreen:   tcell.NewRGBColor(60, 200, 60),
	board.ColorRed:     tcell.NewRGBColor(220, 50, 50),
	board.ColorBlue:    tcell.NewRGBColor(50, 90, 230),
	board.ColorOrange:  tcell.NewRGBColor(240, 140, 0),
	board.ColorGarbage: tcell.NewRGBColor(110, 110, 110),
}

func colorOf(c board.Color) tcell.Color {
	if int(c) < len(palette) {
		return palette[c]
	}
	return tcell.ColorDefault
}

// drawText writes s starting at x, y and returns the column after it.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// drawSession draws one playfield with its side panel at x, y.
func drawSession(screen tcell.Screen, x, y int, title string, s *game.Session) {
	drawText(screen, x, y, styleText.Bold(true), title)
	top := y + 1

	for r := 0; r < board.VisibleRows+2; r++ {
		screen.SetContent(x, top+r, '│', nil, styleBorder)
		screen.SetContent(x+boardWidth-1, top+r, '│', nil, styleBorder)
	}
	for c := 0; c < boardWidth; c++ {
		screen.SetContent(x+c, top, '─', nil, styleBorder)
		screen.SetContent(x+c, top+board.VisibleRows+1, '─', nil, styleBorder)
	}
	screen.SetContent(x, top, '┌', nil, styleBorder)
	screen.SetContent(x+boardWidth-1, top, '┐', nil, styleBorder)
	screen.SetContent(x, top+board.VisibleRows+1, '└', nil, styleBorder)
	screen.SetContent(x+boardWidth-1, top+board.VisibleRows+1, '┘', nil, styleBorder)

	s.Render(game.RenderFunc(func(row, col int, color board.Color, flags game.CellFlags) {
		cx, cy := x+1+col*cellWidth, top+1+row
		switch flags {
		case game.CellEmpty:
			screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
			screen.SetContent(cx+1, cy, '·', nil, styleDim)
		case game.CellGhost:
			style := tcell.StyleDefault.Foreground(colorOf(color))
			screen.SetContent(cx, cy, '░', nil, style)
			screen.SetContent(cx+1, cy, '░', nil, style)
		default:
			style := tcell.StyleDefault.Background(colorOf(color))
			screen.SetContent(cx, cy, ' ', nil, style)
			screen.SetContent(cx+1, cy, ' ', nil, style)
		}
	}))

	// incoming garbage meter along the left border
	pending := min(s.Garbage().Pending()+s.Garbage().Inbound(), board.VisibleRows)
	for i := range pending {
		screen.SetContent(x, top+board.VisibleRows-i, '┃', nil, styleAlert)
	}

	px := x + boardWidth + 2
	py := top
	line := func(label string, value any) {
		drawText(screen, px, py, styleText, fmt.Sprintf("%-7s %v", label, value))
		py++
	}
	line("Score", s.Score())
	line("Lines", s.Lines())
	line("Level", s.Level())
	line("Combo", s.Combo())
	if s.BackToBack() {
		drawText(screen, px, py, styleText.Bold(true), "B2B")
	}
	py++
	if last := s.LastClear(); last.Lines > 0 {
		drawText(screen, px, py, styleDim, last.Name())
	}
	py += 2

	drawText(screen, px, py, styleText, "Hold")
	py++
	if held, ok := s.Held(); ok {
		style := tcell.StyleDefault.Background(colorOf(held.Color))
		if !s.HoldAvailable() {
			style = tcell.StyleDefault.Background(palette[board.ColorGarbage])
		}
		drawShape(screen, px, py, held.Shape, style)
	}
	py += 3

	drawText(screen, px, py, styleText, "Next")
	py++
	for _, shape := range s.Next() {
		drawShape(screen, px, py, shape, tcell.StyleDefault.Background(colorOf(shape.Color())))
		py += 3
	}

	switch {
	case s.GameOver():
		drawText(screen, x+3, top+board.VisibleRows/2, styleAlert, " GAME OVER ")
	case s.Paused():
		drawText(screen, x+5, top+board.VisibleRows/2, styleText.Reverse(true), " PAUSED ")
	}
}

// drawShape draws a preview of shape in its spawn orientation.
func drawShape(screen tcell.Screen, x, y int, shape piece.Shape, style tcell.Style) {
	p := piece.New(shape)
	minRow, minCol := p.Cells[0].Row, p.Cells[0].Col
	for _, pt := range p.Cells {
		minRow = min(minRow, pt.Row)
		minCol = min(minCol, pt.Col)
	}
	for _, pt := range p.Cells {
		cx := x + (pt.Col-minCol)*cellWidth
		cy := y + pt.Row - minRow
		screen.SetContent(cx, cy, ' ', nil, style)
		screen.SetContent(cx+1, cy, ' ', nil, style)
	}
}
