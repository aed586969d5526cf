package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stacker/board"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/piece"
)

const (
	CellSize    = 28
	PreviewSize = 14
	BoardWidth  = board.Columns * CellSize
	BoardHeight = board.VisibleRows * CellSize
)

var (
	backgroundColor = color.RGBA{26, 27, 38, 255}
	gridColor       = color.RGBA{40, 42, 56, 255}
	borderColor     = color.RGBA{120, 120, 140, 255}
	garbageMeter    = color.RGBA{220, 50, 50, 255}
)

var cellColors = [...]color.RGBA{
	board.ColorNone:    {0, 0, 0, 0},
	board.ColorCyan:    {0, 200, 220, 255},
	board.ColorYellow:  {230, 210, 0, 255},
	board.ColorPurple:  {170, 60, 200, 255},
	board.ColorGreen:   {60, 200, 60, 255},
	board.ColorRed:     {220, 50, 50, 255},
	board.ColorBlue:    {50, 90, 230, 255},
	board.ColorOrange:  {240, 140, 0, 255},
	board.ColorGarbage: {110, 110, 110, 255},
}

func cellColor(c board.Color) color.RGBA {
	if int(c) < len(cellColors) {
		return cellColors[c]
	}
	return borderColor
}

func ghostColor(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 4, c.G / 4, c.B / 4, 255}
}

// drawSession draws one playfield with its side panel, the playfield's top
// left corner at x, y.
func drawSession(screen *ebiten.Image, x, y float32, title string, s *game.Session) {
	ebitenutil.DebugPrintAt(screen, title, int(x), int(y)-20)
	vector.DrawFilledRect(screen, x, y, BoardWidth, BoardHeight, backgroundColor, false)

	s.Render(game.RenderFunc(func(row, col int, c board.Color, flags game.CellFlags) {
		cx := x + float32(col*CellSize)
		cy := y + float32(row*CellSize)
		switch flags {
		case game.CellEmpty:
			vector.StrokeRect(screen, cx, cy, CellSize, CellSize, 1, gridColor, false)
		case game.CellGhost:
			vector.DrawFilledRect(screen, cx+1, cy+1, CellSize-2, CellSize-2, ghostColor(cellColor(c)), false)
		default:
			vector.DrawFilledRect(screen, cx+1, cy+1, CellSize-2, CellSize-2, cellColor(c), false)
		}
	}))
	vector.StrokeRect(screen, x-2, y-2, BoardWidth+4, BoardHeight+4, 2, borderColor, false)

	incoming := min(s.Garbage().Pending()+s.Garbage().Inbound(), board.VisibleRows)
	if incoming > 0 {
		h := float32(incoming * CellSize)
		vector.DrawFilledRect(screen, x-10, y+BoardHeight-h, 6, h, garbageMeter, false)
	}

	px, py := int(x)+BoardWidth+16, int(y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Score  %d\nLines  %d\nLevel  %d\nCombo  %d",
		s.Score(), s.Lines(), s.Level(), s.Combo(),
	), px, py)
	py += 64
	if s.BackToBack() {
		ebitenutil.DebugPrintAt(screen, "Back-to-back", px, py)
	}
	py += 16
	if last := s.LastClear(); last.Lines > 0 {
		ebitenutil.DebugPrintAt(screen, last.Name(), px, py)
	}
	py += 32

	ebitenutil.DebugPrintAt(screen, "Hold", px, py)
	py += 20
	if held, ok := s.Held(); ok {
		c := cellColor(held.Color)
		if !s.HoldAvailable() {
			c = ghostColor(c)
		}
		drawShape(screen, float32(px), float32(py), held.Shape, c)
	}
	py += 3 * PreviewSize

	ebitenutil.DebugPrintAt(screen, "Next", px, py)
	py += 20
	for _, shape := range s.Next() {
		drawShape(screen, float32(px), float32(py), shape, cellColor(shape.Color()))
		py += 3 * PreviewSize
	}

	var banner string
	switch {
	case s.GameOver():
		banner = "GAME OVER"
	case s.Paused():
		banner = "PAUSED"
	}
	if banner != "" {
		vector.DrawFilledRect(screen, x, y+BoardHeight/2-16, BoardWidth, 32, color.RGBA{0, 0, 0, 200}, false)
		ebitenutil.DebugPrintAt(screen, banner, int(x)+BoardWidth/2-len(banner)*3, int(y)+BoardHeight/2-8)
	}
}

// drawShape draws a preview of shape in its spawn orientation.
func drawShape(screen *ebiten.Image, x, y float32, shape piece.Shape, c color.RGBA) {
	p := piece.New(shape)
	minRow, minCol := p.Cells[0].Row, p.Cells[0].Col
	for _, pt := range p.Cells {
		minRow = min(minRow, pt.Row)
		minCol = min(minCol, pt.Col)
	}
	for _, pt := range p.Cells {
		cx := x + float32((pt.Col-minCol)*PreviewSize)
		cy := y + float32((pt.Row-minRow)*PreviewSize)
		vector.DrawFilledRect(screen, cx, cy, PreviewSize-1, PreviewSize-1, c, false)
	}
}
