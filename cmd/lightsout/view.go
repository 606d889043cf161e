package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/lightsout-backend/internal/lightsout"
)

const (
	originX   = 2
	originY   = 2
	cellWidth = 4
)

var (
	litStyle    = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	unlitStyle  = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	textStyle   = tcell.StyleDefault
)

// view is the terminal presentation of one board. It only forwards coordinates
// to the engine and redraws from the returned board.
type view struct {
	screen tcell.Screen
	board  lightsout.Board

	cursorRow, cursorCol int
}

func (that *view) draw() {
	that.screen.Clear()

	if that.board.IsWon() {
		drawText(that.screen, originX, originY, textStyle.Bold(true), "You Won!")
		drawText(that.screen, originX, originY+2, textStyle, "n: new game   q: quit")
		that.screen.Show()
		return
	}

	for y, row := range that.board {
		for x, lit := range row {
			style := unlitStyle
			if lit {
				style = litStyle
			}

			left := originX + x*cellWidth
			top := originY + y*2
			for dx := range cellWidth - 1 {
				that.screen.SetContent(left+dx, top, ' ', nil, style)
			}

			if y == that.cursorRow && x == that.cursorCol {
				that.screen.SetContent(left+1, top, '*', nil, cursorStyle.Background(styleBackground(style)))
			}
		}
	}

	help := "arrows: move   space/enter/click: flip   n: new game   q: quit"
	drawText(that.screen, originX, originY+that.board.Rows()*2+1, textStyle, help)
	that.screen.Show()
}

func (that *view) handleKey(ev *tcell.EventKey) {
	if that.board.IsWon() {
		return
	}

	switch ev.Key() {
	case tcell.KeyUp:
		that.moveCursor(-1, 0)
	case tcell.KeyDown:
		that.moveCursor(1, 0)
	case tcell.KeyLeft:
		that.moveCursor(0, -1)
	case tcell.KeyRight:
		that.moveCursor(0, 1)
	case tcell.KeyEnter:
		that.flip(that.cursorRow, that.cursorCol)
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			that.flip(that.cursorRow, that.cursorCol)
		}
	}
}

func (that *view) handleClick(x, y int) {
	if that.board.IsWon() || x < originX || y < originY || (y-originY)%2 != 0 {
		return
	}

	row, col := (y-originY)/2, (x-originX)/cellWidth
	if !that.board.InBounds(row, col) {
		return
	}

	that.cursorRow, that.cursorCol = row, col
	that.flip(row, col)
}

func (that *view) moveCursor(dRow, dCol int) {
	row, col := that.cursorRow+dRow, that.cursorCol+dCol
	if that.board.InBounds(row, col) {
		that.cursorRow, that.cursorCol = row, col
	}
}

func (that *view) flip(row, col int) {
	that.board = that.board.Flip(row, col)
}

func styleBackground(style tcell.Style) tcell.Color {
	_, bg, _ := style.Decompose()
	return bg
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
