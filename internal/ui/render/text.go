package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawTextLine writes text starting at (startX, y), stopping at maxWidth
// columns. Returns the x position after the last cell written.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		for pad := 1; pad < w; pad++ {
			r.screen.SetContent(x+pad, y, ' ', nil, style)
		}
		x += w
	}
	return x
}

// fillLine pads the rest of a row with spaces in the given style.
func (r *Renderer) fillLine(fromX, y, toX int, style tcell.Style) {
	for x := fromX; x < toX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawRule draws a horizontal separator of dashes.
func (r *Renderer) drawRule(startX, y, width int, style tcell.Style) {
	for x := startX; x < startX+width; x++ {
		r.screen.SetContent(x, y, '-', nil, style)
	}
}
