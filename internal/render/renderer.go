// Package render draws view frames onto a tcell screen
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/KirkDiggler/metaverse-slayer/internal/view"
)

// Renderer draws frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen and renders f: header, body, notice, key hints.
func (r *Renderer) Draw(f view.Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.centerText(1, view.Title, titleStyle)
	r.centerText(2, view.Subtitle, subtitleStyle)

	// Body rows stop above the hint bar.
	y := 4
	for _, line := range f.Lines {
		if y >= h-2 {
			break
		}
		r.centerText(y, line.Text, styleFor(line.Emphasis))
		y++
	}

	if f.Notice != "" {
		r.drawNotice(f.Notice, w, h)
	}

	if h > 0 {
		r.drawText(1, h-1, strings.Join(f.Hints, "   "), hintStyle)
	}

	r.screen.Show()
}

// drawNotice draws a boxed message across the middle of the screen.
func (r *Renderer) drawNotice(msg string, w, h int) {
	text := " " + msg + " "
	width := runewidth.StringWidth(text)
	x := (w - width) / 2
	if x < 0 {
		x = 0
	}
	y := h / 2

	r.fill(x-1, y-1, width+2, noticeStyle)
	r.drawText(x-1, y, " ", noticeStyle)
	r.drawText(x, y, text, noticeStyle)
	r.drawText(x+width, y, " ", noticeStyle)
	r.fill(x-1, y+1, width+2, noticeStyle)
}

func (r *Renderer) fill(x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (r *Renderer) centerText(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

// drawText writes text from (x, y). Zero-width runes such as emoji variation
// selectors ride along with the glyph before them.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	var glyph []rune
	flush := func() {
		if len(glyph) == 0 {
			return
		}
		col += r.putGlyph(col, y, string(glyph), style)
		glyph = glyph[:0]
	}

	for _, ch := range text {
		if runewidth.RuneWidth(ch) == 0 && len(glyph) > 0 {
			glyph = append(glyph, ch)
			continue
		}
		flush()
		glyph = append(glyph, ch)
	}
	flush()
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position
// (x, y) and returns the number of columns it took.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return 0
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)

	width := runewidth.StringWidth(glyph)
	if width == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
	if width < 1 {
		width = 1
	}
	return width
}
