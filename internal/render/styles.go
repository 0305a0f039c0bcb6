package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/metaverse-slayer/internal/view"
)

var (
	titleStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 140, 60)).Bold(true)
	subtitleStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hintStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	noticeStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(255, 200, 50))
)

// styleFor maps a line emphasis to a terminal style
func styleFor(e view.Emphasis) tcell.Style {
	switch e {
	case view.EmphasisHeading:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case view.EmphasisDim:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case view.EmphasisStat:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255))
	case view.EmphasisAlert:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 90, 90))
	case view.EmphasisGood:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 230, 120))
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}
