// Package tui is the interactive terminal front end for creature searches.
package tui

import "github.com/gdamore/tcell/v2"

// NewScreen creates and initializes the terminal screen.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return s, nil
}

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleInput   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleName    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleNotice  = tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite)
)

// text draws s starting at x, y and returns the column after it.
func text(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// fill paints a w by h block with style.
func fill(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
