// Package panel renders the selection state onto the 10-pixel WS2812B
// strip. Frames are raw GRB words ready for the PIO driver.
package panel

import (
	"github.com/tom-hoffman/nd-program-selector/bank"
	"github.com/tom-hoffman/nd-program-selector/selector"
)

// Cells is the strip length.
const Cells = 10

const (
	white  = 0x3F3F3FFF
	red    = 0x00FF00FF
	green  = 0xFF0000FF
	blue   = 0x0000FFFF
	yellow = 0x88FF00FF
	black  = 0x000000FF
)

// Frame builds the strip contents for the given state and mode. In program
// mode one cell per filtered program is lit, with the cursor marked in the
// accent color at cell count-cursor-1: the first program sits nearest the
// right-hand end of the strip, matching the enclosure. In browse mode cells
// 0-4 show styles (marked at 4-style, again right to left) and cells 5-9
// show categories (marked at 5+category, left to right). The opposite
// directions are how the faceplate is printed; keep them.
func Frame(s *selector.State, m selector.Mode) []uint32 {
	f := make([]uint32, Cells)
	for i := range f {
		f[i] = black
	}

	if m == selector.Browse {
		for i := 0; i < bank.NumStyles; i++ {
			f[i] = green
		}
		f[bank.NumStyles-1-int(s.Style())] = white

		for i := 0; i < bank.NumCategories; i++ {
			f[bank.NumStyles+i] = yellow
		}
		f[bank.NumStyles+int(s.Category())] = white
		return f
	}

	n := s.Count()
	for i := 0; i < n && i < Cells; i++ {
		f[i] = blue
	}
	if n > 0 {
		f[n-s.Cursor()-1] = red
	}
	return f
}
