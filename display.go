package main

import (
	"image/color"
	"strconv"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/tom-hoffman/nd-program-selector/bank"
	"github.com/tom-hoffman/nd-program-selector/selector"
)

var textWhite = color.RGBA{255, 255, 255, 255}

// drawStatus puts the active style/category on the OLED in browse mode and
// the selected preset's name and program number in program mode. The strip
// is the real UI; this is just the label for what it shows.
func drawStatus(d *ssd1306.Device, s *selector.State, m selector.Mode) {
	d.ClearBuffer()

	if m == selector.Browse {
		tinyfont.WriteLine(d, &freemono.Bold12pt7b, 4, 28, s.Style().String(), textWhite)
		tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 4, 52, s.Category().String(), textWhite)
	} else if idx, ok := s.Selected(); ok {
		tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 4, 28, bank.Name(idx), textWhite)
		num := "P" + strconv.Itoa(int(idx)+1)
		tw, _ := tinyfont.LineWidth(&proggy.TinySZ8pt7b, num)
		tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 124-int16(tw), 60, num, textWhite)
	}

	d.Display()
}
