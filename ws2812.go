package main

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
)

// Strip drives the 10-pixel indicator bar through PIO0 with DMA.
type Strip struct {
	ws *piolib.WS2812B
}

func NewStrip(pin machine.Pin) *Strip {
	s, _ := pio.PIO0.ClaimStateMachine()
	ws, _ := piolib.NewWS2812B(s, pin)
	ws.EnableDMA(true)
	return &Strip{ws: ws}
}

// Show writes one raw GRB frame to the strip.
func (s *Strip) Show(frame []uint32) error {
	return s.ws.WriteRaw(frame)
}
