package main

import (
	"machine"
	"machine/usb"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"

	"github.com/tom-hoffman/nd-program-selector/bank"
	"github.com/tom-hoffman/nd-program-selector/debug"
	"github.com/tom-hoffman/nd-program-selector/input"
	"github.com/tom-hoffman/nd-program-selector/panel"
	"github.com/tom-hoffman/nd-program-selector/selector"
)

const (
	// The Nord Drum listens on channel 10. 255 is never sent; an empty
	// filter simply dispatches nothing.
	outputChannel = 10
	midiCable     = 0

	settle = 1 * time.Second
	tick   = 10 * time.Millisecond
)

var (
	stripPin = machine.GPIO1
	leftBtn  = machine.GPIO2
	rightBtn = machine.GPIO3
	modeSw   = machine.GPIO4
)

func main() {
	usb.Product = "ND Program Selector"

	time.Sleep(settle)

	for _, p := range []machine.Pin{leftBtn, rightBtn, modeSw} {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	i2c := machine.I2C0
	i2c.Configure(machine.I2CConfig{
		Frequency: 2.8 * machine.MHz,
		SDA:       machine.GPIO12,
		SCL:       machine.GPIO13,
	})

	display := ssd1306.NewI2C(i2c)
	display.Configure(ssd1306.Config{
		Address:  0x3C,
		Width:    128,
		Height:   64,
		Rotation: drivers.Rotation180,
	})
	display.ClearDisplay()

	strip := NewStrip(stripPin)
	setupMIDI()

	debug.Log("bank", "%d programs in catalog", bank.Programs())

	state := selector.New()
	in := input.NewReader(switchRight())
	mode := currentMode(switchRight())

	if idx, ok := state.Selected(); ok {
		sendProgramChange(idx)
	}
	strip.Show(panel.Frame(state, mode))
	drawStatus(&display, state, mode)

	for {
		ev := in.Poll(pressed(leftBtn), pressed(rightBtn), switchRight())
		mode = currentMode(ev.SwitchRight)

		dirty := ev.SwitchMoved
		if ev.LeftPress {
			if idx, ok := state.AdvanceLeft(mode); ok {
				sendProgramChange(idx)
			}
			dirty = true
		}
		if ev.RightPress {
			if idx, ok := state.AdvanceRight(mode); ok {
				sendProgramChange(idx)
			}
			dirty = true
		}

		// A transport start/stop resets the synth's idea of the active
		// program; send ours again. Selection state is untouched.
		if transportSeen() {
			if idx, ok := state.Selected(); ok {
				sendProgramChange(idx)
			}
		}

		if dirty {
			strip.Show(panel.Frame(state, mode))
			drawStatus(&display, state, mode)
		}

		time.Sleep(tick)
	}
}

// pressed reads an active-low momentary button.
func pressed(p machine.Pin) bool {
	return !p.Get()
}

// switchRight reads the slider, which grounds the pin in its right position.
func switchRight() bool {
	return !modeSw.Get()
}

func currentMode(right bool) selector.Mode {
	if right {
		return selector.Program
	}
	return selector.Browse
}
