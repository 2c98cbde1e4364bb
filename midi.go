package main

import (
	"machine/usb/adc/midi"
	"sync/atomic"
)

const (
	msgStart = 0xFA
	msgStop  = 0xFC
)

var (
	usbMIDI = midi.Port()

	// Set from the USB receive callback, drained once per loop iteration.
	transportKick atomic.Bool
)

// setupMIDI installs the receive handler that watches for transport
// start/stop. Realtime status bytes carry no channel; everything else
// coming in is ignored.
func setupMIDI() {
	usbMIDI.SetRxHandler(func(b []byte) {
		// USB MIDI arrives as 4-byte event packets; the status byte is
		// the second byte of each packet.
		for i := 0; i+3 < len(b); i += 4 {
			switch b[i+1] {
			case msgStart, msgStop:
				transportKick.Store(true)
			}
		}
	})
}

// transportSeen reports whether a start or stop arrived since the last call.
func transportSeen() bool {
	return transportKick.Swap(false)
}

var pcBuf [4]byte

// sendProgramChange emits a program change for one catalog index on the
// fixed output channel.
func sendProgramChange(program uint8) {
	pcBuf[0] = (midiCable&0xf)<<4 | midi.CINProgramChange
	pcBuf[1] = midi.MsgProgramChange | ((outputChannel - 1) & 0xf)
	pcBuf[2] = program & 0x7f
	pcBuf[3] = 0x00
	usbMIDI.Write(pcBuf[:])
}
