// pcmon is a host-side helper for checking the selector board: list the
// MIDI ports the OS sees, or attach to the board and print every program
// change and transport message it sends.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

const defaultPort = "ND Program Selector"

func main() {
	defer midi.CloseDriver()

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "watch":
		name := defaultPort
		if len(os.Args) > 2 {
			name = os.Args[2]
		}
		watch(name)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("pcmon - selector board monitor")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list          - list all MIDI ports")
	fmt.Println("  watch [name]  - print program changes from the board")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	for i, p := range midi.GetInPorts() {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, p := range midi.GetOutPorts() {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}

func findIn(name string) drivers.In {
	for _, p := range midi.GetInPorts() {
		if strings.Contains(strings.ToLower(p.String()), strings.ToLower(name)) {
			return p
		}
	}
	return nil
}

func watch(name string) {
	in := findIn(name)
	if in == nil {
		fmt.Printf("no input port matching %q (try: pcmon list)\n", name)
		return
	}
	fmt.Printf("Watching %s, Ctrl+C to exit\n", in.String())

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, prog uint8
		switch {
		case msg.GetProgramChange(&ch, &prog):
			fmt.Printf("[%8d] program change ch=%d program=%d\n", timestampms, ch+1, prog)
		case msg.Is(midi.StartMsg):
			fmt.Printf("[%8d] transport start\n", timestampms)
		case msg.Is(midi.StopMsg):
			fmt.Printf("[%8d] transport stop\n", timestampms)
		}
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer stop()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	<-sigc
}
