// Command nsfplay loads an NSF file, drives its player at the file's
// requested tick rate, and shows a live grid view of zero page and the
// stack page while it runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"nsf6502/nsf"
	"nsf6502/wrapper"
)

const (
	gridWidth  = 16
	gridHeight = 32 // rows 0-15: zero page, rows 16-31: stack page
)

func main() {
	debug := flag.Bool("debug", false, "log every executed instruction")
	song := flag.Int("song", 0, "1-based subsong index; 0 uses the file's starting song")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-debug] [-song N] file.nsf\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	player, err := nsf.Load(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *song > 0 {
		player.CPU.A = uint8(*song - 1)
	}
	player.CPU.Debug = *debug

	title := player.Header.Name
	if title == "" {
		title = flag.Arg(0)
	}

	wrapper.Init()
	win := wrapper.NewWindow(gridHeight, gridWidth, title)
	controls := wrapper.NewControls()

	hz := 60.0
	if player.Header.NTSCSpeed > 0 {
		hz = 1_000_000.0 / float64(player.Header.NTSCSpeed)
	}
	paused := false

	for {
		controls.Poll()
		if controls.Pressed(wrapper.ControlQuit) {
			return
		}
		if controls.Pressed(wrapper.ControlPause) {
			paused = !paused
		}
		if controls.Pressed(wrapper.ControlSpeedUp) {
			hz *= 2
		}
		if controls.Pressed(wrapper.ControlSpeedDown) {
			hz /= 2
		}

		stepped := false
		if paused {
			if controls.Pressed(wrapper.ControlStep) {
				stepped = true
			}
		} else {
			stepped = true
		}

		if stepped {
			if err := player.Step(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
		}

		drawMemoryGrid(win, player)
		win.Blit()

		if !paused {
			time.Sleep(time.Duration(1_000_000_000.0 / hz))
		}
	}
}

func drawMemoryGrid(win *wrapper.Window, player *nsf.Player) {
	for row := 0; row < gridHeight; row++ {
		var base uint16
		if row < 16 {
			base = uint16(row) * gridWidth // zero page: $0000-$00FF
		} else {
			base = 0x0100 + uint16(row-16)*gridWidth // stack page: $0100-$01FF
		}
		for col := 0; col < gridWidth; col++ {
			win.SetPixel(col, row, player.CPU.Read8(base+uint16(col)))
		}
	}
}
