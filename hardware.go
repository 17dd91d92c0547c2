package main

import "github.com/bshepherdson/tc-chip8/common"

var deviceTypes = map[string]func() (common.Device, error){
	"clock":       func() (common.Device, error) { return NewClock(), nil },
	"sdl-display": NewDisplay,
	"sdl-keypad":  NewKeypad,
	"sdl-beeper":  NewBeeper,
	"gocui":       NewGocui,
}

var deviceDescriptions = map[string]string{
	"clock":       "60 Hz delay and sound timer clock",
	"sdl-display": "SDL window showing the 64x32 screen",
	"sdl-keypad":  "SDL keyboard as the hex keypad; needs sdl-display for a window",
	"sdl-beeper":  "SDL audio tone while the sound timer runs",
	"gocui":       "Terminal UI with screen, registers and status panes",
}

// Devices that take over the terminal, leaving no debug console.
var terminalDevices = map[string]bool{
	"gocui": true,
	"tty":   true,
}
