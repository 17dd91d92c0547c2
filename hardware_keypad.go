package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/bshepherdson/tc-chip8/common"
)

// Keypad feeds SDL keyboard events to the hex keypad. It also owns the SDL
// event queue, so window close and the F-keys are handled here.
type Keypad struct {
	lastPoll time.Time
}

const inputInterval time.Duration = time.Millisecond * 5

var fKeys = map[sdl.Keycode]int{
	sdl.K_F1: 1,
	sdl.K_F2: 2,
	sdl.K_F3: 3,
	sdl.K_F4: 4,
}

func (k *Keypad) Name() string { return "sdl-keypad" }

func (k *Keypad) Tick(e common.Emulator) {
	if time.Since(k.lastPoll) < inputInterval {
		return
	}
	k.lastPoll = time.Now()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			e.Exit()
		case *sdl.KeyboardEvent:
			if t.Repeat != 0 {
				continue
			}
			down := t.Type == sdl.KEYDOWN

			if n, ok := fKeys[t.Keysym.Sym]; ok {
				if down {
					if emu, ok := e.(*emulator); ok {
						fKey(emu, n)
					}
				}
				continue
			}

			key, ok := common.KeyForRune(rune(t.Keysym.Sym))
			if !ok {
				continue
			}
			if err := e.Machine().SetKeyState(key, down); err != nil {
				slog.Error("bad key", "key", key, "err", err)
			}
		}
	}
}

func (k *Keypad) Cleanup() {}

func NewKeypad() (common.Device, error) {
	if err := sdl.InitSubSystem(sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("failed to start SDL events: %w", err)
	}
	return new(Keypad), nil
}
