package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/bshepherdson/tc-chip8/chip8"
	"github.com/bshepherdson/tc-chip8/common"
)

const frameInterval = time.Second / 60

// Display paints the screen into an SDL window, with phosphor persistence.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	grid     chip8.Grid
	phosphor common.Phosphor
	fading   bool

	lastFrame time.Time
}

func (d *Display) Name() string { return "sdl-display" }

func (d *Display) Tick(e common.Emulator) {
	if time.Since(d.lastFrame) < frameInterval {
		return
	}
	d.lastFrame = time.Now()

	if g, changed := e.Machine().DisplaySnapshot(); changed {
		d.grid = g
	} else if !d.fading {
		return
	}

	d.fading = d.phosphor.Update(&d.grid)
	if err := d.paint(); err != nil {
		slog.Error("failed to paint display", "err", err)
	}
}

func (d *Display) paint() error {
	pixels, pitch, err := d.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("error locking texture: %w", err)
	}

	// ARGB8888 is stored B, G, R, A on little-endian hosts.
	for y := 0; y < chip8.ScreenHeight; y++ {
		for x := 0; x < chip8.ScreenWidth; x++ {
			v := d.phosphor.Level(x, y)
			off := y*pitch + 4*x
			pixels[off] = v
			pixels[off+1] = v
			pixels[off+2] = v
			pixels[off+3] = 0xff
		}
	}

	// Fully painted, now flip the texture onto the display.
	d.texture.Unlock()
	if err := d.renderer.Clear(); err != nil {
		return fmt.Errorf("failed to clear renderer: %w", err)
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return fmt.Errorf("failed to copy texture: %w", err)
	}
	d.renderer.Present()
	return nil
}

func (d *Display) Cleanup() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}

func NewDisplay() (common.Device, error) {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to start SDL video: %w", err)
	}

	window, err := sdl.CreateWindow("CHIP-8", sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, int32(chip8.ScreenWidth*Scale),
		int32(chip8.ScreenHeight*Scale), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, chip8.ScreenWidth, chip8.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}

	return &Display{
		window:    window,
		renderer:  renderer,
		texture:   texture,
		lastFrame: time.Now(),
	}, nil
}
