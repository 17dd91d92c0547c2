package chip8

import (
	"fmt"
	"io"
)

// Grid is the framebuffer, indexed [y][x]. true is a lit pixel.
type Grid [ScreenHeight][ScreenWidth]bool

// Render writes the grid one row per line, using on and off for each pixel.
func (g *Grid) Render(w io.Writer, on, off string) error {
	buf := make([]byte, 0, ScreenWidth*len(on)+1)
	for y := range g {
		buf = buf[:0]
		for _, lit := range g[y] {
			if lit {
				buf = append(buf, on...)
			} else {
				buf = append(buf, off...)
			}
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// Display is the 64x32 monochrome screen.
type Display struct {
	pixels Grid
	dirty  bool
}

func NewDisplay() *Display {
	return &Display{dirty: true}
}

func (d *Display) Clear() {
	d.pixels = Grid{}
	d.dirty = true
}

// DrawSprite XORs rows onto the screen at (x, y), most significant bit
// leftmost, wrapping at the edges. It reports whether any lit pixel was turned
// off.
func (d *Display) DrawSprite(rows []uint8, x, y uint8) (bool, error) {
	if len(rows) > ScreenHeight {
		return false, fmt.Errorf("%w: %d rows", ErrSpriteTooBig, len(rows))
	}

	collided := false
	for r, row := range rows {
		py := (int(y) + r) % ScreenHeight
		for b := 0; b < 8; b++ {
			if row&(0x80>>b) == 0 {
				continue
			}
			px := (int(x) + b) % ScreenWidth
			if d.pixels[py][px] {
				collided = true
			}
			d.pixels[py][px] = !d.pixels[py][px]
		}
	}

	d.dirty = true
	return collided, nil
}

// State returns a copy of the screen.
func (d *Display) State() Grid {
	return d.pixels
}

// Snapshot returns the screen and true if it changed since the last call.
func (d *Display) Snapshot() (Grid, bool) {
	if !d.dirty {
		return Grid{}, false
	}
	d.dirty = false
	return d.pixels, true
}
