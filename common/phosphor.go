package common

import "github.com/bshepherdson/tc-chip8/chip8"

// Decay is the share of the previous brightness a pixel keeps each frame.
const Decay = 0.25

// Phosphor fades pixels in and out over a few frames instead of switching
// them instantly, which hides most sprite flicker.
type Phosphor struct {
	level [chip8.ScreenHeight][chip8.ScreenWidth]float32
}

// Update blends the grid into the current levels. It returns true while any
// pixel is still fading.
func (p *Phosphor) Update(g *chip8.Grid) bool {
	fading := false
	for y := range g {
		for x, lit := range g[y] {
			var target float32
			if lit {
				target = 255
			}
			old := p.level[y][x]
			v := old*Decay + target*(1-Decay)
			if d := v - target; d < 1 && d > -1 {
				v = target
			} else {
				fading = true
			}
			p.level[y][x] = v
		}
	}
	return fading
}

// Level is the brightness of a pixel, 0-255.
func (p *Phosphor) Level(x, y int) uint8 {
	return uint8(p.level[y][x])
}
