package common

import (
	"bytes"

	"github.com/bshepherdson/tc-chip8/chip8"
)

// ANSI sequences for a full-screen terminal renderer.
const (
	ansiHome       = "\x1b[H"
	ansiClear      = "\x1b[2J"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
	ansiAltScreen  = "\x1b[?1049h"
	ansiMainScreen = "\x1b[?1049l"
)

const (
	termPixelOn  = "██"
	termPixelOff = "  "
)

// TermEnter switches to the alternate screen and hides the cursor.
func TermEnter() []byte {
	return []byte(ansiAltScreen + ansiHideCursor + ansiClear)
}

// TermLeave undoes TermEnter.
func TermLeave() []byte {
	return []byte(ansiShowCursor + ansiMainScreen)
}

// TermFrame draws g from the top-left corner, two columns per pixel. Rows end
// in CR LF since output processing is off in raw mode.
func TermFrame(g *chip8.Grid) []byte {
	var buf bytes.Buffer
	buf.WriteString(ansiHome)
	for y := range g {
		for _, lit := range g[y] {
			if lit {
				buf.WriteString(termPixelOn)
			} else {
				buf.WriteString(termPixelOff)
			}
		}
		buf.WriteString("\r\n")
	}
	return buf.Bytes()
}
