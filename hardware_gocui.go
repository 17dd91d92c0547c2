package main

import (
	"fmt"
	"log/slog"
	"time"
	"unicode"

	"github.com/jroimartin/gocui"

	"github.com/bshepherdson/tc-chip8/chip8"
	"github.com/bshepherdson/tc-chip8/common"
)

const uiInterval = time.Second / 30

// Gocui is a terminal front-end. gocui's main loop runs on its own
// goroutine; keys come in over a channel and frames go out as copies through
// Gui.Update, so the Machine stays on the emulation goroutine.
type Gocui struct {
	g     *gocui.Gui
	keys  chan rune
	quit  chan struct{}
	latch common.KeyLatch

	lastFrame time.Time
	grid      chip8.Grid
}

func (c *Gocui) Name() string { return "gocui" }

func (c *Gocui) Tick(e common.Emulator) {
	select {
	case <-c.quit:
		e.Exit()
	default:
	}

	m := e.Machine()
	now := time.Now()
	for more := true; more; {
		select {
		case r := <-c.keys:
			key, _ := common.KeyForRune(r)
			m.SetKeyState(key, true)
			c.latch.Press(key, now)
		default:
			more = false
		}
	}
	for _, key := range c.latch.Expire(now) {
		m.SetKeyState(key, false)
	}

	if now.Sub(c.lastFrame) < uiInterval {
		return
	}
	c.lastFrame = now

	if g, changed := m.DisplaySnapshot(); changed {
		c.grid = g
	}
	grid := c.grid
	regs := common.RegisterSummary(m)
	sound := m.IsSoundPlaying()

	c.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("screen")
		if err != nil {
			return err
		}
		v.Clear()
		if err := grid.Render(v, "█", " "); err != nil {
			return err
		}

		v, err = g.View("registers")
		if err != nil {
			return err
		}
		v.Clear()
		fmt.Fprint(v, regs)

		v, err = g.View("status")
		if err != nil {
			return err
		}
		v.Clear()
		if sound {
			fmt.Fprint(v, "BEEP  ")
		}
		fmt.Fprint(v, "keys 1234/QWER/ASDF/ZXCV, Ctrl-C quits")
		return nil
	})
}

func (c *Gocui) Cleanup() {
	c.g.Close()
}

// gocui layout
func gocuiLayout(g *gocui.Gui) error {
	// left -> screen, one cell per pixel
	if v, err := g.SetView("screen", 0, 0, chip8.ScreenWidth+1, chip8.ScreenHeight+1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "CHIP-8"
	}

	// right -> register values
	if v, err := g.SetView("registers", chip8.ScreenWidth+2, 0, chip8.ScreenWidth+32, 8); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Registers"
	}

	// down -> status
	if v, err := g.SetView("status", 0, chip8.ScreenHeight+2, chip8.ScreenWidth+32, chip8.ScreenHeight+4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	return nil
}

func gocuiQuit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func NewGocui() (common.Device, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("couldn't create gui: %w", err)
	}
	g.SetManagerFunc(gocuiLayout)

	c := &Gocui{
		g:    g,
		keys: make(chan rune, 32),
		quit: make(chan struct{}),
	}

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, gocuiQuit); err != nil {
		g.Close()
		return nil, err
	}
	for _, r := range common.KeyRunes() {
		chars := []rune{r}
		if u := unicode.ToUpper(r); u != r {
			chars = append(chars, u)
		}
		for _, ch := range chars {
			ch := ch
			press := func(*gocui.Gui, *gocui.View) error {
				select {
				case c.keys <- ch:
				default:
				}
				return nil
			}
			if err := g.SetKeybinding("", ch, gocui.ModNone, press); err != nil {
				g.Close()
				return nil, err
			}
		}
	}

	go func() {
		if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
			slog.Error("gocui main loop failed", "err", err)
		}
		close(c.quit)
	}()
	return c, nil
}
