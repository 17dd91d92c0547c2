package main

import (
	"time"

	"github.com/bshepherdson/tc-chip8/common"
)

const timerInterval = time.Second / 60

// Clock ticks the delay and sound timers at 60 Hz of wall time, whatever
// speed the CPU runs at.
type Clock struct {
	lastTick time.Time
}

func (c *Clock) Name() string { return "clock" }

func (c *Clock) Tick(e common.Emulator) {
	for n := 0; time.Since(c.lastTick) >= timerInterval; n++ {
		// After a long stall (the debug console), skip ahead instead of
		// replaying every missed tick.
		if n >= 4 {
			c.lastTick = time.Now()
			break
		}
		c.lastTick = c.lastTick.Add(timerInterval)
		e.Machine().TickTimers()
	}
}

func (c *Clock) Cleanup() {}

func NewClock() common.Device {
	c := new(Clock)
	c.lastTick = time.Now()
	return c
}
