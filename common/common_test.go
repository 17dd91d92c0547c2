package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bshepherdson/tc-chip8/chip8"
)

// fakeEmulator runs a bare Machine with no devices.
type fakeEmulator struct {
	m           *chip8.Machine
	bp          *Breakpoints
	devices     []Device
	debugging   bool
	exited      bool
	lastStepErr error
}

func newFake(t *testing.T, words ...uint16) *fakeEmulator {
	t.Helper()
	rom := make([]byte, 0, 2*len(words))
	for _, w := range words {
		rom = append(rom, byte(w>>8), byte(w))
	}
	e := &fakeEmulator{m: chip8.New()}
	require.NoError(t, e.m.LoadProgram(rom))
	e.bp = NewBreakpoints(func(uint16) { e.debugging = true })
	e.m.SetObserver(e.bp)
	return e
}

func (e *fakeEmulator) Machine() *chip8.Machine { return e.m }
func (e *fakeEmulator) AddDevice(d Device) { e.devices = append(e.devices, d) }
func (e *fakeEmulator) Devices() []Device { return e.devices }
func (e *fakeEmulator) AddBreakpoint(addr uint16) { e.bp.Add(addr) }
func (e *fakeEmulator) Debugging() *bool { return &e.debugging }
func (e *fakeEmulator) Exit() { e.exited = true }

func (e *fakeEmulator) RunOp() bool {
	pc := e.m.CPU.ProgramCounter()
	e.lastStepErr = e.m.Step()
	return e.lastStepErr != nil || e.m.CPU.ProgramCounter() != pc
}

// captureOutput redirects Output for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Output
	Output = &buf
	t.Cleanup(func() { Output = old })
	return &buf
}
