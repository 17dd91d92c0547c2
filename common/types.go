package common

import (
	"bufio"

	"github.com/bshepherdson/tc-chip8/chip8"
)

// Emulator is the driver's view of the running machine, used by the devices,
// the debug console and scripts.
type Emulator interface {
	Machine() *chip8.Machine
	AddDevice(Device)
	Devices() []Device
	AddBreakpoint(addr uint16)
	Debugging() *bool
	// RunOp runs one cycle. It returns false if the machine is blocked
	// waiting for a key.
	RunOp() bool
	Exit()
}

// Device is the interface to all hardware.
type Device interface {
	Name() string
	Tick(Emulator)
	Cleanup()
}

// InputReader is shared by the inputs, since os.Stdin is global.
var InputReader *bufio.Reader
