package chip8

import (
	"fmt"
	"math/rand"
	"time"
)

// CPU holds the register and stack bank: V0-VF, I, PC, the call stack, the
// two timers and the random source used by CXNN.
type CPU struct {
	regs  [RegisterCount]uint8
	i     uint16
	pc    uint16
	sp    int
	stack [StackSize]uint16
	delay uint8
	sound uint8
	rng   *rand.Rand
}

// NewCPU returns a CPU with PC at the program start and a time-seeded random
// source.
func NewCPU() *CPU {
	c := new(CPU)
	c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	c.reset()
	return c
}

// reset clears registers, stack and timers. The random source is kept.
func (c *CPU) reset() {
	c.regs = [RegisterCount]uint8{}
	c.i = 0
	c.pc = ProgramStart
	c.sp = 0
	c.stack = [StackSize]uint16{}
	c.delay = 0
	c.sound = 0
}

func (c *CPU) ProgramCounter() uint16 {
	return c.pc
}

// AdvanceProgramCounter moves PC forward by step bytes.
func (c *CPU) AdvanceProgramCounter(step uint16) error {
	if int(c.pc)+int(step) >= MemorySize {
		return fmt.Errorf("%w: %#x + %d", ErrPCOutOfRange, c.pc, step)
	}
	c.pc += step
	return nil
}

func (c *CPU) SetProgramCounter(pc uint16) error {
	if pc >= MemorySize {
		return fmt.Errorf("%w: %#x", ErrPCOutOfRange, pc)
	}
	c.pc = pc
	return nil
}

// Address returns the I register.
func (c *CPU) Address() uint16 {
	return c.i
}

func (c *CPU) AdvanceAddress(step uint16) error {
	if int(c.i)+int(step) >= MemorySize {
		return fmt.Errorf("%w: %#x + %d", ErrAddressOutOfRange, c.i, step)
	}
	c.i += step
	return nil
}

func (c *CPU) SetAddress(addr uint16) error {
	if addr >= MemorySize {
		return fmt.Errorf("%w: %#x", ErrAddressOutOfRange, addr)
	}
	c.i = addr
	return nil
}

// Push puts a return address on the stack.
func (c *CPU) Push(addr uint16) error {
	if c.sp == StackSize {
		return ErrStackLimitReached
	}
	c.stack[c.sp] = addr
	c.sp++
	return nil
}

// Pop removes and returns the top of the stack.
func (c *CPU) Pop() (uint16, error) {
	if c.sp == 0 {
		return 0, ErrStackEmpty
	}
	c.sp--
	return c.stack[c.sp], nil
}

func (c *CPU) StackDepth() int {
	return c.sp
}

// Reg returns a handle to register r. Arithmetic through it wraps at 256.
func (c *CPU) Reg(r Register) *uint8 {
	return &c.regs[r.n]
}

func (c *CPU) DelayTimer() uint8     { return c.delay }
func (c *CPU) SetDelayTimer(v uint8) { c.delay = v }
func (c *CPU) SoundTimer() uint8     { return c.sound }
func (c *CPU) SetSoundTimer(v uint8) { c.sound = v }

// TickTimers decrements each nonzero timer by one.
func (c *CPU) TickTimers() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
}

// Random returns a uniformly distributed byte.
func (c *CPU) Random() uint8 {
	return uint8(c.rng.Intn(256))
}

// Seed re-seeds the random source. A zero seed picks one from the clock.
func (c *CPU) Seed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c.rng.Seed(seed)
}
