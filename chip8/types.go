package chip8

import "fmt"

const (
	MemorySize    = 4096
	ProgramStart  = 0x200
	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16
	ScreenWidth   = 64
	ScreenHeight  = 32
)

// Address is a 12-bit memory address.
type Address struct {
	v uint16
}

// NewAddress returns v as an Address, or ErrAddressOutOfRange if it does not
// fit in 12 bits.
func NewAddress(v uint16) (Address, error) {
	if v >= MemorySize {
		return Address{}, fmt.Errorf("%w: %#x", ErrAddressOutOfRange, v)
	}
	return Address{v}, nil
}

// nibbleAddress builds NNN from three nibbles. Callers pass values already
// masked to 4 bits, so the result is always below 4096.
func nibbleAddress(n1, n2, n3 uint16) Address {
	return Address{n1<<8 | n2<<4 | n3}
}

func (a Address) Uint16() uint16 { return a.v }

func (a Address) String() string { return fmt.Sprintf("0x%03x", a.v) }

// Register names one of V0-VF.
type Register struct {
	n uint8
}

// VF receives the carry, borrow, shifted-out bit and collision flags.
var (
	V0 = Register{0x0}
	VF = Register{0xF}
)

// NewRegister returns register n, or an error if n > 15.
func NewRegister(n uint8) (Register, error) {
	if n >= RegisterCount {
		return Register{}, fmt.Errorf("no such register V%X", n)
	}
	return Register{n}, nil
}

// nibbleRegister is the decoder's fast path; n must already be masked to 4 bits.
func nibbleRegister(n uint16) Register {
	return Register{uint8(n)}
}

func (r Register) Index() uint8 { return r.n }

func (r Register) String() string { return fmt.Sprintf("V%X", r.n) }

// SpriteHeight is the row count of a DXYN draw, 0-15.
type SpriteHeight struct {
	n uint8
}

func NewSpriteHeight(n uint8) (SpriteHeight, error) {
	if n >= 16 {
		return SpriteHeight{}, fmt.Errorf("sprite height %d too big", n)
	}
	return SpriteHeight{n}, nil
}

func nibbleHeight(n uint16) SpriteHeight {
	return SpriteHeight{uint8(n)}
}

func (h SpriteHeight) Rows() uint8 { return h.n }

func (h SpriteHeight) String() string { return fmt.Sprintf("%d", h.n) }
