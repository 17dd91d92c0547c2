package chip8

import "fmt"

const glyphSize = 5

// Hex digit glyphs 0-F, five rows each, stored from address 0.
var font = [16 * glyphSize]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the 4 KiB address space. Everything below ProgramStart is
// read-only to Load.
type Memory struct {
	data [MemorySize]uint8
}

func NewMemory() *Memory {
	m := new(Memory)
	m.Reset()
	return m
}

// Reset zeroes memory and reinstalls the font.
func (m *Memory) Reset() {
	m.data = [MemorySize]uint8{}
	copy(m.data[:], font[:])
}

func (m *Memory) Byte(addr uint16) (uint8, error) {
	if int(addr) >= MemorySize {
		return 0, &OutOfRangeError{int(addr)}
	}
	return m.data[addr], nil
}

// Word reads the big-endian word at addr and addr+1.
func (m *Memory) Word(addr uint16) (uint16, error) {
	if int(addr)+1 >= MemorySize {
		return 0, &OutOfRangeError{int(addr) + 1}
	}
	return uint16(m.data[addr])<<8 | uint16(m.data[addr+1]), nil
}

// Load copies b into memory starting at start, overwriting what is there.
func (m *Memory) Load(start uint16, b []uint8) error {
	if start < ProgramStart {
		return fmt.Errorf("%w: %#03x", ErrPermissionDenied, start)
	}
	if end := int(start) + len(b); end > MemorySize {
		return &OutOfRangeError{end - 1}
	}
	copy(m.data[start:], b)
	return nil
}

// SpriteAddress returns where the font glyph for digit starts.
func (m *Memory) SpriteAddress(digit uint8) (uint16, error) {
	if digit > 0xF {
		return 0, fmt.Errorf("%w: %#x", ErrIncorrectSprite, digit)
	}
	return uint16(digit) * glyphSize, nil
}

// Dump returns a copy of up to n bytes starting at start.
func (m *Memory) Dump(start uint16, n int) []uint8 {
	if int(start) >= MemorySize {
		return nil
	}
	end := int(start) + n
	if end > MemorySize {
		end = MemorySize
	}
	out := make([]uint8, end-int(start))
	copy(out, m.data[start:end])
	return out
}
