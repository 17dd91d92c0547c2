package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFont(t *testing.T) {
	m := NewMemory()
	for digit := uint8(0); digit <= 0xF; digit++ {
		addr, err := m.SpriteAddress(digit)
		require.NoError(t, err)
		assert.Equal(t, uint16(digit)*5, addr)
		assert.Equal(t, font[addr:addr+5], m.Dump(addr, 5))
	}

	_, err := m.SpriteAddress(0x10)
	assert.ErrorIs(t, err, ErrIncorrectSprite)
}

func TestMemoryLoad(t *testing.T) {
	tests := []struct {
		name  string
		start uint16
		data  []uint8
		err   error
	}{
		{"program start", ProgramStart, []uint8{1, 2, 3}, nil},
		{"last byte", MemorySize - 1, []uint8{0xAA}, nil},
		{"font area", ProgramStart - 1, []uint8{1}, ErrPermissionDenied},
		{"zero", 0, nil, ErrPermissionDenied},
		{"past the end", MemorySize - 1, []uint8{1, 2}, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory()
			err := m.Load(tt.start, tt.data)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.data, m.Dump(tt.start, len(tt.data)))
		})
	}
}

func TestMemoryWord(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Load(0x300, []uint8{0x12, 0x34}))

	w, err := m.Word(0x300)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)

	_, err = m.Word(MemorySize - 1)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, MemorySize, oor.Addr)

	_, err = m.Byte(MemorySize)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMemoryReset(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Load(ProgramStart, []uint8{0xFF}))
	m.Reset()
	b, err := m.Byte(ProgramStart)
	require.NoError(t, err)
	assert.Zero(t, b)
	assert.Equal(t, font[:5], m.Dump(0, 5))
}
