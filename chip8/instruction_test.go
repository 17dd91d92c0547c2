package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionString(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1234, "JP 0x234"},
		{0x3A42, "SE VA, 0x42"},
		{0x8126, "SHR V1 {, V2}"},
		{0xD125, "DRW V1, V2, 5"},
		{0xA200, "LD I, 0x200"},
		{0xBAB0, "JP V0, 0xab0"},
		{0xE59E, "SKP V5"},
		{0xF00A, "LD V0, K"},
		{0xF355, "LD [I], V3"},
		{0xF365, "LD V3, [I]"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			inst, err := Decode(tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inst.String())
		})
	}
}

func TestOperandConstructors(t *testing.T) {
	a, err := NewAddress(0xFFF)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xFFF), a.Uint16())
	_, err = NewAddress(0x1000)
	assert.ErrorIs(t, err, ErrAddressOutOfRange)

	r, err := NewRegister(0xF)
	require.NoError(t, err)
	assert.Equal(t, VF, r)
	assert.Equal(t, "VF", r.String())
	_, err = NewRegister(16)
	assert.Error(t, err)

	h, err := NewSpriteHeight(15)
	require.NoError(t, err)
	assert.Equal(t, uint8(15), h.Rows())
	_, err = NewSpriteHeight(16)
	assert.Error(t, err)
}

func TestEncodeBuiltInstruction(t *testing.T) {
	x, _ := NewRegister(0xA)
	y, _ := NewRegister(0xB)
	h, _ := NewSpriteHeight(7)
	inst := Instruction{Op: OpDraw, X: x, Y: y, Height: h}
	assert.Equal(t, uint16(0xDAB7), inst.Encode())

	addr, _ := NewAddress(0x3FB)
	assert.Equal(t, uint16(0x23FB), Instruction{Op: OpCall, Addr: addr}.Encode())
}
