package chip8

import "fmt"

// Op identifies one of the 35 CHIP-8 instructions.
type Op uint8

const (
	OpSys        Op = iota // 0NNN
	OpCls                  // 00E0
	OpRet                  // 00EE
	OpJump                 // 1NNN
	OpCall                 // 2NNN
	OpSkipEqByte           // 3XNN
	OpSkipNeByte           // 4XNN
	OpSkipEqReg            // 5XY0
	OpLoadByte             // 6XNN
	OpAddByte              // 7XNN
	OpMove                 // 8XY0
	OpOr                   // 8XY1
	OpAnd                  // 8XY2
	OpXor                  // 8XY3
	OpAdd                  // 8XY4
	OpSub                  // 8XY5
	OpShiftRight           // 8XY6
	OpSubReverse           // 8XY7
	OpShiftLeft            // 8XYE
	OpSkipNeReg            // 9XY0
	OpLoadI                // ANNN
	OpJumpV0               // BNNN
	OpRand                 // CXNN
	OpDraw                 // DXYN
	OpSkipKey              // EX9E
	OpSkipNotKey           // EXA1
	OpGetDelay             // FX07
	OpWaitKey              // FX0A
	OpSetDelay             // FX15
	OpSetSound             // FX18
	OpAddI                 // FX1E
	OpFont                 // FX29
	OpBCD                  // FX33
	OpStoreRegs            // FX55
	OpLoadRegs             // FX65

	opCount
)

// Operand layouts.
type shape uint8

const (
	shapeNone shape = iota
	shapeAddr       // ?NNN
	shapeX          // ?X??
	shapeXY         // ?XY?
	shapeXNN        // ?XNN
	shapeXYN        // ?XYN
)

type opInfo struct {
	base   uint16
	shape  shape
	format string
}

var opTable = [opCount]opInfo{
	OpSys:        {0x0000, shapeAddr, "SYS %v"},
	OpCls:        {0x00E0, shapeNone, "CLS"},
	OpRet:        {0x00EE, shapeNone, "RET"},
	OpJump:       {0x1000, shapeAddr, "JP %v"},
	OpCall:       {0x2000, shapeAddr, "CALL %v"},
	OpSkipEqByte: {0x3000, shapeXNN, "SE %v, 0x%02x"},
	OpSkipNeByte: {0x4000, shapeXNN, "SNE %v, 0x%02x"},
	OpSkipEqReg:  {0x5000, shapeXY, "SE %v, %v"},
	OpLoadByte:   {0x6000, shapeXNN, "LD %v, 0x%02x"},
	OpAddByte:    {0x7000, shapeXNN, "ADD %v, 0x%02x"},
	OpMove:       {0x8000, shapeXY, "LD %v, %v"},
	OpOr:         {0x8001, shapeXY, "OR %v, %v"},
	OpAnd:        {0x8002, shapeXY, "AND %v, %v"},
	OpXor:        {0x8003, shapeXY, "XOR %v, %v"},
	OpAdd:        {0x8004, shapeXY, "ADD %v, %v"},
	OpSub:        {0x8005, shapeXY, "SUB %v, %v"},
	OpShiftRight: {0x8006, shapeXY, "SHR %v {, %v}"},
	OpSubReverse: {0x8007, shapeXY, "SUBN %v, %v"},
	OpShiftLeft:  {0x800E, shapeXY, "SHL %v {, %v}"},
	OpSkipNeReg:  {0x9000, shapeXY, "SNE %v, %v"},
	OpLoadI:      {0xA000, shapeAddr, "LD I, %v"},
	OpJumpV0:     {0xB000, shapeAddr, "JP V0, %v"},
	OpRand:       {0xC000, shapeXNN, "RND %v, 0x%02x"},
	OpDraw:       {0xD000, shapeXYN, "DRW %v, %v, %v"},
	OpSkipKey:    {0xE09E, shapeX, "SKP %v"},
	OpSkipNotKey: {0xE0A1, shapeX, "SKNP %v"},
	OpGetDelay:   {0xF007, shapeX, "LD %v, DT"},
	OpWaitKey:    {0xF00A, shapeX, "LD %v, K"},
	OpSetDelay:   {0xF015, shapeX, "LD DT, %v"},
	OpSetSound:   {0xF018, shapeX, "LD ST, %v"},
	OpAddI:       {0xF01E, shapeX, "ADD I, %v"},
	OpFont:       {0xF029, shapeX, "LD F, %v"},
	OpBCD:        {0xF033, shapeX, "LD B, %v"},
	OpStoreRegs:  {0xF055, shapeX, "LD [I], %v"},
	OpLoadRegs:   {0xF065, shapeX, "LD %v, [I]"},
}

// Instruction is a decoded instruction word. Only the operand fields used by
// Op's layout are meaningful; the rest stay zero.
type Instruction struct {
	Op     Op
	Addr   Address
	X, Y   Register
	Byte   uint8
	Height SpriteHeight
}

// Encode returns the instruction word for i.
func (i Instruction) Encode() uint16 {
	info := opTable[i.Op]
	w := info.base
	switch info.shape {
	case shapeAddr:
		w |= i.Addr.v
	case shapeX:
		w |= uint16(i.X.n) << 8
	case shapeXY:
		w |= uint16(i.X.n)<<8 | uint16(i.Y.n)<<4
	case shapeXNN:
		w |= uint16(i.X.n)<<8 | uint16(i.Byte)
	case shapeXYN:
		w |= uint16(i.X.n)<<8 | uint16(i.Y.n)<<4 | uint16(i.Height.n)
	}
	return w
}

// String returns the conventional assembler mnemonic.
func (i Instruction) String() string {
	if i.Op >= opCount {
		return fmt.Sprintf("<op %d>", i.Op)
	}

	info := opTable[i.Op]
	switch info.shape {
	case shapeAddr:
		return fmt.Sprintf(info.format, i.Addr)
	case shapeX:
		return fmt.Sprintf(info.format, i.X)
	case shapeXY:
		return fmt.Sprintf(info.format, i.X, i.Y)
	case shapeXNN:
		return fmt.Sprintf(info.format, i.X, i.Byte)
	case shapeXYN:
		return fmt.Sprintf(info.format, i.X, i.Y, i.Height)
	}
	return info.format
}
