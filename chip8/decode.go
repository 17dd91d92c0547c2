package chip8

// Decode converts an instruction word into an Instruction. Words that match
// no pattern yield a *DecodeError holding the word.
func Decode(word uint16) (Instruction, error) {
	// Opcode is onnn, or oxyn / oxnn depending on the family.
	o := word >> 12
	n1 := (word >> 8) & 0xf
	n2 := (word >> 4) & 0xf
	n3 := word & 0xf

	x := nibbleRegister(n1)
	y := nibbleRegister(n2)
	nn := uint8(word)
	nnn := nibbleAddress(n1, n2, n3)

	switch o {
	case 0x0:
		switch word {
		case 0x00E0:
			return Instruction{Op: OpCls}, nil
		case 0x00EE:
			return Instruction{Op: OpRet}, nil
		}
		return Instruction{Op: OpSys, Addr: nnn}, nil

	case 0x1:
		return Instruction{Op: OpJump, Addr: nnn}, nil
	case 0x2:
		return Instruction{Op: OpCall, Addr: nnn}, nil
	case 0x3:
		return Instruction{Op: OpSkipEqByte, X: x, Byte: nn}, nil
	case 0x4:
		return Instruction{Op: OpSkipNeByte, X: x, Byte: nn}, nil
	case 0x5:
		if n3 == 0 {
			return Instruction{Op: OpSkipEqReg, X: x, Y: y}, nil
		}
	case 0x6:
		return Instruction{Op: OpLoadByte, X: x, Byte: nn}, nil
	case 0x7:
		return Instruction{Op: OpAddByte, X: x, Byte: nn}, nil

	case 0x8:
		var op Op
		switch n3 {
		case 0x0:
			op = OpMove
		case 0x1:
			op = OpOr
		case 0x2:
			op = OpAnd
		case 0x3:
			op = OpXor
		case 0x4:
			op = OpAdd
		case 0x5:
			op = OpSub
		case 0x6:
			op = OpShiftRight
		case 0x7:
			op = OpSubReverse
		case 0xE:
			op = OpShiftLeft
		default:
			return Instruction{}, &DecodeError{word}
		}
		return Instruction{Op: op, X: x, Y: y}, nil

	case 0x9:
		if n3 == 0 {
			return Instruction{Op: OpSkipNeReg, X: x, Y: y}, nil
		}
	case 0xA:
		return Instruction{Op: OpLoadI, Addr: nnn}, nil
	case 0xB:
		return Instruction{Op: OpJumpV0, Addr: nnn}, nil
	case 0xC:
		return Instruction{Op: OpRand, X: x, Byte: nn}, nil
	case 0xD:
		return Instruction{Op: OpDraw, X: x, Y: y, Height: nibbleHeight(n3)}, nil

	case 0xE:
		switch nn {
		case 0x9E:
			return Instruction{Op: OpSkipKey, X: x}, nil
		case 0xA1:
			return Instruction{Op: OpSkipNotKey, X: x}, nil
		}

	case 0xF:
		if op, ok := fOps[nn]; ok {
			return Instruction{Op: op, X: x}, nil
		}
	}

	return Instruction{}, &DecodeError{word}
}

// FX?? family, keyed by the low byte.
var fOps = map[uint8]Op{
	0x07: OpGetDelay,
	0x0A: OpWaitKey,
	0x15: OpSetDelay,
	0x18: OpSetSound,
	0x1E: OpAddI,
	0x29: OpFont,
	0x33: OpBCD,
	0x55: OpStoreRegs,
	0x65: OpLoadRegs,
}
