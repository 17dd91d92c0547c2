package chip8

import (
	"fmt"
	"io"
)

// Disassembler. Each line is:
// ADDR: WORD  MNEMONIC

func disasmWord(w io.Writer, addr, word uint16) error {
	var text string
	if inst, err := Decode(word); err == nil {
		text = inst.String()
	} else {
		text = fmt.Sprintf(".word 0x%04x", word)
	}
	_, err := fmt.Fprintf(w, "%04x: %04x  %s\n", addr, word, text)
	return err
}

// Disassemble writes a listing of rom as if it were loaded at origin. Words
// that do not decode are shown as .word, and a trailing odd byte as .byte.
func Disassemble(w io.Writer, rom []byte, origin uint16) error {
	i := 0
	for ; i+1 < len(rom); i += 2 {
		word := uint16(rom[i])<<8 | uint16(rom[i+1])
		if err := disasmWord(w, origin+uint16(i), word); err != nil {
			return err
		}
	}

	if i < len(rom) {
		_, err := fmt.Fprintf(w, "%04x: %02x    .byte 0x%02x\n", origin+uint16(i), rom[i], rom[i])
		return err
	}
	return nil
}

// DisassembleAt lists count words of memory starting at addr, stopping at
// the end of memory.
func (m *Machine) DisassembleAt(w io.Writer, addr uint16, count int) error {
	for n := 0; n < count; n++ {
		word, err := m.Memory.Word(addr)
		if err != nil {
			return nil
		}
		if err := disasmWord(w, addr, word); err != nil {
			return err
		}
		addr += 2
	}
	return nil
}
