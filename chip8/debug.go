package chip8

import (
	"fmt"
	"strings"
)

var registers = []string{"V0", "V1", "V2", "V3", "V4", "V5", "V6", "V7",
	"V8", "V9", "VA", "VB", "VC", "VD", "VE", "VF", "I", "PC", "SP", "DT", "ST"}

// Registers lists the names accepted by RegByName, in display order.
func (m *Machine) Registers() []string {
	return registers
}

// RegByName looks up a register case-insensitively and returns its value and
// canonical name.
func (m *Machine) RegByName(name string) (uint16, string, bool) {
	name = strings.ToUpper(name)
	c := m.CPU

	var n uint8
	if len(name) == 2 && name[0] == 'V' {
		if _, err := fmt.Sscanf(name[1:], "%X", &n); err == nil {
			return uint16(c.regs[n]), name, true
		}
	}

	switch name {
	case "I":
		return c.i, name, true
	case "PC":
		return c.pc, name, true
	case "SP":
		return uint16(c.sp), name, true
	case "DT":
		return uint16(c.delay), name, true
	case "ST":
		return uint16(c.sound), name, true
	}
	return 0, "", false
}
