package common

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bshepherdson/tc-chip8/chip8"
)

// Output receives everything the debug console and scripts print.
var Output io.Writer = os.Stdout

// DebugCommand captures a self-describing debug command.
type DebugCommand interface {
	Describe() string
	Run(e Emulator, args []string)
}

type debugBlob struct {
	desc string
	f    func(Emulator, []string)
}

// DebugCommands is a map of command strings to command objects.
var DebugCommands = map[string]DebugCommand{
	"r": newCommand("Dump one or all (r)egisters ('r' vs. 'r v3')", cmdRegs),
	"q": newCommand("(Q)uit the emulator", func(e Emulator, _ []string) { e.Exit() }),

	"c": newCommand("(C)ontinue execution", func(e Emulator, _ []string) {
		*e.Debugging() = false
	}),

	"s": newCommand("(S)tep forward, run next instruction", func(e Emulator, _ []string) {
		if !e.RunOp() {
			fmt.Fprintln(Output, "Waiting for a key")
		}
		m := e.Machine()
		m.DisassembleAt(Output, m.CPU.ProgramCounter(), 1)
	}),

	"b": newCommand("Set a new (b)reakpoint at the given (hex) location",
		singleHexArg("No breakpoint location specified (needs hex number)",
			"Error parsing the location", func(e Emulator, loc uint16) {
				e.AddBreakpoint(loc)
				fmt.Fprintf(Output, "Breakpoint set at PC = %03x\n", loc)
			})),
	"m": newCommand("Print a byte from (m)emory",
		singleHexArg("No memory location specified", "Error parsing location",
			func(e Emulator, loc uint16) {
				b, err := e.Machine().Memory.Byte(loc)
				if err != nil {
					fmt.Fprintf(Output, "%v\n", err)
					return
				}
				fmt.Fprintf(Output, "[%03x] = %02x (%d)\n", loc, b, b)
			})),

	"i": newCommand("Disassemble (i)nstructions at the given location, or at PC",
		func(e Emulator, args []string) {
			m := e.Machine()
			loc := m.CPU.ProgramCounter()
			if len(args) > 1 {
				if _, err := fmt.Sscanf(args[1], "%x", &loc); err != nil {
					fmt.Fprintf(Output, "Error parsing location: %v\n", err)
					return
				}
			}
			m.DisassembleAt(Output, loc, 16)
		}),

	"k": newCommand("Set a (k)ey up or down ('k a 1' presses key A)",
		func(e Emulator, args []string) {
			if len(args) < 3 {
				fmt.Fprintln(Output, "Usage: k <hex key> <0|1>")
				return
			}
			var key, down uint8
			if _, err := fmt.Sscanf(args[1], "%x", &key); err != nil {
				fmt.Fprintf(Output, "Error parsing key: %v\n", err)
				return
			}
			if _, err := fmt.Sscanf(args[2], "%d", &down); err != nil {
				fmt.Fprintf(Output, "Error parsing state: %v\n", err)
				return
			}
			if err := e.Machine().SetKeyState(key, down != 0); err != nil {
				fmt.Fprintf(Output, "%v\n", err)
			}
		}),

	"t": newCommand("(T)ick the delay and sound timers once",
		func(e Emulator, _ []string) {
			m := e.Machine()
			m.TickTimers()
			fmt.Fprintf(Output, "DT = %d, ST = %d\n", m.CPU.DelayTimer(), m.CPU.SoundTimer())
		}),

	"d": newCommand("(D)ump the screen", func(e Emulator, _ []string) {
		g := e.Machine().DisplayState()
		g.Render(Output, "#", ".")
	}),
}

func newCommand(desc string, f func(Emulator, []string)) DebugCommand {
	d := new(debugBlob)
	d.desc = desc
	d.f = f
	return d
}

func (dbg *debugBlob) Describe() string {
	return dbg.desc
}

func (dbg *debugBlob) Run(e Emulator, args []string) {
	dbg.f(e, args)
}

// RunCommand parses and runs one line of debug console input.
func RunCommand(e Emulator, line string) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return
	}

	if cmd, ok := DebugCommands[args[0]]; ok {
		cmd.Run(e, args)
		return
	}

	fmt.Fprintf(Output, "Unknown command '%s'\n", args[0])
	fmt.Fprintf(Output, "Commands:\n")
	keys := make([]string, 0, len(DebugCommands))
	for key := range DebugCommands {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(Output, "%s\t%s\n", key, DebugCommands[key].Describe())
	}
}

// showReg prints a register and, for I, the byte it points at.
func showReg(e Emulator, name string, val uint16) {
	if name != "I" {
		fmt.Fprintf(Output, "%2s  %04x (%d)\n", name, val, val)
		return
	}
	b, _ := e.Machine().Memory.Byte(val)
	fmt.Fprintf(Output, "%2s  %04x (%d)\t[%s]  %02x (%d)\n", name, val, val, name, b, b)
}

func cmdRegs(e Emulator, args []string) {
	m := e.Machine()
	if len(args) > 1 {
		for _, r := range args[1:] {
			value, name, ok := m.RegByName(r)
			if ok {
				showReg(e, name, value)
			} else {
				fmt.Fprintf(Output, "%% Unknown register: %s\n", r)
			}
		}
	} else {
		for _, r := range m.Registers() {
			value, name, _ := m.RegByName(r)
			showReg(e, name, value)
		}
	}
}

func singleHexArg(notSpecifiedMsg, parseErrorMsg string,
	cmd func(e Emulator, arg uint16)) func(Emulator, []string) {
	return func(e Emulator, args []string) {
		if len(args) <= 1 {
			fmt.Fprintln(Output, notSpecifiedMsg)
			return
		}

		var x uint16
		_, err := fmt.Sscanf(args[1], "%x", &x)
		if err != nil {
			fmt.Fprintf(Output, parseErrorMsg+": %v\n", err)
			return
		}

		cmd(e, x)
	}
}

// Breakpoints is a chip8.Observer that calls Hit whenever a cycle leaves PC
// on one of its addresses. Next, if set, sees every step first.
type Breakpoints struct {
	addrs map[uint16]bool
	Hit   func(pc uint16)
	Next  chip8.Observer
}

func NewBreakpoints(hit func(pc uint16)) *Breakpoints {
	return &Breakpoints{addrs: make(map[uint16]bool), Hit: hit}
}

func (b *Breakpoints) Add(addr uint16) {
	b.addrs[addr] = true
}

func (b *Breakpoints) Step(m *chip8.Machine, t chip8.Trace) {
	if b.Next != nil {
		b.Next.Step(m, t)
	}
	if t.Err != nil || t.Result == chip8.Wait {
		return
	}
	if pc := m.CPU.ProgramCounter(); b.addrs[pc] && b.Hit != nil {
		b.Hit(pc)
	}
}

// RegisterSummary formats every register on a few short lines for status
// displays.
func RegisterSummary(m *chip8.Machine) string {
	var sb strings.Builder
	for i, r := range m.Registers() {
		v, name, _ := m.RegByName(r)
		switch name {
		case "I", "PC":
			fmt.Fprintf(&sb, "%-2s %03x", name, v)
		default:
			fmt.Fprintf(&sb, "%-2s %02x ", name, v)
		}
		if i%4 == 3 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return strings.TrimRight(sb.String(), " \n") + "\n"
}
