package common

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrQuit is returned by RunScript when the script ends with "quit".
var ErrQuit = errors.New("script requested quit")

type command func(e Emulator, args []string) error

var cmds = map[string]command{
	"press":   cmdKey(true),
	"release": cmdKey(false),
	"run":     cmdRun,
	"tick":    cmdTick,
	"seed":    cmdSeed,
	"break":   cmdBreak,
	"dump":    cmdDump,
	"quit":    cmdQuit,
}

func cmdKey(down bool) command {
	return func(e Emulator, args []string) error {
		if len(args) < 1 {
			return errors.New("requires a hex key as an argument")
		}
		key, err := strconv.ParseUint(args[0], 16, 8)
		if err != nil {
			return fmt.Errorf("bad key %q: %w", args[0], err)
		}
		return e.Machine().SetKeyState(uint8(key), down)
	}
}

func count(args []string) (uint64, error) {
	if len(args) < 1 {
		return 0, errors.New("requires a count as an argument")
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("requires a positive integer argument: %w", err)
	}
	return n, nil
}

func cmdRun(e Emulator, args []string) error {
	cycles, err := count(args)
	if err != nil {
		return err
	}
	for i := uint64(0); i < cycles; i++ {
		e.RunOp()
	}
	return nil
}

func cmdTick(e Emulator, args []string) error {
	ticks, err := count(args)
	if err != nil {
		return err
	}
	for i := uint64(0); i < ticks; i++ {
		e.Machine().TickTimers()
	}
	return nil
}

func cmdSeed(e Emulator, args []string) error {
	if len(args) < 1 {
		return errors.New("requires a seed as an argument")
	}
	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}
	e.Machine().Seed(seed)
	return nil
}

func cmdBreak(e Emulator, args []string) error {
	if len(args) < 1 {
		return errors.New("requires a hex address as an argument")
	}
	addr, err := strconv.ParseUint(args[0], 16, 16)
	if err != nil {
		return err
	}
	e.AddBreakpoint(uint16(addr))
	return nil
}

func cmdDump(e Emulator, args []string) error {
	g := e.Machine().DisplayState()
	return g.Render(Output, "#", ".")
}

func cmdQuit(e Emulator, args []string) error {
	return ErrQuit
}

// RunScript executes one command per line from r. Blank lines and lines
// starting with # are skipped.
func RunScript(e Emulator, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		args := strings.Fields(sc.Text())
		if len(args) == 0 || strings.HasPrefix(args[0], "#") {
			continue
		}

		cmd, ok := cmds[args[0]]
		if !ok {
			return fmt.Errorf("line %d: unknown command '%s'", line, args[0])
		}
		if err := cmd(e, args[1:]); err != nil {
			if errors.Is(err, ErrQuit) {
				return err
			}
			return fmt.Errorf("line %d: %s: %w", line, args[0], err)
		}
	}
	return sc.Err()
}

func RunScriptFile(e Emulator, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return RunScript(e, f)
}
