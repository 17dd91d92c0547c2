package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/bshepherdson/tc-chip8/chip8"
	"github.com/bshepherdson/tc-chip8/common"
	"github.com/bshepherdson/tc-chip8/logger"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <ROM file>\n", os.Args[0])
	flag.PrintDefaults()
}

func dumpDeviceList() {
	names := make([]string, 0, len(deviceDescriptions))
	for name := range deviceDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-20s %s\n", name, deviceDescriptions[name])
	}
}

var (
	Turbo bool = false
	Scale int  = 10
	Speed int  = 500
)

func main() {
	deviceList := flag.String("hw", "sdl-display,sdl-keypad,sdl-beeper,clock",
		"List of hardware devices. See -dump-hw for a list of devices.")
	dumpDevices := flag.Bool("dump-hw", false,
		"Dump a list of hardware devices and exit.")
	disassemble := flag.Bool("disassemble", false, "Disassemble the ROM to stdout")
	turboFlag := flag.Bool("turbo", false, "True to start in turbo (unlimited speed) mode.")
	hz := flag.Int("hz", 500, "Instructions per second when not in turbo mode.")
	scale := flag.Int("scale", 10, "Window pixels per CHIP-8 pixel for sdl-display.")
	seed := flag.Int64("seed", 0, "Seed for the random number instruction. 0 picks one from the clock.")
	script := flag.String("script", "", "Script file to run before starting.")
	logPath := flag.String("log", "", "Log file. Defaults to stderr, or chip8.log with a terminal front-end.")
	verbose := flag.Bool("v", false, "Log every executed instruction.")
	debug := flag.Bool("debug", false, "Start in the debug console.")

	flag.Usage = usage
	flag.Parse()

	if *dumpDevices {
		dumpDeviceList()
		return
	}

	romFile := flag.Arg(0)
	if romFile == "" {
		fmt.Printf("Missing required ROM file name!\n")
		usage()
		os.Exit(1)
	}

	rom, err := os.ReadFile(romFile)
	if err != nil {
		fmt.Printf("Failed to open ROM file: %v\n", err)
		os.Exit(1)
	}

	if *disassemble {
		if err := chip8.Disassemble(os.Stdout, rom, chip8.ProgramStart); err != nil {
			fmt.Printf("Disassembly failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	deviceNames := strings.Split(*deviceList, ",")
	console := true
	for _, d := range deviceNames {
		if terminalDevices[d] {
			console = false
		}
	}
	if !console && *logPath == "" {
		*logPath = "chip8.log"
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log, err := logger.New(*logPath, level)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	e := newEmulator(log, console)
	e.m.Seed(*seed)
	if err := e.m.LoadProgram(rom); err != nil {
		log.Error("failed to load ROM", "file", romFile, "err", err)
		os.Exit(1)
	}
	log.Info("loaded program", "file", romFile, "at", fmt.Sprintf("0x%03x", chip8.ProgramStart), "n", len(rom))

	common.InputReader = bufio.NewReader(os.Stdin)

	Turbo = *turboFlag
	Scale = *scale
	Speed = *hz
	if Speed <= 0 {
		Speed = 500
	}

	for _, d := range deviceNames {
		dt, ok := deviceTypes[d]
		if !ok {
			fmt.Printf("Unknown device: %s\n", d)
			dumpDeviceList()
			e.status = 1
			e.Exit()
		}
		log.Info("loading device", "name", d)
		dev, err := dt()
		if err != nil {
			log.Error("failed to load device", "name", d, "err", err)
			e.status = 1
			e.Exit()
		}
		e.AddDevice(dev)
	}

	e.debug = *debug && e.console

	if *script != "" {
		err := common.RunScriptFile(e, *script)
		if errors.Is(err, common.ErrQuit) {
			e.Exit()
		}
		if err != nil {
			log.Error("script failed", "file", *script, "err", err)
			e.status = 1
			e.Exit()
		}
	}

	e.run()
}

// emulator owns the Machine and drives it and the devices from one
// goroutine.
type emulator struct {
	m           *chip8.Machine
	devices     []common.Device
	breakpoints *common.Breakpoints
	last        chip8.Trace
	debug       bool
	console     bool
	status      int
	log         *slog.Logger
}

func newEmulator(log *slog.Logger, console bool) *emulator {
	e := &emulator{m: chip8.New(), console: console, log: log}
	e.breakpoints = common.NewBreakpoints(func(pc uint16) {
		if e.console {
			fmt.Printf("Breakpoint hit at PC = %03x\n", pc)
			e.debug = true
		}
	})
	e.breakpoints.Next = logger.NewTracer(log)
	e.m.SetObserver(e)
	return e
}

// Step records each cycle for RunOp before passing it on.
func (e *emulator) Step(m *chip8.Machine, t chip8.Trace) {
	e.last = t
	e.breakpoints.Step(m, t)
}

func (e *emulator) Machine() *chip8.Machine { return e.m }
func (e *emulator) AddDevice(d common.Device) { e.devices = append(e.devices, d) }
func (e *emulator) Devices() []common.Device { return e.devices }
func (e *emulator) AddBreakpoint(addr uint16) { e.breakpoints.Add(addr) }
func (e *emulator) Debugging() *bool { return &e.debug }

func (e *emulator) RunOp() bool {
	err := e.m.Step()
	for _, d := range e.devices {
		d.Tick(e)
	}

	if err != nil {
		if !e.console {
			e.status = 1
			e.Exit()
		}
		fmt.Printf("Execution stopped: %v\n", err)
		e.debug = true
		return true
	}
	return e.last.Result != chip8.Wait
}

func (e *emulator) Exit() {
	for _, d := range e.devices {
		d.Cleanup()
	}
	os.Exit(e.status)
}

func debugConsole(e *emulator) {
	// Print the prompt and handle the input.
	fmt.Printf("[%03x]> ", e.m.CPU.ProgramCounter())
	in, err := common.InputReader.ReadString('\n')
	if err != nil {
		fmt.Printf("error while reading input: %v\n", err)
		e.Exit()
	}
	common.RunCommand(e, in)
}

func fKey(e *emulator, key int) {
	switch key {
	case 1: // F1 - help
		fmt.Println("=== Emulator commands ===")
		fmt.Println("F1\tShow this help")
		fmt.Println("F2\tStart debugging")
		fmt.Println("F3\tResume running")
		fmt.Println("F4\tTurbo speed toggle")
		fmt.Println("Keypad: 1234 / QWER / ASDF / ZXCV")

	case 2: // F2 - start debugging
		if e.console {
			e.debug = true
		}

	case 3: // F3 - stop debugging
		e.debug = false

	case 4: // F4 - toggle turbo
		Turbo = !Turbo
		if Turbo {
			fmt.Println("Turbo enabled: speed unlimited")
		} else {
			fmt.Printf("Turbo disabled: running at %d Hz\n", Speed)
		}
	}
}

func (e *emulator) run() {
	// Ticks at 100Hz, running a hundredth of a second's worth of cycles per
	// tick.
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	cycles := 0

	// Repeatedly try to run the CPU operation, stopping on a debug to show the
	// console.
	for {
		for !e.debug {
			cycles++
			if !Turbo && cycles >= (Speed+99)/100 {
				<-ticker.C
				cycles = 0
			}

			e.RunOp()
		}

		debugConsole(e)
	}
}
