//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bshepherdson/tc-chip8/common"
)

func init() {
	deviceTypes["tty"] = NewTTY
	deviceDescriptions["tty"] = "Raw ANSI terminal screen and keys; Esc or Ctrl-C quits"
}

// TTY draws the screen straight to a raw-mode terminal and reads keys from
// stdin on a separate goroutine.
type TTY struct {
	fd      int
	restore unix.Termios
	in      chan byte
	latch   common.KeyLatch

	lastFrame time.Time
	beeping   bool
}

func enterRawTerm(fd int) (*unix.Termios, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}

	restore := *termios
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR | unix.ICRNL | unix.IXON
	termstate.Oflag &^= unix.OPOST
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN | unix.ISIG
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &termstate); err != nil {
		return nil, err
	}
	return &restore, nil
}

func exitRawTerm(fd int, restore *unix.Termios) error {
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, restore)
}

func (t *TTY) readInput() {
	var buf [1]byte
	for {
		if _, err := os.Stdin.Read(buf[:]); err != nil {
			return
		}
		t.in <- buf[0]
	}
}

func (t *TTY) Name() string { return "tty" }

func (t *TTY) Tick(e common.Emulator) {
	m := e.Machine()
	now := time.Now()

	for more := true; more; {
		select {
		case b := <-t.in:
			switch b {
			case 0x03, 0x1b: // Ctrl-C, Esc
				e.Exit()
			}
			if key, ok := common.KeyForRune(rune(b)); ok {
				m.SetKeyState(key, true)
				t.latch.Press(key, now)
			}
		default:
			more = false
		}
	}
	for _, key := range t.latch.Expire(now) {
		m.SetKeyState(key, false)
	}

	sound := m.IsSoundPlaying()
	if sound && !t.beeping {
		os.Stdout.Write([]byte{'\a'})
	}
	t.beeping = sound

	if now.Sub(t.lastFrame) < uiInterval {
		return
	}
	t.lastFrame = now
	if g, changed := m.DisplaySnapshot(); changed {
		if _, err := os.Stdout.Write(common.TermFrame(&g)); err != nil {
			slog.Error("failed to draw frame", "err", err)
		}
	}
}

func (t *TTY) Cleanup() {
	os.Stdout.Write(common.TermLeave())
	if err := exitRawTerm(t.fd, &t.restore); err != nil {
		slog.Error("failed to restore terminal", "err", err)
	}
}

func NewTTY() (common.Device, error) {
	fd := int(os.Stdin.Fd())
	restore, err := enterRawTerm(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	t := &TTY{fd: fd, restore: *restore, in: make(chan byte, 64)}
	os.Stdout.Write(common.TermEnter())
	go t.readInput()
	return t, nil
}
