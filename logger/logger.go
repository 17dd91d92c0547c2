package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bshepherdson/tc-chip8/chip8"
)

// New returns a text logger writing to stderr, or appending to the file at
// path when one is given.
func New(path string, level slog.Level) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	if len(path) == 0 {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	l := slog.New(slog.NewTextHandler(f, opts))
	l.Info("initializing log", "path", path)
	return l, nil
}

// Tracer logs every executed cycle at debug level, and failed cycles at error
// level.
type Tracer struct {
	Log *slog.Logger
}

func NewTracer(l *slog.Logger) *Tracer {
	return &Tracer{Log: l}
}

func (t *Tracer) Step(m *chip8.Machine, tr chip8.Trace) {
	if tr.Err != nil {
		t.Log.Error("step failed",
			"pc", fmt.Sprintf("0x%03x", tr.PC),
			"word", fmt.Sprintf("0x%04x", tr.Word),
			"err", tr.Err)
		return
	}

	if !t.Log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	t.Log.Debug("step",
		"pc", fmt.Sprintf("0x%03x", tr.PC),
		"word", fmt.Sprintf("0x%04x", tr.Word),
		"op", tr.Instruction.String(),
		"result", tr.Result.String(),
		"i", fmt.Sprintf("0x%03x", m.CPU.Address()),
		"sp", m.CPU.StackDepth())
}
