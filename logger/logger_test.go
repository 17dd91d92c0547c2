package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bshepherdson/tc-chip8/chip8"
)

func newMachine(t *testing.T, rom ...byte) *chip8.Machine {
	t.Helper()
	m := chip8.New()
	require.NoError(t, m.LoadProgram(rom))
	return m
}

func TestTracer(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := newMachine(t, 0x61, 0x05, 0x00, 0x00)
	m.SetObserver(NewTracer(l))

	require.NoError(t, m.Step())
	assert.Contains(t, buf.String(), "msg=step")
	assert.Contains(t, buf.String(), "pc=0x200")
	assert.Contains(t, buf.String(), `op="LD V1, 0x05"`)
	assert.Contains(t, buf.String(), "result=advance")

	buf.Reset()
	require.Error(t, m.Step())
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "pc=0x202")
}

func TestTracerQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	m := newMachine(t, 0x61, 0x05)
	m.SetObserver(NewTracer(l))
	require.NoError(t, m.Step())
	assert.Empty(t, buf.String())
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chip8.log")
	l, err := New(path, slog.LevelInfo)
	require.NoError(t, err)
	l.Info("hello", "n", 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "initializing log")
	assert.Contains(t, string(data), "msg=hello n=1")

	_, err = New(filepath.Join(t.TempDir(), "missing", "x.log"), slog.LevelInfo)
	assert.Error(t, err)
}
