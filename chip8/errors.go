package chip8

import (
	"errors"
	"fmt"
)

// CPU errors.
var (
	ErrPCOutOfRange      = errors.New("program counter out of range")
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrStackLimitReached = errors.New("stack limit of 16 was reached")
	ErrStackEmpty        = errors.New("stack is empty")
)

// Memory errors.
var (
	ErrOutOfRange       = errors.New("memory access out of range")
	ErrPermissionDenied = errors.New("write to protected memory")
	ErrIncorrectSprite  = errors.New("no such font sprite")
)

var (
	ErrSpriteTooBig           = errors.New("sprite is taller than the display")
	ErrNoSuchKey              = errors.New("no such key")
	ErrNoSuchInstruction      = errors.New("no such instruction")
	ErrUnsupportedInstruction = errors.New("machine code routines are not supported")
)

// DecodeError reports a word that matches none of the instruction patterns.
type DecodeError struct {
	Word uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("command %#04x is incorrect", e.Word)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrNoSuchInstruction
}

// OutOfRangeError reports the address of a memory access past the end of RAM.
type OutOfRangeError struct {
	Addr int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("memory access at %#04x out of range", e.Addr)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Error is returned by Machine.Step. It records where the failing cycle
// started and wraps the component error that aborted it.
type Error struct {
	PC   uint16
	Word uint16
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("chip8: pc=%03x word=%04x: %v", e.PC, e.Word, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
