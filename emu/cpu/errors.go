package cpu

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedOpcode = errors.New("unrecognized opcode")
	ErrProgramTooLarge    = errors.New("program too large")
	ErrCallStackOverflow  = errors.New("call stack overflow")
	ErrCallStackUnderflow = errors.New("call stack underflow")
	ErrInvalidKeyIndex    = errors.New("invalid key index")
	ErrMemoryOutOfRange   = errors.New("memory access out of range")
)

// OpcodeError reports an opcode that matched no instruction form.
type OpcodeError struct {
	PC     uint16
	Opcode uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("unrecognized opcode 0x%04X at 0x%03X", e.Opcode, e.PC)
}

func (e *OpcodeError) Unwrap() error {
	return ErrUnrecognizedOpcode
}

// IsFatal reports whether err leaves the machine in an undefined state.
// Only unrecognized opcodes are recoverable.
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrUnrecognizedOpcode)
}
