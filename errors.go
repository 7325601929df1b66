package mixedradix

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrBCDUnsupported   = errors.New("mixedradix: limit too large for bcd")
	ErrCounterOverflow  = errors.New("mixedradix: counter overflow")
	ErrInvalidEncoding  = errors.New("mixedradix: invalid encoding")
	ErrInvalidLimit     = errors.New("mixedradix: invalid limit")
	ErrLengthMismatch   = errors.New("mixedradix: values and limits length mismatch")
	ErrUnexpectedLimits = errors.New("mixedradix: unexpected limits")
	ErrValueOutOfRange  = errors.New("mixedradix: value out of range")
)

// IndexError represents an error tied to a single digit position
type IndexError struct {
	Err   error
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s at index %d", e.Err, e.Index)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// OverflowError is returned when a carry leaves the most significant position.
// Carry is the amount that could not be represented.
type OverflowError struct {
	Carry uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: carry %d", ErrCounterOverflow, e.Carry)
}

func (e *OverflowError) Unwrap() error {
	return ErrCounterOverflow
}
