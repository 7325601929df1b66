package mixedradix

import (
	"fmt"
	"math"
	"time"
)

// Limits of the preset counters, most significant first
var (
	clockReferenceLimits = []uint64{1 << 33, 300}
	durationLimits       = []uint64{math.MaxUint64, 365, 24, 60, 60}
)

// NewDuration creates a counter of seconds with minutes, hours, days and 365 days years
// Years are bounded by the native width only.
func NewDuration(opts ...CounterOpt[uint64]) *Counter[uint64] {
	c, _ := New(durationLimits, opts...)
	return c
}

// ClockReference represents a clock reference
// Base is based on a 90 kHz clock and extension is based on a 27 MHz clock
type ClockReference struct {
	Base, Extension int64
}

// NewClockReference creates a counter ticking at 27 MHz whose digits are the base and the extension of cr
// Each base tick holds 300 extension ticks and the base wraps after 33 bits.
func NewClockReference(cr ClockReference, opts ...CounterOpt[uint64]) (*Counter[uint64], error) {
	if cr.Base < 0 {
		return nil, &IndexError{Err: ErrValueOutOfRange, Index: 0}
	}
	if cr.Extension < 0 {
		return nil, &IndexError{Err: ErrValueOutOfRange, Index: 1}
	}
	return NewWithValues([]uint64{uint64(cr.Base), uint64(cr.Extension)}, clockReferenceLimits, opts...)
}

// ClockReferenceOf returns the clock reference held by a counter created with NewClockReference
func ClockReferenceOf(c *Counter[uint64]) (cr ClockReference, err error) {
	if compareDigits(c.limits, clockReferenceLimits) != 0 {
		err = fmt.Errorf("mixedradix: %s is not a clock reference: %w", c, ErrUnexpectedLimits)
		return
	}
	cr = ClockReference{
		Base:      int64(c.values[0]),
		Extension: int64(c.values[1]),
	}
	return
}

// Duration converts the clock reference into duration
func (cr ClockReference) Duration() time.Duration {
	return time.Duration(cr.Base*1e9/90000) + time.Duration(cr.Extension*1e9/27000000)
}

// Time converts the clock reference into time
func (cr ClockReference) Time() time.Time {
	return time.Unix(0, cr.Duration().Nanoseconds())
}
