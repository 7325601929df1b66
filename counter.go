package mixedradix

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/asticode/go-astikit"
	"golang.org/x/exp/constraints"
)

// Counter represents a mixed-radix counter
// Each digit has its own exclusive limit. Index 0 is the most significant digit, the last index is the least
// significant one, the way an odometer is read.
// A Counter is not safe for concurrent use: callers must synchronize Increment and Add themselves.
type Counter[T constraints.Unsigned] struct {
	l      astikit.CompleteLogger
	limits []T
	tmp    []T
	values []T
}

// CounterOpt represents a counter option
type CounterOpt[T constraints.Unsigned] func(c *Counter[T])

// CounterOptLogger returns the option to set the logger
func CounterOptLogger[T constraints.Unsigned](l astikit.StdLogger) CounterOpt[T] {
	return func(c *Counter[T]) {
		c.l = astikit.AdaptStdLogger(l)
	}
}

// New creates a counter with all digits set to 0
func New[T constraints.Unsigned](limits []T, opts ...CounterOpt[T]) (*Counter[T], error) {
	return NewWithValues(make([]T, len(limits)), limits, opts...)
}

// NewWithValues creates a counter holding the provided values
// Both slices are copied.
func NewWithValues[T constraints.Unsigned](values, limits []T, opts ...CounterOpt[T]) (c *Counter[T], err error) {
	if len(values) != len(limits) {
		err = ErrLengthMismatch
		return
	}
	for idx, limit := range limits {
		if limit == 0 {
			err = &IndexError{Err: ErrInvalidLimit, Index: idx}
			return
		}
	}
	for idx, v := range values {
		if v >= limits[idx] {
			err = &IndexError{Err: ErrValueOutOfRange, Index: idx}
			return
		}
	}

	c = &Counter[T]{
		l:      astikit.AdaptStdLogger(nil),
		limits: append([]T{}, limits...),
		tmp:    make([]T, len(values)),
		values: append([]T{}, values...),
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}
	return
}

func (c *Counter[T]) logger() astikit.CompleteLogger {
	if c.l == nil {
		c.l = astikit.AdaptStdLogger(nil)
	}
	return c.l
}

// Len returns the number of digits
func (c *Counter[T]) Len() int {
	return len(c.values)
}

// Values returns a copy of the digits, most significant first
func (c *Counter[T]) Values() []T {
	return append([]T{}, c.values...)
}

// Limits returns a copy of the limits, most significant first
func (c *Counter[T]) Limits() []T {
	return append([]T{}, c.limits...)
}

// At returns the digit at the provided index
func (c *Counter[T]) At(idx int) T {
	return c.values[idx]
}

// IsMax checks whether every digit is at its highest value
func (c *Counter[T]) IsMax() bool {
	for idx, v := range c.values {
		if v != c.limits[idx]-1 {
			return false
		}
	}
	return true
}

// Increment adds 1 to the counter
// If the most significant digit would overflow, the counter is left untouched and an *OverflowError is returned.
func (c *Counter[T]) Increment() error {
	// Find the least significant digit that can absorb the carry
	idx := len(c.values) - 1
	for idx >= 0 && c.values[idx] == c.limits[idx]-1 {
		idx--
	}
	if idx < 0 {
		c.logger().Debugf("mixedradix: increment of %s overflowed", c)
		return &OverflowError{Carry: 1}
	}

	c.values[idx]++
	for idx++; idx < len(c.values); idx++ {
		c.values[idx] = 0
	}
	return nil
}

// Add adds amount to the counter in a single pass over the digits
// If the result doesn't fit, the counter is left untouched and an *OverflowError holding the remaining carry is
// returned.
func (c *Counter[T]) Add(amount T) error {
	if amount == 0 {
		return nil
	}

	if len(c.tmp) != len(c.values) {
		c.tmp = make([]T, len(c.values))
	}
	copy(c.tmp, c.values)
	if carry := addInto(c.tmp, c.limits, amount); carry != 0 {
		c.logger().Debugf("mixedradix: adding %d to %s overflowed with carry %d", amount, c, carry)
		return &OverflowError{Carry: uint64(carry)}
	}
	copy(c.values, c.tmp)
	return nil
}

// addInto adds amount to values in place and returns the carry out of the most significant digit
func addInto[T constraints.Unsigned](values, limits []T, amount T) (carry T) {
	carry = amount
	for idx := len(values) - 1; idx >= 0 && carry != 0; idx-- {
		values[idx], carry = addDigit(values[idx], carry, limits[idx])
	}
	return
}

// addDigit returns (value + carry) mod limit and (value + carry) div limit
// value must be lower than limit. The sum itself is never computed so that it can't overflow T.
func addDigit[T constraints.Unsigned](value, carry, limit T) (digit, next T) {
	next, r := carry/limit, carry%limit
	// value + r may not fit in T but it is lower than 2 * limit
	if r >= limit-value {
		// limit is at least 2 here, so next can't be T's maximum
		return r - (limit - value), next + 1
	}
	return value + r, next
}

// Reset sets every digit back to 0
func (c *Counter[T]) Reset() {
	for idx := range c.values {
		c.values[idx] = 0
	}
}

// Clone returns a deep copy of the counter
func (c *Counter[T]) Clone() *Counter[T] {
	return &Counter[T]{
		l:      c.l,
		limits: append([]T{}, c.limits...),
		tmp:    make([]T, len(c.values)),
		values: append([]T{}, c.values...),
	}
}

// Uint64 returns the value encoded by the digits
// ok is false if it doesn't fit in 64 bits.
func (c *Counter[T]) Uint64() (v uint64, ok bool) {
	for idx, d := range c.values {
		hi, lo := bits.Mul64(v, uint64(c.limits[idx]))
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		if v, carry = bits.Add64(lo, uint64(d), 0); carry != 0 {
			return 0, false
		}
	}
	return v, true
}

// Capacity returns the number of distinct values the counter can hold
// ok is false if it doesn't fit in 64 bits.
func (c *Counter[T]) Capacity() (n uint64, ok bool) {
	n = 1
	for _, limit := range c.limits {
		var hi uint64
		if hi, n = bits.Mul64(n, uint64(limit)); hi != 0 {
			return 0, false
		}
	}
	return n, true
}

// Equal checks whether both counters hold the same values and limits
func (c *Counter[T]) Equal(o *Counter[T]) bool {
	return c.Compare(o) == 0
}

// Compare compares values lexicographically, then limits
// It returns -1, 0 or +1.
func (c *Counter[T]) Compare(o *Counter[T]) int {
	if r := compareDigits(c.values, o.values); r != 0 {
		return r
	}
	return compareDigits(c.limits, o.limits)
}

func compareDigits[T constraints.Unsigned](a, b []T) int {
	for idx := 0; idx < len(a) && idx < len(b); idx++ {
		switch {
		case a[idx] < b[idx]:
			return -1
		case a[idx] > b[idx]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// String implements the fmt.Stringer interface
func (c *Counter[T]) String() string {
	ss := make([]string, 0, len(c.values))
	for _, v := range c.values {
		ss = append(ss, strconv.FormatUint(uint64(v), 10))
	}
	return strings.Join(ss, ":")
}
