package mixedradix

import (
	"fmt"

	"github.com/asticode/go-astikit"
	"golang.org/x/exp/constraints"
)

// maxBCDLimit is the highest limit a single BCD byte can hold digits for
const maxBCDLimit = 100

// WriteBCD writes each digit as a 2 digits packed Binary Coded Decimal byte, most significant first
// This is how DVB codes hh:mm:ss durations. Every limit must be at most 100.
func (c *Counter[T]) WriteBCD(w *astikit.BitsWriter) (int, error) {
	for idx, limit := range c.limits {
		if limit > maxBCDLimit {
			return 0, &IndexError{Err: ErrBCDUnsupported, Index: idx}
		}
	}

	b := astikit.NewBitsWriterBatch(w)
	for _, v := range c.values {
		b.Write(bcdByteRepresentation(uint8(v)))
	}
	if err := b.Err(); err != nil {
		return 0, fmt.Errorf("mixedradix: writing bcd failed: %w", err)
	}
	return len(c.values), nil
}

// ParseBCD parses one packed BCD byte per limit and creates the matching counter
func ParseBCD[T constraints.Unsigned](i *astikit.BytesIterator, limits []T, opts ...CounterOpt[T]) (c *Counter[T], err error) {
	values := make([]T, len(limits))
	for idx, limit := range limits {
		if limit > maxBCDLimit {
			err = &IndexError{Err: ErrBCDUnsupported, Index: idx}
			return
		}

		var b byte
		if b, err = i.NextByte(); err != nil {
			err = fmt.Errorf("mixedradix: fetching next byte failed: %w", err)
			return
		}

		var v uint8
		if v, err = parseBCDByte(b); err != nil {
			err = &IndexError{Err: err, Index: idx}
			return
		}
		values[idx] = T(v)
	}
	return NewWithValues(values, limits, opts...)
}

// parseBCDByte parses a packed BCD byte
func parseBCDByte(b byte) (uint8, error) {
	if b>>4 > 9 || b&0xf > 9 {
		return 0, fmt.Errorf("mixedradix: %#x is not bcd: %w", b, ErrInvalidEncoding)
	}
	return b>>4*10 + b&0xf, nil
}

func bcdByteRepresentation(n uint8) uint8 {
	return (n/10)<<4 | n%10
}
