package mixedradix

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/asticode/go-astikit"
	"golang.org/x/exp/constraints"
)

// Binary layout (big endian):
//
//	uint8  digit width in bytes (1, 2, 4 or 8)
//	uint16 number of digits
//	then for each digit, most significant first: limit and value, both on width bytes
const headerSize = 3

// digitWidth returns the width in bytes of T
func digitWidth[T constraints.Unsigned]() int {
	switch m := uint64(^T(0)); {
	case m <= math.MaxUint8:
		return 1
	case m <= math.MaxUint16:
		return 2
	case m <= math.MaxUint32:
		return 4
	default:
		return 8
	}
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (c *Counter[T]) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}
	w := astikit.NewBitsWriter(astikit.BitsWriterOptions{Writer: buf})
	if _, err := c.Write(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes the counter in its binary layout
func (c *Counter[T]) Write(w *astikit.BitsWriter) (int, error) {
	if len(c.values) > math.MaxUint16 {
		return 0, fmt.Errorf("mixedradix: %d digits can't be encoded: %w", len(c.values), ErrInvalidEncoding)
	}

	width := digitWidth[T]()
	b := astikit.NewBitsWriterBatch(w)

	b.Write(uint8(width))
	b.Write(uint16(len(c.values)))
	for idx := range c.values {
		b.Write(digit(width, uint64(c.limits[idx])))
		b.Write(digit(width, uint64(c.values[idx])))
	}

	if err := b.Err(); err != nil {
		return 0, fmt.Errorf("mixedradix: writing counter failed: %w", err)
	}
	return headerSize + 2*width*len(c.values), nil
}

// digit returns v as an unsigned integer of the provided width
func digit(width int, v uint64) interface{} {
	switch width {
	case 1:
		return uint8(v)
	case 2:
		return uint16(v)
	case 4:
		return uint32(v)
	default:
		return v
	}
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
// The decoded digits go through the same validation as NewWithValues.
func (c *Counter[T]) UnmarshalBinary(data []byte) error {
	p, err := parseCounter[T](astikit.NewBytesIterator(data))
	if err != nil {
		c.logger().Debugf("mixedradix: unmarshaling counter failed: %s", err)
		return err
	}
	l := c.l
	*c = *p
	if l != nil {
		c.l = l
	}
	return nil
}

// parseCounter parses a counter written in its binary layout
func parseCounter[T constraints.Unsigned](i *astikit.BytesIterator) (c *Counter[T], err error) {
	// Header
	var bs []byte
	if bs, err = i.NextBytesNoCopy(headerSize); err != nil || len(bs) < headerSize {
		err = fmt.Errorf("mixedradix: fetching header failed: %w", ErrInvalidEncoding)
		return
	}
	width := int(bs[0])
	if width != digitWidth[T]() {
		err = fmt.Errorf("mixedradix: digit width %d doesn't match %d: %w", width, digitWidth[T](), ErrInvalidEncoding)
		return
	}
	n := int(binary.BigEndian.Uint16(bs[1:]))
	if i.Len()-i.Offset() < n*2*width {
		err = fmt.Errorf("mixedradix: %d digits don't fit in %d bytes: %w", n, i.Len()-i.Offset(), ErrInvalidEncoding)
		return
	}

	// Digits
	limits, values := make([]T, n), make([]T, n)
	for idx := 0; idx < n; idx++ {
		if bs, err = i.NextBytesNoCopy(2 * width); err != nil || len(bs) < 2*width {
			err = fmt.Errorf("mixedradix: fetching digit %d failed: %w", idx, ErrInvalidEncoding)
			return
		}
		limits[idx] = T(readDigit(bs[:width]))
		values[idx] = T(readDigit(bs[width:]))
	}

	if i.HasBytesLeft() {
		err = fmt.Errorf("mixedradix: %d trailing bytes: %w", i.Len()-i.Offset(), ErrInvalidEncoding)
		return
	}

	return NewWithValues(values, limits)
}

func readDigit(bs []byte) uint64 {
	switch len(bs) {
	case 1:
		return uint64(bs[0])
	case 2:
		return uint64(binary.BigEndian.Uint16(bs))
	case 4:
		return uint64(binary.BigEndian.Uint32(bs))
	default:
		return binary.BigEndian.Uint64(bs)
	}
}
