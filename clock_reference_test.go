package mixedradix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockReference(t *testing.T) {
	c, err := NewClockReference(ClockReference{})
	require.NoError(t, err)

	// One second at 27 MHz
	require.NoError(t, c.Add(27_000_000))
	cr, err := ClockReferenceOf(c)
	require.NoError(t, err)
	assert.Equal(t, ClockReference{Base: 90000}, cr)
	assert.Equal(t, time.Second, cr.Duration())
	assert.Equal(t, time.Unix(1, 0), cr.Time())

	// The extension carries into the base every 300 ticks
	c, err = NewClockReference(ClockReference{Base: 5, Extension: 299})
	require.NoError(t, err)
	require.NoError(t, c.Increment())
	cr, err = ClockReferenceOf(c)
	require.NoError(t, err)
	assert.Equal(t, ClockReference{Base: 6}, cr)

	// The base wraps after 33 bits
	c, err = NewClockReference(ClockReference{Base: 1<<33 - 1, Extension: 299})
	require.NoError(t, err)
	assert.ErrorIs(t, c.Increment(), ErrCounterOverflow)
	assert.Equal(t, uint64(1), c.IncrementWrapping())
	cr, err = ClockReferenceOf(c)
	require.NoError(t, err)
	assert.Equal(t, ClockReference{}, cr)

	_, err = NewClockReference(ClockReference{Extension: 300})
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	var ie *IndexError
	_, err = NewClockReference(ClockReference{Base: -1})
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 0, ie.Index)
	_, err = NewClockReference(ClockReference{Extension: -1})
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Index)

	_, err = ClockReferenceOf(NewDuration())
	assert.ErrorIs(t, err, ErrUnexpectedLimits)
}

func TestNewDuration(t *testing.T) {
	c := NewDuration()
	require.NoError(t, c.Add(59))
	require.NoError(t, c.Increment())
	assert.Equal(t, []uint64{0, 0, 0, 1, 0}, c.Values())
	assert.Equal(t, "0:0:0:1:0", c.String())
}
