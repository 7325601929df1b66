package main

import (
	"bytes"
	"log"
	"testing"

	mixedradix "github.com/asticode/go-mixedradix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDigits(t *testing.T) {
	ds, err := parseDigits("18446744073709551615, 365,24,60,60")
	require.NoError(t, err)
	assert.Equal(t, []uint64{18446744073709551615, 365, 24, 60, 60}, ds)

	ds, err = parseDigits("")
	require.NoError(t, err)
	assert.Empty(t, ds)

	_, err = parseDigits("1,-2")
	assert.Error(t, err)
}

func TestBuildCounter(t *testing.T) {
	l := log.Default()

	c, err := buildCounter("", "3,4,5", l)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 0, 0}, c.Values())

	c, err = buildCounter("0,1,4", "3,4,5", l)
	require.NoError(t, err)
	require.NoError(t, c.Increment())
	assert.Equal(t, "0:2:0", c.String())

	_, err = buildCounter("0,4,4", "3,4,5", l)
	assert.ErrorIs(t, err, mixedradix.ErrValueOutOfRange)

	_, err = buildCounter("", "3,0", l)
	assert.ErrorIs(t, err, mixedradix.ErrInvalidLimit)
}

func TestRun(t *testing.T) {
	defer func(a, n uint64, ls, vs string) { *amount, *count, *limits, *values = a, n, ls, vs }(*amount, *count, *limits, *values)
	logs := &bytes.Buffer{}
	l := log.New(logs, "", 0)

	*limits, *amount = "18446744073709551615,365,24,60,60", 69413798
	out := &bytes.Buffer{}
	assert.Equal(t, 0, run("add", out, l))
	assert.Equal(t, "2:73:9:36:38\n", out.String())

	// Failures return an exit code instead of exiting
	*limits, *values, *count = "2,2", "1,1", 1
	out.Reset()
	assert.Equal(t, 1, run("increment", out, l))
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "increment overflowed with carry 1")

	*limits, *values = "2,0", ""
	assert.Equal(t, 1, run("add", out, l))
	assert.Contains(t, logs.String(), "building counter failed")
}
