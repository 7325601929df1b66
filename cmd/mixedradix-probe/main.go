package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/asticode/go-astikit"
	mixedradix "github.com/asticode/go-mixedradix"
	"github.com/pkg/profile"
)

// Flags
var (
	amount          = flag.Uint64("a", 0, "the amount to add")
	count           = flag.Uint64("n", 1, "the number of increments")
	cpuProfiling    = flag.Bool("cp", false, "if yes, cpu profiling is enabled")
	limits          = flag.String("l", "", "the comma separated limits, most significant first")
	memoryProfiling = flag.Bool("mp", false, "if yes, memory profiling is enabled")
	values          = flag.String("v", "", "the comma separated initial values, most significant first")
	verbose         = flag.Bool("d", false, "if yes, debug messages are logged")
)

func main() {
	// Init
	cmd := astikit.FlagCmd()
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s <add|increment> [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Deferred calls in run must execute before exiting
	os.Exit(run(cmd, os.Stdout, log.Default()))
}

// run executes cmd and returns the process exit code
func run(cmd string, w io.Writer, l *log.Logger) int {
	// Start profiling
	if *cpuProfiling {
		defer profile.Start(profile.CPUProfile).Stop()
	} else if *memoryProfiling {
		defer profile.Start(profile.MemProfile).Stop()
	}

	// Build counter
	c, err := buildCounter(*values, *limits, l)
	if err != nil {
		l.Println(fmt.Errorf("main: building counter failed: %w", err))
		return 1
	}

	// Switch on command
	switch cmd {
	case "add":
		err = c.Add(*amount)
	case "increment":
		for idx := uint64(0); idx < *count && err == nil; idx++ {
			err = c.Increment()
		}
	default:
		flag.Usage()
		return 2
	}

	if err != nil {
		var oe *mixedradix.OverflowError
		if errors.As(err, &oe) {
			l.Printf("main: %s overflowed with carry %d", cmd, oe.Carry)
		} else {
			l.Println(fmt.Errorf("main: %s failed: %w", cmd, err))
		}
		return 1
	}
	fmt.Fprintln(w, c)
	return 0
}

func buildCounter(values, limits string, l *log.Logger) (*mixedradix.Counter[uint64], error) {
	ls, err := parseDigits(limits)
	if err != nil {
		return nil, fmt.Errorf("main: parsing limits failed: %w", err)
	}

	var opts []mixedradix.CounterOpt[uint64]
	if *verbose {
		opts = append(opts, mixedradix.CounterOptLogger[uint64](l))
	}

	if values == "" {
		return mixedradix.New(ls, opts...)
	}

	vs, err := parseDigits(values)
	if err != nil {
		return nil, fmt.Errorf("main: parsing values failed: %w", err)
	}
	return mixedradix.NewWithValues(vs, ls, opts...)
}

// parseDigits parses a comma separated list of unsigned integers
func parseDigits(s string) (o []uint64, err error) {
	if s == "" {
		return
	}
	for _, p := range strings.Split(s, ",") {
		var v uint64
		if v, err = strconv.ParseUint(strings.TrimSpace(p), 10, 64); err != nil {
			err = fmt.Errorf("main: parsing %q failed: %w", p, err)
			return
		}
		o = append(o, v)
	}
	return
}
