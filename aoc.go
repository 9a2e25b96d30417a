// Package aoc are quick & dirty utilities for running Advent of Code
// solutions against YAML fixtures.
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// config is set from the command line.
type config struct {
	fixture    string
	part       string
	debug      bool
	onlySample bool
	skipSample bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.StringVar(&c.fixture, "fixture", "", "fixture to load; defaults to <year>/dayNN/data.yml, then data.yml next to the puzzle source")
	fs.BoolVar(&c.onlySample, "sample", false, "only run sample")
	fs.BoolVar(&c.skipSample, "skip-sample", false, "skip sample")
	fs.BoolVar(&c.debug, "debug", false, "debug mode")
	fs.StringVar(&c.part, "part", "", "part to run")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if c.part != "" && c.part != "1" && c.part != "2" {
		return config{}, fmt.Errorf("bad -part %q; want 1 or 2", c.part)
	}
	return c, nil
}

var flagDebug bool

// errSampleMismatch is returned by a run in which at least one sample
// answer differed from the fixture's expected value.
var errSampleMismatch = errors.New("sample mismatch")

// Debugf prints when -debug is set.
func Debugf(format string, args ...any) {
	if flagDebug {
		fmt.Printf(format+"\n", args...)
	}
}

// FixturePath returns the default fixture location for a puzzle,
// relative to the repository root.
func FixturePath(year, day int) string {
	return filepath.Join(fmt.Sprint(year), fmt.Sprintf("day%02d", day), "data.yml")
}

// findFixture picks the fixture to load. An explicit path always wins.
// Otherwise the first existing of FixturePath (run from the repo root),
// data.yml next to the puzzle source, and ./data.yml is used. If none
// exist, FixturePath is returned so the error names it.
func findFixture(explicit string, year, day int, srcDir string) string {
	if explicit != "" {
		return explicit
	}
	candidates := []string{FixturePath(year, day)}
	if srcDir != "" {
		candidates = append(candidates, filepath.Join(srcDir, "data.yml"))
	}
	candidates = append(candidates, "data.yml")
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return candidates[0]
}

// Run loads the puzzle fixture and runs both parts against its test and
// actual cases, printing the answers. It is meant to be the whole of a
// puzzle's main function: any failure is logged and exits the process.
func Run[T any](year, day int, part1, part2 func(T) int) {
	var srcDir string
	if _, file, _, ok := runtime.Caller(1); ok {
		srcDir = filepath.Dir(file)
	}
	err := run(os.Args[1:], os.Stdout, srcDir, year, day, part1, part2)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, errSampleMismatch):
		os.Exit(1)
	default:
		log.Fatal(err)
	}
}

func run[T any](args []string, w io.Writer, srcDir string, year, day int, part1, part2 func(T) int) error {
	c, err := parseFlags(args)
	if err != nil {
		return err
	}
	flagDebug = c.debug
	f, err := LoadFixture[T](findFixture(c.fixture, year, day, srcDir))
	if err != nil {
		return err
	}
	r := runner[T]{
		w:          w,
		part:       c.part,
		onlySample: c.onlySample,
		skipSample: c.skipSample,
	}
	fmt.Fprintf(w, "Running %d day %d\n", year, day)
	return r.run(f, part1, part2)
}

type runner[T any] struct {
	w          io.Writer
	part       string
	onlySample bool
	skipSample bool
}

func (r runner[T]) run(f *Fixture[T], part1, part2 func(T) int) error {
	failed := false
	for i, fn := range []func(T) int{part1, part2} {
		part := fmt.Sprint(i + 1)
		if r.part != "" && r.part != part {
			continue
		}
		ok, err := r.runPart(part, f.Part(i+1), fn)
		if err != nil {
			return err
		}
		if !ok {
			failed = true
		}
	}
	if failed {
		return errSampleMismatch
	}
	return nil
}

// runPart runs a single part. It reports false if the sample answer was
// wrong, in which case the actual input is not attempted.
func (r runner[T]) runPart(part string, s Section[T], fn func(T) int) (bool, error) {
	if s.Test != nil && !r.skipSample {
		t0 := time.Now()
		got, err := solve(fn, s.Test.Data)
		if err != nil {
			return false, fmt.Errorf("part %s sample: %w", part, err)
		}
		switch {
		case s.Test.Expected == nil:
			fmt.Fprintf(r.w, "part %s sample: %v (no expected value)\n", part, got)
		case got != *s.Test.Expected:
			fmt.Fprintf(r.w, "part %s sample: %v ❌; want %v\n", part, got, *s.Test.Expected)
			return false, nil
		default:
			fmt.Fprintf(r.w, "part %s sample: %v ✅ (%v)\n", part, got, time.Since(t0).Round(time.Microsecond))
		}
	}
	if s.Actual == nil || r.onlySample {
		return true, nil
	}
	t0 := time.Now()
	got, err := solve(fn, s.Actual.Data)
	if err != nil {
		return false, fmt.Errorf("part %s: %w", part, err)
	}
	fmt.Fprintf(r.w, "part %s: %v (took %v)\n", part, got, time.Since(t0).Round(time.Microsecond))
	return true, nil
}

// solve calls fn, turning a panic from one of the Must helpers into an
// error.
func solve[T any](fn func(T) int, in T) (got int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	return fn(in), nil
}
