package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the input file for a puzzle: sample and real input for
// each of the two parts.
type Fixture[T any] struct {
	Part1 Section[T] `yaml:"part1"`
	Part2 Section[T] `yaml:"part2"`
}

// Section holds the cases for one part. Either may be missing.
type Section[T any] struct {
	Test   *Case[T] `yaml:"test"`
	Actual *Case[T] `yaml:"actual"`
}

// Case is a single puzzle input. Expected is only meaningful for test
// cases.
type Case[T any] struct {
	Data     T
	Expected *int

	hasData bool
}

func (c *Case[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: case must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		switch k := n.Content[i]; k.Value {
		case "data", "expected":
		default:
			return fmt.Errorf("line %d: unknown field %q in case", k.Line, k.Value)
		}
	}
	var raw struct {
		Data     yaml.Node `yaml:"data"`
		Expected *int      `yaml:"expected"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}
	c.Expected = raw.Expected
	if raw.Data.Kind == 0 {
		return nil // no data key
	}
	c.hasData = true
	return raw.Data.Decode(&c.Data)
}

// Part returns the section for part 1 or 2.
func (f *Fixture[T]) Part(n int) Section[T] {
	switch n {
	case 1:
		return f.Part1
	case 2:
		return f.Part2
	}
	panic(fmt.Sprintf("bad part %d", n))
}

// LoadFixture reads and parses the fixture at path.
func LoadFixture[T any](path string) (*Fixture[T], error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	f, err := ParseFixture[T](b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseFixture decodes a YAML fixture. Part 2 cases without a data key
// reuse the data of the matching part 1 case; any case still without
// data is an error.
func ParseFixture[T any](b []byte) (*Fixture[T], error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var f Fixture[T]
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty fixture")
		}
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	inherit(f.Part2.Test, f.Part1.Test)
	inherit(f.Part2.Actual, f.Part1.Actual)
	if f.Part1.Test == nil && f.Part1.Actual == nil && f.Part2.Test == nil && f.Part2.Actual == nil {
		return nil, errors.New("fixture has no cases")
	}
	for i, s := range []Section[T]{f.Part1, f.Part2} {
		if s.Test != nil && !s.Test.hasData {
			return nil, fmt.Errorf("part%d test: no data", i+1)
		}
		if s.Actual != nil && !s.Actual.hasData {
			return nil, fmt.Errorf("part%d actual: no data", i+1)
		}
	}
	return &f, nil
}

func inherit[T any](dst, src *Case[T]) {
	if dst == nil || src == nil || dst.hasData {
		return
	}
	dst.Data = src.Data
	dst.hasData = src.hasData
}
