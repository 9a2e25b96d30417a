// Day 1: Secret Entrance.
//
// A safe dial numbered 0-99 starts at 50 and is turned by a list of
// rotations like "L68" or "R48". The password counts how often the dial
// points at 0.
package main

import (
	"fmt"

	"github.com/advendofcode/aoc"
)

func main() {
	aoc.Run(2025, 1, landings, passes)
}

const (
	dialSize  = 100
	dialStart = 50
)

// Rotation is a single turn of the dial. Dist is always positive; Dir is
// -1 for left and 1 for right.
type Rotation struct {
	Dir  int
	Dist int
}

func (r Rotation) String() string {
	if r.Dir < 0 {
		return fmt.Sprintf("L%d", r.Dist)
	}
	return fmt.Sprintf("R%d", r.Dist)
}

func parseRotation(s string) Rotation {
	if len(s) < 2 {
		panic(fmt.Sprintf("bad rotation %q", s))
	}
	var r Rotation
	switch s[0] {
	case 'L':
		r.Dir = -1
	case 'R':
		r.Dir = 1
	default:
		panic(fmt.Sprintf("bad rotation %q", s))
	}
	r.Dist = aoc.Int(s[1:])
	if r.Dist < 0 {
		panic(fmt.Sprintf("bad rotation %q", s))
	}
	return r
}

type Dial struct {
	Size int
	Pos  int
}

func newDial() *Dial {
	return &Dial{Size: dialSize, Pos: dialStart}
}

// Turn rotates the dial and reports how many clicks during the rotation
// left it pointing at 0, including where it stops.
func (d *Dial) Turn(r Rotation) (zeros int) {
	// Distance to the first 0 in the direction of travel, in [1, Size].
	first := aoc.Mod(-r.Dir*d.Pos, d.Size)
	if first == 0 {
		first = d.Size
	}
	if r.Dist >= first {
		zeros = 1 + (r.Dist-first)/d.Size
	}
	d.Pos = aoc.Mod(d.Pos+r.Dir*r.Dist, d.Size)
	return zeros
}

// landings counts rotations that leave the dial at 0.
func landings(lines []string) int {
	d := newDial()
	n := 0
	for _, l := range lines {
		d.Turn(parseRotation(l))
		if d.Pos == 0 {
			n++
		}
	}
	return n
}

// passes counts every click that leaves the dial at 0, whether it is the
// end of a rotation or partway through one.
func passes(lines []string) int {
	d := newDial()
	n := 0
	for _, l := range lines {
		r := parseRotation(l)
		z := d.Turn(r)
		aoc.Debugf("%v -> %d (%d zeros)", r, d.Pos, z)
		n += z
	}
	return n
}
