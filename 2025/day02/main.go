// Day 2: Gift Shop.
//
// The input is a comma separated list of product ID ranges. Invalid IDs
// are made of some sequence of digits repeated.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/advendofcode/aoc"
)

func main() {
	aoc.Run(2025, 2, func(in string) int {
		return sumInvalid(in, repeatedTwice)
	}, func(in string) int {
		return sumInvalid(in, repeatedAny)
	})
}

// Range is an inclusive range of IDs.
type Range struct {
	Start, End int
}

func parseRange(s string) Range {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		panic(fmt.Sprintf("bad range %q", s))
	}
	r := Range{Start: aoc.Int(a), End: aoc.Int(b)}
	if r.Start > r.End {
		panic(fmt.Sprintf("bad range %q: start after end", s))
	}
	return r
}

func parseRanges(in string) []Range {
	var out []Range
	for _, s := range strings.Split(in, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, parseRange(s))
	}
	return out
}

// repeats reports whether s is some block of digits repeated exactly n
// times.
func repeats(s string, n int) bool {
	if n < 2 || s == "" || len(s)%n != 0 {
		return false
	}
	return strings.Repeat(s[:len(s)/n], n) == s
}

// repeatedTwice reports whether id is a block of digits written twice,
// like 6464 or 123123.
func repeatedTwice(id int) bool {
	return repeats(strconv.Itoa(id), 2)
}

// repeatedAny reports whether id is a block of digits written two or more
// times, like 1111111 or 121212.
func repeatedAny(id int) bool {
	s := strconv.Itoa(id)
	for n := 2; n <= len(s); n++ {
		if repeats(s, n) {
			return true
		}
	}
	return false
}

func sumInvalid(in string, invalid func(int) bool) int {
	sum := 0
	for _, r := range parseRanges(in) {
		for id := r.Start; id <= r.End; id++ {
			if invalid(id) {
				aoc.Debugf("%v: %d", r, id)
				sum += id
			}
		}
	}
	return sum
}
