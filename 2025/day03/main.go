// Day 3: Lobby.
//
// Each line of input is a bank of batteries, one digit per battery. A
// bank's joltage is the number formed by the batteries turned on, in
// order.
package main

import (
	"fmt"

	"github.com/advendofcode/aoc"
)

func main() {
	aoc.Run(2025, 3, func(banks []string) int {
		return totalJoltage(banks, 2)
	}, func(banks []string) int {
		return totalJoltage(banks, 12)
	})
}

// maxJoltage returns the largest number that can be made by picking n
// digits of bank without reordering them.
//
// Each pick takes the leftmost largest digit that still leaves enough
// digits after it for the remaining picks.
func maxJoltage(bank string, n int) int {
	digits := aoc.Digits(bank)
	if n > len(digits) {
		panic(fmt.Sprintf("bank %q has fewer than %d batteries", bank, n))
	}
	v, start := 0, 0
	for i := 0; i < n; i++ {
		best := start
		for j := start + 1; j <= len(digits)-(n-i); j++ {
			if digits[j] > digits[best] {
				best = j
			}
		}
		v = v*10 + digits[best]
		start = best + 1
	}
	return v
}

func totalJoltage(banks []string, n int) int {
	total := 0
	for _, b := range banks {
		j := maxJoltage(b, n)
		aoc.Debugf("%s: %d", b, j)
		total += j
	}
	return total
}
