// Command example is a starting point for a new day. It runs as-is
// against the data.yml next to it:
//
//	go run ./example
//
// For a real day, copy the directory to <year>/dayNN/, set the year and
// day below, and replace data.yml with the day's sample and input.
package main

import "github.com/advendofcode/aoc"

func main() {
	aoc.Run(2025, 0, part1, part2)
}

// part1 counts the non-empty lines.
func part1(lines []string) int {
	n := 0
	for _, line := range lines {
		if line != "" {
			n++
		}
	}
	return n
}

// part2 counts every line.
func part2(lines []string) int {
	return len(lines)
}
