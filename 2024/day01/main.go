// Day 1: Historian Hysteria.
//
// Each row of input pairs a location ID from the left list with one from
// the right list.
package main

import (
	"fmt"
	"slices"

	"github.com/advendofcode/aoc"
)

func main() {
	aoc.Run(2024, 1, totalDistance, similarity)
}

// columns splits rows of pairs into the left and right lists.
func columns(rows [][]int) (left, right []int) {
	for i, r := range rows {
		if len(r) != 2 {
			panic(fmt.Sprintf("row %d: got %d values; want 2", i, len(r)))
		}
		left = append(left, r[0])
		right = append(right, r[1])
	}
	return left, right
}

// totalDistance pairs the smallest left with the smallest right, the
// second smallest with the second smallest and so on, and sums the
// distances between each pair.
func totalDistance(rows [][]int) int {
	left, right := columns(rows)
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += aoc.AbsDiff(left[i], right[i])
	}
	return total
}

// similarity adds up each left value multiplied by the number of times it
// appears in the right list.
func similarity(rows [][]int) int {
	left, right := columns(rows)
	l, r := aoc.NewCounter(left...), aoc.NewCounter(right...)
	total := 0
	for _, v := range aoc.SortedKeys(l) {
		n := v * l.Count(v) * r.Count(v)
		aoc.Debugf("%d: x%d left, x%d right = %d", v, l.Count(v), r.Count(v), n)
		total += n
	}
	return total
}
