package aoc

import (
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Counter is a multiset: it counts how many times each value was added.
type Counter[K comparable] map[K]int

// NewCounter returns a Counter holding vs.
func NewCounter[K comparable](vs ...K) Counter[K] {
	c := make(Counter[K], len(vs))
	for _, v := range vs {
		c.Add(v)
	}
	return c
}

func (c Counter[K]) Add(v K) {
	c[v]++
}

// Count returns the number of times v was added.
func (c Counter[K]) Count(v K) int {
	return c[v]
}

// Keys returns the distinct values, in no particular order.
func (c Counter[K]) Keys() []K {
	return maps.Keys(c)
}

// SortedKeys returns the distinct values of c in ascending order.
func SortedKeys[K constraints.Ordered](c Counter[K]) []K {
	ks := c.Keys()
	slices.Sort(ks)
	return ks
}
