// Package chooser implements weighted random selection over an ordered
// collection of items.
//
// Every randomized decision in the generator (theme item, tiling family,
// pattern family, time-span entry) goes through a Chooser so that each
// decision consumes exactly one draw from the shared random stream.
// Insertion order is part of the contract: it fixes the mapping from a
// drawn value to an item, so reordering entries changes output even for
// the same seed.
package chooser

import "math/rand/v2"

// Entry pairs an item with its non-negative selection weight.
type Entry[T any] struct {
	Item   T
	Weight int
}

// Chooser holds an ordered sequence of weighted items.
type Chooser[T any] struct {
	entries []Entry[T]
	total   int
}

// New builds a chooser from the given entries. Entries with negative
// weight are kept but never selected (they count as weight zero).
func New[T any](entries ...Entry[T]) *Chooser[T] {
	c := &Chooser[T]{}
	for _, e := range entries {
		c.Push(e.Item, e.Weight)
	}
	return c
}

// Push appends one item with the given weight.
func (c *Chooser[T]) Push(item T, weight int) {
	if weight < 0 {
		weight = 0
	}
	c.entries = append(c.entries, Entry[T]{Item: item, Weight: weight})
	c.total += weight
}

// Append appends all entries, preserving their order.
func (c *Chooser[T]) Append(entries []Entry[T]) {
	for _, e := range entries {
		c.Push(e.Item, e.Weight)
	}
}

// Extract returns a copy of the entries, used to flatten a chooser into
// another when a named theme or shape list references this one.
func (c *Chooser[T]) Extract() []Entry[T] {
	out := make([]Entry[T], len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Chooser[T]) Len() int { return len(c.entries) }

// Total returns the sum of all weights.
func (c *Chooser[T]) Total() int { return c.total }

// Choose draws one item with probability proportional to its weight.
// It consumes exactly one value from rng when the chooser is non-empty
// with positive total weight, and none otherwise (reported as ok=false).
func (c *Chooser[T]) Choose(rng *rand.Rand) (T, bool) {
	var zero T
	if c.total <= 0 {
		return zero, false
	}
	n := rng.IntN(c.total)
	for _, e := range c.entries {
		n -= e.Weight
		if n < 0 {
			return e.Item, true
		}
	}
	return zero, false
}
