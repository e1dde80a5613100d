// Package exact counts distinct items exactly.
//
// It is the ground truth the harness compares estimates against. Items are
// keyed by their xxHash64 ID; when two different items share an ID the
// later one is kept in a side table so the count stays exact.
package exact

import "github.com/arloliu/cardinal/internal/hash"

// Counter tracks the set of distinct items seen so far.
type Counter struct {
	items      map[uint64]string   // ID -> first item seen with that ID
	overflow   map[string]struct{} // items whose ID was already taken by another item
	collisions int
}

// NewCounter creates an empty Counter with room for sizeHint items.
func NewCounter(sizeHint int) *Counter {
	return &Counter{
		items:    make(map[uint64]string, sizeHint),
		overflow: make(map[string]struct{}),
	}
}

// Add records item and reports whether it had not been seen before.
func (c *Counter) Add(item string) bool {
	return c.add(item, hash.ID(item))
}

func (c *Counter) add(item string, id uint64) bool {
	existing, exists := c.items[id]
	if !exists {
		c.items[id] = item
		return true
	}
	if existing == item {
		return false
	}

	// Same ID, different item.
	if _, dup := c.overflow[item]; dup {
		return false
	}
	c.overflow[item] = struct{}{}
	c.collisions++

	return true
}

// Count returns the number of distinct items added.
func (c *Counter) Count() int {
	return len(c.items) + len(c.overflow)
}

// Collisions returns how many distinct items shared an ID with an earlier item.
func (c *Counter) Collisions() int {
	return c.collisions
}
