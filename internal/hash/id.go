// Package hash computes the 64-bit item IDs used for exact bookkeeping.
//
// These IDs are unrelated to the estimator's register hash, which is fixed
// by package hll.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of item.
func ID(item string) uint64 {
	return xxhash.Sum64String(item)
}
