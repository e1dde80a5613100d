package hll

import (
	"crypto/sha1" //nolint:gosec // used for bit dispersion, not security
	"math/bits"

	"github.com/arloliu/cardinal/endian"
)

// hashEngine reads the digest prefix. Changing it changes every register
// index and rho derived from an item.
var hashEngine = endian.GetLittleEndianEngine()

// Hash64 hashes item to the 64-bit value the estimator consumes.
//
// The value is the first eight bytes of the SHA-1 digest of the UTF-8
// encoding of item, read little-endian. The scheme is fixed: two estimators
// fed the same items always end up with identical registers.
func Hash64(item string) uint64 {
	sum := sha1.Sum([]byte(item)) //nolint:gosec

	return hashEngine.Uint64(sum[:8])
}

// Split divides a hashed value into a register index and its rho.
//
// The low p bits of x select the register. The remaining 64-p bits form the
// residual w, and rho is the 1-based position of the highest set bit of w
// counted from the top of its (64-p)-bit field. A zero residual yields the
// field width.
//
// p must be within [MinPrecision, MaxPrecision].
func Split(x uint64, p uint8) (index uint32, rho uint8) {
	index = uint32(x & (uint64(1)<<p - 1))
	w := x >> p
	width := 64 - p
	if w == 0 {
		return index, width
	}

	// bits.Len64(w)-1 is floor(log2(w)).
	return index, width - uint8(bits.Len64(w)) + 1
}
