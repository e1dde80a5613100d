// Package hll implements a HyperLogLog distinct-count estimator.
//
// An Estimator keeps 2^p one-byte registers, where p is the precision chosen
// at construction (4 to 18). Every observed item is hashed to 64 bits; the
// low p bits pick a register and the remaining bits decide how far that
// register may be raised. The estimate combines all registers through a
// bias-corrected harmonic mean, switching to linear counting while many
// registers are still empty.
//
// # Basic Usage
//
//	est, err := hll.New(14)
//	if err != nil {
//	    return err
//	}
//	for _, item := range items {
//	    est.Observe(item)
//	}
//	fmt.Printf("~%.0f distinct\n", est.Estimate())
//
// # Accuracy and Memory
//
// The relative standard error is about 1.04/sqrt(2^p):
//
//	p=10   1 KiB   ~3.25%
//	p=14  16 KiB   ~0.81%
//	p=18 256 KiB   ~0.20%
//
// No large-range correction is applied. Near 2^32/30 distinct items and
// beyond, the raw harmonic-mean estimate is returned as is.
//
// # Hashing
//
// Items are hashed with SHA-1 and the first eight digest bytes are read
// little-endian (see Hash64 and Split). The scheme is not configurable.
//
// # Thread Safety
//
// An Estimator is not safe for concurrent use. Estimate may run concurrently
// with other Estimate calls, but Observe requires exclusive access; callers
// sharing an Estimator must synchronize externally.
package hll
