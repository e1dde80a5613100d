// Package cardinal estimates the number of distinct values in a stream using
// a fixed, small amount of memory.
//
// The estimator is a HyperLogLog sketch: 2^p one-byte registers updated per
// observed item, combined into a bias-corrected distinct-count estimate. At
// the default precision of 14 it uses 16KiB and is typically within 1% of
// the true count.
//
// # Basic Usage
//
//	import "github.com/arloliu/cardinal"
//
//	est := cardinal.NewDefaultEstimator()
//	for _, user := range users {
//	    est.Observe(user)
//	}
//	fmt.Printf("~%.0f distinct users\n", est.Estimate())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the hll
// package. The harness package compares estimates against exact counts, and
// compress measures how small a register snapshot can be made.
package cardinal

import "github.com/arloliu/cardinal/hll"

// NewEstimator creates an estimator with 2^precision registers.
//
// Returns an error wrapping errs.ErrInvalidPrecision (and therefore
// errs.ErrInvalidArgument) if precision is outside [4, 18].
//
// Example:
//
//	est, err := cardinal.NewEstimator(16)
//	if err != nil {
//	    return err
//	}
func NewEstimator(precision int) (*hll.Estimator, error) {
	return hll.New(precision)
}

// NewDefaultEstimator creates an estimator with hll.DefaultPrecision.
func NewDefaultEstimator() *hll.Estimator {
	est, err := hll.New(hll.DefaultPrecision)
	if err != nil {
		panic(err) // unreachable: the default precision is always valid
	}

	return est
}
