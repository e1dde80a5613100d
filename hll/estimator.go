package hll

import (
	"fmt"
	"math"

	"github.com/arloliu/cardinal/errs"
)

const (
	// MinPrecision is the smallest accepted precision (16 registers).
	MinPrecision = 4
	// MaxPrecision is the largest accepted precision (262144 registers).
	MaxPrecision = 18
	// DefaultPrecision gives 16384 registers and roughly 0.81% standard error.
	DefaultPrecision = 14
)

const (
	alpha16 = 0.673
	alpha32 = 0.697
	alpha64 = 0.709
)

// Estimator estimates the number of distinct strings it has observed.
//
// The register array is allocated once by New and never resized; registers
// only ever increase.
type Estimator struct {
	registers []uint8
	alpha     float64
	p         uint8
}

// New creates an Estimator with 2^precision registers, all zero.
//
// Parameters:
//   - precision: log2 of the register count, within [MinPrecision, MaxPrecision]
//
// Returns:
//   - *Estimator: The created estimator, nil on error.
//   - error: errs.ErrInvalidPrecision if precision is out of range.
func New(precision int) (*Estimator, error) {
	if precision < MinPrecision || precision > MaxPrecision {
		return nil, fmt.Errorf("%w: got %d, want [%d, %d]",
			errs.ErrInvalidPrecision, precision, MinPrecision, MaxPrecision)
	}

	m := 1 << precision

	return &Estimator{
		registers: make([]uint8, m),
		alpha:     alphaFor(m),
		p:         uint8(precision),
	}, nil
}

func alphaFor(m int) float64 {
	switch m {
	case 16:
		return alpha16
	case 32:
		return alpha32
	case 64:
		return alpha64
	default:
		return 0.7213 / (1.0 + 1.079/float64(m))
	}
}

// Observe records item. It raises at most one register.
func (e *Estimator) Observe(item string) {
	e.observeHash(Hash64(item))
}

func (e *Estimator) observeHash(x uint64) {
	j, rho := Split(x, e.p)
	if rho > e.registers[j] {
		e.registers[j] = rho
	}
}

// Estimate returns the current distinct-count estimate.
//
// It does not modify the estimator. A fresh estimator returns 0.
func (e *Estimator) Estimate() float64 {
	m := float64(len(e.registers))

	// Harmonic mean of 2^-register, plus the number of empty registers.
	z := 0.0
	zeros := 0
	for _, r := range e.registers {
		z += math.Ldexp(1, -int(r))
		if r == 0 {
			zeros++
		}
	}

	raw := e.alpha * m * m / z
	if raw <= 2.5*m && zeros > 0 {
		return linearCounting(m, float64(zeros))
	}

	return raw
}

func linearCounting(m, v float64) float64 {
	return m * math.Log(m/v)
}

// Precision returns the precision the estimator was created with.
func (e *Estimator) Precision() int {
	return int(e.p)
}

// NumRegisters returns the register count, 2^Precision().
func (e *Estimator) NumRegisters() int {
	return len(e.registers)
}

// Register returns the value of register j. It panics if j is out of range.
func (e *Estimator) Register(j int) uint8 {
	return e.registers[j]
}

// ZeroRegisters returns the number of registers that were never raised.
func (e *Estimator) ZeroRegisters() int {
	n := 0
	for _, r := range e.registers {
		if r == 0 {
			n++
		}
	}

	return n
}

// AppendRegisters appends a copy of the register array to dst and returns
// the extended slice. The returned bytes never alias estimator state.
func (e *Estimator) AppendRegisters(dst []byte) []byte {
	return append(dst, e.registers...)
}
