// Package harness drives an estimator with generated values and compares its
// estimate against the exact distinct count.
//
// A run draws Items random integers from [1, MaxValue), renders them as
// decimal strings, and feeds each one to both an hll.Estimator and an exact
// counter. Every Step values it records, and prints, a row of
//
//	Items  TrueCount  HLL_Estimate  Error(%)
//
// followed by an error summary and the compressed footprint of the final
// register array under each selected codec. Every footprint is decompressed
// and compared with the registers; a mismatch fails the run.
//
// The harness only uses the estimator's public operations.
package harness

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/arloliu/cardinal/compress"
	"github.com/arloliu/cardinal/hll"
	"github.com/arloliu/cardinal/internal/exact"
	"github.com/arloliu/cardinal/internal/options"
	"github.com/arloliu/cardinal/internal/pool"
)

// Sample is one comparison between the estimate and the exact count.
type Sample struct {
	Items     int
	TrueCount int
	Estimate  float64
	// ErrorPct is (Estimate - TrueCount) / TrueCount * 100.
	ErrorPct float64
}

// Report is the outcome of a run.
type Report struct {
	Precision int
	Seed      uint64
	// Samples holds one entry per Step values.
	Samples []Sample
	// Final compares the state after the last value, even when Items is not
	// a multiple of Step.
	Final Sample
	// MeanAbsErrorPct and MaxAbsErrorPct summarize |ErrorPct| over Samples
	// and Final.
	MeanAbsErrorPct float64
	MaxAbsErrorPct  float64
	// Duplicates counts generated values that had already been seen, so
	// Final.TrueCount + Duplicates == Final.Items.
	Duplicates int
	// Collisions counts distinct values that shared an ID in the exact counter.
	Collisions int
	// Footprints holds the snapshot size under each selected codec.
	Footprints []compress.CompressionStats
}

// Runner executes runs for a fixed configuration.
type Runner struct {
	cfg Config
}

// New creates a Runner.
//
// Returns an error if any option is invalid.
func New(opts ...Option) (*Runner, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.MaxValue == 0 {
		cfg.MaxValue = 2 * cfg.Items
	}
	if !cfg.Seeded {
		cfg.Seed = uint64(time.Now().UnixNano()) //nolint:gosec
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}

	return &Runner{cfg: cfg}, nil
}

// Config returns the resolved configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Run generates the configured values and returns the comparison report.
//
// The context is checked between report rows; a cancelled run returns the
// context error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	est, err := hll.New(r.cfg.Precision)
	if err != nil {
		return nil, err
	}

	truth := exact.NewCounter(min(r.cfg.Items, r.cfg.MaxValue))
	rng := rand.New(rand.NewPCG(r.cfg.Seed, r.cfg.Seed^0x9e3779b97f4a7c15)) //nolint:gosec
	w := &errWriter{w: r.cfg.Out}

	report := &Report{
		Precision: r.cfg.Precision,
		Seed:      r.cfg.Seed,
		Samples:   make([]Sample, 0, r.cfg.Items/r.cfg.Step),
	}

	w.printf("Items\tTrueCount\tHLL_Estimate\tError(%%)\n")
	for i := 1; i <= r.cfg.Items; i++ {
		value := strconv.Itoa(1 + rng.IntN(r.cfg.MaxValue-1))
		if !truth.Add(value) {
			report.Duplicates++
		}
		est.Observe(value)

		if i%r.cfg.Step != 0 {
			continue
		}

		s := sample(i, truth.Count(), est.Estimate())
		report.Samples = append(report.Samples, s)
		w.printf("%d\t%d\t\t%.0f\t\t%.2f\n", s.Items, s.TrueCount, s.Estimate, s.ErrorPct)

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	report.Final = sample(r.cfg.Items, truth.Count(), est.Estimate())
	report.Collisions = truth.Collisions()
	report.MeanAbsErrorPct, report.MaxAbsErrorPct = summarize(report.Samples, report.Final)

	w.printf("\nprecision=%d registers=%d seed=%d\n", est.Precision(), est.NumRegisters(), r.cfg.Seed)
	w.printf("final: true=%d estimate=%.0f error=%.2f%%\n",
		report.Final.TrueCount, report.Final.Estimate, report.Final.ErrorPct)
	w.printf("abs error: mean=%.2f%% max=%.2f%%\n", report.MeanAbsErrorPct, report.MaxAbsErrorPct)
	w.printf("duplicates=%d collisions=%d\n", report.Duplicates, report.Collisions)

	report.Footprints, err = r.footprints(est)
	if err != nil {
		return nil, err
	}
	if len(report.Footprints) > 0 {
		w.printf("\nCodec\tBytes\tSavings(%%)\n")
		for _, fp := range report.Footprints {
			w.printf("%s\t%d\t%.1f\n", fp.Algorithm, fp.CompressedSize, fp.SpaceSavings())
		}
	}

	if w.err != nil {
		return nil, fmt.Errorf("failed to write report: %w", w.err)
	}

	return report, nil
}

func (r *Runner) footprints(est *hll.Estimator) ([]compress.CompressionStats, error) {
	if len(r.cfg.Codecs) == 0 {
		return nil, nil
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)
	buf.B = est.AppendRegisters(buf.B)

	stats := make([]compress.CompressionStats, 0, len(r.cfg.Codecs))
	for _, ct := range r.cfg.Codecs {
		codec, err := compress.GetCodec(ct)
		if err != nil {
			return nil, err
		}
		s, err := compress.Measure(codec, ct, buf.Bytes())
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, nil
}

func sample(items, trueCount int, estimate float64) Sample {
	s := Sample{Items: items, TrueCount: trueCount, Estimate: estimate}
	if trueCount > 0 {
		s.ErrorPct = (estimate - float64(trueCount)) / float64(trueCount) * 100.0
	}

	return s
}

func summarize(samples []Sample, final Sample) (mean, maxAbs float64) {
	sum := math.Abs(final.ErrorPct)
	maxAbs = sum
	for _, s := range samples {
		e := math.Abs(s.ErrorPct)
		sum += e
		maxAbs = max(maxAbs, e)
	}

	return sum / float64(len(samples)+1), maxAbs
}

// errWriter keeps the first write error so report printing stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
