package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cardinal/errs"
	"github.com/arloliu/cardinal/format"
	"github.com/arloliu/cardinal/hll"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	cfg := r.Config()
	require.Equal(t, DefaultItems, cfg.Items)
	require.Equal(t, DefaultStep, cfg.Step)
	require.Equal(t, hll.DefaultPrecision, cfg.Precision)
	require.Equal(t, 2*DefaultItems, cfg.MaxValue)
	require.Equal(t, format.CompressionTypes, cfg.Codecs)
	require.False(t, cfg.Seeded)
	require.NotNil(t, cfg.Out)
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		wantErr error
	}{
		{"zero items", WithItems(0), errs.ErrInvalidOption},
		{"negative step", WithStep(-5), errs.ErrInvalidOption},
		{"precision too low", WithPrecision(3), errs.ErrInvalidPrecision},
		{"precision too high", WithPrecision(19), errs.ErrInvalidPrecision},
		{"value range", WithValueRange(1), errs.ErrInvalidOption},
		{"codec", WithCodecs(format.CompressionType(9)), errs.ErrUnknownCompression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.opt)
			require.Nil(t, r)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, errs.ErrInvalidArgument)
		})
	}
}

func TestRun_Report(t *testing.T) {
	var out bytes.Buffer
	r, err := New(
		WithItems(20000),
		WithStep(1000),
		WithSeed(42),
		WithOutput(&out),
	)
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, hll.DefaultPrecision, report.Precision)
	require.Equal(t, uint64(42), report.Seed)
	require.Len(t, report.Samples, 20)

	prev := 0
	for i, s := range report.Samples {
		require.Equal(t, (i+1)*1000, s.Items)
		require.GreaterOrEqual(t, s.TrueCount, prev, "exact count never decreases")
		require.LessOrEqual(t, s.TrueCount, s.Items)
		prev = s.TrueCount
	}

	final := report.Final
	require.Equal(t, report.Samples[len(report.Samples)-1], final)
	require.LessOrEqual(t, final.TrueCount, 40000-1)
	assert.InEpsilon(t, float64(final.TrueCount), final.Estimate, 0.05)
	require.GreaterOrEqual(t, report.MaxAbsErrorPct, report.MeanAbsErrorPct)
	require.Equal(t, final.Items, final.TrueCount+report.Duplicates)
	require.Positive(t, report.Duplicates, "20000 draws from [1, 40000) repeat some values")

	require.Len(t, report.Footprints, len(format.CompressionTypes))
	require.Equal(t, format.CompressionNone, report.Footprints[0].Algorithm)
	require.Equal(t, int64(1<<hll.DefaultPrecision), report.Footprints[0].CompressedSize)

	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "Items\tTrueCount\tHLL_Estimate\tError(%)", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "1000\t"), "first row: %q", lines[1])
	require.Contains(t, out.String(), "precision=14 registers=16384 seed=42")
	require.Contains(t, out.String(), fmt.Sprintf("duplicates=%d collisions=0", report.Duplicates))
	require.Contains(t, out.String(), "Codec\tBytes\tSavings(%)")
}

func TestRun_Reproducible(t *testing.T) {
	run := func() *Report {
		r, err := New(WithItems(5000), WithStep(500), WithSeed(7), WithPrecision(10), WithCodecs())
		require.NoError(t, err)
		report, err := r.Run(context.Background())
		require.NoError(t, err)

		return report
	}

	a, b := run(), run()
	require.Equal(t, a.Samples, b.Samples)
	require.Equal(t, a.Final, b.Final)
	require.Empty(t, a.Footprints)
}

func TestRun_PartialFinalStep(t *testing.T) {
	r, err := New(WithItems(2500), WithStep(1000), WithSeed(1), WithCodecs(format.CompressionS2))
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Samples, 2)
	require.Equal(t, 2500, report.Final.Items)
	require.GreaterOrEqual(t, report.Final.TrueCount, report.Samples[1].TrueCount)
	require.Len(t, report.Footprints, 1)
	require.Equal(t, format.CompressionS2, report.Footprints[0].Algorithm)
}

func TestRun_SmallValueRange(t *testing.T) {
	// 1000 draws from [1, 11) hit all ten values.
	r, err := New(WithItems(1000), WithStep(100), WithValueRange(11), WithSeed(3))
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 10, report.Final.TrueCount)
	require.Equal(t, 990, report.Duplicates)
	require.InDelta(t, 10.0, report.Final.Estimate, 0.5)
	require.Zero(t, report.Collisions)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := New(WithItems(10000), WithStep(100), WithSeed(1))
	require.NoError(t, err)

	report, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, report)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRun_WriteError(t *testing.T) {
	r, err := New(WithItems(100), WithStep(10), WithSeed(1), WithOutput(failingWriter{}))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}

func TestSummarize(t *testing.T) {
	samples := []Sample{{ErrorPct: 1}, {ErrorPct: -3}}
	mean, maxAbs := summarize(samples, Sample{ErrorPct: 2})

	require.InDelta(t, 2.0, mean, 1e-12)
	require.InDelta(t, 3.0, maxAbs, 1e-12)
}

func TestSample_ZeroTrueCount(t *testing.T) {
	s := sample(0, 0, 0)
	require.Zero(t, s.ErrorPct)
}

func TestRun_FootprintsRoundTrip(t *testing.T) {
	r, err := New(WithItems(3000), WithStep(1000), WithSeed(9), WithPrecision(12))
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Footprints, len(format.CompressionTypes))
	for _, fp := range report.Footprints {
		require.Equal(t, int64(1<<12), fp.OriginalSize, fp.Algorithm.String())
		require.Positive(t, fp.CompressedSize, fp.Algorithm.String())
	}
}
