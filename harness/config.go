package harness

import (
	"fmt"
	"io"

	"github.com/arloliu/cardinal/compress"
	"github.com/arloliu/cardinal/errs"
	"github.com/arloliu/cardinal/format"
	"github.com/arloliu/cardinal/hll"
	"github.com/arloliu/cardinal/internal/options"
)

const (
	// DefaultItems is the number of values a run generates.
	DefaultItems = 500000
	// DefaultStep is the number of values between two report rows.
	DefaultStep = 1000
)

// Config holds the parameters of a run.
type Config struct {
	// Items is the number of values generated and observed.
	Items int
	// Step is the number of values between two report rows.
	Step int
	// Precision is the estimator precision.
	Precision int
	// MaxValue bounds the generated values to [1, MaxValue). Zero means 2*Items.
	MaxValue int
	// Seed seeds the value generator when Seeded is set; otherwise the
	// current time is used.
	Seed   uint64
	Seeded bool
	// Codecs lists the codecs measured on the final register snapshot.
	Codecs []format.CompressionType
	// Out receives the report. Nil discards it.
	Out io.Writer
}

func defaultConfig() Config {
	return Config{
		Items:     DefaultItems,
		Step:      DefaultStep,
		Precision: hll.DefaultPrecision,
		Codecs:    format.CompressionTypes,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithItems sets the number of generated values.
func WithItems(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: items must be positive, got %d", errs.ErrInvalidOption, n)
		}
		cfg.Items = n

		return nil
	})
}

// WithStep sets how many values pass between two report rows.
func WithStep(step int) Option {
	return options.New(func(cfg *Config) error {
		if step <= 0 {
			return fmt.Errorf("%w: step must be positive, got %d", errs.ErrInvalidOption, step)
		}
		cfg.Step = step

		return nil
	})
}

// WithPrecision sets the estimator precision.
func WithPrecision(p int) Option {
	return options.New(func(cfg *Config) error {
		if p < hll.MinPrecision || p > hll.MaxPrecision {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidPrecision, p)
		}
		cfg.Precision = p

		return nil
	})
}

// WithValueRange draws values from [1, maxValue).
func WithValueRange(maxValue int) Option {
	return options.New(func(cfg *Config) error {
		if maxValue < 2 {
			return fmt.Errorf("%w: value range must be at least 2, got %d", errs.ErrInvalidOption, maxValue)
		}
		cfg.MaxValue = maxValue

		return nil
	})
}

// WithSeed makes the generated sequence reproducible.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Seed = seed
		cfg.Seeded = true
	})
}

// WithCodecs selects the codecs measured on the final register snapshot.
// Passing none disables the footprint report.
func WithCodecs(codecs ...format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		for _, c := range codecs {
			if _, err := compress.GetCodec(c); err != nil {
				return err
			}
		}
		cfg.Codecs = codecs

		return nil
	})
}

// WithOutput sets the report destination.
func WithOutput(w io.Writer) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Out = w
	})
}
