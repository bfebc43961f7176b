// Package calibrate orchestrates the multi-epoch sampling and regression
// that together establish the affine (coeff, offset) mapping between the
// TSC and the OS wall clock.
package calibrate

import (
	"time"

	"github.com/templexxx/rtsc/internal/regress"
	"github.com/templexxx/rtsc/internal/sampler"
)

// Config carries the calibration knobs; see the package-level defaults in
// DefaultConfig.
type Config struct {
	// Samples is the number of dual-sample epochs run per calibration.
	Samples int
	// SampleDuration is the gap between the two closest-pair samples
	// within one epoch.
	SampleDuration time.Duration
	// ClosestPairRetries is the inner-loop length of each closest-pair
	// sample (see internal/sampler).
	ClosestPairRetries int
}

// DefaultConfig returns the reference calibration knobs: 128 epochs,
// 16ms apart, each sample built from 256 closest-pair retries. Total
// wall-time cost is Samples*SampleDuration, roughly 2 seconds.
func DefaultConfig() Config {
	return Config{
		Samples:            128,
		SampleDuration:     16 * time.Millisecond,
		ClosestPairRetries: 256,
	}
}

// Result is what one Run produced: the fitted coefficients plus enough
// bookkeeping for a caller to log or report on the calibration.
type Result struct {
	Coeff       float64
	Offset      float64
	SampleCount int
	Elapsed     time.Duration
}

// Run performs one calibration: for each of cfg.Samples epochs, it takes a
// closest-pair sample, sleeps cfg.SampleDuration, takes a second
// closest-pair sample, and pushes both observations into the regression
// buffer; it then fits coeff/offset by ordinary least squares over all
// 2*cfg.Samples points treated as independent and identically distributed —
// the per-epoch pairing is not itself fed into the regression as a
// weighting signal.
//
// readTSC, readWall and sleep are injected so tests can run this against a
// synthetic, noise-free clock instead of the real TSC/OS clock.
func Run(cfg Config, readTSC func() uint64, readWall func() int64, sleep func(time.Duration)) Result {
	start := time.Now()

	samples := make([]regress.Sample, 0, 2*cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		first := sampler.ClosestPair(cfg.ClosestPairRetries, readTSC, readWall)
		sleep(cfg.SampleDuration)
		second := sampler.ClosestPair(cfg.ClosestPairRetries, readTSC, readWall)

		samples = append(samples,
			regress.Sample{TSC: first.TSC, WallNS: first.WallNS},
			regress.Sample{TSC: second.TSC, WallNS: second.WallNS},
		)
	}

	coeff, offset := regress.OLS(samples)

	return Result{
		Coeff:       coeff,
		Offset:      offset,
		SampleCount: len(samples),
		Elapsed:     time.Since(start),
	}
}
