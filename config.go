package rtsc

import "time"

// Config carries the calibration knobs, mirroring the reference
// codebase's model-coefficient Config pattern so both the diagnostic CLI
// and tests can override them without touching package-level state.
//
// Units:
//   - Samples: count (dual-sample epochs per calibration)
//   - SampleDuration: gap between the two samples of one epoch
//   - ClosestPairRetries: count (inner loop length of the sampler)
//   - RecalibrateInterval: recommended external recalibration cadence;
//     not enforced by this package, only carried for callers that want it
type Config struct {
	Samples             int
	SampleDuration      time.Duration
	ClosestPairRetries  int
	RecalibrateInterval time.Duration
}

// DefaultConfig returns the reference calibration knobs: 128 epochs,
// 16ms apart, 256 closest-pair retries per sample, and a recommended
// 5-minute external recalibration cadence — comfortably inside the
// ~11-minute kernel NTP adjustment period.
func DefaultConfig() Config {
	return Config{
		Samples:             128,
		SampleDuration:      16 * time.Millisecond,
		ClosestPairRetries:  256,
		RecalibrateInterval: 5 * time.Minute,
	}
}
