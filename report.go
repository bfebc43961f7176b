package rtsc

import "time"

// Report summarizes one Calibrate run: what coefficients got installed,
// how long the run took, and how many samples fed the regression. A
// diagnostic CLI and a periodic-recalibration caller both use this to
// observe what a calibration actually produced without reaching into
// package internals.
type Report struct {
	Offset      float64
	Coeff       float64
	FrequencyHz float64
	SampleCount int
	Elapsed     time.Duration
}
