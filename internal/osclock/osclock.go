// Package osclock wraps the OS wall-clock primitive as a plain
// nanoseconds-since-epoch function, the oracle the calibrator regresses
// the TSC against and the fallback the dispatcher falls back to.
package osclock

import "time"

const nanosPerSec = 1_000_000_000

// Now returns the OS wall-clock time in nanoseconds since
// 1970-01-01T00:00:00Z, computed as seconds_since_epoch*1e9 +
// subsecond_nanos. It is treated as a noisy but accurate oracle: monotonic
// only to whatever extent the OS guarantees it within one process.
func Now() int64 {
	t := time.Now()
	return t.Unix()*nanosPerSec + int64(t.Nanosecond())
}
