// Package coeff holds the single process-wide affine-coefficient cell that
// the calibrator publishes to and the hot-path reader consumes from:
// wall_ns ≈ tsc*coeff + offset.
//
// The cell is padded and pointer-aligned to a 128-byte boundary so it never
// shares a cache line with an unrelated hot variable, and the publish/fetch
// pair is a single aligned 16-byte SSE load/store, which x86_64 guarantees
// is observed atomically — either a reader sees a whole (coeff, offset)
// pair from one calibration, or it sees the whole pair from the previous
// one, never a torn mix of both.
package coeff
