//go:build amd64

package coeff

import "unsafe"

// store and load are implemented in coeff_amd64.s. Each moves the whole
// 16-byte (coeff, offset) payload in a single aligned SSE instruction, so
// from any other thread's perspective the pair updates atomically.
func store(slot unsafe.Pointer, coeff, offset float64)
func load(slot unsafe.Pointer) (coeff, offset float64)

// Store publishes a new (coeff, offset) pair. Safe to call concurrently
// with Load from other goroutines; never safe to call concurrently with
// itself (the calibrator is expected to serialize its own writers).
func (c *Cell) Store(coeff, offset float64) {
	store(c.slot(), coeff, offset)
}

// Load reads the most recently published (coeff, offset) pair.
func (c *Cell) Load() (coeff, offset float64) {
	return load(c.slot())
}
