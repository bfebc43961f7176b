//go:build !amd64

package coeff

// Store publishes a new (coeff, offset) pair. On non-amd64 builds the TSC
// reader is never constructed (see internal/tsc), so this path carries no
// atomicity requirement beyond what the Go memory model already gives
// plain word-sized stores; it still rounds through the same aligned slot
// so Load/Store behave identically in tests run on any architecture.
func (c *Cell) Store(coeff, offset float64) {
	p := (*[2]float64)(c.slot())
	p[0] = coeff
	p[1] = offset
}

// Load reads the most recently published (coeff, offset) pair.
func (c *Cell) Load() (coeff, offset float64) {
	p := (*[2]float64)(c.slot())
	return p[0], p[1]
}
