//go:build amd64

package rtsc

import (
	"github.com/templexxx/rtsc/internal/coeff"
	"github.com/templexxx/rtsc/internal/tsc"
)

// tscSupported is true only on architectures where internal/tsc has a
// hot-path reader at all; on every other architecture the fast path is
// simply not constructible, matching §9's architecture-conditional fast
// path strategy.
const tscSupported = true

// newTSCReader builds the hot-path reader over cell. Called exactly once,
// from Init, after a successful calibration has populated cell.
func newTSCReader(cell *coeff.Cell) reader {
	return tsc.NewReader(cell)
}

// readRawTSC samples the raw TSC tick count for the calibrator to
// correlate against the OS wall clock.
func readRawTSC() uint64 {
	return tsc.Read()
}
