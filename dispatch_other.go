//go:build !amd64

package rtsc

import "github.com/templexxx/rtsc/internal/coeff"

// tscSupported is false on every non-amd64 architecture: there is no TSC
// to read, so the only constructible reader is the OS clock fallback.
const tscSupported = false

// newTSCReader is unreachable on this build target — Init never calls it
// because tscSupported is false — but is kept so rtsc.go's dispatch logic
// compiles identically on every architecture.
func newTSCReader(_ *coeff.Cell) reader {
	return nil
}

// readRawTSC is unreachable on this build target for the same reason as
// newTSCReader.
func readRawTSC() uint64 {
	return 0
}
