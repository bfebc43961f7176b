//go:build amd64

package tsc

import (
	"math"

	"github.com/templexxx/rtsc/internal/coeff"
)

// rdtsc is implemented in reader_amd64.s. It returns the raw,
// unserialized TSC value; callers that need ordering guarantees against
// surrounding instructions must arrange that themselves.
func rdtsc() uint64

// Read exposes the raw TSC tick count for the calibrator, which needs to
// correlate bare ticks against the OS wall clock rather than project
// them through a coefficient cell.
func Read() uint64 {
	return rdtsc()
}

// Reader is a hot-path nanosecond-since-epoch reader built on top of a
// shared coeff.Cell. Its zero value is not usable; construct one with
// NewReader.
//
// A Reader has no state of its own beyond the cell pointer, so it is
// safe to share across goroutines and safe to call Now concurrently
// with a calibrator publishing a fresh coefficient pair through the
// same cell.
type Reader struct {
	cell *coeff.Cell
}

// NewReader builds a Reader over the given cell. The cell is expected
// to already hold (or shortly receive) a calibrated (coeff, offset)
// pair; before the first Store, Now returns cell's zero-value payload
// projected through the TSC, which is meaningless as a timestamp.
func NewReader(cell *coeff.Cell) *Reader {
	return &Reader{cell: cell}
}

// Now returns the current time as nanoseconds since the Unix epoch,
// computed as coeff*TSC + offset using a single fused multiply-add so
// the projection loses no precision beyond what float64 already costs
// at this magnitude.
func (r *Reader) Now() int64 {
	t := rdtsc()
	c, offset := r.cell.Load()
	return int64(math.FMA(float64(t), c, offset))
}
