//go:build amd64

package tsc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/templexxx/rtsc/internal/coeff"
)

func TestReader_ProjectsThroughPublishedCoefficients(t *testing.T) {
	const (
		c      = 0.3561249436912842
		offset = 1_645_227_926_076_647_424.0
	)

	var cell coeff.Cell
	cell.Store(c, offset)

	r := NewReader(&cell)

	t0 := rdtsc()
	got := r.Now()
	t1 := rdtsc()

	lo := math.FMA(float64(t0), c, offset)
	hi := math.FMA(float64(t1), c, offset)

	assert.GreaterOrEqual(t, float64(got), lo-1)
	assert.LessOrEqual(t, float64(got), hi+1)
}

func TestReader_TracksLaterStore(t *testing.T) {
	var cell coeff.Cell
	cell.Store(1, 0)

	r := NewReader(&cell)
	first := r.Now()

	cell.Store(2, 1_000_000_000_000)
	second := r.Now()

	assert.Greater(t, second, first)
}

func TestRDTSC_Monotonic(t *testing.T) {
	a := rdtsc()
	b := rdtsc()
	assert.GreaterOrEqual(t, b, a)
}
