package cpuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasInvariantTSC_Cached(t *testing.T) {
	// Calling twice must return the same answer: the probe is cached for
	// process lifetime and must not flip between calls.
	first := HasInvariantTSC()
	second := HasInvariantTSC()
	assert.Equal(t, first, second)
}

func TestHasSIMD_Cached(t *testing.T) {
	first := HasSIMD()
	second := HasSIMD()
	assert.Equal(t, first, second)
}
