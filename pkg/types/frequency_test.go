package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequency_Humanized_Boundaries(t *testing.T) {
	cases := []struct {
		in   Frequency
		want string
	}{
		{Frequency(0), "0.00 Hz"},
		{Frequency(999), "999.00 Hz"},
		{Frequency(1000), "1.0000 kHz"},
		{Frequency(1_000_000), "1.0000 MHz"},
		{Frequency(3_000_000_000), "3.0000 GHz"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Humanized())
	}
}

func TestFrequency_Humanized_RealisticTSC(t *testing.T) {
	// A ~0.333ns/tick coefficient implies a ~3 GHz invariant TSC.
	coeff := 0.3332999801635742
	freq := Frequency(1e9 / coeff)
	assert.Equal(t, "3.0003 GHz", freq.Humanized())
}

func TestFrequency_UnitAccessors(t *testing.T) {
	f := Frequency(2_500_000_000)
	assert.InDelta(t, 2.5, f.GHz(), 1e-9)
	assert.InDelta(t, 2500.0, f.MHz(), 1e-6)
}
