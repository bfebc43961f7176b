package calibrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_FitsSyntheticLinearClock drives Run against a fake clock where
// wall_ns = trueCoeff*tsc + trueOffset, advancing both in lockstep with a
// fake sleep, and checks the fitted coefficients converge tightly. At
// 1.7e18 a float64 is spaced 256ns apart, so every wall reading carries up
// to ±128ns of rounding; extrapolating the fit back ~1e13 ticks to tsc=0
// turns the 1e-6 coeff tolerance into a ~1e7ns offset tolerance.
func TestRun_FitsSyntheticLinearClock(t *testing.T) {
	const (
		trueCoeff  = 0.35
		trueOffset = 1_700_000_000_000_000_000.0
		hz         = 1 / trueCoeff * 1e9 // ticks/sec implied by trueCoeff
	)

	var tsc uint64 = 10_000_000_000_000

	readTSC := func() uint64 {
		tsc++
		return tsc
	}
	readWall := func() int64 {
		return int64(trueCoeff*float64(tsc) + trueOffset)
	}
	sleep := func(d time.Duration) {
		// Advance the fake TSC by however many ticks that duration
		// represents, so wall_ns stays consistent with tsc.
		ticks := uint64(d.Seconds() * hz)
		tsc += ticks
	}

	cfg := Config{Samples: 32, SampleDuration: time.Millisecond, ClosestPairRetries: 4}
	res := Run(cfg, readTSC, readWall, sleep)

	require.Equal(t, 64, res.SampleCount)
	assert.InDelta(t, trueCoeff, res.Coeff, 1e-6)
	assert.InDelta(t, trueOffset, res.Offset, 1e7)
}

func TestRun_SleepsBetweenEveryEpochPair(t *testing.T) {
	var tsc uint64
	var sleeps int

	readTSC := func() uint64 {
		tsc++
		return tsc
	}
	readWall := func() int64 {
		return int64(tsc)
	}
	sleep := func(time.Duration) {
		sleeps++
	}

	cfg := Config{Samples: 10, SampleDuration: time.Millisecond, ClosestPairRetries: 2}
	_ = Run(cfg, readTSC, readWall, sleep)

	assert.Equal(t, 10, sleeps)
}
