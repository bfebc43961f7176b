package rtsc

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClock_CoefficientRoundTrip covers property P3: whatever is stored
// comes back unchanged for any finite pair.
func TestClock_CoefficientRoundTrip(t *testing.T) {
	pairs := [][2]float64{
		{0.3561249436912842, 1_645_227_926_076_647_424.0},
		{0, 0},
		{-1.5, -1},
		{math.SmallestNonzeroFloat64, math.MaxFloat64},
	}

	c := NewClock()
	for _, p := range pairs {
		offset, coeff := p[0], p[1]
		c.StoreOffsetCoeff(offset, coeff)
		gotOffset, gotCoeff := c.LoadOffsetCoeff()
		assert.Equal(t, offset, gotOffset)
		assert.Equal(t, coeff, gotCoeff)
	}
}

// TestClock_UninitializedRoutesToOSClock covers the pre-Init state: an
// uninitialized Clock must report disabled and its Now must agree with
// the OS clock, since they are the same function until Init succeeds.
func TestClock_UninitializedRoutesToOSClock(t *testing.T) {
	c := NewClock()
	assert.False(t, c.IsEnabled())

	before := c.NowFromOS()
	got := c.Now()
	after := c.NowFromOS()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

// TestClock_CalibrateNoOpWhenDisabled ensures Calibrate refuses to run
// (and returns a zero Report) on a Clock that was never successfully
// Init'd, matching §4.F step 1's early-out.
func TestClock_CalibrateNoOpWhenDisabled(t *testing.T) {
	c := NewClock()
	report := c.Calibrate(DefaultConfig())
	assert.Equal(t, Report{}, report)
}

// TestClock_ResetReturnsToPreInitState exercises the reset() supplement
// from the original draft: after a manual StoreOffsetCoeff plus a forced
// enabled flag, Reset must put the clock back to an uninitialized state.
func TestClock_ResetReturnsToPreInitState(t *testing.T) {
	c := NewClock()
	c.StoreOffsetCoeff(123, 0.5)
	c.enabled.Store(true)
	c.reader = nil // a real Init would have set this; irrelevant to Reset's contract

	c.Reset()

	require.False(t, c.IsEnabled())
	offset, coeff := c.LoadOffsetCoeff()
	assert.Equal(t, 0.0, offset)
	assert.Equal(t, 0.0, coeff)
}

// TestDefaultConfig_MatchesDocumentedDefaults pins the four documented
// knobs so a future edit can't silently drift them.
func TestDefaultConfig_MatchesDocumentedDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 128, cfg.Samples)
	assert.Equal(t, 16*time.Millisecond, cfg.SampleDuration)
	assert.Equal(t, 256, cfg.ClosestPairRetries)
	assert.Equal(t, 5*time.Minute, cfg.RecalibrateInterval)
}

// TestPackageLevel_IsEnabledMatchesDefaultClock exercises the
// package-level convenience wrapper against the process-wide clock
// without forcing a real Init (which would run a ~2s calibration).
func TestPackageLevel_IsEnabledMatchesDefaultClock(t *testing.T) {
	assert.Equal(t, defaultClock.IsEnabled(), IsEnabled())
}
