package rtsc

import (
	"sync/atomic"
	"time"

	"github.com/templexxx/rtsc/internal/calibrate"
	"github.com/templexxx/rtsc/internal/clocksource"
	"github.com/templexxx/rtsc/internal/coeff"
	"github.com/templexxx/rtsc/internal/cpuid"
	"github.com/templexxx/rtsc/internal/osclock"
)

// reader is the hot-path nanosecond source once the TSC fast path is
// enabled. Its only implementation is internal/tsc.Reader, on amd64
// builds; on every other architecture it is never constructed.
type reader interface {
	Now() int64
}

// Clock is one independently configured clock: its own coefficient cell,
// its own enabled flag, its own hot-path reader. The package-level
// functions (Now, Init, Calibrate, ...) operate on a process-wide default
// Clock; tests that need several independently calibrated clocks in one
// process construct their own with NewClock.
//
// Init is not safe to call concurrently with itself or with Reset; it
// must complete before any goroutine starts calling Now. Once Init has
// returned, Now is safe to call from any number of goroutines
// concurrently with each other and with Calibrate.
type Clock struct {
	cell    *coeff.Cell
	enabled atomic.Bool
	reader  reader
}

// NewClock constructs an uninitialized Clock: IsEnabled is false and Now
// behaves exactly like NowFromOS until Init succeeds.
func NewClock() *Clock {
	return &Clock{cell: new(coeff.Cell)}
}

// defaultClock is the process-wide clock the package-level functions
// operate on.
var defaultClock = NewClock()

// Init runs platform detection and, if the host qualifies, a full
// calibration, then switches Now onto the TSC fast path. If the clock is
// already enabled, Init returns immediately. If the host doesn't
// qualify, Init returns with IsEnabled still false and Now continues to
// route to the OS clock — this is not reported as an error.
func (c *Clock) Init(cfg Config) {
	if c.enabled.Load() {
		return
	}
	if !tscSupported || !enableTSC() {
		return
	}
	c.calibrate(cfg)
	c.reader = newTSCReader(c.cell)
	c.enabled.Store(true)
}

// Calibrate re-runs calibration and republishes the result into the
// coefficient cell. It is a no-op returning a zero Report if the clock
// was never successfully Init'd — calibration without an active fast
// path has nothing to install. Safe to call repeatedly, concurrently
// with readers.
func (c *Clock) Calibrate(cfg Config) Report {
	if !c.enabled.Load() {
		return Report{}
	}
	return c.calibrate(cfg)
}

func (c *Clock) calibrate(cfg Config) Report {
	res := calibrate.Run(
		calibrate.Config{
			Samples:            cfg.Samples,
			SampleDuration:     cfg.SampleDuration,
			ClosestPairRetries: cfg.ClosestPairRetries,
		},
		readRawTSC,
		osclock.Now,
		time.Sleep,
	)
	c.cell.Store(res.Coeff, res.Offset)

	return Report{
		Offset:      res.Offset,
		Coeff:       res.Coeff,
		FrequencyHz: 1e9 / res.Coeff,
		SampleCount: res.SampleCount,
		Elapsed:     res.Elapsed,
	}
}

// Now returns nanoseconds since the Unix epoch, via the TSC fast path if
// enabled, otherwise via the OS clock.
func (c *Clock) Now() int64 {
	if c.enabled.Load() {
		return c.reader.Now()
	}
	return osclock.Now()
}

// NowFromOS always returns the OS clock's answer, bypassing the fast
// path entirely — used by calibration itself and by anything that wants
// to compare the two.
func (c *Clock) NowFromOS() int64 {
	return osclock.Now()
}

// IsEnabled reports whether the TSC fast path is active.
func (c *Clock) IsEnabled() bool {
	return c.enabled.Load()
}

// StoreOffsetCoeff publishes an explicit (offset, coeff) pair, bypassing
// calibration entirely. Intended for test harnesses and for injecting
// externally computed coefficients.
func (c *Clock) StoreOffsetCoeff(offset, coeff float64) {
	c.cell.Store(coeff, offset)
}

// LoadOffsetCoeff reads back the most recently published (offset, coeff)
// pair.
func (c *Clock) LoadOffsetCoeff() (offset, coeff float64) {
	coeff, offset = c.cell.Load()
	return offset, coeff
}

// Reset clears IsEnabled and zeroes the coefficient cell, returning the
// clock to its pre-Init state. Not part of the distilled clock engine —
// added so tests can exercise Init repeatedly within one process without
// constructing a fresh Clock each time.
func (c *Clock) Reset() {
	c.enabled.Store(false)
	c.reader = nil
	c.cell.Store(0, 0)
}

// enableTSC is the capability gate: the fast path is only worth enabling
// if the CPU has the instruction set extensions the reader needs, and
// either the invariant-TSC bit or the kernel's own clocksource selection
// vouches for TSC stability.
func enableTSC() bool {
	return cpuid.HasSIMD() && (cpuid.HasInvariantTSC() || clocksource.IsTSC())
}

// Now returns nanoseconds since the Unix epoch from the process-wide
// default Clock.
func Now() int64 { return defaultClock.Now() }

// NowFromOS always returns the OS clock's answer.
func NowFromOS() int64 { return defaultClock.NowFromOS() }

// Init runs the process-wide default Clock's one-shot initializer with
// DefaultConfig. Not safe to call concurrently with itself; must
// complete before any goroutine starts calling Now.
func Init() { defaultClock.Init(DefaultConfig()) }

// Calibrate re-runs calibration on the process-wide default Clock with
// DefaultConfig and returns the resulting Report.
func Calibrate() Report { return defaultClock.Calibrate(DefaultConfig()) }

// IsEnabled reports whether the process-wide default Clock's TSC fast
// path is active.
func IsEnabled() bool { return defaultClock.IsEnabled() }

// StoreOffsetCoeff publishes an explicit (offset, coeff) pair into the
// process-wide default Clock.
func StoreOffsetCoeff(offset, coeff float64) { defaultClock.StoreOffsetCoeff(offset, coeff) }

// LoadOffsetCoeff reads back the process-wide default Clock's most
// recently published (offset, coeff) pair.
func LoadOffsetCoeff() (offset, coeff float64) { return defaultClock.LoadOffsetCoeff() }

// Reset returns the process-wide default Clock to its pre-Init state.
func Reset() { defaultClock.Reset() }
