package clocksource

import "errors"

var (
	// errNotAvailable means the clocksource file could not be read at all
	// (missing file, permission denied, not running on Linux). Callers
	// treat this identically to "clocksource is something other than tsc".
	errNotAvailable = errors.New("clocksource: not available")
)
