//go:build linux

package clocksource

import "os"

// path is the kernel-exposed clocksource selection file for CPU 0. All
// CPUs share one clocksource in practice, so cpu0's file is authoritative.
const path = "/sys/devices/system/clocksource/clocksource0/current_clocksource"

// Current returns the kernel's selected clocksource name (e.g. "tsc",
// "hpet", "acpi_pm") with its trailing record separator removed.
//
// The removal is a blind drop of the file's last byte, not a conditional
// newline trim — the kernel always terminates this file with "\n", and a
// caller that hands us content missing that terminator (e.g. a hand-built
// test fixture with no trailing newline) gets a string that is one byte
// short of whatever it intended, and therefore never compares equal to a
// known clocksource name. This mirrors the upstream file format contract
// rather than trying to be lenient about it.
//
// A read failure of any kind (missing file, permission denied, empty
// content) is reported as errNotAvailable rather than surfaced in detail:
// the caller only ever cares whether the answer is "tsc".
func Current() (string, error) {
	return readClocksource(path)
}

// readClocksource is Current's logic with the path pulled out as a
// parameter so tests can point it at a fixture file instead of the real
// sysfs path.
func readClocksource(p string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil || len(b) == 0 {
		return "", errNotAvailable
	}
	return string(b[:len(b)-1]), nil
}

// IsTSC reports whether the kernel has selected "tsc" as the active
// clocksource. Any read failure is treated as "not tsc" — the capability
// gate has no concept of an undecidable answer, only "degrade to the OS
// clock".
func IsTSC() bool {
	src, err := Current()
	if err != nil {
		return false
	}
	return src == "tsc"
}
