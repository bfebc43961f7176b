//go:build !linux

package clocksource

// Current always reports unavailable on non-Linux hosts: there is no
// equivalent sysfs clocksource file to read.
func Current() (string, error) {
	return "", errNotAvailable
}

// IsTSC always reports false on non-Linux hosts.
func IsTSC() bool {
	return false
}
