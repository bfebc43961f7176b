//go:build !amd64

package cpuid

// HasInvariantTSC always reports false on non-amd64 architectures: there is
// no Time Stamp Counter to be invariant about, and the caller is expected to
// fall back to the OS clock unconditionally.
func HasInvariantTSC() bool {
	return false
}
