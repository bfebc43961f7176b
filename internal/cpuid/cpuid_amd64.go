//go:build amd64

package cpuid

import "sync"

// CPUID leaf numbers used to establish invariant-TSC support.
const (
	leafBasic    = 0x00000000
	leafExtended = 0x80000000
	leafAPM      = 0x80000007

	apmInvariantTSCBit = 8
)

// cpuid is implemented in cpuid_amd64.s. It issues the CPUID instruction
// for the given leaf/subleaf and returns the four result registers.
func cpuid(leafArg, subleafArg uint32) (eax, ebx, ecx, edx uint32)

var (
	invariantOnce sync.Once
	invariantTSC  bool
)

// HasInvariantTSC reports whether CPUID.80000007H:EDX[8] is set, i.e.
// whether the Time Stamp Counter increments at a constant rate regardless
// of power state.
func HasInvariantTSC() bool {
	invariantOnce.Do(func() {
		invariantTSC = detectInvariantTSC()
	})
	return invariantTSC
}

func detectInvariantTSC() bool {
	maxBasic, _, _, _ := cpuid(leafBasic, 0)
	if maxBasic < 1 {
		// Earlier than the first CPUID-capable generation; too old to
		// carry an invariant TSC.
		return false
	}

	maxExtended, _, _, _ := cpuid(leafExtended, 0)
	if maxExtended < leafAPM {
		// No "Advanced Power Management Information" leaf.
		return false
	}

	_, _, _, edx := cpuid(leafAPM, 0)
	return edx&(1<<apmInvariantTSCBit) != 0
}
