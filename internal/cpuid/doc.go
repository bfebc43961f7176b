// Package cpuid answers the two questions the rest of rtsc needs about the
// host CPU: whether the Time Stamp Counter is invariant (ticks at a fixed
// rate regardless of P-state/C-state/turbo) and whether the instruction set
// extensions the hot-path reader depends on (AVX, FMA) are present.
//
// Both answers are cached after the first call: CPUID leaves and SIMD
// feature bits cannot change for the lifetime of a process, so re-probing
// on every Init/Calibrate would just be wasted instructions.
package cpuid
