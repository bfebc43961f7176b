// Package rtsc provides a drop-in replacement for "nanoseconds since the
// Unix epoch" that, on a supported amd64/Linux host, reads the CPU's
// invariant Time Stamp Counter directly instead of going through the OS
// clock syscall. A one-time calibration establishes the affine mapping
// between TSC ticks and wall-clock nanoseconds; after that, Now costs one
// RDTSC and one fused multiply-add instead of a kernel round trip.
//
// On hosts lacking the required capabilities (no invariant TSC, no
// AVX/FMA, non-amd64 architecture), the package transparently falls back
// to the OS clock and Now behaves exactly like NowFromOS.
package rtsc
