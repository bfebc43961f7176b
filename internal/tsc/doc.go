// Package tsc is the hot-path nanosecond reader: it reads the raw TSC
// register and projects it through a coeff.Cell's published (coeff,
// offset) pair. This package is amd64-only; the root package decides
// whether to use it or fall back to the OS clock based on build target
// and runtime capability.
package tsc
