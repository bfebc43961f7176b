package coeff

import "unsafe"

const (
	// cellAlign is the cache-line-isolation boundary: the payload's
	// backing address is rounded up to this boundary so it never shares
	// a line with an unrelated hot field.
	cellAlign = 128
	// payloadSize is the 16-byte (coeff, offset) pair the store/load
	// primitives move atomically.
	payloadSize = 16
	// CellSize is the total backing footprint of one Cell, exported so
	// diagnostics can report the memory cost of the cache-line isolation
	// strategy without reaching into unexported fields.
	CellSize = cellAlign + cellAlign
)

// Cell holds one (coeff, offset) pair in a 128-byte-aligned, 128-byte
// region carved out of its 256-byte backing array. The zero value is a valid, unallocated cell whose
// payload reads as (0, 0) until the first Store.
//
// Cell must not be copied after its address has been taken: alignment is
// computed relative to the backing array's address, and a copy has a
// different address.
type Cell struct {
	raw [cellAlign + cellAlign]byte
}

// slot returns the 128-byte-aligned pointer into raw where the payload
// lives. Go does not expose a way to request an over-aligned allocation
// directly, so the cell reserves two alignment periods' worth of bytes and
// the slot is computed by rounding the backing array's address up.
func (c *Cell) slot() unsafe.Pointer {
	addr := uintptr(unsafe.Pointer(&c.raw[0]))
	aligned := (addr + cellAlign - 1) &^ (cellAlign - 1)
	return unsafe.Pointer(aligned)
}
