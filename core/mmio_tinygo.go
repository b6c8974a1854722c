//go:build tinygo

package core

import (
	"runtime/volatile"
	"unsafe"
)

// MMIOReader reads registers directly from the address space
type MMIOReader struct{}

// NewMMIOReader returns a reader for the live peripheral bus
func NewMMIOReader() *MMIOReader {
	return &MMIOReader{}
}

// Read32 performs a volatile 32-bit load from addr
func (MMIOReader) Read32(addr RegisterAddress) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Get()
}
