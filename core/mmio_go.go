//go:build !tinygo

package core

// MMIOReader is unavailable on regular Go (for testing)
type MMIOReader struct{}

// NewMMIOReader panics on regular Go; use MemoryReader instead
func NewMMIOReader() *MMIOReader {
	panic("MMIO register access requires a TinyGo target")
}

// Read32 is never reached on regular Go
func (MMIOReader) Read32(addr RegisterAddress) uint32 {
	panic("MMIO register access requires a TinyGo target")
}
