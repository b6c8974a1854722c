package core

// RegisterReader performs raw 32-bit reads of memory-mapped registers.
// Platform-specific implementations handle actual hardware access.
type RegisterReader interface {
	// Read32 returns the word at an absolute address
	Read32(addr RegisterAddress) uint32
}

// Global singleton used by core code.
var registerReader RegisterReader

// SetRegisterReader is called by target-specific code to register its reader.
func SetRegisterReader(r RegisterReader) {
	registerReader = r
}

// MustRegisterReader returns the configured reader or panics if missing.
func MustRegisterReader() RegisterReader {
	if registerReader == nil {
		panic("register reader not configured")
	}
	return registerReader
}

// MemoryReader serves reads from a sparse word map.
// Unset addresses read as zero.
type MemoryReader struct {
	words map[RegisterAddress]uint32
}

// NewMemoryReader creates an empty MemoryReader
func NewMemoryReader() *MemoryReader {
	return &MemoryReader{
		words: make(map[RegisterAddress]uint32),
	}
}

// Set stores a word at an address
func (m *MemoryReader) Set(addr RegisterAddress, value uint32) {
	m.words[addr] = value
}

// Read32 returns the word stored at addr
func (m *MemoryReader) Read32(addr RegisterAddress) uint32 {
	return m.words[addr]
}

// LoadSnapshot stores every register of a snapshot at its address in regs
func (m *MemoryReader) LoadSnapshot(regs RegisterMap, s *Snapshot) error {
	for kind := RegStatus; kind < numRegisterKinds; kind++ {
		addr, err := regs.AddressOf(kind, s.Pin)
		if err != nil {
			return err
		}
		m.Set(addr, s.Register(kind))
	}
	return nil
}
