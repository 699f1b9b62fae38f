package z80

import "fmt"

// Memory is a flat, byte-addressable address space. All 16-bit
// addresses are valid; locations that have never been written read
// back as zero.
type Memory struct {
	bytes []byte
}

// NewMemory allocates size bytes of zeroed memory. size must be
// positive; the canonical Z80 address space is 65536 bytes.
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		return nil, fmt.Errorf("z80: memory size must be positive, got %d", size)
	}
	return &Memory{bytes: make([]byte, size)}, nil
}

// Read8 returns the byte at addr, wrapping modulo the memory size.
func (m *Memory) Read8(addr uint16) byte {
	return m.bytes[int(addr)%len(m.bytes)]
}

// Write8 stores value at addr, wrapping modulo the memory size.
func (m *Memory) Write8(addr uint16, value byte) {
	m.bytes[int(addr)%len(m.bytes)] = value
}

// Read16 reads a little-endian 16-bit word at addr.
func (m *Memory) Read16(addr uint16) uint16 {
	low := m.Read8(addr)
	high := m.Read8(addr + 1)
	return uint16(high)<<8 | uint16(low)
}

// Write16 stores a little-endian 16-bit word at addr.
func (m *Memory) Write16(addr uint16, value uint16) {
	m.Write8(addr, byte(value))
	m.Write8(addr+1, byte(value>>8))
}

// Peek is the external, read-only-named alias for Read8 (§6 of the
// external interface: peek/poke).
func (m *Memory) Peek(addr uint16) byte { return m.Read8(addr) }

// Poke is the external alias for Write8.
func (m *Memory) Poke(addr uint16, value byte) { m.Write8(addr, value) }

// Load copies data into memory starting at addr, wrapping per byte
// exactly as Write8 does. Used by embedders to seed a program image.
func (m *Memory) Load(addr uint16, data []byte) {
	for i, b := range data {
		m.Write8(addr+uint16(i), b)
	}
}

// Size returns the memory's capacity in bytes.
func (m *Memory) Size() int { return len(m.bytes) }
