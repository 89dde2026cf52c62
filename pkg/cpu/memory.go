package cpu

// Memory is the 8080's flat 64 KiB address space. There is no protection:
// a write to a ROM region is permitted but meaningless to the hardware it
// emulates, and every address is taken modulo 2^16.
type Memory [65536]byte

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) uint8 {
	return m[addr]
}

// Write8 stores val at addr.
func (m *Memory) Write8(addr uint16, val uint8) {
	m[addr] = val
}

// Read16 returns the little-endian 16-bit word at addr (low byte first).
func (m *Memory) Read16(addr uint16) uint16 {
	lo := uint16(m[addr])
	hi := uint16(m[addr+1])
	return hi<<8 | lo
}

// Write16 stores val at addr as a little-endian 16-bit word.
func (m *Memory) Write16(addr uint16, val uint16) {
	m[addr] = uint8(val)
	m[addr+1] = uint8(val >> 8)
}

// Load copies data into memory starting at offset. Bytes that would land
// past the end of the address space are silently dropped.
func (m *Memory) Load(offset uint16, data []byte) {
	n := copy(m[offset:], data)
	_ = n
}
