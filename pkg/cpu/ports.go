package cpu

// Ports is the capability object the core consults for IN/OUT. Both methods
// are total: port hooks never fail, by contract (spec §7).
type Ports interface {
	ReadPort(port uint8) uint8
	WritePort(port uint8, data uint8)
}

// NullPorts answers every IN with 0 and discards every OUT. Useful for
// disassembly-only tooling and tests that never execute IN/OUT.
type NullPorts struct{}

func (NullPorts) ReadPort(uint8) uint8        { return 0 }
func (NullPorts) WritePort(uint8, uint8) {}
