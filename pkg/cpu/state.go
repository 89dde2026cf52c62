package cpu

// State is the full register file plus the two objects an instruction
// handler can touch: memory and the port hooks. Memory and State are owned
// exclusively by the CPU during a Step; nothing else may write either
// between steps (spec §5).
type State struct {
	A, B, C, D, E, H, L uint8
	PC, SP              uint16
	F                   Flags

	IE     bool // interrupts enabled
	Halted bool // HLT was executed

	Mem   *Memory
	Ports Ports

	// InstructionCount is the running count of instructions dispatched,
	// for the driver's periodic housekeeping (vblank/end-of-frame RSTs).
	InstructionCount uint64

	// AllowUnimplementedNoOp, when true, makes Step treat an
	// unimplemented/reserved opcode as a 1-byte NOP instead of returning
	// a FaultError. Off by default per spec §7 ("fatal by default").
	AllowUnimplementedNoOp bool
}

// New returns a zero-initialized State bound to mem and ports. IE, A-L, PC,
// SP and Flags all start at zero; the driver may set IE afterward.
func New(mem *Memory, ports Ports) *State {
	if ports == nil {
		ports = NullPorts{}
	}
	return &State{
		Mem:   mem,
		Ports: ports,
	}
}

// BC, DE, HL and the rest are purely derived 16-bit views over the 8-bit
// register pairs; there is no duplicated storage to keep in sync.

func (s *State) BC() uint16 { return uint16(s.B)<<8 | uint16(s.C) }
func (s *State) DE() uint16 { return uint16(s.D)<<8 | uint16(s.E) }
func (s *State) HL() uint16 { return uint16(s.H)<<8 | uint16(s.L) }

func (s *State) SetBC(v uint16) { s.B, s.C = uint8(v>>8), uint8(v) }
func (s *State) SetDE(v uint16) { s.D, s.E = uint8(v>>8), uint8(v) }
func (s *State) SetHL(v uint16) { s.H, s.L = uint8(v>>8), uint8(v) }

// M reads the byte Memory[HL], the pseudo-register every "r = M" opcode
// form addresses.
func (s *State) M() uint8 { return s.Mem.Read8(s.HL()) }

// SetM writes Memory[HL].
func (s *State) SetM(v uint8) { s.Mem.Write8(s.HL(), v) }

// PSW packs A (high byte) with the flag byte (low byte), the 16-bit value
// PUSH PSW / POP PSW move.
func (s *State) PSW() uint16 {
	return uint16(s.A)<<8 | uint16(s.F.Pack())
}

// SetPSW unpacks v into A and Flags, masking the flag byte to the fixed
// reserved-bit pattern.
func (s *State) SetPSW(v uint16) {
	s.A = uint8(v >> 8)
	s.F.Unpack(uint8(v))
}
