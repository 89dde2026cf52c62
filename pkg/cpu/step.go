package cpu

// Step fetches the instruction at PC, dispatches it, advances PC by the
// handler's returned width, and bumps InstructionCount. It returns a
// *FaultError for an unimplemented/reserved opcode unless
// AllowUnimplementedNoOp is set.
//
// Step does nothing while Halted; the caller must either stop driving the
// CPU or raise an interrupt, which resumes it the same way real 8080
// hardware wakes from HLT on an acknowledged interrupt.
func (s *State) Step() error {
	if s.Halted {
		return nil
	}

	opcode := s.Mem.Read8(s.PC)
	if isReserved(opcode) && !s.AllowUnimplementedNoOp {
		return &FaultError{Opcode: opcode, PC: s.PC}
	}

	width := opTable[opcode](s)
	s.PC += uint16(width)
	s.InstructionCount++
	return nil
}

// reservedOpcodes are byte values the 8080 never assigns an instruction
// to (0xCB, 0xD9, 0xDD, 0xED, 0xFD duplicate other opcodes on the Z80 but
// are simply undefined here).
var reservedOpcodes = map[uint8]bool{
	0xCB: true,
	0xD9: true,
	0xDD: true,
	0xED: true,
	0xFD: true,
}

func isReserved(opcode uint8) bool {
	return reservedOpcodes[opcode]
}

// RaiseInterrupt requests that RST vector (0-7) be executed immediately,
// modeled as a synthetic opcode injected between instruction boundaries
// rather than a flag the dispatcher polls mid-instruction. If IE is false
// the request is dropped silently and false is returned. Otherwise IE is
// cleared, the current PC (not PC+1 — the CPU never fetched a byte for
// this "instruction") is pushed, PC jumps to vector*8, and any HLT is
// broken, matching how real 8080 hardware resumes from a halt on an
// acknowledged interrupt.
func (s *State) RaiseInterrupt(vector uint8) bool {
	if !s.IE {
		return false
	}
	s.IE = false
	s.Halted = false
	s.push(s.PC)
	s.PC = uint16(vector) * 8
	return true
}
