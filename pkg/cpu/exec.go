package cpu

import "fmt"

// FaultError is returned by Step when it fetches an unimplemented or
// reserved opcode and AllowUnimplementedNoOp is false.
type FaultError struct {
	Opcode uint8
	PC     uint16
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// opHandler executes one instruction and returns the number of bytes PC
// should advance by. A handler that reassigns PC directly (jumps, calls,
// returns, RST and PCHL) returns 0, as does HLT, which leaves PC on itself.
type opHandler func(*State) int

// opTable is the 256-entry dispatch table, built once at init time. Most
// of the 8080's opcode space is laid out as regular families — MOV/MVI,
// INR/DCR, the 8-bit ALU ops, and the register-pair ops — so the table is
// populated by iterating over the 3-bit and 2-bit register/pair selectors
// the opcode encoding exposes, rather than by 240 individual case labels.
var opTable [256]opHandler

func init() {
	for i := range opTable {
		opTable[i] = unimplemented
	}

	// --- explicit single-opcode entries ---
	for _, nop := range []uint8{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		opTable[nop] = opNOP
	}
	opTable[0x07] = opRLC
	opTable[0x0F] = opRRC
	opTable[0x17] = opRAL
	opTable[0x1F] = opRAR
	opTable[0x22] = opSHLD
	opTable[0x27] = opDAA
	opTable[0x2A] = opLHLD
	opTable[0x2F] = opCMA
	opTable[0x32] = opSTA
	opTable[0x37] = opSTC
	opTable[0x3A] = opLDA
	opTable[0x3F] = opCMC
	opTable[0x76] = opHLT
	opTable[0xC3] = opJMP
	opTable[0xC9] = opRET
	opTable[0xCD] = opCALL
	opTable[0xD3] = opOUT
	opTable[0xDB] = opIN
	opTable[0xE3] = opXTHL
	opTable[0xE9] = opPCHL
	opTable[0xEB] = opXCHG
	opTable[0xF3] = opDI
	opTable[0xF9] = opSPHL
	opTable[0xFB] = opEI

	// --- register-pair families: rp in {BC, DE, HL, SP}, opcode = base + rp*16 ---
	for rp := uint8(0); rp < 4; rp++ {
		rp := rp
		opTable[0x01+rp*16] = func(s *State) int { s.setRegPair(rp, s.imm16()); return 3 }
		opTable[0x03+rp*16] = func(s *State) int { s.setRegPair(rp, s.regPair(rp)+1); return 1 }
		opTable[0x09+rp*16] = func(s *State) int {
			result, cy := Dad(s.HL(), s.regPair(rp))
			s.SetHL(result)
			s.F.SetCY(cy)
			return 1
		}
		opTable[0x0B+rp*16] = func(s *State) int { s.setRegPair(rp, s.regPair(rp)-1); return 1 }
	}
	// STAX/LDAX only exist for BC and DE.
	opTable[0x02] = func(s *State) int { s.Mem.Write8(s.BC(), s.A); return 1 }
	opTable[0x12] = func(s *State) int { s.Mem.Write8(s.DE(), s.A); return 1 }
	opTable[0x0A] = func(s *State) int { s.A = s.Mem.Read8(s.BC()); return 1 }
	opTable[0x1A] = func(s *State) int { s.A = s.Mem.Read8(s.DE()); return 1 }

	// --- INR/DCR/MVI: r in 0..7, opcode = base + r*8 ---
	for r := uint8(0); r < 8; r++ {
		r := r
		opTable[0x04+r*8] = func(s *State) int {
			cy := s.F.CY()
			result, f := Inr(s.reg(r))
			f.SetCY(cy)
			s.F = f
			s.setReg(r, result)
			return 1
		}
		opTable[0x05+r*8] = func(s *State) int {
			cy := s.F.CY()
			result, f := Dcr(s.reg(r))
			f.SetCY(cy)
			s.F = f
			s.setReg(r, result)
			return 1
		}
		opTable[0x06+r*8] = func(s *State) int { s.setReg(r, s.imm8()); return 2 }
	}

	// --- MOV r1,r2: opcode 0x40-0x7F, dst = bits 3-5, src = bits 0-2 ---
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 { // HLT occupies the MOV M,M slot
			continue
		}
		op := uint8(op)
		dst := (op >> 3) & 7
		src := op & 7
		opTable[op] = func(s *State) int { s.setReg(dst, s.reg(src)); return 1 }
	}

	// --- 8-bit ALU with a register source: ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP ---
	for r := uint8(0); r < 8; r++ {
		r := r
		opTable[0x80+r] = func(s *State) int { result, f := Add(s.A, s.reg(r), 0); s.A, s.F = result, f; return 1 }
		opTable[0x88+r] = func(s *State) int {
			cy := uint8(0)
			if s.F.CY() {
				cy = 1
			}
			result, f := Add(s.A, s.reg(r), cy)
			s.A, s.F = result, f
			return 1
		}
		opTable[0x90+r] = func(s *State) int { result, f := Sub(s.A, s.reg(r), 0); s.A, s.F = result, f; return 1 }
		opTable[0x98+r] = func(s *State) int {
			cy := uint8(0)
			if s.F.CY() {
				cy = 1
			}
			result, f := Sub(s.A, s.reg(r), cy)
			s.A, s.F = result, f
			return 1
		}
		opTable[0xA0+r] = func(s *State) int { result, f := And(s.A, s.reg(r)); s.A, s.F = result, f; return 1 }
		opTable[0xA8+r] = func(s *State) int { result, f := Xor(s.A, s.reg(r)); s.A, s.F = result, f; return 1 }
		opTable[0xB0+r] = func(s *State) int { result, f := Or(s.A, s.reg(r)); s.A, s.F = result, f; return 1 }
		opTable[0xB8+r] = func(s *State) int { s.F = Cmp(s.A, s.reg(r)); return 1 }
	}

	// --- Jcc/Ccc/Rcc: cc in 0..7, opcode = base + cc*8 ---
	for cc := uint8(0); cc < 8; cc++ {
		cc := cc
		opTable[0xC2+cc*8] = func(s *State) int {
			if s.condTrue(cc) {
				s.PC = s.imm16()
				return 0
			}
			return 3
		}
		opTable[0xC4+cc*8] = func(s *State) int {
			if s.condTrue(cc) {
				s.push(s.PC + 3)
				s.PC = s.imm16()
				return 0
			}
			return 3
		}
		opTable[0xC0+cc*8] = func(s *State) int {
			if s.condTrue(cc) {
				s.PC = s.pop()
				return 0
			}
			return 1
		}
	}

	// --- PUSH/POP: rp in 0..3, with rp==3 meaning PSW (not SP) for these opcodes ---
	for rp := uint8(0); rp < 3; rp++ {
		rp := rp
		opTable[0xC1+rp*16] = func(s *State) int { s.setRegPair(rp, s.pop()); return 1 }
		opTable[0xC5+rp*16] = func(s *State) int { s.push(s.regPair(rp)); return 1 }
	}
	opTable[0xF1] = func(s *State) int { s.SetPSW(s.pop()); return 1 }
	opTable[0xF5] = func(s *State) int { s.push(s.PSW()); return 1 }

	// --- Immediate ALU ops ---
	opTable[0xC6] = func(s *State) int { result, f := Add(s.A, s.imm8(), 0); s.A, s.F = result, f; return 2 }
	opTable[0xCE] = func(s *State) int {
		cy := uint8(0)
		if s.F.CY() {
			cy = 1
		}
		result, f := Add(s.A, s.imm8(), cy)
		s.A, s.F = result, f
		return 2
	}
	opTable[0xD6] = func(s *State) int { result, f := Sub(s.A, s.imm8(), 0); s.A, s.F = result, f; return 2 }
	opTable[0xDE] = func(s *State) int {
		cy := uint8(0)
		if s.F.CY() {
			cy = 1
		}
		result, f := Sub(s.A, s.imm8(), cy)
		s.A, s.F = result, f
		return 2
	}
	opTable[0xE6] = func(s *State) int { result, f := And(s.A, s.imm8()); s.A, s.F = result, f; return 2 }
	opTable[0xEE] = func(s *State) int { result, f := Xor(s.A, s.imm8()); s.A, s.F = result, f; return 2 }
	opTable[0xF6] = func(s *State) int { result, f := Or(s.A, s.imm8()); s.A, s.F = result, f; return 2 }
	opTable[0xFE] = func(s *State) int { s.F = Cmp(s.A, s.imm8()); return 2 }

	// --- RST n: opcode = 0xC7 + n*8 ---
	for n := uint8(0); n < 8; n++ {
		n := n
		opTable[0xC7+n*8] = func(s *State) int {
			s.push(s.PC + 1)
			s.PC = uint16(n) * 8
			return 0
		}
	}
}

func unimplemented(s *State) int {
	// Callers check AllowUnimplementedNoOp via Step; this handler is only
	// ever reached when that flag is set, in which case it behaves as a
	// 1-byte NOP.
	return 1
}

func opNOP(s *State) int { return 1 }

func opRLC(s *State) int {
	result, cy := Rlc(s.A)
	s.A = result
	s.F.SetCY(cy)
	return 1
}

func opRRC(s *State) int {
	result, cy := Rrc(s.A)
	s.A = result
	s.F.SetCY(cy)
	return 1
}

func opRAL(s *State) int {
	result, cy := Ral(s.A, s.F.CY())
	s.A = result
	s.F.SetCY(cy)
	return 1
}

func opRAR(s *State) int {
	result, cy := Rar(s.A, s.F.CY())
	s.A = result
	s.F.SetCY(cy)
	return 1
}

func opDAA(s *State) int {
	result, f := Daa(s.A, s.F.CY(), s.F.AC())
	s.A = result
	s.F = f
	return 1
}

func opCMA(s *State) int {
	s.A = ^s.A
	return 1
}

func opSTC(s *State) int {
	s.F.SetCY(true)
	return 1
}

func opCMC(s *State) int {
	s.F.SetCY(!s.F.CY())
	return 1
}

func opSHLD(s *State) int {
	addr := s.imm16()
	s.Mem.Write8(addr, s.L)
	s.Mem.Write8(addr+1, s.H)
	return 3
}

func opLHLD(s *State) int {
	addr := s.imm16()
	s.L = s.Mem.Read8(addr)
	s.H = s.Mem.Read8(addr + 1)
	return 3
}

func opSTA(s *State) int {
	s.Mem.Write8(s.imm16(), s.A)
	return 3
}

func opLDA(s *State) int {
	s.A = s.Mem.Read8(s.imm16())
	return 3
}

func opHLT(s *State) int {
	s.Halted = true
	return 0
}

func opJMP(s *State) int {
	s.PC = s.imm16()
	return 0
}

func opCALL(s *State) int {
	s.push(s.PC + 3)
	s.PC = s.imm16()
	return 0
}

func opRET(s *State) int {
	s.PC = s.pop()
	return 0
}

func opOUT(s *State) int {
	s.Ports.WritePort(s.imm8(), s.A)
	return 2
}

func opIN(s *State) int {
	s.A = s.Ports.ReadPort(s.imm8())
	return 2
}

func opXTHL(s *State) int {
	lo := s.Mem.Read8(s.SP)
	hi := s.Mem.Read8(s.SP + 1)
	s.Mem.Write8(s.SP, s.L)
	s.Mem.Write8(s.SP+1, s.H)
	s.L = lo
	s.H = hi
	return 1
}

func opPCHL(s *State) int {
	s.PC = s.HL()
	return 0
}

func opXCHG(s *State) int {
	s.D, s.H = s.H, s.D
	s.E, s.L = s.L, s.E
	return 1
}

func opDI(s *State) int {
	s.IE = false
	return 1
}

func opEI(s *State) int {
	s.IE = true
	return 1
}

func opSPHL(s *State) int {
	s.SP = s.HL()
	return 1
}
