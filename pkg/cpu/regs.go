package cpu

// Register-index encoding shared by MOV/MVI/INR/DCR/ALU opcodes: the 8080
// packs a 3-bit register selector as B,C,D,E,H,L,M,A into bits 0-2 (source)
// or bits 3-5 (destination) of the opcode byte. Index 6 is the pseudo
// register M = Memory[HL].
const (
	regB = 0
	regC = 1
	regD = 2
	regE = 3
	regH = 4
	regL = 5
	regM = 6
	regA = 7
)

// reg reads the 8-bit register selected by the 3-bit index i.
func (s *State) reg(i uint8) uint8 {
	switch i & 7 {
	case regB:
		return s.B
	case regC:
		return s.C
	case regD:
		return s.D
	case regE:
		return s.E
	case regH:
		return s.H
	case regL:
		return s.L
	case regM:
		return s.M()
	default: // regA
		return s.A
	}
}

// setReg writes the 8-bit register selected by the 3-bit index i.
func (s *State) setReg(i uint8, v uint8) {
	switch i & 7 {
	case regB:
		s.B = v
	case regC:
		s.C = v
	case regD:
		s.D = v
	case regE:
		s.E = v
	case regH:
		s.H = v
	case regL:
		s.L = v
	case regM:
		s.SetM(v)
	default: // regA
		s.A = v
	}
}

// Register-pair index encoding for LXI/INX/DCX/DAD/PUSH/POP-family
// opcodes: 0=BC, 1=DE, 2=HL, 3=SP (or PSW, for PUSH/POP specifically).
const (
	rpBC = 0
	rpDE = 1
	rpHL = 2
	rpSP = 3
)

func (s *State) regPair(i uint8) uint16 {
	switch i & 3 {
	case rpBC:
		return s.BC()
	case rpDE:
		return s.DE()
	case rpHL:
		return s.HL()
	default:
		return s.SP
	}
}

func (s *State) setRegPair(i uint8, v uint16) {
	switch i & 3 {
	case rpBC:
		s.SetBC(v)
	case rpDE:
		s.SetDE(v)
	case rpHL:
		s.SetHL(v)
	default:
		s.SP = v
	}
}

// condTrue evaluates one of the eight Jcc/Ccc/Rcc condition codes, encoded
// in 3 bits as NZ,Z,NC,C,PO,PE,P,M.
func (s *State) condTrue(cc uint8) bool {
	switch cc & 7 {
	case 0: // NZ
		return !s.F.Z()
	case 1: // Z
		return s.F.Z()
	case 2: // NC
		return !s.F.CY()
	case 3: // C
		return s.F.CY()
	case 4: // PO (odd)
		return !s.F.P()
	case 5: // PE (even)
		return s.F.P()
	case 6: // P (plus, sign clear)
		return !s.F.S()
	default: // M (minus, sign set)
		return s.F.S()
	}
}
