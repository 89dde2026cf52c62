package cpu

import "testing"

func TestRegisterPairViews(t *testing.T) {
	s := newTestState()
	s.SetBC(0x1234)
	if s.B != 0x12 || s.C != 0x34 || s.BC() != 0x1234 {
		t.Fatalf("SetBC(0x1234) -> B=0x%02X C=0x%02X BC()=0x%04X", s.B, s.C, s.BC())
	}
	s.SetHL(0xBEEF)
	if s.M() != s.Mem.Read8(0xBEEF) {
		t.Fatal("M() must read Memory[HL]")
	}
	s.SetM(0x99)
	if s.Mem.Read8(0xBEEF) != 0x99 {
		t.Fatal("SetM() must write Memory[HL]")
	}
}

func TestMemory16BitAddressWrapsAtTopOfSpace(t *testing.T) {
	mem := &Memory{}
	// uint16 address arithmetic wraps silently: writing a 16-bit word at
	// 0xFFFF spills its high byte into address 0x0000.
	mem.Write16(0xFFFF, 0xABCD)
	if mem.Read8(0xFFFF) != 0xCD {
		t.Fatalf("low byte at 0xFFFF = 0x%02X, want 0xCD", mem.Read8(0xFFFF))
	}
	if mem.Read8(0x0000) != 0xAB {
		t.Fatalf("high byte wrapped to 0x0000 = 0x%02X, want 0xAB", mem.Read8(0x0000))
	}
}
