package cpu

import "testing"

func TestFlagsPackReservedBits(t *testing.T) {
	var f Flags
	f.Unpack(0x00)
	packed := f.Pack()
	if packed&0x02 == 0 {
		t.Fatal("bit 1 must always be 1")
	}
	if packed&0x08 != 0 {
		t.Fatal("bit 3 must always be 0")
	}
	if packed&0x20 != 0 {
		t.Fatal("bit 5 must always be 0")
	}
}

func TestFlagsUnpackMasksGarbage(t *testing.T) {
	var f Flags
	f.Unpack(0xFF)
	if f.Pack() != 0xD7 { // S Z 0 AC 0 P 1 CY all set, reserved fixed
		t.Fatalf("Pack() = 0x%02X, want 0xD7", f.Pack())
	}
}

func TestSetZSP(t *testing.T) {
	var f Flags
	f.SetZSP(0x00)
	if !f.Z() || f.S() || !f.P() {
		t.Fatalf("SetZSP(0) -> Z=%v S=%v P=%v, want true false true", f.Z(), f.S(), f.P())
	}
	f.SetZSP(0x80)
	if f.Z() || !f.S() || f.P() {
		t.Fatalf("SetZSP(0x80) -> Z=%v S=%v P=%v, want false true false", f.Z(), f.S(), f.P())
	}
	f.SetZSP(0x01)
	if f.Z() || f.S() || f.P() {
		t.Fatalf("SetZSP(1) -> Z=%v S=%v P=%v, want false false false", f.Z(), f.S(), f.P())
	}
}
