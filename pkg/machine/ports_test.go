package machine

import "testing"

func TestShiftRegisterWindow(t *testing.T) {
	p := NewInvadersPorts()
	p.WritePort(4, 0x00) // hi=0x00, lo=0x00
	p.WritePort(4, 0xFF) // hi=0xFF, lo=0x00 -> word 0xFF00
	p.WritePort(2, 0)    // shiftAmount = 0
	if got := p.ReadPort(3); got != 0xFF {
		t.Fatalf("ReadPort(3) with amount=0 = 0x%02X, want 0xFF", got)
	}

	p.WritePort(2, 7)
	// word=0xFF00, amount=7: 0xFF00 >> 1 = 0x7F80, truncated to the low
	// byte = 0x80.
	if got := p.ReadPort(3); got != 0x80 {
		t.Fatalf("ReadPort(3) with amount=7 = 0x%02X, want 0x80", got)
	}
}

func TestShiftAmountMaskedToThreeBits(t *testing.T) {
	p := NewInvadersPorts()
	p.WritePort(2, 0xFF)
	if p.shiftAmount != 0x07 {
		t.Fatalf("shiftAmount = %d, want 7 (masked to 3 bits)", p.shiftAmount)
	}
}

func TestInputLatchesRoundTrip(t *testing.T) {
	p := NewInvadersPorts()
	if p.ReadPort(1)&uint8(Input1Fixed) == 0 {
		t.Fatal("Input1Fixed bit should be set by default")
	}
	p.OrInput1(Input1P1Shoot)
	if p.ReadPort(1)&uint8(Input1P1Shoot) == 0 {
		t.Fatal("setting Input1P1Shoot should be visible through ReadPort(1)")
	}
	p.OrInput2(Input2Tilt)
	if p.ReadPort(2)&uint8(Input2Tilt) == 0 {
		t.Fatal("setting Input2Tilt should be visible through ReadPort(2)")
	}
}

func TestUnmappedPortReadsZero(t *testing.T) {
	p := NewInvadersPorts()
	if got := p.ReadPort(7); got != 0 {
		t.Fatalf("ReadPort(7) = 0x%02X, want 0x00", got)
	}
}

func TestSoundWritesAreLatchedNotExecuted(t *testing.T) {
	p := NewInvadersPorts()
	p.WritePort(3, 0x05)
	p.WritePort(5, 0x08)
	if p.LastSound3 != 0x05 || p.LastSound5 != 0x08 {
		t.Fatalf("LastSound3=0x%02X LastSound5=0x%02X, want 0x05/0x08", p.LastSound3, p.LastSound5)
	}
}
