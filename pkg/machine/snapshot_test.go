package machine

import (
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	m, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.CPU.A = 0x42
	m.CPU.PC = 0x1234
	m.CPU.SP = 0x3000
	m.CPU.IE = true
	m.Mem.Write8(0x2400, 0xAA)
	m.Ports.OrInput1(Input1P1Shoot)
	m.Ports.SetShiftState(0xEF, 0xBE, 0)
	m.nextVector = 2
	m.sinceLastInt = 500
	m.CPU.InstructionCount = 12345

	path := filepath.Join(t.TempDir(), "snap.gob")
	if err := SaveSnapshot(path, m); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	restored, err := New(Config{})
	if err != nil {
		t.Fatalf("New (restored): %v", err)
	}
	if err := LoadSnapshot(path, restored); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if restored.CPU.A != 0x42 || restored.CPU.PC != 0x1234 || restored.CPU.SP != 0x3000 {
		t.Fatalf("register state did not round-trip: A=0x%02X PC=0x%04X SP=0x%04X",
			restored.CPU.A, restored.CPU.PC, restored.CPU.SP)
	}
	if !restored.CPU.IE {
		t.Fatal("IE did not round-trip")
	}
	if restored.Mem.Read8(0x2400) != 0xAA {
		t.Fatal("memory contents did not round-trip")
	}
	if restored.Ports.Input1()&Input1P1Shoot == 0 {
		t.Fatal("input latch did not round-trip")
	}
	if lo, hi, _ := restored.Ports.ShiftState(); hi != 0xBE || lo != 0xEF {
		t.Fatal("shift register did not round-trip")
	}
	if restored.nextVector != 2 || restored.sinceLastInt != 500 {
		t.Fatal("interrupt schedule state did not round-trip")
	}
	if restored.CPU.InstructionCount != 12345 {
		t.Fatal("instruction count did not round-trip")
	}
}
