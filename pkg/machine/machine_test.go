package machine

import "testing"

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	m, err := New(Config{StopAfter: 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestRunRespectsStopAfter(t *testing.T) {
	m := newTestMachine(t)
	m.Config.StopAfter = 10
	// memory is all zero, opcode 0x00 is NOP everywhere.
	if err := m.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.CPU.InstructionCount != 10 {
		t.Fatalf("InstructionCount = %d, want 10", m.CPU.InstructionCount)
	}
}

func TestRunInjectsAlternatingInterrupts(t *testing.T) {
	m := newTestMachine(t)
	m.CPU.IE = true
	m.Config.StopAfter = InstructionsPerHalfFrame + 1

	if err := m.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// RST 1 fires once the half-frame boundary is crossed, which rewrites
	// PC to 0x0008 and disables IE. A second interrupt cannot land until
	// IE is set again, so nextVector should have advanced to 2. The last
	// instruction of the budget is the NOP at the vector, leaving PC one
	// past it.
	if m.nextVector != 2 {
		t.Fatalf("nextVector = %d, want 2 after the first half-frame boundary", m.nextVector)
	}
	if m.CPU.PC != 0x0009 {
		t.Fatalf("PC = 0x%04X, want 0x0009 (one NOP past the RST 1 vector)", m.CPU.PC)
	}
}

func TestRunStopsAtFaultingOpcode(t *testing.T) {
	m := newTestMachine(t)
	m.Mem.Write8(0, 0xDD) // reserved, faults by default
	m.Config.StopAfter = 0
	if err := m.Run(); err == nil {
		t.Fatal("expected Run to return an error on a reserved opcode")
	}
}

func TestStepReportsInterruptTick(t *testing.T) {
	m := newTestMachine(t)
	m.CPU.IE = true
	var sawInterrupt bool
	for i := 0; i < InstructionsPerHalfFrame; i++ {
		interrupted, err := m.Step()
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		if interrupted {
			sawInterrupt = true
		}
	}
	if !sawInterrupt {
		t.Fatal("expected an interrupt within one half-frame's worth of steps")
	}
}

func TestVRAMWindowMatchesFramebufferRegion(t *testing.T) {
	m := newTestMachine(t)
	m.Mem.Write8(0x2400, 0xAB)
	m.Mem.Write8(0x3FFF, 0xCD)
	vram := m.VRAM()
	if len(vram) != 0x1C00 {
		t.Fatalf("len(VRAM()) = %d, want %d", len(vram), 0x1C00)
	}
	if vram[0] != 0xAB || vram[len(vram)-1] != 0xCD {
		t.Fatalf("VRAM() boundary bytes = 0x%02X,0x%02X, want 0xAB,0xCD", vram[0], vram[len(vram)-1])
	}
}
