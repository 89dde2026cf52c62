package machine

import (
	"fmt"

	"github.com/BlazingBBQ/8080-emulator/pkg/cpu"
)

// InstructionsPerHalfFrame approximates the real cabinet's
// 2 MHz clock against a 60 Hz vblank: the CPU fires RST 1 when the beam
// crosses mid-screen and RST 2 at the top of the next frame. Space
// Invaders' own code relies on exactly two interrupts per frame, not on
// any particular cycle count, so this emulator schedules by instruction
// count rather than modeling per-opcode cycle timing (spec §7: timing
// fidelity below the instruction boundary is out of scope).
const (
	InstructionsPerHalfFrame = 2000
)

// Config is the flat, struct-literal configuration this driver takes. It
// has no defaults of its own; the CLI fills one with its parsed flag
// values and passes it to New.
type Config struct {
	ROMPaths   []string
	ROMOffsets []uint16
	StopAfter  uint64 // 0 means run forever
	Verbosity  int
	AllowNoOp  bool
}

// images pairs ROMPaths with ROMOffsets positionally. A mismatched length
// is a configuration error, caught here rather than mid-load.
func (c Config) images() ([]ROMImage, error) {
	if len(c.ROMPaths) != len(c.ROMOffsets) {
		return nil, fmt.Errorf("machine: %d ROM paths but %d offsets", len(c.ROMPaths), len(c.ROMOffsets))
	}
	images := make([]ROMImage, len(c.ROMPaths))
	for i := range c.ROMPaths {
		images[i] = ROMImage{Path: c.ROMPaths[i], Offset: c.ROMOffsets[i]}
	}
	return images, nil
}

// Machine couples the instruction core to the cabinet's port device and
// drives the interrupt schedule a real frame loop would.
type Machine struct {
	CPU    *cpu.State
	Mem    *cpu.Memory
	Ports  *InvadersPorts
	Config Config

	nextVector   uint8 // alternates 1, 2
	sinceLastInt uint64
}

// New constructs a Machine with ROM already loaded and ports wired in.
func New(cfg Config) (*Machine, error) {
	images, err := cfg.images()
	if err != nil {
		return nil, err
	}
	mem := &cpu.Memory{}
	if err := LoadROM(mem, images); err != nil {
		return nil, err
	}
	ports := NewInvadersPorts()
	state := cpu.New(mem, ports)
	state.AllowUnimplementedNoOp = cfg.AllowNoOp

	return &Machine{
		CPU:        state,
		Mem:        mem,
		Ports:      ports,
		Config:     cfg,
		nextVector: 1,
	}, nil
}

// Run steps the CPU until StopAfter instructions have executed (0 means
// run indefinitely), injecting alternating RST 1 / RST 2 interrupts every
// InstructionsPerHalfFrame instructions. It returns the first FaultError
// the core raises, or nil if the run hit its instruction budget.
func (m *Machine) Run() error {
	for m.Config.StopAfter == 0 || m.CPU.InstructionCount < m.Config.StopAfter {
		if err := m.CPU.Step(); err != nil {
			return fmt.Errorf("machine halted at instruction %d: %w", m.CPU.InstructionCount, err)
		}
		m.sinceLastInt++
		if m.sinceLastInt >= InstructionsPerHalfFrame {
			m.sinceLastInt = 0
			m.CPU.RaiseInterrupt(m.nextVector)
			if m.nextVector == 1 {
				m.nextVector = 2
			} else {
				m.nextVector = 1
			}
		}
	}
	return nil
}

// Step advances exactly one instruction and returns whether an interrupt
// was injected on this tick, for callers (the renderer loop, tests) that
// want finer control than Run.
func (m *Machine) Step() (interrupted bool, err error) {
	if err := m.CPU.Step(); err != nil {
		return false, err
	}
	m.sinceLastInt++
	if m.sinceLastInt >= InstructionsPerHalfFrame {
		m.sinceLastInt = 0
		accepted := m.CPU.RaiseInterrupt(m.nextVector)
		if m.nextVector == 1 {
			m.nextVector = 2
		} else {
			m.nextVector = 1
		}
		return accepted, nil
	}
	return false, nil
}

// VRAM returns the 256x224 1-bit framebuffer region, Memory[0x2400:0x4000),
// for a renderer to scan out.
func (m *Machine) VRAM() []byte {
	return m.Mem[0x2400:0x4000]
}
