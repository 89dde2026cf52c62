// Package machine wires the 8080 core to the Space Invaders cabinet: ROM
// loading, the bit-shift accelerator and input latches behind IN/OUT, and
// the step loop that injects the mid-frame/end-of-frame interrupts. None
// of this is part of the instruction-set core — it is the "external
// collaborator" layer spec.md carves out as reimplementable.
package machine

import (
	"fmt"
	"os"

	"github.com/BlazingBBQ/8080-emulator/pkg/cpu"
)

// ROMImage names one file and the address it loads at.
type ROMImage struct {
	Path   string
	Offset uint16
}

// DefaultROMSet is the classic four-file Space Invaders split: invaders.h
// at 0x0000, invaders.g at 0x0800, invaders.f at 0x1000, invaders.e at
// 0x1800, totaling 8 KiB.
func DefaultROMSet(dir string) []ROMImage {
	join := func(name string) string {
		if dir == "" {
			return name
		}
		return dir + string(os.PathSeparator) + name
	}
	return []ROMImage{
		{Path: join("invaders.h"), Offset: 0x0000},
		{Path: join("invaders.g"), Offset: 0x0800},
		{Path: join("invaders.f"), Offset: 0x1000},
		{Path: join("invaders.e"), Offset: 0x1800},
	}
}

// LoadROM reads each image's file into mem at its offset. A missing or
// unreadable file is a configuration error (spec §7, kind 1): fatal at
// startup, never surfaced to the core.
func LoadROM(mem *cpu.Memory, images []ROMImage) error {
	for _, img := range images {
		data, err := os.ReadFile(img.Path)
		if err != nil {
			return fmt.Errorf("loading ROM image %s at 0x%04X: %w", img.Path, img.Offset, err)
		}
		mem.Load(img.Offset, data)
	}
	return nil
}
