package machine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BlazingBBQ/8080-emulator/pkg/cpu"
)

func TestLoadROMPlacesEachImageAtItsOffset(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, data, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		return p
	}

	images := []ROMImage{
		{Path: write("a.bin", []byte{0x11, 0x22}), Offset: 0x0000},
		{Path: write("b.bin", []byte{0x33, 0x44}), Offset: 0x0800},
	}

	var mem cpu.Memory
	if err := LoadROM(&mem, images); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	if mem.Read8(0x0000) != 0x11 || mem.Read8(0x0001) != 0x22 {
		t.Fatal("first image not loaded at 0x0000")
	}
	if mem.Read8(0x0800) != 0x33 || mem.Read8(0x0801) != 0x44 {
		t.Fatal("second image not loaded at 0x0800")
	}
}

func TestLoadROMFailsOnMissingFile(t *testing.T) {
	var mem cpu.Memory
	err := LoadROM(&mem, []ROMImage{{Path: filepath.Join(t.TempDir(), "missing.bin"), Offset: 0}})
	if err == nil {
		t.Fatal("expected an error for a missing ROM file")
	}
}

func TestDefaultROMSetOffsetsCoverEightKiB(t *testing.T) {
	images := DefaultROMSet("/roms")
	want := []uint16{0x0000, 0x0800, 0x1000, 0x1800}
	if len(images) != len(want) {
		t.Fatalf("len(DefaultROMSet()) = %d, want %d", len(images), len(want))
	}
	for i, img := range images {
		if img.Offset != want[i] {
			t.Errorf("image %d offset = 0x%04X, want 0x%04X", i, img.Offset, want[i])
		}
	}
}
