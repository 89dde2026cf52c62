// Package render turns the cabinet's 1-bit video RAM into terminal output.
// The real display is 256x224, rotated 90 degrees in the cabinet; this
// renderer reads it upright and scales two vertical pixels to one
// half-block glyph per line, the same "pack two rows into one glyph"
// trick terminal Game Boy and CHIP-8 emulators in the examples pack use to
// get square-ish pixels out of a character grid.
package render

import (
	"fmt"
	"io"
	"strings"
)

const (
	width  = 256
	height = 224
)

// FrameString renders vram (the 256x224 1-bit bitmap packed 8
// pixels-per-byte, column-major the way the cabinet wires it) into a
// block-glyph string using the Unicode upper/lower half-block characters.
func FrameString(vram []byte) string {
	var b strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := pixelAt(vram, x, y)
			bottom := pixelAt(vram, x, y+1)
			b.WriteRune(glyphFor(top, bottom))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// pixelAt returns whether the pixel at (x, y) in upright screen space is
// lit. vram is addressed the way the cabinet's video memory is: each byte
// holds 8 vertically-stacked pixels of one column, column-major across the
// 256-pixel-wide screen.
func pixelAt(vram []byte, x, y int) bool {
	byteIndex := x*(height/8) + y/8
	if byteIndex < 0 || byteIndex >= len(vram) {
		return false
	}
	bit := uint(y % 8)
	return vram[byteIndex]&(1<<bit) != 0
}

func glyphFor(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top && !bottom:
		return '▀'
	case !top && bottom:
		return '▄'
	default:
		return ' '
	}
}

// WriteFrame renders vram and writes it to w, homing the cursor first so
// successive frames overwrite each other instead of scrolling.
func WriteFrame(w io.Writer, vram []byte) error {
	_, err := fmt.Fprint(w, "\x1b[H", FrameString(vram))
	return err
}

// Headless discards frames. It satisfies the same call shape as
// WriteFrame for the --headless CLI flag, where the step loop still needs
// somewhere to send completed frames.
func Headless(io.Writer, []byte) error { return nil }
