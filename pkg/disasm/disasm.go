// Package disasm renders 8080 machine code as text, one formatter per
// opcode family driven by the data table in pkg/inst. Output is
// bit-exact with spec's golden-file format: uppercase mnemonic, padded to
// column 8 when operands follow (no trailing padding otherwise), operands
// comma-separated, hex immediates as 0xHH / 0xHHHH, one trailing newline.
package disasm

import (
	"fmt"
	"strings"

	"github.com/BlazingBBQ/8080-emulator/pkg/cpu"
	"github.com/BlazingBBQ/8080-emulator/pkg/inst"
)

// mnemonicColumn is the fixed column operands align to, per spec §4.4/§6.
const mnemonicColumn = 8

// Disassemble formats the instruction at pc in mem, returning its text
// line and its encoded byte width (1, 2 or 3; unimplemented opcodes are
// 1). The returned width lets a caller walk an entire ROM image the same
// way the emulator's own fetch loop would, even though no state executes.
func Disassemble(mem *cpu.Memory, pc uint16) (string, int) {
	opcode := mem.Read8(pc)
	e := inst.Catalog[opcode]

	if e.Mnemonic == "???" {
		return fmt.Sprintf("Unimplemented opcode <%02x> at addr: %08x\n", opcode, pc), e.Width
	}

	operands := make([]string, len(e.Operands))
	for i, op := range e.Operands {
		switch op {
		case "#d8":
			operands[i] = fmt.Sprintf("0x%02x", mem.Read8(pc+1))
		case "#d16":
			operands[i] = fmt.Sprintf("0x%04x", mem.Read16(pc+1))
		default:
			operands[i] = op
		}
	}

	var b strings.Builder
	b.WriteString(e.Mnemonic)
	if len(operands) > 0 {
		for i := len(e.Mnemonic); i < mnemonicColumn; i++ {
			b.WriteByte(' ')
		}
		b.WriteString(strings.Join(operands, ", "))
	}
	b.WriteByte('\n')
	return b.String(), e.Width
}
