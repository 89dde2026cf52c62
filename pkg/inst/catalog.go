// Package inst holds the static, data-only description of the 8080
// opcode space that the disassembler formats from: one Entry per opcode,
// giving its mnemonic, operand list and encoded byte width. It carries no
// execution semantics — those live in pkg/cpu — only the textual shape
// spec'd for golden-file disassembly tests.
package inst

// imm8Marker and imm16Marker are sentinel operand strings Entry.Operands
// may contain; the disassembler substitutes them with the instruction's
// actual immediate/address bytes. They can never collide with a real
// register name.
const (
	imm8Marker  = "#d8"
	imm16Marker = "#d16"
)

// Entry describes one opcode's disassembly shape.
type Entry struct {
	Mnemonic string
	Operands []string // literal register names, or imm8Marker/imm16Marker
	Width    int      // encoded length in bytes, including any immediate
}

// Catalog is the 256-entry opcode table, indexed by the raw opcode byte.
var Catalog [256]Entry

// regNames is the 8080's 3-bit register selector, in encoding order:
// B, C, D, E, H, L, M, A.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// rpNames is the 2-bit register-pair selector used by LXI/INX/DCX/DAD/
// STAX/LDAX: BC, DE, HL, SP — written by their first register letter
// (or SP), per the canonical 8080 mnemonic convention.
var rpNames = [4]string{"B", "D", "H", "SP"}

// pushPopNames is the same selector but with PSW in place of SP, the
// convention PUSH/POP use for index 3.
var pushPopNames = [4]string{"B", "D", "H", "PSW"}

// condNames is the 3-bit condition-code selector Jcc/Ccc/Rcc share, in
// the order spec.md enumerates: NZ, Z, NC, C, PO, PE, P, M.
var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

func entry(mnemonic string, width int, operands ...string) Entry {
	return Entry{Mnemonic: mnemonic, Operands: operands, Width: width}
}

func init() {
	for i := range Catalog {
		Catalog[i] = entry("???", 1)
	}

	for _, nop := range []uint8{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		Catalog[nop] = entry("NOP", 1)
	}
	Catalog[0x07] = entry("RLC", 1)
	Catalog[0x0F] = entry("RRC", 1)
	Catalog[0x17] = entry("RAL", 1)
	Catalog[0x1F] = entry("RAR", 1)
	Catalog[0x22] = entry("SHLD", 3, imm16Marker)
	Catalog[0x27] = entry("DAA", 1)
	Catalog[0x2A] = entry("LHLD", 3, imm16Marker)
	Catalog[0x2F] = entry("CMA", 1)
	Catalog[0x32] = entry("STA", 3, imm16Marker)
	Catalog[0x37] = entry("STC", 1)
	Catalog[0x3A] = entry("LDA", 3, imm16Marker)
	Catalog[0x3F] = entry("CMC", 1)
	Catalog[0x76] = entry("HLT", 1)
	Catalog[0xC3] = entry("JMP", 3, imm16Marker)
	Catalog[0xC9] = entry("RET", 1)
	Catalog[0xCD] = entry("CALL", 3, imm16Marker)
	Catalog[0xD3] = entry("OUT", 2, imm8Marker)
	Catalog[0xDB] = entry("IN", 2, imm8Marker)
	Catalog[0xE3] = entry("XTHL", 1)
	Catalog[0xE9] = entry("PCHL", 1)
	Catalog[0xEB] = entry("XCHG", 1)
	Catalog[0xF3] = entry("DI", 1)
	Catalog[0xF9] = entry("SPHL", 1)
	Catalog[0xFB] = entry("EI", 1)

	for rp := uint8(0); rp < 4; rp++ {
		name := rpNames[rp]
		Catalog[0x01+rp*16] = entry("LXI", 3, name, imm16Marker)
		Catalog[0x03+rp*16] = entry("INX", 1, name)
		Catalog[0x09+rp*16] = entry("DAD", 1, name)
		Catalog[0x0B+rp*16] = entry("DCX", 1, name)
	}
	Catalog[0x02] = entry("STAX", 1, "B")
	Catalog[0x12] = entry("STAX", 1, "D")
	Catalog[0x0A] = entry("LDAX", 1, "B")
	Catalog[0x1A] = entry("LDAX", 1, "D")

	for r := uint8(0); r < 8; r++ {
		name := regNames[r]
		Catalog[0x04+r*8] = entry("INR", 1, name)
		Catalog[0x05+r*8] = entry("DCR", 1, name)
		Catalog[0x06+r*8] = entry("MVI", 2, name, imm8Marker)
	}

	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dst := regNames[(op>>3)&7]
		src := regNames[op&7]
		Catalog[op] = entry("MOV", 1, dst, src)
	}

	for r := uint8(0); r < 8; r++ {
		name := regNames[r]
		Catalog[0x80+r] = entry("ADD", 1, name)
		Catalog[0x88+r] = entry("ADC", 1, name)
		Catalog[0x90+r] = entry("SUB", 1, name)
		Catalog[0x98+r] = entry("SBB", 1, name)
		Catalog[0xA0+r] = entry("ANA", 1, name)
		Catalog[0xA8+r] = entry("XRA", 1, name)
		Catalog[0xB0+r] = entry("ORA", 1, name)
		Catalog[0xB8+r] = entry("CMP", 1, name)
	}

	for cc := uint8(0); cc < 8; cc++ {
		name := condNames[cc]
		Catalog[0xC2+cc*8] = entry("J"+name, 3, imm16Marker)
		Catalog[0xC4+cc*8] = entry("C"+name, 3, imm16Marker)
		Catalog[0xC0+cc*8] = entry("R"+name, 1)
	}

	for rp := uint8(0); rp < 3; rp++ {
		name := pushPopNames[rp]
		Catalog[0xC1+rp*16] = entry("POP", 1, name)
		Catalog[0xC5+rp*16] = entry("PUSH", 1, name)
	}
	Catalog[0xF1] = entry("POP", 1, "PSW")
	Catalog[0xF5] = entry("PUSH", 1, "PSW")

	Catalog[0xC6] = entry("ADI", 2, imm8Marker)
	Catalog[0xCE] = entry("ACI", 2, imm8Marker)
	Catalog[0xD6] = entry("SUI", 2, imm8Marker)
	Catalog[0xDE] = entry("SBI", 2, imm8Marker)
	Catalog[0xE6] = entry("ANI", 2, imm8Marker)
	Catalog[0xEE] = entry("XRI", 2, imm8Marker)
	Catalog[0xF6] = entry("ORI", 2, imm8Marker)
	Catalog[0xFE] = entry("CPI", 2, imm8Marker)

	for n := uint8(0); n < 8; n++ {
		Catalog[0xC7+n*8] = entry("RST", 1, itoa(n))
	}
}

// itoa converts a single digit 0-7 to its ASCII string without pulling in
// strconv for one digit.
func itoa(n uint8) string {
	return string(rune('0' + n))
}
