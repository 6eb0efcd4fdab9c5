package isa

import (
	"fmt"

	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/reg"
)

// COp is the closed enumeration of every 16-bit (compressed) opcode
// this module supports. Compressed mnemonics each map to a distinct
// compressed variant; they are never expanded to an uncompressed one —
// that expansion is a concern for an embedding collaborator.
type COp int

const (
	COpUnknown COp = iota
	CADDI4SPN
	CLW
	CLD
	CSW
	CSD
	CNOP
	CADDI
	CADDIW
	CLI
	CADDI16SP
	CLUI
	CSRLI
	CSRAI
	CANDI
	CSUB
	CXOR
	COR
	CAND
	CSUBW
	CADDW
	CJ
	CBEQZ
	CBNEZ
	CSLLI
	CLWSP
	CLDSP
	CJR
	CMV
	CEBREAK
	CJALR
	CADD
	CSWSP
	CSDSP
)

var cOpNames = map[COp]string{
	CADDI4SPN: "c.addi4spn", CLW: "c.lw", CLD: "c.ld", CSW: "c.sw", CSD: "c.sd",
	CNOP: "c.nop", CADDI: "c.addi", CADDIW: "c.addiw", CLI: "c.li",
	CADDI16SP: "c.addi16sp", CLUI: "c.lui",
	CSRLI: "c.srli", CSRAI: "c.srai", CANDI: "c.andi",
	CSUB: "c.sub", CXOR: "c.xor", COR: "c.or", CAND: "c.and",
	CSUBW: "c.subw", CADDW: "c.addw",
	CJ: "c.j", CBEQZ: "c.beqz", CBNEZ: "c.bnez",
	CSLLI: "c.slli", CLWSP: "c.lwsp", CLDSP: "c.ldsp",
	CJR: "c.jr", CMV: "c.mv", CEBREAK: "c.ebreak", CJALR: "c.jalr", CADD: "c.add",
	CSWSP: "c.swsp", CSDSP: "c.sdsp",
}

func (o COp) String() string {
	if n, ok := cOpNames[o]; ok {
		return n
	}
	return "unknown"
}

// ParseCOp looks up the COp whose canonical mnemonic equals name.
func ParseCOp(name string) (COp, bool) {
	for op, n := range cOpNames {
		if n == name {
			return op, true
		}
	}
	return COpUnknown, false
}

// CInstruction is the tagged sum of every supported 16-bit opcode.
// Register fields always carry the full 5-bit register; instructions
// whose encoding uses the 3-bit compressed sub-namespace are
// constructed and destructured through reg.CReg at the codec boundary,
// preserving the invariant that the stored index is one of the eight
// compressed-addressable registers.
type CInstruction struct {
	Op           COp
	Rd, Rs1, Rs2 reg.IntReg
	Imm          imm.Value
}

// String renders the canonical "c."-prefixed textual form.
func (c CInstruction) String() string {
	name := c.Op.String()
	switch c.Op {
	case CADDI4SPN:
		return fmt.Sprintf("%s %s,%s", name, c.Rd, c.Imm)
	case CLW, CLD:
		return fmt.Sprintf("%s %s,%s(%s)", name, c.Rd, c.Imm, c.Rs1)
	case CSW, CSD:
		return fmt.Sprintf("%s %s,%s(%s)", name, c.Rs2, c.Imm, c.Rs1)
	case CNOP:
		return "c.nop"
	case CADDI, CADDIW, CANDI:
		return fmt.Sprintf("%s %s,%s", name, c.Rd, c.Imm)
	case CLI:
		return fmt.Sprintf("%s %s,%s", name, c.Rd, c.Imm)
	case CADDI16SP:
		return fmt.Sprintf("%s %s", name, c.Imm)
	case CLUI:
		return fmt.Sprintf("%s %s,%s", name, c.Rd, c.Imm)
	case CSRLI, CSRAI, CSLLI:
		return fmt.Sprintf("%s %s,%s", name, c.Rd, c.Imm)
	case CSUB, CXOR, COR, CAND, CSUBW, CADDW:
		return fmt.Sprintf("%s %s,%s", name, c.Rd, c.Rs2)
	case CJ:
		return fmt.Sprintf("%s %s", name, c.Imm)
	case CBEQZ, CBNEZ:
		return fmt.Sprintf("%s %s,%s", name, c.Rs1, c.Imm)
	case CLWSP, CLDSP:
		return fmt.Sprintf("%s %s,%s(sp)", name, c.Rd, c.Imm)
	case CJR:
		return fmt.Sprintf("%s %s", name, c.Rs1)
	case CMV:
		return fmt.Sprintf("%s %s,%s", name, c.Rd, c.Rs2)
	case CEBREAK:
		return "c.ebreak"
	case CJALR:
		return fmt.Sprintf("%s %s", name, c.Rs1)
	case CADD:
		return fmt.Sprintf("%s %s,%s", name, c.Rd, c.Rs2)
	case CSWSP, CSDSP:
		return fmt.Sprintf("%s %s,%s(sp)", name, c.Rs2, c.Imm)
	default:
		return "unknown"
	}
}
