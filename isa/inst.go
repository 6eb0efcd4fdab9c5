package isa

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/reg"
)

// Op is the closed enumeration of every 32-bit instruction this module
// supports. Size and precision are part of the Op (LRW vs LRD, FADDS);
// rounding-mode and ordering suffixes are carried as Instruction fields,
// not as distinct Op values.
type Op int

const (
	OpUnknown Op = iota

	// RV64I
	LUI
	AUIPC
	JAL
	JALR
	BEQ
	BNE
	BLT
	BGE
	BLTU
	BGEU
	LB
	LH
	LW
	LBU
	LHU
	LWU
	LD
	SB
	SH
	SW
	SD
	ADDI
	SLTI
	SLTIU
	XORI
	ORI
	ANDI
	SLLI
	SRLI
	SRAI
	ADDIW
	SLLIW
	SRLIW
	SRAIW
	ADD
	SUB
	SLL
	SLT
	SLTU
	XOR
	SRL
	SRA
	OR
	AND
	ADDW
	SUBW
	SLLW
	SRLW
	SRAW
	FENCE
	FENCEI
	ECALL
	EBREAK

	// M extension
	MUL
	MULH
	MULHSU
	MULHU
	DIV
	DIVU
	REM
	REMU
	MULW
	DIVW
	DIVUW
	REMW
	REMUW

	// A extension
	LRW
	SCW
	AMOSWAPW
	AMOADDW
	AMOXORW
	AMOANDW
	AMOORW
	AMOMINW
	AMOMAXW
	AMOMINUW
	AMOMAXUW
	LRD
	SCD
	AMOSWAPD
	AMOADDD
	AMOXORD
	AMOANDD
	AMOORD
	AMOMIND
	AMOMAXD
	AMOMINUD
	AMOMAXUD

	// F extension (single precision)
	FLW
	FSW
	FMADDS
	FMSUBS
	FNMSUBS
	FNMADDS
	FADDS
	FSUBS
	FMULS
	FDIVS
	FSQRTS
	FSGNJS
	FSGNJNS
	FSGNJXS
	FMINS
	FMAXS
	FCVTWS
	FCVTWUS
	FCVTSW
	FCVTSWU
	FCVTLS
	FCVTLUS
	FCVTSL
	FCVTSLU
	FMVXW
	FMVWX
	FEQS
	FLTS
	FLES
	FCLASSS

	// Zicsr
	CSRRW
	CSRRS
	CSRRC
	CSRRWI
	CSRRSI
	CSRRCI
)

var opNames = map[Op]string{
	LUI: "lui", AUIPC: "auipc", JAL: "jal", JALR: "jalr",
	BEQ: "beq", BNE: "bne", BLT: "blt", BGE: "bge", BLTU: "bltu", BGEU: "bgeu",
	LB: "lb", LH: "lh", LW: "lw", LBU: "lbu", LHU: "lhu", LWU: "lwu", LD: "ld",
	SB: "sb", SH: "sh", SW: "sw", SD: "sd",
	ADDI: "addi", SLTI: "slti", SLTIU: "sltiu", XORI: "xori", ORI: "ori", ANDI: "andi",
	SLLI: "slli", SRLI: "srli", SRAI: "srai",
	ADDIW: "addiw", SLLIW: "slliw", SRLIW: "srliw", SRAIW: "sraiw",
	ADD: "add", SUB: "sub", SLL: "sll", SLT: "slt", SLTU: "sltu",
	XOR: "xor", SRL: "srl", SRA: "sra", OR: "or", AND: "and",
	ADDW: "addw", SUBW: "subw", SLLW: "sllw", SRLW: "srlw", SRAW: "sraw",
	FENCE: "fence", FENCEI: "fence.i", ECALL: "ecall", EBREAK: "ebreak",

	MUL: "mul", MULH: "mulh", MULHSU: "mulhsu", MULHU: "mulhu",
	DIV: "div", DIVU: "divu", REM: "rem", REMU: "remu",
	MULW: "mulw", DIVW: "divw", DIVUW: "divuw", REMW: "remw", REMUW: "remuw",

	LRW: "lr.w", SCW: "sc.w", AMOSWAPW: "amoswap.w", AMOADDW: "amoadd.w",
	AMOXORW: "amoxor.w", AMOANDW: "amoand.w", AMOORW: "amoor.w",
	AMOMINW: "amomin.w", AMOMAXW: "amomax.w", AMOMINUW: "amominu.w", AMOMAXUW: "amomaxu.w",
	LRD: "lr.d", SCD: "sc.d", AMOSWAPD: "amoswap.d", AMOADDD: "amoadd.d",
	AMOXORD: "amoxor.d", AMOANDD: "amoand.d", AMOORD: "amoor.d",
	AMOMIND: "amomin.d", AMOMAXD: "amomax.d", AMOMINUD: "amominu.d", AMOMAXUD: "amomaxu.d",

	FLW: "flw", FSW: "fsw",
	FMADDS: "fmadd.s", FMSUBS: "fmsub.s", FNMSUBS: "fnmsub.s", FNMADDS: "fnmadd.s",
	FADDS: "fadd.s", FSUBS: "fsub.s", FMULS: "fmul.s", FDIVS: "fdiv.s", FSQRTS: "fsqrt.s",
	FSGNJS: "fsgnj.s", FSGNJNS: "fsgnjn.s", FSGNJXS: "fsgnjx.s",
	FMINS: "fmin.s", FMAXS: "fmax.s",
	FCVTWS: "fcvt.w.s", FCVTWUS: "fcvt.wu.s", FCVTSW: "fcvt.s.w", FCVTSWU: "fcvt.s.wu",
	FCVTLS: "fcvt.l.s", FCVTLUS: "fcvt.lu.s", FCVTSL: "fcvt.s.l", FCVTSLU: "fcvt.s.lu",
	FMVXW: "fmv.x.w", FMVWX: "fmv.w.x",
	FEQS: "feq.s", FLTS: "flt.s", FLES: "fle.s", FCLASSS: "fclass.s",

	CSRRW: "csrrw", CSRRS: "csrrs", CSRRC: "csrrc",
	CSRRWI: "csrrwi", CSRRSI: "csrrsi", CSRRCI: "csrrci",
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return "unknown"
}

// Instruction is the tagged sum of every supported 32-bit opcode: a
// discriminant (Op) plus a flat payload carrying only the fields that
// discriminant's encoding uses. It is a plain value: copied and compared
// freely, no identity, no heap requirement.
type Instruction struct {
	Op Op

	Rd, Rs1, Rs2, Rs3 reg.IntReg
	Frd, Frs1, Frs2, Frs3 reg.FloatReg

	// Imm carries whichever immediate family this Op's encoding uses
	// (I, S, B, U, J, Shamt, ShamtW, or CSRImm); nil when the Op has no
	// immediate operand.
	Imm imm.Value

	RM RoundingMode // float rounding mode; meaningful only for F-extension ops

	Aq, Rl bool // atomic ordering bits; meaningful only for AMO/LR/SC

	Pred, Succ FenceSet  // meaningful only for FENCE
	FM         FenceMode // meaningful only for FENCE

	CSR       CSR      // meaningful only for CSRRx[i]
	CSRUseImm bool     // true for the *I forms: the operand is CSRImm, not Rs1
}

func aqrlSuffix(aq, rl bool) string {
	switch {
	case aq && rl:
		return ".aqrl"
	case aq:
		return ".aq"
	case rl:
		return ".rl"
	default:
		return ""
	}
}

func rmSuffix(rm RoundingMode) string {
	if rm == DYN {
		return ""
	}
	return "." + rm.String()
}

// String renders the canonical assembly form: ABI register names,
// offset(base) memory operands, dotted ordering/rounding suffixes with
// DYN omitted.
func (i Instruction) String() string {
	name := i.Op.String()
	switch i.Op {
	case LUI, AUIPC:
		return fmt.Sprintf("%s %s,%s", name, i.Rd, i.Imm)
	case JAL:
		return fmt.Sprintf("%s %s,%s", name, i.Rd, i.Imm)
	case JALR:
		return fmt.Sprintf("%s %s,%s(%s)", name, i.Rd, i.Imm, i.Rs1)
	case BEQ, BNE, BLT, BGE, BLTU, BGEU:
		return fmt.Sprintf("%s %s,%s,%s", name, i.Rs1, i.Rs2, i.Imm)
	case LB, LH, LW, LBU, LHU, LWU, LD:
		return fmt.Sprintf("%s %s,%s(%s)", name, i.Rd, i.Imm, i.Rs1)
	case SB, SH, SW, SD:
		return fmt.Sprintf("%s %s,%s(%s)", name, i.Rs2, i.Imm, i.Rs1)
	case ADDI, SLTI, SLTIU, XORI, ORI, ANDI, ADDIW:
		return fmt.Sprintf("%s %s,%s,%s", name, i.Rd, i.Rs1, i.Imm)
	case SLLI, SRLI, SRAI, SLLIW, SRLIW, SRAIW:
		return fmt.Sprintf("%s %s,%s,%s", name, i.Rd, i.Rs1, i.Imm)
	case ADD, SUB, SLL, SLT, SLTU, XOR, SRL, SRA, OR, AND,
		ADDW, SUBW, SLLW, SRLW, SRAW,
		MUL, MULH, MULHSU, MULHU, DIV, DIVU, REM, REMU,
		MULW, DIVW, DIVUW, REMW, REMUW:
		return fmt.Sprintf("%s %s,%s,%s", name, i.Rd, i.Rs1, i.Rs2)
	case FENCE:
		if i.FM == FenceModeTSO {
			return "fence.tso rw,rw"
		}
		return fmt.Sprintf("fence %s,%s", i.Pred, i.Succ)
	case FENCEI, ECALL, EBREAK:
		return name
	case LRW, LRD:
		return fmt.Sprintf("%s%s %s,%s", name, aqrlSuffix(i.Aq, i.Rl), i.Rd, i.Rs1)
	case SCW, SCD,
		AMOSWAPW, AMOADDW, AMOXORW, AMOANDW, AMOORW, AMOMINW, AMOMAXW, AMOMINUW, AMOMAXUW,
		AMOSWAPD, AMOADDD, AMOXORD, AMOANDD, AMOORD, AMOMIND, AMOMAXD, AMOMINUD, AMOMAXUD:
		return fmt.Sprintf("%s%s %s,%s,%s", name, aqrlSuffix(i.Aq, i.Rl), i.Rd, i.Rs1, i.Rs2)
	case FLW:
		return fmt.Sprintf("%s %s,%s(%s)", name, i.Frd, i.Imm, i.Rs1)
	case FSW:
		return fmt.Sprintf("%s %s,%s(%s)", name, i.Frs2, i.Imm, i.Rs1)
	case FMADDS, FMSUBS, FNMSUBS, FNMADDS:
		return fmt.Sprintf("%s%s %s,%s,%s,%s", name, rmSuffix(i.RM), i.Frd, i.Frs1, i.Frs2, i.Frs3)
	case FADDS, FSUBS, FMULS, FDIVS:
		return fmt.Sprintf("%s%s %s,%s,%s", name, rmSuffix(i.RM), i.Frd, i.Frs1, i.Frs2)
	case FSQRTS:
		return fmt.Sprintf("%s%s %s,%s", name, rmSuffix(i.RM), i.Frd, i.Frs1)
	case FSGNJS, FSGNJNS, FSGNJXS, FMINS, FMAXS:
		return fmt.Sprintf("%s %s,%s,%s", name, i.Frd, i.Frs1, i.Frs2)
	case FCVTWS, FCVTWUS, FCVTLS, FCVTLUS:
		return fmt.Sprintf("%s%s %s,%s", name, rmSuffix(i.RM), i.Rd, i.Frs1)
	case FCVTSW, FCVTSWU, FCVTSL, FCVTSLU:
		return fmt.Sprintf("%s%s %s,%s", name, rmSuffix(i.RM), i.Frd, i.Rs1)
	case FMVXW:
		return fmt.Sprintf("%s %s,%s", name, i.Rd, i.Frs1)
	case FMVWX:
		return fmt.Sprintf("%s %s,%s", name, i.Frd, i.Rs1)
	case FEQS, FLTS, FLES:
		return fmt.Sprintf("%s %s,%s,%s", name, i.Rd, i.Frs1, i.Frs2)
	case FCLASSS:
		return fmt.Sprintf("%s %s,%s", name, i.Rd, i.Frs1)
	case CSRRW, CSRRS, CSRRC:
		return fmt.Sprintf("%s %s,%s,%s", name, i.Rd, i.CSR, i.Rs1)
	case CSRRWI, CSRRSI, CSRRCI:
		return fmt.Sprintf("%s %s,%s,%s", name, i.Rd, i.CSR, i.Imm)
	default:
		return "unknown"
	}
}

// IsAtomic reports whether Op belongs to the A extension (AMO or LR/SC).
func (o Op) IsAtomic() bool {
	switch o {
	case LRW, SCW, AMOSWAPW, AMOADDW, AMOXORW, AMOANDW, AMOORW, AMOMINW, AMOMAXW, AMOMINUW, AMOMAXUW,
		LRD, SCD, AMOSWAPD, AMOADDD, AMOXORD, AMOANDD, AMOORD, AMOMIND, AMOMAXD, AMOMINUD, AMOMAXUD:
		return true
	default:
		return false
	}
}

// ParseOp looks up the Op whose canonical mnemonic equals name.
func ParseOp(name string) (Op, bool) {
	for op, n := range opNames {
		if n == name {
			return op, true
		}
	}
	return OpUnknown, false
}

// JoinOperands joins operand texts with commas, the separator used by
// the canonical textual form.
func JoinOperands(parts ...string) string {
	return strings.Join(parts, ",")
}
