package asm

import (
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// AssembleLine parses one line of assembly text into its tagged
// instruction value.
func AssembleLine(line string) (AssemblyResult, error) {
	head, operandStr := splitHead(line)
	if head == "" {
		return AssemblyResult{}, rverr.New(rverr.UnknownMnemonic, "empty instruction line")
	}
	parts := splitMnemonic(head)
	operands := splitOperands(operandStr)

	if parts[0] == "c" {
		c, err := assembleCompressed(parts[1:], operands)
		if err != nil {
			return AssemblyResult{}, err
		}
		return compressedResult(c), nil
	}

	i, err := assembleFull(parts, operands)
	if err != nil {
		return AssemblyResult{}, err
	}
	return fullResult(i), nil
}

func assembleFull(parts []string, operands []string) (isa.Instruction, error) {
	mnemonic := parts[0]
	switch mnemonic {
	case "lui":
		return assembleU(mnemonic, isa.LUI, operands)
	case "auipc":
		return assembleU(mnemonic, isa.AUIPC, operands)
	case "jal":
		return assembleJAL(mnemonic, operands)
	case "jalr":
		return assembleJALR(mnemonic, operands)
	case "beq", "bne", "blt", "bge", "bltu", "bgeu":
		return assembleBranch(mnemonic, operands)
	case "lb", "lh", "lw", "lbu", "lhu", "lwu", "ld":
		return assembleLoad(mnemonic, operands)
	case "sb", "sh", "sw", "sd":
		return assembleStore(mnemonic, operands)
	case "addi", "slti", "sltiu", "xori", "ori", "andi":
		return assembleIType(mnemonic, operands)
	case "addiw":
		return assembleIType(mnemonic, operands)
	case "slli", "srli", "srai":
		return assembleShift(mnemonic, operands, false)
	case "slliw", "srliw", "sraiw":
		return assembleShift(mnemonic, operands, true)
	case "add", "sub", "sll", "slt", "sltu", "xor", "srl", "sra", "or", "and",
		"addw", "subw", "sllw", "srlw", "sraw",
		"mul", "mulh", "mulhsu", "mulhu", "div", "divu", "rem", "remu",
		"mulw", "divw", "divuw", "remw", "remuw":
		return assembleRType(mnemonic, operands)
	case "fence":
		return assembleFence(parts, operands)
	case "ecall":
		return expectBare("ecall", isa.ECALL, operands)
	case "ebreak":
		return expectBare("ebreak", isa.EBREAK, operands)
	case "lr", "sc", "amoswap", "amoadd", "amoxor", "amoand", "amoor",
		"amomin", "amomax", "amominu", "amomaxu":
		return assembleAMO(mnemonic, parts[1:], operands)
	case "flw":
		return assembleFLW(operands)
	case "fsw":
		return assembleFSW(operands)
	case "fmadd", "fmsub", "fnmsub", "fnmadd":
		return assembleFMA(mnemonic, parts[1:], operands)
	case "fadd", "fsub", "fmul", "fdiv":
		return assembleFArith(mnemonic, parts[1:], operands)
	case "fsqrt":
		return assembleFSqrt(parts[1:], operands)
	case "fsgnj", "fsgnjn", "fsgnjx", "fmin", "fmax":
		return assembleFNoRound(mnemonic, parts[1:], operands)
	case "fcvt":
		return assembleFCvt(parts[1:], operands)
	case "fmv":
		return assembleFMv(parts[1:], operands)
	case "feq", "flt", "fle":
		return assembleFCompare(mnemonic, parts[1:], operands)
	case "fclass":
		return assembleFClass(parts[1:], operands)
	case "csrrw", "csrrs", "csrrc":
		return assembleCSR(mnemonic, operands)
	case "csrrwi", "csrrsi", "csrrci":
		return assembleCSRI(mnemonic, operands)
	default:
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, mnemonic, "unknown mnemonic")
	}
}

func expectBare(name string, op isa.Op, operands []string) (isa.Instruction, error) {
	if err := expectArity(name, operands, 0); err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: op}, nil
}

func parseIntRegOperand(tok string) (reg.IntReg, error) { return reg.ParseIntReg(tok) }
