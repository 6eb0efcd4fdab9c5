package codec

import (
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// rTypeOps maps (funct3, funct7) to an Op for the OP opcode, including
// the M-extension multiply/divide ops which share the OP opcode but use
// funct7=0000001. rTypeWOps below does the same for OP-32.
var rTypeOps = map[[2]uint32]isa.Op{
	{0x0, 0x00}: isa.ADD, {0x0, 0x20}: isa.SUB, {0x1, 0x00}: isa.SLL,
	{0x2, 0x00}: isa.SLT, {0x3, 0x00}: isa.SLTU, {0x4, 0x00}: isa.XOR,
	{0x5, 0x00}: isa.SRL, {0x5, 0x20}: isa.SRA, {0x6, 0x00}: isa.OR, {0x7, 0x00}: isa.AND,

	{0x0, 0x01}: isa.MUL, {0x1, 0x01}: isa.MULH, {0x2, 0x01}: isa.MULHSU, {0x3, 0x01}: isa.MULHU,
	{0x4, 0x01}: isa.DIV, {0x5, 0x01}: isa.DIVU, {0x6, 0x01}: isa.REM, {0x7, 0x01}: isa.REMU,
}

var rTypeWOps = map[[2]uint32]isa.Op{
	{0x0, 0x00}: isa.ADDW, {0x0, 0x20}: isa.SUBW, {0x1, 0x00}: isa.SLLW,
	{0x5, 0x00}: isa.SRLW, {0x5, 0x20}: isa.SRAW,

	{0x0, 0x01}: isa.MULW, {0x4, 0x01}: isa.DIVW, {0x5, 0x01}: isa.DIVUW,
	{0x6, 0x01}: isa.REMW, {0x7, 0x01}: isa.REMUW,
}

func decodeRType(word uint32) (isa.Instruction, error) {
	key := [2]uint32{funct3(word), funct7(word)}
	op, ok := rTypeOps[key]
	if !ok {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved OP encoding funct3=%#x funct7=%#x", key[0], key[1])
	}
	return isa.Instruction{Op: op, Rd: rd(word), Rs1: rs1(word), Rs2: rs2(word)}, nil
}

func decodeRTypeW(word uint32) (isa.Instruction, error) {
	key := [2]uint32{funct3(word), funct7(word)}
	op, ok := rTypeWOps[key]
	if !ok {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved OP-32 encoding funct3=%#x funct7=%#x", key[0], key[1])
	}
	return isa.Instruction{Op: op, Rd: rd(word), Rs1: rs1(word), Rs2: rs2(word)}, nil
}

func encodeRType(i isa.Instruction) (uint32, error) {
	for k, op := range rTypeOps {
		if op == i.Op {
			return uint32(isa.OpOp) | emitFunct3(k[0]) | emitFunct7(k[1]) | emitRd(i.Rd) | emitRs1(i.Rs1) | emitRs2(i.Rs2), nil
		}
	}
	for k, op := range rTypeWOps {
		if op == i.Op {
			return uint32(isa.OpOp32) | emitFunct3(k[0]) | emitFunct7(k[1]) | emitRd(i.Rd) | emitRs1(i.Rs1) | emitRs2(i.Rs2), nil
		}
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not an R-type op", i.Op)
}
