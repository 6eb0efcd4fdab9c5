package codec

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

var branchOps = map[uint32]isa.Op{
	0x0: isa.BEQ, 0x1: isa.BNE, 0x4: isa.BLT, 0x5: isa.BGE, 0x6: isa.BLTU, 0x7: isa.BGEU,
}

func decodeBranch(word uint32) (isa.Instruction, error) {
	op, ok := branchOps[funct3(word)]
	if !ok {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved BRANCH funct3=%#x", funct3(word))
	}
	return isa.Instruction{Op: op, Rs1: rs1(word), Rs2: rs2(word), Imm: imm.BFromWord(word)}, nil
}

func encodeBranch(i isa.Instruction) (uint32, error) {
	for f3, op := range branchOps {
		if op == i.Op {
			return uint32(isa.OpBranch) | emitFunct3(f3) | emitRs1(i.Rs1) | emitRs2(i.Rs2) | i.Imm.(imm.B).Emit(), nil
		}
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not a BRANCH op", i.Op)
}

func decodeJAL(word uint32) (isa.Instruction, error) {
	return isa.Instruction{Op: isa.JAL, Rd: rd(word), Imm: imm.JFromWord(word)}, nil
}

func encodeJAL(i isa.Instruction) (uint32, error) {
	return uint32(isa.OpJAL) | emitRd(i.Rd) | i.Imm.(imm.J).Emit(), nil
}

func decodeLUIAUIPC(word uint32, op isa.Op) (isa.Instruction, error) {
	return isa.Instruction{Op: op, Rd: rd(word), Imm: imm.UFromWord(word)}, nil
}

func encodeLUIAUIPC(i isa.Instruction) (uint32, error) {
	var opcode isa.Opcode
	switch i.Op {
	case isa.LUI:
		opcode = isa.OpLUI
	case isa.AUIPC:
		opcode = isa.OpAUIPC
	default:
		return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not LUI/AUIPC", i.Op)
	}
	return uint32(opcode) | emitRd(i.Rd) | i.Imm.(imm.U).Emit(), nil
}
