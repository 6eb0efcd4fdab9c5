package codec

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

var storeOps = map[uint32]isa.Op{
	0x0: isa.SB, 0x1: isa.SH, 0x2: isa.SW, 0x3: isa.SD,
}

func decodeStore(word uint32) (isa.Instruction, error) {
	op, ok := storeOps[funct3(word)]
	if !ok {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved STORE funct3=%#x", funct3(word))
	}
	return isa.Instruction{Op: op, Rs1: rs1(word), Rs2: rs2(word), Imm: imm.SFromWord(word)}, nil
}

func encodeStore(i isa.Instruction) (uint32, error) {
	for f3, op := range storeOps {
		if op == i.Op {
			return uint32(isa.OpStore) | emitFunct3(f3) | emitRs1(i.Rs1) | emitRs2(i.Rs2) | i.Imm.(imm.S).Emit(), nil
		}
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not a STORE op", i.Op)
}
