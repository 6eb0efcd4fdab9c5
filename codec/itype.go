package codec

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

var opImmOps = map[uint32]isa.Op{
	0x0: isa.ADDI, 0x2: isa.SLTI, 0x3: isa.SLTIU,
	0x4: isa.XORI, 0x6: isa.ORI, 0x7: isa.ANDI,
}

var opImm32Ops = map[uint32]isa.Op{
	0x0: isa.ADDIW,
}

var loadOps = map[uint32]isa.Op{
	0x0: isa.LB, 0x1: isa.LH, 0x2: isa.LW, 0x3: isa.LD,
	0x4: isa.LBU, 0x5: isa.LHU, 0x6: isa.LWU,
}

func decodeOpImm(word uint32) (isa.Instruction, error) {
	f3 := funct3(word)
	switch f3 {
	case 0x1: // SLLI
		if funct7(word)>>1 != 0 {
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "reserved SLLI shift-type bits")
		}
		return isa.Instruction{Op: isa.SLLI, Rd: rd(word), Rs1: rs1(word), Imm: imm.ShamtFromWord(word)}, nil
	case 0x5: // SRLI/SRAI
		switch funct7(word) >> 1 {
		case 0x00:
			return isa.Instruction{Op: isa.SRLI, Rd: rd(word), Rs1: rs1(word), Imm: imm.ShamtFromWord(word)}, nil
		case 0x10:
			return isa.Instruction{Op: isa.SRAI, Rd: rd(word), Rs1: rs1(word), Imm: imm.ShamtFromWord(word)}, nil
		default:
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "reserved SRLI/SRAI shift-type bits")
		}
	default:
		op, ok := opImmOps[f3]
		if !ok {
			return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved OP-IMM funct3=%#x", f3)
		}
		return isa.Instruction{Op: op, Rd: rd(word), Rs1: rs1(word), Imm: imm.IFromWord(word)}, nil
	}
}

func decodeOpImm32(word uint32) (isa.Instruction, error) {
	f3 := funct3(word)
	switch f3 {
	case 0x1: // SLLIW
		if funct7(word) != 0 {
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "reserved SLLIW shift-type bits")
		}
		return isa.Instruction{Op: isa.SLLIW, Rd: rd(word), Rs1: rs1(word), Imm: imm.ShamtWFromWord(word)}, nil
	case 0x5: // SRLIW/SRAIW
		switch funct7(word) {
		case 0x00:
			return isa.Instruction{Op: isa.SRLIW, Rd: rd(word), Rs1: rs1(word), Imm: imm.ShamtWFromWord(word)}, nil
		case 0x20:
			return isa.Instruction{Op: isa.SRAIW, Rd: rd(word), Rs1: rs1(word), Imm: imm.ShamtWFromWord(word)}, nil
		default:
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "reserved SRLIW/SRAIW shift-type bits")
		}
	default:
		op, ok := opImm32Ops[f3]
		if !ok {
			return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved OP-IMM-32 funct3=%#x", f3)
		}
		return isa.Instruction{Op: op, Rd: rd(word), Rs1: rs1(word), Imm: imm.IFromWord(word)}, nil
	}
}

func decodeLoad(word uint32) (isa.Instruction, error) {
	op, ok := loadOps[funct3(word)]
	if !ok {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved LOAD funct3=%#x", funct3(word))
	}
	return isa.Instruction{Op: op, Rd: rd(word), Rs1: rs1(word), Imm: imm.IFromWord(word)}, nil
}

func decodeJALR(word uint32) (isa.Instruction, error) {
	if funct3(word) != 0 {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved JALR funct3=%#x", funct3(word))
	}
	return isa.Instruction{Op: isa.JALR, Rd: rd(word), Rs1: rs1(word), Imm: imm.IFromWord(word)}, nil
}

func encodeOpImm(i isa.Instruction) (uint32, error) {
	switch i.Op {
	case isa.SLLI:
		return uint32(isa.OpOpImm) | emitFunct3(0x1) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.Shamt).Emit(), nil
	case isa.SRLI:
		return uint32(isa.OpOpImm) | emitFunct3(0x5) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.Shamt).Emit(), nil
	case isa.SRAI:
		return uint32(isa.OpOpImm) | emitFunct3(0x5) | emitFunct7(0x20) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.Shamt).Emit(), nil
	}
	for f3, op := range opImmOps {
		if op == i.Op {
			return uint32(isa.OpOpImm) | emitFunct3(f3) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.I).Emit(), nil
		}
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not an OP-IMM op", i.Op)
}

func encodeOpImm32(i isa.Instruction) (uint32, error) {
	switch i.Op {
	case isa.SLLIW:
		return uint32(isa.OpOpImm32) | emitFunct3(0x1) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.ShamtW).Emit(), nil
	case isa.SRLIW:
		return uint32(isa.OpOpImm32) | emitFunct3(0x5) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.ShamtW).Emit(), nil
	case isa.SRAIW:
		return uint32(isa.OpOpImm32) | emitFunct3(0x5) | emitFunct7(0x20) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.ShamtW).Emit(), nil
	case isa.ADDIW:
		return uint32(isa.OpOpImm32) | emitFunct3(0x0) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.I).Emit(), nil
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not an OP-IMM-32 op", i.Op)
}

func encodeLoad(i isa.Instruction) (uint32, error) {
	for f3, op := range loadOps {
		if op == i.Op {
			return uint32(isa.OpLoad) | emitFunct3(f3) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.I).Emit(), nil
		}
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not a LOAD op", i.Op)
}

func encodeJALR(i isa.Instruction) (uint32, error) {
	return uint32(isa.OpJALR) | emitRd(i.Rd) | emitRs1(i.Rs1) | i.Imm.(imm.I).Emit(), nil
}
