package codec

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

func decodeMiscMem(word uint32) (isa.Instruction, error) {
	switch funct3(word) {
	case 0x0:
		if rd(word) != 0 || rs1(word) != 0 {
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "FENCE requires rd=rs1=0")
		}
		pred, err := isa.NewFenceSet((word >> 24) & 0xF)
		if err != nil {
			return isa.Instruction{}, err
		}
		succ, err := isa.NewFenceSet((word >> 20) & 0xF)
		if err != nil {
			return isa.Instruction{}, err
		}
		fm, err := isa.NewFenceMode((word>>28)&0xF, pred, succ)
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: isa.FENCE, Pred: pred, Succ: succ, FM: fm}, nil
	case 0x1:
		if rd(word) != 0 || rs1(word) != 0 || (word>>20) != 0 {
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "FENCE.I requires rd=rs1=imm=0")
		}
		return isa.Instruction{Op: isa.FENCEI}, nil
	default:
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved MISC-MEM funct3=%#x", funct3(word))
	}
}

func encodeMiscMem(i isa.Instruction) (uint32, error) {
	switch i.Op {
	case isa.FENCE:
		return uint32(isa.OpMiscMem) | (uint32(i.FM) << 28) | (uint32(i.Pred) << 24) | (uint32(i.Succ) << 20), nil
	case isa.FENCEI:
		return uint32(isa.OpMiscMem) | emitFunct3(0x1), nil
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not a MISC-MEM op", i.Op)
}

var csrOps = map[uint32]isa.Op{
	0x1: isa.CSRRW, 0x2: isa.CSRRS, 0x3: isa.CSRRC,
	0x5: isa.CSRRWI, 0x6: isa.CSRRSI, 0x7: isa.CSRRCI,
}

func decodeSystem(word uint32) (isa.Instruction, error) {
	f3 := funct3(word)
	if f3 == 0x0 {
		switch (word >> 20) & 0xFFF {
		case 0x0:
			if rd(word) != 0 || rs1(word) != 0 {
				return isa.Instruction{}, rverr.New(rverr.MalformedWord, "ECALL requires rd=rs1=0")
			}
			return isa.Instruction{Op: isa.ECALL}, nil
		case 0x1:
			if rd(word) != 0 || rs1(word) != 0 {
				return isa.Instruction{}, rverr.New(rverr.MalformedWord, "EBREAK requires rd=rs1=0")
			}
			return isa.Instruction{Op: isa.EBREAK}, nil
		default:
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "reserved SYSTEM encoding")
		}
	}
	op, ok := csrOps[f3]
	if !ok {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved SYSTEM funct3=%#x", f3)
	}
	csr, err := isa.NewCSR((word >> 20) & 0xFFF)
	if err != nil {
		return isa.Instruction{}, err
	}
	switch op {
	case isa.CSRRW, isa.CSRRS, isa.CSRRC:
		return isa.Instruction{Op: op, Rd: rd(word), Rs1: rs1(word), CSR: csr}, nil
	default: // CSRRWI/SI/CI
		return isa.Instruction{Op: op, Rd: rd(word), CSR: csr, CSRUseImm: true, Imm: imm.CSRImmFromWord(word)}, nil
	}
}

func encodeSystem(i isa.Instruction) (uint32, error) {
	switch i.Op {
	case isa.ECALL:
		return uint32(isa.OpSystem), nil
	case isa.EBREAK:
		return uint32(isa.OpSystem) | (1 << 20), nil
	}
	for f3, op := range csrOps {
		if op != i.Op {
			continue
		}
		base := uint32(isa.OpSystem) | emitFunct3(f3) | emitRd(i.Rd) | (i.CSR.Addr() << 20)
		if i.CSRUseImm {
			return base | i.Imm.(imm.CSRImm).Emit(), nil
		}
		return base | emitRs1(i.Rs1), nil
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not a SYSTEM op", i.Op)
}
