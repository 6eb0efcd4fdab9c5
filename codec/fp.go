package codec

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

func decodeFMA(word uint32, op isa.Op) (isa.Instruction, error) {
	if funct2(word) != 0x0 {
		return isa.Instruction{}, rverr.New(rverr.MalformedWord, "only single-precision FMA is supported")
	}
	rm, err := isa.RoundingModeFromBits(funct3(word))
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: op, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word), Frs3: frs3(word), RM: rm}, nil
}

func decodeLoadFP(word uint32) (isa.Instruction, error) {
	if funct3(word) != 0x2 {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved LOAD-FP funct3=%#x", funct3(word))
	}
	return isa.Instruction{Op: isa.FLW, Frd: frd(word), Rs1: rs1(word), Imm: imm.IFromWord(word)}, nil
}

func decodeStoreFP(word uint32) (isa.Instruction, error) {
	if funct3(word) != 0x2 {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved STORE-FP funct3=%#x", funct3(word))
	}
	return isa.Instruction{Op: isa.FSW, Frs2: frs2(word), Rs1: rs1(word), Imm: imm.SFromWord(word)}, nil
}

func decodeOpFP(word uint32) (isa.Instruction, error) {
	f7 := funct7(word)
	f3 := funct3(word)
	r2 := (word >> 20) & 0x1F

	switch f7 {
	case 0b0000000:
		rm, err := isa.RoundingModeFromBits(f3)
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: isa.FADDS, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word), RM: rm}, nil
	case 0b0000100:
		rm, err := isa.RoundingModeFromBits(f3)
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: isa.FSUBS, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word), RM: rm}, nil
	case 0b0001000:
		rm, err := isa.RoundingModeFromBits(f3)
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: isa.FMULS, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word), RM: rm}, nil
	case 0b0001100:
		rm, err := isa.RoundingModeFromBits(f3)
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: isa.FDIVS, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word), RM: rm}, nil
	case 0b0101100:
		if r2 != 0 {
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "FSQRT.S requires rs2=0")
		}
		rm, err := isa.RoundingModeFromBits(f3)
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: isa.FSQRTS, Frd: frd(word), Frs1: frs1(word), RM: rm}, nil
	case 0b0010000:
		switch f3 {
		case 0x0:
			return isa.Instruction{Op: isa.FSGNJS, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word)}, nil
		case 0x1:
			return isa.Instruction{Op: isa.FSGNJNS, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word)}, nil
		case 0x2:
			return isa.Instruction{Op: isa.FSGNJXS, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word)}, nil
		default:
			return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved FSGNJ funct3=%#x", f3)
		}
	case 0b0010100:
		switch f3 {
		case 0x0:
			return isa.Instruction{Op: isa.FMINS, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word)}, nil
		case 0x1:
			return isa.Instruction{Op: isa.FMAXS, Frd: frd(word), Frs1: frs1(word), Frs2: frs2(word)}, nil
		default:
			return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved FMIN/FMAX funct3=%#x", f3)
		}
	case 0b1100000:
		rm, err := isa.RoundingModeFromBits(f3)
		if err != nil {
			return isa.Instruction{}, err
		}
		var op isa.Op
		switch r2 {
		case 0x0:
			op = isa.FCVTWS
		case 0x1:
			op = isa.FCVTWUS
		case 0x2:
			op = isa.FCVTLS
		case 0x3:
			op = isa.FCVTLUS
		default:
			return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved FCVT.int.S rs2=%#x", r2)
		}
		return isa.Instruction{Op: op, Rd: rd(word), Frs1: frs1(word), RM: rm}, nil
	case 0b1101000:
		rm, err := isa.RoundingModeFromBits(f3)
		if err != nil {
			return isa.Instruction{}, err
		}
		var op isa.Op
		switch r2 {
		case 0x0:
			op = isa.FCVTSW
		case 0x1:
			op = isa.FCVTSWU
		case 0x2:
			op = isa.FCVTSL
		case 0x3:
			op = isa.FCVTSLU
		default:
			return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved FCVT.S.int rs2=%#x", r2)
		}
		return isa.Instruction{Op: op, Frd: frd(word), Rs1: rs1(word), RM: rm}, nil
	case 0b1110000:
		if r2 != 0 {
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "FMV.X.W/FCLASS.S require rs2=0")
		}
		switch f3 {
		case 0x0:
			return isa.Instruction{Op: isa.FMVXW, Rd: rd(word), Frs1: frs1(word)}, nil
		case 0x1:
			return isa.Instruction{Op: isa.FCLASSS, Rd: rd(word), Frs1: frs1(word)}, nil
		default:
			return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved FMV.X.W/FCLASS.S funct3=%#x", f3)
		}
	case 0b1111000:
		if r2 != 0 || f3 != 0 {
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "FMV.W.X requires rs2=0, funct3=0")
		}
		return isa.Instruction{Op: isa.FMVWX, Frd: frd(word), Rs1: rs1(word)}, nil
	case 0b1010000:
		switch f3 {
		case 0x2:
			return isa.Instruction{Op: isa.FEQS, Rd: rd(word), Frs1: frs1(word), Frs2: frs2(word)}, nil
		case 0x1:
			return isa.Instruction{Op: isa.FLTS, Rd: rd(word), Frs1: frs1(word), Frs2: frs2(word)}, nil
		case 0x0:
			return isa.Instruction{Op: isa.FLES, Rd: rd(word), Frs1: frs1(word), Frs2: frs2(word)}, nil
		default:
			return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved FEQ/FLT/FLE funct3=%#x", f3)
		}
	default:
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved OP-FP funct7=%#x", f7)
	}
}

func encodeLoadFP(i isa.Instruction) (uint32, error) {
	return uint32(isa.OpLoadFP) | emitFunct3(0x2) | emitFrd(i.Frd) | emitRs1(i.Rs1) | i.Imm.(imm.I).Emit(), nil
}

func encodeStoreFP(i isa.Instruction) (uint32, error) {
	return uint32(isa.OpStoreFP) | emitFunct3(0x2) | emitRs1(i.Rs1) | emitFrs2(i.Frs2) | i.Imm.(imm.S).Emit(), nil
}

func encodeFMA(i isa.Instruction, opcode isa.Opcode) uint32 {
	return uint32(opcode) | emitFunct3(uint32(i.RM)) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2) | emitFrs3(i.Frs3)
}

func encodeOpFP(i isa.Instruction) (uint32, error) {
	base := uint32(isa.OpOpFP)
	switch i.Op {
	case isa.FADDS:
		return base | emitFunct7(0b0000000) | emitFunct3(uint32(i.RM)) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FSUBS:
		return base | emitFunct7(0b0000100) | emitFunct3(uint32(i.RM)) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FMULS:
		return base | emitFunct7(0b0001000) | emitFunct3(uint32(i.RM)) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FDIVS:
		return base | emitFunct7(0b0001100) | emitFunct3(uint32(i.RM)) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FSQRTS:
		return base | emitFunct7(0b0101100) | emitFunct3(uint32(i.RM)) | emitFrd(i.Frd) | emitFrs1(i.Frs1), nil
	case isa.FSGNJS:
		return base | emitFunct7(0b0010000) | emitFunct3(0x0) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FSGNJNS:
		return base | emitFunct7(0b0010000) | emitFunct3(0x1) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FSGNJXS:
		return base | emitFunct7(0b0010000) | emitFunct3(0x2) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FMINS:
		return base | emitFunct7(0b0010100) | emitFunct3(0x0) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FMAXS:
		return base | emitFunct7(0b0010100) | emitFunct3(0x1) | emitFrd(i.Frd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FCVTWS:
		return base | emitFunct7(0b1100000) | emitFunct3(uint32(i.RM)) | (0x0 << 20) | emitRd(i.Rd) | emitFrs1(i.Frs1), nil
	case isa.FCVTWUS:
		return base | emitFunct7(0b1100000) | emitFunct3(uint32(i.RM)) | (0x1 << 20) | emitRd(i.Rd) | emitFrs1(i.Frs1), nil
	case isa.FCVTLS:
		return base | emitFunct7(0b1100000) | emitFunct3(uint32(i.RM)) | (0x2 << 20) | emitRd(i.Rd) | emitFrs1(i.Frs1), nil
	case isa.FCVTLUS:
		return base | emitFunct7(0b1100000) | emitFunct3(uint32(i.RM)) | (0x3 << 20) | emitRd(i.Rd) | emitFrs1(i.Frs1), nil
	case isa.FCVTSW:
		return base | emitFunct7(0b1101000) | emitFunct3(uint32(i.RM)) | (0x0 << 20) | emitFrd(i.Frd) | emitRs1(i.Rs1), nil
	case isa.FCVTSWU:
		return base | emitFunct7(0b1101000) | emitFunct3(uint32(i.RM)) | (0x1 << 20) | emitFrd(i.Frd) | emitRs1(i.Rs1), nil
	case isa.FCVTSL:
		return base | emitFunct7(0b1101000) | emitFunct3(uint32(i.RM)) | (0x2 << 20) | emitFrd(i.Frd) | emitRs1(i.Rs1), nil
	case isa.FCVTSLU:
		return base | emitFunct7(0b1101000) | emitFunct3(uint32(i.RM)) | (0x3 << 20) | emitFrd(i.Frd) | emitRs1(i.Rs1), nil
	case isa.FMVXW:
		return base | emitFunct7(0b1110000) | emitFunct3(0x0) | emitRd(i.Rd) | emitFrs1(i.Frs1), nil
	case isa.FCLASSS:
		return base | emitFunct7(0b1110000) | emitFunct3(0x1) | emitRd(i.Rd) | emitFrs1(i.Frs1), nil
	case isa.FMVWX:
		return base | emitFunct7(0b1111000) | emitFunct3(0x0) | emitFrd(i.Frd) | emitRs1(i.Rs1), nil
	case isa.FEQS:
		return base | emitFunct7(0b1010000) | emitFunct3(0x2) | emitRd(i.Rd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FLTS:
		return base | emitFunct7(0b1010000) | emitFunct3(0x1) | emitRd(i.Rd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	case isa.FLES:
		return base | emitFunct7(0b1010000) | emitFunct3(0x0) | emitRd(i.Rd) | emitFrs1(i.Frs1) | emitFrs2(i.Frs2), nil
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not an OP-FP op", i.Op)
}
