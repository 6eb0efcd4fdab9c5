package codec

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// signExtend16 sign-extends the low `bits` bits of v (held in a uint32)
// to an int64. Mirrors imm.signExtend; kept local since the scattered
// displacements below (C.ADDI16SP, C.J, the *SP load/store forms)
// don't correspond to one of the fourteen named immediate families and
// are represented as imm.Raw instead.
func signExtend16(v uint32, bits uint) int64 {
	shift := 32 - bits
	return int64(int32(v<<shift) >> shift)
}

func addi16spImm(half uint16) int64 {
	b9 := uint32(half>>12) & 0x1
	b4 := uint32(half>>6) & 0x1
	b6 := uint32(half>>5) & 0x1
	b8_7 := uint32(half>>3) & 0x3
	b5 := uint32(half>>2) & 0x1
	u := (b9 << 9) | (b8_7 << 7) | (b6 << 6) | (b5 << 5) | (b4 << 4)
	return signExtend16(u, 10)
}

func emitAddi16spImm(v int64) uint16 {
	u := uint16(v) & 0x3FF
	b9 := (u >> 9) & 0x1
	b8_7 := (u >> 7) & 0x3
	b6 := (u >> 6) & 0x1
	b5 := (u >> 5) & 0x1
	b4 := (u >> 4) & 0x1
	return (b9 << 12) | (b8_7 << 3) | (b6 << 5) | (b5 << 2) | (b4 << 6)
}

func cjImm(half uint16) int64 {
	b11 := uint32(half>>12) & 0x1
	b4 := uint32(half>>11) & 0x1
	b9_8 := uint32(half>>9) & 0x3
	b10 := uint32(half>>8) & 0x1
	b6 := uint32(half>>7) & 0x1
	b7 := uint32(half>>6) & 0x1
	b3_1 := uint32(half>>3) & 0x7
	b5 := uint32(half>>2) & 0x1
	u := (b11 << 11) | (b4 << 4) | (b9_8 << 8) | (b10 << 10) | (b6 << 6) | (b7 << 7) | (b3_1 << 1) | (b5 << 5)
	return signExtend16(u, 12)
}

func emitCjImm(v int64) uint16 {
	u := uint16(v) & 0xFFF
	b11 := (u >> 11) & 0x1
	b4 := (u >> 4) & 0x1
	b9_8 := (u >> 8) & 0x3
	b10 := (u >> 10) & 0x1
	b6 := (u >> 6) & 0x1
	b7 := (u >> 7) & 0x1
	b3_1 := (u >> 1) & 0x7
	b5 := (u >> 5) & 0x1
	return (b11 << 12) | (b4 << 11) | (b9_8 << 9) | (b10 << 8) | (b6 << 7) | (b7 << 6) | (b3_1 << 3) | (b5 << 2)
}

func lwspImm(half uint16) int64 {
	b5 := uint16(half>>12) & 0x1
	b4_2 := uint16(half>>4) & 0x7
	b7_6 := uint16(half>>2) & 0x3
	return int64((b5 << 5) | (b4_2 << 2) | (b7_6 << 6))
}

func emitLwspImm(v int64) uint16 {
	u := uint16(v) & 0xFF
	b5 := (u >> 5) & 0x1
	b4_2 := (u >> 2) & 0x7
	b7_6 := (u >> 6) & 0x3
	return (b5 << 12) | (b4_2 << 4) | (b7_6 << 2)
}

func ldspImm(half uint16) int64 {
	b5 := uint16(half>>12) & 0x1
	b4_3 := uint16(half>>5) & 0x3
	b8_6 := uint16(half>>2) & 0x7
	return int64((b5 << 5) | (b4_3 << 3) | (b8_6 << 6))
}

func emitLdspImm(v int64) uint16 {
	u := uint16(v) & 0x1FF
	b5 := (u >> 5) & 0x1
	b4_3 := (u >> 3) & 0x3
	b8_6 := (u >> 6) & 0x7
	return (b5 << 12) | (b4_3 << 5) | (b8_6 << 2)
}

func swspImm(half uint16) int64 {
	b5_2 := uint16(half>>9) & 0xF
	b7_6 := uint16(half>>7) & 0x3
	return int64((b5_2 << 2) | (b7_6 << 6))
}

func emitSwspImm(v int64) uint16 {
	u := uint16(v) & 0xFF
	b5_2 := (u >> 2) & 0xF
	b7_6 := (u >> 6) & 0x3
	return (b5_2 << 9) | (b7_6 << 7)
}

func sdspImm(half uint16) int64 {
	b5_3 := uint16(half>>10) & 0x7
	b8_6 := uint16(half>>7) & 0x7
	return int64((b5_3 << 3) | (b8_6 << 6))
}

func emitSdspImm(v int64) uint16 {
	u := uint16(v) & 0x1FF
	b5_3 := (u >> 3) & 0x7
	b8_6 := (u >> 6) & 0x7
	return (b5_3 << 10) | (b8_6 << 7)
}

// DecodeCompressed decodes a 16-bit compressed instruction word.
func DecodeCompressed(half uint16) (isa.CInstruction, error) {
	switch cOpcode(half) {
	case 0b00:
		return decodeQuadrant0(half)
	case 0b01:
		return decodeQuadrant1(half)
	case 0b10:
		return decodeQuadrant2(half)
	default:
		return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "quadrant 3 (0b11) is an uncompressed word, not a compressed instruction")
	}
}

func decodeQuadrant0(half uint16) (isa.CInstruction, error) {
	switch cFunct3(half) {
	case 0b000:
		iw := imm.CIWFromHalf(half)
		if iw.Val() == 0 {
			return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "C.ADDI4SPN requires a nonzero immediate")
		}
		return isa.CInstruction{Op: isa.CADDI4SPN, Rd: cRdLow(half).ToIntReg(), Rs1: reg.StackPointer, Imm: iw}, nil
	case 0b010:
		return isa.CInstruction{Op: isa.CLW, Rd: cRdLow(half).ToIntReg(), Rs1: cRs1Short(half).ToIntReg(), Imm: imm.CWFromHalf(half)}, nil
	case 0b011:
		return isa.CInstruction{Op: isa.CLD, Rd: cRdLow(half).ToIntReg(), Rs1: cRs1Short(half).ToIntReg(), Imm: imm.CDFromHalf(half)}, nil
	case 0b110:
		return isa.CInstruction{Op: isa.CSW, Rs1: cRs1Short(half).ToIntReg(), Rs2: cRs2Short(half).ToIntReg(), Imm: imm.CWFromHalf(half)}, nil
	case 0b111:
		return isa.CInstruction{Op: isa.CSD, Rs1: cRs1Short(half).ToIntReg(), Rs2: cRs2Short(half).ToIntReg(), Imm: imm.CDFromHalf(half)}, nil
	default:
		return isa.CInstruction{}, rverr.Newf(rverr.MalformedWord, "reserved quadrant-0 funct3=%#03b", cFunct3(half))
	}
}

func decodeQuadrant1(half uint16) (isa.CInstruction, error) {
	switch cFunct3(half) {
	case 0b000:
		rd := cRd(half)
		ci := imm.CIFromHalf(half)
		if rd == 0 {
			if ci.Val() != 0 {
				return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "HINT encoding of C.ADDI/C.NOP not supported")
			}
			return isa.CInstruction{Op: isa.CNOP}, nil
		}
		return isa.CInstruction{Op: isa.CADDI, Rd: rd, Rs1: rd, Imm: ci}, nil
	case 0b001:
		rd := cRd(half)
		if rd == 0 {
			return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "C.ADDIW requires rd != 0")
		}
		return isa.CInstruction{Op: isa.CADDIW, Rd: rd, Rs1: rd, Imm: imm.CIFromHalf(half)}, nil
	case 0b010:
		return isa.CInstruction{Op: isa.CLI, Rd: cRd(half), Imm: imm.CIFromHalf(half)}, nil
	case 0b011:
		rd := cRd(half)
		if rd == reg.StackPointer {
			v := addi16spImm(half)
			if v == 0 {
				return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "C.ADDI16SP requires a nonzero immediate")
			}
			return isa.CInstruction{Op: isa.CADDI16SP, Rd: rd, Rs1: rd, Imm: imm.NewRaw(v)}, nil
		}
		if rd == 0 {
			return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "HINT encoding of C.LUI not supported")
		}
		ci := imm.CIFromHalf(half)
		if ci.Val() == 0 {
			return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "C.LUI requires a nonzero immediate")
		}
		return isa.CInstruction{Op: isa.CLUI, Rd: rd, Imm: ci}, nil
	case 0b100:
		return decodeQuadrant1Arith(half)
	case 0b101:
		return isa.CInstruction{Op: isa.CJ, Imm: imm.NewRaw(cjImm(half))}, nil
	case 0b110:
		return isa.CInstruction{Op: isa.CBEQZ, Rs1: cRs1Short(half).ToIntReg(), Imm: imm.CBFromHalf(half)}, nil
	case 0b111:
		return isa.CInstruction{Op: isa.CBNEZ, Rs1: cRs1Short(half).ToIntReg(), Imm: imm.CBFromHalf(half)}, nil
	default:
		return isa.CInstruction{}, rverr.Newf(rverr.MalformedWord, "reserved quadrant-1 funct3=%#03b", cFunct3(half))
	}
}

func decodeQuadrant1Arith(half uint16) (isa.CInstruction, error) {
	rd := cRdShort(half).ToIntReg()
	switch cFunct2High(half) {
	case 0b00:
		return isa.CInstruction{Op: isa.CSRLI, Rd: rd, Rs1: rd, Imm: imm.CShamtFromHalf(half)}, nil
	case 0b01:
		return isa.CInstruction{Op: isa.CSRAI, Rd: rd, Rs1: rd, Imm: imm.CShamtFromHalf(half)}, nil
	case 0b10:
		return isa.CInstruction{Op: isa.CANDI, Rd: rd, Rs1: rd, Imm: imm.CIFromHalf(half)}, nil
	case 0b11:
		rs2 := cRs2Short(half).ToIntReg()
		wide := (half>>12)&0x1 != 0
		switch cFunct2Low(half) {
		case 0b00:
			if wide {
				return isa.CInstruction{Op: isa.CSUBW, Rd: rd, Rs1: rd, Rs2: rs2}, nil
			}
			return isa.CInstruction{Op: isa.CSUB, Rd: rd, Rs1: rd, Rs2: rs2}, nil
		case 0b01:
			if wide {
				return isa.CInstruction{Op: isa.CADDW, Rd: rd, Rs1: rd, Rs2: rs2}, nil
			}
			return isa.CInstruction{Op: isa.CXOR, Rd: rd, Rs1: rd, Rs2: rs2}, nil
		case 0b10:
			if wide {
				return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "reserved quadrant-1 CA-format encoding")
			}
			return isa.CInstruction{Op: isa.COR, Rd: rd, Rs1: rd, Rs2: rs2}, nil
		default: // 0b11
			if wide {
				return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "reserved quadrant-1 CA-format encoding")
			}
			return isa.CInstruction{Op: isa.CAND, Rd: rd, Rs1: rd, Rs2: rs2}, nil
		}
	}
	return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "reserved quadrant-1 CA-format encoding")
}

func decodeQuadrant2(half uint16) (isa.CInstruction, error) {
	switch cFunct3(half) {
	case 0b000:
		return isa.CInstruction{Op: isa.CSLLI, Rd: cRd(half), Rs1: cRd(half), Imm: imm.CShamtFromHalf(half)}, nil
	case 0b010:
		rd := cRd(half)
		if rd == 0 {
			return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "C.LWSP requires rd != 0")
		}
		return isa.CInstruction{Op: isa.CLWSP, Rd: rd, Rs1: reg.StackPointer, Imm: imm.NewRaw(lwspImm(half))}, nil
	case 0b011:
		rd := cRd(half)
		if rd == 0 {
			return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "C.LDSP requires rd != 0")
		}
		return isa.CInstruction{Op: isa.CLDSP, Rd: rd, Rs1: reg.StackPointer, Imm: imm.NewRaw(ldspImm(half))}, nil
	case 0b100:
		return decodeQuadrant2Jump(half)
	case 0b110:
		return isa.CInstruction{Op: isa.CSWSP, Rs1: reg.StackPointer, Rs2: cRs2Full(half), Imm: imm.NewRaw(swspImm(half))}, nil
	case 0b111:
		return isa.CInstruction{Op: isa.CSDSP, Rs1: reg.StackPointer, Rs2: cRs2Full(half), Imm: imm.NewRaw(sdspImm(half))}, nil
	default:
		return isa.CInstruction{}, rverr.Newf(rverr.MalformedWord, "reserved quadrant-2 funct3=%#03b", cFunct3(half))
	}
}

func decodeQuadrant2Jump(half uint16) (isa.CInstruction, error) {
	rd := cRd(half)
	rs2 := cRs2Full(half)
	bit12 := (half>>12)&0x1 != 0
	switch {
	case !bit12 && rs2 == 0:
		if rd == 0 {
			return isa.CInstruction{}, rverr.New(rverr.MalformedWord, "C.JR requires rs1 != 0")
		}
		return isa.CInstruction{Op: isa.CJR, Rs1: rd}, nil
	case !bit12:
		return isa.CInstruction{Op: isa.CMV, Rd: rd, Rs2: rs2}, nil
	case bit12 && rd == 0 && rs2 == 0:
		return isa.CInstruction{Op: isa.CEBREAK}, nil
	case bit12 && rs2 == 0:
		return isa.CInstruction{Op: isa.CJALR, Rs1: rd}, nil
	default:
		return isa.CInstruction{Op: isa.CADD, Rd: rd, Rs1: rd, Rs2: rs2}, nil
	}
}

// EncodeCompressed encodes a CInstruction back into its 16-bit word.
func EncodeCompressed(c isa.CInstruction) (uint16, error) {
	switch c.Op {
	case isa.CADDI4SPN:
		rdShort, _ := reg.CRegFromIntReg(c.Rd)
		return 0b00 | emitCFunct3(0b000) | emitCRdLow(rdShort) | c.Imm.(imm.CIW).Emit(), nil
	case isa.CLW:
		rdShort, _ := reg.CRegFromIntReg(c.Rd)
		rs1Short, _ := reg.CRegFromIntReg(c.Rs1)
		return 0b00 | emitCFunct3(0b010) | emitCRdLow(rdShort) | emitCRs1Short(rs1Short) | c.Imm.(imm.CW).Emit(), nil
	case isa.CLD:
		rdShort, _ := reg.CRegFromIntReg(c.Rd)
		rs1Short, _ := reg.CRegFromIntReg(c.Rs1)
		return 0b00 | emitCFunct3(0b011) | emitCRdLow(rdShort) | emitCRs1Short(rs1Short) | c.Imm.(imm.CD).Emit(), nil
	case isa.CSW:
		rs2Short, _ := reg.CRegFromIntReg(c.Rs2)
		rs1Short, _ := reg.CRegFromIntReg(c.Rs1)
		return 0b00 | emitCFunct3(0b110) | emitCRs2Short(rs2Short) | emitCRs1Short(rs1Short) | c.Imm.(imm.CW).Emit(), nil
	case isa.CSD:
		rs2Short, _ := reg.CRegFromIntReg(c.Rs2)
		rs1Short, _ := reg.CRegFromIntReg(c.Rs1)
		return 0b00 | emitCFunct3(0b111) | emitCRs2Short(rs2Short) | emitCRs1Short(rs1Short) | c.Imm.(imm.CD).Emit(), nil
	case isa.CNOP:
		return 0b01, nil
	case isa.CADDI:
		return 0b01 | emitCFunct3(0b000) | emitCRd(c.Rd) | c.Imm.(imm.CI).Emit(), nil
	case isa.CADDIW:
		return 0b01 | emitCFunct3(0b001) | emitCRd(c.Rd) | c.Imm.(imm.CI).Emit(), nil
	case isa.CLI:
		return 0b01 | emitCFunct3(0b010) | emitCRd(c.Rd) | c.Imm.(imm.CI).Emit(), nil
	case isa.CADDI16SP:
		return 0b01 | emitCFunct3(0b011) | emitCRd(reg.StackPointer) | emitAddi16spImm(c.Imm.Val()), nil
	case isa.CLUI:
		return 0b01 | emitCFunct3(0b011) | emitCRd(c.Rd) | c.Imm.(imm.CI).Emit(), nil
	case isa.CSRLI:
		rd, _ := reg.CRegFromIntReg(c.Rd)
		return 0b01 | emitCFunct3(0b100) | emitCFunct2High(0b00) | emitCRdShort(rd) | c.Imm.(imm.CShamt).Emit(), nil
	case isa.CSRAI:
		rd, _ := reg.CRegFromIntReg(c.Rd)
		return 0b01 | emitCFunct3(0b100) | emitCFunct2High(0b01) | emitCRdShort(rd) | c.Imm.(imm.CShamt).Emit(), nil
	case isa.CANDI:
		rd, _ := reg.CRegFromIntReg(c.Rd)
		return 0b01 | emitCFunct3(0b100) | emitCFunct2High(0b10) | emitCRdShort(rd) | c.Imm.(imm.CI).Emit(), nil
	case isa.CSUB, isa.CXOR, isa.COR, isa.CAND, isa.CSUBW, isa.CADDW:
		return encodeQuadrant1CA(c)
	case isa.CJ:
		return 0b01 | emitCFunct3(0b101) | emitCjImm(c.Imm.Val()), nil
	case isa.CBEQZ:
		rs1, _ := reg.CRegFromIntReg(c.Rs1)
		return 0b01 | emitCFunct3(0b110) | emitCRs1Short(rs1) | c.Imm.(imm.CB).Emit(), nil
	case isa.CBNEZ:
		rs1, _ := reg.CRegFromIntReg(c.Rs1)
		return 0b01 | emitCFunct3(0b111) | emitCRs1Short(rs1) | c.Imm.(imm.CB).Emit(), nil
	case isa.CSLLI:
		return 0b10 | emitCFunct3(0b000) | emitCRd(c.Rd) | c.Imm.(imm.CShamt).Emit(), nil
	case isa.CLWSP:
		return 0b10 | emitCFunct3(0b010) | emitCRd(c.Rd) | emitLwspImm(c.Imm.Val()), nil
	case isa.CLDSP:
		return 0b10 | emitCFunct3(0b011) | emitCRd(c.Rd) | emitLdspImm(c.Imm.Val()), nil
	case isa.CJR:
		return 0b10 | emitCFunct3(0b100) | emitCRd(c.Rs1), nil
	case isa.CMV:
		return 0b10 | emitCFunct3(0b100) | emitCRd(c.Rd) | emitCRs2Full(c.Rs2), nil
	case isa.CEBREAK:
		return 0b10 | emitCFunct3(0b100) | (1 << 12), nil
	case isa.CJALR:
		return 0b10 | emitCFunct3(0b100) | (1 << 12) | emitCRd(c.Rs1), nil
	case isa.CADD:
		return 0b10 | emitCFunct3(0b100) | (1 << 12) | emitCRd(c.Rd) | emitCRs2Full(c.Rs2), nil
	case isa.CSWSP:
		return 0b10 | emitCFunct3(0b110) | emitCRs2Full(c.Rs2) | emitSwspImm(c.Imm.Val()), nil
	case isa.CSDSP:
		return 0b10 | emitCFunct3(0b111) | emitCRs2Full(c.Rs2) | emitSdspImm(c.Imm.Val()), nil
	default:
		return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not a supported compressed op", c.Op)
	}
}

func encodeQuadrant1CA(c isa.CInstruction) (uint16, error) {
	rd, _ := reg.CRegFromIntReg(c.Rd)
	rs2, _ := reg.CRegFromIntReg(c.Rs2)
	base := uint16(0b01) | emitCFunct3(0b100) | emitCFunct2High(0b11) | emitCRdShort(rd) | emitCRs2Short(rs2)
	switch c.Op {
	case isa.CSUB:
		return base | emitCFunct2Low(0b00), nil
	case isa.CXOR:
		return base | emitCFunct2Low(0b01), nil
	case isa.COR:
		return base | emitCFunct2Low(0b10), nil
	case isa.CAND:
		return base | emitCFunct2Low(0b11), nil
	case isa.CSUBW:
		return base | (1 << 12) | emitCFunct2Low(0b00), nil
	case isa.CADDW:
		return base | (1 << 12) | emitCFunct2Low(0b01), nil
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not a CA-format op", c.Op)
}

func emitCFunct3(f uint16) uint16     { return (f & 0x7) << 13 }
func emitCFunct2High(f uint16) uint16 { return (f & 0x3) << 10 }
func emitCFunct2Low(f uint16) uint16  { return (f & 0x3) << 5 }
