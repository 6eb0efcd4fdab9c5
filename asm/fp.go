package asm

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// requireSinglePrecision consumes the mandatory "s" precision suffix
// that every F-extension mnemonic in this module carries; the D/Q/H
// extensions are unimplemented, so any other precision tag reads as an
// unknown mnemonic rather than a bad suffix.
func requireSinglePrecision(mnemonic string, suffixParts []string) ([]string, error) {
	if len(suffixParts) == 0 {
		return nil, rverr.WithField(rverr.BadSuffix, mnemonic, "expected a precision suffix")
	}
	if suffixParts[0] != "s" {
		return nil, rverr.WithField(rverr.UnknownMnemonic, mnemonic+"."+suffixParts[0], "only single precision is supported")
	}
	return suffixParts[1:], nil
}

// assembleFLW parses "flw frd,offset(rs1)".
func assembleFLW(operands []string) (isa.Instruction, error) {
	if err := expectArity("flw", operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	frd, err := reg.ParseFloatReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	offsetTok, baseTok, err := splitAddress(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	v, err := parseInt(offsetTok)
	if err != nil {
		return isa.Instruction{}, err
	}
	i, err := imm.NewI(v)
	if err != nil {
		return isa.Instruction{}, err
	}
	rs1, err := reg.ParseIntReg(baseTok)
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: isa.FLW, Frd: frd, Rs1: rs1, Imm: i}, nil
}

// assembleFSW parses "fsw frs2,offset(rs1)".
func assembleFSW(operands []string) (isa.Instruction, error) {
	if err := expectArity("fsw", operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	frs2, err := reg.ParseFloatReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	offsetTok, baseTok, err := splitAddress(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	v, err := parseInt(offsetTok)
	if err != nil {
		return isa.Instruction{}, err
	}
	s, err := imm.NewS(v)
	if err != nil {
		return isa.Instruction{}, err
	}
	rs1, err := reg.ParseIntReg(baseTok)
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: isa.FSW, Frs2: frs2, Rs1: rs1, Imm: s}, nil
}

var fmaOps = map[string]isa.Op{
	"fmadd": isa.FMADDS, "fmsub": isa.FMSUBS, "fnmsub": isa.FNMSUBS, "fnmadd": isa.FNMADDS,
}

// assembleFMA parses "fmadd.s[.<rm>] frd,frs1,frs2,frs3" and its three
// siblings.
func assembleFMA(mnemonic string, suffixParts []string, operands []string) (isa.Instruction, error) {
	rmParts, err := requireSinglePrecision(mnemonic, suffixParts)
	if err != nil {
		return isa.Instruction{}, err
	}
	rm, err := roundingSuffix(rmParts)
	if err != nil {
		return isa.Instruction{}, err
	}
	if err := expectArity(mnemonic, operands, 4); err != nil {
		return isa.Instruction{}, err
	}
	frd, err := reg.ParseFloatReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs1, err := reg.ParseFloatReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs2, err := reg.ParseFloatReg(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs3, err := reg.ParseFloatReg(operands[3])
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: fmaOps[mnemonic], Frd: frd, Frs1: frs1, Frs2: frs2, Frs3: frs3, RM: rm}, nil
}

var farithOps = map[string]isa.Op{
	"fadd": isa.FADDS, "fsub": isa.FSUBS, "fmul": isa.FMULS, "fdiv": isa.FDIVS,
}

// assembleFArith parses "fadd.s[.<rm>] frd,frs1,frs2" and its siblings.
func assembleFArith(mnemonic string, suffixParts []string, operands []string) (isa.Instruction, error) {
	rmParts, err := requireSinglePrecision(mnemonic, suffixParts)
	if err != nil {
		return isa.Instruction{}, err
	}
	rm, err := roundingSuffix(rmParts)
	if err != nil {
		return isa.Instruction{}, err
	}
	if err := expectArity(mnemonic, operands, 3); err != nil {
		return isa.Instruction{}, err
	}
	frd, err := reg.ParseFloatReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs1, err := reg.ParseFloatReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs2, err := reg.ParseFloatReg(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: farithOps[mnemonic], Frd: frd, Frs1: frs1, Frs2: frs2, RM: rm}, nil
}

// assembleFSqrt parses "fsqrt.s[.<rm>] frd,frs1".
func assembleFSqrt(suffixParts []string, operands []string) (isa.Instruction, error) {
	rmParts, err := requireSinglePrecision("fsqrt", suffixParts)
	if err != nil {
		return isa.Instruction{}, err
	}
	rm, err := roundingSuffix(rmParts)
	if err != nil {
		return isa.Instruction{}, err
	}
	if err := expectArity("fsqrt", operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	frd, err := reg.ParseFloatReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs1, err := reg.ParseFloatReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: isa.FSQRTS, Frd: frd, Frs1: frs1, RM: rm}, nil
}

var fNoRoundOps = map[string]isa.Op{
	"fsgnj": isa.FSGNJS, "fsgnjn": isa.FSGNJNS, "fsgnjx": isa.FSGNJXS,
	"fmin": isa.FMINS, "fmax": isa.FMAXS,
}

// assembleFNoRound parses "fsgnj.s frd,frs1,frs2" and the other
// sign-injection/min/max ops, none of which carry a rounding mode.
func assembleFNoRound(mnemonic string, suffixParts []string, operands []string) (isa.Instruction, error) {
	rest, err := requireSinglePrecision(mnemonic, suffixParts)
	if err != nil {
		return isa.Instruction{}, err
	}
	if len(rest) != 0 {
		return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, rest[0], "no further suffix expected")
	}
	if err := expectArity(mnemonic, operands, 3); err != nil {
		return isa.Instruction{}, err
	}
	frd, err := reg.ParseFloatReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs1, err := reg.ParseFloatReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs2, err := reg.ParseFloatReg(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: fNoRoundOps[mnemonic], Frd: frd, Frs1: frs1, Frs2: frs2}, nil
}

var fcvtToInt = map[string]isa.Op{"w": isa.FCVTWS, "wu": isa.FCVTWUS, "l": isa.FCVTLS, "lu": isa.FCVTLUS}
var fcvtToFloat = map[string]isa.Op{"w": isa.FCVTSW, "wu": isa.FCVTSWU, "l": isa.FCVTSL, "lu": isa.FCVTSLU}

// assembleFCvt parses "fcvt.<to>.<from>[.<rm>] rd,rs1", selecting one of
// the eight conversion variants by the (to,from) pair.
func assembleFCvt(suffixParts []string, operands []string) (isa.Instruction, error) {
	if len(suffixParts) < 2 {
		return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, "fcvt", "expected fcvt.<to>.<from>")
	}
	to, from := suffixParts[0], suffixParts[1]
	rm, err := roundingSuffix(suffixParts[2:])
	if err != nil {
		return isa.Instruction{}, err
	}
	if err := expectArity("fcvt", operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	switch {
	case from == "s":
		op, ok := fcvtToInt[to]
		if !ok {
			return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, "fcvt."+to+".s", "not a supported conversion")
		}
		rd, err := reg.ParseIntReg(operands[0])
		if err != nil {
			return isa.Instruction{}, err
		}
		frs1, err := reg.ParseFloatReg(operands[1])
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: op, Rd: rd, Frs1: frs1, RM: rm}, nil
	case to == "s":
		op, ok := fcvtToFloat[from]
		if !ok {
			return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, "fcvt.s."+from, "not a supported conversion")
		}
		frd, err := reg.ParseFloatReg(operands[0])
		if err != nil {
			return isa.Instruction{}, err
		}
		rs1, err := reg.ParseIntReg(operands[1])
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: op, Frd: frd, Rs1: rs1, RM: rm}, nil
	default:
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, "fcvt."+to+"."+from, "not a supported conversion")
	}
}

// assembleFMv parses "fmv.x.w rd,frs1" and "fmv.w.x frd,rs1" — the only
// two fmv variants this module accepts.
func assembleFMv(suffixParts []string, operands []string) (isa.Instruction, error) {
	if err := expectArity("fmv", operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	if len(suffixParts) != 2 {
		return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, "fmv", "expected fmv.x.w or fmv.w.x")
	}
	switch {
	case suffixParts[0] == "x" && suffixParts[1] == "w":
		rd, err := reg.ParseIntReg(operands[0])
		if err != nil {
			return isa.Instruction{}, err
		}
		frs1, err := reg.ParseFloatReg(operands[1])
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: isa.FMVXW, Rd: rd, Frs1: frs1}, nil
	case suffixParts[0] == "w" && suffixParts[1] == "x":
		frd, err := reg.ParseFloatReg(operands[0])
		if err != nil {
			return isa.Instruction{}, err
		}
		rs1, err := reg.ParseIntReg(operands[1])
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: isa.FMVWX, Frd: frd, Rs1: rs1}, nil
	default:
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, "fmv."+suffixParts[0]+"."+suffixParts[1], "fmv.x.w and fmv.w.x are the only supported forms")
	}
}

var fCompareOps = map[string]isa.Op{"feq": isa.FEQS, "flt": isa.FLTS, "fle": isa.FLES}

// assembleFCompare parses "feq.s rd,frs1,frs2" and its two siblings.
func assembleFCompare(mnemonic string, suffixParts []string, operands []string) (isa.Instruction, error) {
	rest, err := requireSinglePrecision(mnemonic, suffixParts)
	if err != nil {
		return isa.Instruction{}, err
	}
	if len(rest) != 0 {
		return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, rest[0], "no further suffix expected")
	}
	if err := expectArity(mnemonic, operands, 3); err != nil {
		return isa.Instruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs1, err := reg.ParseFloatReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs2, err := reg.ParseFloatReg(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: fCompareOps[mnemonic], Rd: rd, Frs1: frs1, Frs2: frs2}, nil
}

// assembleFClass parses "fclass.s rd,frs1".
func assembleFClass(suffixParts []string, operands []string) (isa.Instruction, error) {
	rest, err := requireSinglePrecision("fclass", suffixParts)
	if err != nil {
		return isa.Instruction{}, err
	}
	if len(rest) != 0 {
		return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, rest[0], "no further suffix expected")
	}
	if err := expectArity("fclass", operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	frs1, err := reg.ParseFloatReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: isa.FCLASSS, Rd: rd, Frs1: frs1}, nil
}
