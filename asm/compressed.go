package asm

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// parseCAddressableReg parses a full ABI register name and requires it
// to fall within the eight compressed-addressable registers (x8..x15),
// matching the 3-bit register fields of the quadrant-0/1 CL/CS/CA
// compressed formats.
func parseCAddressableReg(tok string) (reg.IntReg, error) {
	r, err := reg.ParseIntReg(tok)
	if err != nil {
		return 0, err
	}
	if _, ok := reg.CRegFromIntReg(r); !ok {
		return 0, rverr.WithField(rverr.UnknownOperand, tok, "must be one of s0,s1,a0-a5 for this compressed form")
	}
	return r, nil
}

func requireBareC(mnemonic string, operands []string) error {
	return expectArity(mnemonic, operands, 0)
}

// assembleCompressed parses the suffix-less 16-bit "c.<name>" mnemonics,
// mirroring the register/immediate invariants codec.DecodeCompressed
// enforces on the binary side.
func assembleCompressed(parts []string, operands []string) (isa.CInstruction, error) {
	if len(parts) != 1 {
		return isa.CInstruction{}, rverr.WithField(rverr.BadSuffix, "c", "compressed mnemonics take no dotted suffix")
	}
	mnemonic := "c." + parts[0]
	switch parts[0] {
	case "addi4spn":
		return assembleCADDI4SPN(mnemonic, operands)
	case "lw":
		return assembleCLoad(mnemonic, isa.CLW, operands)
	case "ld":
		return assembleCLoad(mnemonic, isa.CLD, operands)
	case "sw":
		return assembleCStore(mnemonic, isa.CSW, operands)
	case "sd":
		return assembleCStore(mnemonic, isa.CSD, operands)
	case "nop":
		if err := requireBareC(mnemonic, operands); err != nil {
			return isa.CInstruction{}, err
		}
		return isa.CInstruction{Op: isa.CNOP}, nil
	case "addi":
		return assembleCADDI(mnemonic, operands)
	case "addiw":
		return assembleCADDIW(mnemonic, operands)
	case "li":
		return assembleCLI(mnemonic, operands)
	case "addi16sp":
		return assembleCADDI16SP(mnemonic, operands)
	case "lui":
		return assembleCLUI(mnemonic, operands)
	case "srli":
		return assembleCShiftImm(mnemonic, isa.CSRLI, operands)
	case "srai":
		return assembleCShiftImm(mnemonic, isa.CSRAI, operands)
	case "andi":
		return assembleCANDI(mnemonic, operands)
	case "sub", "xor", "or", "and", "subw", "addw":
		return assembleCA(mnemonic, operands)
	case "j":
		return assembleCJ(mnemonic, operands)
	case "beqz":
		return assembleCBranchZ(mnemonic, isa.CBEQZ, operands)
	case "bnez":
		return assembleCBranchZ(mnemonic, isa.CBNEZ, operands)
	case "slli":
		return assembleCSLLI(mnemonic, operands)
	case "lwsp":
		return assembleCLoadSP(mnemonic, isa.CLWSP, 4, 252, operands)
	case "ldsp":
		return assembleCLoadSP(mnemonic, isa.CLDSP, 8, 504, operands)
	case "jr":
		return assembleCJR(mnemonic, operands)
	case "mv":
		return assembleCMV(mnemonic, operands)
	case "ebreak":
		if err := requireBareC(mnemonic, operands); err != nil {
			return isa.CInstruction{}, err
		}
		return isa.CInstruction{Op: isa.CEBREAK}, nil
	case "jalr":
		return assembleCJALR(mnemonic, operands)
	case "add":
		return assembleCADD(mnemonic, operands)
	case "swsp":
		return assembleCStoreSP(mnemonic, isa.CSWSP, 4, 252, operands)
	case "sdsp":
		return assembleCStoreSP(mnemonic, isa.CSDSP, 8, 504, operands)
	default:
		return isa.CInstruction{}, rverr.WithField(rverr.UnknownMnemonic, mnemonic, "unknown compressed mnemonic")
	}
}

func assembleCADDI4SPN(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := parseCAddressableReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if v == 0 {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.addi4spn requires a nonzero immediate")
	}
	iw, err := imm.NewCIW(v)
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: isa.CADDI4SPN, Rd: rd, Rs1: reg.StackPointer, Imm: iw}, nil
}

func assembleCLoad(mnemonic string, op isa.COp, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := parseCAddressableReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	offsetTok, baseTok, err := splitAddress(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	rs1, err := parseCAddressableReg(baseTok)
	if err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(offsetTok)
	if err != nil {
		return isa.CInstruction{}, err
	}
	var val imm.Value
	if op == isa.CLD {
		val, err = imm.NewCD(v)
	} else {
		val, err = imm.NewCW(v)
	}
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: op, Rd: rd, Rs1: rs1, Imm: val}, nil
}

func assembleCStore(mnemonic string, op isa.COp, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rs2, err := parseCAddressableReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	offsetTok, baseTok, err := splitAddress(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	rs1, err := parseCAddressableReg(baseTok)
	if err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(offsetTok)
	if err != nil {
		return isa.CInstruction{}, err
	}
	var val imm.Value
	if op == isa.CSD {
		val, err = imm.NewCD(v)
	} else {
		val, err = imm.NewCW(v)
	}
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: op, Rs1: rs1, Rs2: rs2, Imm: val}, nil
}

func assembleCADDI(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	ci, err := imm.NewCI(v)
	if err != nil {
		return isa.CInstruction{}, err
	}
	// rd=x0 mirrors the decode side: imm=0 is the C.NOP encoding, a
	// nonzero imm is an unsupported HINT.
	if rd == reg.Zero {
		if ci.Val() != 0 {
			return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.addi with rd=x0 and a nonzero immediate is a HINT encoding")
		}
		return isa.CInstruction{Op: isa.CNOP}, nil
	}
	return isa.CInstruction{Op: isa.CADDI, Rd: rd, Rs1: rd, Imm: ci}, nil
}

func assembleCADDIW(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if rd == reg.Zero {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.addiw requires rd != x0")
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	ci, err := imm.NewCI(v)
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: isa.CADDIW, Rd: rd, Rs1: rd, Imm: ci}, nil
}

func assembleCLI(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	ci, err := imm.NewCI(v)
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: isa.CLI, Rd: rd, Imm: ci}, nil
}

func assembleCADDI16SP(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 1); err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if v == 0 {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.addi16sp requires a nonzero immediate")
	}
	if v%16 != 0 || v < -512 || v > 496 {
		return isa.CInstruction{}, rverr.Newf(rverr.OutOfRangeImmediate, "c.addi16sp immediate %d must be a multiple of 16 in [-512,496]", v)
	}
	return isa.CInstruction{Op: isa.CADDI16SP, Rd: reg.StackPointer, Rs1: reg.StackPointer, Imm: imm.NewRaw(v)}, nil
}

func assembleCLUI(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if rd == reg.Zero || rd == reg.StackPointer {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.lui requires rd != x0, x2")
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if v == 0 {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.lui requires a nonzero immediate")
	}
	ci, err := imm.NewCI(v)
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: isa.CLUI, Rd: rd, Imm: ci}, nil
}

func assembleCShiftImm(mnemonic string, op isa.COp, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := parseCAddressableReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	sh, err := imm.NewCShamt(v)
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: op, Rd: rd, Rs1: rd, Imm: sh}, nil
}

func assembleCANDI(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := parseCAddressableReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	ci, err := imm.NewCI(v)
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: isa.CANDI, Rd: rd, Rs1: rd, Imm: ci}, nil
}

var cArithOps = map[string]isa.COp{
	"sub": isa.CSUB, "xor": isa.CXOR, "or": isa.COR, "and": isa.CAND,
	"subw": isa.CSUBW, "addw": isa.CADDW,
}

func assembleCA(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := parseCAddressableReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	rs2, err := parseCAddressableReg(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: cArithOps[mnemonic[2:]], Rd: rd, Rs1: rd, Rs2: rs2}, nil
}

func assembleCJ(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 1); err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if v%2 != 0 || v < -2048 || v > 2046 {
		return isa.CInstruction{}, rverr.Newf(rverr.OutOfRangeImmediate, "c.j immediate %d must be even in [-2048,2046]", v)
	}
	return isa.CInstruction{Op: isa.CJ, Imm: imm.NewRaw(v)}, nil
}

func assembleCBranchZ(mnemonic string, op isa.COp, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rs1, err := parseCAddressableReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	cb, err := imm.NewCB(v)
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: op, Rs1: rs1, Imm: cb}, nil
}

func assembleCSLLI(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	sh, err := imm.NewCShamt(v)
	if err != nil {
		return isa.CInstruction{}, err
	}
	return isa.CInstruction{Op: isa.CSLLI, Rd: rd, Rs1: rd, Imm: sh}, nil
}

func assembleCLoadSP(mnemonic string, op isa.COp, multiple, max int64, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if rd == reg.Zero {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, mnemonic+" requires rd != x0")
	}
	offsetTok, baseTok, err := splitAddress(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	base, err := reg.ParseIntReg(baseTok)
	if err != nil {
		return isa.CInstruction{}, err
	}
	if base != reg.StackPointer {
		return isa.CInstruction{}, rverr.WithField(rverr.StructuralAssemblyError, baseTok, mnemonic+" requires sp as its base register")
	}
	v, err := parseInt(offsetTok)
	if err != nil {
		return isa.CInstruction{}, err
	}
	if v%multiple != 0 || v < 0 || v > max {
		return isa.CInstruction{}, rverr.Newf(rverr.OutOfRangeImmediate, "%s immediate %d must be a multiple of %d in [0,%d]", mnemonic, v, multiple, max)
	}
	return isa.CInstruction{Op: op, Rd: rd, Rs1: reg.StackPointer, Imm: imm.NewRaw(v)}, nil
}

func assembleCStoreSP(mnemonic string, op isa.COp, multiple, max int64, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rs2, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	offsetTok, baseTok, err := splitAddress(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	base, err := reg.ParseIntReg(baseTok)
	if err != nil {
		return isa.CInstruction{}, err
	}
	if base != reg.StackPointer {
		return isa.CInstruction{}, rverr.WithField(rverr.StructuralAssemblyError, baseTok, mnemonic+" requires sp as its base register")
	}
	v, err := parseInt(offsetTok)
	if err != nil {
		return isa.CInstruction{}, err
	}
	if v%multiple != 0 || v < 0 || v > max {
		return isa.CInstruction{}, rverr.Newf(rverr.OutOfRangeImmediate, "%s immediate %d must be a multiple of %d in [0,%d]", mnemonic, v, multiple, max)
	}
	return isa.CInstruction{Op: op, Rs1: reg.StackPointer, Rs2: rs2, Imm: imm.NewRaw(v)}, nil
}

func assembleCJR(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 1); err != nil {
		return isa.CInstruction{}, err
	}
	rs1, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if rs1 == reg.Zero {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.jr requires rs1 != x0")
	}
	return isa.CInstruction{Op: isa.CJR, Rs1: rs1}, nil
}

func assembleCMV(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if rd == reg.Zero {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.mv requires rd != x0")
	}
	rs2, err := reg.ParseIntReg(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if rs2 == reg.Zero {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.mv requires rs2 != x0")
	}
	return isa.CInstruction{Op: isa.CMV, Rd: rd, Rs2: rs2}, nil
}

func assembleCJALR(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 1); err != nil {
		return isa.CInstruction{}, err
	}
	rs1, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if rs1 == reg.Zero {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.jalr requires rs1 != x0")
	}
	return isa.CInstruction{Op: isa.CJALR, Rs1: rs1}, nil
}

func assembleCADD(mnemonic string, operands []string) (isa.CInstruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.CInstruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if rd == reg.Zero {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.add requires rd != x0")
	}
	rs2, err := reg.ParseIntReg(operands[1])
	if err != nil {
		return isa.CInstruction{}, err
	}
	if rs2 == reg.Zero {
		return isa.CInstruction{}, rverr.New(rverr.StructuralAssemblyError, "c.add requires rs2 != x0")
	}
	return isa.CInstruction{Op: isa.CADD, Rd: rd, Rs1: rd, Rs2: rs2}, nil
}
