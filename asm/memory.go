package asm

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// assembleJAL parses "jal rd,imm".
func assembleJAL(mnemonic string, operands []string) (isa.Instruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	v, err := parseInt(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	j, err := imm.NewJ(v)
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: isa.JAL, Rd: rd, Imm: j}, nil
}

// assembleJALR parses "jalr rd,imm(rs1)".
func assembleJALR(mnemonic string, operands []string) (isa.Instruction, error) {
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
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
	return isa.Instruction{Op: isa.JALR, Rd: rd, Rs1: rs1, Imm: i}, nil
}

// assembleBranch parses "b<cc> rs1,rs2,imm".
func assembleBranch(mnemonic string, operands []string) (isa.Instruction, error) {
	op, ok := isa.ParseOp(mnemonic)
	if !ok {
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, mnemonic, "unknown mnemonic")
	}
	if err := expectArity(mnemonic, operands, 3); err != nil {
		return isa.Instruction{}, err
	}
	rs1, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	rs2, err := reg.ParseIntReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	v, err := parseInt(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	b, err := imm.NewB(v)
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: op, Rs1: rs1, Rs2: rs2, Imm: b}, nil
}

// assembleLoad parses "l<x> rd,offset(rs1)".
func assembleLoad(mnemonic string, operands []string) (isa.Instruction, error) {
	op, ok := isa.ParseOp(mnemonic)
	if !ok {
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, mnemonic, "unknown mnemonic")
	}
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
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
	return isa.Instruction{Op: op, Rd: rd, Rs1: rs1, Imm: i}, nil
}

// assembleStore parses "s<x> rs2,offset(rs1)" — note the asymmetry with
// assembleLoad: the source value comes first and the base register is
// nested inside the address expression.
func assembleStore(mnemonic string, operands []string) (isa.Instruction, error) {
	op, ok := isa.ParseOp(mnemonic)
	if !ok {
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, mnemonic, "unknown mnemonic")
	}
	if err := expectArity(mnemonic, operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	rs2, err := reg.ParseIntReg(operands[0])
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
	return isa.Instruction{Op: op, Rs1: rs1, Rs2: rs2, Imm: s}, nil
}
