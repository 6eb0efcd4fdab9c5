package asm

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// assembleU parses the two-operand rd,imm shape shared by LUI and AUIPC.
func assembleU(mnemonic string, op isa.Op, operands []string) (isa.Instruction, error) {
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
	u, err := imm.NewU(v)
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: op, Rd: rd, Imm: u}, nil
}

// assembleIType parses the rd,rs1,imm shape shared by ADDI/SLTI/.../ADDIW.
func assembleIType(mnemonic string, operands []string) (isa.Instruction, error) {
	op, ok := isa.ParseOp(mnemonic)
	if !ok {
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, mnemonic, "unknown mnemonic")
	}
	if err := expectArity(mnemonic, operands, 3); err != nil {
		return isa.Instruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	rs1, err := reg.ParseIntReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	v, err := parseInt(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	i, err := imm.NewI(v)
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: op, Rd: rd, Rs1: rs1, Imm: i}, nil
}

// assembleShift parses rd,rs1,shamt for SLLI/SRLI/SRAI (wide=false, 6-bit
// shamt) and SLLIW/SRLIW/SRAIW (wide=true, 5-bit shamt).
func assembleShift(mnemonic string, operands []string, wide bool) (isa.Instruction, error) {
	op, ok := isa.ParseOp(mnemonic)
	if !ok {
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, mnemonic, "unknown mnemonic")
	}
	if err := expectArity(mnemonic, operands, 3); err != nil {
		return isa.Instruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	rs1, err := reg.ParseIntReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	v, err := parseInt(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	if wide {
		sh, err := imm.NewShamtW(v)
		if err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: op, Rd: rd, Rs1: rs1, Imm: sh}, nil
	}
	sh, err := imm.NewShamt(v)
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: op, Rd: rd, Rs1: rs1, Imm: sh}, nil
}

// assembleRType parses the rd,rs1,rs2 shape shared by ADD/SUB/.../REMUW.
func assembleRType(mnemonic string, operands []string) (isa.Instruction, error) {
	op, ok := isa.ParseOp(mnemonic)
	if !ok {
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, mnemonic, "unknown mnemonic")
	}
	if err := expectArity(mnemonic, operands, 3); err != nil {
		return isa.Instruction{}, err
	}
	rd, err := reg.ParseIntReg(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	rs1, err := reg.ParseIntReg(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	rs2, err := reg.ParseIntReg(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: op, Rd: rd, Rs1: rs1, Rs2: rs2}, nil
}
