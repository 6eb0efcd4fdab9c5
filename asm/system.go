package asm

import (
	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// assembleFence handles "fence pred,succ", "fence.tso rw,rw", and
// "fence.i". fence.tso accepts exactly rw,rw and nothing else.
func assembleFence(parts []string, operands []string) (isa.Instruction, error) {
	if len(parts) > 1 && parts[1] == "i" {
		if len(parts) > 2 {
			return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, parts[2], "fence.i takes no further suffix")
		}
		if err := expectArity("fence.i", operands, 0); err != nil {
			return isa.Instruction{}, err
		}
		return isa.Instruction{Op: isa.FENCEI}, nil
	}
	if len(parts) > 1 && parts[1] == "tso" {
		if len(parts) > 2 {
			return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, parts[2], "fence.tso takes no further suffix")
		}
		if err := expectArity("fence.tso", operands, 2); err != nil {
			return isa.Instruction{}, err
		}
		if operands[0] != "rw" || operands[1] != "rw" {
			return isa.Instruction{}, rverr.New(rverr.StructuralAssemblyError, "fence.tso requires exactly rw,rw")
		}
		return isa.Instruction{
			Op: isa.FENCE, FM: isa.FenceModeTSO,
			Pred: isa.FenceR | isa.FenceW, Succ: isa.FenceR | isa.FenceW,
		}, nil
	}
	if len(parts) > 1 {
		return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, parts[1], "unknown fence suffix")
	}
	if err := expectArity("fence", operands, 2); err != nil {
		return isa.Instruction{}, err
	}
	pred, err := isa.ParseFenceSet(operands[0])
	if err != nil {
		return isa.Instruction{}, err
	}
	succ, err := isa.ParseFenceSet(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: isa.FENCE, FM: isa.FenceModeNormal, Pred: pred, Succ: succ}, nil
}

// assembleCSR parses "csrr<op> rd,csr,rs1".
func assembleCSR(mnemonic string, operands []string) (isa.Instruction, error) {
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
	csr, err := isa.ParseCSR(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	rs1, err := reg.ParseIntReg(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: op, Rd: rd, CSR: csr, Rs1: rs1}, nil
}

// assembleCSRI parses "csrr<op>i rd,csr,uimm".
func assembleCSRI(mnemonic string, operands []string) (isa.Instruction, error) {
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
	csr, err := isa.ParseCSR(operands[1])
	if err != nil {
		return isa.Instruction{}, err
	}
	v, err := parseInt(operands[2])
	if err != nil {
		return isa.Instruction{}, err
	}
	ci, err := imm.NewCSRImm(v)
	if err != nil {
		return isa.Instruction{}, err
	}
	return isa.Instruction{Op: op, Rd: rd, CSR: csr, CSRUseImm: true, Imm: ci}, nil
}
