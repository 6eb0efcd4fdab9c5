package asm

import (
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

var amoOpsW = map[string]isa.Op{
	"sc": isa.SCW, "amoswap": isa.AMOSWAPW, "amoadd": isa.AMOADDW, "amoxor": isa.AMOXORW,
	"amoand": isa.AMOANDW, "amoor": isa.AMOORW, "amomin": isa.AMOMINW, "amomax": isa.AMOMAXW,
	"amominu": isa.AMOMINUW, "amomaxu": isa.AMOMAXUW,
}

var amoOpsD = map[string]isa.Op{
	"sc": isa.SCD, "amoswap": isa.AMOSWAPD, "amoadd": isa.AMOADDD, "amoxor": isa.AMOXORD,
	"amoand": isa.AMOANDD, "amoor": isa.AMOORD, "amomin": isa.AMOMIND, "amomax": isa.AMOMAXD,
	"amominu": isa.AMOMINUD, "amomaxu": isa.AMOMAXUD,
}

// assembleAMO parses "lr.<size>[.<ordering>] rd,rs1" (no source2) and
// "<amoop>.<size>[.<ordering>] rd,rs1,rs2" (destination, address,
// source) for the rest of the A extension.
func assembleAMO(mnemonic string, suffixParts []string, operands []string) (isa.Instruction, error) {
	if len(suffixParts) == 0 {
		return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, mnemonic, "expected a w or d size suffix")
	}
	size := suffixParts[0]
	if size != "w" && size != "d" {
		return isa.Instruction{}, rverr.WithField(rverr.BadSuffix, size, "expected w or d size suffix")
	}
	aq, rl, err := orderingSuffix(suffixParts[1:])
	if err != nil {
		return isa.Instruction{}, err
	}
	full := mnemonic + "." + size

	if mnemonic == "lr" {
		if err := expectArity(full, operands, 2); err != nil {
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
		op := isa.LRW
		if size == "d" {
			op = isa.LRD
		}
		return isa.Instruction{Op: op, Rd: rd, Rs1: rs1, Aq: aq, Rl: rl}, nil
	}

	table := amoOpsW
	if size == "d" {
		table = amoOpsD
	}
	op, ok := table[mnemonic]
	if !ok {
		return isa.Instruction{}, rverr.WithField(rverr.UnknownMnemonic, mnemonic, "unknown AMO mnemonic")
	}
	if err := expectArity(full, operands, 3); err != nil {
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
	return isa.Instruction{Op: op, Rd: rd, Rs1: rs1, Rs2: rs2, Aq: aq, Rl: rl}, nil
}
