package codec

import (
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// The RV64A encoding: funct5 selects the atomic operation, funct3
// (0x2 word / 0x3 doubleword) selects the width.
var amoFunct5W = map[uint32]isa.Op{
	0b00010: isa.LRW, 0b00011: isa.SCW, 0b00001: isa.AMOSWAPW, 0b00000: isa.AMOADDW,
	0b00100: isa.AMOXORW, 0b01100: isa.AMOANDW, 0b01000: isa.AMOORW,
	0b10000: isa.AMOMINW, 0b10100: isa.AMOMAXW, 0b11000: isa.AMOMINUW, 0b11100: isa.AMOMAXUW,
}

var amoFunct5D = map[uint32]isa.Op{
	0b00010: isa.LRD, 0b00011: isa.SCD, 0b00001: isa.AMOSWAPD, 0b00000: isa.AMOADDD,
	0b00100: isa.AMOXORD, 0b01100: isa.AMOANDD, 0b01000: isa.AMOORD,
	0b10000: isa.AMOMIND, 0b10100: isa.AMOMAXD, 0b11000: isa.AMOMINUD, 0b11100: isa.AMOMAXUD,
}

func decodeAMO(word uint32) (isa.Instruction, error) {
	f3 := funct3(word)
	f5 := funct5(word)
	var table map[uint32]isa.Op
	switch f3 {
	case 0x2:
		table = amoFunct5W
	case 0x3:
		table = amoFunct5D
	default:
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved AMO funct3=%#x", f3)
	}
	op, ok := table[f5]
	if !ok {
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved AMO funct5=%#x", f5)
	}
	aq := (word>>26)&0x1 != 0
	rl := (word>>25)&0x1 != 0
	if op == isa.LRW || op == isa.LRD {
		if rs2(word) != 0 {
			return isa.Instruction{}, rverr.New(rverr.MalformedWord, "LR.W/LR.D source register 2 must be zero")
		}
		return isa.Instruction{Op: op, Rd: rd(word), Rs1: rs1(word), Aq: aq, Rl: rl}, nil
	}
	return isa.Instruction{Op: op, Rd: rd(word), Rs1: rs1(word), Rs2: rs2(word), Aq: aq, Rl: rl}, nil
}

func encodeAMO(i isa.Instruction) (uint32, error) {
	var f3 uint32
	var table map[uint32]isa.Op
	switch i.Op {
	case isa.LRW, isa.SCW, isa.AMOSWAPW, isa.AMOADDW, isa.AMOXORW, isa.AMOANDW, isa.AMOORW,
		isa.AMOMINW, isa.AMOMAXW, isa.AMOMINUW, isa.AMOMAXUW:
		f3, table = 0x2, amoFunct5W
	case isa.LRD, isa.SCD, isa.AMOSWAPD, isa.AMOADDD, isa.AMOXORD, isa.AMOANDD, isa.AMOORD,
		isa.AMOMIND, isa.AMOMAXD, isa.AMOMINUD, isa.AMOMAXUD:
		f3, table = 0x3, amoFunct5D
	default:
		return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not an AMO op", i.Op)
	}
	for f5, op := range table {
		if op != i.Op {
			continue
		}
		word := uint32(isa.OpAMO) | emitFunct3(f3) | emitFunct5(f5) | emitRd(i.Rd) | emitRs1(i.Rs1)
		if i.Aq {
			word |= 1 << 26
		}
		if i.Rl {
			word |= 1 << 25
		}
		if op == isa.LRW || op == isa.LRD {
			return word, nil
		}
		return word | emitRs2(i.Rs2), nil
	}
	return 0, rverr.Newf(rverr.UnknownMnemonic, "%s is not an AMO op", i.Op)
}
