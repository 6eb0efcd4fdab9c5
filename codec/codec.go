package codec

import (
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// Decode converts a 32-bit instruction word into its tagged-sum value.
// It rejects every reserved encoding: unrecognized opcodes,
// funct3/funct7/funct5 combinations with no assigned meaning, and
// structural violations such as LR's source register 2 being nonzero.
func Decode(word uint32) (isa.Instruction, error) {
	if word&0x3 != 0x3 {
		return isa.Instruction{}, rverr.New(rverr.MalformedWord, "low two bits must be 11 for a 32-bit instruction word")
	}
	switch isa.OpcodeFromWord(word) {
	case isa.OpLoad:
		return decodeLoad(word)
	case isa.OpLoadFP:
		return decodeLoadFP(word)
	case isa.OpMiscMem:
		return decodeMiscMem(word)
	case isa.OpOpImm:
		return decodeOpImm(word)
	case isa.OpAUIPC:
		return decodeLUIAUIPC(word, isa.AUIPC)
	case isa.OpOpImm32:
		return decodeOpImm32(word)
	case isa.OpStore:
		return decodeStore(word)
	case isa.OpStoreFP:
		return decodeStoreFP(word)
	case isa.OpAMO:
		return decodeAMO(word)
	case isa.OpOp:
		return decodeRType(word)
	case isa.OpLUI:
		return decodeLUIAUIPC(word, isa.LUI)
	case isa.OpOp32:
		return decodeRTypeW(word)
	case isa.OpMAdd:
		return decodeFMA(word, isa.FMADDS)
	case isa.OpMSub:
		return decodeFMA(word, isa.FMSUBS)
	case isa.OpNmsub:
		return decodeFMA(word, isa.FNMSUBS)
	case isa.OpNmadd:
		return decodeFMA(word, isa.FNMADDS)
	case isa.OpOpFP:
		return decodeOpFP(word)
	case isa.OpBranch:
		return decodeBranch(word)
	case isa.OpJALR:
		return decodeJALR(word)
	case isa.OpJAL:
		return decodeJAL(word)
	case isa.OpSystem:
		return decodeSystem(word)
	default:
		return isa.Instruction{}, rverr.Newf(rverr.MalformedWord, "reserved opcode %#07b", word&0x7F)
	}
}

// Encode converts a tagged-sum instruction value back into its 32-bit
// machine word.
func Encode(i isa.Instruction) (uint32, error) {
	switch i.Op {
	case isa.LB, isa.LH, isa.LW, isa.LBU, isa.LHU, isa.LWU, isa.LD:
		return encodeLoad(i)
	case isa.FLW:
		return encodeLoadFP(i)
	case isa.FSW:
		return encodeStoreFP(i)
	case isa.FENCE, isa.FENCEI:
		return encodeMiscMem(i)
	case isa.ADDI, isa.SLTI, isa.SLTIU, isa.XORI, isa.ORI, isa.ANDI, isa.SLLI, isa.SRLI, isa.SRAI:
		return encodeOpImm(i)
	case isa.AUIPC, isa.LUI:
		return encodeLUIAUIPC(i)
	case isa.ADDIW, isa.SLLIW, isa.SRLIW, isa.SRAIW:
		return encodeOpImm32(i)
	case isa.SB, isa.SH, isa.SW, isa.SD:
		return encodeStore(i)
	case isa.LRW, isa.SCW, isa.AMOSWAPW, isa.AMOADDW, isa.AMOXORW, isa.AMOANDW, isa.AMOORW,
		isa.AMOMINW, isa.AMOMAXW, isa.AMOMINUW, isa.AMOMAXUW,
		isa.LRD, isa.SCD, isa.AMOSWAPD, isa.AMOADDD, isa.AMOXORD, isa.AMOANDD, isa.AMOORD,
		isa.AMOMIND, isa.AMOMAXD, isa.AMOMINUD, isa.AMOMAXUD:
		return encodeAMO(i)
	case isa.ADD, isa.SUB, isa.SLL, isa.SLT, isa.SLTU, isa.XOR, isa.SRL, isa.SRA, isa.OR, isa.AND,
		isa.ADDW, isa.SUBW, isa.SLLW, isa.SRLW, isa.SRAW,
		isa.MUL, isa.MULH, isa.MULHSU, isa.MULHU, isa.DIV, isa.DIVU, isa.REM, isa.REMU,
		isa.MULW, isa.DIVW, isa.DIVUW, isa.REMW, isa.REMUW:
		return encodeRType(i)
	case isa.FMADDS:
		return encodeFMA(i, isa.OpMAdd), nil
	case isa.FMSUBS:
		return encodeFMA(i, isa.OpMSub), nil
	case isa.FNMSUBS:
		return encodeFMA(i, isa.OpNmsub), nil
	case isa.FNMADDS:
		return encodeFMA(i, isa.OpNmadd), nil
	case isa.FADDS, isa.FSUBS, isa.FMULS, isa.FDIVS, isa.FSQRTS, isa.FSGNJS, isa.FSGNJNS, isa.FSGNJXS,
		isa.FMINS, isa.FMAXS, isa.FCVTWS, isa.FCVTWUS, isa.FCVTSW, isa.FCVTSWU,
		isa.FCVTLS, isa.FCVTLUS, isa.FCVTSL, isa.FCVTSLU, isa.FMVXW, isa.FMVWX,
		isa.FEQS, isa.FLTS, isa.FLES, isa.FCLASSS:
		return encodeOpFP(i)
	case isa.BEQ, isa.BNE, isa.BLT, isa.BGE, isa.BLTU, isa.BGEU:
		return encodeBranch(i)
	case isa.JALR:
		return encodeJALR(i)
	case isa.JAL:
		return encodeJAL(i)
	case isa.ECALL, isa.EBREAK, isa.CSRRW, isa.CSRRS, isa.CSRRC, isa.CSRRWI, isa.CSRRSI, isa.CSRRCI:
		return encodeSystem(i)
	default:
		return 0, rverr.Newf(rverr.UnknownMnemonic, "%s has no known encoding", i.Op)
	}
}
