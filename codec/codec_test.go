package codec

import (
	"testing"

	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustI(v int64) imm.I     { i, err := imm.NewI(v); noErr(err); return i }
func mustS(v int64) imm.S     { s, err := imm.NewS(v); noErr(err); return s }
func mustB(v int64) imm.B     { b, err := imm.NewB(v); noErr(err); return b }
func mustU(v int64) imm.U     { u, err := imm.NewU(v); noErr(err); return u }
func mustJ(v int64) imm.J     { j, err := imm.NewJ(v); noErr(err); return j }
func mustShamt(v int64) imm.Shamt   { s, err := imm.NewShamt(v); noErr(err); return s }
func mustShamtW(v int64) imm.ShamtW { s, err := imm.NewShamtW(v); noErr(err); return s }

func noErr(err error) {
	if err != nil {
		panic(err)
	}
}

func roundTrip(t *testing.T, i isa.Instruction) uint32 {
	t.Helper()
	word, err := Encode(i)
	require.NoError(t, err)
	got, err := Decode(word)
	require.NoError(t, err)
	assert.Equal(t, i, got)
	return word
}

func TestOpImmRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{isa.ADDI, isa.SLTI, isa.SLTIU, isa.XORI, isa.ORI, isa.ANDI} {
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, Rs1: reg.A1, Imm: mustI(-100)})
	}
	roundTrip(t, isa.Instruction{Op: isa.SLLI, Rd: reg.A0, Rs1: reg.A1, Imm: mustShamt(31)})
	roundTrip(t, isa.Instruction{Op: isa.SRLI, Rd: reg.A0, Rs1: reg.A1, Imm: mustShamt(63)})
	roundTrip(t, isa.Instruction{Op: isa.SRAI, Rd: reg.A0, Rs1: reg.A1, Imm: mustShamt(1)})
}

func TestOpImmReservedShiftTypeBitsRejected(t *testing.T) {
	word := uint32(isa.OpOpImm) | emitFunct3(0x1) | emitFunct7(0x20) | emitRd(reg.A0) | emitRs1(reg.A1)
	_, err := Decode(word)
	require.Error(t, err)
}

func TestOpImm32RoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.ADDIW, Rd: reg.A0, Rs1: reg.A1, Imm: mustI(7)})
	roundTrip(t, isa.Instruction{Op: isa.SLLIW, Rd: reg.A0, Rs1: reg.A1, Imm: mustShamtW(31)})
	roundTrip(t, isa.Instruction{Op: isa.SRLIW, Rd: reg.A0, Rs1: reg.A1, Imm: mustShamtW(0)})
	roundTrip(t, isa.Instruction{Op: isa.SRAIW, Rd: reg.A0, Rs1: reg.A1, Imm: mustShamtW(5)})
}

func TestSlliwRejectsNonzeroFunct7(t *testing.T) {
	word := uint32(isa.OpOpImm32) | emitFunct3(0x1) | emitFunct7(0x01) | emitRd(reg.A0) | emitRs1(reg.A1)
	_, err := Decode(word)
	require.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{isa.LB, isa.LH, isa.LW, isa.LBU, isa.LHU, isa.LWU, isa.LD} {
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, Rs1: reg.StackPointer, Imm: mustI(16)})
	}
}

func TestJALRRoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.JALR, Rd: reg.ReturnAddress, Rs1: reg.A0, Imm: mustI(-4)})
}

func TestJALRRejectsNonzeroFunct3(t *testing.T) {
	word := uint32(isa.OpJALR) | emitFunct3(0x1) | emitRd(reg.A0) | emitRs1(reg.A1)
	_, err := Decode(word)
	require.Error(t, err)
}

func TestRTypeRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{
		isa.ADD, isa.SUB, isa.SLL, isa.SLT, isa.SLTU, isa.XOR, isa.SRL, isa.SRA, isa.OR, isa.AND,
		isa.MUL, isa.MULH, isa.MULHSU, isa.MULHU, isa.DIV, isa.DIVU, isa.REM, isa.REMU,
	} {
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, Rs1: reg.A1, Rs2: reg.A2})
	}
}

func TestRTypeWRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{
		isa.ADDW, isa.SUBW, isa.SLLW, isa.SRLW, isa.SRAW,
		isa.MULW, isa.DIVW, isa.DIVUW, isa.REMW, isa.REMUW,
	} {
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, Rs1: reg.A1, Rs2: reg.A2})
	}
}

func TestBranchRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{isa.BEQ, isa.BNE, isa.BLT, isa.BGE, isa.BLTU, isa.BGEU} {
		roundTrip(t, isa.Instruction{Op: op, Rs1: reg.A0, Rs2: reg.A1, Imm: mustB(-16)})
	}
}

func TestJALRoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.JAL, Rd: reg.ReturnAddress, Imm: mustJ(1048574)})
}

func TestLUIAUIPCRoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.LUI, Rd: reg.A0, Imm: mustU(4096)})
	roundTrip(t, isa.Instruction{Op: isa.AUIPC, Rd: reg.A0, Imm: mustU(-4096)})
}

func TestStoreRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{isa.SB, isa.SH, isa.SW, isa.SD} {
		roundTrip(t, isa.Instruction{Op: op, Rs1: reg.StackPointer, Rs2: reg.A0, Imm: mustS(-8)})
	}
}

func TestAMORoundTripOrderingBits(t *testing.T) {
	cases := []isa.Op{
		isa.AMOSWAPW, isa.AMOADDW, isa.AMOXORW, isa.AMOANDW, isa.AMOORW,
		isa.AMOMINW, isa.AMOMAXW, isa.AMOMINUW, isa.AMOMAXUW,
		isa.AMOSWAPD, isa.AMOADDD, isa.AMOXORD, isa.AMOANDD, isa.AMOORD,
		isa.AMOMIND, isa.AMOMAXD, isa.AMOMINUD, isa.AMOMAXUD,
	}
	for _, op := range cases {
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, Rs1: reg.A1, Rs2: reg.A2, Aq: true, Rl: false})
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, Rs1: reg.A1, Rs2: reg.A2, Aq: false, Rl: true})
	}
}

func TestLRSCRoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.LRW, Rd: reg.A0, Rs1: reg.A1, Aq: true, Rl: true})
	roundTrip(t, isa.Instruction{Op: isa.SCW, Rd: reg.A0, Rs1: reg.A1, Rs2: reg.A2, Rl: true})
	roundTrip(t, isa.Instruction{Op: isa.LRD, Rd: reg.A0, Rs1: reg.A1})
	roundTrip(t, isa.Instruction{Op: isa.SCD, Rd: reg.A0, Rs1: reg.A1, Rs2: reg.A2})
}

func TestLRRejectsNonzeroRs2(t *testing.T) {
	word := uint32(isa.OpAMO) | emitFunct3(0x2) | emitFunct5(0b00010) | emitRd(reg.A0) | emitRs1(reg.A1) | emitRs2(reg.A2)
	_, err := Decode(word)
	require.Error(t, err)
}

func TestFenceRoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.FENCE, FM: isa.FenceModeNormal, Pred: isa.FenceR | isa.FenceW, Succ: isa.FenceI | isa.FenceO | isa.FenceR | isa.FenceW})
}

func TestFenceTSORoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.FENCE, FM: isa.FenceModeTSO, Pred: isa.FenceR | isa.FenceW, Succ: isa.FenceR | isa.FenceW})
}

func TestFenceIRoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.FENCEI})
}

func TestECALLEBREAKRoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.ECALL})
	roundTrip(t, isa.Instruction{Op: isa.EBREAK})
}

func TestECALLRejectsNonzeroOperands(t *testing.T) {
	word := uint32(isa.OpSystem) | emitRd(reg.A0)
	_, err := Decode(word)
	require.Error(t, err)
}

func TestCSRRoundTrip(t *testing.T) {
	csr, err := isa.NewCSR(0x001)
	require.NoError(t, err)
	for _, op := range []isa.Op{isa.CSRRW, isa.CSRRS, isa.CSRRC} {
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, Rs1: reg.A1, CSR: csr})
	}
	ci, err := imm.NewCSRImm(17)
	require.NoError(t, err)
	for _, op := range []isa.Op{isa.CSRRWI, isa.CSRRSI, isa.CSRRCI} {
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, CSR: csr, CSRUseImm: true, Imm: ci})
	}
}

func TestFLWFSWRoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.FLW, Frd: reg.FA0, Rs1: reg.StackPointer, Imm: mustI(16)})
	roundTrip(t, isa.Instruction{Op: isa.FSW, Frs2: reg.FA0, Rs1: reg.StackPointer, Imm: mustS(16)})
}

func TestFMARoundTrip(t *testing.T) {
	for _, op := range []isa.Op{isa.FMADDS, isa.FMSUBS, isa.FNMSUBS, isa.FNMADDS} {
		roundTrip(t, isa.Instruction{Op: op, Frd: reg.FA0, Frs1: reg.FA1, Frs2: reg.FA2, Frs3: reg.FA3, RM: isa.RNE})
	}
}

func TestFArithRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{isa.FADDS, isa.FSUBS, isa.FMULS, isa.FDIVS} {
		roundTrip(t, isa.Instruction{Op: op, Frd: reg.FA0, Frs1: reg.FA1, Frs2: reg.FA2, RM: isa.DYN})
	}
	roundTrip(t, isa.Instruction{Op: isa.FSQRTS, Frd: reg.FA0, Frs1: reg.FA1, RM: isa.RTZ})
}

func TestFSignInjectMinMaxRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{isa.FSGNJS, isa.FSGNJNS, isa.FSGNJXS, isa.FMINS, isa.FMAXS} {
		roundTrip(t, isa.Instruction{Op: op, Frd: reg.FA0, Frs1: reg.FA1, Frs2: reg.FA2})
	}
}

func TestFCVTRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{isa.FCVTWS, isa.FCVTWUS, isa.FCVTLS, isa.FCVTLUS} {
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, Frs1: reg.FA0, RM: isa.RTZ})
	}
	for _, op := range []isa.Op{isa.FCVTSW, isa.FCVTSWU, isa.FCVTSL, isa.FCVTSLU} {
		roundTrip(t, isa.Instruction{Op: op, Frd: reg.FA0, Rs1: reg.A0, RM: isa.DYN})
	}
}

func TestFMVRoundTrip(t *testing.T) {
	roundTrip(t, isa.Instruction{Op: isa.FMVXW, Rd: reg.A0, Frs1: reg.FA0})
	roundTrip(t, isa.Instruction{Op: isa.FMVWX, Frd: reg.FA0, Rs1: reg.A0})
	roundTrip(t, isa.Instruction{Op: isa.FCLASSS, Rd: reg.A0, Frs1: reg.FA0})
}

func TestFCompareRoundTrip(t *testing.T) {
	for _, op := range []isa.Op{isa.FEQS, isa.FLTS, isa.FLES} {
		roundTrip(t, isa.Instruction{Op: op, Rd: reg.A0, Frs1: reg.FA0, Frs2: reg.FA1})
	}
}

func TestMalformedWordLowBitsChecked(t *testing.T) {
	_, err := Decode(0x00000000)
	require.Error(t, err)
}

func TestReservedOpcodeRejected(t *testing.T) {
	_, err := Decode(0x7F)
	require.Error(t, err)
}

func TestEncodeUnknownOpRejected(t *testing.T) {
	_, err := Encode(isa.Instruction{Op: isa.Op(-1)})
	require.Error(t, err)
}

// --- compressed ---

func mustCIW(v int64) imm.CIW       { c, err := imm.NewCIW(v); noErr(err); return c }
func mustCD(v int64) imm.CD         { c, err := imm.NewCD(v); noErr(err); return c }
func mustCW(v int64) imm.CW         { c, err := imm.NewCW(v); noErr(err); return c }
func mustCI(v int64) imm.CI         { c, err := imm.NewCI(v); noErr(err); return c }
func mustCB(v int64) imm.CB         { c, err := imm.NewCB(v); noErr(err); return c }
func mustCShamt(v int64) imm.CShamt { c, err := imm.NewCShamt(v); noErr(err); return c }

func roundTripC(t *testing.T, c isa.CInstruction) uint16 {
	t.Helper()
	half, err := EncodeCompressed(c)
	require.NoError(t, err)
	got, err := DecodeCompressed(half)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	return half
}

func TestCADDI4SPNRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CADDI4SPN, Rd: reg.A0, Rs1: reg.StackPointer, Imm: mustCIW(64)})
}

func TestCADDI4SPNRejectsZero(t *testing.T) {
	_, err := DecodeCompressed(uint16(0b00) | emitCFunct3(0b000) | emitCRdShort(reg.CReg(0)))
	require.Error(t, err)
}

func TestCLoadStoreRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CLW, Rd: reg.A0, Rs1: reg.S0, Imm: mustCW(4)})
	roundTripC(t, isa.CInstruction{Op: isa.CLD, Rd: reg.A0, Rs1: reg.S0, Imm: mustCD(8)})
	roundTripC(t, isa.CInstruction{Op: isa.CSW, Rs1: reg.S0, Rs2: reg.A0, Imm: mustCW(4)})
	roundTripC(t, isa.CInstruction{Op: isa.CSD, Rs1: reg.S0, Rs2: reg.A0, Imm: mustCD(8)})
}

func TestCNOPRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CNOP})
}

func TestCADDIRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CADDI, Rd: reg.A0, Rs1: reg.A0, Imm: mustCI(-5)})
}

func TestCADDIHintNotSupported(t *testing.T) {
	_, err := DecodeCompressed(uint16(0b01) | emitCFunct3(0b000) | emitCRd(reg.Zero) | uint16(1)<<12)
	require.Error(t, err)
}

func TestCADDIWRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CADDIW, Rd: reg.A0, Rs1: reg.A0, Imm: mustCI(3)})
}

func TestCADDIWRejectsRdZero(t *testing.T) {
	_, err := DecodeCompressed(uint16(0b01) | emitCFunct3(0b001) | emitCRd(reg.Zero))
	require.Error(t, err)
}

func TestCLIRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CLI, Rd: reg.A0, Imm: mustCI(-1)})
}

func TestCADDI16SPRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CADDI16SP, Rd: reg.StackPointer, Rs1: reg.StackPointer, Imm: imm.NewRaw(-32)})
}

func TestCLUIRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CLUI, Rd: reg.A0, Imm: mustCI(7)})
}

func TestCLUIRejectsStackPointer(t *testing.T) {
	half := uint16(0b01) | emitCFunct3(0b011) | emitCRd(reg.StackPointer)
	_, err := DecodeCompressed(half)
	require.Error(t, err)
}

func TestCShiftImmRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CSRLI, Rd: reg.A0, Rs1: reg.A0, Imm: mustCShamt(5)})
	roundTripC(t, isa.CInstruction{Op: isa.CSRAI, Rd: reg.A0, Rs1: reg.A0, Imm: mustCShamt(5)})
}

func TestCANDIRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CANDI, Rd: reg.A0, Rs1: reg.A0, Imm: mustCI(-1)})
}

func TestCArithRoundTrip(t *testing.T) {
	for _, op := range []isa.COp{isa.CSUB, isa.CXOR, isa.COR, isa.CAND, isa.CSUBW, isa.CADDW} {
		roundTripC(t, isa.CInstruction{Op: op, Rd: reg.A0, Rs1: reg.A0, Rs2: reg.A1})
	}
}

func TestCJRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CJ, Imm: imm.NewRaw(-100)})
}

func TestCBranchZRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CBEQZ, Rs1: reg.A0, Imm: mustCB(16)})
	roundTripC(t, isa.CInstruction{Op: isa.CBNEZ, Rs1: reg.A0, Imm: mustCB(-16)})
}

func TestCSLLIRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CSLLI, Rd: reg.A0, Rs1: reg.A0, Imm: mustCShamt(3)})
}

func TestCLoadSPRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CLWSP, Rd: reg.A0, Rs1: reg.StackPointer, Imm: imm.NewRaw(16)})
	roundTripC(t, isa.CInstruction{Op: isa.CLDSP, Rd: reg.A0, Rs1: reg.StackPointer, Imm: imm.NewRaw(24)})
}

func TestCLWSPRejectsRdZero(t *testing.T) {
	half := uint16(0b10) | emitCFunct3(0b010) | emitCRd(reg.Zero)
	_, err := DecodeCompressed(half)
	require.Error(t, err)
}

func TestCJumpFormsRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CJR, Rs1: reg.A0})
	roundTripC(t, isa.CInstruction{Op: isa.CMV, Rd: reg.A0, Rs2: reg.A1})
	roundTripC(t, isa.CInstruction{Op: isa.CEBREAK})
	roundTripC(t, isa.CInstruction{Op: isa.CJALR, Rs1: reg.A0})
	roundTripC(t, isa.CInstruction{Op: isa.CADD, Rd: reg.A0, Rs1: reg.A0, Rs2: reg.A1})
}

func TestCJRRejectsRs1Zero(t *testing.T) {
	half := uint16(0b10) | emitCFunct3(0b100) | emitCRd(reg.Zero)
	_, err := DecodeCompressed(half)
	require.Error(t, err)
}

func TestCStoreSPRoundTrip(t *testing.T) {
	roundTripC(t, isa.CInstruction{Op: isa.CSWSP, Rs1: reg.StackPointer, Rs2: reg.A0, Imm: imm.NewRaw(16)})
	roundTripC(t, isa.CInstruction{Op: isa.CSDSP, Rs1: reg.StackPointer, Rs2: reg.A0, Imm: imm.NewRaw(24)})
}

func TestQuadrant3IsNotCompressed(t *testing.T) {
	_, err := DecodeCompressed(0b11)
	require.Error(t, err)
}

func TestDecodeCompressedReservedQuadrant0Funct3(t *testing.T) {
	half := uint16(0b00) | emitCFunct3(0b001)
	_, err := DecodeCompressed(half)
	require.Error(t, err)
}

func TestDecodeCompressedReservedCAFormEncoding(t *testing.T) {
	rd := reg.CReg(0)
	half := uint16(0b01) | emitCFunct3(0b100) | emitCFunct2High(0b11) | emitCRdShort(rd) | emitCFunct2Low(0b10) | uint16(1)<<12
	_, err := DecodeCompressed(half)
	require.Error(t, err)
}
