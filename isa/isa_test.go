package isa

import (
	"testing"

	"github.com/lookbusy1344/riscv-codec/imm"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpMnemonicRoundTrip(t *testing.T) {
	for op, name := range opNames {
		parsed, ok := ParseOp(name)
		require.True(t, ok, name)
		assert.Equal(t, op, parsed)
	}
}

func TestOpcodeFromWordKnownValues(t *testing.T) {
	assert.Equal(t, OpLoad, OpcodeFromWord(uint32(OpLoad)))
	assert.Equal(t, Reserved, OpcodeFromWord(0b1111111))
}

func TestCSRRoundTrip(t *testing.T) {
	for name := range csrByName {
		c, err := ParseCSR(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.String())
	}
	c, err := ParseCSR("0x7c0")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7c0), c.Addr())
}

func TestRoundingModeRoundTrip(t *testing.T) {
	for _, name := range []string{"rne", "rtz", "rdn", "rup", "rmm", "dyn"} {
		rm, ok := ParseRoundingMode(name)
		require.True(t, ok)
		assert.Equal(t, name, rm.String())
	}
	_, ok := ParseRoundingMode("xyz")
	assert.False(t, ok)
}

func TestRoundingModeReservedBitsRejected(t *testing.T) {
	_, err := RoundingModeFromBits(5)
	require.Error(t, err)
	_, err = RoundingModeFromBits(6)
	require.Error(t, err)
}

func TestFenceSetRoundTrip(t *testing.T) {
	fs, err := ParseFenceSet("iorw")
	require.NoError(t, err)
	assert.Equal(t, "iorw", fs.String())

	fs, err = ParseFenceSet("rw")
	require.NoError(t, err)
	assert.Equal(t, FenceR|FenceW, fs)
}

func TestFenceModeTSORequiresRW(t *testing.T) {
	_, err := NewFenceMode(uint32(FenceModeTSO), FenceR, FenceR|FenceW)
	require.Error(t, err)
	fm, err := NewFenceMode(uint32(FenceModeTSO), FenceR|FenceW, FenceR|FenceW)
	require.NoError(t, err)
	assert.Equal(t, FenceModeTSO, fm)
}

func TestInstructionStringAddressingForms(t *testing.T) {
	i := Instruction{Op: LW, Rd: reg.A0, Rs1: reg.StackPointer, Imm: mustI(8)}
	assert.Equal(t, "lw a0,8(sp)", i.String())
}

func TestInstructionStringStoreOperandOrder(t *testing.T) {
	i := Instruction{Op: SW, Rs1: reg.StackPointer, Rs2: reg.A0, Imm: mustS(4)}
	assert.Equal(t, "sw a0,4(sp)", i.String())
}

func TestInstructionStringAMOOperandOrderAndOrdering(t *testing.T) {
	i := Instruction{Op: AMOADDW, Rd: reg.A0, Rs1: reg.A1, Rs2: reg.A2, Aq: true, Rl: true}
	assert.Equal(t, "amoadd.w.aqrl a0,a1,a2", i.String())
}

func TestInstructionStringFenceTSO(t *testing.T) {
	i := Instruction{Op: FENCE, FM: FenceModeTSO, Pred: FenceR | FenceW, Succ: FenceR | FenceW}
	assert.Equal(t, "fence.tso rw,rw", i.String())
}

func TestInstructionStringRoundingModeOmitsDYN(t *testing.T) {
	i := Instruction{Op: FADDS, Frd: reg.FA0, Frs1: reg.FA1, Frs2: reg.FA2, RM: DYN}
	assert.Equal(t, "fadd.s fa0,fa1,fa2", i.String())

	i.RM = RTZ
	assert.Equal(t, "fadd.s.rtz fa0,fa1,fa2", i.String())
}

func mustI(v int64) imm.I {
	i, err := imm.NewI(v)
	if err != nil {
		panic(err)
	}
	return i
}

func mustS(v int64) imm.S {
	s, err := imm.NewS(v)
	if err != nil {
		panic(err)
	}
	return s
}

func TestCOpMnemonicRoundTrip(t *testing.T) {
	for op, name := range cOpNames {
		parsed, ok := ParseCOp(name)
		require.True(t, ok, name)
		assert.Equal(t, op, parsed)
	}
}

func TestCInstructionStringStoreOperandOrder(t *testing.T) {
	c := CInstruction{Op: CSW, Rs1: reg.S0, Rs2: reg.A0, Imm: mustCW(4)}
	assert.Equal(t, "c.sw a0,4(s0)", c.String())
}

func mustCW(v int64) imm.CW {
	c, err := imm.NewCW(v)
	if err != nil {
		panic(err)
	}
	return c
}
