package riscv

import (
	"testing"

	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/reg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLRWScenario checks a known word end to end: decoding 0x1405a52f
// yields lr.w.aq a0,a1, and it round-trips through encode and through
// the assembler text form.
func TestLRWScenario(t *testing.T) {
	want := Instruction{Op: isa.LRW, Rd: reg.A0, Rs1: reg.A1, Aq: true}

	got, err := Decode(0x1405a52f)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	word, err := Encode(want)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1405a52f), word)

	res, err := AssembleLine("lr.w.aq a0,a1")
	require.NoError(t, err)
	assert.False(t, res.Compressed)
	assert.Equal(t, want, res.Full)
}

// TestAtomicScenarios pins several atomic instructions against their
// exact machine words.
func TestAtomicScenarios(t *testing.T) {
	cases := []struct {
		line string
		want Instruction
		word uint32
	}{
		{
			"sc.w.rl ra,t4,a1",
			Instruction{Op: isa.SCW, Rd: reg.ReturnAddress, Rs1: reg.T4, Rs2: reg.A1, Rl: true},
			0x1abea0af,
		},
		{
			"amoadd.w.aqrl a4,gp,s4",
			Instruction{Op: isa.AMOADDW, Rd: reg.A4, Rs1: reg.GlobalPointer, Rs2: reg.S4, Aq: true, Rl: true},
			0x0741a72f,
		},
		{
			"amomaxu.d a4,gp,s4",
			Instruction{Op: isa.AMOMAXUD, Rd: reg.A4, Rs1: reg.GlobalPointer, Rs2: reg.S4},
			0xe141b72f,
		},
	}
	for _, tc := range cases {
		res, err := AssembleLine(tc.line)
		require.NoError(t, err, tc.line)
		require.False(t, res.Compressed, tc.line)
		assert.Equal(t, tc.want, res.Full, tc.line)

		word, err := Encode(res.Full)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.word, word, tc.line)

		back, err := Decode(tc.word)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, back, tc.line)
	}
}

func TestFenceTSOOperandsChecked(t *testing.T) {
	res, err := AssembleLine("fence.tso rw,rw")
	require.NoError(t, err)
	assert.Equal(t, isa.FenceModeTSO, res.Full.FM)

	_, err = AssembleLine("fence.tso r,rw")
	require.Error(t, err)
}

func TestAssembleDisassembleRoundTrip(t *testing.T) {
	cases := []string{
		"addi a0,a1,-100",
		"add fp,s0,s0",
		"fence.tso rw,rw",
		"amoadd.w.aqrl a4,gp,s4",
	}
	for _, line := range cases {
		res, err := AssembleLine(line)
		require.NoError(t, err, line)

		back, err := AssembleLine(res.String())
		require.NoError(t, err, line)
		assert.Equal(t, res, back, line)
	}
}

func TestCompressedRoundTrip(t *testing.T) {
	res, err := AssembleLine("c.addi a0,5")
	require.NoError(t, err)
	require.True(t, res.Compressed)

	half, err := EncodeCompressed(res.C)
	require.NoError(t, err)

	got, err := DecodeCompressed(half)
	require.NoError(t, err)
	assert.Equal(t, res.C, got)
}
