package reg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRegRoundTrip(t *testing.T) {
	for i := uint32(0); i <= 31; i++ {
		r, err := NewIntReg(i)
		require.NoError(t, err)
		assert.Equal(t, i, r.Index())
		parsed, err := ParseIntReg(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestIntRegOutOfRange(t *testing.T) {
	_, err := NewIntReg(32)
	require.Error(t, err)
}

func TestFramePointerAlias(t *testing.T) {
	fp, err := ParseIntReg("fp")
	require.NoError(t, err)
	s0, err := ParseIntReg("s0")
	require.NoError(t, err)
	assert.Equal(t, s0, fp)
	assert.Equal(t, FramePointer, fp)
	assert.Equal(t, "s0", fp.String())
}

func TestIntRegPositionalForm(t *testing.T) {
	r, err := ParseIntReg("x10")
	require.NoError(t, err)
	assert.Equal(t, A0, r)
}

func TestIntRegUnknown(t *testing.T) {
	_, err := ParseIntReg("notareg")
	require.Error(t, err)
}

func TestFloatRegRoundTrip(t *testing.T) {
	for i := uint32(0); i <= 31; i++ {
		r, err := NewFloatReg(i)
		require.NoError(t, err)
		parsed, err := ParseFloatReg(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestCRegRoundTrip(t *testing.T) {
	for i := uint32(0); i <= 7; i++ {
		r, err := NewCReg(i)
		require.NoError(t, err)
		parsed, err := ParseCReg(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestCRegFromIntRegRange(t *testing.T) {
	for idx := uint8(8); idx <= 15; idx++ {
		c, ok := CRegFromIntReg(IntReg(idx))
		require.True(t, ok)
		assert.Equal(t, IntReg(idx), c.ToIntReg())
	}
	_, ok := CRegFromIntReg(Zero)
	assert.False(t, ok)
	_, ok = CRegFromIntReg(T6)
	assert.False(t, ok)
}

func TestCRegOutOfRange(t *testing.T) {
	_, err := NewCReg(8)
	require.Error(t, err)
}
