package imm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 2047, -2048} {
		i, err := NewI(v)
		require.NoError(t, err)
		word := i.Emit()
		got := IFromWord(word)
		assert.Equal(t, v, got.Val())
	}
}

func TestIOutOfRange(t *testing.T) {
	_, err := NewI(2048)
	require.Error(t, err)
	_, err = NewI(-2049)
	require.Error(t, err)
}

func TestSRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 2047, -2048} {
		s, err := NewS(v)
		require.NoError(t, err)
		assert.Equal(t, v, SFromWord(s.Emit()).Val())
	}
}

func TestBRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 2, -2, 4094, -4096} {
		b, err := NewB(v)
		require.NoError(t, err)
		assert.Equal(t, v, BFromWord(b.Emit()).Val())
	}
}

func TestBMustBeEven(t *testing.T) {
	_, err := NewB(1)
	require.Error(t, err)
}

func TestURoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, (1 << 19) - 1, -(1 << 19)} {
		u, err := NewU(v)
		require.NoError(t, err)
		assert.Equal(t, v, UFromWord(u.Emit()).Val())
	}
}

func TestJRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 2, -2, (1 << 20) - 2, -(1 << 20)} {
		j, err := NewJ(v)
		require.NoError(t, err)
		assert.Equal(t, v, JFromWord(j.Emit()).Val())
	}
}

func TestJMustBeEven(t *testing.T) {
	_, err := NewJ(3)
	require.Error(t, err)
}

func TestShamtRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 31, 63} {
		s, err := NewShamt(v)
		require.NoError(t, err)
		assert.Equal(t, v, ShamtFromWord(s.Emit()).Val())
	}
	_, err := NewShamt(64)
	require.Error(t, err)
}

func TestShamtWRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 31} {
		s, err := NewShamtW(v)
		require.NoError(t, err)
		assert.Equal(t, v, ShamtWFromWord(s.Emit()).Val())
	}
	_, err := NewShamtW(32)
	require.Error(t, err)
}

func TestCSRImmRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 31} {
		c, err := NewCSRImm(v)
		require.NoError(t, err)
		assert.Equal(t, v, CSRImmFromWord(c.Emit()).Val())
	}
	_, err := NewCSRImm(32)
	require.Error(t, err)
}

func TestCIWRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 4, 1020} {
		c, err := NewCIW(v)
		require.NoError(t, err)
		assert.Equal(t, v, CIWFromHalf(c.Emit()).Val())
	}
	_, err := NewCIW(3)
	require.Error(t, err)
	_, err = NewCIW(1024)
	require.Error(t, err)
}

func TestCDRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 8, 248} {
		c, err := NewCD(v)
		require.NoError(t, err)
		assert.Equal(t, v, CDFromHalf(c.Emit()).Val())
	}
	_, err := NewCD(4)
	require.Error(t, err)
}

func TestCWRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 4, 124} {
		c, err := NewCW(v)
		require.NoError(t, err)
		assert.Equal(t, v, CWFromHalf(c.Emit()).Val())
	}
	_, err := NewCW(2)
	require.Error(t, err)
}

func TestCIRoundTrip(t *testing.T) {
	for _, v := range []int64{-32, -1, 0, 31} {
		c, err := NewCI(v)
		require.NoError(t, err)
		assert.Equal(t, v, CIFromHalf(c.Emit()).Val())
	}
	_, err := NewCI(32)
	require.Error(t, err)
}

func TestCBRoundTrip(t *testing.T) {
	for _, v := range []int64{-256, -2, 0, 254} {
		c, err := NewCB(v)
		require.NoError(t, err)
		assert.Equal(t, v, CBFromHalf(c.Emit()).Val())
	}
	_, err := NewCB(1)
	require.Error(t, err)
}

func TestCShamtRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 31, 63} {
		c, err := NewCShamt(v)
		require.NoError(t, err)
		assert.Equal(t, v, CShamtFromHalf(c.Emit()).Val())
	}
	_, err := NewCShamt(64)
	require.Error(t, err)
}

func TestRawPassesThroughUnvalidated(t *testing.T) {
	r := NewRaw(-12345)
	assert.Equal(t, int64(-12345), r.Val())
	assert.Equal(t, "-12345", r.String())
}
