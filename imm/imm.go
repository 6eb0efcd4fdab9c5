// Package imm implements the architectural immediate families of the
// RISC-V instruction encodings: I, S, B, U, J, the two shift-amount
// forms, the CSR immediate, and the six compressed-instruction
// immediate layouts.
//
// Every type exposes exactly three operations: a bit extractor from the
// containing machine word, a validated constructor from an integer, and
// a bit emitter that places the value back into its scattered bit
// positions. Extractor and emitter are pointwise inverses for in-range
// values.
package imm

import (
	"strconv"

	"github.com/lookbusy1344/riscv-codec/rverr"
)

// signExtend sign-extends the low `bits` bits of v to an int64.
func signExtend(v uint32, bits uint) int64 {
	shift := 32 - bits
	return int64(int32(v<<shift) >> shift)
}

// ---- I: I-type, 12-bit signed, used by ADDI, loads, JALR ----

type I struct{ val int32 }

// IFromWord extracts bits 31..20 of the 32-bit word.
func IFromWord(word uint32) I {
	return I{int32(signExtend((word>>20)&0xFFF, 12))}
}

// NewI validates a signed 12-bit value.
func NewI(v int64) (I, error) {
	if v < -2048 || v > 2047 {
		return I{}, rverr.Newf(rverr.OutOfRangeImmediate, "I-immediate %d out of range [-2048,2047]", v)
	}
	return I{int32(v)}, nil
}

func (i I) Val() int64 { return int64(i.val) }

// Emit places the 12 bits back into bits 31..20.
func (i I) Emit() uint32 {
	return (uint32(i.val) & 0xFFF) << 20
}

func (i I) String() string { return strconv.FormatInt(int64(i.val), 10) }

// ---- S: S-type, 12-bit signed, used by stores ----

type S struct{ val int32 }

// SFromWord extracts bits 31..25 concatenated with bits 11..7.
func SFromWord(word uint32) S {
	hi := (word >> 25) & 0x7F
	lo := (word >> 7) & 0x1F
	return S{int32(signExtend(hi<<5|lo, 12))}
}

func NewS(v int64) (S, error) {
	if v < -2048 || v > 2047 {
		return S{}, rverr.Newf(rverr.OutOfRangeImmediate, "S-immediate %d out of range [-2048,2047]", v)
	}
	return S{int32(v)}, nil
}

func (s S) Val() int64 { return int64(s.val) }

func (s S) Emit() uint32 {
	u := uint32(s.val) & 0xFFF
	return ((u >> 5) << 25) | ((u & 0x1F) << 7)
}

func (s S) String() string { return strconv.FormatInt(int64(s.val), 10) }

// ---- B: branch displacement, 13-bit signed, even ----

type B struct{ val int32 }

// BFromWord decodes the scattered branch-offset bits: bit 31 is sign,
// bit 7 is bit 11, bits 30..25 are bits 10..5, bits 11..8 are bits 4..1,
// bit 0 is always 0.
func BFromWord(word uint32) B {
	sign := (word >> 31) & 0x1
	b11 := (word >> 7) & 0x1
	b10_5 := (word >> 25) & 0x3F
	b4_1 := (word >> 8) & 0xF
	u := (sign << 12) | (b11 << 11) | (b10_5 << 5) | (b4_1 << 1)
	return B{int32(signExtend(u, 13))}
}

func NewB(v int64) (B, error) {
	if v%2 != 0 {
		return B{}, rverr.Newf(rverr.OutOfRangeImmediate, "B-immediate %d must be even", v)
	}
	if v < -4096 || v > 4094 {
		return B{}, rverr.Newf(rverr.OutOfRangeImmediate, "B-immediate %d out of range [-4096,4094]", v)
	}
	return B{int32(v)}, nil
}

func (b B) Val() int64 { return int64(b.val) }

func (b B) Emit() uint32 {
	u := uint32(b.val) & 0x1FFF
	sign := (u >> 12) & 0x1
	b11 := (u >> 11) & 0x1
	b10_5 := (u >> 5) & 0x3F
	b4_1 := (u >> 1) & 0xF
	return (sign << 31) | (b10_5 << 25) | (b4_1 << 8) | (b11 << 7)
}

func (b B) String() string { return strconv.FormatInt(int64(b.val), 10) }

// ---- U: LUI/AUIPC, 20-bit signed, placed in the high 20 bits ----

type U struct{ val int32 }

// UFromWord extracts bits 31..12.
func UFromWord(word uint32) U {
	return U{int32(word) >> 12}
}

func NewU(v int64) (U, error) {
	if v < -(1<<19) || v > (1<<19)-1 {
		return U{}, rverr.Newf(rverr.OutOfRangeImmediate, "U-immediate %d out of range", v)
	}
	return U{int32(v)}, nil
}

func (u U) Val() int64 { return int64(u.val) }

// Emit shifts the 20-bit value left by 12 into the high bits.
func (u U) Emit() uint32 {
	return uint32(u.val) << 12
}

func (u U) String() string { return strconv.FormatInt(int64(u.val), 10) }

// ---- J: JAL displacement, 21-bit signed, even ----

type J struct{ val int32 }

// JFromWord decodes the scattered jump-offset bits: bit 31 is sign (bit
// 20), bits 19..12 are bits 19..12, bit 20 is bit 11, bits 30..21 are
// bits 10..1, bit 0 is always 0.
func JFromWord(word uint32) J {
	sign := (word >> 31) & 0x1
	b19_12 := (word >> 12) & 0xFF
	b11 := (word >> 20) & 0x1
	b10_1 := (word >> 21) & 0x3FF
	u := (sign << 20) | (b19_12 << 12) | (b11 << 11) | (b10_1 << 1)
	return J{int32(signExtend(u, 21))}
}

func NewJ(v int64) (J, error) {
	if v%2 != 0 {
		return J{}, rverr.Newf(rverr.OutOfRangeImmediate, "J-immediate %d must be even", v)
	}
	if v < -(1<<20) || v > (1<<20)-2 {
		return J{}, rverr.Newf(rverr.OutOfRangeImmediate, "J-immediate %d out of range", v)
	}
	return J{int32(v)}, nil
}

func (j J) Val() int64 { return int64(j.val) }

func (j J) Emit() uint32 {
	u := uint32(j.val) & 0x1FFFFF
	sign := (u >> 20) & 0x1
	b19_12 := (u >> 12) & 0xFF
	b11 := (u >> 11) & 0x1
	b10_1 := (u >> 1) & 0x3FF
	return (sign << 31) | (b10_1 << 21) | (b11 << 20) | (b19_12 << 12)
}

func (j J) String() string { return strconv.FormatInt(int64(j.val), 10) }

// ---- Shamt: 6-bit unsigned, 64-bit shift amount ----

type Shamt struct{ val uint8 }

func ShamtFromWord(word uint32) Shamt { return Shamt{uint8((word >> 20) & 0x3F)} }

func NewShamt(v int64) (Shamt, error) {
	if v < 0 || v > 63 {
		return Shamt{}, rverr.Newf(rverr.OutOfRangeImmediate, "shamt %d out of range [0,63]", v)
	}
	return Shamt{uint8(v)}, nil
}

func (s Shamt) Val() int64   { return int64(s.val) }
func (s Shamt) Emit() uint32 { return uint32(s.val) << 20 }
func (s Shamt) String() string { return strconv.FormatUint(uint64(s.val), 10) }

// ---- ShamtW: 5-bit unsigned, 32-bit (word) shift amount ----

type ShamtW struct{ val uint8 }

func ShamtWFromWord(word uint32) ShamtW { return ShamtW{uint8((word >> 20) & 0x1F)} }

func NewShamtW(v int64) (ShamtW, error) {
	if v < 0 || v > 31 {
		return ShamtW{}, rverr.Newf(rverr.OutOfRangeImmediate, "shamtw %d out of range [0,31]", v)
	}
	return ShamtW{uint8(v)}, nil
}

func (s ShamtW) Val() int64     { return int64(s.val) }
func (s ShamtW) Emit() uint32   { return uint32(s.val) << 20 }
func (s ShamtW) String() string { return strconv.FormatUint(uint64(s.val), 10) }

// ---- CSRImm: 5-bit unsigned immediate for CSRRxI ----

type CSRImm struct{ val uint8 }

func CSRImmFromWord(word uint32) CSRImm { return CSRImm{uint8((word >> 15) & 0x1F)} }

func NewCSRImm(v int64) (CSRImm, error) {
	if v < 0 || v > 31 {
		return CSRImm{}, rverr.Newf(rverr.OutOfRangeImmediate, "CSR immediate %d out of range [0,31]", v)
	}
	return CSRImm{uint8(v)}, nil
}

func (c CSRImm) Val() int64     { return int64(c.val) }
func (c CSRImm) Emit() uint32   { return uint32(c.val) << 15 }
func (c CSRImm) String() string { return strconv.FormatUint(uint64(c.val), 10) }

// ---- CIW: compressed wide immediate (C.ADDI4SPN), 10-bit unsigned, x4 ----

type CIW struct{ val uint16 }

// CIWFromHalf decodes the scattered nzuimm bits of C.ADDI4SPN.
func CIWFromHalf(half uint16) CIW {
	a := (half >> 5) & 0x1
	b := (half >> 6) & 0x1
	c := (half >> 7) & 0xF
	d := (half >> 11) & 0x3
	v := (b << 2) | (a << 3) | (d << 4) | (c << 6)
	return CIW{uint16(v)}
}

func NewCIW(v int64) (CIW, error) {
	if v < 0 || v > 1023 {
		return CIW{}, rverr.Newf(rverr.OutOfRangeImmediate, "CIW immediate %d out of range [0,1023]", v)
	}
	if v%4 != 0 {
		return CIW{}, rverr.Newf(rverr.OutOfRangeImmediate, "CIW immediate %d must be a multiple of 4", v)
	}
	return CIW{uint16(v)}, nil
}

func (c CIW) Val() int64 { return int64(c.val) }

// Emit places the value back into the C.ADDI4SPN bit positions.
func (c CIW) Emit() uint16 {
	v := c.val
	a := (v >> 3) & 0x1
	b := (v >> 2) & 0x1
	cc := (v >> 6) & 0xF
	d := (v >> 4) & 0x3
	return (a << 5) | (b << 6) | (cc << 7) | (d << 11)
}

func (c CIW) String() string { return strconv.FormatUint(uint64(c.val), 10) }

// ---- CD: compressed doubleword load/store immediate, 8-bit unsigned, x8 ----

type CD struct{ val uint16 }

func CDFromHalf(half uint16) CD {
	a := (half >> 5) & 0x3
	b := (half >> 10) & 0x7
	v := (b << 3) | (a << 6)
	return CD{uint16(v)}
}

func NewCD(v int64) (CD, error) {
	if v < 0 || v > 255 {
		return CD{}, rverr.Newf(rverr.OutOfRangeImmediate, "CD immediate %d out of range [0,255]", v)
	}
	if v%8 != 0 {
		return CD{}, rverr.Newf(rverr.OutOfRangeImmediate, "CD immediate %d must be a multiple of 8", v)
	}
	return CD{uint16(v)}, nil
}

func (c CD) Val() int64 { return int64(c.val) }

func (c CD) Emit() uint16 {
	v := c.val
	a := (v >> 6) & 0x3
	b := (v >> 3) & 0x7
	return (a << 5) | (b << 10)
}

func (c CD) String() string { return strconv.FormatUint(uint64(c.val), 10) }

// ---- CW: compressed word load/store immediate, 7-bit unsigned, x4 ----

type CW struct{ val uint16 }

func CWFromHalf(half uint16) CW {
	a := (half >> 5) & 0x1
	b := (half >> 6) & 0x1
	c := (half >> 10) & 0x7
	v := (b << 2) | (c << 3) | (a << 6)
	return CW{uint16(v)}
}

func NewCW(v int64) (CW, error) {
	if v < 0 || v > 127 {
		return CW{}, rverr.Newf(rverr.OutOfRangeImmediate, "CW immediate %d out of range [0,127]", v)
	}
	if v%4 != 0 {
		return CW{}, rverr.Newf(rverr.OutOfRangeImmediate, "CW immediate %d must be a multiple of 4", v)
	}
	return CW{uint16(v)}, nil
}

func (c CW) Val() int64 { return int64(c.val) }

func (c CW) Emit() uint16 {
	v := c.val
	a := (v >> 6) & 0x1
	b := (v >> 2) & 0x1
	cc := (v >> 3) & 0x7
	return (a << 5) | (b << 6) | (cc << 10)
}

func (c CW) String() string { return strconv.FormatUint(uint64(c.val), 10) }

// ---- CI: compressed signed immediate (C.ADDI/C.LI/...), 6-bit signed ----

type CI struct{ val int8 }

func CIFromHalf(half uint16) CI {
	a := (half >> 2) & 0x1F
	b := (half >> 12) & 0x1
	u := uint32(a) | (uint32(b) << 5)
	return CI{int8(signExtend(u, 6))}
}

func NewCI(v int64) (CI, error) {
	if v < -32 || v > 31 {
		return CI{}, rverr.Newf(rverr.OutOfRangeImmediate, "CI immediate %d out of range [-32,31]", v)
	}
	return CI{int8(v)}, nil
}

func (c CI) Val() int64 { return int64(c.val) }

func (c CI) Emit() uint16 {
	u := uint16(c.val) & 0x3F
	return ((u & 0x1F) << 2) | (((u >> 5) & 0x1) << 12)
}

func (c CI) String() string { return strconv.FormatInt(int64(c.val), 10) }

// ---- CB: compressed branch displacement, 9-bit signed, even ----

type CB struct{ val int16 }

// CBFromHalf decodes the scattered C.BEQZ/C.BNEZ displacement bits.
func CBFromHalf(half uint16) CB {
	a := (half >> 2) & 0x1
	b := (half >> 3) & 0x3
	c := (half >> 5) & 0x3
	d := (half >> 10) & 0x3
	e := (half >> 12) & 0x1
	u := (b << 1) | (d << 3) | (a << 5) | (c << 6) | (e << 8)
	return CB{int16(signExtend(uint32(u), 9))}
}

func NewCB(v int64) (CB, error) {
	if v%2 != 0 {
		return CB{}, rverr.Newf(rverr.OutOfRangeImmediate, "CB immediate %d must be even", v)
	}
	if v < -256 || v > 254 {
		return CB{}, rverr.Newf(rverr.OutOfRangeImmediate, "CB immediate %d out of range [-256,254]", v)
	}
	return CB{int16(v)}, nil
}

func (c CB) Val() int64 { return int64(c.val) }

func (c CB) Emit() uint16 {
	u := uint16(c.val) & 0x1FF
	a := (u >> 5) & 0x1
	b := (u >> 1) & 0x3
	cc := (u >> 6) & 0x3
	d := (u >> 3) & 0x3
	e := (u >> 8) & 0x1
	return (a << 2) | (b << 3) | (cc << 5) | (d << 10) | (e << 12)
}

func (c CB) String() string { return strconv.FormatInt(int64(c.val), 10) }

// ---- CShamt: compressed shift amount, 6-bit unsigned ----

type CShamt struct{ val uint8 }

func CShamtFromHalf(half uint16) CShamt {
	a := (half >> 2) & 0x1F
	b := (half >> 12) & 0x1
	return CShamt{uint8(a | (b << 5))}
}

func NewCShamt(v int64) (CShamt, error) {
	if v < 0 || v > 63 {
		return CShamt{}, rverr.Newf(rverr.OutOfRangeImmediate, "compressed shamt %d out of range [0,63]", v)
	}
	return CShamt{uint8(v)}, nil
}

func (c CShamt) Val() int64 { return int64(c.val) }

func (c CShamt) Emit() uint16 {
	v := uint16(c.val)
	return ((v & 0x1F) << 2) | (((v >> 5) & 0x1) << 12)
}

func (c CShamt) String() string { return strconv.FormatUint(uint64(c.val), 10) }

// Value is satisfied by every immediate family above: a validated,
// range-checked scalar that knows its own decimal text.
type Value interface {
	Val() int64
	String() string
}

// Raw is a plain signed scalar for the handful of compressed-format
// displacements (C.ADDI16SP, C.J, the *SP load/store offsets) whose
// scattered bit layout doesn't correspond to one of the named immediate
// families but which still needs a Value to sit in an instruction's
// generic Imm field. Range/alignment checks for these are enforced by
// the codec and asm packages at the call site, not by Raw itself.
type Raw struct{ val int64 }

// NewRaw wraps an already-validated integer value.
func NewRaw(v int64) Raw { return Raw{val: v} }

func (r Raw) Val() int64     { return r.val }
func (r Raw) String() string { return strconv.FormatInt(r.val, 10) }
