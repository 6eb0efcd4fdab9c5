// Package reg defines the register namespaces addressable by RISC-V
// instructions: the 32 integer registers, the 32 floating registers, and
// the 8 compressed-integer registers, together with their ABI aliases.
package reg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lookbusy1344/riscv-codec/rverr"
)

// IntReg is one of the 32 integer registers, addressed by its 5-bit
// index. FramePointer and S0 share index 8; Display always emits "s0".
type IntReg uint8

const (
	Zero IntReg = iota
	ReturnAddress
	StackPointer
	GlobalPointer
	ThreadPointer
	T0
	T1
	T2
	S0 // == FramePointer
	S1
	A0
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	S2
	S3
	S4
	S5
	S6
	S7
	S8
	S9
	S10
	S11
	T3
	T4
	T5
	T6
)

// FramePointer is the alias for S0; it collapses on parsing and Display
// always prints "s0".
const FramePointer = S0

var intRegNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// NewIntReg validates a 5-bit register index.
func NewIntReg(index uint32) (IntReg, error) {
	if index > 31 {
		return 0, rverr.Newf(rverr.OutOfRangeImmediate, "integer register index %d out of range 0..31", index)
	}
	return IntReg(index), nil
}

// Index returns the 5-bit register index.
func (r IntReg) Index() uint32 { return uint32(r) }

// String returns the canonical ABI name of the register.
func (r IntReg) String() string {
	if int(r) < len(intRegNames) {
		return intRegNames[r]
	}
	return fmt.Sprintf("x%d", uint8(r))
}

var intRegByName = buildIntRegIndex()

func buildIntRegIndex() map[string]IntReg {
	m := make(map[string]IntReg, 40)
	for i, name := range intRegNames {
		m[name] = IntReg(i)
	}
	// fp is a common alias for s0 beyond the canonical name table above.
	m["fp"] = S0
	return m
}

// ParseIntReg parses an ABI alias ("a0", "sp", "fp", ...) or the
// positional form "x<n>" with n in 0..31.
func ParseIntReg(tok string) (IntReg, error) {
	t := strings.ToLower(strings.TrimSpace(tok))
	if r, ok := intRegByName[t]; ok {
		return r, nil
	}
	if strings.HasPrefix(t, "x") {
		n, err := strconv.ParseUint(t[1:], 10, 32)
		if err != nil || n > 31 {
			return 0, rverr.WithField(rverr.UnknownOperand, tok, "not a valid integer register")
		}
		return IntReg(n), nil
	}
	return 0, rverr.WithField(rverr.UnknownOperand, tok, "not a valid integer register")
}

// FloatReg is one of the 32 floating-point registers.
type FloatReg uint8

const (
	FT0 FloatReg = iota
	FT1
	FT2
	FT3
	FT4
	FT5
	FT6
	FT7
	FS0
	FS1
	FA0
	FA1
	FA2
	FA3
	FA4
	FA5
	FA6
	FA7
	FS2
	FS3
	FS4
	FS5
	FS6
	FS7
	FS8
	FS9
	FS10
	FS11
	FT8
	FT9
	FT10
	FT11
)

var floatRegNames = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

// NewFloatReg validates a 5-bit register index.
func NewFloatReg(index uint32) (FloatReg, error) {
	if index > 31 {
		return 0, rverr.Newf(rverr.OutOfRangeImmediate, "float register index %d out of range 0..31", index)
	}
	return FloatReg(index), nil
}

// Index returns the 5-bit register index.
func (r FloatReg) Index() uint32 { return uint32(r) }

func (r FloatReg) String() string {
	if int(r) < len(floatRegNames) {
		return floatRegNames[r]
	}
	return fmt.Sprintf("f%d", uint8(r))
}

var floatRegByName = buildFloatRegIndex()

func buildFloatRegIndex() map[string]FloatReg {
	m := make(map[string]FloatReg, 32)
	for i, name := range floatRegNames {
		m[name] = FloatReg(i)
	}
	return m
}

// ParseFloatReg parses an ABI alias ("fa0", "ft3", ...) or the
// positional form "f<n>" with n in 0..31.
func ParseFloatReg(tok string) (FloatReg, error) {
	t := strings.ToLower(strings.TrimSpace(tok))
	if r, ok := floatRegByName[t]; ok {
		return r, nil
	}
	if strings.HasPrefix(t, "f") {
		n, err := strconv.ParseUint(t[1:], 10, 32)
		if err != nil || n > 31 {
			return 0, rverr.WithField(rverr.UnknownOperand, tok, "not a valid floating register")
		}
		return FloatReg(n), nil
	}
	return 0, rverr.WithField(rverr.UnknownOperand, tok, "not a valid floating register")
}

// CReg is one of the eight registers addressable by the 3-bit field in
// compressed instruction formats. Compressed index i names the
// uncompressed integer register numbered i+8.
type CReg uint8

const (
	CS0 CReg = iota
	CS1
	CA0
	CA1
	CA2
	CA3
	CA4
	CA5
)

var cRegNames = [8]string{"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5"}

// NewCReg validates a 3-bit compressed register index.
func NewCReg(index uint32) (CReg, error) {
	if index > 7 {
		return 0, rverr.Newf(rverr.OutOfRangeImmediate, "compressed register index %d out of range 0..7", index)
	}
	return CReg(index), nil
}

// Index returns the 3-bit field value as encoded in a compressed
// instruction.
func (r CReg) Index() uint32 { return uint32(r) }

// ToIntReg expands the compressed register to its full IntReg (index+8).
func (r CReg) ToIntReg() IntReg { return IntReg(uint8(r) + 8) }

// CRegFromIntReg narrows a full integer register into the compressed
// namespace; ok is false if reg is not one of the eight addressable
// registers (index 8..15).
func CRegFromIntReg(r IntReg) (CReg, bool) {
	if r < 8 || r > 15 {
		return 0, false
	}
	return CReg(uint8(r) - 8), true
}

func (r CReg) String() string {
	if int(r) < len(cRegNames) {
		return cRegNames[r]
	}
	return fmt.Sprintf("x%d", uint8(r)+8)
}

var cRegByName = buildCRegIndex()

func buildCRegIndex() map[string]CReg {
	m := make(map[string]CReg, 8)
	for i, name := range cRegNames {
		m[name] = CReg(i)
	}
	return m
}

// ParseCReg parses one of the eight permitted compressed integer
// register names ("s0", "s1", "a0".."a5").
func ParseCReg(tok string) (CReg, error) {
	t := strings.ToLower(strings.TrimSpace(tok))
	if r, ok := cRegByName[t]; ok {
		return r, nil
	}
	return 0, rverr.WithField(rverr.UnknownOperand, tok, "not a compressed-addressable register")
}
