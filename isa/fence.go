package isa

import (
	"strings"

	"github.com/lookbusy1344/riscv-codec/rverr"
)

// FenceSet is a 4-bit predecessor or successor memory-channel set: the
// bits select which of input-device, output-device, memory-read, and
// memory-write are ordered. Bit 3 is I, bit 2 is O, bit 1 is R, bit 0 is
// W, matching the fence instruction's bit layout.
type FenceSet uint8

const (
	FenceI FenceSet = 1 << 3
	FenceO FenceSet = 1 << 2
	FenceR FenceSet = 1 << 1
	FenceW FenceSet = 1 << 0
)

// NewFenceSet validates a 4-bit fence channel set.
func NewFenceSet(bits uint32) (FenceSet, error) {
	if bits > 0xF {
		return 0, rverr.Newf(rverr.OutOfRangeImmediate, "fence set %#x out of range 0..15", bits)
	}
	return FenceSet(bits), nil
}

// String prints the fixed i,o,r,w order, omitting absent channels.
func (f FenceSet) String() string {
	var sb strings.Builder
	if f&FenceI != 0 {
		sb.WriteByte('i')
	}
	if f&FenceO != 0 {
		sb.WriteByte('o')
	}
	if f&FenceR != 0 {
		sb.WriteByte('r')
	}
	if f&FenceW != 0 {
		sb.WriteByte('w')
	}
	return sb.String()
}

// ParseFenceSet parses a subsequence of the letters {i,o,r,w} in any
// order; order is canonicalized on print.
func ParseFenceSet(tok string) (FenceSet, error) {
	var f FenceSet
	for _, c := range tok {
		switch c {
		case 'i':
			f |= FenceI
		case 'o':
			f |= FenceO
		case 'r':
			f |= FenceR
		case 'w':
			f |= FenceW
		default:
			return 0, rverr.WithField(rverr.UnknownOperand, tok, "fence set must be a subsequence of i,o,r,w")
		}
	}
	return f, nil
}

// FenceMode is the 4-bit fm field of the fence instruction.
type FenceMode uint8

const (
	FenceModeNormal FenceMode = 0b0000
	FenceModeTSO    FenceMode = 0b1000
)

// NewFenceMode validates the fm field: only 0 and 0b1000 (fence.tso) are
// legal; fence.tso additionally requires pred=succ=rw.
func NewFenceMode(bits uint32, pred, succ FenceSet) (FenceMode, error) {
	switch FenceMode(bits) {
	case FenceModeNormal:
		return FenceModeNormal, nil
	case FenceModeTSO:
		if pred != FenceR|FenceW || succ != FenceR|FenceW {
			return 0, rverr.New(rverr.MalformedWord, "fence.tso requires pred=succ=rw")
		}
		return FenceModeTSO, nil
	default:
		return 0, rverr.Newf(rverr.MalformedWord, "reserved fence mode %#x", bits)
	}
}
