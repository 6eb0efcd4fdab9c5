package isa

import "github.com/lookbusy1344/riscv-codec/rverr"

// RoundingMode is the 3-bit floating-point rounding-mode field. Values
// 5 and 6 are reserved and rejected on decode.
type RoundingMode uint8

const (
	RNE RoundingMode = 0
	RTZ RoundingMode = 1
	RDN RoundingMode = 2
	RUP RoundingMode = 3
	RMM RoundingMode = 4
	DYN RoundingMode = 7
)

// RoundingModeFromBits validates a 3-bit rounding-mode field.
func RoundingModeFromBits(bits uint32) (RoundingMode, error) {
	switch RoundingMode(bits & 0x7) {
	case RNE, RTZ, RDN, RUP, RMM, DYN:
		return RoundingMode(bits & 0x7), nil
	default:
		return 0, rverr.Newf(rverr.MalformedWord, "reserved rounding mode %#x", bits&0x7)
	}
}

func (r RoundingMode) String() string {
	switch r {
	case RNE:
		return "rne"
	case RTZ:
		return "rtz"
	case RDN:
		return "rdn"
	case RUP:
		return "rup"
	case RMM:
		return "rmm"
	case DYN:
		return "dyn"
	default:
		return "???"
	}
}

// ParseRoundingMode parses one of the six three-letter rounding tags.
func ParseRoundingMode(tok string) (RoundingMode, bool) {
	switch tok {
	case "rne":
		return RNE, true
	case "rtz":
		return RTZ, true
	case "rdn":
		return RDN, true
	case "rup":
		return RUP, true
	case "rmm":
		return RMM, true
	case "dyn":
		return DYN, true
	default:
		return 0, false
	}
}
