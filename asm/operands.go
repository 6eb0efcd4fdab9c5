package asm

import (
	"github.com/lookbusy1344/riscv-codec/isa"
	"github.com/lookbusy1344/riscv-codec/rverr"
)

// expectArity rejects an operand list whose length doesn't match shape,
// naming the mnemonic and expected count in the error.
func expectArity(mnemonic string, operands []string, want int) error {
	if len(operands) != want {
		return rverr.Newf(rverr.WrongArity, "%s expects %d operand(s), got %d", mnemonic, want, len(operands))
	}
	return nil
}

// orderingSuffix walks the remaining mnemonic parts after the primary
// name and an optional size suffix, recognizing the atomic ordering
// suffixes: empty, aq, rl, or aqrl, and nothing after them.
func orderingSuffix(parts []string) (aq, rl bool, err error) {
	switch len(parts) {
	case 0:
		return false, false, nil
	case 1:
		switch parts[0] {
		case "aq":
			return true, false, nil
		case "rl":
			return false, true, nil
		case "aqrl":
			return true, true, nil
		default:
			return false, false, rverr.WithField(rverr.BadSuffix, parts[0], "expected aq, rl, or aqrl")
		}
	default:
		return false, false, rverr.WithField(rverr.BadSuffix, parts[0], "at most one ordering suffix is permitted")
	}
}

// roundingSuffix interprets a single optional rounding-mode suffix part;
// absence of a suffix means DYN.
func roundingSuffix(parts []string) (isa.RoundingMode, error) {
	if len(parts) == 0 {
		return isa.DYN, nil
	}
	if len(parts) > 1 {
		return 0, rverr.WithField(rverr.BadSuffix, parts[0], "at most one rounding-mode suffix is permitted")
	}
	rm, ok := isa.ParseRoundingMode(parts[0])
	if !ok {
		return 0, rverr.WithField(rverr.BadSuffix, parts[0], "not a valid rounding mode")
	}
	return rm, nil
}
