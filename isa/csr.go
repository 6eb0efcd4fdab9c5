package isa

import (
	"strconv"

	"github.com/lookbusy1344/riscv-codec/rverr"
)

// CSR is a 12-bit control/status register address. Unknown addresses
// are permitted and round-trip through their decimal textual form.
type CSR uint16

// NewCSR validates a 12-bit CSR address.
func NewCSR(addr uint32) (CSR, error) {
	if addr > 0xFFF {
		return 0, rverr.Newf(rverr.OutOfRangeImmediate, "CSR address %#x out of range 0..4095", addr)
	}
	return CSR(addr), nil
}

// Addr returns the 12-bit address.
func (c CSR) Addr() uint32 { return uint32(c) }

// commonly used unprivileged CSR addresses.
var csrNames = map[CSR]string{
	0x001: "fflags",
	0x002: "frm",
	0x003: "fcsr",
	0xC00: "cycle",
	0xC01: "time",
	0xC02: "instret",
	0xC80: "cycleh",
	0xC81: "timeh",
	0xC82: "instreth",
}

var csrByName = buildCSRIndex()

func buildCSRIndex() map[string]CSR {
	m := make(map[string]CSR, len(csrNames))
	for addr, name := range csrNames {
		m[name] = addr
	}
	return m
}

// String prints the canonical CSR name if known, else its decimal form.
func (c CSR) String() string {
	if name, ok := csrNames[c]; ok {
		return name
	}
	return strconv.FormatUint(uint64(c), 10)
}

// ParseCSR parses either a known CSR name or a decimal/hex address.
func ParseCSR(tok string) (CSR, error) {
	if addr, ok := csrByName[tok]; ok {
		return addr, nil
	}
	v, err := strconv.ParseUint(tok, 0, 32)
	if err != nil {
		return 0, rverr.WithField(rverr.UnknownOperand, tok, "not a valid CSR name or address")
	}
	return NewCSR(uint32(v))
}
