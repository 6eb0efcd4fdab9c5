// Package asm implements the text codec: parsing one line of assembly
// into a tagged isa.Instruction/isa.CInstruction, the inverse of
// isa.Instruction.String()/isa.CInstruction.String().
//
// The grammar is a single line: mnemonic head with dotted suffixes,
// comma-separated operands. No labels, no directives, no macro
// expansion, no pseudo-instructions.
package asm

import (
	"strconv"
	"strings"

	"github.com/lookbusy1344/riscv-codec/rverr"
)

// splitHead separates the mnemonic head from the operand string on the
// first run of whitespace.
func splitHead(line string) (head, operands string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx+1:])
}

// splitMnemonic splits the head on '.' into the primary mnemonic and its
// suffix parts (size, precision, rounding mode, ordering, compressed
// prefix).
func splitMnemonic(head string) []string {
	return strings.Split(head, ".")
}

// splitOperands splits and trims a comma-separated operand list; an
// empty string yields zero operands.
func splitOperands(operands string) []string {
	if operands == "" {
		return nil
	}
	parts := strings.Split(operands, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// parseInt parses a decimal (optionally signed) or 0x-prefixed hex
// integer literal.
func parseInt(tok string) (int64, error) {
	t := strings.TrimSpace(tok)
	neg := false
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	} else if strings.HasPrefix(t, "+") {
		t = t[1:]
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X"), hexOrDec(t), 64)
	if err != nil {
		return 0, rverr.WithField(rverr.UnknownOperand, tok, "not a valid integer literal")
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}

func hexOrDec(t string) int {
	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		return 16
	}
	return 10
}

// splitAddress parses an "offset(base)" address operand into its integer
// offset and register-name base, requiring a closing paren.
func splitAddress(tok string) (offsetTok, baseTok string, err error) {
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return "", "", rverr.WithField(rverr.StructuralAssemblyError, tok, "expected offset(base) address form")
	}
	return strings.TrimSpace(tok[:open]), strings.TrimSpace(tok[open+1 : len(tok)-1]), nil
}
