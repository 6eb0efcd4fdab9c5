// Package riscv is the composition root for the codec: it re-exports the
// public decode/encode/assemble operations as thin wrappers over the
// codec and asm packages.
package riscv

import (
	"github.com/lookbusy1344/riscv-codec/asm"
	"github.com/lookbusy1344/riscv-codec/codec"
	"github.com/lookbusy1344/riscv-codec/isa"
)

// Instruction is a tagged sum of every supported 32-bit instruction.
type Instruction = isa.Instruction

// CInstruction is a tagged sum of every supported 16-bit compressed
// instruction.
type CInstruction = isa.CInstruction

// AssemblyResult is the tagged union produced by AssembleLine: a line
// assembles to exactly one of a full or a compressed instruction.
type AssemblyResult = asm.AssemblyResult

// Decode converts a 32-bit instruction word into its structured value.
func Decode(word uint32) (Instruction, error) {
	return codec.Decode(word)
}

// Encode converts a structured instruction value back into its 32-bit
// word. The instruction must already be validated; Encode does not
// re-check operand ranges.
func Encode(i Instruction) (uint32, error) {
	return codec.Encode(i)
}

// DecodeCompressed converts a 16-bit compressed instruction word into its
// structured value.
func DecodeCompressed(half uint16) (CInstruction, error) {
	return codec.DecodeCompressed(half)
}

// EncodeCompressed converts a structured compressed instruction value back
// into its 16-bit word.
func EncodeCompressed(c CInstruction) (uint16, error) {
	return codec.EncodeCompressed(c)
}

// AssembleLine parses one line of RISC-V assembly text into its tagged
// instruction value.
func AssembleLine(line string) (AssemblyResult, error) {
	return asm.AssembleLine(line)
}
