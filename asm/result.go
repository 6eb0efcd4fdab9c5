package asm

import "github.com/lookbusy1344/riscv-codec/isa"

// AssemblyResult is the tagged union returned by AssembleLine: a line
// assembles to exactly one of a full 32-bit instruction or a 16-bit
// compressed one, never both.
type AssemblyResult struct {
	Compressed bool
	Full       isa.Instruction
	C          isa.CInstruction
}

func fullResult(i isa.Instruction) AssemblyResult {
	return AssemblyResult{Full: i}
}

func compressedResult(c isa.CInstruction) AssemblyResult {
	return AssemblyResult{Compressed: true, C: c}
}

// String renders whichever instruction this result carries.
func (r AssemblyResult) String() string {
	if r.Compressed {
		return r.C.String()
	}
	return r.Full.String()
}
