// Package codec implements the bidirectional binary encoding between
// isa.Instruction/isa.CInstruction values and their 32-bit/16-bit
// machine-word representations: one file per instruction class, with
// a single top-level Decode/Encode dispatch in codec.go.
package codec

import (
	"github.com/lookbusy1344/riscv-codec/reg"
)

func rd(word uint32) reg.IntReg  { return reg.IntReg((word >> 7) & 0x1F) }
func rs1(word uint32) reg.IntReg { return reg.IntReg((word >> 15) & 0x1F) }
func rs2(word uint32) reg.IntReg { return reg.IntReg((word >> 20) & 0x1F) }
func rs3(word uint32) reg.IntReg { return reg.IntReg((word >> 27) & 0x1F) }

func funct3(word uint32) uint32 { return (word >> 12) & 0x7 }
func funct7(word uint32) uint32 { return (word >> 25) & 0x7F }
func funct2(word uint32) uint32 { return (word >> 25) & 0x3 }
func funct5(word uint32) uint32 { return (word >> 27) & 0x1F }

func emitRd(r reg.IntReg) uint32  { return r.Index() << 7 }
func emitRs1(r reg.IntReg) uint32 { return r.Index() << 15 }
func emitRs2(r reg.IntReg) uint32 { return r.Index() << 20 }
func emitRs3(r reg.IntReg) uint32 { return r.Index() << 27 }

func emitFunct3(f uint32) uint32 { return (f & 0x7) << 12 }
func emitFunct7(f uint32) uint32 { return (f & 0x7F) << 25 }
func emitFunct2(f uint32) uint32 { return (f & 0x3) << 25 }
func emitFunct5(f uint32) uint32 { return (f & 0x1F) << 27 }

func frd(word uint32) reg.FloatReg  { return reg.FloatReg((word >> 7) & 0x1F) }
func frs1(word uint32) reg.FloatReg { return reg.FloatReg((word >> 15) & 0x1F) }
func frs2(word uint32) reg.FloatReg { return reg.FloatReg((word >> 20) & 0x1F) }
func frs3(word uint32) reg.FloatReg { return reg.FloatReg((word >> 27) & 0x1F) }

func emitFrd(r reg.FloatReg) uint32  { return r.Index() << 7 }
func emitFrs1(r reg.FloatReg) uint32 { return r.Index() << 15 }
func emitFrs2(r reg.FloatReg) uint32 { return r.Index() << 20 }
func emitFrs3(r reg.FloatReg) uint32 { return r.Index() << 27 }

// compressed-word field helpers

func cOpcode(half uint16) uint16 { return half & 0x3 }
func cFunct3(half uint16) uint16 { return (half >> 13) & 0x7 }
func cFunct2High(half uint16) uint16 { return (half >> 10) & 0x3 } // CA-format funct2 at bits 11..10
func cFunct2Low(half uint16) uint16  { return (half >> 5) & 0x3 }  // CA-format funct2 at bits 6..5
func cRd(half uint16) reg.IntReg     { return reg.IntReg((half >> 7) & 0x1F) }
func cRs2Full(half uint16) reg.IntReg { return reg.IntReg((half >> 2) & 0x1F) }

// cRdShort reads the 3-bit rd'/rs1' field at bits 9..7 (CA/CB formats);
// cRdLow reads the 3-bit rd' field at bits 4..2 (CIW/CL formats; in CL,
// bits 9..7 carry rs1', in CIW they hold immediate bits).
func cRdShort(half uint16) reg.CReg  { return reg.CReg((half >> 7) & 0x7) }
func cRdLow(half uint16) reg.CReg    { return reg.CReg((half >> 2) & 0x7) }
func cRs1Short(half uint16) reg.CReg { return reg.CReg((half >> 7) & 0x7) }
func cRs2Short(half uint16) reg.CReg { return reg.CReg((half >> 2) & 0x7) }

func emitCRd(r reg.IntReg) uint16      { return uint16(r.Index()&0x1F) << 7 }
func emitCRs2Full(r reg.IntReg) uint16 { return uint16(r.Index()&0x1F) << 2 }
func emitCRdShort(r reg.CReg) uint16   { return uint16(r.Index()&0x7) << 7 }
func emitCRdLow(r reg.CReg) uint16     { return uint16(r.Index()&0x7) << 2 }
func emitCRs2Short(r reg.CReg) uint16  { return uint16(r.Index()&0x7) << 2 }

// emitCRs1Short shares bit position 9..7 with emitCRdShort: the CL/CS
// formats carry rs1' there while rd'/rs2' sits at bits 4..2.
func emitCRs1Short(r reg.CReg) uint16 { return emitCRdShort(r) }
