// Copyright 2020-2026 The mos6502 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// An opsym is an internal symbol associating an opcode's table entries
// with its implementation.
type opsym byte

const (
	symADC opsym = iota
	symAND
	symASL
	symBCC
	symBCS
	symBEQ
	symBIT
	symBMI
	symBNE
	symBPL
	symBRK
	symBVC
	symBVS
	symCLC
	symCLD
	symCLI
	symCLV
	symCMP
	symCPX
	symCPY
	symDEC
	symDEX
	symDEY
	symEOR
	symINC
	symINX
	symINY
	symJMP
	symJSR
	symLDA
	symLDX
	symLDY
	symLSR
	symNOP
	symORA
	symPHA
	symPHP
	symPLA
	symPLP
	symROL
	symROR
	symRTI
	symRTS
	symSBC
	symSEC
	symSED
	symSEI
	symSTA
	symSTX
	symSTY
	symTAX
	symTAY
	symTSX
	symTXA
	symTXS
	symTYA

	// undocumented
	symANC
	symARR
	symASR
	symDCP
	symISB
	symJAM
	symLAS
	symLAX
	symLXA
	symRLA
	symRRA
	symSAX
	symSBX
	symSHA
	symSHS
	symSHX
	symSHY
	symSLO
	symSRE
	symXAA
)

// Implementation for each opcode symbol.
type opcodeImpl struct {
	sym  opsym
	name string
	fn   stageFn
}

var impl = []opcodeImpl{
	{symADC, "ADC", (*CPU).adc},
	{symAND, "AND", (*CPU).and},
	{symASL, "ASL", (*CPU).asl},
	{symBCC, "BCC", (*CPU).bcc},
	{symBCS, "BCS", (*CPU).bcs},
	{symBEQ, "BEQ", (*CPU).beq},
	{symBIT, "BIT", (*CPU).bit},
	{symBMI, "BMI", (*CPU).bmi},
	{symBNE, "BNE", (*CPU).bne},
	{symBPL, "BPL", (*CPU).bpl},
	{symBRK, "BRK", (*CPU).brk},
	{symBVC, "BVC", (*CPU).bvc},
	{symBVS, "BVS", (*CPU).bvs},
	{symCLC, "CLC", (*CPU).clc},
	{symCLD, "CLD", (*CPU).cld},
	{symCLI, "CLI", (*CPU).cli},
	{symCLV, "CLV", (*CPU).clv},
	{symCMP, "CMP", (*CPU).cmp},
	{symCPX, "CPX", (*CPU).cpx},
	{symCPY, "CPY", (*CPU).cpy},
	{symDEC, "DEC", (*CPU).dec},
	{symDEX, "DEX", (*CPU).dex},
	{symDEY, "DEY", (*CPU).dey},
	{symEOR, "EOR", (*CPU).eor},
	{symINC, "INC", (*CPU).inc},
	{symINX, "INX", (*CPU).inx},
	{symINY, "INY", (*CPU).iny},
	{symJMP, "JMP", (*CPU).jmp},
	{symJSR, "JSR", (*CPU).jsr},
	{symLDA, "LDA", (*CPU).lda},
	{symLDX, "LDX", (*CPU).ldx},
	{symLDY, "LDY", (*CPU).ldy},
	{symLSR, "LSR", (*CPU).lsr},
	{symNOP, "NOP", (*CPU).nop},
	{symORA, "ORA", (*CPU).ora},
	{symPHA, "PHA", (*CPU).pha},
	{symPHP, "PHP", (*CPU).php},
	{symPLA, "PLA", (*CPU).pla},
	{symPLP, "PLP", (*CPU).plp},
	{symROL, "ROL", (*CPU).rol},
	{symROR, "ROR", (*CPU).ror},
	{symRTI, "RTI", (*CPU).rti},
	{symRTS, "RTS", (*CPU).rts},
	{symSBC, "SBC", (*CPU).sbc},
	{symSEC, "SEC", (*CPU).sec},
	{symSED, "SED", (*CPU).sed},
	{symSEI, "SEI", (*CPU).sei},
	{symSTA, "STA", (*CPU).sta},
	{symSTX, "STX", (*CPU).stx},
	{symSTY, "STY", (*CPU).sty},
	{symTAX, "TAX", (*CPU).tax},
	{symTAY, "TAY", (*CPU).tay},
	{symTSX, "TSX", (*CPU).tsx},
	{symTXA, "TXA", (*CPU).txa},
	{symTXS, "TXS", (*CPU).txs},
	{symTYA, "TYA", (*CPU).tya},

	{symANC, "ANC", (*CPU).anc},
	{symARR, "ARR", (*CPU).arr},
	{symASR, "ASR", (*CPU).asr},
	{symDCP, "DCP", (*CPU).dcp},
	{symISB, "ISB", (*CPU).isb},
	{symJAM, "JAM", (*CPU).jam},
	{symLAS, "LAS", (*CPU).las},
	{symLAX, "LAX", (*CPU).lax},
	{symLXA, "LXA", (*CPU).lxa},
	{symRLA, "RLA", (*CPU).rla},
	{symRRA, "RRA", (*CPU).rra},
	{symSAX, "SAX", (*CPU).sax},
	{symSBX, "SBX", (*CPU).sbx},
	{symSHA, "SHA", (*CPU).sha},
	{symSHS, "SHS", (*CPU).shs},
	{symSHX, "SHX", (*CPU).shx},
	{symSHY, "SHY", (*CPU).shy},
	{symSLO, "SLO", (*CPU).slo},
	{symSRE, "SRE", (*CPU).sre},
	{symXAA, "XAA", (*CPU).xaa},
}

// Mode identifies an addressing micro-sequence. Read, write and
// read-modify-write variants of a mode are distinct sequences with
// different cycle counts and bus traffic, so they are distinct modes.
type Mode byte

const (
	Implied Mode = iota // single byte, 2 cycles
	Immediate
	Relative
	ZeroPageRead
	ZeroPageWrite
	ZeroPageRMW
	ZeroPageXRead
	ZeroPageXWrite
	ZeroPageXRMW
	ZeroPageYRead
	ZeroPageYWrite
	AbsoluteRead
	AbsoluteWrite
	AbsoluteRMW
	AbsoluteXRead
	AbsoluteXWrite
	AbsoluteXRMW
	AbsoluteYRead
	AbsoluteYWrite
	AbsoluteYRMW
	IndexedIndirectRead  // (zp,X)
	IndexedIndirectWrite
	IndexedIndirectRMW
	IndirectIndexedRead // (zp),Y
	IndirectIndexedWrite
	IndirectIndexedRMW
	JumpAbsolute
	JumpIndirect
	Subroutine // JSR
	Return     // RTS
	ReturnInt  // RTI
	Push
	Pull
	Break
	Jam

	modeCount
)

// modeT1 maps each addressing mode to its first post-fetch stage.
var modeT1 = [modeCount]stageFn{
	Implied:              (*CPU).impliedT1,
	Immediate:            (*CPU).immediateT1,
	Relative:             (*CPU).relativeT1,
	ZeroPageRead:         (*CPU).zpReadT1,
	ZeroPageWrite:        (*CPU).zpWriteT1,
	ZeroPageRMW:          (*CPU).zpRMWT1,
	ZeroPageXRead:        (*CPU).zpxReadT1,
	ZeroPageXWrite:       (*CPU).zpxWriteT1,
	ZeroPageXRMW:         (*CPU).zpxRMWT1,
	ZeroPageYRead:        (*CPU).zpyReadT1,
	ZeroPageYWrite:       (*CPU).zpyWriteT1,
	AbsoluteRead:         (*CPU).absReadT1,
	AbsoluteWrite:        (*CPU).absWriteT1,
	AbsoluteRMW:          (*CPU).absRMWT1,
	AbsoluteXRead:        (*CPU).absxReadT1,
	AbsoluteXWrite:       (*CPU).absxWriteT1,
	AbsoluteXRMW:         (*CPU).absxRMWT1,
	AbsoluteYRead:        (*CPU).absyReadT1,
	AbsoluteYWrite:       (*CPU).absyWriteT1,
	AbsoluteYRMW:         (*CPU).absyRMWT1,
	IndexedIndirectRead:  (*CPU).idxReadT1,
	IndexedIndirectWrite: (*CPU).idxWriteT1,
	IndexedIndirectRMW:   (*CPU).idxRMWT1,
	IndirectIndexedRead:  (*CPU).idyReadT1,
	IndirectIndexedWrite: (*CPU).idyWriteT1,
	IndirectIndexedRMW:   (*CPU).idyRMWT1,
	JumpAbsolute:         (*CPU).jmpAbsT1,
	JumpIndirect:         (*CPU).jmpIndT1,
	Subroutine:           (*CPU).jsrT1,
	Return:               (*CPU).rtsT1,
	ReturnInt:            (*CPU).rtiT1,
	Push:                 (*CPU).pushT1,
	Pull:                 (*CPU).pullT1,
	Break:                (*CPU).brkT1,
	Jam:                  (*CPU).jamT1,
}

// Table entry binding an opcode byte to its symbol and addressing mode.
type opcodeData struct {
	sym    opsym
	mode   Mode
	opcode byte
}

// All 256 opcodes, documented set first.
var data = []opcodeData{
	{symLDA, Immediate, 0xa9},
	{symLDA, ZeroPageRead, 0xa5},
	{symLDA, ZeroPageXRead, 0xb5},
	{symLDA, AbsoluteRead, 0xad},
	{symLDA, AbsoluteXRead, 0xbd},
	{symLDA, AbsoluteYRead, 0xb9},
	{symLDA, IndexedIndirectRead, 0xa1},
	{symLDA, IndirectIndexedRead, 0xb1},

	{symLDX, Immediate, 0xa2},
	{symLDX, ZeroPageRead, 0xa6},
	{symLDX, ZeroPageYRead, 0xb6},
	{symLDX, AbsoluteRead, 0xae},
	{symLDX, AbsoluteYRead, 0xbe},

	{symLDY, Immediate, 0xa0},
	{symLDY, ZeroPageRead, 0xa4},
	{symLDY, ZeroPageXRead, 0xb4},
	{symLDY, AbsoluteRead, 0xac},
	{symLDY, AbsoluteXRead, 0xbc},

	{symSTA, ZeroPageWrite, 0x85},
	{symSTA, ZeroPageXWrite, 0x95},
	{symSTA, AbsoluteWrite, 0x8d},
	{symSTA, AbsoluteXWrite, 0x9d},
	{symSTA, AbsoluteYWrite, 0x99},
	{symSTA, IndexedIndirectWrite, 0x81},
	{symSTA, IndirectIndexedWrite, 0x91},

	{symSTX, ZeroPageWrite, 0x86},
	{symSTX, ZeroPageYWrite, 0x96},
	{symSTX, AbsoluteWrite, 0x8e},

	{symSTY, ZeroPageWrite, 0x84},
	{symSTY, ZeroPageXWrite, 0x94},
	{symSTY, AbsoluteWrite, 0x8c},

	{symADC, Immediate, 0x69},
	{symADC, ZeroPageRead, 0x65},
	{symADC, ZeroPageXRead, 0x75},
	{symADC, AbsoluteRead, 0x6d},
	{symADC, AbsoluteXRead, 0x7d},
	{symADC, AbsoluteYRead, 0x79},
	{symADC, IndexedIndirectRead, 0x61},
	{symADC, IndirectIndexedRead, 0x71},

	{symSBC, Immediate, 0xe9},
	{symSBC, ZeroPageRead, 0xe5},
	{symSBC, ZeroPageXRead, 0xf5},
	{symSBC, AbsoluteRead, 0xed},
	{symSBC, AbsoluteXRead, 0xfd},
	{symSBC, AbsoluteYRead, 0xf9},
	{symSBC, IndexedIndirectRead, 0xe1},
	{symSBC, IndirectIndexedRead, 0xf1},

	{symCMP, Immediate, 0xc9},
	{symCMP, ZeroPageRead, 0xc5},
	{symCMP, ZeroPageXRead, 0xd5},
	{symCMP, AbsoluteRead, 0xcd},
	{symCMP, AbsoluteXRead, 0xdd},
	{symCMP, AbsoluteYRead, 0xd9},
	{symCMP, IndexedIndirectRead, 0xc1},
	{symCMP, IndirectIndexedRead, 0xd1},

	{symCPX, Immediate, 0xe0},
	{symCPX, ZeroPageRead, 0xe4},
	{symCPX, AbsoluteRead, 0xec},

	{symCPY, Immediate, 0xc0},
	{symCPY, ZeroPageRead, 0xc4},
	{symCPY, AbsoluteRead, 0xcc},

	{symAND, Immediate, 0x29},
	{symAND, ZeroPageRead, 0x25},
	{symAND, ZeroPageXRead, 0x35},
	{symAND, AbsoluteRead, 0x2d},
	{symAND, AbsoluteXRead, 0x3d},
	{symAND, AbsoluteYRead, 0x39},
	{symAND, IndexedIndirectRead, 0x21},
	{symAND, IndirectIndexedRead, 0x31},

	{symORA, Immediate, 0x09},
	{symORA, ZeroPageRead, 0x05},
	{symORA, ZeroPageXRead, 0x15},
	{symORA, AbsoluteRead, 0x0d},
	{symORA, AbsoluteXRead, 0x1d},
	{symORA, AbsoluteYRead, 0x19},
	{symORA, IndexedIndirectRead, 0x01},
	{symORA, IndirectIndexedRead, 0x11},

	{symEOR, Immediate, 0x49},
	{symEOR, ZeroPageRead, 0x45},
	{symEOR, ZeroPageXRead, 0x55},
	{symEOR, AbsoluteRead, 0x4d},
	{symEOR, AbsoluteXRead, 0x5d},
	{symEOR, AbsoluteYRead, 0x59},
	{symEOR, IndexedIndirectRead, 0x41},
	{symEOR, IndirectIndexedRead, 0x51},

	{symBIT, ZeroPageRead, 0x24},
	{symBIT, AbsoluteRead, 0x2c},

	{symASL, Implied, 0x0a},
	{symASL, ZeroPageRMW, 0x06},
	{symASL, ZeroPageXRMW, 0x16},
	{symASL, AbsoluteRMW, 0x0e},
	{symASL, AbsoluteXRMW, 0x1e},

	{symLSR, Implied, 0x4a},
	{symLSR, ZeroPageRMW, 0x46},
	{symLSR, ZeroPageXRMW, 0x56},
	{symLSR, AbsoluteRMW, 0x4e},
	{symLSR, AbsoluteXRMW, 0x5e},

	{symROL, Implied, 0x2a},
	{symROL, ZeroPageRMW, 0x26},
	{symROL, ZeroPageXRMW, 0x36},
	{symROL, AbsoluteRMW, 0x2e},
	{symROL, AbsoluteXRMW, 0x3e},

	{symROR, Implied, 0x6a},
	{symROR, ZeroPageRMW, 0x66},
	{symROR, ZeroPageXRMW, 0x76},
	{symROR, AbsoluteRMW, 0x6e},
	{symROR, AbsoluteXRMW, 0x7e},

	{symINC, ZeroPageRMW, 0xe6},
	{symINC, ZeroPageXRMW, 0xf6},
	{symINC, AbsoluteRMW, 0xee},
	{symINC, AbsoluteXRMW, 0xfe},

	{symDEC, ZeroPageRMW, 0xc6},
	{symDEC, ZeroPageXRMW, 0xd6},
	{symDEC, AbsoluteRMW, 0xce},
	{symDEC, AbsoluteXRMW, 0xde},

	{symINX, Implied, 0xe8},
	{symINY, Implied, 0xc8},
	{symDEX, Implied, 0xca},
	{symDEY, Implied, 0x88},

	{symCLC, Implied, 0x18},
	{symSEC, Implied, 0x38},
	{symCLI, Implied, 0x58},
	{symSEI, Implied, 0x78},
	{symCLD, Implied, 0xd8},
	{symSED, Implied, 0xf8},
	{symCLV, Implied, 0xb8},

	{symBPL, Relative, 0x10},
	{symBMI, Relative, 0x30},
	{symBVC, Relative, 0x50},
	{symBVS, Relative, 0x70},
	{symBCC, Relative, 0x90},
	{symBCS, Relative, 0xb0},
	{symBNE, Relative, 0xd0},
	{symBEQ, Relative, 0xf0},

	{symBRK, Break, 0x00},

	{symJMP, JumpAbsolute, 0x4c},
	{symJMP, JumpIndirect, 0x6c},
	{symJSR, Subroutine, 0x20},
	{symRTS, Return, 0x60},
	{symRTI, ReturnInt, 0x40},

	{symTAX, Implied, 0xaa},
	{symTXA, Implied, 0x8a},
	{symTAY, Implied, 0xa8},
	{symTYA, Implied, 0x98},
	{symTXS, Implied, 0x9a},
	{symTSX, Implied, 0xba},

	{symPHA, Push, 0x48},
	{symPHP, Push, 0x08},
	{symPLA, Pull, 0x68},
	{symPLP, Pull, 0x28},

	{symNOP, Implied, 0xea},

	// undocumented

	{symJAM, Jam, 0x02},
	{symJAM, Jam, 0x12},
	{symJAM, Jam, 0x22},
	{symJAM, Jam, 0x32},
	{symJAM, Jam, 0x42},
	{symJAM, Jam, 0x52},
	{symJAM, Jam, 0x62},
	{symJAM, Jam, 0x72},
	{symJAM, Jam, 0x92},
	{symJAM, Jam, 0xb2},
	{symJAM, Jam, 0xd2},
	{symJAM, Jam, 0xf2},

	{symSLO, IndexedIndirectRMW, 0x03},
	{symSLO, ZeroPageRMW, 0x07},
	{symSLO, AbsoluteRMW, 0x0f},
	{symSLO, IndirectIndexedRMW, 0x13},
	{symSLO, ZeroPageXRMW, 0x17},
	{symSLO, AbsoluteYRMW, 0x1b},
	{symSLO, AbsoluteXRMW, 0x1f},

	{symRLA, IndexedIndirectRMW, 0x23},
	{symRLA, ZeroPageRMW, 0x27},
	{symRLA, AbsoluteRMW, 0x2f},
	{symRLA, IndirectIndexedRMW, 0x33},
	{symRLA, ZeroPageXRMW, 0x37},
	{symRLA, AbsoluteYRMW, 0x3b},
	{symRLA, AbsoluteXRMW, 0x3f},

	{symSRE, IndexedIndirectRMW, 0x43},
	{symSRE, ZeroPageRMW, 0x47},
	{symSRE, AbsoluteRMW, 0x4f},
	{symSRE, IndirectIndexedRMW, 0x53},
	{symSRE, ZeroPageXRMW, 0x57},
	{symSRE, AbsoluteYRMW, 0x5b},
	{symSRE, AbsoluteXRMW, 0x5f},

	{symRRA, IndexedIndirectRMW, 0x63},
	{symRRA, ZeroPageRMW, 0x67},
	{symRRA, AbsoluteRMW, 0x6f},
	{symRRA, IndirectIndexedRMW, 0x73},
	{symRRA, ZeroPageXRMW, 0x77},
	{symRRA, AbsoluteYRMW, 0x7b},
	{symRRA, AbsoluteXRMW, 0x7f},

	{symSAX, IndexedIndirectWrite, 0x83},
	{symSAX, ZeroPageWrite, 0x87},
	{symSAX, AbsoluteWrite, 0x8f},
	{symSAX, ZeroPageYWrite, 0x97},

	{symLAX, IndexedIndirectRead, 0xa3},
	{symLAX, ZeroPageRead, 0xa7},
	{symLAX, AbsoluteRead, 0xaf},
	{symLAX, IndirectIndexedRead, 0xb3},
	{symLAX, ZeroPageYRead, 0xb7},
	{symLAX, AbsoluteYRead, 0xbf},

	{symDCP, IndexedIndirectRMW, 0xc3},
	{symDCP, ZeroPageRMW, 0xc7},
	{symDCP, AbsoluteRMW, 0xcf},
	{symDCP, IndirectIndexedRMW, 0xd3},
	{symDCP, ZeroPageXRMW, 0xd7},
	{symDCP, AbsoluteYRMW, 0xdb},
	{symDCP, AbsoluteXRMW, 0xdf},

	{symISB, IndexedIndirectRMW, 0xe3},
	{symISB, ZeroPageRMW, 0xe7},
	{symISB, AbsoluteRMW, 0xef},
	{symISB, IndirectIndexedRMW, 0xf3},
	{symISB, ZeroPageXRMW, 0xf7},
	{symISB, AbsoluteYRMW, 0xfb},
	{symISB, AbsoluteXRMW, 0xff},

	{symANC, Immediate, 0x0b},
	{symANC, Immediate, 0x2b},
	{symASR, Immediate, 0x4b},
	{symARR, Immediate, 0x6b},
	{symXAA, Immediate, 0x8b},
	{symLXA, Immediate, 0xab},
	{symSBX, Immediate, 0xcb},
	{symSBC, Immediate, 0xeb},

	{symSHA, IndirectIndexedWrite, 0x93},
	{symSHA, AbsoluteYWrite, 0x9f},
	{symSHS, AbsoluteYWrite, 0x9b},
	{symSHY, AbsoluteXWrite, 0x9c},
	{symSHX, AbsoluteYWrite, 0x9e},
	{symLAS, AbsoluteYRead, 0xbb},

	{symNOP, Implied, 0x1a},
	{symNOP, Implied, 0x3a},
	{symNOP, Implied, 0x5a},
	{symNOP, Implied, 0x7a},
	{symNOP, Implied, 0xda},
	{symNOP, Implied, 0xfa},
	{symNOP, Immediate, 0x80},
	{symNOP, Immediate, 0x82},
	{symNOP, Immediate, 0x89},
	{symNOP, Immediate, 0xc2},
	{symNOP, Immediate, 0xe2},
	{symNOP, ZeroPageRead, 0x04},
	{symNOP, ZeroPageRead, 0x44},
	{symNOP, ZeroPageRead, 0x64},
	{symNOP, ZeroPageXRead, 0x14},
	{symNOP, ZeroPageXRead, 0x34},
	{symNOP, ZeroPageXRead, 0x54},
	{symNOP, ZeroPageXRead, 0x74},
	{symNOP, ZeroPageXRead, 0xd4},
	{symNOP, ZeroPageXRead, 0xf4},
	{symNOP, AbsoluteRead, 0x0c},
	{symNOP, AbsoluteXRead, 0x1c},
	{symNOP, AbsoluteXRead, 0x3c},
	{symNOP, AbsoluteXRead, 0x5c},
	{symNOP, AbsoluteXRead, 0x7c},
	{symNOP, AbsoluteXRead, 0xdc},
	{symNOP, AbsoluteXRead, 0xfc},
}

// An Instruction describes one opcode: its name, addressing mode, and the
// two dispatch entries the engine uses.
type Instruction struct {
	Name   string
	Mode   Mode
	Opcode byte
	t1     stageFn
	fn     stageFn
}

var instructions [256]Instruction

func init() {
	symToImpl := make(map[opsym]*opcodeImpl, len(impl))
	for i := range impl {
		symToImpl[impl[i].sym] = &impl[i]
	}

	for _, d := range data {
		if instructions[d.opcode].Name != "" {
			panic("duplicate opcode")
		}
		im := symToImpl[d.sym]
		instructions[d.opcode] = Instruction{
			Name:   im.name,
			Mode:   d.mode,
			Opcode: d.opcode,
			t1:     modeT1[d.mode],
			fn:     im.fn,
		}
	}

	for i := range instructions {
		if instructions[i].Name == "" {
			panic("missing instruction")
		}
	}
}

// Lookup returns the instruction table entry for an opcode byte.
func Lookup(opcode byte) *Instruction {
	return &instructions[opcode]
}
