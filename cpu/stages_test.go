// Copyright 2020-2026 The mos6502 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import "testing"

// expectAccess checks one logged bus transaction.
func (m *machine) expectAccess(i int, write bool, addr uint16) {
	m.t.Helper()

	if i >= len(m.log) {
		m.t.Fatalf("access %d missing; only %d accesses logged", i, len(m.log))
	}
	a := m.log[i]
	kind := map[bool]string{false: "read", true: "write"}
	if a.write != write || a.addr != addr {
		m.t.Errorf("access %d incorrect. exp: %s $%04X, got: %s $%04X",
			i, kind[write], addr, kind[a.write], a.addr)
	}
}

func TestZeroPageIndexedWraps(t *testing.T) {
	// LDX #$01; INC $FF,X accesses zero page $00, never $0100.
	m := newMachine(t, []byte{0xa2, 0x01, 0xf6, 0xff})
	m.mem[0x00] = 0x41
	m.run(2)

	m.expectMem(0x00, 0x42)
	for _, a := range m.log {
		if a.addr == 0x0100 {
			t.Error("indexed zero-page access escaped page zero")
		}
	}
}

func TestZeroPageIndexedDummyRead(t *testing.T) {
	// LDX #$04; LDA $10,X first reads the un-indexed address $10.
	m := newMachine(t, []byte{0xa2, 0x04, 0xb5, 0x10})
	m.mem[0x14] = 0x99
	m.run(1)
	m.log = m.log[:0]
	m.run(1)

	m.expectAccess(0, false, origin+2) // opcode
	m.expectAccess(1, false, origin+3) // operand
	m.expectAccess(2, false, 0x0010)   // dummy read, un-indexed
	m.expectAccess(3, false, 0x0014)   // data
	m.expectA(0x99)
}

func TestAbsoluteIndexedPageCross(t *testing.T) {
	// LDX #$FF; LDA $1002,X crosses into $1101; the dummy read goes to
	// the pre-carry address $1001.
	m := newMachine(t, []byte{0xa2, 0xff, 0xbd, 0x02, 0x10})
	m.mem[0x1101] = 0x5e
	m.run(1)
	m.log = m.log[:0]
	cycles := m.run(1)

	m.expectCycles(cycles, 5)
	m.expectAccess(3, false, 0x1001) // wrong page
	m.expectAccess(4, false, 0x1101) // fixed
	m.expectA(0x5e)
}

func TestAbsoluteIndexedSamePage(t *testing.T) {
	// No page cross: 4 cycles, no extra read.
	m := newMachine(t, []byte{0xa2, 0x01, 0xbd, 0x00, 0x10})
	m.mem[0x1001] = 0x27
	m.run(1)
	m.log = m.log[:0]
	cycles := m.run(1)

	m.expectCycles(cycles, 4)
	m.expectA(0x27)
}

func TestIndexedStoreDummyRead(t *testing.T) {
	// STA $10F8,Y with Y=$10 always performs the wrong-page read, here
	// $1008, before writing $1108.
	m := newMachine(t, []byte{0xa0, 0x10, 0xa9, 0x3c, 0x99, 0xf8, 0x10})
	m.run(2)
	m.log = m.log[:0]
	cycles := m.run(1)

	m.expectCycles(cycles, 5)
	m.expectAccess(3, false, 0x1008)
	m.expectAccess(4, true, 0x1108)
	m.expectMem(0x1108, 0x3c)
}

func TestRMWDummyWrite(t *testing.T) {
	// INC $10 writes the unmodified value back before the result.
	m := newMachine(t, []byte{0xe6, 0x10})
	m.mem[0x10] = 0x41
	cycles := m.run(1)

	m.expectCycles(cycles, 5)
	m.expectAccess(2, false, 0x0010)
	m.expectAccess(3, true, 0x0010)
	m.expectAccess(4, true, 0x0010)
	if m.log[3].val != 0x41 || m.log[4].val != 0x42 {
		t.Errorf("RMW wrote $%02X then $%02X, want $41 then $42",
			m.log[3].val, m.log[4].val)
	}
}

func TestIndirectIndexedPageCross(t *testing.T) {
	// LDY #$80; LDA ($20),Y with ($20) = $40C0: crosses to $4140 with a
	// dummy read at $4040.
	m := newMachine(t, []byte{0xa0, 0x80, 0xb1, 0x20})
	m.mem[0x20] = 0xc0
	m.mem[0x21] = 0x40
	m.mem[0x4140] = 0x7d
	m.run(1)
	m.log = m.log[:0]
	cycles := m.run(1)

	m.expectCycles(cycles, 6)
	m.expectAccess(4, false, 0x4040)
	m.expectAccess(5, false, 0x4140)
	m.expectA(0x7d)
}

func TestIndirectPointerWraps(t *testing.T) {
	// A (zp),Y pointer at $FF takes its high byte from $00.
	m := newMachine(t, []byte{0xa0, 0x00, 0xb1, 0xff})
	m.mem[0xff] = 0x34
	m.mem[0x00] = 0x12
	m.mem[0x1234] = 0x88
	m.run(2)

	m.expectA(0x88)
}

func TestIndexedIndirect(t *testing.T) {
	// LDX #$04; LDA ($FE,X): pointer wraps to $02/$03.
	m := newMachine(t, []byte{0xa2, 0x04, 0xa1, 0xfe})
	m.mem[0x02] = 0x00
	m.mem[0x03] = 0x30
	m.mem[0x3000] = 0x6f
	m.run(1)
	m.log = m.log[:0]
	cycles := m.run(1)

	m.expectCycles(cycles, 6)
	m.expectAccess(2, false, 0x00fe) // dummy read of un-indexed pointer
	m.expectAccess(3, false, 0x0002)
	m.expectAccess(4, false, 0x0003)
	m.expectAccess(5, false, 0x3000)
	m.expectA(0x6f)
}

func TestJmpIndirectPageBug(t *testing.T) {
	// JMP ($03FF) reads the high byte from $0300, not $0400.
	m := newMachine(t, []byte{0x6c, 0xff, 0x03})
	m.mem[0x03ff] = 0x00
	m.mem[0x0300] = 0x05
	m.mem[0x0400] = 0x99 // would be read by a correct CPU
	cycles := m.run(1)

	m.expectCycles(cycles, 5)
	m.expectAccess(3, false, 0x03ff)
	m.expectAccess(4, false, 0x0300)
	m.expectPC(0x0500)
}

func TestBranchCycles(t *testing.T) {
	// Not taken: 2 cycles.
	m := newMachine(t, []byte{0x18, 0xb0, 0x10}) // CLC; BCS +$10
	m.run(1)
	cycles := m.run(1)
	m.expectCycles(cycles, 2)
	m.expectPC(origin + 3)

	// Taken, same page: 3 cycles.
	m = newMachine(t, []byte{0x18, 0x90, 0x10}) // CLC; BCC +$10
	m.run(1)
	cycles = m.run(1)
	m.expectCycles(cycles, 3)
	m.expectPC(origin + 3 + 0x10)

	// Taken, page cross: 4 cycles.
	m = newMachine(t, []byte{0x18, 0x90, 0x80}) // CLC; BCC -$80
	m.run(1)
	cycles = m.run(1)
	m.expectCycles(cycles, 4)
	m.expectPC(origin + 3 - 0x80)
}

func TestUndocumentedLAX(t *testing.T) {
	// LAX $10 loads A and X together.
	m := newMachine(t, []byte{0xa7, 0x10})
	m.mem[0x10] = 0xc3
	cycles := m.run(1)

	m.expectCycles(cycles, 3)
	m.expectA(0xc3)
	m.expectX(0xc3)
	m.expectFlags("N", "Z")
}

func TestUndocumentedSAX(t *testing.T) {
	// LDA #$F3; LDX #$35; SAX $10 stores A AND X, flags untouched.
	m := newMachine(t, []byte{0xa9, 0xf3, 0xa2, 0x35, 0x87, 0x10})
	m.run(3)

	m.expectMem(0x10, 0x31)
	m.expectFlags("", "ZN") // still the flags from LDX #$35
}

func TestUndocumentedDCP(t *testing.T) {
	// LDA #$40; DCP $10 with $10 = $41: memory decrements, compare hits.
	m := newMachine(t, []byte{0xa9, 0x40, 0xc7, 0x10})
	m.mem[0x10] = 0x41
	cycles := m.run(2)

	m.expectCycles(cycles, 2+5)
	m.expectMem(0x10, 0x40)
	m.expectFlags("CZ", "N")
}

func TestUndocumentedISB(t *testing.T) {
	// SEC; LDA #$50; ISB $10 with $10 = $0F: memory becomes $10,
	// A = $50 - $10 = $40.
	m := newMachine(t, []byte{0x38, 0xa9, 0x50, 0xe7, 0x10})
	m.mem[0x10] = 0x0f
	m.run(3)

	m.expectMem(0x10, 0x10)
	m.expectA(0x40)
	m.expectFlags("C", "ZN")
}

func TestUndocumentedSLO(t *testing.T) {
	// LDA #$01; SLO $10 with $10 = $81: memory $02 with carry out,
	// A = $01 | $02.
	m := newMachine(t, []byte{0xa9, 0x01, 0x07, 0x10})
	m.mem[0x10] = 0x81
	m.run(2)

	m.expectMem(0x10, 0x02)
	m.expectA(0x03)
	m.expectFlags("C", "ZN")
}

func TestUndocumentedRMWCycleCounts(t *testing.T) {
	// The undocumented (zp,X) and (zp),Y RMW forms take 8 cycles.
	m := newMachine(t, []byte{0xa2, 0x00, 0x03, 0x20}) // LDX #0; SLO ($20,X)
	m.mem[0x20] = 0x00
	m.mem[0x21] = 0x10
	m.run(1)
	cycles := m.run(1)
	m.expectCycles(cycles, 8)

	m = newMachine(t, []byte{0xa0, 0x00, 0x13, 0x20}) // LDY #0; SLO ($20),Y
	m.mem[0x20] = 0x00
	m.mem[0x21] = 0x10
	m.run(1)
	cycles = m.run(1)
	m.expectCycles(cycles, 8)
}

func TestUndocumentedImmediates(t *testing.T) {
	// ANC #$C0 with A=$C0: N into C.
	m := newMachine(t, []byte{0xa9, 0xc0, 0x0b, 0xc0})
	m.run(2)
	m.expectA(0xc0)
	m.expectFlags("CN", "Z")

	// ASR #$03 with A=$03: AND then LSR.
	m = newMachine(t, []byte{0xa9, 0x03, 0x4b, 0x03})
	m.run(2)
	m.expectA(0x01)
	m.expectFlags("C", "ZN")

	// ARR #$FF with A=$FF, C=1: rotate $FF right with carry in.
	m = newMachine(t, []byte{0x38, 0xa9, 0xff, 0x6b, 0xff})
	m.run(3)
	m.expectA(0xff)
	m.expectFlags("CN", "ZV") // bit6=1 -> C; bit6 == bit5 -> V clear

	// SBX #$02 with A=$F3, X=$35: X = (A AND X) - 2.
	m = newMachine(t, []byte{0xa9, 0xf3, 0xa2, 0x35, 0xcb, 0x02})
	m.run(3)
	m.expectX(0x2f)
	m.expectFlags("C", "ZN")

	// LXA #$55 with A=$00: (A | magic) AND M into A and X.
	m = newMachine(t, []byte{0xa9, 0x00, 0xab, 0x55})
	m.run(2)
	m.expectA(0x44)
	m.expectX(0x44)

	// XAA #$55 with A=$00, X=$FF.
	m = newMachine(t, []byte{0xa9, 0x00, 0xa2, 0xff, 0x8b, 0x55})
	m.run(3)
	m.expectA(0x44)
}

func TestUndocumentedLAS(t *testing.T) {
	// LDX #$80; TXS; LAS $1000,Y with Y=0, $1000 = $8F: SP AND M into
	// A, X and SP.
	m := newMachine(t, []byte{0xa2, 0x80, 0x9a, 0xa0, 0x00, 0xbb, 0x00, 0x10})
	m.mem[0x1000] = 0x8f
	m.run(4)

	m.expectA(0x80)
	m.expectX(0x80)
	m.expectSP(0x80)
	m.expectFlags("N", "Z")
}

func TestSHXStoreAndCorruption(t *testing.T) {
	// No page cross: SHX $12C0,Y with Y=$10, X=$51 stores
	// X AND (high+1) = $51 AND $13 at $12D0.
	m := newMachine(t, []byte{0xa2, 0x51, 0xa0, 0x10, 0x9e, 0xc0, 0x12})
	m.run(3)
	m.expectMem(0x12d0, 0x51&0x13)

	// Page cross: SHX $12C0,Y with Y=$70 would target $1330; the stored
	// value $51 AND $13 = $11 replaces the high byte, so the write goes
	// to $1130.
	m = newMachine(t, []byte{0xa2, 0x51, 0xa0, 0x70, 0x9e, 0xc0, 0x12})
	m.run(3)
	m.expectMem(0x1130, 0x11)
	m.expectMem(0x1330, 0x00)
}

func TestSHAStore(t *testing.T) {
	// SHA ($20),Y with A=$33, X=$F7, Y=$10, pointer -> $4000: stores
	// A AND X AND (high+1) at $4010.
	m := newMachine(t, []byte{0xa9, 0x33, 0xa2, 0xf7, 0xa0, 0x10, 0x93, 0x20})
	m.mem[0x20] = 0x00
	m.mem[0x21] = 0x40
	m.run(4)

	m.expectMem(0x4010, 0x33&0xf7&0x41)
}

func TestSHSSetsStackPointer(t *testing.T) {
	// SHS $1000,Y with A=$F0, X=$3C, Y=0: SP = A AND X, store masked by
	// high+1.
	m := newMachine(t, []byte{0xa9, 0xf0, 0xa2, 0x3c, 0x9b, 0x00, 0x10})
	m.run(3)

	m.expectSP(0x30)
	m.expectMem(0x1000, 0x30&0x11)
}

func TestImpliedDummyRead(t *testing.T) {
	// A single-byte instruction reads the next opcode byte and discards
	// it without bumping PC.
	m := newMachine(t, []byte{0xea, 0xea})
	m.step()
	m.step()

	m.expectAccess(0, false, origin)
	m.expectAccess(1, false, origin+1)
	m.expectPC(origin + 1)
}

func TestUndocumentedNOPReads(t *testing.T) {
	// NOP $10 (opcode $04) performs the zero-page read.
	m := newMachine(t, []byte{0x04, 0x10})
	cycles := m.run(1)

	m.expectCycles(cycles, 3)
	m.expectAccess(2, false, 0x0010)
	m.expectPC(origin + 2)
}
