// Copyright 2020-2026 The mos6502 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/c1541/mos6502/cpu"
)

var (
	irqHandler uint16 = 0x0400
	nmiHandler uint16 = 0x0500
)

// withVectors points the IRQ/BRK and NMI vectors at the test handlers.
func (m *machine) withVectors() *machine {
	m.mem[0xfffe] = uint8(irqHandler)
	m.mem[0xffff] = uint8(irqHandler >> 8)
	m.mem[0xfffa] = uint8(nmiHandler)
	m.mem[0xfffb] = uint8(nmiHandler >> 8)
	return m
}

func TestResetSequence(t *testing.T) {
	m := &machine{t: t}
	m.mem[0xfffc] = 0x00
	m.mem[0xfffd] = 0x02

	c, err := cpu.New(m.read, m.write)
	if err != nil {
		t.Fatal(err)
	}
	m.cpu = c

	spBefore := m.cpu.Regs().SP
	for i := 0; i < 7; i++ {
		m.step()
	}

	// Seven cycles, all reads: the three stack pushes become reads.
	if len(m.log) != 7 {
		t.Fatalf("reset took %d cycles, want 7", len(m.log))
	}
	for i, a := range m.log {
		if a.write {
			t.Errorf("reset cycle %d wrote to the bus", i)
		}
	}
	m.expectAccess(5, false, 0xfffc)
	m.expectAccess(6, false, 0xfffd)

	m.expectPC(0x0200)
	m.expectSP(spBefore - 3)
	m.expectFlags("I", "B")
	if !m.cpu.Sync() {
		t.Error("not at sync after reset")
	}
}

func TestConstructorRejectsNilCallbacks(t *testing.T) {
	m := &machine{t: t}
	if _, err := cpu.New(nil, m.write); err != cpu.ErrNoReadFunc {
		t.Errorf("got %v, want ErrNoReadFunc", err)
	}
	if _, err := cpu.New(m.read, nil); err != cpu.ErrNoWriteFunc {
		t.Errorf("got %v, want ErrNoWriteFunc", err)
	}
}

func TestIRQServicedWhenEnabled(t *testing.T) {
	// CLI; NOP; NOP. IRQ is asserted before CLI runs; it must not be
	// taken until after the instruction following CLI.
	m := newMachine(t, []byte{0x58, 0xea, 0xea}).withVectors()
	m.cpu.AssertIRQ()

	m.run(1) // CLI
	m.expectFlags("", "I")

	m.run(1) // the one instruction that still runs
	m.expectPC(origin + 2)

	cycles := m.run(1) // interrupt entry
	m.expectCycles(cycles, 7)
	m.expectPC(irqHandler)
	m.expectFlags("I", "")

	// The pushed status has B clear for a hardware interrupt.
	sp := m.cpu.Regs().SP
	if v := m.mem[0x0100|uint16(sp+1)]; v&0x10 != 0 {
		t.Errorf("pushed status $%02X has B set for hardware IRQ", v)
	}
}

func TestIRQMaskedByIFlag(t *testing.T) {
	// I is set after reset; an asserted IRQ never fires.
	m := newMachine(t, []byte{0xea, 0xea, 0xea}).withVectors()
	m.cpu.AssertIRQ()
	m.run(3)

	m.expectPC(origin + 3)
}

func TestIRQIsLevelSensitive(t *testing.T) {
	// An IRQ released before the poll is never serviced.
	m := newMachine(t, []byte{0x58, 0xea, 0xea, 0xea}).withVectors()
	m.run(2) // CLI; NOP
	m.cpu.AssertIRQ()
	m.cpu.ReleaseIRQ()
	m.run(2)

	m.expectPC(origin + 4)
}

func TestRTIRestoresInterruptedProgram(t *testing.T) {
	// CLI; NOP; ... IRQ; handler is RTI.
	m := newMachine(t, []byte{0x58, 0xea, 0xea, 0xea}).withVectors()
	m.mem[irqHandler] = 0x40 // RTI
	m.cpu.AssertIRQ()

	m.run(2) // CLI, NOP; IRQ entry is next
	m.run(1) // interrupt entry
	m.expectPC(irqHandler)
	m.cpu.ReleaseIRQ()

	cycles := m.run(1) // RTI
	m.expectCycles(cycles, 6)
	m.expectPC(origin + 2)
	m.expectFlags("", "I") // the pre-interrupt status had I clear
}

func TestNMIEdgeTriggered(t *testing.T) {
	m := newMachine(t, []byte{0xea, 0xea, 0xea, 0xea}).withVectors()
	m.mem[nmiHandler] = 0x40 // RTI

	m.cpu.AssertNMI()
	cycles := m.run(1)
	m.expectCycles(cycles, 7)
	m.expectPC(nmiHandler)

	// Line still asserted: no new edge, so after RTI the program runs on.
	m.run(1) // RTI
	m.run(2)
	m.expectPC(origin + 2)

	// A release and re-assert is a fresh edge.
	m.cpu.ReleaseNMI()
	m.cpu.AssertNMI()
	m.run(1)
	m.expectPC(nmiHandler)
}

func TestNMIIgnoresIFlag(t *testing.T) {
	// I is set after reset; NMI fires anyway.
	m := newMachine(t, []byte{0xea, 0xea}).withVectors()
	m.cpu.AssertNMI()
	m.run(1)

	m.expectPC(nmiHandler)
}

func TestBranchTakenMasksIRQ(t *testing.T) {
	// CLI; NOP; BCC +0; NOP. The IRQ asserts during the taken same-page
	// branch, so it is delayed until after the following instruction.
	m := newMachine(t, []byte{0x58, 0xea, 0x90, 0x00, 0xea}).withVectors()
	m.run(2) // CLI; NOP (consumes the CLI mask)

	m.step() // branch T0: opcode fetch
	m.cpu.AssertIRQ()
	m.step() // T1: displacement, branch taken
	m.step() // T2: done, 3 cycles
	if !m.cpu.Sync() {
		t.Fatal("taken same-page branch did not end after 3 cycles")
	}

	m.run(1) // the masked poll lets one more instruction through
	m.expectPC(origin + 5)

	m.run(1)
	m.expectPC(irqHandler)
}

func TestBranchPageCrossDoesNotMaskIRQ(t *testing.T) {
	// The 4-cycle taken branch polls normally.
	m := newMachine(t, []byte{0x58, 0xea, 0x90, 0x80}).withVectors()
	m.run(2)

	m.step()
	m.cpu.AssertIRQ()
	m.run(1)

	m.run(1)
	m.expectPC(irqHandler)
}

func TestBRKPushesBSet(t *testing.T) {
	m := newMachine(t, []byte{0x00, 0xea}).withVectors()
	sp := m.cpu.Regs().SP
	cycles := m.run(1)

	m.expectCycles(cycles, 7)
	m.expectPC(irqHandler)
	m.expectFlags("I", "")

	// Return address is PC+2; status pushed with B and bit 5 set.
	if hi, lo := m.mem[0x0100|uint16(sp)], m.mem[0x0100|uint16(sp-1)]; hi != 0x02 || lo != 0x02 {
		t.Errorf("pushed return address $%02X%02X, want $0202", hi, lo)
	}
	if v := m.mem[0x0100|uint16(sp-2)]; v&0x30 != 0x30 {
		t.Errorf("pushed status $%02X missing B or bit 5", v)
	}
}

func TestNMIHijacksBRK(t *testing.T) {
	// An NMI edge during BRK's push phase steals the vector; the pushed
	// status still has B set.
	m := newMachine(t, []byte{0x00, 0xea}).withVectors()
	m.mem[nmiHandler] = 0xea
	m.mem[nmiHandler+1] = 0xea
	sp := m.cpu.Regs().SP

	m.step() // T0: BRK fetched
	m.step() // T1: dummy read
	m.cpu.AssertNMI()
	m.step() // T2: push PCH
	m.step() // T3: push PCL
	m.step() // T4: morph point, push status
	m.step() // T5: vector low
	m.step() // T6: vector high

	m.expectPC(nmiHandler)
	if v := m.mem[0x0100|uint16(sp-2)]; v&0x10 == 0 {
		t.Errorf("pushed status $%02X lost B during hijack", v)
	}

	// The NMI was consumed: the handler runs undisturbed.
	m.run(2)
	m.expectPC(nmiHandler + 2)
}

func TestNMIHijacksIRQ(t *testing.T) {
	// An NMI edge while the IRQ sequence pushes PC morphs it into an NMI.
	m := newMachine(t, []byte{0x58, 0xea, 0xea}).withVectors()
	m.cpu.AssertIRQ()
	m.run(2) // CLI; NOP; interrupt entry is next

	m.step() // poll cycle: dummy read
	m.step() // T1: dummy read
	m.cpu.AssertNMI()
	m.step() // T2: push PCH
	m.step() // T3: push PCL
	m.step() // T4: morph
	m.step() // T5
	m.step() // T6

	m.expectPC(nmiHandler)
}

func TestJamHaltsUntilReset(t *testing.T) {
	m := newMachine(t, []byte{0x02}).withVectors()
	m.run(1)

	if !m.cpu.Halted() {
		t.Fatal("CPU not halted after JAM")
	}

	// Every further cycle is a read of PC with no progress.
	pc := m.cpu.Regs().PC
	for i := 0; i < 4; i++ {
		m.step()
		m.expectPC(pc)
		if a := m.log[len(m.log)-1]; a.write || a.addr != pc {
			t.Errorf("jammed cycle %d: got %+v, want read of $%04X", i, a, pc)
		}
	}

	m.cpu.Reset()
	for i := 0; i < 7; i++ {
		m.step()
	}
	if m.cpu.Halted() {
		t.Error("CPU still halted after reset")
	}
	m.expectPC(origin)
}

func TestSOSetsOverflow(t *testing.T) {
	m := newMachine(t, []byte{0xea})
	m.expectFlags("", "V")
	m.cpu.SO()
	m.expectFlags("V", "")
}

func TestRDYHaltsOnReads(t *testing.T) {
	// LDA #$55; STA $1000. RDY drops before STA's write cycle: the write
	// still completes, then the CPU halts on the next read cycle.
	m := newMachine(t, []byte{0xa9, 0x55, 0x8d, 0x00, 0x10, 0xea},
		cpu.WithRDY(true))
	m.run(1) // LDA

	m.step() // STA fetch
	m.step() // operand low
	m.step() // operand high
	m.cpu.RDY(false)

	m.step() // write cycle: not stalled
	m.expectMem(0x1000, 0x55)
	if m.cpu.Halted() {
		t.Fatal("CPU halted on a write cycle")
	}

	// Now at the next fetch, a read cycle: the bus sees the read but the
	// CPU does not advance.
	pc := m.cpu.Regs().PC
	for i := 0; i < 3; i++ {
		m.step()
		if !m.cpu.Halted() {
			t.Fatal("CPU not halted on read cycle with RDY low")
		}
		m.expectPC(pc)
		if a := m.log[len(m.log)-1]; a.write || a.addr != pc {
			t.Errorf("halted cycle: got %+v, want read of $%04X", a, pc)
		}
	}

	m.cpu.RDY(true)
	m.run(1) // the stalled fetch resumes into a full instruction
	if m.cpu.Halted() {
		t.Error("CPU still halted after RDY reasserted")
	}
	m.expectPC(pc + 1)
}

func TestIRQDisabled(t *testing.T) {
	m := newMachine(t, []byte{0x58, 0xea})
	if !m.cpu.IRQDisabled() {
		t.Error("I clear after reset")
	}
	m.run(1)
	if m.cpu.IRQDisabled() {
		t.Error("I still set after CLI")
	}
}
