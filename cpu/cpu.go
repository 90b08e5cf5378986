// Copyright 2020-2026 The mos6502 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu emulates an NMOS 6502 CPU at single-cycle granularity.
//
// The real 6502 performs a bus read or a bus write on every clock cycle, no
// matter what it is doing. Many of those accesses are discarded by the CPU
// itself, but they are visible to every other device on the bus, and
// memory-mapped hardware reacts to them. This package reproduces each of
// those accesses on the cycle it happens, along with the undocumented
// opcodes, the indexed-addressing and JMP (indirect) page bugs, and the
// interrupt timing idiosyncrasies of the original silicon.
//
// An instruction executes over two to eight cycles. Each cycle is one stage
// function; Step runs exactly one stage, and each stage performs exactly one
// bus access through the caller-supplied read and write functions. After the
// address-mode stages complete, the opcode function runs. Branch
// instructions are the anomaly: their opcode runs in the first post-fetch
// cycle and may schedule further address-mode cycles afterward.
//
// The host supplies the bus:
//
//	read := func(addr uint16) uint8 { ... }
//	write := func(addr uint16, v uint8) { ... }
//	c, err := cpu.New(read, write)
//
// and then clocks the CPU by calling Step once per cycle. Unmapped reads
// should return the high byte of the address ("open bus") for faithful
// emulation; the bus model in the memory package does this.
package cpu

import "errors"

// Errors returned by New.
var (
	ErrNoReadFunc  = errors.New("cpu: nil bus read function")
	ErrNoWriteFunc = errors.New("cpu: nil bus write function")
)

// ReadFunc reads one byte from the data bus.
type ReadFunc func(addr uint16) uint8

// WriteFunc drives one byte onto the data bus.
type WriteFunc func(addr uint16, v uint8)

// A stageFn performs one cycle of work: a single bus access plus register
// updates, then selects the next stage.
type stageFn func(*CPU)

// Processor status flag bits. Bit 5 has no function but always reads as 1.
const (
	flagCarry     uint8 = 0x01
	flagZero      uint8 = 0x02
	flagInterrupt uint8 = 0x04
	flagDecimal   uint8 = 0x08
	flagBreak     uint8 = 0x10
	flagConstant  uint8 = 0x20
	flagOverflow  uint8 = 0x40
	flagSign      uint8 = 0x80
)

// Interrupt and reset vectors.
const (
	vectorNMI   uint16 = 0xfffa
	vectorReset uint16 = 0xfffc
	vectorIRQ   uint16 = 0xfffe
)

// Magic constants for the XAA and LXA opcodes. The value leaks in from
// whatever happens to be on the internal bus and differs between dies;
// 0xEE was measured on 1541 drive CPUs.
const (
	xaaMagic uint8 = 0xee
	lxaMagic uint8 = 0xee
)

// Registers is a snapshot of the CPU's programmer-visible state.
type Registers struct {
	PC     uint16
	SP     uint8
	A      uint8
	X      uint8
	Y      uint8
	Status uint8
}

// CPU is a single emulated 6502 core. It is not safe for concurrent use;
// the host drives it one cycle at a time from a single goroutine.
type CPU struct {
	read  ReadFunc
	write WriteFunc

	pc     uint16
	a      uint8
	x      uint8
	y      uint8
	sp     uint8
	status uint8

	opcode uint8
	ea     uint16 // effective address; holds the branch displacement for relative mode
	ia     uint16 // intermediate (pointer) address; holds the pre-branch PC for relative mode
	value  uint16 // operand scratch between address mode and opcode

	stage stageFn // next per-cycle stage
	op    stageFn // opcode body invoked when the address mode completes

	atSync bool // next stage is the instruction fetch
	accOp  bool // current instruction operates on the accumulator

	// pageCross is set by the indexed write stages; the SHA/SHX/SHY/SHS
	// group needs it to reproduce the address-corruption quirk.
	pageCross bool

	// wrote records whether the current cycle drove the bus; the RDY
	// logic uses it to tell read cycles from write cycles.
	wrote bool

	irqEnabled bool
	nmiEnabled bool
	rdyEnabled bool

	irqAsserted bool
	nmiAsserted bool
	nmiPending  bool

	// CLI and 3-cycle taken branches can each delay recognition of an
	// asserted IRQ by one instruction.
	cliMasking    bool
	branchMasking bool

	rdyAsserted bool
	rdyHalted   bool
	jammed      bool
}

// An Option configures optional CPU features at construction time.
type Option func(*CPU)

// WithIRQ enables or disables the IRQ input. Enabled by default.
func WithIRQ(enabled bool) Option {
	return func(c *CPU) { c.irqEnabled = enabled }
}

// WithNMI enables or disables the NMI input. Enabled by default; the 1541
// never wires it.
func WithNMI(enabled bool) Option {
	return func(c *CPU) { c.nmiEnabled = enabled }
}

// WithRDY enables the RDY input, which lets an external bus master halt the
// CPU during read cycles. Disabled by default.
func WithRDY(enabled bool) Option {
	return func(c *CPU) { c.rdyEnabled = enabled }
}

// New creates a CPU bound to the supplied bus functions and schedules the
// reset sequence: the first seven calls to Step perform it.
func New(read ReadFunc, write WriteFunc, opts ...Option) (*CPU, error) {
	if read == nil {
		return nil, ErrNoReadFunc
	}
	if write == nil {
		return nil, ErrNoWriteFunc
	}

	c := &CPU{
		read:        read,
		write:       write,
		status:      flagConstant,
		irqEnabled:  true,
		nmiEnabled:  true,
		rdyAsserted: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Reset()
	return c, nil
}

// Reset schedules the 7-cycle reset sequence to begin at the next Step. It
// also releases a JAM. A, X, Y and the decimal flag keep their prior values,
// as on real hardware.
func (c *CPU) Reset() {
	c.jammed = false
	c.rdyHalted = false
	c.nmiPending = false
	c.cliMasking = false
	c.branchMasking = false
	c.accOp = false
	c.status |= flagConstant
	c.nextStage((*CPU).resetT0)
}

// Step executes exactly one bus cycle: a single read or a single write.
//
// While RDY is enabled and deasserted, read cycles still place their address
// on the bus (the host observes the read) but the CPU holds: the stage's
// effects are discarded and the same cycle repeats until RDY is reasserted.
// Write cycles are never stalled.
func (c *CPU) Step() {
	if c.rdyEnabled && !c.rdyAsserted {
		snap := *c
		c.wrote = false
		c.stage(c)
		if !c.wrote {
			*c = snap
			c.rdyHalted = true
			return
		}
		c.rdyHalted = false
		return
	}
	c.rdyHalted = false
	c.stage(c)
}

// AssertIRQ asserts the level-sensitive IRQ line. The line stays asserted
// until ReleaseIRQ; recognition happens at the next interrupt poll.
func (c *CPU) AssertIRQ() { c.irqAsserted = true }

// ReleaseIRQ releases the IRQ line.
func (c *CPU) ReleaseIRQ() { c.irqAsserted = false }

// AssertNMI asserts the NMI line. NMI is edge-triggered: each
// released-to-asserted transition latches exactly one pending NMI.
func (c *CPU) AssertNMI() {
	if !c.nmiAsserted {
		c.nmiAsserted = true
		c.nmiPending = true
	}
}

// ReleaseNMI releases the NMI line.
func (c *CPU) ReleaseNMI() { c.nmiAsserted = false }

// SO sets the overflow flag immediately, emulating the SO pin.
func (c *CPU) SO() { c.status |= flagOverflow }

// RDY sets the state of the RDY line. It has no effect unless the CPU was
// constructed with WithRDY(true).
func (c *CPU) RDY(asserted bool) { c.rdyAsserted = asserted }

// Sync reports whether the next Step begins a new instruction, emulating
// the SYNC pin.
func (c *CPU) Sync() bool { return c.atSync }

// Halted reports whether the CPU is stalled, either by RDY or by a JAM
// opcode. A jammed CPU stays halted until Reset.
func (c *CPU) Halted() bool { return c.rdyHalted || c.jammed }

// IRQDisabled reports the state of the interrupt-disable flag.
func (c *CPU) IRQDisabled() bool { return c.status&flagInterrupt != 0 }

// Regs returns a snapshot of the programmer-visible registers.
func (c *CPU) Regs() Registers {
	return Registers{
		PC:     c.pc,
		SP:     c.sp,
		A:      c.a,
		X:      c.x,
		Y:      c.y,
		Status: c.status,
	}
}

// bus access helpers

func (c *CPU) busRead(addr uint16) uint8 { return c.read(addr) }

func (c *CPU) busWrite(addr uint16, v uint8) {
	c.wrote = true
	c.write(addr, v)
}

// push stores a byte at the top of the stack and decrements the stack
// pointer. The stack never leaves page 1.
func (c *CPU) push(v uint8) {
	c.busWrite(0x0100|uint16(c.sp), v)
	c.sp--
}

// pull increments the stack pointer and reads the byte there.
func (c *CPU) pull() uint8 {
	c.sp++
	return c.busRead(0x0100 | uint16(c.sp))
}

// writeValue stores an instruction result to the effective address, or to
// the accumulator for single-byte instructions.
func (c *CPU) writeValue(v uint8) {
	if c.accOp {
		c.a = v
	} else {
		c.busWrite(c.ea, v)
	}
}

// stage plumbing

func (c *CPU) nextStage(fn stageFn) {
	c.stage = fn
	c.atSync = false
}

func (c *CPU) finishInstruction() {
	c.stage = (*CPU).instructionFetch
	c.atSync = true
}

// executeOpcode runs the opcode body and schedules the next instruction
// fetch. Branch opcodes do not come through here; they schedule their own
// trailing cycles.
func (c *CPU) executeOpcode() {
	c.op(c)
	c.finishInstruction()
}

// flag helpers

func (c *CPU) assignFlag(flag uint8, on bool) {
	if on {
		c.status |= flag
	} else {
		c.status &^= flag
	}
}

func (c *CPU) establishN(v uint16)  { c.assignFlag(flagSign, v&0x0080 != 0) }
func (c *CPU) establishZ(v uint16)  { c.assignFlag(flagZero, v&0x00ff == 0) }
func (c *CPU) establishC(v uint16)  { c.assignFlag(flagCarry, v&0xff00 != 0) }
func (c *CPU) establishNZ(v uint16) { c.establishZ(v); c.establishN(v) }

// establishV derives the overflow flag for add/subtract results. It must
// run before the accumulator is updated.
func (c *CPU) establishV(result uint16, operand uint8) {
	c.assignFlag(flagOverflow,
		(result^uint16(c.a))&(result^uint16(operand))&0x0080 != 0)
}

// instruction fetch and interrupt entry

// instructionFetch is T0 of every instruction. IRQ and NMI are polled here,
// at the instruction boundary; if an interrupt is taken this cycle becomes
// the first cycle of the 7-cycle interrupt sequence instead of a fetch.
func (c *CPU) instructionFetch() {
	nmi := c.nmiEnabled && c.nmiPending
	irq := c.irqEnabled && c.irqAsserted &&
		c.status&flagInterrupt == 0 &&
		!c.cliMasking && !c.branchMasking

	// Each mask defers exactly one poll.
	c.cliMasking = false
	c.branchMasking = false

	switch {
	case nmi:
		c.busRead(c.pc)
		c.nextStage((*CPU).nmiT1)
	case irq:
		c.busRead(c.pc)
		c.nextStage((*CPU).irqT1)
	default:
		c.opcode = c.busRead(c.pc)
		c.pc++
		inst := &instructions[c.opcode]
		c.op = inst.fn
		c.accOp = false
		c.nextStage(inst.t1)
	}
}

// instructionFetchIRQ follows a completed IRQ sequence. An NMI edge that
// landed during the IRQ's two vector-fetch cycles arrived too late to morph
// the sequence and is discarded here, matching observed hardware, before a
// normal fetch proceeds.
func (c *CPU) instructionFetchIRQ() {
	c.nmiPending = false
	c.instructionFetch()
}

// The BRK, IRQ, NMI and RESET sequences are closely related: the same
// 7-cycle skeleton with different vectors and B-flag treatment. BRK and IRQ
// can morph into an NMI at the fourth cycle if an NMI edge arrives while the
// PC is being pushed.

func (c *CPU) nmiT1() {
	c.busRead(c.pc)
	c.nextStage((*CPU).nmiT2)
}

func (c *CPU) nmiT2() {
	c.push(uint8(c.pc >> 8))
	c.nextStage((*CPU).nmiT3)
}

func (c *CPU) nmiT3() {
	c.push(uint8(c.pc))
	c.nextStage((*CPU).nmiT4)
}

func (c *CPU) nmiT4() {
	c.push(c.status&^flagBreak | flagConstant)
	c.status |= flagInterrupt
	c.nextStage((*CPU).nmiT5)
}

func (c *CPU) nmiT5() {
	c.ea = uint16(c.busRead(vectorNMI))
	c.nextStage((*CPU).nmiT6)
}

func (c *CPU) nmiT6() {
	c.pc = c.ea | uint16(c.busRead(vectorNMI+1))<<8
	c.nmiPending = false
	c.finishInstruction()
}

func (c *CPU) irqT1() {
	c.busRead(c.pc)
	c.nextStage((*CPU).irqT2)
}

func (c *CPU) irqT2() {
	c.push(uint8(c.pc >> 8))
	c.nextStage((*CPU).irqT3)
}

func (c *CPU) irqT3() {
	c.push(uint8(c.pc))
	c.nextStage((*CPU).irqT4)
}

// irqT4 is the morph point: an NMI edge latched since the sequence began
// steals the vector, turning the IRQ into an NMI. The status byte pushed for
// a hardware interrupt has B clear either way.
func (c *CPU) irqT4() {
	c.push(c.status&^flagBreak | flagConstant)
	c.status |= flagInterrupt
	if c.nmiEnabled && c.nmiPending {
		c.nextStage((*CPU).nmiT5)
		return
	}
	c.nextStage((*CPU).irqT5)
}

func (c *CPU) irqT5() {
	c.ea = uint16(c.busRead(vectorIRQ))
	c.nextStage((*CPU).irqT6)
}

func (c *CPU) irqT6() {
	c.pc = c.ea | uint16(c.busRead(vectorIRQ+1))<<8
	c.stage = (*CPU).instructionFetchIRQ
	c.atSync = true
}

// Reset performs the vector fetch like an interrupt but turns the three
// stack pushes into reads: the stack pointer still decrements three times
// while the bus sees only reads.

func (c *CPU) resetT0() {
	c.busRead(c.pc)
	c.nextStage((*CPU).resetT1)
}

func (c *CPU) resetT1() {
	c.busRead(c.pc)
	c.nextStage((*CPU).resetT2)
}

func (c *CPU) resetT2() {
	c.busRead(0x0100 | uint16(c.sp))
	c.sp--
	c.nextStage((*CPU).resetT3)
}

func (c *CPU) resetT3() {
	c.busRead(0x0100 | uint16(c.sp))
	c.sp--
	c.nextStage((*CPU).resetT4)
}

func (c *CPU) resetT4() {
	c.status &^= flagBreak
	c.busRead(0x0100 | uint16(c.sp))
	c.sp--
	c.nextStage((*CPU).resetT5)
}

func (c *CPU) resetT5() {
	c.ea = uint16(c.busRead(vectorReset))
	c.status |= flagInterrupt
	c.nextStage((*CPU).resetT6)
}

func (c *CPU) resetT6() {
	c.pc = c.ea | uint16(c.busRead(vectorReset+1))<<8
	c.finishInstruction()
}
