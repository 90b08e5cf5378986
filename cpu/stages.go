// Copyright 2020-2026 The mos6502 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Address-mode stage functions. Each one is a single cycle: one bus access,
// register/scratch updates, then the next stage. Stage timings follow the
// MCS6500 family hardware manual; the dummy accesses are deliberate and must
// reach the bus, because memory-mapped hardware reacts to them.

// Single-byte instructions: 2 cycles. The byte after the opcode is read and
// discarded without advancing the PC.
func (c *CPU) impliedT1() {
	c.busRead(c.pc)
	c.value = uint16(c.a)
	c.accOp = true
	c.executeOpcode()
}

// JAM opcodes read the following byte like any single-byte instruction,
// then wedge the CPU: the jam opcode parks the state machine on jamCycle.
func (c *CPU) jamT1() {
	c.busRead(c.pc)
	c.op(c)
}

// jamCycle repeats forever until Reset: the bus sees a read of PC each
// cycle and nothing advances.
func (c *CPU) jamCycle() {
	c.busRead(c.pc)
}

// Immediate: 2 cycles.
func (c *CPU) immediateT1() {
	c.value = uint16(c.busRead(c.pc))
	c.pc++
	c.executeOpcode()
}

// Relative (branches): 2, 3 or 4 cycles. The branch opcode runs in T1 and
// decides whether T2/T3 happen at all; see branch in opcodes.go.
func (c *CPU) relativeT1() {
	c.op(c)
}

// relativeT2 runs only for taken branches. The PC low byte was adjusted in
// T1; the read here goes to that partially-updated address. If the target
// is on the same page the branch is done.
func (c *CPU) relativeT2() {
	c.busRead(c.pc)
	if (c.ia+c.ea)&0xff00 == c.ia&0xff00 {
		c.finishInstruction()
		return
	}
	c.nextStage((*CPU).relativeT3)
}

// relativeT3 runs only when the branch crossed a page: one more read of the
// wrong-page address, then the PC high byte is corrected.
func (c *CPU) relativeT3() {
	c.busRead(c.pc)
	c.pc = c.ia + c.ea
	c.finishInstruction()
}

// Zero page read: 3 cycles.
func (c *CPU) zpReadT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).zpReadT2)
}

func (c *CPU) zpReadT2() {
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

// Zero page write: 3 cycles. The opcode performs the store.
func (c *CPU) zpWriteT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).zpWriteT2)
}

func (c *CPU) zpWriteT2() {
	c.executeOpcode()
}

// Zero page read-modify-write: 5 cycles. The unmodified value is written
// back one cycle before the result.
func (c *CPU) zpRMWT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).zpRMWT2)
}

func (c *CPU) zpRMWT2() {
	c.value = uint16(c.busRead(c.ea))
	c.nextStage((*CPU).zpRMWT3)
}

func (c *CPU) zpRMWT3() {
	c.busWrite(c.ea, uint8(c.value))
	c.nextStage((*CPU).zpRMWT4)
}

func (c *CPU) zpRMWT4() {
	c.executeOpcode()
}

// Absolute read: 4 cycles.
func (c *CPU) absReadT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).absReadT2)
}

func (c *CPU) absReadT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).absReadT3)
}

func (c *CPU) absReadT3() {
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

// Absolute write: 4 cycles.
func (c *CPU) absWriteT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).absWriteT2)
}

func (c *CPU) absWriteT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).absWriteT3)
}

func (c *CPU) absWriteT3() {
	c.executeOpcode()
}

// Absolute read-modify-write: 6 cycles.
func (c *CPU) absRMWT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).absRMWT2)
}

func (c *CPU) absRMWT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).absRMWT3)
}

func (c *CPU) absRMWT3() {
	c.value = uint16(c.busRead(c.ea))
	c.nextStage((*CPU).absRMWT4)
}

func (c *CPU) absRMWT4() {
	c.busWrite(c.ea, uint8(c.value))
	c.nextStage((*CPU).absRMWT5)
}

func (c *CPU) absRMWT5() {
	c.executeOpcode()
}

// Zero page,X read: 4 cycles. The un-indexed address is read and discarded
// while the index is added; the sum wraps within page zero.
func (c *CPU) zpxReadT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).zpxReadT2)
}

func (c *CPU) zpxReadT2() {
	c.busRead(c.ea)
	c.nextStage((*CPU).zpxReadT3)
}

func (c *CPU) zpxReadT3() {
	c.ea = (c.ea + uint16(c.x)) & 0xff
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

// Zero page,X write: 4 cycles.
func (c *CPU) zpxWriteT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).zpxWriteT2)
}

func (c *CPU) zpxWriteT2() {
	c.busRead(c.ea)
	c.nextStage((*CPU).zpxWriteT3)
}

func (c *CPU) zpxWriteT3() {
	c.ea = (c.ea + uint16(c.x)) & 0xff
	c.executeOpcode()
}

// Zero page,X read-modify-write: 6 cycles.
func (c *CPU) zpxRMWT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).zpxRMWT2)
}

func (c *CPU) zpxRMWT2() {
	c.busRead(c.ea)
	c.nextStage((*CPU).zpxRMWT3)
}

func (c *CPU) zpxRMWT3() {
	c.ea = (c.ea + uint16(c.x)) & 0xff
	c.value = uint16(c.busRead(c.ea))
	c.nextStage((*CPU).zpxRMWT4)
}

func (c *CPU) zpxRMWT4() {
	c.busWrite(c.ea, uint8(c.value))
	c.nextStage((*CPU).zpxRMWT5)
}

func (c *CPU) zpxRMWT5() {
	c.executeOpcode()
}

// Zero page,Y read: 4 cycles. Used by LDX and LAX.
func (c *CPU) zpyReadT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).zpyReadT2)
}

func (c *CPU) zpyReadT2() {
	c.busRead(c.ea)
	c.nextStage((*CPU).zpyReadT3)
}

func (c *CPU) zpyReadT3() {
	c.ea = (c.ea + uint16(c.y)) & 0xff
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

// Zero page,Y write: 4 cycles. Used by STX and SAX.
func (c *CPU) zpyWriteT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).zpyWriteT2)
}

func (c *CPU) zpyWriteT2() {
	c.busRead(c.ea)
	c.nextStage((*CPU).zpyWriteT3)
}

func (c *CPU) zpyWriteT3() {
	c.ea = (c.ea + uint16(c.y)) & 0xff
	c.executeOpcode()
}

// Absolute,X read: 4 cycles, or 5 when indexing carries into the high byte.
// On a page cross the CPU first reads the address with the uncorrected high
// byte, then re-reads at the fixed address.
func (c *CPU) absxReadT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).absxReadT2)
}

func (c *CPU) absxReadT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).absxReadT3)
}

func (c *CPU) absxReadT3() {
	ea := c.ea + uint16(c.x)
	if ea&0xff00 != c.ea&0xff00 {
		c.busRead(c.ea&0xff00 | ea&0x00ff)
		c.ea = ea
		c.nextStage((*CPU).absxReadT4)
		return
	}
	c.ea = ea
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

func (c *CPU) absxReadT4() {
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

// Absolute,X write: 5 cycles. The wrong-page read happens whether or not
// the index carries.
func (c *CPU) absxWriteT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).absxWriteT2)
}

func (c *CPU) absxWriteT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).absxWriteT3)
}

func (c *CPU) absxWriteT3() {
	ea := c.ea + uint16(c.x)
	c.busRead(c.ea&0xff00 | ea&0x00ff)
	c.pageCross = ea&0xff00 != c.ea&0xff00
	c.ea = ea
	c.nextStage((*CPU).absxWriteT4)
}

func (c *CPU) absxWriteT4() {
	c.executeOpcode()
}

// Absolute,X read-modify-write: 7 cycles.
func (c *CPU) absxRMWT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).absxRMWT2)
}

func (c *CPU) absxRMWT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).absxRMWT3)
}

func (c *CPU) absxRMWT3() {
	ea := c.ea + uint16(c.x)
	c.busRead(c.ea&0xff00 | ea&0x00ff)
	c.ea = ea
	c.nextStage((*CPU).absxRMWT4)
}

func (c *CPU) absxRMWT4() {
	c.value = uint16(c.busRead(c.ea))
	c.nextStage((*CPU).absxRMWT5)
}

func (c *CPU) absxRMWT5() {
	c.busWrite(c.ea, uint8(c.value))
	c.nextStage((*CPU).absxRMWT6)
}

func (c *CPU) absxRMWT6() {
	c.executeOpcode()
}

// Absolute,Y read: 4 or 5 cycles.
func (c *CPU) absyReadT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).absyReadT2)
}

func (c *CPU) absyReadT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).absyReadT3)
}

func (c *CPU) absyReadT3() {
	ea := c.ea + uint16(c.y)
	if ea&0xff00 != c.ea&0xff00 {
		c.busRead(c.ea&0xff00 | ea&0x00ff)
		c.ea = ea
		c.nextStage((*CPU).absyReadT4)
		return
	}
	c.ea = ea
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

func (c *CPU) absyReadT4() {
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

// Absolute,Y write: 5 cycles.
func (c *CPU) absyWriteT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).absyWriteT2)
}

func (c *CPU) absyWriteT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).absyWriteT3)
}

func (c *CPU) absyWriteT3() {
	ea := c.ea + uint16(c.y)
	c.busRead(c.ea&0xff00 | ea&0x00ff)
	c.pageCross = ea&0xff00 != c.ea&0xff00
	c.ea = ea
	c.nextStage((*CPU).absyWriteT4)
}

func (c *CPU) absyWriteT4() {
	c.executeOpcode()
}

// Absolute,Y read-modify-write: 7 cycles. Undocumented opcodes only.
func (c *CPU) absyRMWT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).absyRMWT2)
}

func (c *CPU) absyRMWT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).absyRMWT3)
}

func (c *CPU) absyRMWT3() {
	ea := c.ea + uint16(c.y)
	c.busRead(c.ea&0xff00 | ea&0x00ff)
	c.ea = ea
	c.nextStage((*CPU).absyRMWT4)
}

func (c *CPU) absyRMWT4() {
	c.value = uint16(c.busRead(c.ea))
	c.nextStage((*CPU).absyRMWT5)
}

func (c *CPU) absyRMWT5() {
	c.busWrite(c.ea, uint8(c.value))
	c.nextStage((*CPU).absyRMWT6)
}

func (c *CPU) absyRMWT6() {
	c.executeOpcode()
}

// (zp,X) read: 6 cycles. The pointer is read, discarded, indexed within
// page zero, and the effective address fetched from the indexed location.
func (c *CPU) idxReadT1() {
	c.ia = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).idxReadT2)
}

func (c *CPU) idxReadT2() {
	c.busRead(c.ia)
	c.nextStage((*CPU).idxReadT3)
}

func (c *CPU) idxReadT3() {
	c.ia = (c.ia + uint16(c.x)) & 0xff
	c.ea = uint16(c.busRead(c.ia))
	c.ia++
	c.nextStage((*CPU).idxReadT4)
}

func (c *CPU) idxReadT4() {
	c.ea |= uint16(c.busRead(c.ia&0xff)) << 8
	c.nextStage((*CPU).idxReadT5)
}

func (c *CPU) idxReadT5() {
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

// (zp,X) write: 6 cycles.
func (c *CPU) idxWriteT1() {
	c.ia = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).idxWriteT2)
}

func (c *CPU) idxWriteT2() {
	c.busRead(c.ia)
	c.nextStage((*CPU).idxWriteT3)
}

func (c *CPU) idxWriteT3() {
	c.ia = (c.ia + uint16(c.x)) & 0xff
	c.ea = uint16(c.busRead(c.ia))
	c.ia++
	c.nextStage((*CPU).idxWriteT4)
}

func (c *CPU) idxWriteT4() {
	c.ea |= uint16(c.busRead(c.ia&0xff)) << 8
	c.nextStage((*CPU).idxWriteT5)
}

func (c *CPU) idxWriteT5() {
	c.executeOpcode()
}

// (zp,X) read-modify-write: 8 cycles. Undocumented opcodes only; the bus
// sequence was captured from a 6502 in a 1541 drive.
func (c *CPU) idxRMWT1() {
	c.ia = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).idxRMWT2)
}

func (c *CPU) idxRMWT2() {
	c.busRead(c.ia)
	c.nextStage((*CPU).idxRMWT3)
}

func (c *CPU) idxRMWT3() {
	c.ia = (c.ia + uint16(c.x)) & 0xff
	c.ea = uint16(c.busRead(c.ia))
	c.ia++
	c.nextStage((*CPU).idxRMWT4)
}

func (c *CPU) idxRMWT4() {
	c.ea |= uint16(c.busRead(c.ia&0xff)) << 8
	c.nextStage((*CPU).idxRMWT5)
}

func (c *CPU) idxRMWT5() {
	c.value = uint16(c.busRead(c.ea))
	c.nextStage((*CPU).idxRMWT6)
}

func (c *CPU) idxRMWT6() {
	c.busWrite(c.ea, uint8(c.value))
	c.nextStage((*CPU).idxRMWT7)
}

func (c *CPU) idxRMWT7() {
	c.executeOpcode()
}

// (zp),Y read: 5 cycles, or 6 when indexing crosses a page.
func (c *CPU) idyReadT1() {
	c.ia = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).idyReadT2)
}

func (c *CPU) idyReadT2() {
	c.ea = uint16(c.busRead(c.ia))
	c.ia++
	c.nextStage((*CPU).idyReadT3)
}

func (c *CPU) idyReadT3() {
	c.ea |= uint16(c.busRead(c.ia&0xff)) << 8
	c.nextStage((*CPU).idyReadT4)
}

func (c *CPU) idyReadT4() {
	ea := c.ea + uint16(c.y)
	if ea&0xff00 != c.ea&0xff00 {
		c.busRead(c.ea&0xff00 | ea&0x00ff)
		c.ea = ea
		c.nextStage((*CPU).idyReadT5)
		return
	}
	c.ea = ea
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

func (c *CPU) idyReadT5() {
	c.value = uint16(c.busRead(c.ea))
	c.executeOpcode()
}

// (zp),Y write: 6 cycles.
func (c *CPU) idyWriteT1() {
	c.ia = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).idyWriteT2)
}

func (c *CPU) idyWriteT2() {
	c.ea = uint16(c.busRead(c.ia))
	c.ia++
	c.nextStage((*CPU).idyWriteT3)
}

func (c *CPU) idyWriteT3() {
	c.ea |= uint16(c.busRead(c.ia&0xff)) << 8
	c.nextStage((*CPU).idyWriteT4)
}

func (c *CPU) idyWriteT4() {
	ea := c.ea + uint16(c.y)
	c.busRead(c.ea&0xff00 | ea&0x00ff)
	c.pageCross = ea&0xff00 != c.ea&0xff00
	c.ea = ea
	c.nextStage((*CPU).idyWriteT5)
}

func (c *CPU) idyWriteT5() {
	c.executeOpcode()
}

// (zp),Y read-modify-write: 8 cycles. Undocumented opcodes only.
func (c *CPU) idyRMWT1() {
	c.ia = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).idyRMWT2)
}

func (c *CPU) idyRMWT2() {
	c.ea = uint16(c.busRead(c.ia))
	c.ia++
	c.nextStage((*CPU).idyRMWT3)
}

func (c *CPU) idyRMWT3() {
	c.ea |= uint16(c.busRead(c.ia&0xff)) << 8
	c.nextStage((*CPU).idyRMWT4)
}

func (c *CPU) idyRMWT4() {
	ea := c.ea + uint16(c.y)
	c.busRead(c.ea&0xff00 | ea&0x00ff)
	c.ea = ea
	c.nextStage((*CPU).idyRMWT5)
}

func (c *CPU) idyRMWT5() {
	c.value = uint16(c.busRead(c.ea))
	c.nextStage((*CPU).idyRMWT6)
}

func (c *CPU) idyRMWT6() {
	c.busWrite(c.ea, uint8(c.value))
	c.nextStage((*CPU).idyRMWT7)
}

func (c *CPU) idyRMWT7() {
	c.executeOpcode()
}

// JMP absolute: 3 cycles.
func (c *CPU) jmpAbsT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).jmpAbsT2)
}

func (c *CPU) jmpAbsT2() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.executeOpcode()
}

// JMP (indirect): 5 cycles. A pointer at $xxFF wraps within its page: the
// high byte comes from $xx00, not $(xx+1)00.
func (c *CPU) jmpIndT1() {
	c.ia = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).jmpIndT2)
}

func (c *CPU) jmpIndT2() {
	c.ia |= uint16(c.busRead(c.pc)) << 8
	c.pc++
	c.nextStage((*CPU).jmpIndT3)
}

func (c *CPU) jmpIndT3() {
	c.ea = uint16(c.busRead(c.ia))
	c.nextStage((*CPU).jmpIndT4)
}

func (c *CPU) jmpIndT4() {
	c.ia = c.ia&0xff00 | (c.ia+1)&0x00ff
	c.ea |= uint16(c.busRead(c.ia)) << 8
	c.executeOpcode()
}

// JSR: 6 cycles. The return address pushed is that of the last byte of the
// JSR instruction; RTS compensates by incrementing after the pull.
func (c *CPU) jsrT1() {
	c.ea = uint16(c.busRead(c.pc))
	c.pc++
	c.nextStage((*CPU).jsrT2)
}

func (c *CPU) jsrT2() {
	c.busRead(0x0100 | uint16(c.sp))
	c.nextStage((*CPU).jsrT3)
}

func (c *CPU) jsrT3() {
	c.push(uint8(c.pc >> 8))
	c.nextStage((*CPU).jsrT4)
}

func (c *CPU) jsrT4() {
	c.push(uint8(c.pc))
	c.nextStage((*CPU).jsrT5)
}

func (c *CPU) jsrT5() {
	c.ea |= uint16(c.busRead(c.pc)) << 8
	c.pc = c.ea
	c.executeOpcode()
}

// RTS: 6 cycles.
func (c *CPU) rtsT1() {
	c.busRead(c.pc)
	c.nextStage((*CPU).rtsT2)
}

func (c *CPU) rtsT2() {
	c.busRead(0x0100 | uint16(c.sp))
	c.nextStage((*CPU).rtsT3)
}

func (c *CPU) rtsT3() {
	c.pc = uint16(c.pull())
	c.nextStage((*CPU).rtsT4)
}

func (c *CPU) rtsT4() {
	c.pc |= uint16(c.pull()) << 8
	c.nextStage((*CPU).rtsT5)
}

func (c *CPU) rtsT5() {
	c.busRead(c.pc)
	c.pc++
	c.executeOpcode()
}

// RTI: 6 cycles. The pulled status keeps the register's B bit untouched;
// B exists only in the stacked copy.
func (c *CPU) rtiT1() {
	c.busRead(c.pc)
	c.pc++
	c.nextStage((*CPU).rtiT2)
}

func (c *CPU) rtiT2() {
	c.busRead(0x0100 | uint16(c.sp))
	c.nextStage((*CPU).rtiT3)
}

func (c *CPU) rtiT3() {
	b := c.status & flagBreak
	c.status = c.pull()&^flagBreak | flagConstant | b
	c.nextStage((*CPU).rtiT4)
}

func (c *CPU) rtiT4() {
	c.pc = uint16(c.pull())
	c.nextStage((*CPU).rtiT5)
}

func (c *CPU) rtiT5() {
	c.pc |= uint16(c.pull()) << 8
	c.executeOpcode()
}

// PHA/PHP: 3 cycles.
func (c *CPU) pushT1() {
	c.busRead(c.pc)
	c.nextStage((*CPU).pushT2)
}

func (c *CPU) pushT2() {
	c.executeOpcode()
}

// PLA/PLP: 4 cycles.
func (c *CPU) pullT1() {
	c.busRead(c.pc)
	c.nextStage((*CPU).pullT2)
}

func (c *CPU) pullT2() {
	c.busRead(0x0100 | uint16(c.sp))
	c.nextStage((*CPU).pullT3)
}

func (c *CPU) pullT3() {
	c.executeOpcode()
}

// BRK: 7 cycles. The sequence shares its tail with the hardware interrupts,
// and an NMI edge arriving while the PC is being pushed hijacks the vector;
// the status byte pushed keeps B set regardless, because the entry was BRK.
func (c *CPU) brkT1() {
	c.busRead(c.pc)
	c.pc++
	c.nextStage((*CPU).brkT2)
}

func (c *CPU) brkT2() {
	c.push(uint8(c.pc >> 8))
	c.nextStage((*CPU).brkT3)
}

func (c *CPU) brkT3() {
	c.push(uint8(c.pc))
	c.nextStage((*CPU).brkT4)
}

func (c *CPU) brkT4() {
	c.push(c.status | flagBreak | flagConstant)
	c.status |= flagInterrupt
	if c.nmiEnabled && c.nmiPending {
		c.nextStage((*CPU).nmiT5)
		return
	}
	c.nextStage((*CPU).brkT5)
}

func (c *CPU) brkT5() {
	c.ea = uint16(c.busRead(vectorIRQ))
	c.nextStage((*CPU).brkT6)
}

func (c *CPU) brkT6() {
	c.pc = c.ea | uint16(c.busRead(vectorIRQ+1))<<8
	c.executeOpcode()
}
