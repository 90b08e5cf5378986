// Copyright 2020-2026 The mos6502 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements an interactive machine-language monitor around
// the cycle-stepped CPU core. It wires the CPU to a 64K bus, loads binary
// images, and steps the machine one cycle or one instruction at a time,
// optionally printing every bus access as it happens, dummy reads included.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/cmd"

	"github.com/c1541/mos6502/cpu"
	"github.com/c1541/mos6502/memory"
)

var errExit = errors.New("host: exiting")

// A Host owns one emulated machine: CPU, bus, RAM, and the monitor state.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool

	cpu *cpu.CPU
	bus *memory.Bus
	ram *memory.RAM

	cycles   uint64
	tracing  bool
	settings *settings
	lastCmd  *cmd.Selection
}

// New creates a monitor host: 64K of RAM behind a bus, and a CPU with all
// optional inputs enabled so they can be driven from the command line.
func New() *Host {
	h := &Host{
		settings: newSettings(),
	}

	h.bus = memory.NewBus()
	h.ram = memory.NewRAM(0x10000)
	if err := h.bus.Map(0, 0x10000, h.ram); err != nil {
		panic(err) // a single 64K region cannot fail to map
	}

	c, err := cpu.New(h.busRead, h.busWrite,
		cpu.WithIRQ(true), cpu.WithNMI(true), cpu.WithRDY(true))
	if err != nil {
		panic(err) // the bus methods above are never nil
	}
	h.cpu = c

	return h
}

// busRead passes a CPU read through the bus, tracing it when requested.
func (h *Host) busRead(addr uint16) uint8 {
	v := h.bus.Read(addr)
	if h.tracing {
		h.printf("      r $%04X = $%02X\n", addr, v)
	}
	return v
}

// busWrite passes a CPU write through the bus, tracing it when requested.
func (h *Host) busWrite(addr uint16, v uint8) {
	if h.tracing {
		h.printf("      W $%04X = $%02X\n", addr, v)
	}
	h.bus.Write(addr, v)
}

// RunCommands reads monitor commands from r and writes results to w. When
// interactive, a prompt is shown before each command. In either mode an
// empty line repeats the previous command.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.displayRegisters()
	}

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c cmd.Selection
		if line != "" {
			c, err = cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		} else if h.lastCmd != nil {
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		handler := c.Command.Data.(func(*Host, cmd.Selection) error)
		if err := handler(h, c); err != nil {
			break
		}
	}

	h.flush()
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) displayRegisters() {
	r := h.cpu.Regs()
	h.printf("PC=$%04X SP=$%02X A=$%02X X=$%02X Y=$%02X P=$%02X [%s]"+
		"  cycles=%d sync=%v halted=%v\n",
		r.PC, r.SP, r.A, r.X, r.Y, r.Status, statusString(r.Status),
		h.cycles, h.cpu.Sync(), h.cpu.Halted())
}

func statusString(p uint8) string {
	names := "NV-BDIZC"
	b := []byte("........")
	for i := 0; i < 8; i++ {
		if p&(0x80>>i) != 0 {
			b[i] = names[i]
		}
	}
	return string(b)
}

// stepCycles advances the machine by n bus cycles.
func (h *Host) stepCycles(n int) {
	h.tracing = h.settings.TraceBus
	for i := 0; i < n; i++ {
		h.cpu.Step()
		h.cycles++
	}
	h.tracing = false
}

// stepInstructions advances the machine by whole instructions, stopping at
// the next sync point or as soon as the CPU halts.
func (h *Host) stepInstructions(n int) {
	h.tracing = h.settings.TraceBus
	for i := 0; i < n; i++ {
		for {
			h.cpu.Step()
			h.cycles++
			if h.cpu.Sync() || h.cpu.Halted() {
				break
			}
		}
		if h.cpu.Halted() {
			break
		}
	}
	h.tracing = false
}

// command handlers

func (h *Host) cmdHelp(c cmd.Selection) error {
	h.println("Commands:")
	for _, e := range helpText {
		h.printf("    %-18s %s\n", e.name, e.brief)
	}
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.println("Usage: load <filename> <address>")
		return nil
	}

	addr, ok := h.parseAddr(c.Args[1])
	if !ok {
		h.printf("Invalid address '%s'\n", c.Args[1])
		return nil
	}

	filename := c.Args[0]
	b, err := os.ReadFile(filename)
	if err != nil {
		h.printf("Failed to open '%s': %v\n", filepath.Base(filename), err)
		return nil
	}
	if int(addr)+len(b) > 0x10000 {
		h.printf("File '%s' exceeds 64K memory bounds\n", filepath.Base(filename))
		return nil
	}

	h.ram.StoreBytes(addr, b)
	h.printf("Loaded '%s' to $%04X..$%04X\n",
		filepath.Base(filename), addr, int(addr)+len(b)-1)
	return nil
}

func (h *Host) cmdRegisters(c cmd.Selection) error {
	h.displayRegisters()
	return nil
}

func (h *Host) cmdStepCycle(c cmd.Selection) error {
	h.stepCycles(h.parseCount(c.Args, 1))
	h.displayRegisters()
	return nil
}

func (h *Host) cmdStepInstruction(c cmd.Selection) error {
	h.stepInstructions(h.parseCount(c.Args, 1))
	h.displayRegisters()
	return nil
}

func (h *Host) cmdMemoryDump(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.println("Usage: memory dump <address> [<bytes>]")
		return nil
	}

	addr, ok := h.parseAddr(c.Args[0])
	if !ok {
		h.printf("Invalid address '%s'\n", c.Args[0])
		return nil
	}
	n := h.parseCount(c.Args[1:], h.settings.MemDumpBytes)

	buf := make([]byte, 16)
	for n > 0 {
		row := min(n, 16)
		h.ram.LoadBytes(addr, buf[:row])
		h.printf("$%04X-", addr)
		for i := 0; i < row; i++ {
			h.printf(" %02X", buf[i])
		}
		h.println()
		addr += uint16(row)
		n -= row
	}
	return nil
}

func (h *Host) cmdMemorySet(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.println("Usage: memory set <address> <byte> [<byte> ...]")
		return nil
	}

	addr, ok := h.parseAddr(c.Args[0])
	if !ok {
		h.printf("Invalid address '%s'\n", c.Args[0])
		return nil
	}
	for _, s := range c.Args[1:] {
		v, ok := h.parseByte(s)
		if !ok {
			h.printf("Invalid byte value '%s'\n", s)
			return nil
		}
		h.ram.Write(addr, v)
		addr++
	}
	return nil
}

func (h *Host) cmdIRQAssert(c cmd.Selection) error {
	h.cpu.AssertIRQ()
	h.println("IRQ asserted.")
	return nil
}

func (h *Host) cmdIRQRelease(c cmd.Selection) error {
	h.cpu.ReleaseIRQ()
	h.println("IRQ released.")
	return nil
}

func (h *Host) cmdNMIAssert(c cmd.Selection) error {
	h.cpu.AssertNMI()
	h.println("NMI asserted.")
	return nil
}

func (h *Host) cmdNMIRelease(c cmd.Selection) error {
	h.cpu.ReleaseNMI()
	h.println("NMI released.")
	return nil
}

func (h *Host) cmdSO(c cmd.Selection) error {
	h.cpu.SO()
	h.println("SO pulsed; overflow flag set.")
	return nil
}

func (h *Host) cmdRDY(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.println("Usage: rdy <on|off>")
		return nil
	}
	switch strings.ToLower(c.Args[0]) {
	case "on":
		h.cpu.RDY(true)
		h.println("RDY asserted; CPU running.")
	case "off":
		h.cpu.RDY(false)
		h.println("RDY deasserted; CPU halts on read cycles.")
	default:
		h.println("Usage: rdy <on|off>")
	}
	return nil
}

func (h *Host) cmdReset(c cmd.Selection) error {
	h.cpu.Reset()
	h.println("Reset scheduled; step 7 cycles to complete it.")
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.settings.Display(h.output)
		h.flush()
	case 2:
		key, value := c.Args[0], c.Args[1]
		var err error
		switch h.settings.Kind(key) {
		case reflect.Bool:
			var b bool
			b, err = strconv.ParseBool(value)
			if err == nil {
				err = h.settings.Set(key, b)
			}
		case reflect.Int:
			var n int64
			n, err = strconv.ParseInt(value, 0, 64)
			if err == nil {
				err = h.settings.Set(key, int(n))
			}
		default:
			err = fmt.Errorf("unknown setting '%s'", key)
		}
		if err != nil {
			h.printf("%v\n", err)
		}
	default:
		h.println("Usage: set [<name> <value>]")
	}
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errExit
}
