// Copyright 2020-2026 The mos6502 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

var cmds *cmd.Tree

// helpText backs the help command; one line per leaf command.
var helpText = []struct {
	name  string
	brief string
}{
	{"help", "Display this help"},
	{"load <file> <addr>", "Load a binary image into memory"},
	{"registers", "Display CPU registers"},
	{"step cycle [n]", "Step the CPU by n bus cycles"},
	{"step instruction [n]", "Step the CPU by n instructions"},
	{"memory dump <addr> [n]", "Dump memory contents"},
	{"memory set <addr> <b>...", "Store bytes into memory"},
	{"irq assert|release", "Drive the IRQ line"},
	{"nmi assert|release", "Drive the NMI line"},
	{"so", "Pulse the SO pin"},
	{"rdy on|off", "Drive the RDY line"},
	{"reset", "Schedule a CPU reset"},
	{"set [name value]", "Display or change monitor settings"},
	{"quit", "Exit the monitor"},
}

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "mos6502"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "help",
		Description: "Display help for monitor commands.",
		Usage:       "help",
		Data:        (*Host).cmdHelp,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "load",
		Brief:       "Load a binary image",
		Description: "Load a raw binary file into memory at the given address.",
		Usage:       "load <filename> <address>",
		Data:        (*Host).cmdLoad,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "registers",
		Brief:       "Display registers",
		Description: "Display the CPU registers, cycle count and pin state.",
		Usage:       "registers",
		Data:        (*Host).cmdRegisters,
	})

	st := root.AddSubtree(cmd.TreeDescriptor{Name: "step", Brief: "Step commands"})
	st.AddCommand(cmd.CommandDescriptor{
		Name:  "cycle",
		Brief: "Step by bus cycles",
		Description: "Advance the CPU by the given number of bus cycles" +
			" (default 1). With the TraceBus setting on, each cycle's bus" +
			" access is printed, dummy reads included.",
		Usage: "step cycle [<count>]",
		Data:  (*Host).cmdStepCycle,
	})
	st.AddCommand(cmd.CommandDescriptor{
		Name:  "instruction",
		Brief: "Step by instructions",
		Description: "Advance the CPU to the next instruction boundary," +
			" the given number of times (default 1).",
		Usage: "step instruction [<count>]",
		Data:  (*Host).cmdStepInstruction,
	})

	mem := root.AddSubtree(cmd.TreeDescriptor{Name: "memory", Brief: "Memory commands"})
	mem.AddCommand(cmd.CommandDescriptor{
		Name:        "dump",
		Brief:       "Dump memory",
		Description: "Dump memory contents starting at the given address.",
		Usage:       "memory dump <address> [<bytes>]",
		Data:        (*Host).cmdMemoryDump,
	})
	mem.AddCommand(cmd.CommandDescriptor{
		Name:        "set",
		Brief:       "Set memory",
		Description: "Store byte values into memory at the given address.",
		Usage:       "memory set <address> <byte> [<byte> ...]",
		Data:        (*Host).cmdMemorySet,
	})

	irq := root.AddSubtree(cmd.TreeDescriptor{Name: "irq", Brief: "IRQ line commands"})
	irq.AddCommand(cmd.CommandDescriptor{
		Name:        "assert",
		Brief:       "Assert IRQ",
		Description: "Assert the level-sensitive IRQ line.",
		Usage:       "irq assert",
		Data:        (*Host).cmdIRQAssert,
	})
	irq.AddCommand(cmd.CommandDescriptor{
		Name:        "release",
		Brief:       "Release IRQ",
		Description: "Release the IRQ line.",
		Usage:       "irq release",
		Data:        (*Host).cmdIRQRelease,
	})

	nmi := root.AddSubtree(cmd.TreeDescriptor{Name: "nmi", Brief: "NMI line commands"})
	nmi.AddCommand(cmd.CommandDescriptor{
		Name:        "assert",
		Brief:       "Assert NMI",
		Description: "Assert the edge-triggered NMI line.",
		Usage:       "nmi assert",
		Data:        (*Host).cmdNMIAssert,
	})
	nmi.AddCommand(cmd.CommandDescriptor{
		Name:        "release",
		Brief:       "Release NMI",
		Description: "Release the NMI line, arming the next edge.",
		Usage:       "nmi release",
		Data:        (*Host).cmdNMIRelease,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:        "so",
		Brief:       "Pulse SO",
		Description: "Pulse the set-overflow pin, setting the V flag.",
		Usage:       "so",
		Data:        (*Host).cmdSO,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "rdy",
		Brief:       "Drive RDY",
		Description: "Assert or deassert the RDY line. While deasserted the CPU halts on read cycles.",
		Usage:       "rdy <on|off>",
		Data:        (*Host).cmdRDY,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "reset",
		Brief:       "Reset the CPU",
		Description: "Schedule the 7-cycle reset sequence.",
		Usage:       "reset",
		Data:        (*Host).cmdReset,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "set",
		Brief:       "Monitor settings",
		Description: "Display all monitor settings, or change one.",
		Usage:       "set [<name> <value>]",
		Data:        (*Host).cmdSet,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Exit the monitor",
		Description: "Exit the monitor.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})

	root.AddShortcut("?", "help")
	root.AddShortcut("r", "registers")
	root.AddShortcut("s", "step cycle")
	root.AddShortcut("si", "step instruction")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("q", "quit")

	cmds = root
}
