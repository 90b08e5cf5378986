// Copyright 2020-2026 The mos6502 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory_test

import (
	"testing"

	"github.com/c1541/mos6502/memory"
)

func TestRAMReadWrite(t *testing.T) {
	b := memory.NewBus()
	ram := memory.NewRAM(0x0800)
	if err := b.Map(0x0000, 0x0800, ram); err != nil {
		t.Fatal(err)
	}

	b.Write(0x0123, 0x5e)
	if got := b.Read(0x0123); got != 0x5e {
		t.Errorf("read $%02X, want $5E", got)
	}
}

func TestOpenBus(t *testing.T) {
	b := memory.NewBus()
	ram := memory.NewRAM(0x0800)
	if err := b.Map(0x0000, 0x0800, ram); err != nil {
		t.Fatal(err)
	}

	// An unmapped read returns the high byte of the address.
	if got := b.Read(0x4123); got != 0x41 {
		t.Errorf("open-bus read returned $%02X, want $41", got)
	}

	// An unmapped write disappears without a trace.
	b.Write(0x4123, 0xff)
	if got := b.Read(0x4123); got != 0x41 {
		t.Errorf("open-bus read after write returned $%02X, want $41", got)
	}
}

func TestROMIgnoresWrites(t *testing.T) {
	b := memory.NewBus()
	rom := memory.NewROM([]byte{0x11, 0x22, 0x33})
	if err := b.Map(0xc000, uint32(rom.Size()), rom); err != nil {
		t.Fatal(err)
	}

	b.Write(0xc001, 0xff)
	if got := b.Read(0xc001); got != 0x22 {
		t.Errorf("ROM read $%02X after write, want $22", got)
	}
}

func TestRegionBaseOffset(t *testing.T) {
	// A device mapped above zero sees addresses relative to its base.
	b := memory.NewBus()
	ram := memory.NewRAM(0x0100)
	if err := b.Map(0x8000, 0x0100, ram); err != nil {
		t.Fatal(err)
	}

	b.Write(0x8010, 0x77)
	if got := ram.Read(0x0010); got != 0x77 {
		t.Errorf("device saw $%02X at offset $10, want $77", got)
	}
}

func TestMapErrors(t *testing.T) {
	b := memory.NewBus()
	if err := b.Map(0xff00, 0x0200, memory.NewRAM(0x0200)); err != memory.ErrRegionBounds {
		t.Errorf("got %v, want ErrRegionBounds", err)
	}

	if err := b.Map(0x1000, 0x1000, memory.NewRAM(0x1000)); err != nil {
		t.Fatal(err)
	}
	if err := b.Map(0x1800, 0x1000, memory.NewRAM(0x1000)); err != memory.ErrRegionOverlap {
		t.Errorf("got %v, want ErrRegionOverlap", err)
	}
}

func TestLoadStoreBytes(t *testing.T) {
	ram := memory.NewRAM(0x10000)
	ram.StoreBytes(0x0200, []byte{0xa9, 0x55, 0xaa})

	got := make([]byte, 3)
	ram.LoadBytes(0x0200, got)
	for i, want := range []byte{0xa9, 0x55, 0xaa} {
		if got[i] != want {
			t.Errorf("byte %d = $%02X, want $%02X", i, got[i], want)
		}
	}
}
