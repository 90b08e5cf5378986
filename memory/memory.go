// Copyright 2020-2026 The mos6502 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memory models the host side of the 6502 data bus: devices mapped
// into the 16-bit address space, and the open-bus behaviour of addresses no
// device drives.
package memory

import "errors"

// Errors returned by Bus.Map.
var (
	ErrRegionOverlap = errors.New("memory: mapped regions overlap")
	ErrRegionBounds  = errors.New("memory: region exceeds the address space")
)

// A Device is anything attachable to the bus. Addresses passed to a device
// are relative to the base address it was mapped at.
type Device interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
}

// RAM is a byte store mappable anywhere in the address space.
type RAM struct {
	b []byte
}

// NewRAM creates a RAM device of the given size in bytes.
func NewRAM(size uint32) *RAM {
	return &RAM{b: make([]byte, size)}
}

// Read returns the byte at addr.
func (r *RAM) Read(addr uint16) uint8 {
	return r.b[addr]
}

// Write stores v at addr.
func (r *RAM) Write(addr uint16, v uint8) {
	r.b[addr] = v
}

// StoreBytes copies b into RAM starting at addr. Useful for loading
// program images.
func (r *RAM) StoreBytes(addr uint16, b []byte) {
	copy(r.b[addr:], b)
}

// LoadBytes copies bytes out of RAM starting at addr.
func (r *RAM) LoadBytes(addr uint16, b []byte) {
	copy(b, r.b[addr:])
}

// ROM is a read-only device. Writes are accepted and discarded, as they are
// by a mask ROM on a real bus.
type ROM struct {
	b []byte
}

// NewROM creates a ROM from an image.
func NewROM(image []byte) *ROM {
	b := make([]byte, len(image))
	copy(b, image)
	return &ROM{b: b}
}

// Read returns the byte at addr.
func (r *ROM) Read(addr uint16) uint8 {
	return r.b[addr]
}

// Write does nothing.
func (r *ROM) Write(addr uint16, v uint8) {}

// Size returns the length of the ROM image.
func (r *ROM) Size() int { return len(r.b) }

type region struct {
	base uint16
	size uint32
	dev  Device
}

func (r *region) contains(addr uint16) bool {
	return addr >= r.base && uint32(addr-r.base) < r.size
}

// Bus is a mappable 16-bit address space. Reads of unmapped addresses
// return "open bus": with nothing driving the data lines, the 6502 reads
// back the high byte of the address it just placed on the bus. The CPU
// reads or writes on every cycle, so Read and Write see every access the
// CPU makes, dummy accesses included.
type Bus struct {
	regions []region
}

// NewBus creates an empty address space.
func NewBus() *Bus {
	return &Bus{}
}

// Map attaches a device at base, covering size bytes.
func (b *Bus) Map(base uint16, size uint32, dev Device) error {
	if uint32(base)+size > 0x10000 {
		return ErrRegionBounds
	}
	end := uint32(base) + size
	for _, r := range b.regions {
		rend := uint32(r.base) + r.size
		if uint32(base) < rend && uint32(r.base) < end {
			return ErrRegionOverlap
		}
	}
	b.regions = append(b.regions, region{base: base, size: size, dev: dev})
	return nil
}

// Read returns the byte a 6502 would see at addr.
func (b *Bus) Read(addr uint16) uint8 {
	for i := range b.regions {
		if b.regions[i].contains(addr) {
			return b.regions[i].dev.Read(addr - b.regions[i].base)
		}
	}
	return uint8(addr >> 8) // open bus
}

// Write drives a byte at addr. Writes to unmapped addresses vanish.
func (b *Bus) Write(addr uint16, v uint8) {
	for i := range b.regions {
		if b.regions[i].contains(addr) {
			b.regions[i].dev.Write(addr-b.regions[i].base, v)
			return
		}
	}
}
