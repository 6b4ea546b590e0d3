// Package membus implements the NES CPU address bus: internal RAM with
// mirroring, NROM PRG-ROM mapping, and the stubbed PPU/APU/expansion/SRAM
// windows. It satisfies both cpu6502.Bus (read/write) and the wider
// memory.Bank shape the rest of the corpus builds against.
package membus

import (
	"github.com/crumhollow/nes6502/cartridge"
)

const (
	ramSize   = 0x0800 // 2 KiB internal RAM
	ramMirror = 0x1FFF
	ramMask   = 0x07FF

	ppuStart = 0x2000
	ppuEnd   = 0x3FFF

	apuStart = 0x4000
	apuEnd   = 0x401F

	expansionStart = 0x4020
	expansionEnd   = 0x5FFF

	sramStart = 0x6000
	sramEnd   = 0x7FFF

	prgStart = 0x8000
)

// Bus routes 16-bit CPU addresses to internal RAM or cartridge PRG-ROM per
// the NES memory map, and silently sinks accesses to the PPU/APU/
// expansion/SRAM windows this core does not implement.
type Bus struct {
	ram        [ramSize]uint8
	cart       *cartridge.Cartridge
	prgMask    uint16
	databusVal uint8
}

// New constructs a Bus over cart's PRG-ROM. cart must not be nil and must
// have already been validated (cartridge.NewNROM/ines.Parse do this).
func New(cart *cartridge.Cartridge) *Bus {
	b := &Bus{cart: cart}
	if len(cart.PRG) == 0x4000 {
		b.prgMask = 0x3FFF
	} else {
		b.prgMask = 0x7FFF
	}
	return b
}

// Read implements cpu6502.Bus. Reads have no side effects beyond
// recording the databus value.
func (b *Bus) Read(addr uint16) uint8 {
	var v uint8
	switch {
	case addr <= ramMirror:
		v = b.ram[addr&ramMask]
	case addr >= ppuStart && addr <= ppuEnd:
		v = 0
	case addr >= apuStart && addr <= apuEnd:
		v = 0
	case addr >= expansionStart && addr <= expansionEnd:
		v = 0
	case addr >= sramStart && addr <= sramEnd:
		v = 0
	case addr >= prgStart:
		v = b.cart.PRG[(addr-prgStart)&b.prgMask]
	}
	b.databusVal = v
	return v
}

// Write implements cpu6502.Bus. Writes to PRG-ROM and the stubbed windows
// are discarded, not errors.
func (b *Bus) Write(addr uint16, val uint8) {
	b.databusVal = val
	if addr <= ramMirror {
		b.ram[addr&ramMask] = val
	}
	// PPU/APU/expansion/SRAM/PRG-ROM: discard.
}

// PowerOn zero-initializes RAM, matching §3's "internal RAM is volatile
// and zero-initialized at construction" (unlike the teacher's
// memory.Bank, which randomizes — the NES spec this bus implements
// requires deterministic zero cold-start so traces are reproducible).
func (b *Bus) PowerOn() {
	for i := range b.ram {
		b.ram[i] = 0
	}
}

// Parent always returns nil: this bus is the outermost memory.Bank in
// its chain, there is no further level to delegate to.
func (b *Bus) Parent() Bank { return nil }

// DatabusVal returns the last value that crossed the bus on a Read or
// Write call.
func (b *Bus) DatabusVal() uint8 { return b.databusVal }

// Bank mirrors the corpus-wide memory.Bank interface shape
// (Read/Write/PowerOn/Parent/DatabusVal) without importing the teacher's
// package, so Bus can report a Parent() without a circular dependency.
type Bank interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	PowerOn()
	Parent() Bank
	DatabusVal() uint8
}
