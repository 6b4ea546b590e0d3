package membus

import (
	"testing"

	"github.com/crumhollow/nes6502/cartridge"
)

func newTestBus(t *testing.T, prgSize int) *Bus {
	t.Helper()
	prg := make([]byte, prgSize)
	for i := range prg {
		prg[i] = uint8(i)
	}
	cart, err := cartridge.NewNROM(prg, nil, cartridge.Horizontal)
	if err != nil {
		t.Fatalf("NewNROM: %v", err)
	}
	return New(cart)
}

// Invariant 5: RAM mirroring across the four 2 KiB windows in $0000-$1FFF.
func TestRAMMirroring(t *testing.T) {
	b := newTestBus(t, 0x8000)
	b.Write(0x0010, 0x42)

	for k := uint16(0); k < 4; k++ {
		addr := (0x0010 & 0x07FF) | (k << 11)
		if got := b.Read(addr); got != 0x42 {
			t.Errorf("Read(%#04x) = %#02x, want 0x42 (mirror of $0010)", addr, got)
		}
	}
}

// Invariant 6: NROM 16K mirror, $8000-$BFFF repeats at $C000-$FFFF.
func TestNROM16KMirror(t *testing.T) {
	b := newTestBus(t, 0x4000)
	for i := uint16(0); i < 0x4000; i += 0x537 {
		a := b.Read(0x8000 + i)
		c := b.Read(0xC000 + i)
		if a != c {
			t.Errorf("Read(%#04x)=%#02x != Read(%#04x)=%#02x, want equal", 0x8000+i, a, 0xC000+i, c)
		}
	}
}

func TestNROM32KLinear(t *testing.T) {
	b := newTestBus(t, 0x8000)
	if got, want := b.Read(0x8000), uint8(0); got != want {
		t.Errorf("Read(0x8000) = %#02x, want %#02x", got, want)
	}
	if got, want := b.Read(0xFFFF), uint8(0x7FFF&0xFF); got != want {
		t.Errorf("Read(0xFFFF) = %#02x, want %#02x", got, want)
	}
}

func TestStubbedRegionsReadZeroWritesDiscarded(t *testing.T) {
	b := newTestBus(t, 0x8000)
	for _, addr := range []uint16{0x2000, 0x3FFF, 0x4000, 0x401F, 0x4020, 0x5FFF, 0x6000, 0x7FFF} {
		b.Write(addr, 0xAB)
		if got := b.Read(addr); got != 0 {
			t.Errorf("Read(%#04x) = %#02x after write, want 0 (stubbed region)", addr, got)
		}
	}
}

func TestPRGWritesIgnored(t *testing.T) {
	b := newTestBus(t, 0x8000)
	before := b.Read(0x8000)
	b.Write(0x8000, before+1)
	if got := b.Read(0x8000); got != before {
		t.Errorf("Read(0x8000) = %#02x after write, want unchanged %#02x", got, before)
	}
}
