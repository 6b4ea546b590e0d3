// Package cartridge defines the Cartridge value the bus is constructed
// from, and an NROM-only constructor that enforces the shapes this core
// understands. Parsing an on-disk .nes file into a Cartridge lives in the
// ines subpackage; this package trusts whatever bytes it's handed.
package cartridge

import "fmt"

// Mirroring names the cartridge's nametable mirroring mode. The CPU core
// never consults this; it is threaded through for a future PPU to read.
type Mirroring int

const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

// Cartridge is the external interface the bus is built from: PRG-ROM
// bytes, CHR-ROM bytes (unused by this core), a mapper id (must be 0),
// and a mirroring mode (unused by this core).
type Cartridge struct {
	PRG       []byte
	CHR       []byte
	Mapper    uint8
	Mirroring Mirroring
}

// ErrInvalidCartridge reports a PRG-ROM size this core cannot map.
type ErrInvalidCartridge struct {
	Reason string
}

func (e ErrInvalidCartridge) Error() string { return "invalid cartridge: " + e.Reason }

// ErrUnsupportedMapper reports any mapper id other than 0 (NROM), which
// is this core's sole supported mapper per the Non-goals.
type ErrUnsupportedMapper struct {
	Mapper uint8
}

func (e ErrUnsupportedMapper) Error() string {
	return fmt.Sprintf("unsupported mapper %d, only NROM (0) is implemented", e.Mapper)
}

// NewNROM validates prg against the NROM (mapper 0) shape and constructs
// a Cartridge. prg must be exactly 16 KiB or 32 KiB; chr is not checked.
func NewNROM(prg, chr []byte, mirroring Mirroring) (*Cartridge, error) {
	if len(prg) != 0x4000 && len(prg) != 0x8000 {
		return nil, ErrInvalidCartridge{Reason: fmt.Sprintf("PRG-ROM length %d is neither 16384 nor 32768", len(prg))}
	}
	return &Cartridge{
		PRG:       prg,
		CHR:       chr,
		Mapper:    0,
		Mirroring: mirroring,
	}, nil
}
