// Package ines parses the 16-byte iNES cartridge header format into a
// cartridge.Cartridge. This is an external collaborator: the CPU core
// never imports this package, it only consumes the Cartridge value this
// produces.
package ines

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/crumhollow/nes6502/cartridge"
)

const (
	prgChunkSize = 16 * 1024
	chrChunkSize = 8 * 1024
	trainerSize  = 512

	flagsTrainer = 0x1 << 2
	flagsVertMir = 0x1
	flagsFourScr = 0x1 << 3
)

// header mirrors the on-disk iNES header layout, reference
// https://wiki.nesdev.com/w/index.php/INES
type header struct {
	Magic        [4]byte
	PrgRomChunks byte
	ChrRomChunks byte
	Flags6       byte
	Flags7       byte
	PrgRamSize   byte
	Flags9       byte
	Flags10      byte
	Unused       [5]byte
}

var magic = [4]byte{'N', 'E', 'S', 0x1A}

// ErrBadMagic reports a file that doesn't start with the iNES magic
// number.
type ErrBadMagic struct{}

func (ErrBadMagic) Error() string { return "ines: missing \"NES\\x1a\" magic number" }

// ErrTruncated reports a file too short to contain the header or the
// PRG/CHR payload its header claims.
type ErrTruncated struct {
	Reason string
}

func (e ErrTruncated) Error() string { return "ines: truncated file: " + e.Reason }

// Parse decodes raw iNES bytes into a Cartridge. Only mapper 0 (NROM) is
// accepted; any other mapper id surfaces cartridge.ErrUnsupportedMapper
// before the core ever sees the cartridge.
func Parse(data []byte) (*cartridge.Cartridge, error) {
	if len(data) < 16 {
		return nil, ErrTruncated{Reason: "shorter than the 16-byte header"}
	}

	buf := bytes.NewReader(data)
	var h header
	if err := binary.Read(buf, binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("ines: reading header: %w", err)
	}
	if h.Magic != magic {
		return nil, ErrBadMagic{}
	}

	if h.Flags6&flagsTrainer != 0 {
		trainer := make([]byte, trainerSize)
		if err := binary.Read(buf, binary.BigEndian, trainer); err != nil {
			return nil, ErrTruncated{Reason: "trainer declared but missing"}
		}
	}

	mapperLo := h.Flags6 >> 4
	mapperHi := h.Flags7 >> 4
	mapperID := (mapperHi << 4) | mapperLo
	if mapperID != 0 {
		return nil, cartridge.ErrUnsupportedMapper{Mapper: mapperID}
	}

	prg := make([]byte, prgChunkSize*int(h.PrgRomChunks))
	if err := binary.Read(buf, binary.BigEndian, prg); err != nil {
		return nil, ErrTruncated{Reason: "PRG-ROM payload shorter than header declares"}
	}

	chr := make([]byte, chrChunkSize*int(h.ChrRomChunks))
	if err := binary.Read(buf, binary.BigEndian, chr); err != nil {
		return nil, ErrTruncated{Reason: "CHR-ROM payload shorter than header declares"}
	}

	mirroring := cartridge.Horizontal
	switch {
	case h.Flags6&flagsFourScr != 0:
		mirroring = cartridge.FourScreen
	case h.Flags6&flagsVertMir != 0:
		mirroring = cartridge.Vertical
	}

	return cartridge.NewNROM(prg, chr, mirroring)
}
