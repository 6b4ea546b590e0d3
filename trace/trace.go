// Package trace implements the disassembling tracer: it reconstructs the
// canonical per-instruction log line (PC, opcode bytes, mnemonic,
// operand annotation, register snapshot, cycle count) that the nestest
// validation ROM's published log is checked against.
package trace

import (
	"fmt"
	"strings"

	"github.com/crumhollow/nes6502/cpu6502"
)

// Line produces the trace line for the instruction about to execute at
// c's current PC. Intended to be called from the callback passed to
// cpu6502.CPU.RunWithCallback; reading ahead of PC for operand bytes has
// no side effects on CPU state, only on the bus's last-databus bookkeeping.
func Line(c *cpu6502.CPU) string {
	pc := c.PC
	opcode := c.Read8(pc)
	info := cpu6502.Lookup(opcode)

	var b strings.Builder

	fmt.Fprintf(&b, "%04X  ", pc)
	fmt.Fprint(&b, hexBytes(c, pc, info.Bytes))
	fmt.Fprint(&b, "  ")
	fmt.Fprint(&b, info.Mnemonic)
	fmt.Fprint(&b, " ")
	fmt.Fprint(&b, operandText(c, pc, info))

	for b.Len() < 48 {
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:  0,  0 CYC:%d",
		c.A, c.X, c.Y, c.P, c.SP, c.Cycles)

	return b.String()
}

// hexBytes renders the instruction's opcode byte and operand bytes,
// space-separated and padded to the width of a 3-byte instruction so
// every line's mnemonic column lines up.
func hexBytes(c *cpu6502.CPU, pc uint16, length int) string {
	raw := make([]string, 0, 3)
	for i := 0; i < length; i++ {
		raw = append(raw, fmt.Sprintf("%02X", c.Read8(pc+uint16(i))))
	}
	s := strings.Join(raw, " ")
	for len(s) < 8 {
		s += " "
	}
	return s
}

// operandText formats the operand annotation for mode per §4.7: each
// addressing mode has its own literal shape, several of them layering on
// the effective address and/or the memory value found there.
func operandText(c *cpu6502.CPU, pc uint16, info cpu6502.InstructionInfo) string {
	switch info.Mode {
	case cpu6502.Implicit:
		return ""
	case cpu6502.Accumulator:
		return "A"
	case cpu6502.Immediate:
		return fmt.Sprintf("#$%02X", c.Read8(pc+1))
	case cpu6502.ZeroPage:
		zp := c.Read8(pc + 1)
		return fmt.Sprintf("$%02X = %02X", zp, c.Read8(uint16(zp)))
	case cpu6502.ZeroPageX:
		zp := c.Read8(pc + 1)
		eff := uint8(zp + c.X)
		return fmt.Sprintf("$%02X,X @ %02X = %02X", zp, eff, c.Read8(uint16(eff)))
	case cpu6502.ZeroPageY:
		zp := c.Read8(pc + 1)
		eff := uint8(zp + c.Y)
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", zp, eff, c.Read8(uint16(eff)))
	case cpu6502.IndirectX:
		zp := c.Read8(pc + 1)
		ptr := uint8(zp + c.X)
		eff := readZP16(c, ptr)
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", zp, ptr, eff, c.Read8(eff))
	case cpu6502.IndirectY:
		zp := c.Read8(pc + 1)
		base := readZP16(c, zp)
		eff := base + uint16(c.Y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", zp, base, eff, c.Read8(eff))
	case cpu6502.Relative:
		offset := int8(c.Read8(pc + 1))
		target := uint16(int32(pc+2) + int32(offset))
		return fmt.Sprintf("$%04X", target)
	case cpu6502.Absolute:
		addr := readAbs16(c, pc)
		if info.Mnemonic == "JMP" || info.Mnemonic == "JSR" {
			return fmt.Sprintf("$%04X", addr)
		}
		return fmt.Sprintf("$%04X = %02X", addr, c.Read8(addr))
	case cpu6502.AbsoluteX:
		base := readAbs16(c, pc)
		eff := base + uint16(c.X)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", base, eff, c.Read8(eff))
	case cpu6502.AbsoluteY:
		base := readAbs16(c, pc)
		eff := base + uint16(c.Y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", base, eff, c.Read8(eff))
	case cpu6502.Indirect:
		ptr := readAbs16(c, pc)
		return fmt.Sprintf("($%04X) = %04X", ptr, readIndirectBugged(c, ptr))
	default:
		return ""
	}
}

func readAbs16(c *cpu6502.CPU, pc uint16) uint16 {
	return c.Read16(pc + 1)
}

// readZP16 mirrors the CPU's own zero-page-wrapping word read, needed
// here purely for disassembly (the CPU does the equivalent internally
// when it resolves IndirectX/IndirectY).
func readZP16(c *cpu6502.CPU, zp uint8) uint16 {
	lo := uint16(c.Read8(uint16(zp)))
	hi := uint16(c.Read8(uint16(zp + 1)))
	return lo | hi<<8
}

// readIndirectBugged mirrors the CPU's Indirect JMP page-boundary bug for
// display purposes.
func readIndirectBugged(c *cpu6502.CPU, ptr uint16) uint16 {
	lo := uint16(c.Read8(ptr))
	var hiAddr uint16
	if uint8(ptr) == 0xFF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.Read8(hiAddr))
	return lo | hi<<8
}
