// Package cpu6502 implements a cycle-accounting interpreter for the MOS
// 6502 as used by the NES's Ricoh 2A03: decimal mode is inert, and cycle
// accounting happens at instruction granularity rather than per T-state.
package cpu6502

// Bus is the address-space capability the CPU depends on. Kept narrow and
// local (rather than importing a concrete bus package) so tests can
// substitute a flat array; the NROM/mirroring rules live entirely in
// whatever concrete type satisfies this.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// CPU holds the complete state of a single MOS 6502 core: the six
// registers, the cumulative cycle count, and the halted latch KIL-family
// opcodes set.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8
	Cycles  uint64
	Halted  bool
	haltOp  uint8

	bus Bus
}

// New constructs a CPU over the given bus at cold-start register values.
// Hosts normally call Reset before Run.
func New(bus Bus) *CPU {
	return &CPU{
		SP:  coldSP,
		P:   coldP,
		bus: bus,
	}
}

// Reset sets the CPU to its post-reset state and loads PC from the reset
// vector. Idempotent: calling it repeatedly always produces the same
// state given the same bus contents.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.P = resetP
	c.SP = resetSP
	c.Cycles = resetCycle
	c.Halted = false
	c.haltOp = 0
	c.PC = c.Read16(RESET_VECTOR)
}

// Read8 reads a single byte through the bus.
func (c *CPU) Read8(addr uint16) uint8 { return c.bus.Read(addr) }

// Write8 writes a single byte through the bus.
func (c *CPU) Write8(addr uint16, val uint8) { c.bus.Write(addr, val) }

// Read16 reads a little-endian word through the bus.
func (c *CPU) Read16(addr uint16) uint16 {
	lo := uint16(c.bus.Read(addr))
	hi := uint16(c.bus.Read(addr + 1))
	return lo | hi<<8
}

// Write16 writes a little-endian word through the bus.
func (c *CPU) Write16(addr uint16, val uint16) {
	c.bus.Write(addr, uint8(val))
	c.bus.Write(addr+1, uint8(val>>8))
}

// read16ZeroPage reads a little-endian word from zero page with wraparound
// of the high byte's address within page zero, as IndirectX/IndirectY
// require.
func (c *CPU) read16ZeroPage(zp uint8) uint16 {
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16(uint8(zp + 1))))
	return lo | hi<<8
}

// Push8 pushes v onto the hardware stack and decrements SP with 8-bit
// wrap.
func (c *CPU) Push8(v uint8) {
	c.bus.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

// Pop8 increments SP with 8-bit wrap and returns the byte there.
func (c *CPU) Pop8() uint8 {
	c.SP++
	return c.bus.Read(0x0100 | uint16(c.SP))
}

// Push16 pushes v high byte first, then low byte, so popping it back with
// Pop16 (or two Pop8 calls low-then-high) reconstructs v.
func (c *CPU) Push16(v uint16) {
	c.Push8(uint8(v >> 8))
	c.Push8(uint8(v))
}

// Pop16 pops a low byte then a high byte and combines them little-endian.
func (c *CPU) Pop16() uint16 {
	lo := uint16(c.Pop8())
	hi := uint16(c.Pop8())
	return lo | hi<<8
}

func (c *CPU) getFlag(mask uint8) bool { return c.P&mask != 0 }

func (c *CPU) setFlag(mask uint8, v bool) {
	if v {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// packForPush returns P as it should appear on the stack: U always set,
// B set according to withBreak. PHP and BRK pass true; a hardware
// IRQ/NMI hook (left to the host per §5) would pass false.
func (c *CPU) packForPush(withBreak bool) uint8 {
	v := c.P | P_UNUSED
	if withBreak {
		v |= P_BREAK
	} else {
		v &^= P_BREAK
	}
	return v
}

// unpackFromPop returns popped as the value P should take: B is never
// resident in P, and U always reads back as 1. PLP and RTI use this.
func unpackFromPop(popped uint8) uint8 {
	return (popped &^ P_BREAK) | P_UNUSED
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(P_ZERO, v == 0)
	c.setFlag(P_NEGATIVE, v&P_NEGATIVE != 0)
}

// resolve computes the effective address and page-cross signal for mode,
// given the address of the instruction's first operand byte. It performs
// no read at the resolved address; that is the caller's job (Step), per
// §4.2's "the resolver performs no reads from the resolved effective
// address."
func (c *CPU) resolve(mode AddrMode, opAddr uint16) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implicit, Accumulator:
		return 0, false
	case Immediate, Relative:
		return opAddr, false
	case ZeroPage:
		return uint16(c.bus.Read(opAddr)), false
	case ZeroPageX:
		return uint16(uint8(c.bus.Read(opAddr) + c.X)), false
	case ZeroPageY:
		return uint16(uint8(c.bus.Read(opAddr) + c.Y)), false
	case Absolute:
		return c.Read16(opAddr), false
	case AbsoluteX:
		base := c.Read16(opAddr)
		eff := base + uint16(c.X)
		return eff, hi(base) != hi(eff)
	case AbsoluteY:
		base := c.Read16(opAddr)
		eff := base + uint16(c.Y)
		return eff, hi(base) != hi(eff)
	case Indirect:
		ptr := c.Read16(opAddr)
		return c.readIndirectBugged(ptr), false
	case IndirectX:
		zp := c.bus.Read(opAddr) + c.X
		return c.read16ZeroPage(zp), false
	case IndirectY:
		zp := c.bus.Read(opAddr)
		base := c.read16ZeroPage(zp)
		eff := base + uint16(c.Y)
		return eff, hi(base) != hi(eff)
	default:
		return 0, false
	}
}

// readIndirectBugged emulates the Indirect JMP page-boundary bug: if
// ptr's low byte is $FF, the high byte comes from ptr&$FF00 rather than
// ptr+1.
func (c *CPU) readIndirectBugged(ptr uint16) uint16 {
	lo := uint16(c.bus.Read(ptr))
	var hiAddr uint16
	if uint8(ptr) == 0xFF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hiByte := uint16(c.bus.Read(hiAddr))
	return lo | hiByte<<8
}

func hi(addr uint16) uint16 { return addr & 0xFF00 }

// Step builds the operand for an opcode entry, applies the page-cross
// penalty for read-family instructions, invokes the handler, and
// advances PC unless the handler already changed it (branch/jump/call).
func (c *CPU) Step() (int, error) {
	if c.Halted {
		return 0, ErrHalted{PC: c.PC, Opcode: c.haltOp}
	}

	pc0 := c.PC
	opcode := c.bus.Read(pc0)
	entry := opcodeTable[opcode]
	if !entry.valid {
		return 0, ErrUnknownOpcode{PC: pc0, Opcode: opcode}
	}

	op, pageCrossed := c.buildOperand(entry, pc0)

	cycles := entry.baseCycles
	if entry.readFamily && pageCrossed {
		cycles++
	}

	extra := entry.handler(c, op)
	cycles += extra
	c.Cycles += uint64(cycles)

	if c.PC == pc0 {
		c.PC = pc0 + uint16(entry.bytes)
	}

	return cycles, nil
}

// buildOperand resolves mode and, for every mode that reads memory,
// fetches the value at the effective address exactly once.
func (c *CPU) buildOperand(entry opcodeEntry, pc0 uint16) (operand, bool) {
	switch entry.mode {
	case Implicit:
		return operand{kind: opImplicit}, false
	case Accumulator:
		return operand{kind: opAccumulator, val: c.A}, false
	case Immediate:
		addr, crossed := c.resolve(entry.mode, pc0+1)
		return operand{kind: opValue, val: c.bus.Read(addr), addr: addr}, crossed
	default:
		addr, crossed := c.resolve(entry.mode, pc0+1)
		return operand{kind: opMemory, val: c.bus.Read(addr), addr: addr}, crossed
	}
}

// Run executes until Halted becomes true or a fault occurs.
func (c *CPU) Run() error {
	return c.RunWithCallback(nil)
}

// RunWithCallback executes until Halted becomes true or a fault occurs,
// invoking f (if non-nil) immediately before each instruction so a
// tracer can snapshot CPU state pre-execute. If the loop stopped
// because a KIL/JAM opcode halted the CPU, it returns ErrHalted so
// callers can distinguish that clean halt from a decode fault
// (ErrUnknownOpcode) or from a callback-requested stop (f setting
// Halted directly, which returns nil).
func (c *CPU) RunWithCallback(f func(*CPU)) error {
	for !c.Halted {
		if f != nil {
			f(c)
		}
		if c.Halted {
			break
		}
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	if c.haltOp != 0 {
		return ErrHalted{PC: c.PC, Opcode: c.haltOp}
	}
	return nil
}
