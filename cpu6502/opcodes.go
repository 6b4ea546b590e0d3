package cpu6502

// AddrMode names one of the 13 addressing modes the resolver understands.
type AddrMode int

const (
	Implicit AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// operandKind tags the sum type an instruction handler is handed, per the
// source's "handler calling convention" design: handlers match on this
// instead of threading two separate Option-shaped values around.
type operandKind int

const (
	opImplicit operandKind = iota
	opAccumulator
	opValue
	opMemory
)

// operand is what an instruction handler receives: either nothing
// (Implicit), the accumulator (Accumulator), a bare value with no
// writable destination (Immediate), or a value plus the address it came
// from (every other mode, including Relative where addr is the operand
// byte's own address and val is the raw offset byte).
type operand struct {
	kind operandKind
	val  uint8
	addr uint16
}

// readOperand returns the operand's value: A for Accumulator, val for
// every other kind (0 for Implicit; handlers that take Implicit operands
// never call this).
func (c *CPU) readOperand(op operand) uint8 {
	switch op.kind {
	case opAccumulator:
		return c.A
	default:
		return op.val
	}
}

// writeOperand stores v back to the operand's destination: the
// accumulator or the effective address. Called by the store handlers and
// by the read-modify-write handlers (shifts/rotates/INC/DEC family); an
// Immediate or Implicit operand has no destination and is left untouched.
func (c *CPU) writeOperand(op operand, v uint8) {
	switch op.kind {
	case opAccumulator:
		c.A = v
	case opMemory:
		c.bus.Write(op.addr, v)
	}
}

// handlerFunc executes an instruction given its resolved operand and
// returns the number of extra cycles beyond the opcode table's base
// count (branch-taken/page-cross penalties the handler alone knows
// about; read-family page-cross penalties are applied by the loop).
type handlerFunc func(c *CPU, op operand) int

// opcodeEntry is one row of the 256-entry static dispatch table.
type opcodeEntry struct {
	mnemonic   string
	mode       AddrMode
	bytes      int
	baseCycles int
	readFamily bool // eligible for the loop-applied page-cross penalty
	handler    handlerFunc
	valid      bool
}

func op(mnemonic string, mode AddrMode, bytes, cycles int, readFamily bool, h handlerFunc) opcodeEntry {
	return opcodeEntry{mnemonic: mnemonic, mode: mode, bytes: bytes, baseCycles: cycles, readFamily: readFamily, handler: h, valid: true}
}

// opcodeTable is the static opcode byte -> entry mapping (§4.4, §9
// "opcode dispatch via function table"). Every one of the 256 byte
// values has an entry; none are left to a zero-value miss, matching the
// source's "entries for unmapped opcodes are a distinguished invalid
// variant" note — for this ISA every byte is in fact mapped (including
// the unofficial opcodes nestest exercises), so the iInvalid placeholder
// and Step's ErrUnknownOpcode path are wired but unreachable.
var opcodeTable = buildOpcodeTable()

// InstructionInfo is the static, read-only shape of an opcode table entry
// that callers outside this package (the tracer) need: enough to
// reconstruct the disassembly without duplicating the table.
type InstructionInfo struct {
	Mnemonic string
	Mode     AddrMode
	Bytes    int
	Valid    bool
}

// Lookup returns the static instruction info for opcode, independent of
// CPU state. Used by the tracer package to format a trace line.
func Lookup(opcode uint8) InstructionInfo {
	e := opcodeTable[opcode]
	return InstructionInfo{Mnemonic: e.mnemonic, Mode: e.mode, Bytes: e.bytes, Valid: e.valid}
}

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry
	for i := range t {
		t[i] = opcodeEntry{mnemonic: "???", handler: iInvalid}
	}

	set := func(code uint8, e opcodeEntry) { t[code] = e }

	// --- official opcodes ---

	set(0x00, op("BRK", Implicit, 1, 7, false, iBRK))
	set(0x01, op("ORA", IndirectX, 2, 6, false, iORA))
	set(0x05, op("ORA", ZeroPage, 2, 3, false, iORA))
	set(0x06, op("ASL", ZeroPage, 2, 5, false, iASL))
	set(0x08, op("PHP", Implicit, 1, 3, false, iPHP))
	set(0x09, op("ORA", Immediate, 2, 2, false, iORA))
	set(0x0A, op("ASL", Accumulator, 1, 2, false, iASL))
	set(0x0D, op("ORA", Absolute, 3, 4, false, iORA))
	set(0x0E, op("ASL", Absolute, 3, 6, false, iASL))
	set(0x10, op("BPL", Relative, 2, 2, false, iBPL))
	set(0x11, op("ORA", IndirectY, 2, 5, true, iORA))
	set(0x15, op("ORA", ZeroPageX, 2, 4, false, iORA))
	set(0x16, op("ASL", ZeroPageX, 2, 6, false, iASL))
	set(0x18, op("CLC", Implicit, 1, 2, false, iCLC))
	set(0x19, op("ORA", AbsoluteY, 3, 4, true, iORA))
	set(0x1D, op("ORA", AbsoluteX, 3, 4, true, iORA))
	set(0x1E, op("ASL", AbsoluteX, 3, 7, false, iASL))
	set(0x20, op("JSR", Absolute, 3, 6, false, iJSR))
	set(0x21, op("AND", IndirectX, 2, 6, false, iAND))
	set(0x24, op("BIT", ZeroPage, 2, 3, false, iBIT))
	set(0x25, op("AND", ZeroPage, 2, 3, false, iAND))
	set(0x26, op("ROL", ZeroPage, 2, 5, false, iROL))
	set(0x28, op("PLP", Implicit, 1, 4, false, iPLP))
	set(0x29, op("AND", Immediate, 2, 2, false, iAND))
	set(0x2A, op("ROL", Accumulator, 1, 2, false, iROL))
	set(0x2C, op("BIT", Absolute, 3, 4, false, iBIT))
	set(0x2D, op("AND", Absolute, 3, 4, false, iAND))
	set(0x2E, op("ROL", Absolute, 3, 6, false, iROL))
	set(0x30, op("BMI", Relative, 2, 2, false, iBMI))
	set(0x31, op("AND", IndirectY, 2, 5, true, iAND))
	set(0x35, op("AND", ZeroPageX, 2, 4, false, iAND))
	set(0x36, op("ROL", ZeroPageX, 2, 6, false, iROL))
	set(0x38, op("SEC", Implicit, 1, 2, false, iSEC))
	set(0x39, op("AND", AbsoluteY, 3, 4, true, iAND))
	set(0x3D, op("AND", AbsoluteX, 3, 4, true, iAND))
	set(0x3E, op("ROL", AbsoluteX, 3, 7, false, iROL))
	set(0x40, op("RTI", Implicit, 1, 6, false, iRTI))
	set(0x41, op("EOR", IndirectX, 2, 6, false, iEOR))
	set(0x45, op("EOR", ZeroPage, 2, 3, false, iEOR))
	set(0x46, op("LSR", ZeroPage, 2, 5, false, iLSR))
	set(0x48, op("PHA", Implicit, 1, 3, false, iPHA))
	set(0x49, op("EOR", Immediate, 2, 2, false, iEOR))
	set(0x4A, op("LSR", Accumulator, 1, 2, false, iLSR))
	set(0x4C, op("JMP", Absolute, 3, 3, false, iJMP))
	set(0x4D, op("EOR", Absolute, 3, 4, false, iEOR))
	set(0x4E, op("LSR", Absolute, 3, 6, false, iLSR))
	set(0x50, op("BVC", Relative, 2, 2, false, iBVC))
	set(0x51, op("EOR", IndirectY, 2, 5, true, iEOR))
	set(0x55, op("EOR", ZeroPageX, 2, 4, false, iEOR))
	set(0x56, op("LSR", ZeroPageX, 2, 6, false, iLSR))
	set(0x58, op("CLI", Implicit, 1, 2, false, iCLI))
	set(0x59, op("EOR", AbsoluteY, 3, 4, true, iEOR))
	set(0x5D, op("EOR", AbsoluteX, 3, 4, true, iEOR))
	set(0x5E, op("LSR", AbsoluteX, 3, 7, false, iLSR))
	set(0x60, op("RTS", Implicit, 1, 6, false, iRTS))
	set(0x61, op("ADC", IndirectX, 2, 6, false, iADC))
	set(0x65, op("ADC", ZeroPage, 2, 3, false, iADC))
	set(0x66, op("ROR", ZeroPage, 2, 5, false, iROR))
	set(0x68, op("PLA", Implicit, 1, 4, false, iPLA))
	set(0x69, op("ADC", Immediate, 2, 2, false, iADC))
	set(0x6A, op("ROR", Accumulator, 1, 2, false, iROR))
	set(0x6C, op("JMP", Indirect, 3, 5, false, iJMPIndirect))
	set(0x6D, op("ADC", Absolute, 3, 4, false, iADC))
	set(0x6E, op("ROR", Absolute, 3, 6, false, iROR))
	set(0x70, op("BVS", Relative, 2, 2, false, iBVS))
	set(0x71, op("ADC", IndirectY, 2, 5, true, iADC))
	set(0x75, op("ADC", ZeroPageX, 2, 4, false, iADC))
	set(0x76, op("ROR", ZeroPageX, 2, 6, false, iROR))
	set(0x78, op("SEI", Implicit, 1, 2, false, iSEI))
	set(0x79, op("ADC", AbsoluteY, 3, 4, true, iADC))
	set(0x7D, op("ADC", AbsoluteX, 3, 4, true, iADC))
	set(0x7E, op("ROR", AbsoluteX, 3, 7, false, iROR))
	set(0x81, op("STA", IndirectX, 2, 6, false, iSTA))
	set(0x84, op("STY", ZeroPage, 2, 3, false, iSTY))
	set(0x85, op("STA", ZeroPage, 2, 3, false, iSTA))
	set(0x86, op("STX", ZeroPage, 2, 3, false, iSTX))
	set(0x88, op("DEY", Implicit, 1, 2, false, iDEY))
	set(0x8A, op("TXA", Implicit, 1, 2, false, iTXA))
	set(0x8C, op("STY", Absolute, 3, 4, false, iSTY))
	set(0x8D, op("STA", Absolute, 3, 4, false, iSTA))
	set(0x8E, op("STX", Absolute, 3, 4, false, iSTX))
	set(0x90, op("BCC", Relative, 2, 2, false, iBCC))
	set(0x91, op("STA", IndirectY, 2, 6, false, iSTA))
	set(0x94, op("STY", ZeroPageX, 2, 4, false, iSTY))
	set(0x95, op("STA", ZeroPageX, 2, 4, false, iSTA))
	set(0x96, op("STX", ZeroPageY, 2, 4, false, iSTX))
	set(0x98, op("TYA", Implicit, 1, 2, false, iTYA))
	set(0x99, op("STA", AbsoluteY, 3, 5, false, iSTA))
	set(0x9A, op("TXS", Implicit, 1, 2, false, iTXS))
	set(0x9D, op("STA", AbsoluteX, 3, 5, false, iSTA))
	set(0xA0, op("LDY", Immediate, 2, 2, false, iLDY))
	set(0xA1, op("LDA", IndirectX, 2, 6, false, iLDA))
	set(0xA2, op("LDX", Immediate, 2, 2, false, iLDX))
	set(0xA4, op("LDY", ZeroPage, 2, 3, false, iLDY))
	set(0xA5, op("LDA", ZeroPage, 2, 3, false, iLDA))
	set(0xA6, op("LDX", ZeroPage, 2, 3, false, iLDX))
	set(0xA8, op("TAY", Implicit, 1, 2, false, iTAY))
	set(0xA9, op("LDA", Immediate, 2, 2, false, iLDA))
	set(0xAA, op("TAX", Implicit, 1, 2, false, iTAX))
	set(0xAC, op("LDY", Absolute, 3, 4, false, iLDY))
	set(0xAD, op("LDA", Absolute, 3, 4, false, iLDA))
	set(0xAE, op("LDX", Absolute, 3, 4, false, iLDX))
	set(0xB0, op("BCS", Relative, 2, 2, false, iBCS))
	set(0xB1, op("LDA", IndirectY, 2, 5, true, iLDA))
	set(0xB4, op("LDY", ZeroPageX, 2, 4, false, iLDY))
	set(0xB5, op("LDA", ZeroPageX, 2, 4, false, iLDA))
	set(0xB6, op("LDX", ZeroPageY, 2, 4, false, iLDX))
	set(0xB8, op("CLV", Implicit, 1, 2, false, iCLV))
	set(0xB9, op("LDA", AbsoluteY, 3, 4, true, iLDA))
	set(0xBA, op("TSX", Implicit, 1, 2, false, iTSX))
	set(0xBC, op("LDY", AbsoluteX, 3, 4, true, iLDY))
	set(0xBD, op("LDA", AbsoluteX, 3, 4, true, iLDA))
	set(0xBE, op("LDX", AbsoluteY, 3, 4, true, iLDX))
	set(0xC0, op("CPY", Immediate, 2, 2, false, iCPY))
	set(0xC1, op("CMP", IndirectX, 2, 6, false, iCMP))
	set(0xC4, op("CPY", ZeroPage, 2, 3, false, iCPY))
	set(0xC5, op("CMP", ZeroPage, 2, 3, false, iCMP))
	set(0xC6, op("DEC", ZeroPage, 2, 5, false, iDEC))
	set(0xC8, op("INY", Implicit, 1, 2, false, iINY))
	set(0xC9, op("CMP", Immediate, 2, 2, false, iCMP))
	set(0xCA, op("DEX", Implicit, 1, 2, false, iDEX))
	set(0xCC, op("CPY", Absolute, 3, 4, false, iCPY))
	set(0xCD, op("CMP", Absolute, 3, 4, false, iCMP))
	set(0xCE, op("DEC", Absolute, 3, 6, false, iDEC))
	set(0xD0, op("BNE", Relative, 2, 2, false, iBNE))
	set(0xD1, op("CMP", IndirectY, 2, 5, true, iCMP))
	set(0xD5, op("CMP", ZeroPageX, 2, 4, false, iCMP))
	set(0xD6, op("DEC", ZeroPageX, 2, 6, false, iDEC))
	set(0xD8, op("CLD", Implicit, 1, 2, false, iCLD))
	set(0xD9, op("CMP", AbsoluteY, 3, 4, true, iCMP))
	set(0xDD, op("CMP", AbsoluteX, 3, 4, true, iCMP))
	set(0xDE, op("DEC", AbsoluteX, 3, 7, false, iDEC))
	set(0xE0, op("CPX", Immediate, 2, 2, false, iCPX))
	set(0xE1, op("SBC", IndirectX, 2, 6, false, iSBC))
	set(0xE4, op("CPX", ZeroPage, 2, 3, false, iCPX))
	set(0xE5, op("SBC", ZeroPage, 2, 3, false, iSBC))
	set(0xE6, op("INC", ZeroPage, 2, 5, false, iINC))
	set(0xE8, op("INX", Implicit, 1, 2, false, iINX))
	set(0xE9, op("SBC", Immediate, 2, 2, false, iSBC))
	set(0xEA, op("NOP", Implicit, 1, 2, false, iNOP))
	set(0xEC, op("CPX", Absolute, 3, 4, false, iCPX))
	set(0xED, op("SBC", Absolute, 3, 4, false, iSBC))
	set(0xEE, op("INC", Absolute, 3, 6, false, iINC))
	set(0xF0, op("BEQ", Relative, 2, 2, false, iBEQ))
	set(0xF1, op("SBC", IndirectY, 2, 5, true, iSBC))
	set(0xF5, op("SBC", ZeroPageX, 2, 4, false, iSBC))
	set(0xF6, op("INC", ZeroPageX, 2, 6, false, iINC))
	set(0xF8, op("SED", Implicit, 1, 2, false, iSED))
	set(0xF9, op("SBC", AbsoluteY, 3, 4, true, iSBC))
	set(0xFD, op("SBC", AbsoluteX, 3, 4, true, iSBC))
	set(0xFE, op("INC", AbsoluteX, 3, 7, false, iINC))

	// --- unofficial / undocumented opcodes required for nestest parity ---

	// KIL/JAM/HLT: every one of these stops the CPU cold.
	for _, code := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		set(code, op("KIL", Implicit, 1, 2, false, iKIL))
	}

	// SLO = ASL mem then ORA A.
	set(0x03, op("SLO", IndirectX, 2, 8, false, iSLO))
	set(0x07, op("SLO", ZeroPage, 2, 5, false, iSLO))
	set(0x0F, op("SLO", Absolute, 3, 6, false, iSLO))
	set(0x13, op("SLO", IndirectY, 2, 8, false, iSLO))
	set(0x17, op("SLO", ZeroPageX, 2, 6, false, iSLO))
	set(0x1B, op("SLO", AbsoluteY, 3, 7, false, iSLO))
	set(0x1F, op("SLO", AbsoluteX, 3, 7, false, iSLO))

	// RLA = ROL mem then AND A.
	set(0x23, op("RLA", IndirectX, 2, 8, false, iRLA))
	set(0x27, op("RLA", ZeroPage, 2, 5, false, iRLA))
	set(0x2F, op("RLA", Absolute, 3, 6, false, iRLA))
	set(0x33, op("RLA", IndirectY, 2, 8, false, iRLA))
	set(0x37, op("RLA", ZeroPageX, 2, 6, false, iRLA))
	set(0x3B, op("RLA", AbsoluteY, 3, 7, false, iRLA))
	set(0x3F, op("RLA", AbsoluteX, 3, 7, false, iRLA))

	// SRE = LSR mem then EOR A.
	set(0x43, op("SRE", IndirectX, 2, 8, false, iSRE))
	set(0x47, op("SRE", ZeroPage, 2, 5, false, iSRE))
	set(0x4F, op("SRE", Absolute, 3, 6, false, iSRE))
	set(0x53, op("SRE", IndirectY, 2, 8, false, iSRE))
	set(0x57, op("SRE", ZeroPageX, 2, 6, false, iSRE))
	set(0x5B, op("SRE", AbsoluteY, 3, 7, false, iSRE))
	set(0x5F, op("SRE", AbsoluteX, 3, 7, false, iSRE))

	// RRA = ROR mem then ADC A, using the rotation's new carry.
	set(0x63, op("RRA", IndirectX, 2, 8, false, iRRA))
	set(0x67, op("RRA", ZeroPage, 2, 5, false, iRRA))
	set(0x6F, op("RRA", Absolute, 3, 6, false, iRRA))
	set(0x73, op("RRA", IndirectY, 2, 8, false, iRRA))
	set(0x77, op("RRA", ZeroPageX, 2, 6, false, iRRA))
	set(0x7B, op("RRA", AbsoluteY, 3, 7, false, iRRA))
	set(0x7F, op("RRA", AbsoluteX, 3, 7, false, iRRA))

	// SAX = store A & X.
	set(0x83, op("SAX", IndirectX, 2, 6, false, iSAX))
	set(0x87, op("SAX", ZeroPage, 2, 3, false, iSAX))
	set(0x8F, op("SAX", Absolute, 3, 4, false, iSAX))
	set(0x97, op("SAX", ZeroPageY, 2, 4, false, iSAX))

	// LAX = LDA then TAX.
	set(0xA3, op("LAX", IndirectX, 2, 6, false, iLAX))
	set(0xA7, op("LAX", ZeroPage, 2, 3, false, iLAX))
	set(0xAF, op("LAX", Absolute, 3, 4, false, iLAX))
	set(0xB3, op("LAX", IndirectY, 2, 5, true, iLAX))
	set(0xB7, op("LAX", ZeroPageY, 2, 4, false, iLAX))
	set(0xBF, op("LAX", AbsoluteY, 3, 4, true, iLAX))

	// DCP = DEC then CMP.
	set(0xC3, op("DCP", IndirectX, 2, 8, false, iDCP))
	set(0xC7, op("DCP", ZeroPage, 2, 5, false, iDCP))
	set(0xCF, op("DCP", Absolute, 3, 6, false, iDCP))
	set(0xD3, op("DCP", IndirectY, 2, 8, false, iDCP))
	set(0xD7, op("DCP", ZeroPageX, 2, 6, false, iDCP))
	set(0xDB, op("DCP", AbsoluteY, 3, 7, false, iDCP))
	set(0xDF, op("DCP", AbsoluteX, 3, 7, false, iDCP))

	// ISC/ISB = INC then SBC.
	set(0xE3, op("ISC", IndirectX, 2, 8, false, iISC))
	set(0xE7, op("ISC", ZeroPage, 2, 5, false, iISC))
	set(0xEF, op("ISC", Absolute, 3, 6, false, iISC))
	set(0xF3, op("ISC", IndirectY, 2, 8, false, iISC))
	set(0xF7, op("ISC", ZeroPageX, 2, 6, false, iISC))
	set(0xFB, op("ISC", AbsoluteY, 3, 7, false, iISC))
	set(0xFF, op("ISC", AbsoluteX, 3, 7, false, iISC))

	// Unofficial NOPs: SKB (zero page/immediate) and IGN/TOP (absolute
	// family) variants. Multi-byte ones still pay the read cost and
	// thus the page-cross penalty where applicable, per §4.5.
	set(0x1A, op("NOP", Implicit, 1, 2, false, iNOP))
	set(0x3A, op("NOP", Implicit, 1, 2, false, iNOP))
	set(0x5A, op("NOP", Implicit, 1, 2, false, iNOP))
	set(0x7A, op("NOP", Implicit, 1, 2, false, iNOP))
	set(0xDA, op("NOP", Implicit, 1, 2, false, iNOP))
	set(0xFA, op("NOP", Implicit, 1, 2, false, iNOP))
	set(0x80, op("NOP", Immediate, 2, 2, false, iNOP))
	set(0x82, op("NOP", Immediate, 2, 2, false, iNOP))
	set(0x89, op("NOP", Immediate, 2, 2, false, iNOP))
	set(0xC2, op("NOP", Immediate, 2, 2, false, iNOP))
	set(0xE2, op("NOP", Immediate, 2, 2, false, iNOP))
	set(0x04, op("NOP", ZeroPage, 2, 3, false, iNOP))
	set(0x44, op("NOP", ZeroPage, 2, 3, false, iNOP))
	set(0x64, op("NOP", ZeroPage, 2, 3, false, iNOP))
	set(0x14, op("NOP", ZeroPageX, 2, 4, false, iNOP))
	set(0x34, op("NOP", ZeroPageX, 2, 4, false, iNOP))
	set(0x54, op("NOP", ZeroPageX, 2, 4, false, iNOP))
	set(0x74, op("NOP", ZeroPageX, 2, 4, false, iNOP))
	set(0xD4, op("NOP", ZeroPageX, 2, 4, false, iNOP))
	set(0xF4, op("NOP", ZeroPageX, 2, 4, false, iNOP))
	set(0x0C, op("NOP", Absolute, 3, 4, false, iNOP))
	set(0x1C, op("NOP", AbsoluteX, 3, 4, true, iNOP))
	set(0x3C, op("NOP", AbsoluteX, 3, 4, true, iNOP))
	set(0x5C, op("NOP", AbsoluteX, 3, 4, true, iNOP))
	set(0x7C, op("NOP", AbsoluteX, 3, 4, true, iNOP))
	set(0xDC, op("NOP", AbsoluteX, 3, 4, true, iNOP))
	set(0xFC, op("NOP", AbsoluteX, 3, 4, true, iNOP))

	// unofficial SBC, identical to $E9.
	set(0xEB, op("SBC", Immediate, 2, 2, false, iSBC))

	// ANC: AND immediate, then C <- bit 7 of result (N).
	set(0x0B, op("ANC", Immediate, 2, 2, false, iANC))
	set(0x2B, op("ANC", Immediate, 2, 2, false, iANC))

	// ALR/ASR: AND immediate then LSR A.
	set(0x4B, op("ALR", Immediate, 2, 2, false, iALR))

	// ARR: AND immediate then ROR A, with its own C/V derivation.
	set(0x6B, op("ARR", Immediate, 2, 2, false, iARR))

	// AXS/SBX: X <- (A & X) - operand, sets C/N/Z like a compare.
	set(0xCB, op("AXS", Immediate, 2, 2, false, iAXS))

	// ATX/LXA/OAL: (A | magic) & operand -> A and X. Unstable on real
	// silicon; this core implements the common "A OR'd with 0xEE"
	// behavior nestest assumes.
	set(0xAB, op("LXA", Immediate, 2, 2, false, iLXA))

	// XAA/ANE: highly unstable, implemented per the common emulator
	// convention A = (A | 0xEE) & X & operand.
	set(0x8B, op("XAA", Immediate, 2, 2, false, iXAA))

	// TAS/XAS: SP <- A & X; store SP & (hi(addr)+1) at effective address.
	set(0x9B, op("TAS", AbsoluteY, 3, 5, false, iTAS))

	// SHY/SYA: store Y & (hi(addr)+1).
	set(0x9C, op("SHY", AbsoluteX, 3, 5, false, iSHY))

	// SHX/SXA: store X & (hi(addr)+1).
	set(0x9E, op("SHX", AbsoluteY, 3, 5, false, iSHX))

	// AHX/AXA/SHA: store A & X & (hi(addr)+1).
	set(0x93, op("AHX", IndirectY, 2, 6, false, iAHX))
	set(0x9F, op("AHX", AbsoluteY, 3, 5, false, iAHX))

	// LAS/LAR: (mem & SP) -> A, X, SP.
	set(0xBB, op("LAS", AbsoluteY, 3, 4, true, iLAS))

	return t
}
