package cpu6502

// iInvalid backs unmapped opcode-table entries. Unreachable for this ISA
// since every byte 0x00-0xFF has a real entry, but Step checks
// entry.valid before ever calling a handler, so this only exists to give
// the zero-value opcodeEntry a non-nil handler.
func iInvalid(c *CPU, op operand) int { return 0 }

// --- loads / transfers ---

func iLDA(c *CPU, op operand) int {
	c.A = c.readOperand(op)
	c.setZN(c.A)
	return 0
}

func iLDX(c *CPU, op operand) int {
	c.X = c.readOperand(op)
	c.setZN(c.X)
	return 0
}

func iLDY(c *CPU, op operand) int {
	c.Y = c.readOperand(op)
	c.setZN(c.Y)
	return 0
}

func iTAX(c *CPU, op operand) int { c.X = c.A; c.setZN(c.X); return 0 }
func iTAY(c *CPU, op operand) int { c.Y = c.A; c.setZN(c.Y); return 0 }
func iTXA(c *CPU, op operand) int { c.A = c.X; c.setZN(c.A); return 0 }
func iTYA(c *CPU, op operand) int { c.A = c.Y; c.setZN(c.A); return 0 }
func iTSX(c *CPU, op operand) int { c.X = c.SP; c.setZN(c.X); return 0 }

// TXS copies X into SP without touching any flags.
func iTXS(c *CPU, op operand) int { c.SP = c.X; return 0 }

// --- stores ---

func iSTA(c *CPU, op operand) int { c.writeOperand(op, c.A); return 0 }
func iSTX(c *CPU, op operand) int { c.writeOperand(op, c.X); return 0 }
func iSTY(c *CPU, op operand) int { c.writeOperand(op, c.Y); return 0 }

// --- arithmetic ---

func (c *CPU) adc(v uint8) {
	carryIn := uint16(0)
	if c.getFlag(P_CARRY) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(v) + carryIn
	result := uint8(sum)
	c.setFlag(P_OVERFLOW, (c.A^result)&(v^result)&P_NEGATIVE != 0)
	c.setFlag(P_CARRY, sum > 0xFF)
	c.A = result
	c.setZN(c.A)
}

func iADC(c *CPU, op operand) int {
	c.adc(c.readOperand(op))
	return 0
}

func iSBC(c *CPU, op operand) int {
	c.adc(^c.readOperand(op))
	return 0
}

// --- logical ---

func iAND(c *CPU, op operand) int { c.A &= c.readOperand(op); c.setZN(c.A); return 0 }
func iORA(c *CPU, op operand) int { c.A |= c.readOperand(op); c.setZN(c.A); return 0 }
func iEOR(c *CPU, op operand) int { c.A ^= c.readOperand(op); c.setZN(c.A); return 0 }

// --- shifts / rotates ---

func iASL(c *CPU, op operand) int {
	v := c.readOperand(op)
	c.setFlag(P_CARRY, v&0x80 != 0)
	v <<= 1
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func iLSR(c *CPU, op operand) int {
	v := c.readOperand(op)
	c.setFlag(P_CARRY, v&0x01 != 0)
	v >>= 1
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func iROL(c *CPU, op operand) int {
	v := c.readOperand(op)
	oldC := uint8(0)
	if c.getFlag(P_CARRY) {
		oldC = 1
	}
	c.setFlag(P_CARRY, v&0x80 != 0)
	v = (v << 1) | oldC
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

// rol is ROL's pure form, used by RLA/RRA-style composites that need the
// new carry value rather than just the rotated byte.
func (c *CPU) rol(v uint8) (res uint8, newCarry bool) {
	oldC := uint8(0)
	if c.getFlag(P_CARRY) {
		oldC = 1
	}
	newCarry = v&0x80 != 0
	res = (v << 1) | oldC
	return res, newCarry
}

func (c *CPU) ror(v uint8) (res uint8, newCarry bool) {
	oldC := uint8(0)
	if c.getFlag(P_CARRY) {
		oldC = 0x80
	}
	newCarry = v&0x01 != 0
	res = (v >> 1) | oldC
	return res, newCarry
}

func iROR(c *CPU, op operand) int {
	v := c.readOperand(op)
	res, newCarry := c.ror(v)
	c.setFlag(P_CARRY, newCarry)
	c.writeOperand(op, res)
	c.setZN(res)
	return 0
}

// --- compares ---

func compare(c *CPU, reg, v uint8) {
	result := reg - v
	c.setFlag(P_CARRY, reg >= v)
	c.setFlag(P_ZERO, reg == v)
	c.setFlag(P_NEGATIVE, result&P_NEGATIVE != 0)
}

func iCMP(c *CPU, op operand) int { compare(c, c.A, c.readOperand(op)); return 0 }
func iCPX(c *CPU, op operand) int { compare(c, c.X, c.readOperand(op)); return 0 }
func iCPY(c *CPU, op operand) int { compare(c, c.Y, c.readOperand(op)); return 0 }

// --- increments / decrements ---

func iINC(c *CPU, op operand) int {
	v := c.readOperand(op) + 1
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func iDEC(c *CPU, op operand) int {
	v := c.readOperand(op) - 1
	c.writeOperand(op, v)
	c.setZN(v)
	return 0
}

func iINX(c *CPU, op operand) int { c.X++; c.setZN(c.X); return 0 }
func iDEX(c *CPU, op operand) int { c.X--; c.setZN(c.X); return 0 }
func iINY(c *CPU, op operand) int { c.Y++; c.setZN(c.Y); return 0 }
func iDEY(c *CPU, op operand) int { c.Y--; c.setZN(c.Y); return 0 }

// --- branches ---

// branch implements the shared taken/page-cross accounting for all eight
// conditional branches: target = (PC + entry.bytes) + signed offset,
// relative to the post-instruction PC, not the operand address.
func (c *CPU) branch(op operand, taken bool) int {
	if !taken {
		return 0
	}
	base := c.PC + 2
	offset := int8(op.val)
	target := uint16(int32(base) + int32(offset))
	extra := 1
	if hi(base) != hi(target) {
		extra++
	}
	c.PC = target
	return extra
}

func iBCC(c *CPU, op operand) int { return c.branch(op, !c.getFlag(P_CARRY)) }
func iBCS(c *CPU, op operand) int { return c.branch(op, c.getFlag(P_CARRY)) }
func iBEQ(c *CPU, op operand) int { return c.branch(op, c.getFlag(P_ZERO)) }
func iBNE(c *CPU, op operand) int { return c.branch(op, !c.getFlag(P_ZERO)) }
func iBMI(c *CPU, op operand) int { return c.branch(op, c.getFlag(P_NEGATIVE)) }
func iBPL(c *CPU, op operand) int { return c.branch(op, !c.getFlag(P_NEGATIVE)) }
func iBVC(c *CPU, op operand) int { return c.branch(op, !c.getFlag(P_OVERFLOW)) }
func iBVS(c *CPU, op operand) int { return c.branch(op, c.getFlag(P_OVERFLOW)) }

// --- jumps / subroutines ---

func iJMP(c *CPU, op operand) int { c.PC = op.addr; return 0 }

// iJMPIndirect reuses the already-bugged address resolve did; op.addr is
// the final effective address, the bug having been applied in resolve.
func iJMPIndirect(c *CPU, op operand) int { c.PC = op.addr; return 0 }

// iJSR pushes PC+2, the address of this instruction's last byte
// ("return-minus-one"), then jumps.
func iJSR(c *CPU, op operand) int {
	c.Push16(c.PC + 2)
	c.PC = op.addr
	return 0
}

// iRTS pops the return-minus-one address and resumes just past it.
func iRTS(c *CPU, op operand) int {
	c.PC = c.Pop16() + 1
	return 0
}

// --- interrupts / flag ops ---

func iBRK(c *CPU, op operand) int {
	c.Push16(c.PC + 2)
	c.Push8(c.packForPush(true))
	c.setFlag(P_INTERRUPT, true)
	c.PC = c.Read16(IRQ_VECTOR)
	return 0
}

// iRTI pops P (forcing B=0, U=1) then pops PC directly, no +1.
func iRTI(c *CPU, op operand) int {
	c.P = unpackFromPop(c.Pop8())
	c.PC = c.Pop16()
	return 0
}

func iCLC(c *CPU, op operand) int { c.setFlag(P_CARRY, false); return 0 }
func iSEC(c *CPU, op operand) int { c.setFlag(P_CARRY, true); return 0 }
func iCLI(c *CPU, op operand) int { c.setFlag(P_INTERRUPT, false); return 0 }
func iSEI(c *CPU, op operand) int { c.setFlag(P_INTERRUPT, true); return 0 }
func iCLD(c *CPU, op operand) int { c.setFlag(P_DECIMAL, false); return 0 }
func iSED(c *CPU, op operand) int { c.setFlag(P_DECIMAL, true); return 0 }
func iCLV(c *CPU, op operand) int { c.setFlag(P_OVERFLOW, false); return 0 }

func iPHA(c *CPU, op operand) int { c.Push8(c.A); return 0 }
func iPHP(c *CPU, op operand) int { c.Push8(c.packForPush(true)); return 0 }
func iPLA(c *CPU, op operand) int { c.A = c.Pop8(); c.setZN(c.A); return 0 }
func iPLP(c *CPU, op operand) int { c.P = unpackFromPop(c.Pop8()); return 0 }

// --- BIT ---

func iBIT(c *CPU, op operand) int {
	v := c.readOperand(op)
	c.setFlag(P_ZERO, c.A&v == 0)
	c.setFlag(P_NEGATIVE, v&P_NEGATIVE != 0)
	c.setFlag(P_OVERFLOW, v&P_OVERFLOW != 0)
	return 0
}

// --- NOP / KIL ---

func iNOP(c *CPU, op operand) int { return 0 }

func iKIL(c *CPU, op operand) int {
	c.Halted = true
	c.haltOp = c.bus.Read(c.PC)
	return 0
}

// --- unofficial composites ---

// iSLO: ASL memory, then ORA the result into A.
func iSLO(c *CPU, op operand) int {
	v := c.readOperand(op)
	c.setFlag(P_CARRY, v&0x80 != 0)
	v <<= 1
	c.writeOperand(op, v)
	c.A |= v
	c.setZN(c.A)
	return 0
}

// iRLA: ROL memory, then AND the result into A.
func iRLA(c *CPU, op operand) int {
	v := c.readOperand(op)
	res, newCarry := c.rol(v)
	c.setFlag(P_CARRY, newCarry)
	c.writeOperand(op, res)
	c.A &= res
	c.setZN(c.A)
	return 0
}

// iSRE: LSR memory, then EOR the result into A.
func iSRE(c *CPU, op operand) int {
	v := c.readOperand(op)
	c.setFlag(P_CARRY, v&0x01 != 0)
	v >>= 1
	c.writeOperand(op, v)
	c.A ^= v
	c.setZN(c.A)
	return 0
}

// iRRA: ROR memory, then ADC the result into A using the rotation's own
// new carry as ADC's carry-in.
func iRRA(c *CPU, op operand) int {
	v := c.readOperand(op)
	res, newCarry := c.ror(v)
	c.writeOperand(op, res)
	c.setFlag(P_CARRY, newCarry)
	c.adc(res)
	return 0
}

// iSAX stores A & X, touching no flags.
func iSAX(c *CPU, op operand) int {
	c.writeOperand(op, c.A&c.X)
	return 0
}

// iLAX: LDA then TAX in one opcode.
func iLAX(c *CPU, op operand) int {
	c.A = c.readOperand(op)
	c.X = c.A
	c.setZN(c.A)
	return 0
}

// iDCP: DEC memory, then CMP against A.
func iDCP(c *CPU, op operand) int {
	v := c.readOperand(op) - 1
	c.writeOperand(op, v)
	compare(c, c.A, v)
	return 0
}

// iISC: INC memory, then SBC against A.
func iISC(c *CPU, op operand) int {
	v := c.readOperand(op) + 1
	c.writeOperand(op, v)
	c.adc(^v)
	return 0
}

// iANC: AND immediate, then C takes the sign bit of the result (as if
// the result had been shifted into carry by an implied ASL/ROL).
func iANC(c *CPU, op operand) int {
	c.A &= c.readOperand(op)
	c.setZN(c.A)
	c.setFlag(P_CARRY, c.A&P_NEGATIVE != 0)
	return 0
}

// iALR (ASR): AND immediate, then LSR A.
func iALR(c *CPU, op operand) int {
	c.A &= c.readOperand(op)
	c.setFlag(P_CARRY, c.A&0x01 != 0)
	c.A >>= 1
	c.setZN(c.A)
	return 0
}

// iARR: AND immediate, then ROR A, with C/V derived from bits 6/5 of the
// rotated result rather than the plain ROR rule.
func iARR(c *CPU, op operand) int {
	c.A &= c.readOperand(op)
	res, _ := c.ror(c.A)
	c.A = res
	c.setZN(c.A)
	bit6 := c.A&0x40 != 0
	bit5 := c.A&0x20 != 0
	c.setFlag(P_CARRY, bit6)
	c.setFlag(P_OVERFLOW, bit6 != bit5)
	return 0
}

// iAXS (SBX): X <- (A & X) - operand, updating flags as a compare would.
func iAXS(c *CPU, op operand) int {
	v := c.readOperand(op)
	base := c.A & c.X
	result := base - v
	c.setFlag(P_CARRY, base >= v)
	c.X = result
	c.setZN(c.X)
	return 0
}

// iLXA (ATX/OAL): (A | 0xEE) & operand -> A and X. Modeled on the common
// emulator convention for this unstable opcode; real silicon depends on
// analog bus capacitance this core does not model.
func iLXA(c *CPU, op operand) int {
	c.A = (c.A | 0xEE) & c.readOperand(op)
	c.X = c.A
	c.setZN(c.A)
	return 0
}

// iXAA (ANE): A <- (A | 0xEE) & X & operand, same unstable-opcode
// convention as iLXA.
func iXAA(c *CPU, op operand) int {
	c.A = (c.A | 0xEE) & c.X & c.readOperand(op)
	c.setZN(c.A)
	return 0
}

// iTAS (XAS/SHS): SP <- A & X; the stored byte is SP & (high byte of the
// effective address + 1).
func iTAS(c *CPU, op operand) int {
	c.SP = c.A & c.X
	v := c.SP & uint8((op.addr>>8)+1)
	c.writeOperand(op, v)
	return 0
}

// iSHY (SYA): store Y & (high byte of the effective address + 1).
func iSHY(c *CPU, op operand) int {
	v := c.Y & uint8((op.addr>>8)+1)
	c.writeOperand(op, v)
	return 0
}

// iSHX (SXA): store X & (high byte of the effective address + 1).
func iSHX(c *CPU, op operand) int {
	v := c.X & uint8((op.addr>>8)+1)
	c.writeOperand(op, v)
	return 0
}

// iAHX (AXA/SHA): store A & X & (high byte of the effective address + 1).
func iAHX(c *CPU, op operand) int {
	v := c.A & c.X & uint8((op.addr>>8)+1)
	c.writeOperand(op, v)
	return 0
}

// iLAS (LAR): (memory & SP) -> A, X, and SP all at once.
func iLAS(c *CPU, op operand) int {
	v := c.readOperand(op) & c.SP
	c.A = v
	c.X = v
	c.SP = v
	c.setZN(v)
	return 0
}
