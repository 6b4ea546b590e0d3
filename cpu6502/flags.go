package cpu6502

// Status register bit masks. Naming follows the 6502 reference convention:
// C Z I D B U V N from bit 0 to bit 7.
const (
	P_CARRY     = 0x1
	P_ZERO      = 0x2
	P_INTERRUPT = 0x4
	P_DECIMAL   = 0x8
	P_BREAK     = 0x10
	P_UNUSED    = 0x20
	P_OVERFLOW  = 0x40
	P_NEGATIVE  = 0x80
)

// Vector addresses. The vectors themselves live in the address space (bus
// reads), these are just the well-known locations.
const (
	NMI_VECTOR   = 0xFFFA
	RESET_VECTOR = 0xFFFC
	IRQ_VECTOR   = 0xFFFE
)

// Cold-start / post-reset constant values, per the external interface.
const (
	resetSP    = 0xFD
	resetP     = P_INTERRUPT | P_UNUSED
	resetCycle = 8
	coldSP     = 0xFF
	coldP      = P_INTERRUPT | P_UNUSED
)
