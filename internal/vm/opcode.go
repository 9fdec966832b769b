package vm

// Opcode is a fetched 16-bit instruction word.
type Opcode uint16

// Family returns the high nibble that selects the primary handler.
func (o Opcode) Family() uint8 {
	return uint8(o >> 12)
}

// X returns the first register operand (bits 8-11).
func (o Opcode) X() uint8 {
	return uint8(o>>8) & 0x0F
}

// Y returns the second register operand (bits 4-7).
func (o Opcode) Y() uint8 {
	return uint8(o>>4) & 0x0F
}

// N returns the low nibble (bits 0-3).
func (o Opcode) N() uint8 {
	return uint8(o) & 0x0F
}

// KK returns the low byte immediate value.
func (o Opcode) KK() uint8 {
	return uint8(o)
}

// NNN returns the 12-bit address operand.
func (o Opcode) NNN() uint16 {
	return uint16(o) & 0x0FFF
}
