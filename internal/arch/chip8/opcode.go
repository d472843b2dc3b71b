package chip8

// Word is a raw 16-bit CHIP-8 instruction word. All fields are derived from the raw
// value on access.
type Word uint16

// NewWord returns the instruction word formed by a high and a low byte.
func NewWord(high, low byte) Word {
	return Word(high)<<8 | Word(low)
}

// Raw returns the raw 16-bit value of the word.
func (w Word) Raw() uint16 {
	return uint16(w)
}

// Family returns the instruction family selected by the top nibble.
func (w Word) Family() uint8 {
	return uint8(w >> 12)
}

// X returns the first register operand nibble (bits 8-11).
func (w Word) X() Register {
	return Register(w>>8) & 0x0F
}

// Y returns the second register operand nibble (bits 4-7).
func (w Word) Y() Register {
	return Register(w>>4) & 0x0F
}

// N returns the low nibble (bits 0-3).
func (w Word) N() Nibble {
	return Nibble(w & 0x000F)
}

// KK returns the low byte (bits 0-7).
func (w Word) KK() Byte {
	return Byte(w & 0x00FF)
}

// Address returns the 12-bit address (bits 0-11).
func (w Word) Address() Address {
	return Address(w & 0x0FFF)
}
