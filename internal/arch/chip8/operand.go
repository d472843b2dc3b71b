package chip8

import "fmt"

// Register is a general purpose register index V0-VF.
type Register uint8

// Byte is an 8-bit immediate value.
type Byte uint8

// Address is a 12-bit memory address.
type Address uint16

// Nibble is a 4-bit count, used as sprite height by DRW.
type Nibble uint8

// String renders the register as V followed by its decimal index.
func (r Register) String() string {
	return fmt.Sprintf("V%d", uint8(r))
}

// String renders the byte as 2 lowercase hex digits with a 0x prefix.
func (b Byte) String() string {
	return fmt.Sprintf("0x%02x", uint8(b))
}

// String renders the address in decimal with a $ prefix.
func (a Address) String() string {
	return fmt.Sprintf("$%d", uint16(a))
}

// String renders the count as 2 lowercase hex digits with a 0x prefix.
func (n Nibble) String() string {
	return fmt.Sprintf("0x%02x", uint8(n))
}
