package chip8

// Address space of the CHIP-8 virtual machine. Listings place the first byte of
// a program file at ProgramStart, the interpreter and font data occupy the
// memory below it.
const (
	// ProgramStart is the load address of programs and the default base
	// address of listings.
	ProgramStart = 0x200

	// MaxAddress is the highest address reachable by the 12 bit address operand.
	MaxAddress = 0xFFF
)

// opcodeSize is the size of an instruction word in bytes.
const opcodeSize = 2
