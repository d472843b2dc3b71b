// Package chip8 provides CHIP-8 instruction decoding.
//
// # CHIP-8 Architecture Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for simple games
// and applications on early microcomputers. Programs are a flat stream of 16-bit big
// endian instruction words without any header.
//
// # Memory Layout
//
// CHIP-8 systems have 4KB of memory (0x000-MaxAddress):
//   - 0x000-0x1FF: Interpreter area (not used for user programs)
//   - ProgramStart-MaxAddress: User program and data area
//
// # Instruction Set
//
// The base instruction set has 34 instructions plus the rarely implemented SYS call:
//   - All instructions are 2 bytes (16 bits)
//   - The top nibble selects the instruction family
//   - Families 0x8, 0xE and 0xF select the instruction by their low nibble or low byte
//   - 16 general-purpose 8-bit registers (V0-VF)
//   - Special-purpose registers: I (16-bit), delay timer, sound timer
//
// # Decoding
//
// Decoding is total. Every word decodes to exactly one Token, words that do not match
// a known instruction become Data tokens carrying the raw word:
//
//	tokens := chip8.Decode(rom)
//	for _, tok := range tokens {
//		fmt.Println(tok)
//	}
//
// The legacy SYS instruction (0nnn other than 00E0 and 00EE) is decoded as Data.
package chip8
