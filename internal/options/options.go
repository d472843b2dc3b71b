// Package options contains the program options.
package options

import "github.com/retroenv/chip8dis/internal/arch/chip8"

// Parameters contains file path options.
type Parameters struct {
	Input  string // input ROM file
	Output string // output listing file, stdout if empty
	Batch  string // batch process files matching a glob pattern
}

// Flags contains behavior options.
type Flags struct {
	Debug bool
	Quiet bool
}

// OutputFlags contains listing formatting options.
type OutputFlags struct {
	Offsets     bool   // prefix every line with its memory address
	HexComments bool   // append the raw instruction word as comment
	Labels      bool   // emit labels for jump, call and index targets
	Color       bool   // colorize the listing when writing to a terminal
	BaseAddress uint16 // memory address of the first program byte
}

// Program options of the decoder.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// New returns program options with default values.
func New() Program {
	return Program{
		OutputFlags: OutputFlags{
			BaseAddress: chip8.ProgramStart,
		},
	}
}

// Decorated returns whether any listing decoration beyond the plain token
// lines is enabled.
func (o OutputFlags) Decorated() bool {
	return o.Offsets || o.HexComments || o.Labels
}
