package cli

import (
	"errors"
	"testing"

	"github.com/retroenv/chip8dis/internal/arch/chip8"
	"github.com/retroenv/chip8dis/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test tables can be long
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"test.ch8"},
			want: options.Program{
				Parameters:  options.Parameters{Input: "test.ch8"},
				OutputFlags: options.OutputFlags{BaseAddress: chip8.ProgramStart},
			},
		},
		{
			name: "input flag",
			args: []string{"-i", "game.ch8"},
			want: options.Program{
				Parameters:  options.Parameters{Input: "game.ch8"},
				OutputFlags: options.OutputFlags{BaseAddress: chip8.ProgramStart},
			},
		},
		{
			name: "output and quiet",
			args: []string{"-o", "out.asm", "-q", "test.ch8"},
			want: options.Program{
				Parameters:  options.Parameters{Input: "test.ch8", Output: "out.asm"},
				Flags:       options.Flags{Quiet: true},
				OutputFlags: options.OutputFlags{BaseAddress: chip8.ProgramStart},
			},
		},
		{
			name: "listing decorations",
			args: []string{"-offsets", "-hex", "-labels", "-color", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				OutputFlags: options.OutputFlags{
					Offsets:     true,
					HexComments: true,
					Labels:      true,
					Color:       true,
					BaseAddress: chip8.ProgramStart,
				},
			},
		},
		{
			name: "hex base address",
			args: []string{"-base", "0x600", "test.ch8"},
			want: options.Program{
				Parameters:  options.Parameters{Input: "test.ch8"},
				OutputFlags: options.OutputFlags{BaseAddress: 0x600},
			},
		},
		{
			name: "batch",
			args: []string{"-batch", "*.ch8", "-debug"},
			want: options.Program{
				Parameters:  options.Parameters{Batch: "*.ch8"},
				Flags:       options.Flags{Debug: true},
				OutputFlags: options.OutputFlags{BaseAddress: chip8.ProgramStart},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs("chip8dis", tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
		err   string
	}{
		{"no arguments", nil, true, "invalid usage"},
		{"unknown flag", []string{"-unknown", "test.ch8"}, true, "invalid usage"},
		{"flag after file", []string{"test.ch8", "-q"}, true,
			"Potential argument -q found after file to decode, please pass the file to decode as last argument"},
		{"second file", []string{"a.ch8", "b.ch8"}, true,
			"Unexpected argument b.ch8 found after file to decode, use -batch to decode multiple files"},
		{"input flag and file", []string{"-i", "a.ch8", "b.ch8"}, true,
			"File to decode b.ch8 conflicts with input file a.ch8"},
		{"batch and file", []string{"-batch", "*.ch8", "b.ch8"}, true,
			"File to decode b.ch8 conflicts with batch pattern *.ch8"},
		{"invalid base", []string{"-base", "zz", "test.ch8"}, false,
			`parsing base address 'zz': strconv.ParseUint: parsing "zz": invalid syntax`},
		{"base out of range", []string{"-base", "0x1000", "test.ch8"}, false,
			"base address $1000 exceeds the CHIP-8 address space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs("chip8dis", tt.args)
			assert.Error(t, err, tt.err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
