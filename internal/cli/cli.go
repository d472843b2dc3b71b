// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/chip8dis/internal/arch/chip8"
	"github.com/retroenv/chip8dis/internal/options"
)

// ParseFlags parses the command line flags of the process.
func ParseFlags() (options.Program, error) {
	return ParseArgs(os.Args[0], os.Args[1:])
}

// ParseArgs parses the given arguments and returns the program options.
func ParseArgs(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	opts := options.New()
	var baseAddress string
	readOptionFlags(flags, &opts, &baseAddress)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(opts, args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts, baseAddress); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid usage"
	}
	return e.msg
}

// ShowUsage prints the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8dis [options] <file to decode>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order and that exactly one
// source of input files is given.
func validateArgs(opts options.Program, args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to decode, please pass the file to decode as last argument", arg),
			}
		}
	}

	switch {
	case len(args) > 1:
		return &UsageError{
			msg: fmt.Sprintf("Unexpected argument %s found after file to decode, use -batch to decode multiple files", args[1]),
		}
	case len(args) == 1 && opts.Input != "":
		return &UsageError{
			msg: fmt.Sprintf("File to decode %s conflicts with input file %s", args[0], opts.Input),
		}
	case len(args) == 1 && opts.Batch != "":
		return &UsageError{
			msg: fmt.Sprintf("File to decode %s conflicts with batch pattern %s", args[0], opts.Batch),
		}
	}
	return nil
}

// normalizeOptions parses and validates option values
func normalizeOptions(opts *options.Program, baseAddress string) error {
	if baseAddress == "" {
		return nil
	}

	base, err := strconv.ParseUint(baseAddress, 0, 16)
	if err != nil {
		return fmt.Errorf("parsing base address '%s': %w", baseAddress, err)
	}
	if base > chip8.MaxAddress {
		return fmt.Errorf("base address $%X exceeds the CHIP-8 address space", base)
	}
	opts.BaseAddress = uint16(base)
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, baseAddress *string) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.ch8")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.BoolVar(&opts.Offsets, "offsets", false, "prefix every line with the memory address of the instruction")
	flags.BoolVar(&opts.HexComments, "hex", false, "output instruction words as hex values in comments")
	flags.BoolVar(&opts.Labels, "labels", false, "output labels for jump, call and index register targets")
	flags.BoolVar(&opts.Color, "color", false, "colorize the output when printing to a terminal")
	flags.StringVar(baseAddress, "base", "", "memory address of the first program byte (default 0x200)")
}
