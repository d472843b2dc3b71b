// Package writer implements the listing output of decoded CHIP-8 programs.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/chip8dis/internal/arch/chip8"
)

// codeColumnWidth is the width that code is padded to when hex comments follow it.
const codeColumnWidth = 20

// Highlighter colorizes a single output line.
type Highlighter interface {
	Line(line string) string
}

// Options of the writer.
type Options struct {
	Offsets     bool   // prefix lines with the memory address of the token
	HexComments bool   // append the instruction word as comment
	Labels      bool   // write labels before addressed tokens
	BaseAddress uint16 // memory address of the first token

	Highlighter Highlighter // optional
}

// Writer writes one line per token. Label lines are only written when enabled.
type Writer struct {
	options Options
	writer  io.Writer
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write writes the listing of all tokens in order.
func (w *Writer) Write(tokens []chip8.Token) error {
	var labels map[chip8.Address]string
	if w.options.Labels {
		labels = Labels(tokens, w.options.BaseAddress)
	}

	for i, tok := range tokens {
		address := w.address(i)

		if label, ok := labels[address]; ok {
			if err := w.writeLine(label + ":"); err != nil {
				return fmt.Errorf("writing label %s: %w", label, err)
			}
		}

		if err := w.writeLine(w.formatToken(address, tok)); err != nil {
			return fmt.Errorf("writing token at address %04x: %w", uint16(address), err)
		}
	}
	return nil
}

// Labels returns the label names of all jump, call and index register targets
// that address a token of the program.
func Labels(tokens []chip8.Token, baseAddress uint16) map[chip8.Address]string {
	labels := map[chip8.Address]string{}
	start := int(baseAddress)
	end := start + len(tokens)*2

	for _, tok := range tokens {
		if !tok.IsJump() && !tok.IsCall() && !tok.IsDataReference() {
			continue
		}
		target, _ := tok.Target()
		addr := int(target)
		if addr < start || addr >= end || (addr-start)%2 != 0 {
			continue
		}
		labels[target] = LabelName(target)
	}
	return labels
}

// LabelName returns the label name for an address.
func LabelName(address chip8.Address) string {
	return fmt.Sprintf("L_%03X", uint16(address))
}

func (w *Writer) address(index int) chip8.Address {
	return chip8.Address(int(w.options.BaseAddress) + index*2)
}

func (w *Writer) formatToken(address chip8.Address, tok chip8.Token) string {
	line := tok.String()

	if w.options.HexComments {
		line = fmt.Sprintf("%-*s ; %04X", codeColumnWidth, line, tok.Word.Raw())
	}
	if w.options.Offsets {
		line = fmt.Sprintf("%04X  %s", uint16(address), line)
	}
	return line
}

func (w *Writer) writeLine(line string) error {
	if w.options.Highlighter != nil {
		line = w.options.Highlighter.Line(line)
	}
	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
