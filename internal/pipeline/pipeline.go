// Package pipeline orchestrates the decoding workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8dis/internal/arch/chip8"
	"github.com/retroenv/chip8dis/internal/colorize"
	"github.com/retroenv/chip8dis/internal/config"
	"github.com/retroenv/chip8dis/internal/loader"
	"github.com/retroenv/chip8dis/internal/options"
	"github.com/retroenv/chip8dis/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Result of decoding a single program.
type Result struct {
	Tokens       []chip8.Token
	DataWords    int  // tokens that did not decode to an instruction
	Skips        int  // conditional skip instructions
	MemoryReads  int  // instructions of families that read memory through I
	MemoryWrites int  // instructions of families that write memory through I
	Targets      int  // jump, call and index register targets
	TrailingByte bool // the program had an odd length and its last byte was dropped
}

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the input file of the options, decodes it and writes the listing.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, w io.Writer) (*Result, error) {
	data, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	p.printInfo(opts, len(data))
	return p.ExecuteWithData(ctx, data, opts, w)
}

// ExecuteWithData runs the pipeline with a pre-loaded program.
// This is useful for testing and programmatic usage where the program is already in memory.
func (p *Pipeline) ExecuteWithData(ctx context.Context, data []byte, opts options.Program, w io.Writer) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	result := decode(data)
	p.logger.Debug("Decoded program",
		log.String("file", opts.Input),
		log.Int("tokens", len(result.Tokens)),
		log.Int("data_words", result.DataWords),
		log.Int("skips", result.Skips),
		log.Int("memory_reads", result.MemoryReads),
		log.Int("memory_writes", result.MemoryWrites),
		log.Int("targets", result.Targets),
		log.Bool("decorated", opts.Decorated()))
	if result.TrailingByte {
		p.logger.Debug("Dropped trailing odd byte", log.Uint8("value", data[len(data)-1]))
	}

	listing := writer.New(w, writerOptions(opts, w))
	if err := listing.Write(result.Tokens); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}
	return result, nil
}

func decode(data []byte) *Result {
	tokens := chip8.Decode(data)

	result := &Result{
		Tokens:       tokens,
		TrailingByte: len(data)%2 != 0,
	}
	for _, tok := range tokens {
		if tok.IsData() {
			result.DataWords++
			continue
		}
		if tok.IsSkip() {
			result.Skips++
		}
		if tok.ReadsMemory() {
			result.MemoryReads++
		}
		if tok.WritesMemory() {
			result.MemoryWrites++
		}
		if _, ok := tok.Target(); ok {
			result.Targets++
		}
	}
	return result
}

// writerOptions maps the listing options, color is only enabled for terminals.
func writerOptions(opts options.Program, w io.Writer) writer.Options {
	wo := writer.Options{
		Offsets:     opts.Offsets,
		HexComments: opts.HexComments,
		Labels:      opts.Labels,
		BaseAddress: opts.BaseAddress,
	}

	if file, ok := w.(*os.File); ok && config.ColorEnabled(opts.Color, file) {
		wo.Highlighter = colorize.New()
	}
	return wo
}

// printInfo prints information about the program being processed.
func (p *Pipeline) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
	)
}
