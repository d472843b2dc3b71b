// Package fileprocessor handles file selection and output handling of the listing tool.
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8dis/internal/detector"
	"github.com/retroenv/chip8dis/internal/options"
	"github.com/retroenv/chip8dis/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// outputExtension is the file extension of generated listing files.
const outputExtension = ".asm"

// createOutput opens the output listing file for writing.
var createOutput = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// ProcessFile decodes the input file of the options and writes the listing to the
// output file, or to stdout if no output is set.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) (err error) {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		closer, ok := writer.(io.Closer)
		if !ok || writer == os.Stdout {
			return
		}
		if cerr := closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file %s: %w", opts.Output, cerr)
		}
	}()

	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts, writer); err != nil {
		return fmt.Errorf("decoding %s: %w", opts.Input, err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options.
// Batch matches without a CHIP-8 program extension are skipped.
func GetFilesToProcess(logger *log.Logger, opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return detector.New(logger).Filter(matches), nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + outputExtension
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := createOutput(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := buildinfo.Version(version, commit, date)
	logger.Info("chip8dis", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
