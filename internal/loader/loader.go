// Package loader handles CHIP-8 program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyPath is returned when no input file name was given.
var ErrEmptyPath = errors.New("no input file given")

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete program file. CHIP-8 programs have no header, the
// returned buffer starts with the high byte of the first instruction.
func (l *Loader) Load(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// LoadReader reads a complete program from a reader.
func (l *Loader) LoadReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	return data, nil
}

// LoadFromBytes returns a copy of an in-memory program so that the caller can
// reuse its buffer.
func (l *Loader) LoadFromBytes(data []byte) []byte {
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf
}
