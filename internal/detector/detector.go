// Package detector handles CHIP-8 program file detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// programExtensions are the file extensions used for CHIP-8 program files.
var programExtensions = map[string]struct{}{
	".ch8": {},
	".c8":  {},
	".rom": {},
	".bin": {},
}

// Detector decides which files of a batch are CHIP-8 programs.
type Detector struct {
	logger *log.Logger
}

// New creates a new program file detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// IsProgramFile returns whether the file name has a CHIP-8 program extension.
func (d *Detector) IsProgramFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := programExtensions[ext]
	return ok
}

// Filter returns the program files of the given list, keeping their order.
func (d *Detector) Filter(files []string) []string {
	programs := make([]string, 0, len(files))
	for _, file := range files {
		if !d.IsProgramFile(file) {
			d.logger.Debug("Skipping non program file", log.String("file", file))
			continue
		}
		programs = append(programs, file)
	}
	return programs
}
