package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		quiet    bool
		expected log.Level
	}{
		{"default", false, false, log.InfoLevel},
		{"debug", true, false, log.DebugLevel},
		{"quiet", false, true, log.ErrorLevel},
		{"debug overrides quiet", true, true, log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := CreateLogger(tt.debug, tt.quiet)
			assert.Equal(t, tt.expected, logger.Level())
		})
	}
}

func TestColorEnabled(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	assert.False(t, ColorEnabled(false, file))
	assert.False(t, ColorEnabled(true, nil))
	// regular files are never terminals
	assert.False(t, ColorEnabled(true, file))

	t.Setenv(noColorEnv, "1")
	assert.False(t, ColorEnabled(true, os.Stdout))
}
