package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failure")
}

func TestLoad(t *testing.T) {
	t.Run("load program file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x12, 0x00})

		loader := New()
		data, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x00}, data)
	})

	t.Run("load odd length file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x12})

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(data))
	})

	t.Run("load empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(data))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("error on empty path", func(t *testing.T) {
		_, err := New().Load("")
		assert.True(t, errors.Is(err, ErrEmptyPath))
	})
}

func TestLoadReader(t *testing.T) {
	data, err := New().LoadReader(strings.NewReader("\x00\xEE"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xEE}, data)

	_, err = New().LoadReader(failingReader{})
	assert.Error(t, err, "reading program: read failure")
}

func TestLoadFromBytes(t *testing.T) {
	input := []byte{0x12, 0x34, 0x56, 0x78}
	data := New().LoadFromBytes(input)
	assert.Equal(t, input, data)

	input[0] = 0xFF
	assert.Equal(t, byte(0x12), data[0])
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
