package writer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/chip8dis/internal/arch/chip8"
	"github.com/retroenv/retrogolib/assert"
)

type bracketHighlighter struct{}

func (bracketHighlighter) Line(line string) string {
	return "<" + line + ">"
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

var testProgram = []byte{
	0x00, 0xE0, // 0200 CLS
	0xA2, 0x08, // 0202 LD I $520
	0x22, 0x06, // 0204 CALL $518
	0x12, 0x02, // 0206 JP $514
	0xF0, 0x1F, // 0208 DATA
}

//nolint:funlen // test tables can be long
func TestWriter_Write(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		expected []string
	}{
		{
			name:    "plain",
			options: Options{BaseAddress: chip8.ProgramStart},
			expected: []string{
				"CLS",
				"LD I $520",
				"CALL $518",
				"JP $514",
				"DATA 0xf01f",
			},
		},
		{
			name:    "offsets",
			options: Options{Offsets: true, BaseAddress: chip8.ProgramStart},
			expected: []string{
				"0200  CLS",
				"0202  LD I $520",
				"0204  CALL $518",
				"0206  JP $514",
				"0208  DATA 0xf01f",
			},
		},
		{
			name:    "hex comments",
			options: Options{HexComments: true, BaseAddress: chip8.ProgramStart},
			expected: []string{
				"CLS                  ; 00E0",
				"LD I $520            ; A208",
				"CALL $518            ; 2206",
				"JP $514              ; 1202",
				"DATA 0xf01f          ; F01F",
			},
		},
		{
			name:    "labels",
			options: Options{Labels: true, BaseAddress: chip8.ProgramStart},
			expected: []string{
				"CLS",
				"L_202:",
				"LD I $520",
				"CALL $518",
				"L_206:",
				"JP $514",
				"L_208:",
				"DATA 0xf01f",
			},
		},
		{
			name:    "highlighter",
			options: Options{BaseAddress: chip8.ProgramStart, Highlighter: bracketHighlighter{}},
			expected: []string{
				"<CLS>",
				"<LD I $520>",
				"<CALL $518>",
				"<JP $514>",
				"<DATA 0xf01f>",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(&buf, tt.options)

			err := w.Write(chip8.Decode(testProgram))
			assert.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestWriter_WriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Labels: true})

	assert.NoError(t, w.Write(nil))
	assert.Equal(t, "", buf.String())
}

func TestWriter_WriteError(t *testing.T) {
	w := New(failingWriter{}, Options{})
	err := w.Write(chip8.Decode(testProgram))
	assert.Error(t, err, "writing token at address 0200: writing line: disk full")
}

func TestLabels(t *testing.T) {
	tokens := chip8.Decode([]byte{
		0x12, 0x00, // JP $512, first token
		0x12, 0x03, // JP $515, odd address
		0x1F, 0x00, // JP $3840, outside of program
		0xB2, 0x02, // JP V0 $514
		0x22, 0x0A, // CALL $522
		0xA2, 0x0C, // LD I $524
		0x32, 0x04, // SE V2 0x04, no target
		0x62, 0x06, // LD V2 0x06, no target
	})

	labels := Labels(tokens, chip8.ProgramStart)
	assert.Equal(t, map[chip8.Address]string{
		0x200: "L_200",
		0x202: "L_202",
		0x20A: "L_20A",
		0x20C: "L_20C",
	}, labels)

	// a different base address moves all targets outside of the program
	assert.Equal(t, 0, len(Labels(tokens, 0x600)))
}
