// Package colorize applies terminal syntax highlighting to CHIP-8 listing lines.
package colorize

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Lexer tokenizes listing lines as written by the writer package.
var Lexer = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      "CHIP-8",
		Aliases:   []string{"chip8", "ch8"},
		Filenames: []string{"*.ch8.asm"},
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `\s+`, Type: chroma.TextWhitespace},
				{Pattern: `;.*`, Type: chroma.Comment},
				{Pattern: `L_[0-9A-F]+:`, Type: chroma.NameLabel},
				{Pattern: `\b(CLS|RET|JP|CALL|SE|SNE|LD|ADD|OR|AND|XOR|SUBN|SUB|SHR|SHL|RND|DRW|SKNP|SKP)\b`, Type: chroma.Keyword},
				{Pattern: `\bDATA\b`, Type: chroma.KeywordPseudo},
				{Pattern: `\bV(1[0-5]|[0-9])\b`, Type: chroma.NameVariable},
				{Pattern: `\b[IDSKFB]\b`, Type: chroma.NameBuiltin},
				{Pattern: `0x[0-9a-f]+`, Type: chroma.LiteralNumberHex},
				{Pattern: `\$[0-9]+`, Type: chroma.LiteralNumberInteger},
				{Pattern: `\b[0-9A-F]{4}\b`, Type: chroma.LiteralNumberHex},
				{Pattern: `.`, Type: chroma.Text},
			},
		}
	},
))

// Style is the color scheme used for listings.
var Style = styles.Register(chroma.MustNewStyle("chip8-dark", chroma.StyleEntries{
	chroma.Text:                 "#FFFFFF",
	chroma.Background:           "bg:#1e1e1e",
	chroma.Comment:              "#6A9955",
	chroma.Keyword:              "#569CD6",
	chroma.KeywordPseudo:        "#C586C0",
	chroma.NameVariable:         "#7C9C9D",
	chroma.NameBuiltin:          "#4EC9B0",
	chroma.NameLabel:            "#FFD700",
	chroma.LiteralNumberHex:     "#FF5F87",
	chroma.LiteralNumberInteger: "#FF5F87",
}))

// Colorizer highlights single listing lines for terminal output.
type Colorizer struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// New returns a colorizer using the terminal formatter with the most colors
// that is available.
func New() *Colorizer {
	return &Colorizer{
		lexer:     Lexer,
		style:     Style,
		formatter: terminalFormatter(),
	}
}

// terminalFormatter returns an appropriate terminal formatter
func terminalFormatter() chroma.Formatter {
	candidates := []string{"terminal256", "terminal16"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Line returns the colorized line. The line is returned unchanged if it can
// not be tokenized.
func (c *Colorizer) Line(line string) string {
	iterator, err := c.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf strings.Builder
	if err := c.formatter.Format(&buf, c.style, iterator); err != nil {
		return line
	}
	return buf.String()
}
