package chip8

// familyDecoder decodes a word of one instruction family into a token.
type familyDecoder func(w Word) Token

// families maps the top nibble of a word to its decoder, covering the full
// 0x0000-0xFFFF range.
var families = [16]familyDecoder{
	0x0: decodeSystem,
	0x1: single(Jump),
	0x2: single(Call),
	0x3: single(SkipEqualByte),
	0x4: single(SkipNotEqualByte),
	0x5: single(SkipEqualReg),
	0x6: single(LoadByte),
	0x7: single(AddByte),
	0x8: subOpcode(func(w Word) uint8 { return uint8(w.N()) }, aluOpcodes),
	0x9: single(SkipNotEqualReg),
	0xA: single(LoadIndex),
	0xB: single(JumpOffset),
	0xC: single(Random),
	0xD: single(Draw),
	0xE: subOpcode(lowByte, keyOpcodes),
	0xF: subOpcode(lowByte, miscOpcodes),
}

// systemOpcodes are the exact 0x0 family words with a meaning. All other words
// of the family are SYS calls, which are kept as data.
var systemOpcodes = map[Word]Kind{
	0x00E0: ClearScreen,
	0x00EE: Return,
}

// aluOpcodes maps the low nibble of 8xyn words.
var aluOpcodes = map[uint8]Kind{
	0x0: LoadReg,
	0x1: Or,
	0x2: And,
	0x3: Xor,
	0x4: AddReg,
	0x5: SubReg,
	0x6: ShiftRight,
	0x7: SubNegated,
	0xE: ShiftLeft,
}

// keyOpcodes maps the low byte of Exkk words.
var keyOpcodes = map[uint8]Kind{
	0x9E: SkipKeyPressed,
	0xA1: SkipKeyReleased,
}

// miscOpcodes maps the low byte of Fxkk words.
var miscOpcodes = map[uint8]Kind{
	0x07: LoadDelay,
	0x0A: WaitKey,
	0x15: SetDelay,
	0x18: SetSound,
	0x1E: AddIndex,
	0x29: LoadFont,
	0x33: StoreBCD,
	0x55: StoreRegisters,
	0x65: LoadRegisters,
}

func decodeSystem(w Word) Token {
	kind, ok := systemOpcodes[w]
	if !ok {
		return NewData(w)
	}
	return newToken(kind, w)
}

// single returns a decoder for a family that contains exactly one instruction.
func single(kind Kind) familyDecoder {
	return func(w Word) Token {
		return newToken(kind, w)
	}
}

// subOpcode returns a decoder for a family whose instruction is selected by a
// secondary selector. Selectors missing from the table decode as data.
func subOpcode(selector func(Word) uint8, table map[uint8]Kind) familyDecoder {
	return func(w Word) Token {
		kind, ok := table[selector(w)]
		if !ok {
			return NewData(w)
		}
		return newToken(kind, w)
	}
}

func lowByte(w Word) uint8 {
	return uint8(w.KK())
}

// DecodeWord decodes a single instruction word. Every word decodes to a token,
// unknown instructions result in a Data token.
func DecodeWord(w Word) Token {
	return families[w.Family()](w)
}

// Decoder decodes a CHIP-8 program buffer into tokens, one per 2-byte word.
// A trailing odd byte does not produce a token.
type Decoder struct {
	src []byte
	pos int
	out []Token
}

// NewDecoder returns a decoder reading from the start of src.
func NewDecoder(src []byte) *Decoder {
	return &Decoder{
		src: src,
		out: make([]Token, 0, len(src)/opcodeSize),
	}
}

// Next decodes the next word and appends it to the decoded tokens. It returns
// false once fewer than 2 bytes remain.
func (d *Decoder) Next() (Token, bool) {
	if d.Remaining() < opcodeSize {
		return Token{}, false
	}

	w := NewWord(d.src[d.pos], d.src[d.pos+1])
	d.pos += opcodeSize

	tok := DecodeWord(w)
	d.out = append(d.out, tok)
	return tok, true
}

// Offset returns the buffer offset of the next word to decode.
func (d *Decoder) Offset() int {
	return d.pos
}

// Remaining returns the number of bytes not yet consumed.
func (d *Decoder) Remaining() int {
	return len(d.src) - d.pos
}

// Decode decodes all remaining words and returns the tokens decoded by this
// decoder in input order.
func (d *Decoder) Decode() []Token {
	for {
		if _, ok := d.Next(); !ok {
			return d.out
		}
	}
}

// Decode decodes a complete program buffer. Byte 0 is the high byte of the first
// instruction word.
func Decode(src []byte) []Token {
	return NewDecoder(src).Decode()
}
