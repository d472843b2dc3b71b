package chip8

import (
	"fmt"
	"strings"
)

// Kind identifies the instruction variant of a Token.
type Kind uint8

// Instruction kinds of the base CHIP-8 instruction set, named by opcode pattern
// in the comments. Data is the fallback for words that match no instruction.
const (
	Data             Kind = iota // any unmatched word, including 0nnn SYS
	ClearScreen                  // 00E0
	Return                       // 00EE
	Jump                         // 1nnn
	Call                         // 2nnn
	SkipEqualByte                // 3xkk
	SkipNotEqualByte             // 4xkk
	SkipEqualReg                 // 5xy_
	LoadByte                     // 6xkk
	AddByte                      // 7xkk
	LoadReg                      // 8xy0
	Or                           // 8xy1
	And                          // 8xy2
	Xor                          // 8xy3
	AddReg                       // 8xy4
	SubReg                       // 8xy5
	ShiftRight                   // 8xy6
	SubNegated                   // 8xy7
	ShiftLeft                    // 8xyE
	SkipNotEqualReg              // 9xy_
	LoadIndex                    // Annn
	JumpOffset                   // Bnnn
	Random                       // Cxkk
	Draw                         // Dxyn
	SkipKeyPressed               // Ex9E
	SkipKeyReleased              // ExA1
	LoadDelay                    // Fx07
	WaitKey                      // Fx0A
	SetDelay                     // Fx15
	SetSound                     // Fx18
	AddIndex                     // Fx1E
	LoadFont                     // Fx29
	StoreBCD                     // Fx33
	StoreRegisters               // Fx55
	LoadRegisters                // Fx65

	kindCount
)

// operandSlot describes one rendered operand of an instruction. Register and value
// slots are read from the token fields, the others render as fixed text.
type operandSlot uint8

const (
	slotX operandSlot = iota + 1
	slotY
	slotKK
	slotAddr
	slotN
	slotRaw

	slotV0
	slotIndex
	slotDelay
	slotSound
	slotKey
	slotFont
	slotBCD
)

var fixedSlotText = map[operandSlot]string{
	slotV0:    "V0",
	slotIndex: "I",
	slotDelay: "D",
	slotSound: "S",
	slotKey:   "K",
	slotFont:  "F",
	slotBCD:   "B",
}

type kindInfo struct {
	name     string
	mnemonic string
	operands []operandSlot
}

var kinds = [kindCount]kindInfo{
	Data:             {"Data", "DATA", []operandSlot{slotRaw}},
	ClearScreen:      {"ClearScreen", "CLS", nil},
	Return:           {"Return", "RET", nil},
	Jump:             {"Jump", "JP", []operandSlot{slotAddr}},
	Call:             {"Call", "CALL", []operandSlot{slotAddr}},
	SkipEqualByte:    {"SkipEqualByte", "SE", []operandSlot{slotX, slotKK}},
	SkipNotEqualByte: {"SkipNotEqualByte", "SNE", []operandSlot{slotX, slotKK}},
	SkipEqualReg:     {"SkipEqualReg", "SE", []operandSlot{slotX, slotY}},
	LoadByte:         {"LoadByte", "LD", []operandSlot{slotX, slotKK}},
	AddByte:          {"AddByte", "ADD", []operandSlot{slotX, slotKK}},
	LoadReg:          {"LoadReg", "LD", []operandSlot{slotX, slotY}},
	Or:               {"Or", "OR", []operandSlot{slotX, slotY}},
	And:              {"And", "AND", []operandSlot{slotX, slotY}},
	Xor:              {"Xor", "XOR", []operandSlot{slotX, slotY}},
	AddReg:           {"AddReg", "ADD", []operandSlot{slotX, slotY}},
	SubReg:           {"SubReg", "SUB", []operandSlot{slotX, slotY}},
	ShiftRight:       {"ShiftRight", "SHR", []operandSlot{slotX, slotY}},
	SubNegated:       {"SubNegated", "SUBN", []operandSlot{slotX, slotY}},
	ShiftLeft:        {"ShiftLeft", "SHL", []operandSlot{slotX, slotY}},
	SkipNotEqualReg:  {"SkipNotEqualReg", "SNE", []operandSlot{slotX, slotY}},
	LoadIndex:        {"LoadIndex", "LD", []operandSlot{slotIndex, slotAddr}},
	JumpOffset:       {"JumpOffset", "JP", []operandSlot{slotV0, slotAddr}},
	Random:           {"Random", "RND", []operandSlot{slotX, slotKK}},
	Draw:             {"Draw", "DRW", []operandSlot{slotX, slotY, slotN}},
	SkipKeyPressed:   {"SkipKeyPressed", "SKP", []operandSlot{slotX}},
	SkipKeyReleased:  {"SkipKeyReleased", "SKNP", []operandSlot{slotX}},
	LoadDelay:        {"LoadDelay", "LD", []operandSlot{slotX, slotDelay}},
	WaitKey:          {"WaitKey", "LD", []operandSlot{slotX, slotKey}},
	SetDelay:         {"SetDelay", "LD", []operandSlot{slotDelay, slotX}},
	SetSound:         {"SetSound", "LD", []operandSlot{slotSound, slotX}},
	AddIndex:         {"AddIndex", "ADD", []operandSlot{slotIndex, slotX}},
	LoadFont:         {"LoadFont", "LD", []operandSlot{slotFont, slotX}},
	StoreBCD:         {"StoreBCD", "LD", []operandSlot{slotBCD, slotX}},
	StoreRegisters:   {"StoreRegisters", "LD", []operandSlot{slotIndex, slotX}},
	LoadRegisters:    {"LoadRegisters", "LD", []operandSlot{slotX, slotIndex}},
}

// String returns the Go identifier of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Mnemonic returns the assembly mnemonic of the kind.
func (k Kind) Mnemonic() string {
	if k >= kindCount {
		return ""
	}
	return kinds[k].mnemonic
}

// Token is a decoded CHIP-8 instruction. Only the operand fields used by the
// kind are set, all of them taken from the single word stored in Word.
type Token struct {
	Kind Kind
	Word Word // source instruction word

	X    Register
	Y    Register
	KK   Byte
	Addr Address
	N    Nibble
}

// newToken returns a token of the given kind with the operands that the kind uses
// extracted from the word.
func newToken(kind Kind, w Word) Token {
	tok := Token{
		Kind: kind,
		Word: w,
	}
	for _, slot := range kinds[kind].operands {
		switch slot {
		case slotX:
			tok.X = w.X()
		case slotY:
			tok.Y = w.Y()
		case slotKK:
			tok.KK = w.KK()
		case slotAddr:
			tok.Addr = w.Address()
		case slotN:
			tok.N = w.N()
		}
	}
	return tok
}

// NewData returns an opaque data token for the given word.
func NewData(w Word) Token {
	return newToken(Data, w)
}

// String renders the token in its canonical text form, for example "LD V10 0x3f".
func (t Token) String() string {
	if t.Kind >= kindCount {
		return NewData(t.Word).String()
	}

	info := kinds[t.Kind]
	if len(info.operands) == 0 {
		return info.mnemonic
	}

	var sb strings.Builder
	sb.WriteString(info.mnemonic)
	for _, slot := range info.operands {
		sb.WriteByte(' ')
		sb.WriteString(t.operandText(slot))
	}
	return sb.String()
}

// Operands returns the rendered operands of the token.
func (t Token) Operands() []string {
	if t.Kind >= kindCount {
		return nil
	}
	slots := kinds[t.Kind].operands
	operands := make([]string, 0, len(slots))
	for _, slot := range slots {
		operands = append(operands, t.operandText(slot))
	}
	return operands
}

func (t Token) operandText(slot operandSlot) string {
	switch slot {
	case slotX:
		return t.X.String()
	case slotY:
		return t.Y.String()
	case slotKK:
		return t.KK.String()
	case slotAddr:
		return t.Addr.String()
	case slotN:
		return t.N.String()
	case slotRaw:
		return fmt.Sprintf("0x%04x", t.Word.Raw())
	default:
		return fixedSlotText[slot]
	}
}
