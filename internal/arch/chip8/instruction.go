package chip8

// Instruction contains information about a CHIP-8 instruction family. Several
// kinds share one instruction, for example all LD variants.
type Instruction struct {
	Name string // lowercase mnemonic
}

var (
	cls  = &Instruction{Name: "cls"}
	ret  = &Instruction{Name: "ret"}
	jp   = &Instruction{Name: "jp"}
	call = &Instruction{Name: "call"}
	se   = &Instruction{Name: "se"}
	sne  = &Instruction{Name: "sne"}
	ld   = &Instruction{Name: "ld"}
	add  = &Instruction{Name: "add"}
	or   = &Instruction{Name: "or"}
	and  = &Instruction{Name: "and"}
	xor  = &Instruction{Name: "xor"}
	sub  = &Instruction{Name: "sub"}
	shr  = &Instruction{Name: "shr"}
	subn = &Instruction{Name: "subn"}
	shl  = &Instruction{Name: "shl"}
	rnd  = &Instruction{Name: "rnd"}
	drw  = &Instruction{Name: "drw"}
	skp  = &Instruction{Name: "skp"}
	sknp = &Instruction{Name: "sknp"}
)

// skipInstructions contains all instructions that conditionally skip the
// following instruction.
var skipInstructions = map[string]struct{}{
	se.Name:   {},
	sne.Name:  {},
	skp.Name:  {},
	sknp.Name: {},
}

// memoryReadInstructions contains all instructions that can read memory
// through the index register.
var memoryReadInstructions = map[string]struct{}{
	drw.Name: {},
	ld.Name:  {},
}

// memoryWriteInstructions contains all instructions that can write memory
// through the index register.
var memoryWriteInstructions = map[string]struct{}{
	ld.Name: {},
}

// instructions maps every kind to the instruction sharing its mnemonic.
// Data has no instruction.
var instructions = [kindCount]*Instruction{
	ClearScreen:      cls,
	Return:           ret,
	Jump:             jp,
	Call:             call,
	SkipEqualByte:    se,
	SkipNotEqualByte: sne,
	SkipEqualReg:     se,
	LoadByte:         ld,
	AddByte:          add,
	LoadReg:          ld,
	Or:               or,
	And:              and,
	Xor:              xor,
	AddReg:           add,
	SubReg:           sub,
	ShiftRight:       shr,
	SubNegated:       subn,
	ShiftLeft:        shl,
	SkipNotEqualReg:  sne,
	LoadIndex:        ld,
	JumpOffset:       jp,
	Random:           rnd,
	Draw:             drw,
	SkipKeyPressed:   skp,
	SkipKeyReleased:  sknp,
	LoadDelay:        ld,
	WaitKey:          ld,
	SetDelay:         ld,
	SetSound:         ld,
	AddIndex:         add,
	LoadFont:         ld,
	StoreBCD:         ld,
	StoreRegisters:   ld,
	LoadRegisters:    ld,
}

// Instruction returns the instruction metadata of the token, or nil for data.
func (t Token) Instruction() *Instruction {
	if t.Kind >= kindCount {
		return nil
	}
	return instructions[t.Kind]
}

// IsData returns true if the token does not represent a known instruction.
func (t Token) IsData() bool {
	return t.Instruction() == nil
}

// IsCall returns true if the token is a subroutine call.
func (t Token) IsCall() bool {
	return t.Instruction() == call
}

// IsJump returns true if the token is an unconditional jump, including
// the jump offset by V0.
func (t Token) IsJump() bool {
	return t.Instruction() == jp
}

// IsReturn returns true if the token returns from a subroutine.
func (t Token) IsReturn() bool {
	return t.Instruction() == ret
}

// IsSkip returns true if the token conditionally skips the next instruction.
func (t Token) IsSkip() bool {
	return t.inCategory(skipInstructions)
}

// IsDataReference returns true if the token sets the index register to an address.
// LD is shared by many kinds, so the kind is checked instead of the instruction.
func (t Token) IsDataReference() bool {
	return t.Kind == LoadIndex
}

// ReadsMemory returns true if the instruction family of the token reads memory.
func (t Token) ReadsMemory() bool {
	return t.inCategory(memoryReadInstructions)
}

// WritesMemory returns true if the instruction family of the token writes memory.
func (t Token) WritesMemory() bool {
	return t.inCategory(memoryWriteInstructions)
}

// Target returns the address referenced by jump, call and index load tokens.
// The jump offset target is returned without the V0 offset.
func (t Token) Target() (Address, bool) {
	if t.IsJump() || t.IsCall() || t.IsDataReference() {
		return t.Addr, true
	}
	return 0, false
}

func (t Token) inCategory(category map[string]struct{}) bool {
	ins := t.Instruction()
	if ins == nil {
		return false
	}
	_, ok := category[ins.Name]
	return ok
}
