package disasm

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// IsCall returns true if the instruction word is a subroutine call.
func IsCall(word uint16) bool {
	ins, ok := Decode(word)
	return ok && ins == chip8.CallInst
}

// IsJump returns true if the instruction word is an absolute jump (JP addr).
// The indexed jump JP V0, addr has no static target and is not included.
func IsJump(word uint16) bool {
	ins, ok := Decode(word)
	return ok && ins == chip8.JpInst && word&0xF000 == 0x1000
}

// IsReturn returns true if the instruction word returns from a subroutine.
func IsReturn(word uint16) bool {
	ins, ok := Decode(word)
	return ok && ins == chip8.RetInst
}

// IsSkip returns true if the instruction word conditionally skips the next instruction.
func IsSkip(word uint16) bool {
	ins, ok := Decode(word)
	return ok && chip8.SkipInstructions.Contains(ins.Name)
}

// BranchTarget returns the static target address of a jump or call.
func BranchTarget(word uint16) (uint16, bool) {
	if !IsJump(word) && !IsCall(word) {
		return 0, false
	}
	return word & 0x0FFF, true
}
