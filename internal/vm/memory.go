package vm

import "errors"

// Memory layout and machine dimensions.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000
	// MemoryMask masks any address into the addressable range.
	MemoryMask = MemorySize - 1
	// ProgramStart is the address where ROMs are loaded and execution starts.
	ProgramStart = 0x200
	// MaxROMSize is the largest ROM that fits between ProgramStart and the end of memory.
	MaxROMSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16
	// FlagRegister is the index of VF, which receives carry, borrow and collision results.
	FlagRegister = 0xF

	// StackSize is the maximum call depth.
	StackSize = 16

	// InstructionSize is the width of an instruction word in bytes.
	InstructionSize = 2
)

var (
	// ErrStackOverflow is returned when a call is made with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is made with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// read returns the byte at the given address, wrapping at the end of memory.
func (v *VM) read(address uint16) uint8 {
	return v.Memory[address&MemoryMask]
}

// write stores a byte at the given address, wrapping at the end of memory.
func (v *VM) write(address uint16, value uint8) {
	v.Memory[address&MemoryMask] = value
}

// push stores a return address on the call stack.
func (v *VM) push(address uint16) error {
	if int(v.SP) >= StackSize {
		return ErrStackOverflow
	}
	v.Stack[v.SP] = address
	v.SP++
	return nil
}

// pop removes the most recent return address from the call stack.
func (v *VM) pop() (uint16, error) {
	if v.SP == 0 {
		return 0, ErrStackUnderflow
	}
	v.SP--
	return v.Stack[v.SP], nil
}
