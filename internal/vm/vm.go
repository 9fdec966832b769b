// Package vm implements the CHIP-8 virtual machine: memory and registers,
// the two-level opcode dispatcher, the instruction set, the framebuffer and
// the cycle driver.
//
// The machine performs no I/O. A driver calls Cycle at its chosen rate, feeds
// the keypad state through SetKey and reads the display through Framebuffer.
package vm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrROMTooLarge is returned when a ROM does not fit into program memory.
var ErrROMTooLarge = errors.New("rom too large")

// Tracer is called before each instruction is executed.
type Tracer interface {
	Trace(pc uint16, op Opcode)
}

// Fault describes an instruction that could not be executed.
type Fault struct {
	PC     uint16
	Opcode Opcode
	Err    error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("executing opcode %04X at %04X: %v", uint16(f.Opcode), f.PC, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// VM holds the complete state of a CHIP-8 machine.
type VM struct {
	Memory [MemorySize]uint8
	// V0-VE are general purpose registers, VF doubles as the flag register.
	V [RegisterCount]uint8
	// I is the index register, used as a memory address base.
	I  uint16
	PC uint16

	Stack [StackSize]uint16
	// SP is the number of return addresses on the stack.
	SP uint8

	// DT is the delay timer, ST the sound timer.
	DT uint8
	ST uint8

	// Opcode is the most recently fetched instruction word.
	Opcode Opcode

	screen Framebuffer
	keypad Keypad
	dirty  bool

	random RandomSource
	tracer Tracer
}

// Option configures a VM.
type Option func(*VM)

// WithRandomSource sets the source used by the RND instruction.
func WithRandomSource(source RandomSource) Option {
	return func(v *VM) {
		v.random = source
	}
}

// WithTracer sets a tracer that is called before each instruction.
func WithTracer(tracer Tracer) Option {
	return func(v *VM) {
		v.tracer = tracer
	}
}

// New returns a machine with cleared memory and registers, the glyph table
// loaded and the program counter at ProgramStart.
func New(opts ...Option) *VM {
	v := &VM{
		PC: ProgramStart,
	}
	copy(v.Memory[FontStart:], glyphs[:])

	for _, opt := range opts {
		opt(v)
	}
	if v.random == nil {
		v.random = NewRandomSource(0)
	}
	return v
}

// LoadROM copies a program into memory at ProgramStart. An empty ROM leaves
// the memory unchanged.
func (v *VM) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	copy(v.Memory[ProgramStart:], rom)
	return nil
}

// Cycle executes a single instruction and then decrements both timers if
// they are not zero.
//
// If the instruction faults the program counter is left at the faulting
// instruction, the timers are not decremented and a *Fault is returned.
func (v *VM) Cycle() error {
	pc := v.PC
	op := Opcode(uint16(v.read(pc))<<8 | uint16(v.read(pc+1)))
	v.Opcode = op
	v.PC += InstructionSize

	if v.tracer != nil {
		v.tracer.Trace(pc, op)
	}

	if err := lookup(op)(v, op); err != nil {
		v.PC = pc
		return &Fault{PC: pc, Opcode: op, Err: err}
	}

	v.tickTimers()
	return nil
}

func (v *VM) tickTimers() {
	if v.DT > 0 {
		v.DT--
	}
	if v.ST > 0 {
		v.ST--
	}
}

// Run executes up to n cycles, or until the context is done if n is 0.
// It returns the number of executed cycles.
func (v *VM) Run(ctx context.Context, n uint64) (uint64, error) {
	var executed uint64
	for n == 0 || executed < n {
		select {
		case <-ctx.Done():
			return executed, fmt.Errorf("running: %w", ctx.Err())
		default:
		}

		if err := v.Cycle(); err != nil {
			return executed, err
		}
		executed++
	}
	return executed, nil
}

// Framebuffer returns the display. The returned value is updated in place
// by subsequent cycles.
func (v *VM) Framebuffer() *Framebuffer {
	return &v.screen
}

// TakeDirty reports whether the display changed since the last call.
func (v *VM) TakeDirty() bool {
	dirty := v.dirty
	v.dirty = false
	return dirty
}

// SoundActive reports whether the sound timer is running.
func (v *VM) SoundActive() bool {
	return v.ST > 0
}

// String returns the register state of the machine.
func (v *VM) String() string {
	stack := make([]string, v.SP)
	for i, address := range v.Stack[:v.SP] {
		stack[i] = fmt.Sprintf("%04X", address)
	}
	return fmt.Sprintf("VM{V: [% X], I: %04X, PC: %04X, Stack: [%s], SP: %d, DT: %02X, ST: %02X}",
		v.V[:], v.I, v.PC, strings.Join(stack, " "), v.SP, v.DT, v.ST)
}
