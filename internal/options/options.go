// Package options contains the program options.
package options

import "time"

// Default option values.
const (
	DefaultCycleDelay = 2 * time.Millisecond
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // input ROM file
	System string // target system, auto-detected from the file extension if empty
}

// Flags contains behavior options.
type Flags struct {
	CycleDelay time.Duration // delay between two executed instructions
	Cycles     uint64        // stop after the given number of cycles, 0 is unlimited
	Seed       int64         // seed of the random generator, 0 is time based

	Headless bool // run without terminal display and print the final screen
	Disasm   bool // print a listing of the ROM instead of running it
	Trace    bool // log every executed instruction, implies Debug
	Debug    bool
	Quiet    bool
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}
