package vm

// handler executes a decoded instruction.
type handler func(v *VM, op Opcode) error

var (
	table  [0x10]handler
	table0 [0x10]handler
	table8 [0x10]handler
	tableE [0x10]handler
	tableF [0x100]handler
)

func init() {
	table = [0x10]handler{
		0x0: dispatch0,
		0x1: opJump,
		0x2: opCall,
		0x3: opSkipEqualImmediate,
		0x4: opSkipNotEqualImmediate,
		0x5: opSkipEqualRegister,
		0x6: opLoadImmediate,
		0x7: opAddImmediate,
		0x8: dispatch8,
		0x9: opSkipNotEqualRegister,
		0xA: opLoadIndex,
		0xB: opJumpOffset,
		0xC: opRandom,
		0xD: opDraw,
		0xE: dispatchE,
		0xF: dispatchF,
	}

	fillNop(table0[:])
	fillNop(table8[:])
	fillNop(tableE[:])
	fillNop(tableF[:])

	table0[0x0] = opClearScreen
	table0[0xE] = opReturn

	table8[0x0] = opLoadRegister
	table8[0x1] = opOr
	table8[0x2] = opAnd
	table8[0x3] = opXor
	table8[0x4] = opAddRegister
	table8[0x5] = opSub
	table8[0x6] = opShiftRight
	table8[0x7] = opSubReverse
	table8[0xE] = opShiftLeft

	tableE[0x1] = opSkipKeyNotPressed
	tableE[0xE] = opSkipKeyPressed

	tableF[0x07] = opLoadDelayTimer
	tableF[0x0A] = opWaitKey
	tableF[0x15] = opSetDelayTimer
	tableF[0x18] = opSetSoundTimer
	tableF[0x1E] = opAddIndex
	tableF[0x29] = opLoadGlyph
	tableF[0x33] = opStoreBCD
	tableF[0x55] = opStoreRegisters
	tableF[0x65] = opLoadRegisters
}

func fillNop(handlers []handler) {
	for i := range handlers {
		handlers[i] = opNop
	}
}

// lookup resolves the handler for an instruction word. Unmapped codes at any
// level resolve to the no-op handler.
func lookup(op Opcode) handler {
	return table[op.Family()]
}

func dispatch0(v *VM, op Opcode) error { return table0[op.N()](v, op) }
func dispatch8(v *VM, op Opcode) error { return table8[op.N()](v, op) }
func dispatchE(v *VM, op Opcode) error { return tableE[op.N()](v, op) }
func dispatchF(v *VM, op Opcode) error { return tableF[op.KK()](v, op) }
