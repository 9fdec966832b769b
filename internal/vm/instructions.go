package vm

func opNop(_ *VM, _ Opcode) error {
	return nil
}

// 00E0 - CLS
func opClearScreen(v *VM, _ Opcode) error {
	v.screen.clear()
	v.dirty = true
	return nil
}

// 00EE - RET
func opReturn(v *VM, _ Opcode) error {
	address, err := v.pop()
	if err != nil {
		return err
	}
	v.PC = address
	return nil
}

// 1nnn - JP addr
func opJump(v *VM, op Opcode) error {
	v.PC = op.NNN()
	return nil
}

// 2nnn - CALL addr
func opCall(v *VM, op Opcode) error {
	if err := v.push(v.PC); err != nil {
		return err
	}
	v.PC = op.NNN()
	return nil
}

// 3xkk - SE Vx, byte
func opSkipEqualImmediate(v *VM, op Opcode) error {
	v.skipIf(v.V[op.X()] == op.KK())
	return nil
}

// 4xkk - SNE Vx, byte
func opSkipNotEqualImmediate(v *VM, op Opcode) error {
	v.skipIf(v.V[op.X()] != op.KK())
	return nil
}

// 5xy0 - SE Vx, Vy
func opSkipEqualRegister(v *VM, op Opcode) error {
	v.skipIf(v.V[op.X()] == v.V[op.Y()])
	return nil
}

// 9xy0 - SNE Vx, Vy
func opSkipNotEqualRegister(v *VM, op Opcode) error {
	v.skipIf(v.V[op.X()] != v.V[op.Y()])
	return nil
}

// 6xkk - LD Vx, byte
func opLoadImmediate(v *VM, op Opcode) error {
	v.V[op.X()] = op.KK()
	return nil
}

// 7xkk - ADD Vx, byte. The flag register is not affected.
func opAddImmediate(v *VM, op Opcode) error {
	v.V[op.X()] += op.KK()
	return nil
}

// 8xy0 - LD Vx, Vy
func opLoadRegister(v *VM, op Opcode) error {
	v.V[op.X()] = v.V[op.Y()]
	return nil
}

// 8xy1 - OR Vx, Vy
func opOr(v *VM, op Opcode) error {
	v.V[op.X()] |= v.V[op.Y()]
	return nil
}

// 8xy2 - AND Vx, Vy
func opAnd(v *VM, op Opcode) error {
	v.V[op.X()] &= v.V[op.Y()]
	return nil
}

// 8xy3 - XOR Vx, Vy
func opXor(v *VM, op Opcode) error {
	v.V[op.X()] ^= v.V[op.Y()]
	return nil
}

// The ALU operations below write VF before the destination register, so
// if the destination is VF the result of the operation is kept.

// 8xy4 - ADD Vx, Vy
func opAddRegister(v *VM, op Opcode) error {
	sum := uint16(v.V[op.X()]) + uint16(v.V[op.Y()])
	v.V[FlagRegister] = boolToFlag(sum > 0xFF)
	v.V[op.X()] = uint8(sum)
	return nil
}

// 8xy5 - SUB Vx, Vy
func opSub(v *VM, op Opcode) error {
	x, y := v.V[op.X()], v.V[op.Y()]
	v.V[FlagRegister] = boolToFlag(x >= y)
	v.V[op.X()] = x - y
	return nil
}

// 8xy7 - SUBN Vx, Vy
func opSubReverse(v *VM, op Opcode) error {
	x, y := v.V[op.X()], v.V[op.Y()]
	v.V[FlagRegister] = boolToFlag(y >= x)
	v.V[op.X()] = y - x
	return nil
}

// 8xy6 - SHR Vx
func opShiftRight(v *VM, op Opcode) error {
	x := v.V[op.X()]
	v.V[FlagRegister] = x & 0x01
	v.V[op.X()] = x >> 1
	return nil
}

// 8xyE - SHL Vx
func opShiftLeft(v *VM, op Opcode) error {
	x := v.V[op.X()]
	v.V[FlagRegister] = x >> 7
	v.V[op.X()] = x << 1
	return nil
}

// Annn - LD I, addr
func opLoadIndex(v *VM, op Opcode) error {
	v.I = op.NNN()
	return nil
}

// Bnnn - JP V0, addr
func opJumpOffset(v *VM, op Opcode) error {
	v.PC = op.NNN() + uint16(v.V[0])
	return nil
}

// Cxkk - RND Vx, byte
func opRandom(v *VM, op Opcode) error {
	v.V[op.X()] = v.random.Byte() & op.KK()
	return nil
}

// Dxyn - DRW Vx, Vy, nibble
//
// The start position wraps around the screen, pixels of the sprite that
// extend past the right or bottom edge are dropped. VF is set when a set
// pixel is erased and is never cleared by this instruction.
func opDraw(v *VM, op Opcode) error {
	x := int(v.V[op.X()]) % ScreenWidth
	y := int(v.V[op.Y()]) % ScreenHeight
	height := int(op.N())

	for row := 0; row < height; row++ {
		sprite := v.read(v.I + uint16(row))
		for col := 0; col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			if v.screen.flip(x+col, y+row) {
				v.V[FlagRegister] = 1
			}
		}
	}

	v.dirty = true
	return nil
}

// Ex9E - SKP Vx
func opSkipKeyPressed(v *VM, op Opcode) error {
	v.skipIf(v.pressed(v.V[op.X()]))
	return nil
}

// ExA1 - SKNP Vx
func opSkipKeyNotPressed(v *VM, op Opcode) error {
	v.skipIf(!v.pressed(v.V[op.X()]))
	return nil
}

// Fx07 - LD Vx, DT
func opLoadDelayTimer(v *VM, op Opcode) error {
	v.V[op.X()] = v.DT
	return nil
}

// Fx0A - LD Vx, K
//
// Without a pressed key the program counter is rewound so that the
// instruction executes again on the next cycle.
func opWaitKey(v *VM, op Opcode) error {
	key, ok := v.keypad.firstPressed()
	if !ok {
		v.PC -= InstructionSize
		return nil
	}
	v.V[op.X()] = key
	return nil
}

// Fx15 - LD DT, Vx
func opSetDelayTimer(v *VM, op Opcode) error {
	v.DT = v.V[op.X()]
	return nil
}

// Fx18 - LD ST, Vx
func opSetSoundTimer(v *VM, op Opcode) error {
	v.ST = v.V[op.X()]
	return nil
}

// Fx1E - ADD I, Vx
func opAddIndex(v *VM, op Opcode) error {
	v.I += uint16(v.V[op.X()])
	return nil
}

// Fx29 - LD F, Vx
func opLoadGlyph(v *VM, op Opcode) error {
	v.I = GlyphAddress(v.V[op.X()])
	return nil
}

// Fx33 - LD B, Vx
func opStoreBCD(v *VM, op Opcode) error {
	value := v.V[op.X()]
	v.write(v.I, value/100)
	v.write(v.I+1, value/10%10)
	v.write(v.I+2, value%10)
	return nil
}

// Fx55 - LD [I], Vx
func opStoreRegisters(v *VM, op Opcode) error {
	for i := uint8(0); i <= op.X(); i++ {
		v.write(v.I+uint16(i), v.V[i])
	}
	return nil
}

// Fx65 - LD Vx, [I]
func opLoadRegisters(v *VM, op Opcode) error {
	for i := uint8(0); i <= op.X(); i++ {
		v.V[i] = v.read(v.I + uint16(i))
	}
	return nil
}

func (v *VM) skipIf(condition bool) {
	if condition {
		v.PC += InstructionSize
	}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
