package vm

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// Keypad holds the pressed state of the keys 0x0-0xF.
type Keypad [KeyCount]bool

// firstPressed returns the lowest pressed key.
func (k *Keypad) firstPressed() (uint8, bool) {
	for key, pressed := range k {
		if pressed {
			return uint8(key), true
		}
	}
	return 0, false
}

// SetKey updates the state of a single key. Keys above 0xF are ignored.
func (v *VM) SetKey(key uint8, pressed bool) {
	if int(key) >= KeyCount {
		return
	}
	v.keypad[key] = pressed
}

// SetKeys replaces the state of the whole keypad.
func (v *VM) SetKeys(keys Keypad) {
	v.keypad = keys
}

// ReleaseAll marks all keys as released.
func (v *VM) ReleaseAll() {
	v.keypad = Keypad{}
}

// Keys returns the current keypad state.
func (v *VM) Keys() Keypad {
	return v.keypad
}

// pressed reports whether the key selected by a register value is pressed.
// Only the low nibble of the value selects the key.
func (v *VM) pressed(value uint8) bool {
	return v.keypad[value&0x0F]
}
