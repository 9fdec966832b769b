package terminal

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
)

func TestOpenRequiresTerminal(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "input")
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	_, err = Open(file, &bytes.Buffer{})
	assert.True(t, errors.Is(err, ErrNotTerminal))
}

func TestKeyboardMapping(t *testing.T) {
	tests := []struct {
		input byte
		key   uint8
	}{
		{'1', 0x1}, {'2', 0x2}, {'3', 0x3}, {'4', 0xC},
		{'q', 0x4}, {'w', 0x5}, {'e', 0x6}, {'r', 0xD},
		{'a', 0x7}, {'s', 0x8}, {'d', 0x9}, {'f', 0xE},
		{'z', 0xA}, {'x', 0x0}, {'c', 0xB}, {'v', 0xF},
		{'Q', 0x4}, {'V', 0xF},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			input := make(chan byte, 1)
			k := &Keyboard{input: input, hold: 3}
			input <- tt.input

			keys, quit := k.Poll()
			assert.False(t, quit)
			for i, pressed := range keys {
				assert.Equal(t, i == int(tt.key), pressed)
			}
		})
	}
}

func TestKeyboardHold(t *testing.T) {
	input := make(chan byte, 1)
	k := &Keyboard{input: input, hold: 2}

	input <- 'w'
	keys, _ := k.Poll()
	assert.True(t, keys[0x5])
	keys, _ = k.Poll()
	assert.True(t, keys[0x5])
	keys, _ = k.Poll()
	assert.False(t, keys[0x5])

	input <- 'w'
	keys, _ = k.Poll()
	assert.True(t, keys[0x5])
}

func TestKeyboardIgnoresUnmappedKeys(t *testing.T) {
	input := make(chan byte, 2)
	k := &Keyboard{input: input, hold: 2}
	input <- 'p'
	input <- ' '

	keys, quit := k.Poll()
	assert.False(t, quit)
	assert.Equal(t, vm.Keypad{}, keys)
}

func TestKeyboardEscapeQuits(t *testing.T) {
	input := make(chan byte, 1)
	k := &Keyboard{input: input, hold: 2}
	input <- escape

	_, quit := k.Poll()
	assert.True(t, quit)
}

func TestKeyboardClosedInput(t *testing.T) {
	input := make(chan byte)
	k := &Keyboard{input: input, hold: 2}
	close(input)

	keys, quit := k.Poll()
	assert.False(t, quit)
	assert.Equal(t, vm.Keypad{}, keys)

	keys, _ = k.Poll()
	assert.Equal(t, vm.Keypad{}, keys)
}

func TestNewKeyboardReadsInput(t *testing.T) {
	k := NewKeyboard(strings.NewReader("x"), 5)

	// wait for the reader goroutine to deliver the key and close the input
	for k.input != nil {
		k.drain()
	}
	keys, _ := k.Poll()
	assert.True(t, keys[0x0])
}

func TestRender(t *testing.T) {
	machine := vm.New()
	// ld I, $050 and draw the glyph for 0 at 0,0
	assert.NoError(t, machine.LoadROM([]byte{0xA0, 0x50, 0xD0, 0x15}))
	_, err := machine.Run(t.Context(), 2)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, NewRenderer(&buf).Render(machine.Framebuffer()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, cursorHome))

	lines := strings.Split(strings.TrimPrefix(out, cursorHome), "\r\n")
	assert.Len(t, lines, vm.ScreenHeight/2+1)
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀█ "))
	assert.True(t, strings.HasPrefix(lines[1], "█  █ "))
	assert.True(t, strings.HasPrefix(lines[2], "▀▀▀▀ "))
}

// endlessInput returns key presses forever.
type endlessInput struct{}

func (endlessInput) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestKeyboardStopEndsReader(t *testing.T) {
	k := NewKeyboard(endlessInput{}, 5)
	k.Stop()
	k.Stop()

	// the input channel is only closed once the reader goroutine returned
	for range k.input {
	}
}
