package terminal

import (
	"io"
	"sync"

	"github.com/retroenv/retrochip8/internal/vm"
)

// DefaultKeyHold is the number of polls a key stays pressed after its last
// key press was read. Terminals only report key presses, never releases.
const DefaultKeyHold = 100

const escape = 0x1B

// keyMap maps the left hand side of a QWERTY keyboard onto the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var keyMap = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Keyboard converts raw terminal input into keypad states.
type Keyboard struct {
	input <-chan byte
	done  chan struct{}
	stop  sync.Once
	hold  int
	held  [vm.KeyCount]int
	quit  bool
}

// NewKeyboard starts reading raw bytes from the reader in the background.
// The reader goroutine ends when the reader returns an error or, at the
// latest with the next key press, after Stop was called.
func NewKeyboard(reader io.Reader, hold int) *Keyboard {
	input := make(chan byte, 16)
	done := make(chan struct{})
	go readInput(reader, input, done)

	return &Keyboard{
		input: input,
		done:  done,
		hold:  hold,
	}
}

// Stop ends the background reader. Key presses read afterwards are dropped.
func (k *Keyboard) Stop() {
	k.stop.Do(func() {
		if k.done != nil {
			close(k.done)
		}
	})
}

func readInput(reader io.Reader, input chan<- byte, done <-chan struct{}) {
	defer close(input)

	buf := make([]byte, 16)
	for {
		n, err := reader.Read(buf)
		for _, b := range buf[:n] {
			select {
			case input <- b:
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Poll returns the current keypad state without blocking. The returned flag
// is set once Escape was pressed.
func (k *Keyboard) Poll() (vm.Keypad, bool) {
	for i := range k.held {
		if k.held[i] > 0 {
			k.held[i]--
		}
	}

	k.drain()

	var keys vm.Keypad
	for i, remaining := range k.held {
		keys[i] = remaining > 0
	}
	return keys, k.quit
}

func (k *Keyboard) drain() {
	for {
		select {
		case b, ok := <-k.input:
			if !ok {
				k.input = nil
				return
			}
			k.press(b)
		default:
			return
		}
	}
}

func (k *Keyboard) press(b byte) {
	if b == escape {
		k.quit = true
		return
	}

	// letters are matched case insensitive
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	if key, ok := keyMap[b]; ok {
		k.held[key] = k.hold
	}
}
