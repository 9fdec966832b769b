// Package terminal provides a text terminal frontend that renders the
// display with block characters and reads the keypad from raw keyboard input.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the input is not connected to a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Terminal combines the renderer and the keyboard of a raw mode terminal.
type Terminal struct {
	*Renderer
	*Keyboard

	fd    int
	out   io.Writer
	state *term.State
}

// Open switches the input terminal into raw mode, clears the screen and
// starts reading key presses. Close restores the terminal.
func Open(in *os.File, out io.Writer) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}

	if _, err := io.WriteString(out, clearAll+hideCursor); err != nil {
		_ = term.Restore(fd, state)
		return nil, fmt.Errorf("clearing screen: %w", err)
	}

	return &Terminal{
		Renderer: NewRenderer(out),
		Keyboard: NewKeyboard(in, DefaultKeyHold),
		fd:       fd,
		out:      out,
		state:    state,
	}, nil
}

// Close restores the terminal state that was active before Open.
func (t *Terminal) Close() error {
	t.Stop()
	_, _ = io.WriteString(t.out, showCursor)
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}
