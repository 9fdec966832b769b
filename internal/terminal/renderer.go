package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/vm"
)

const (
	cursorHome = "\x1b[H"
	clearAll   = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// Renderer draws the framebuffer using half block characters, two display
// rows per terminal line.
type Renderer struct {
	out io.Writer
	buf strings.Builder
}

// NewRenderer returns a renderer writing to the given writer.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render redraws the whole screen starting at the top left corner.
func (r *Renderer) Render(screen *vm.Framebuffer) error {
	r.buf.Reset()
	r.buf.WriteString(cursorHome)

	for y := 0; y < vm.ScreenHeight; y += 2 {
		for x := range vm.ScreenWidth {
			r.buf.WriteRune(halfBlock(screen.Pixel(x, y), screen.Pixel(x, y+1)))
		}
		// raw mode does not translate \n into a carriage return
		r.buf.WriteString("\r\n")
	}

	if _, err := io.WriteString(r.out, r.buf.String()); err != nil {
		return fmt.Errorf("writing screen: %w", err)
	}
	return nil
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
