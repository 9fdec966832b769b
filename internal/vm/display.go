package vm

import "strings"

// Display dimensions in pixels.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Pixel values as stored in the framebuffer. A set pixel has all bits set so
// that the buffer can be copied directly into a 32 bit per pixel surface.
const (
	PixelOff uint32 = 0x00000000
	PixelOn  uint32 = 0xFFFFFFFF
)

// Framebuffer is the monochrome display, stored row by row.
type Framebuffer struct {
	pixels [ScreenWidth * ScreenHeight]uint32
}

// Pixel returns whether the pixel at the given position is set.
// Positions outside of the screen are reported as not set.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return f.pixels[y*ScreenWidth+x] == PixelOn
}

// Pixels returns a copy of the raw pixel values, row by row.
func (f *Framebuffer) Pixels() []uint32 {
	pixels := make([]uint32, len(f.pixels))
	copy(pixels, f.pixels[:])
	return pixels
}

// String renders the framebuffer as text, one line per row, using '#' for
// set pixels and '.' for cleared ones.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((ScreenWidth + 1) * ScreenHeight)
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if f.pixels[y*ScreenWidth+x] == PixelOn {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (f *Framebuffer) clear() {
	for i := range f.pixels {
		f.pixels[i] = PixelOff
	}
}

// flip XORs the pixel at the given position and returns true if the pixel
// was turned off. Positions beyond the right or bottom edge are dropped.
func (f *Framebuffer) flip(x, y int) bool {
	if x >= ScreenWidth || y >= ScreenHeight {
		return false
	}
	pixel := &f.pixels[y*ScreenWidth+x]
	collision := *pixel == PixelOn
	*pixel ^= PixelOn
	return collision
}
