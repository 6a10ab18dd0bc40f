package image1bit

import (
	"image"
	"image/color"
)

// Bit is a 1-bit monochrome color: a pixel is either On (lit) or Off.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the bit to standard RGBA. On maps to white, Off to black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B,
	// thresholded at half intensity.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image where pixels are stored in vertical LSB packing.
// Each byte covers one column of an 8 pixel tall page; bit 0 is the page's top row.
type VerticalLSB struct {
	Pix    []byte          // Pixel data, one byte per (column, page) pair
	Stride int             // Bytes per page, equal to the width in pixels
	Rect   image.Rectangle // Image bounds; height must be a multiple of 8
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8 (the controller's page granularity).
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit value of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y). Out-of-bounds coordinates are silently
// ignored, keeping the hot path cheap and panic-free.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Clear turns every pixel Off.
func (p *VerticalLSB) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

// NumPages returns the number of 8 pixel tall pages in the image.
func (p *VerticalLSB) NumPages() int {
	return p.Rect.Dy() / 8
}

// Page returns the backing bytes for page n as a view into Pix, exactly
// Stride bytes long. The slice aliases the image: it is re-derivable at any
// time and reflects mutations made after the call.
func (p *VerticalLSB) Page(n int) []byte {
	return p.Pix[n*p.Stride : (n+1)*p.Stride]
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: byte (y/8)*Stride + x holds rows 8*(y/8)..8*(y/8)+7 of
// column x, with bit y%8 (LSB = topmost).
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	x -= p.Rect.Min.X
	y -= p.Rect.Min.Y
	offset = (y/8)*p.Stride + x
	mask = 1 << uint(y&7)
	return
}
