// Package st7567 controls a ST7567 monochrome LCD via SPI.
//
// The ST7567 is a 1-bit dot matrix LCD controller driving 128x64 pixels,
// found among others on the Pimoroni GFX HAT for the Raspberry Pi.
//
// See the examples for how to use this package.
package st7567

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/st7567/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// TransportError reports a failed write on the serial bus. It wraps the
// error returned by the underlying transport.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("st7567: transport write failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PinError reports a failed state change on one of the control lines. It
// wraps the error returned by the underlying GPIO pin.
type PinError struct {
	Pin string // "dc" or "rst"
	Err error
}

func (e *PinError) Error() string {
	return fmt.Sprintf("st7567: %s pin set failed: %v", e.Pin, e.Err)
}

func (e *PinError) Unwrap() error {
	return e.Err
}

var errHalted = errors.New("st7567: halted")

// Dev is the device handle for the ST7567 display.
//
// Dev is not safe for concurrent use; it is meant to be owned by a single
// caller. All operations block until the hardware acknowledges the write or
// the first failure is hit. After any returned TransportError or PinError
// the controller state is unknown and a full Reset/Init is the safe recovery.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinOut // Reset pin

	// Pixel buffer in the controller's native page layout.
	pixels *image1bit.VerticalLSB

	// State
	halted bool
}

// NewSPI creates a new ST7567 device connected via SPI.
//
// The SPI port is configured for 1MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. Both the dc (Data/Command) and rst (Reset) GPIO pins must be
// provided and configured as outputs.
//
// The returned device has not touched the hardware yet: call Reset followed
// by Init before drawing.
func NewSPI(p spi.Port, dc, rst gpio.PinOut) (*Dev, error) {
	c, err := p.Connect(SPIFrequency, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return New(c, dc, rst), nil
}

// New creates a new ST7567 device over an already established connection.
func New(c conn.Conn, dc, rst gpio.PinOut) *Dev {
	return &Dev{
		c:      c,
		dc:     dc,
		rst:    rst,
		pixels: image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height)),
	}
}

// sendCommand sends a slice of command bytes. The controller treats a
// contiguous run of command bytes as independent single-byte commands, so
// multi-command frames ride a single write.
func (d *Dev) sendCommand(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return &PinError{Pin: "dc", Err: err}
	}
	if err := d.c.Tx(cmds, nil); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// sendData sends a slice of pixel data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return &PinError{Pin: "dc", Err: err}
	}
	if err := d.c.Tx(data, nil); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// Reset performs the hardware reset sequence: pull RST low, hold 10ms, pull
// high, hold 100ms. The hold durations are minimum pulse widths required by
// the controller and are not tunable. The sequence aborts at the first pin
// failure; the remaining transition and sleep are skipped.
func (d *Dev) Reset() error {
	if err := d.rst.Out(gpio.Low); err != nil {
		return &PinError{Pin: "rst", Err: err}
	}
	time.Sleep(10 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return &PinError{Pin: "rst", Err: err}
	}
	time.Sleep(100 * time.Millisecond)
	return nil
}

// SoftReset issues the software reset command, for setups where the RST line
// is not wired. It does not replace the power-on timing of Reset.
func (d *Dev) SoftReset() error {
	return d.sendCommand([]byte{softReset})
}

// Init sends the configuration command sequence and turns the display on.
//
// The sequence is a single ten byte command write: bias, segment direction,
// COM direction, display mode, start line, power control, regulator ratio,
// display on, and the default contrast. The values are fixed hardware tuning
// constants for the GFX HAT panel; only the contrast can be changed
// afterwards, via SetContrast.
func (d *Dev) Init() error {
	err := d.sendCommand([]byte{
		bias17, // bias19 would select the softer 1/9 ratio
		segDirNormal,
		comDirReverse, // vertical flip
		displayNormal,
		setStartLine | 0,
		powerControl,
		regulatorRatio | 3,
		displayOn,
		setContrast,
		DefaultContrast,
	})
	if err != nil {
		return err
	}
	d.halted = false
	return nil
}

// SetContrast sets the display contrast (0-255).
//
// The value is passed through unvalidated; values outside the panel's usable
// range are the caller's responsibility.
func (d *Dev) SetContrast(value byte) error {
	if d.halted {
		return errHalted
	}
	return d.sendCommand([]byte{setContrast, value})
}

// Invert inverts the display colors (lit becomes unlit and vice versa)
// without touching the pixel buffer.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	mode := displayNormal
	if invert {
		mode = displayInverse
	}
	return d.sendCommand([]byte{mode})
}

// Clear turns every pixel in the buffer off. It does not touch the hardware;
// call Show to push the cleared buffer.
func (d *Dev) Clear() {
	d.pixels.Clear()
}

// SetPixel sets a single pixel in the display buffer. Out-of-bounds
// coordinates are silently ignored. It does not touch the hardware; call
// Show to push the buffer.
func (d *Dev) SetPixel(x, y int, on bool) {
	d.pixels.SetBit(x, y, image1bit.Bit(on))
}

// Show updates the display with the buffer contents.
//
// The whole buffer is always rewritten, page by page: enter read-modify-write
// mode, then for each of the 8 pages set the page address and column 0 and
// stream the page's 128 bytes, then exit read-modify-write mode. Pages must
// be addressed in ascending order.
//
// Any failure aborts the flush immediately, leaving controller RAM in an
// unspecified intermediate state. There is no partial retry; the next
// successful Show overwrites every page unconditionally.
func (d *Dev) Show() error {
	if d.halted {
		return errHalted
	}
	if err := d.sendCommand([]byte{enterRMWMode}); err != nil {
		return err
	}
	for page := 0; page < numPages; page++ {
		err := d.sendCommand([]byte{
			setPageStart | byte(page),
			setColumnLow,
			setColumnHigh,
		})
		if err != nil {
			return err
		}
		if err := d.sendData(d.pixels.Page(page)); err != nil {
			return err
		}
	}
	return d.sendCommand([]byte{exitRMWMode})
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.pixels.Bounds()
}

// Write writes raw pixel data to the display in VerticalLSB format.
// The data must be exactly Width*Height/8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.pixels.Pix) {
		return 0, errors.New("st7567: invalid buffer size")
	}
	copy(d.pixels.Pix, pixels)
	if err := d.Show(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display buffer and flushes it.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at point sp within the destination.
//
// Unlike drivers that track dirty regions, Draw always rewrites the whole
// display RAM; the controller's page protocol makes a full flush cheap at
// this resolution.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	dst = dst.Intersect(d.pixels.Bounds())
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.pixels, dst, src, sp, draw.Src)
	return d.Show()
}

// Halt turns the display off.
// After calling Halt, the display will not respond to further drawing
// operations until Init is called again.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand([]byte{displayOff})
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7567.Dev{%dx%d}", Width, Height)
}
