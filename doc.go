// Package st7567 controls a ST7567 monochrome LCD via SPI.
//
// The ST7567 is a 1-bit dot matrix LCD controller driving 128×64 pixels. It is
// the display used on the Pimoroni GFX HAT for the Raspberry Pi.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 1-bit monochrome, 128×64 pixels
// - RAM organized as 8 horizontal pages of 128 bytes (vertical LSB packing)
// - Adjustable contrast (0-255)
// - Display inversion
// - Hardware reset line plus a software reset command
//
// # Hardware Connection
//
// Connect the ST7567 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RST         → GPIO (any available pin)
//
// On the GFX HAT the wiring is fixed: DC on GPIO6, RST on GPIO5, CS on CE0.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/st7567"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get control GPIO pins
//		dcPin := gpioreg.ByName("GPIO6")
//		rstPin := gpioreg.ByName("GPIO5")
//
//		// Create device
//		dev, _ := st7567.NewSPI(spiBus, dcPin, rstPin)
//		defer dev.Halt()
//
//		// Bring up the controller
//		dev.Reset()
//		dev.Init()
//
//		// Draw a diagonal line into the buffer
//		for i := 0; i < 64; i++ {
//			dev.SetPixel(i, i, true)
//		}
//
//		// Push the buffer to the display
//		dev.Show()
//	}
//
// # Bring-up Sequence
//
// The constructor does not touch the controller. Callers drive the bring-up
// explicitly: Reset pulses the RST line (low 10ms, high 100ms, datasheet
// minimums), then Init sends the fixed configuration sequence and turns the
// display on. The configuration values (bias 1/7, normal segment direction,
// reversed COM direction, start line 0, regulator ratio 3) are panel tuning
// constants and are not configurable; contrast is the one exception, via
// SetContrast.
//
// # Drawing
//
// The driver keeps a 1024 byte buffer in the controller's native page layout.
// SetPixel and Clear mutate the buffer only; Show flushes all 8 pages over
// the bus (1050 bytes per flush). There is no partial update: every Show
// rewrites the controller's entire RAM, which also makes recovery after a
// failed flush a matter of calling Show again.
//
// For image composition, Draw accepts any image.Image and rasterizes it into
// the buffer through the image1bit package:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// Raw full frames in VerticalLSB format can be pushed with Write:
//
//	pixels := make([]byte, 128*64/8) // 1024 bytes
//	// ... fill pixels ...
//	dev.Write(pixels)
//
// # Error Handling
//
// Every fallible operation returns on the first failure with one of two
// error types: TransportError (the bus write failed) or PinError (a control
// line set failed), each wrapping the underlying periph.io error for use
// with errors.As and errors.Unwrap. There are no retries and no partial
// completion; after an error the controller state is unknown and a full
// Reset/Init is the safe recovery.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.newhavendisplay.com/appnotes/datasheets/LCDs/ST7567.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package st7567
