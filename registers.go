package st7567

import "periph.io/x/conn/v3/physic"

// Display geometry. The ST7567 drives a fixed 128x64 matrix organized as 8
// horizontal pages of 128 bytes, one byte per column covering 8 pixel rows.
const (
	Width    = 128
	Height   = 64
	pageSize = Width
	numPages = Height / 8
	bufSize  = numPages * pageSize // 1024
)

// SPIFrequency is the bus speed the driver configures when connecting
// through NewSPI. The controller tolerates far more, but the Pimoroni GFX
// HAT wiring is only rated for 1MHz.
const SPIFrequency = 1 * physic.MegaHertz

// ST7567 command set.
const (
	displayOff     byte = 0xAE // sleep mode
	displayOn      byte = 0xAF // display ON in normal mode
	setStartLine   byte = 0x40 // 0x40-0x7F: display start line
	regulatorRatio byte = 0x20 // 0x20-0x27: regulation resistor ratio
	setPageStart   byte = 0xB0 // 0xB0-0xB7: page start address
	setColumnLow   byte = 0x00 // 0x00-0x0F: lower column address
	setColumnHigh  byte = 0x10 // 0x10-0x1F: higher column address
	segDirNormal   byte = 0xA0 // column address 0 mapped to SEG0
	segDirReverse  byte = 0xA1 // column address 128 mapped to SEG0
	displayNormal  byte = 0xA6
	displayInverse byte = 0xA7
	displayRAM     byte = 0xA4 // resume to RAM content display
	displayEntire  byte = 0xA5 // entire display ON
	bias19         byte = 0xA2 // bias 1/9
	bias17         byte = 0xA3 // bias 1/7
	enterRMWMode   byte = 0xE0 // column auto-increments on data writes
	exitRMWMode    byte = 0xEE
	softReset      byte = 0xE2
	comDirNormal   byte = 0xC0 // COM output scan direction, normal
	comDirReverse  byte = 0xC8 // COM output scan direction, reversed (vertical flip)
	powerControl   byte = 0x2F // booster, regulator and follower all on
	setContrast    byte = 0x81 // followed by the contrast value byte
	setBooster     byte = 0xF8 // followed by a booster level byte
	setBooster4x   byte = 0x00
	setBooster5x   byte = 0x01
	nop            byte = 0xE3
	pageStartMask  byte = 0x07
	startLineMask  byte = 0x3F
	columnLowMask  byte = 0x0F
	columnHighMask byte = 0x0F
)

// DefaultContrast is the electronic volume value sent by Init. It matches
// the hardware default the GFX HAT ships with.
const DefaultContrast byte = 40
