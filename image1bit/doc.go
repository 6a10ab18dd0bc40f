// Package image1bit provides a 1-bit monochrome image format for the ST7567 LCD controller.
//
// The ST7567 stores pixels in vertical LSB packing: the display RAM is divided into
// 8 pixel tall horizontal pages, and each byte holds one column strip of a page with
// bit 0 being the strip's topmost row.
//
// Memory layout example for a 128x64 image (8 pages of 128 bytes):
//
//	offset = (y / 8) * 128 + x
//	bit    = y % 8
//
// Setting pixels (10,0), (10,1) and (10,2) turns byte 10 into 0b00000111.
//
// This package provides:
//
// - Bit: a color type representing a single monochrome pixel (On or Off)
// - BitModel: a color model converting standard Go colors to Bit
// - VerticalLSB: an image.Image and draw.Image implementation in the controller's native layout
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Turn a pixel on
//	img.SetBit(10, 20, image1bit.On)
//
//	// Read it back
//	bit := img.BitAt(10, 20)
//	println(bool(bit)) // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
