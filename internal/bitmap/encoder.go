// Package bitmap serializes raster canvases into the device's binary
// image container and its text transport form.
//
// The device consumes a 1-bit-per-pixel BMP: a 14-byte file header, a
// 40-byte info header, a two-entry palette, and bottom-up pixel rows
// padded to a 4-byte boundary. The sole artifact handed to the display
// channel is that container rendered as lowercase hexadecimal.
package bitmap

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/sewonm/Easel/internal/raster"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	paletteSize    = 8 // two 4-byte BGRA entries

	// inkThreshold splits samples into ink and background bits. Canvas
	// primitives only ever write 0 or 255, but externally supplied
	// sample grids may carry intermediate values.
	inkThreshold = 128
)

// Encode serializes a canvas as a 1-bit-per-pixel monochrome BMP.
//
// Encoding is total: every canvas reachable through the drawing API
// encodes successfully, so there is no error return.
//
// # Layout
//
// All multi-byte fields are little-endian. Eight samples pack into each
// output byte, most significant bit first, with samples below 128
// becoming ink bits (1). Each row occupies ceil(W/8) bytes rounded up
// to a 4-byte boundary with zero padding; the 4-byte alignment is a
// requirement of the container format. Rows are emitted bottom-up
// because the format's pixel origin is the bottom-left corner. The
// palette holds black at index 0 and white at index 1, so ink bits
// render as lit pixels on the panel.
func Encode(c raster.Canvas) []byte {
	width := c.Width()
	height := c.Height()
	rowBytes := (width + 7) / 8
	paddedRow := (rowBytes + 3) &^ 3
	dataSize := paddedRow * height
	pixelOffset := fileHeaderSize + infoHeaderSize + paletteSize
	fileSize := pixelOffset + dataSize

	buf := make([]byte, fileSize)

	// File header: magic, total size, four reserved bytes, data offset.
	buf[0] = 'B'
	buf[1] = 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(fileSize))
	binary.LittleEndian.PutUint32(buf[10:], uint32(pixelOffset))

	// Info header. Width and height are signed in the format; positive
	// height selects bottom-up row order.
	info := buf[fileHeaderSize:]
	binary.LittleEndian.PutUint32(info[0:], infoHeaderSize)
	binary.LittleEndian.PutUint32(info[4:], uint32(int32(width)))
	binary.LittleEndian.PutUint32(info[8:], uint32(int32(height)))
	binary.LittleEndian.PutUint16(info[12:], 1) // color planes
	binary.LittleEndian.PutUint16(info[14:], 1) // bits per pixel
	binary.LittleEndian.PutUint32(info[16:], 0) // no compression
	binary.LittleEndian.PutUint32(info[20:], uint32(dataSize))
	// Pixel-density fields stay zero; the panel has no meaningful DPI.
	binary.LittleEndian.PutUint32(info[32:], 2) // palette entries
	binary.LittleEndian.PutUint32(info[36:], 0) // important colors

	// Palette: index 0 pure black, index 1 pure white (B, G, R, pad).
	palette := buf[fileHeaderSize+infoHeaderSize:]
	palette[4] = 0xff
	palette[5] = 0xff
	palette[6] = 0xff

	data := buf[pixelOffset:]
	for y := 0; y < height; y++ {
		row := data[(height-1-y)*paddedRow:]
		for x := 0; x < width; x++ {
			if c.At(x, y) < inkThreshold {
				row[x/8] |= 0x80 >> (x % 8)
			}
		}
	}

	return buf
}

// ToHex renders an encoded bitmap as lowercase hexadecimal for
// transport over the text-only display channel.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}
