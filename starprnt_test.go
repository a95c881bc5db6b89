package escline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarPRNTDialect_Initialize(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Equal(t, []byte{ESC, '@', 0x18}, d.Initialize())
}

func TestStarPRNTDialect_Font(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Equal(t, []byte{ESC, 0x1E, 'F', 0}, d.Font('A'))
	assert.Equal(t, []byte{ESC, 0x1E, 'F', 1}, d.Font('B'))
	assert.Equal(t, []byte{ESC, 0x1E, 'F', 2}, d.Font('C'))
}

func TestStarPRNTDialect_Align(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Equal(t, []byte{ESC, GS, 'a', 0}, d.Align(Left))
	assert.Equal(t, []byte{ESC, GS, 'a', 2}, d.Align(Right))
	assert.Equal(t, []byte{ESC, GS, 'a', 2}, d.Align(9))
}

func TestStarPRNTDialect_BoldInvert(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Equal(t, []byte{ESC, 'E'}, d.Bold(true))
	assert.Equal(t, []byte{ESC, 'F'}, d.Bold(false))
	assert.Equal(t, []byte{ESC, '5'}, d.Invert(true))
	assert.Equal(t, []byte{ESC, '4'}, d.Invert(false))
}

func TestStarPRNTDialect_ItalicIsUnsupported(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Nil(t, d.Italic(true))
	assert.Nil(t, d.Italic(false))
}

func TestStarPRNTDialect_Underline(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Equal(t, []byte{ESC, '-', 1}, d.Underline(1))
	assert.Equal(t, []byte{ESC, '-', 1}, d.Underline(9), "weight clamps to 1")
}

func TestStarPRNTDialect_SizeByteOrderIsHeightThenWidth(t *testing.T) {
	d := newStarPRNTDialect()
	out := d.Size(2, 3)
	assert.Equal(t, []byte{ESC, 'i', 2, 1}, out, "StarPRNT frames height before width, unlike ESC/POS")
}

func TestStarPRNTDialect_Codepage(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Equal(t, []byte{ESC, GS, 't', 5}, d.Codepage(5))
}

func TestStarPRNTDialect_Cut(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Equal(t, []byte{ESC, 'd', 1}, d.Cut(1))
}

func TestStarPRNTDialect_PulseDivisorIsTen(t *testing.T) {
	d := newStarPRNTDialect()
	out := d.Pulse(0, 100, 200)
	assert.Equal(t, []byte{ESC, 0x07, 10, 20, 0x07, 0x1A}, out, "StarPRNT pulse has no device byte, unlike ESC/POS")
}

func TestStarPRNTDialect_FlushEmitsPageModeToggle(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Equal(t, []byte{ESC, GS, 'P', '0', ESC, GS, 'P', '1'}, d.Flush())
}

func TestStarPRNTDialect_Barcode1D(t *testing.T) {
	d := newStarPRNTDialect()
	out := d.Barcode1D(Code39, "ABC", HRIOptions{})
	assert.NotEmpty(t, out)
	assert.Contains(t, string(out), "ABC")
}

func TestStarPRNTDialect_QRCode(t *testing.T) {
	d := newStarPRNTDialect()
	out := d.QRCode("hi", 4, L)
	assert.NotEmpty(t, out)
	assert.Contains(t, string(out), "hi")
}

func TestStarPRNTDialect_PDF417AlwaysNil(t *testing.T) {
	d := newStarPRNTDialect()
	assert.Nil(t, d.PDF417("x", PDF417Options{}), "StarPRNT has no native PDF417 command; facade falls back to a barcode symbology")
}

func TestStarPRNTDialect_ImageAlwaysColumnFramed(t *testing.T) {
	d := newStarPRNTDialect()
	img := blackImage(24, 24)
	raster := d.Image(img, ImageRaster, false, NewPool())
	column := d.Image(img, ImageColumn, false, NewPool())
	assert.Equal(t, column, raster, "StarPRNT ignores the requested mode and always column-frames")
}
