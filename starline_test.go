package escline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarLineDialect_Initialize(t *testing.T) {
	d := newStarLineDialect()
	assert.Equal(t, []byte{ESC, '@'}, d.Initialize())
}

func TestStarLineDialect_FontMapsCToB(t *testing.T) {
	d := newStarLineDialect()
	assert.Equal(t, []byte{ESC, 'x', 0}, d.Font('A'))
	assert.Equal(t, []byte{ESC, 'x', 1}, d.Font('B'))
	assert.Equal(t, []byte{ESC, 'x', 1}, d.Font('C'))
}

func TestStarLineDialect_AlignIsNoop(t *testing.T) {
	d := newStarLineDialect()
	assert.Nil(t, d.Align(Left))
	assert.Nil(t, d.Align(Right))
}

func TestStarLineDialect_BoldInvert(t *testing.T) {
	d := newStarLineDialect()
	assert.Equal(t, []byte{ESC, 'E'}, d.Bold(true))
	assert.Equal(t, []byte{ESC, 'F'}, d.Bold(false))
	assert.Equal(t, []byte{ESC, '5'}, d.Invert(true))
	assert.Equal(t, []byte{ESC, '4'}, d.Invert(false))
}

func TestStarLineDialect_ItalicIsUnsupported(t *testing.T) {
	d := newStarLineDialect()
	assert.Nil(t, d.Italic(true))
}

func TestStarLineDialect_Size(t *testing.T) {
	d := newStarLineDialect()
	assert.Equal(t, []byte{ESC, 'i', 2, 1}, d.Size(2, 3))
}

func TestStarLineDialect_Codepage(t *testing.T) {
	d := newStarLineDialect()
	assert.Equal(t, []byte{ESC, 't', 7}, d.Codepage(7))
}

func TestStarLineDialect_Cut(t *testing.T) {
	d := newStarLineDialect()
	assert.Equal(t, []byte{ESC, 'd', 1}, d.Cut(5), "kind clamps to 1")
}

func TestStarLineDialect_PulseDivisorIsTen(t *testing.T) {
	d := newStarLineDialect()
	out := d.Pulse(0, 100, 200)
	assert.Equal(t, []byte{ESC, BEL, 0, 10, 20}, out, "legacy Star Line pulse has no terminating bytes, unlike StarPRNT")
}

func TestStarLineDialect_FlushIsNoop(t *testing.T) {
	d := newStarLineDialect()
	assert.Nil(t, d.Flush())
}

func TestStarLineDialect_Barcode1D(t *testing.T) {
	d := newStarLineDialect()
	out := d.Barcode1D(Code39, "ABC", HRIOptions{Position: HRIBelow})
	assert.NotEmpty(t, out)
	assert.Contains(t, string(out), "ABC")
	assert.Equal(t, byte(RS), out[len(out)-1])
}

func TestStarLineDialect_QRCodeAlwaysNil(t *testing.T) {
	d := newStarLineDialect()
	assert.Nil(t, d.QRCode("hi", 4, L), "classic Star Line predates QR; callers fall through to the image pipeline")
}

func TestStarLineDialect_PDF417AlwaysNil(t *testing.T) {
	d := newStarLineDialect()
	assert.Nil(t, d.PDF417("x", PDF417Options{}))
}

func TestStarLineDialect_ImageAlwaysColumnFramed(t *testing.T) {
	d := newStarLineDialect()
	img := blackImage(24, 24)
	out := d.Image(img, ImageRaster, false, NewPool())
	assert.NotEmpty(t, out)
}
