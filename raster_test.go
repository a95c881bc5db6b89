package escline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blackImage(w, h int) *PixelImage {
	data := make([]byte, w*h*4)
	for i := 0; i < len(data); i += 4 {
		data[i] = 0 // black: red channel 0
		data[i+3] = 255
	}
	return &PixelImage{Width: w, Height: h, Data: data}
}

func TestWidthBytes(t *testing.T) {
	assert.Equal(t, 1, widthBytes(8))
	assert.Equal(t, 72, widthBytes(576))
}

func TestPackRasterRows_AllBlackIsAllOnes(t *testing.T) {
	img := blackImage(8, 1)
	out := packRasterRows(img, 0, 1, NewPool())
	require.Len(t, out, 1)
	assert.Equal(t, byte(0xFF), out[0])
}

func TestPixelsToRasterStrips_Partitioning(t *testing.T) {
	img := blackImage(576, 1000)
	strips := pixelsToRasterStrips(img, maxStripRows, NewPool())

	total := 0
	for i, s := range strips {
		total += s.Rows
		assert.Equal(t, widthBytes(img.Width)*s.Rows, len(s.Data))
		if i < len(strips)-1 {
			assert.Equal(t, maxStripRows, s.Rows)
		}
	}
	assert.Equal(t, img.Height, total)
	require.Len(t, strips, 2)
	assert.Equal(t, 512, strips[0].Rows)
	assert.Equal(t, 488, strips[1].Rows)
}

func TestRasterHeaderFraming_StripPartitionScenario(t *testing.T) {
	img := blackImage(576, 1000)
	strips := pixelsToRasterStrips(img, maxStripRows, NewPool())
	wb := widthBytes(img.Width)

	h0 := frameRasterStrip(strips[0], wb, strips[0].Data, false, NewPool())[:8]
	h1 := frameRasterStrip(strips[1], wb, strips[1].Data, false, NewPool())[:8]

	assert.Equal(t, []byte{GS, 'v', '0', 0x00, 0x48, 0x00, 0x00, 0x02}, h0)
	assert.Equal(t, []byte{GS, 'v', '0', 0x00, 0x48, 0x00, 0xE8, 0x01}, h1)

	total := len(strips[0].Data) + len(strips[1].Data)
	assert.Equal(t, wb*img.Height, total)
	assert.Equal(t, 36864, len(strips[0].Data))
	assert.Equal(t, 35136, len(strips[1].Data))
}

func TestImageHeightOfOne(t *testing.T) {
	img := blackImage(8, 1)
	strips := pixelsToRasterStrips(img, maxStripRows, NewPool())
	require.Len(t, strips, 1)
	assert.Equal(t, 1, strips[0].Rows)
}
