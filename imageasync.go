package escline

import "runtime"

// asyncPixelThreshold and asyncWidthThreshold gate the yielding path
// (spec.md §4.C.7): images at or under both thresholds are framed
// synchronously in one pass.
const (
	asyncPixelThreshold = 250_000
	asyncWidthThreshold = 800

	yieldEveryStrips  = 4   // raster: yield after this many emitted strips
	yieldEveryColumns = 100 // column: yield after this many columns within a strip
)

func needsAsyncImage(img *PixelImage) bool {
	return img.Width*img.Height > asyncPixelThreshold || img.Width > asyncWidthThreshold
}

// rasterStripsYielding is equivalent to pixelsToRasterStrips but surrenders
// the scheduler every yieldEveryStrips strips via runtime.Gosched(). Output
// bytes are identical to the synchronous path; only scheduling fairness
// changes, per spec.md §9's redesign note on cooperative yielding.
func rasterStripsYielding(img *PixelImage, s int, pool *Pool) []RasterStrip {
	if s <= 0 {
		s = maxStripRows
	}
	var strips []RasterStrip
	for y0, n := 0, 0; y0 < img.Height; y0, n = y0+s, n+1 {
		y1 := y0 + s
		if y1 > img.Height {
			y1 = img.Height
		}
		strips = append(strips, RasterStrip{
			Data:   packRasterRows(img, y0, y1, pool),
			Rows:   y1 - y0,
			Offset: y0,
		})
		if (n+1)%yieldEveryStrips == 0 {
			runtime.Gosched()
		}
	}
	return strips
}

// packColumnStripYielding is packColumnStrip with a scheduler yield every
// yieldEveryColumns columns.
func packColumnStripYielding(img *PixelImage, y0 int, pool *Pool) []byte {
	out := pool.Acquire(3 * img.Width)
	for x := 0; x < img.Width; x++ {
		for c := 0; c < 3; c++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				b |= getPixel(img, x, y0+8*c+bit) << uint(7-bit)
			}
			out[3*x+c] = b
		}
		if (x+1)%yieldEveryColumns == 0 {
			runtime.Gosched()
		}
	}
	return out
}

// columnsYielding is pixelsToColumns using the yielding column packer.
func columnsYielding(img *PixelImage, pool *Pool) []ColumnStrip {
	var strips []ColumnStrip
	for y0 := 0; y0 < img.Height; y0 += columnStripRows {
		strips = append(strips, ColumnStrip{
			Data:   packColumnStripYielding(img, y0, pool),
			Offset: y0,
		})
	}
	if len(strips) == 0 {
		strips = append(strips, ColumnStrip{Data: packColumnStripYielding(img, 0, pool), Offset: 0})
	}
	return strips
}

// rasterStrips and columns dispatch to the yielding or synchronous path
// based on image size, per spec.md §4.C.7. pool backs every strip buffer
// they allocate.
func rasterStrips(img *PixelImage, s int, pool *Pool) []RasterStrip {
	if needsAsyncImage(img) {
		return rasterStripsYielding(img, s, pool)
	}
	return pixelsToRasterStrips(img, s, pool)
}

func columns(img *PixelImage, pool *Pool) []ColumnStrip {
	if needsAsyncImage(img) {
		return columnsYielding(img, pool)
	}
	return pixelsToColumns(img, pool)
}
