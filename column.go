package escline

// columnStripRows is the fixed height of a legacy column strip: 24 vertical
// dots, the dot-matrix heritage size shared by ESC/POS ESC * and StarPRNT
// ESC X (spec.md §4.C.4).
const columnStripRows = 24

// ColumnStrip is one 24-row vertical slice of a column-mode image: 3 bytes
// per column, MSB = topmost row.
type ColumnStrip struct {
	Data   []byte // length 3 * img.Width
	Offset int    // first row of img covered by this strip
}

// packColumnStrip packs rows [y0, y0+24) of img (reading 0 for any row past
// img.Height) into the 3-byte-per-column layout: byte[3x+c] packs pixels
// (x, y0+8c) .. (x, y0+8c+7), MSB first. The backing buffer is drawn from
// pool and released once the strip is copied into its framed command.
func packColumnStrip(img *PixelImage, y0 int, pool *Pool) []byte {
	out := pool.Acquire(3 * img.Width)
	for x := 0; x < img.Width; x++ {
		for c := 0; c < 3; c++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				b |= getPixel(img, x, y0+8*c+bit) << uint(7-bit)
			}
			out[3*x+c] = b
		}
	}
	return out
}

// pixelsToColumns emits ⌈H/24⌉ column strips covering the full image.
func pixelsToColumns(img *PixelImage, pool *Pool) []ColumnStrip {
	var strips []ColumnStrip
	for y0 := 0; y0 < img.Height; y0 += columnStripRows {
		strips = append(strips, ColumnStrip{
			Data:   packColumnStrip(img, y0, pool),
			Offset: y0,
		})
	}
	if len(strips) == 0 {
		// height 0 degenerates to one empty strip so callers that always
		// expect at least one framed command still see one.
		strips = append(strips, ColumnStrip{Data: packColumnStrip(img, 0, pool), Offset: 0})
	}
	return strips
}
