package escline

// escposDialect drives the ESC/POS command language. Byte framings are
// grounded on the retrieved ESC/POS driver's `escape` type, generalized to
// the command-item/option shape this module uses instead of a direct
// io.Writer call per operation.
type escposDialect struct{}

func newEscposDialect() *escposDialect { return &escposDialect{} }

func (d *escposDialect) Name() string { return "escpos" }

func (d *escposDialect) Initialize() []byte {
	return []byte{ESC, '@', FS, '.', ESC, 'M', 0}
}

func (d *escposDialect) Font(letter byte) []byte {
	return []byte{ESC, 'M', letter - 'A'}
}

func (d *escposDialect) Align(value byte) []byte {
	return []byte{ESC, 'a', minByte(value, 2)}
}

func (d *escposDialect) Bold(on bool) []byte {
	if on {
		return []byte{ESC, 'E', 1}
	}
	return []byte{ESC, 'E', 0}
}

func (d *escposDialect) Italic(on bool) []byte {
	if on {
		return []byte{ESC, '4', 1}
	}
	return []byte{ESC, '4', 0}
}

func (d *escposDialect) Underline(weight byte) []byte {
	return []byte{ESC, '-', minByte(weight, 2)}
}

func (d *escposDialect) Invert(on bool) []byte {
	if on {
		return []byte{GS, 'B', 1}
	}
	return []byte{GS, 'B', 0}
}

func (d *escposDialect) Size(width, height byte) []byte {
	w := clampByte(width, 1, 8) - 1
	h := clampByte(height, 1, 8) - 1
	return []byte{GS, '!', (h | (w << 4))}
}

func (d *escposDialect) Codepage(id byte) []byte {
	return []byte{ESC, 't', id}
}

func (d *escposDialect) Cut(kind byte) []byte {
	return []byte{GS, 'V', minByte(kind, 1)}
}

func (d *escposDialect) Pulse(device, onTime, offTime byte) []byte {
	on := minByte(onTime, 255) / 2
	off := minByte(offTime, 255) / 2
	return []byte{ESC, 'p', minByte(device, 1), on, off}
}

func (d *escposDialect) Flush() []byte { return nil }

// escposFuncA holds the classic single-byte symbol type for the symbologies
// ESC/POS originally shipped with (GS k m d1..dk NUL).
var escposFuncA = map[byte]byte{
	UpcA: 0, UpcE: 1, JanEAN13: 2, JanEAN8: 3, Code39: 4, ITF: 5, NW7: 6,
}

// escposFuncB holds the extended symbol type byte (GS k m n d1..dn), used
// for symbologies with no function-A predecessor.
var escposFuncB = map[byte]byte{
	UpcA: 65, UpcE: 66, JanEAN13: 67, JanEAN8: 68, Code39: 69, ITF: 70,
	NW7: 71, Code93: 72, Code128: 73, GS1128: 74, GS1Omnidirectional: 75,
	GS1Truncated: 76, GS1Limited: 77, GS1Expanded: 78,
}

func (d *escposDialect) Barcode1D(symbology byte, value string, hri HRIOptions) []byte {
	out := make([]byte, 0, len(value)+16)
	out = append(out, GS, 'f', minByte(hri.Font, 1))
	out = append(out, GS, 'H', minByte(hri.Position, 3))

	if id, ok := escposFuncA[symbology]; ok {
		out = append(out, GS, 'k', id)
		out = append(out, value...)
		out = append(out, NUL)
		return out
	}
	id, ok := escposFuncB[symbology]
	if !ok {
		id = escposFuncB[Code39]
	}
	out = append(out, GS, 'k', id, byte(len(value)))
	out = append(out, value...)
	return out
}

func (d *escposDialect) QRCode(value string, size, correctionLevel byte) []byte {
	l := len(value)
	if l == 0 {
		return nil
	}
	out := make([]byte, 0, l+24)
	out = append(out, GS, '(', 'k', 3, 0, 49, 67, maxByte(minByte(size, 16), 1))
	out = append(out, GS, '(', 'k', 3, 0, 49, 69, correctionLevel+48)

	pl := l + 3
	out = append(out, GS, '(', 'k', byte(pl), byte(pl>>8), 49, 80, 48)
	out = append(out, value...)
	out = append(out, GS, '(', 'k', 3, 0, 49, 81, 48)
	return out
}

func (d *escposDialect) PDF417(value string, opts PDF417Options) []byte {
	l := len(value)
	if l == 0 {
		return nil
	}
	out := make([]byte, 0, l+32)
	out = append(out, GS, '(', 'k', 3, 0, 48, 65, maxByte(opts.Rows, 0))
	out = append(out, GS, '(', 'k', 3, 0, 48, 66, maxByte(opts.Columns, 0))
	out = append(out, GS, '(', 'k', 3, 0, 48, 67, maxByte(opts.RowHeight, 2))
	out = append(out, GS, '(', 'k', 3, 0, 48, 68, maxByte(opts.Width, 2))
	out = append(out, GS, '(', 'k', 4, 0, 48, 69, 48, minByte(opts.ErrorLevel, 8))

	pl := l + 3
	out = append(out, GS, '(', 'k', byte(pl), byte(pl>>8), 48, 80, 48)
	out = append(out, value...)
	out = append(out, GS, '(', 'k', 3, 0, 48, 81, 48)
	return out
}

func (d *escposDialect) Image(img *PixelImage, mode ImageMode, allowCompression bool, pool *Pool) []byte {
	if mode == ImageColumn {
		return frameEscposColumnStrips(columns(img, pool), img.Width, pool)
	}

	wb := widthBytes(img.Width)
	out := make([]byte, 0)
	for _, strip := range rasterStrips(img, maxStripRows, pool) {
		data := strip.Data
		compressed := false
		if allowCompression {
			res := compressRLE(strip.Data)
			if res.Compressed {
				data = res.Data
				compressed = true
			}
		}
		framed := frameRasterStrip(strip, wb, data, compressed, pool)
		out = append(out, framed...)
		pool.Release(framed)
	}
	return out
}
