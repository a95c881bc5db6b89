package escline

// starPRNTDialect drives the StarPRNT command language — Star Micronics'
// ESC-GS-extended successor to the classic Star Line set (see starline.go).
// Byte framings are grounded on the retrieved Star driver's `star` type,
// generalized the same way escposDialect generalizes the ESC/POS driver.
type starPRNTDialect struct{}

func newStarPRNTDialect() *starPRNTDialect { return &starPRNTDialect{} }

func (d *starPRNTDialect) Name() string { return "starprnt" }

func (d *starPRNTDialect) Initialize() []byte {
	return []byte{ESC, '@', 0x18}
}

func (d *starPRNTDialect) Font(letter byte) []byte {
	var id byte
	switch letter {
	case 'B':
		id = 1
	case 'C':
		id = 2
	default:
		id = 0
	}
	return []byte{ESC, 0x1E, 'F', id}
}

func (d *starPRNTDialect) Align(value byte) []byte {
	return []byte{ESC, GS, 'a', minByte(value, 2)}
}

func (d *starPRNTDialect) Bold(on bool) []byte {
	if on {
		return []byte{ESC, 'E'}
	}
	return []byte{ESC, 'F'}
}

// Italic is empty: StarPRNT has no italic capability (spec.md §4.D).
func (d *starPRNTDialect) Italic(bool) []byte { return nil }

func (d *starPRNTDialect) Underline(weight byte) []byte {
	return []byte{ESC, '-', minByte(weight, 1)}
}

func (d *starPRNTDialect) Invert(on bool) []byte {
	if on {
		return []byte{ESC, '5'}
	}
	return []byte{ESC, '4'}
}

func (d *starPRNTDialect) Size(width, height byte) []byte {
	h := clampByte(height, 1, 8) - 1
	w := clampByte(width, 1, 8) - 1
	return []byte{ESC, 'i', h, w}
}

func (d *starPRNTDialect) Codepage(id byte) []byte {
	return []byte{ESC, GS, 't', id}
}

func (d *starPRNTDialect) Cut(kind byte) []byte {
	return []byte{ESC, 'd', minByte(kind, 1)}
}

// Pulse has no device byte: unlike ESC/POS, StarPRNT's cash-drawer kick
// addresses a single fixed connector (spec.md §4.D).
func (d *starPRNTDialect) Pulse(_, onTime, offTime byte) []byte {
	on := minByte(onTime/10, 127)
	off := minByte(offTime/10, 127)
	return []byte{ESC, 0x07, on, off, 0x07, 0x1A}
}

func (d *starPRNTDialect) Flush() []byte {
	return []byte{ESC, GS, 'P', '0', ESC, GS, 'P', '1'}
}

// starBarcodeType maps the shared symbology constants to StarPRNT's ASCII
// type identifiers, following the retrieved Star driver's `barcodeType`
// lookup table.
var starBarcodeType = [14]byte{'1', '0', '2', '3', '4', '7', '6', '5', '8', '9', 'A', 'B', 'C', 'D'}

func (d *starPRNTDialect) Barcode1D(symbology byte, value string, hri HRIOptions) []byte {
	id := starBarcodeType[Code39]
	if int(symbology) < len(starBarcodeType) {
		id = starBarcodeType[symbology]
	}
	pos := byte(1)
	if hri.Position > 1 {
		pos = 2
	}
	out := make([]byte, 0, len(value)+8)
	out = append(out, ESC, 'b', id, pos, maxByte(minByte(hri.Font, 9), 1), 100)
	out = append(out, value...)
	out = append(out, RS)
	return out
}

func (d *starPRNTDialect) QRCode(value string, size, correctionLevel byte) []byte {
	l := len(value)
	if l == 0 {
		return nil
	}
	out := make([]byte, 0, l+16)
	out = append(out, ESC, GS, 'y', 'S', '2', maxByte(minByte(size, 8), 1))
	out = append(out, ESC, GS, 'y', 'S', '1', minByte(correctionLevel, 3))
	h, w := byte(l), byte(l>>8)
	out = append(out, ESC, GS, 'y', 'D', '1', 0, h, w)
	out = append(out, value...)
	out = append(out, ESC, GS, 'y', 'P')
	return out
}

// PDF417 has no native StarPRNT command in the retrieved corpus; the facade
// falls back to a barcode symbology when the printer capability declares
// one (spec.md §4.I).
func (d *starPRNTDialect) PDF417(string, PDF417Options) []byte { return nil }

func (d *starPRNTDialect) Image(img *PixelImage, _ ImageMode, _ bool, pool *Pool) []byte {
	// StarPRNT uses column framing only, regardless of the requested mode
	// (spec.md §4.D: "StarPRNT uses column only (ESC X)").
	return frameStarColumnStrips(columns(img, pool), img.Width, pool)
}
