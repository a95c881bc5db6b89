package escline

// starLineDialect drives the classic Star Line command set: the
// predecessor to StarPRNT, using bare ESC-prefixed forms where StarPRNT
// later adopted an ESC-GS-prefixed extended form for the same operation.
// spec.md does not tabulate Star Line; this driver is the documented
// resolution of that open question (see DESIGN.md) — derived from the
// retrieved Star driver's legacy byte forms with the ESC-GS codepage
// extension collapsed back to its bare-ESC Star Line original, mirroring
// how StarPRNT itself layers GS atop the older command set. Alignment and
// QR have no Star Line form here: Align and QRCode return nil.
type starLineDialect struct{}

func newStarLineDialect() *starLineDialect { return &starLineDialect{} }

func (d *starLineDialect) Name() string { return "starline" }

func (d *starLineDialect) Initialize() []byte {
	return []byte{ESC, '@'}
}

func (d *starLineDialect) Font(letter byte) []byte {
	// Star Line predates named fonts beyond A/B; map C to B.
	if letter == 'A' {
		return []byte{ESC, 'x', 0}
	}
	return []byte{ESC, 'x', 1}
}

// Align has no Star Line equivalent to StarPRNT's ESC GS a extension; the
// bare Star Line set only ever supported left-justified text, so this is a
// documented no-op rather than an empty sequence with side effects.
func (d *starLineDialect) Align(byte) []byte { return nil }

func (d *starLineDialect) Bold(on bool) []byte {
	if on {
		return []byte{ESC, 'E'}
	}
	return []byte{ESC, 'F'}
}

func (d *starLineDialect) Italic(bool) []byte { return nil }

func (d *starLineDialect) Underline(weight byte) []byte {
	return []byte{ESC, '-', minByte(weight, 1)}
}

func (d *starLineDialect) Invert(on bool) []byte {
	if on {
		return []byte{ESC, '5'}
	}
	return []byte{ESC, '4'}
}

func (d *starLineDialect) Size(width, height byte) []byte {
	h := clampByte(height, 1, 8) - 1
	w := clampByte(width, 1, 8) - 1
	return []byte{ESC, 'i', h, w}
}

// Codepage collapses StarPRNT's ESC GS t extension back to the bare Star
// Line form.
func (d *starLineDialect) Codepage(id byte) []byte {
	return []byte{ESC, 't', id}
}

func (d *starLineDialect) Cut(kind byte) []byte {
	return []byte{ESC, 'd', minByte(kind, 1)}
}

func (d *starLineDialect) Pulse(device, onTime, offTime byte) []byte {
	on := minByte(onTime/10, 127)
	off := minByte(offTime/10, 127)
	return []byte{ESC, BEL, minByte(device, 1), on, off}
}

// Flush is a no-op: the classic Star Line set has no page-mode concept, so
// there is no buffered-output toggle to force.
func (d *starLineDialect) Flush() []byte { return nil }

func (d *starLineDialect) Barcode1D(symbology byte, value string, hri HRIOptions) []byte {
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

// QRCode has no native Star Line command; QR symbology postdates the
// classic command set. Callers get pixel-rendered QR through the image
// pipeline instead (see codes.go).
func (d *starLineDialect) QRCode(string, byte, byte) []byte { return nil }

func (d *starLineDialect) PDF417(string, PDF417Options) []byte { return nil }

func (d *starLineDialect) Image(img *PixelImage, _ ImageMode, _ bool, pool *Pool) []byte {
	return frameStarColumnStrips(columns(img, pool), img.Width, pool)
}
