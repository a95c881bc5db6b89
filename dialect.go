package escline

// Dialect emits the byte sequences for one wire command language. The three
// implementations (escposDialect, starPRNTDialect, starLineDialect) share
// this contract so the facade drives any of them polymorphically, per
// spec.md §4.D's "uniform capability interface" and the redesign note in
// spec.md §9 ("polymorphism over dialects").
type Dialect interface {
	Name() string

	Initialize() []byte
	Font(letter byte) []byte
	Align(value byte) []byte
	Bold(on bool) []byte
	Italic(on bool) []byte
	Underline(weight byte) []byte
	Invert(on bool) []byte
	Size(width, height byte) []byte
	Codepage(id byte) []byte
	Cut(kind byte) []byte
	Pulse(device, onTime, offTime byte) []byte
	Flush() []byte

	// Barcode1D frames a 1D barcode using the dialect's native symbol
	// storage command, or returns nil if it has none (the facade then
	// renders the barcode through the image pipeline).
	Barcode1D(symbology byte, value string, hri HRIOptions) []byte
	// QRCode frames a QR code using the dialect's native symbol storage
	// command.
	QRCode(value string, size, correctionLevel byte) []byte
	// PDF417 frames a PDF417 symbol, or nil if the dialect has no native
	// PDF417 command (the facade then applies the fallback-symbology rule).
	PDF417(value string, opts PDF417Options) []byte

	// Image frames img through the dialect's configured mode (raster or
	// column); compression is attempted only when allowCompression is true.
	// pool backs every intermediate and frame buffer built along the way.
	Image(img *PixelImage, mode ImageMode, allowCompression bool, pool *Pool) []byte
}

// HRIOptions controls barcode human-readable-interpretation framing.
type HRIOptions struct {
	Font     byte
	Position byte
}

// PDF417Options controls PDF417 symbol framing.
type PDF417Options struct {
	Rows, Columns   byte
	ErrorLevel      byte
	RowHeight, Width byte
}

// dialectByName returns a fresh Dialect for the given name ("escpos",
// "starprnt", "starline"), or nil if unknown.
func dialectByName(name string) Dialect {
	switch name {
	case "escpos":
		return newEscposDialect()
	case "starprnt":
		return newStarPRNTDialect()
	case "starline":
		return newStarLineDialect()
	default:
		return nil
	}
}
