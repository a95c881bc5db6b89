package escline

// FontSpec describes one selectable font's metrics.
type FontSpec struct {
	Columns int
	Width   int // pixel width per cell
	Height  int // pixel height per cell
}

// Capabilities is the static per-model capability record from spec.md §3.
type Capabilities struct {
	Name        string // registry id, e.g. "generic-escpos-80"
	DisplayName string

	Dialect        string // "escpos", "starprnt", "starline"
	CodepageMap    string // name of the ordered codepage candidate list
	Fonts          map[byte]FontSpec
	PixelsPerLine  int

	SupportsBarcode   bool
	BarcodeSymbologies []byte

	SupportsQR bool

	SupportsPDF417     bool
	PDF417FallbackSymb *byte // nil if no fallback

	ImageMode         ImageMode
	ImageCompression  bool

	CutterPreFeed int
	Newline       string
	AutoFlush     bool
}

// columnsForFont returns the characters-per-line for font letter, falling
// back to font A.
func (c Capabilities) columnsForFont(letter byte) int {
	if f, ok := c.Fonts[letter]; ok {
		return f.Columns
	}
	return c.Fonts['A'].Columns
}
