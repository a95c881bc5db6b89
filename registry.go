package escline

// codepageMaps names an ordered candidate list per printer family, used to
// translate a "codepage mapping name" (spec.md §3, §9) into the candidate
// order autoEncode walks. Order is preserved exactly as declared, per the
// open question in spec.md §9.
var codepageMaps = map[string][]string{
	"escpos-western": {"cp437", "cp850", "windows1252"},
	"escpos-cjk":     {"cp437", "gbk", "shiftjis", "euckr", "big5"},
	"star-western":   {"cp437", "cp858", "windows1252"},
}

// registry is the static table of printer models → capabilities, keyed by
// model id, per spec.md §4.E. It carries a representative cross-dialect
// set: generic ESC/POS thermal printers, Star mC-Print / TSP-series
// StarPRNT printers, and a legacy Star SP-series Star Line printer —
// enough to exercise every capability branch in the dialect and facade
// code (raster vs column default, PDF417 fallback, codepage map choice).
var registry = map[string]Capabilities{
	"generic-escpos-80": {
		Name:        "generic-escpos-80",
		DisplayName: "Generic ESC/POS 80mm",
		Dialect:     "escpos",
		CodepageMap: "escpos-western",
		Fonts: map[byte]FontSpec{
			'A': {Columns: 48, Width: 12, Height: 24},
			'B': {Columns: 64, Width: 9, Height: 17},
		},
		PixelsPerLine:      576,
		SupportsBarcode:    true,
		BarcodeSymbologies: []byte{UpcA, UpcE, JanEAN8, JanEAN13, Code39, Code93, Code128, ITF, NW7, GS1128},
		SupportsQR:         true,
		SupportsPDF417:     true,
		ImageMode:          ImageRaster,
		ImageCompression:   true,
		CutterPreFeed:      3,
		Newline:            "\n",
		AutoFlush:          false,
	},
	"generic-escpos-58": {
		Name:        "generic-escpos-58",
		DisplayName: "Generic ESC/POS 58mm",
		Dialect:     "escpos",
		CodepageMap: "escpos-western",
		Fonts: map[byte]FontSpec{
			'A': {Columns: 32, Width: 12, Height: 24},
			'B': {Columns: 42, Width: 9, Height: 17},
		},
		PixelsPerLine:      384,
		SupportsBarcode:    true,
		BarcodeSymbologies: []byte{UpcA, UpcE, JanEAN8, JanEAN13, Code39, ITF, NW7},
		SupportsQR:         true,
		SupportsPDF417:     false,
		PDF417FallbackSymb: func() *byte { b := byte(Code128); return &b }(),
		ImageMode:          ImageRaster,
		ImageCompression:   true,
		CutterPreFeed:      3,
		Newline:            "\n",
		AutoFlush:          false,
	},
	"generic-escpos-cjk-80": {
		Name:        "generic-escpos-cjk-80",
		DisplayName: "Generic ESC/POS 80mm (CJK)",
		Dialect:     "escpos",
		CodepageMap: "escpos-cjk",
		Fonts: map[byte]FontSpec{
			'A': {Columns: 48, Width: 12, Height: 24},
			'B': {Columns: 64, Width: 9, Height: 17},
		},
		PixelsPerLine:      576,
		SupportsBarcode:    true,
		BarcodeSymbologies: []byte{Code39, Code128, ITF},
		SupportsQR:         true,
		SupportsPDF417:     true,
		ImageMode:          ImageRaster,
		ImageCompression:   true,
		CutterPreFeed:      3,
		Newline:            "\n",
		AutoFlush:          false,
	},
	"star-mcprint3": {
		Name:        "star-mcprint3",
		DisplayName: "Star mC-Print3 (StarPRNT)",
		Dialect:     "starprnt",
		CodepageMap: "star-western",
		Fonts: map[byte]FontSpec{
			'A': {Columns: 48, Width: 12, Height: 24},
			'B': {Columns: 64, Width: 9, Height: 17},
		},
		PixelsPerLine:      576,
		SupportsBarcode:    true,
		BarcodeSymbologies: []byte{UpcA, UpcE, JanEAN8, JanEAN13, Code39, Code93, Code128, ITF, NW7, GS1128},
		SupportsQR:         true,
		SupportsPDF417:     false,
		PDF417FallbackSymb: func() *byte { b := byte(Code128); return &b }(),
		ImageMode:          ImageColumn,
		ImageCompression:   false,
		CutterPreFeed:      3,
		Newline:            "\n\r",
		AutoFlush:          true,
	},
	"star-tsp143": {
		Name:        "star-tsp143",
		DisplayName: "Star TSP143 (StarPRNT)",
		Dialect:     "starprnt",
		CodepageMap: "star-western",
		Fonts: map[byte]FontSpec{
			'A': {Columns: 48, Width: 12, Height: 24},
			'B': {Columns: 64, Width: 9, Height: 17},
		},
		PixelsPerLine:      576,
		SupportsBarcode:    true,
		BarcodeSymbologies: []byte{UpcA, UpcE, JanEAN8, JanEAN13, Code39, ITF, NW7},
		SupportsQR:         true,
		SupportsPDF417:     false,
		PDF417FallbackSymb: func() *byte { b := byte(Code39); return &b }(),
		ImageMode:          ImageColumn,
		ImageCompression:   false,
		CutterPreFeed:      3,
		Newline:            "\n\r",
		AutoFlush:          true,
	},
	"star-sp512-legacy": {
		Name:        "star-sp512-legacy",
		DisplayName: "Star SP512 (Star Line)",
		Dialect:     "starline",
		CodepageMap: "star-western",
		Fonts: map[byte]FontSpec{
			'A': {Columns: 40, Width: 12, Height: 24},
			'B': {Columns: 53, Width: 9, Height: 17},
		},
		PixelsPerLine:      480,
		SupportsBarcode:    true,
		BarcodeSymbologies: []byte{UpcA, UpcE, JanEAN8, JanEAN13, Code39, ITF, NW7},
		SupportsQR:         false,
		SupportsPDF417:     false,
		ImageMode:          ImageColumn,
		ImageCompression:   false,
		CutterPreFeed:      2,
		Newline:            "\n\r",
		AutoFlush:          false,
	},
}

// RegistryEntry is the read-only enumeration record from spec.md §6.
type RegistryEntry struct {
	ID          string
	DisplayName string
}

// RegisteredPrinters returns every known model id/display name, in a
// stable order.
func RegisteredPrinters() []RegistryEntry {
	order := []string{
		"generic-escpos-80", "generic-escpos-58", "generic-escpos-cjk-80",
		"star-mcprint3", "star-tsp143", "star-sp512-legacy",
	}
	out := make([]RegistryEntry, 0, len(order))
	for _, id := range order {
		c := registry[id]
		out = append(out, RegistryEntry{ID: c.Name, DisplayName: c.DisplayName})
	}
	return out
}

// lookupCapabilities returns the capability record for id, or a
// ConfigurationError if id is unknown (spec.md §6: "Unknown id at
// construction fails with an explicit error").
func lookupCapabilities(id string) (Capabilities, error) {
	c, ok := registry[id]
	if !ok {
		return Capabilities{}, newConfigErr("printer", id)
	}
	return c, nil
}
