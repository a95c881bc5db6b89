package escline

// itemKind discriminates CommandItem variants (spec.md §3: text, style,
// raw, space, align, image, barcode, qrcode, pdf417, cut, pulse,
// initialize, font, codepage, line-spacing, empty).
type itemKind int

const (
	itemText itemKind = iota
	itemStyle
	itemRaw
	itemSpace
	itemAlign
	itemImage
	itemBarcode
	itemQRCode
	itemPDF417
	itemCut
	itemPulse
	itemInitialize
	itemFont
	itemCodepage
	itemLineSpacing
	itemEmpty
)

// CommandItem is the discriminated record emitted by dialect drivers and
// the composer (spec.md §3). Exactly the fields relevant to Kind are
// populated; Payload carries the already-framed bytes once finalized.
type CommandItem struct {
	Kind     itemKind
	Text     string
	Codepage string
	Style    styleDelta
	Len      int // logical cell width consumed (space, raw, text placeholder)
	Payload  []byte

	// set when this item carries a resolved dialect payload already
	// (image/barcode/qrcode/pdf417), so encode-time translation is a
	// pure pass-through (SPEC_FULL.md §4: "symbology/model/correction
	// level already resolved").
	Resolved bool
}

// Line is an ordered sequence of command items terminated by a newline,
// carrying a derived height (spec.md §3).
type Line struct {
	Items  []CommandItem
	Height byte
}

// lineHeight derives height = max of all size-style height values on the
// line, default 1.
func lineHeight(items []CommandItem) byte {
	h := byte(1)
	for _, it := range items {
		if it.Kind == itemStyle && it.Style.Property == "size" && it.Style.Height > h {
			h = it.Style.Height
		}
	}
	return h
}
