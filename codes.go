package escline

import (
	"image"
	"image/color"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/code93"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/qr"
)

// defaultBarcodeRenderer rasterizes symbology/value via boombuler/barcode,
// falling back to Code128 for symbologies it has no direct encoder for
// (UPC/GS1 variants share EAN-13/Code128 wire formats closely enough that
// a dialect's native Barcode1D should be preferred; this renderer only
// backs the cases that route through the image pipeline).
func defaultBarcodeRenderer(symbology byte, value string) (image.Image, error) {
	var bc barcode.Barcode
	var err error

	switch symbology {
	case JanEAN13, JanEAN8, UpcA:
		bc, err = ean.Encode(value)
	case Code39:
		bc, err = code39.Encode(value, false, true)
	case Code93:
		bc, err = code93.Encode(value, true, true)
	default:
		bc, err = code128.Encode(value)
	}
	if err != nil {
		return nil, newValidationErr("barcode value", err.Error())
	}
	return bc, nil
}

// defaultQRRenderer rasterizes value as a QR symbol via boombuler/barcode,
// scaling the base matrix to size x size modules.
func defaultQRRenderer(value string, size, correctionLevel byte) (image.Image, error) {
	level := qrLevel(correctionLevel)
	bc, err := qr.Encode(value, level, qr.Auto)
	if err != nil {
		return nil, newValidationErr("qr value", err.Error())
	}
	px := int(size) * 8
	if px < bc.Bounds().Dx() {
		px = bc.Bounds().Dx()
	}
	scaled, err := barcode.Scale(bc, px, px)
	if err != nil {
		return nil, newValidationErr("qr size", err.Error())
	}
	return scaled, nil
}

func qrLevel(correctionLevel byte) qr.ErrorCorrectionLevel {
	switch correctionLevel {
	case L:
		return qr.L
	case M:
		return qr.M
	case Q:
		return qr.Q
	case H:
		return qr.H
	default:
		return qr.M
	}
}

// imageFromRendered converts an image.Image (as returned by a
// BarcodeRenderFunc/QRRenderFunc) into the PixelImage raw-pixel shape the
// dialect framers consume, padding width up to a multiple of 8.
func imageFromRendered(img image.Image) *PixelImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	padded := w
	if padded%8 != 0 {
		padded += 8 - padded%8
	}
	out := &PixelImage{Width: padded, Height: h, Data: make([]byte, padded*h*4)}
	white := color.Gray{Y: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < padded; x++ {
			var c color.Color = white
			if x < w {
				c = img.At(b.Min.X+x, b.Min.Y+y)
			}
			gr := color.GrayModel.Convert(c).(color.Gray)
			off := (y*padded + x) * 4
			out.Data[off] = gr.Y
			out.Data[off+1] = gr.Y
			out.Data[off+2] = gr.Y
			out.Data[off+3] = 255
		}
	}
	return out
}

// Barcode1D queues a 1D barcode. When the active dialect has a native
// symbol-storage command it is framed directly; printers routed through the
// image pipeline fall back to barcodeFunc (default: boombuler/barcode).
func (e *Encoder) Barcode1D(symbology byte, value string, hri HRIOptions) *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("barcode") {
		return e
	}
	if !e.capabilityCheck(e.caps.SupportsBarcode, "barcode") {
		return e
	}
	if !e.symbologySupported(symbology) {
		return e
	}
	if payload := e.dialect.Barcode1D(symbology, value, hri); payload != nil {
		e.emitAligned(CommandItem{Kind: itemBarcode, Payload: payload, Resolved: true})
		return e
	}
	img, err := e.barcodeFunc(symbology, value)
	if err != nil {
		return e.fail(err)
	}
	return e.imageCommand(itemBarcode, imageFromRendered(img))
}

// emitAligned forces a flush, brackets item with the dialect's native
// alignment command around the current composer alignment (spec.md §4.I:
// "barcode ... forces flush, sets/resets alignment around the barcode"),
// and flushes again so item is framed on its own line.
func (e *Encoder) emitAligned(item CommandItem) {
	e.composer.Flush(fetchOptions{ForceFlush: true})
	align := e.composer.Alignment()
	if align != Left {
		e.composer.AlignRaw(align, e.dialect.Align(align))
	}
	e.composer.add(item, 0)
	e.composer.Flush(fetchOptions{ForceFlush: true})
	if align != Left {
		e.composer.AlignRaw(Left, e.dialect.Align(Left))
	}
}

func (e *Encoder) symbologySupported(symbology byte) bool {
	for _, s := range e.caps.BarcodeSymbologies {
		if s == symbology {
			return true
		}
	}
	return e.capabilityCheck(false, "barcode symbology")
}

// QRCode queues a QR symbol using the dialect's native command when
// supported, falling back to qrFunc-rendered pixels otherwise.
func (e *Encoder) QRCode(value string, size, correctionLevel byte) *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("qr code") {
		return e
	}
	if !e.capabilityCheck(e.caps.SupportsQR, "qr code") {
		return e
	}
	if payload := e.dialect.QRCode(value, size, correctionLevel); payload != nil {
		e.emitAligned(CommandItem{Kind: itemQRCode, Payload: payload, Resolved: true})
		return e
	}
	img, err := e.qrFunc(value, size, correctionLevel)
	if err != nil {
		return e.fail(err)
	}
	return e.imageCommand(itemQRCode, imageFromRendered(img))
}

// PDF417 queues a PDF417 symbol via the dialect's native command, or the
// printer's configured fallback 1D symbology when the dialect has none
// (spec.md §7's CapabilityError / fallback-symbology rule).
func (e *Encoder) PDF417(value string, opts PDF417Options) *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("pdf417") {
		return e
	}
	if !e.capabilityCheck(e.caps.SupportsPDF417 || e.caps.PDF417FallbackSymb != nil, "pdf417") {
		return e
	}
	if payload := e.dialect.PDF417(value, opts); payload != nil {
		e.emitAligned(CommandItem{Kind: itemPDF417, Payload: payload, Resolved: true})
		return e
	}
	if e.caps.PDF417FallbackSymb == nil {
		return e.fail(newCapabilityErr(e.caps.Name, "pdf417"))
	}
	return e.Barcode1D(*e.caps.PDF417FallbackSymb, value, HRIOptions{Position: HRINotPrinted})
}

// Image queues a raster/column image. Width must be a multiple of 8 and
// match the pixel data's implied stride (spec.md §4.C's ValidationError
// cases); large images are framed on the cooperative-yield path
// transparently via the dialect's Image method.
func (e *Encoder) Image(img *PixelImage) *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("image") {
		return e
	}
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return e.fail(newValidationErr("image", "width and height must be positive"))
	}
	if img.Width%8 != 0 {
		return e.fail(newValidationErr("image width", "must be a multiple of 8"))
	}
	if len(img.Data) < img.Width*img.Height*4 {
		return e.fail(newValidationErr("image data", "shorter than width*height*4"))
	}
	return e.imageCommand(itemImage, img)
}

func (e *Encoder) imageCommand(kind itemKind, img *PixelImage) *Encoder {
	payload := e.dialect.Image(img, e.imageMode, e.compress, e.pool)
	e.emitAligned(CommandItem{Kind: kind, Payload: payload, Resolved: true})
	return e
}

// capabilityCheck applies the configured Strictness to a capability gate:
// Strict fails the encoder, Relaxed logs and reports unsupported (caller
// skips the operation).
func (e *Encoder) capabilityCheck(supported bool, capability string) bool {
	if supported {
		return true
	}
	err := newCapabilityErr(e.caps.Name, capability)
	if e.strictness == Strict {
		e.fail(err)
		return false
	}
	e.logger.Warn().Err(err).Msg("capability unsupported, skipping")
	return false
}
