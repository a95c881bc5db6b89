package escline

import (
	"image"

	"github.com/rs/zerolog"
)

// Alignment values, shared by Align and the composer's alignment state.
const (
	Left = iota
	Center
	Right
)

// Underline weights.
const (
	NoUnderline = iota
	OneDotUnderline
	TwoDotUnderline
)

// HRI (human readable interpretation) font choices for 1D barcodes.
const (
	HRIFontA = iota // 12 x 24
	HRIFontB        // 9 x 17
)

// HRI print position relative to the barcode.
const (
	HRINotPrinted = iota
	HRIAbove
	HRIBelow
	HRIAboveAndBelow
)

// 1D barcode symbologies, in the order enumerated by spec.md §4.I.
const (
	UpcA = iota
	UpcE
	JanEAN8
	JanEAN13
	Code39
	Code93
	Code128
	ITF
	NW7
	GS1128
	GS1Omnidirectional
	GS1Truncated
	GS1Limited
	GS1Expanded
)

// QR / PDF417 error-correction levels.
const (
	L = iota // recovers 7%
	M        // recovers 15%
	Q        // recovers 25%
	H        // recovers 30%
)

// Cash drawer pin selection for Pulse.
const (
	DrawerPin2 = iota
	DrawerPin5
)

// ImageMode selects between row-major raster framing and legacy 24-dot
// column framing for the image pipeline.
type ImageMode int

const (
	ImageRaster ImageMode = iota
	ImageColumn
)

// BarcodeRenderFunc renders a 1D barcode to pixels when a dialect has no
// native symbol-storage command. It is not used for dialects that frame
// the barcode natively. See WithBarcodeRenderer.
type BarcodeRenderFunc func(symbology byte, value string) (image.Image, error)

// QRRenderFunc renders a QR code to pixels. See WithQRRenderer.
type QRRenderFunc func(value string, size, correctionLevel byte) (image.Image, error)

// encoderConfig accumulates Option values before New constructs an Encoder.
type encoderConfig struct {
	columns     int
	embedded    bool
	strictness  Strictness
	logger      zerolog.Logger
	pool        *Pool
	newline     string
	newlineSet  bool
	autoFlush   *bool
	imageMode   *ImageMode
	compression *bool
	barcodeFunc BarcodeRenderFunc
	qrFunc      QRRenderFunc
	chunkSize   int
}

func defaultConfig() *encoderConfig {
	return &encoderConfig{
		logger:    zerolog.Nop(),
		chunkSize: 512,
	}
}

// Option configures an Encoder at construction time.
type Option interface {
	apply(*encoderConfig)
}

type optionFunc func(*encoderConfig)

func (f optionFunc) apply(c *encoderConfig) { f(c) }

// WithLogger overrides the encoder's structured logger. The default is a
// no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return optionFunc(func(c *encoderConfig) { c.logger = l })
}

// WithStrictness controls whether a CapabilityError halts the document
// (Strict) or is logged and skipped (Relaxed, the default).
func WithStrictness(s Strictness) Option {
	return optionFunc(func(c *encoderConfig) { c.strictness = s })
}

// WithPool supplies a pre-built memory pool instead of a private one.
// Pool methods are mutex-guarded; the Encoder itself is not safe for
// concurrent use.
func WithPool(p *Pool) Option {
	return optionFunc(func(c *encoderConfig) { c.pool = p })
}

// WithColumns overrides the printer model's default characters-per-line.
// Only valid values per spec.md §7 are accepted for non-embedded encoders.
func WithColumns(n int) Option {
	return optionFunc(func(c *encoderConfig) { c.columns = n })
}

// WithNewline overrides the model's default line terminator.
func WithNewline(s string) Option {
	return optionFunc(func(c *encoderConfig) { c.newline = s; c.newlineSet = true })
}

// WithAutoFlush overrides the dialect's default auto-flush policy.
func WithAutoFlush(b bool) Option {
	return optionFunc(func(c *encoderConfig) { c.autoFlush = &b })
}

// WithImageMode overrides the model's default image framing.
func WithImageMode(m ImageMode) Option {
	return optionFunc(func(c *encoderConfig) { c.imageMode = &m })
}

// WithCompression overrides whether RLE compression is attempted for
// raster images (only meaningful when the model capability allows it).
func WithCompression(b bool) Option {
	return optionFunc(func(c *encoderConfig) { c.compression = &b })
}

// WithBarcodeRenderer overrides the default boombuler/barcode-backed
// renderer used to rasterize 1D barcodes for dialects/cases that render
// through the image pipeline.
func WithBarcodeRenderer(f BarcodeRenderFunc) Option {
	return optionFunc(func(c *encoderConfig) { c.barcodeFunc = f })
}

// WithQRRenderer overrides the default boombuler/barcode-backed renderer
// used to rasterize QR codes for dialects that render through the image
// pipeline.
func WithQRRenderer(f QRRenderFunc) Option {
	return optionFunc(func(c *encoderConfig) { c.qrFunc = f })
}

// WithChunkSize sets the default chunk size used by EncodeChunks when the
// caller does not pass one explicitly. Must be positive.
func WithChunkSize(n int) Option {
	return optionFunc(func(c *encoderConfig) { c.chunkSize = n })
}

func embedded() Option {
	return optionFunc(func(c *encoderConfig) { c.embedded = true })
}
