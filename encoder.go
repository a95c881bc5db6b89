package escline

import (
	"github.com/rs/zerolog"
)

var validColumnCounts = map[int]bool{32: true, 35: true, 42: true, 44: true, 48: true}

// Encoder is the fluent document API of spec.md §4.I. It owns the
// composer, the active dialect, codepage state, and the accumulated
// command queue for the lifetime of one document; all are reset at the
// end of Commands()/Encode().
type Encoder struct {
	caps       Capabilities
	dialect    Dialect
	cp         *codepageClient
	candidates []string
	pool       *Pool
	logger     zerolog.Logger
	strictness Strictness

	embedded       bool
	newline        string
	imageMode      ImageMode
	compress       bool
	autoFlush      bool
	chunkSize      int
	fontLetter     byte
	activeCodepage string // "", a named codepage, or "auto"

	composer *composer
	lines    []Line

	barcodeFunc BarcodeRenderFunc
	qrFunc      QRRenderFunc

	err error
}

// New constructs an Encoder bound to a registered printer model.
func New(printerID string, opts ...Option) (*Encoder, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	caps, err := lookupCapabilities(printerID)
	if err != nil {
		return nil, err
	}

	columns := cfg.columns
	if columns == 0 {
		columns = caps.columnsForFont('A')
	} else if !cfg.embedded && !validColumnCounts[columns] {
		return nil, newConfigErr("columns", columns)
	}

	dialect := dialectByName(caps.Dialect)
	if dialect == nil {
		return nil, newConfigErr("dialect", caps.Dialect)
	}

	newline := caps.Newline
	if cfg.newlineSet {
		newline = cfg.newline
	}
	imageMode := caps.ImageMode
	if cfg.imageMode != nil {
		imageMode = *cfg.imageMode
	}
	compress := caps.ImageCompression
	if cfg.compression != nil {
		compress = *cfg.compression && caps.ImageCompression
	}
	autoFlush := caps.AutoFlush
	if cfg.autoFlush != nil {
		autoFlush = *cfg.autoFlush
	}
	pool := cfg.pool
	if pool == nil {
		pool = NewPool()
	}
	if cfg.chunkSize < 1 {
		return nil, newConfigErr("chunkSize", cfg.chunkSize)
	}
	candidates, ok := codepageMaps[caps.CodepageMap]
	if !ok {
		return nil, newConfigErr("codepageMap", caps.CodepageMap)
	}

	e := &Encoder{
		caps:        caps,
		dialect:     dialect,
		cp:          newCodepageClient(),
		candidates:  candidates,
		pool:        pool,
		logger:      cfg.logger,
		strictness:  cfg.strictness,
		embedded:    cfg.embedded,
		newline:     newline,
		imageMode:   imageMode,
		compress:    compress,
		autoFlush:   autoFlush,
		chunkSize:   cfg.chunkSize,
		fontLetter:  'A',
		barcodeFunc: cfg.barcodeFunc,
		qrFunc:      cfg.qrFunc,
	}
	if len(candidates) > 0 {
		e.activeCodepage = candidates[0]
	}
	if e.barcodeFunc == nil {
		e.barcodeFunc = defaultBarcodeRenderer
	}
	if e.qrFunc == nil {
		e.qrFunc = defaultQRRenderer
	}
	e.composer = newComposer(columns, cfg.embedded, e.onLine)
	return e, nil
}

func (e *Encoder) onLine(l Line) {
	e.lines = append(e.lines, l)
}

// newEmbedded returns a nested encoder sharing this encoder's dialect,
// codepage client, pool, and rendering hooks, sized to columns, used by
// table/box to compose cell/body content (spec.md §4.I "table"/"box").
func (e *Encoder) newEmbedded(columns int) *Encoder {
	sub := &Encoder{
		caps:        e.caps,
		dialect:     e.dialect,
		cp:          e.cp,
		candidates:  e.candidates,
		pool:        e.pool,
		logger:      e.logger,
		strictness:  e.strictness,
		embedded:    true,
		newline:     e.newline,
		imageMode:   e.imageMode,
		compress:    e.compress,
		autoFlush:   false,
		chunkSize:   e.chunkSize,
		fontLetter:  e.fontLetter,
		barcodeFunc: e.barcodeFunc,
		qrFunc:      e.qrFunc,
	}
	sub.composer = newComposer(columns, true, sub.onLine)
	return sub
}

func (e *Encoder) fail(err error) *Encoder {
	if e.err == nil {
		e.err = err
	}
	return e
}

// Err returns the first fatal error recorded since construction, if any.
func (e *Encoder) Err() error { return e.err }

func (e *Encoder) requireNotEmbedded(op string) bool {
	if e.embedded {
		e.fail(newContextErr(op, "not permitted on an embedded encoder"))
		return false
	}
	return true
}

// Initialize queues the dialect's initialization sequence.
func (e *Encoder) Initialize() *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("initialize") {
		return e
	}
	e.composer.add(CommandItem{Kind: itemInitialize, Payload: e.dialect.Initialize()}, 0)
	return e
}

// Codepage selects the codepage used for subsequent Text calls: a named
// codepage, or "auto" to segment text across the model's candidate list.
func (e *Encoder) Codepage(name string) *Encoder {
	if e.err != nil {
		return e
	}
	if name != "auto" && !e.cp.supports(name) {
		return e.fail(newConfigErr("codepage", name))
	}
	e.activeCodepage = name
	return e
}

// Text word-wraps and queues s under the active codepage.
func (e *Encoder) Text(s string) *Encoder {
	if e.err != nil {
		return e
	}
	if e.activeCodepage == "auto" {
		for _, run := range e.cp.autoEncode(s, e.candidates) {
			e.composer.Text(run.Text, run.Codepage)
		}
		return e
	}
	e.composer.Text(s, e.activeCodepage)
	return e
}

// Line queues s followed by a forced newline.
func (e *Encoder) Line(s string) *Encoder {
	e.Text(s)
	return e.Newline(1)
}

// Newline forces n flushes of the current line.
func (e *Encoder) Newline(n int) *Encoder {
	if e.err != nil {
		return e
	}
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		e.composer.Flush(fetchOptions{ForceNewline: true})
	}
	return e
}

func (e *Encoder) Bold(on bool) *Encoder {
	if e.err == nil {
		e.composer.style.SetBold(on)
	}
	return e
}

func (e *Encoder) Italic(on bool) *Encoder {
	if e.err == nil {
		e.composer.style.SetItalic(on)
	}
	return e
}

func (e *Encoder) Underline(weight byte) *Encoder {
	if e.err == nil {
		e.composer.style.SetUnderline(weight)
	}
	return e
}

func (e *Encoder) Invert(on bool) *Encoder {
	if e.err == nil {
		e.composer.style.SetInvert(on)
	}
	return e
}

func (e *Encoder) Width(w byte) *Encoder {
	if e.err != nil {
		return e
	}
	if w < 1 || w > 8 {
		return e.fail(newValidationErr("width", "must be in [1,8]"))
	}
	e.composer.style.SetWidth(w)
	return e
}

func (e *Encoder) Height(h byte) *Encoder {
	if e.err != nil {
		return e
	}
	if h < 1 || h > 8 {
		return e.fail(newValidationErr("height", "must be in [1,8]"))
	}
	e.composer.style.SetHeight(h)
	return e
}

func (e *Encoder) Size(w, h byte) *Encoder {
	return e.Width(w).Height(h)
}

// Font changes the active font, rejected mid-line and when embedded; the
// column budget is rescaled proportionally to font-X/font-A columns.
func (e *Encoder) Font(letter byte) *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("font change") {
		return e
	}
	if e.composer.Cursor() > 0 {
		return e.fail(newContextErr("font change", "mid-line"))
	}
	fontCur := e.caps.columnsForFont(e.fontLetter)
	fontX := e.caps.columnsForFont(letter)
	if fontCur > 0 {
		e.composer.SetColumns(e.composer.columns * fontX / fontCur)
	}
	e.fontLetter = letter
	e.composer.add(CommandItem{Kind: itemFont, Payload: e.dialect.Font(letter)}, 0)
	return e
}

// Align queues a layout-only alignment change, per spec.md §4.H.
func (e *Encoder) Align(value byte) *Encoder {
	if e.err == nil {
		e.composer.Align(value)
	}
	return e
}

// Raw queues an opaque byte payload; it takes up no cells of the line's
// column budget.
func (e *Encoder) Raw(b []byte) *Encoder {
	if e.err == nil {
		e.composer.Raw(b, 0)
	}
	return e
}

// Cut queues the dialect's cut sequence; disallowed when embedded.
func (e *Encoder) Cut(kind byte) *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("cut") {
		return e
	}
	if e.composer.Cursor() > 0 {
		e.composer.Flush(fetchOptions{ForceFlush: true})
	}
	e.composer.add(CommandItem{Kind: itemCut, Payload: e.dialect.Cut(kind)}, 0)
	return e
}

// Pulse queues a cash-drawer pulse; disallowed when embedded.
func (e *Encoder) Pulse(device, onTime, offTime byte) *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("pulse") {
		return e
	}
	e.composer.add(CommandItem{Kind: itemPulse, Payload: e.dialect.Pulse(device, onTime, offTime)}, 0)
	return e
}
