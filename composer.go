package escline

import (
	"strings"
	"unicode/utf8"
)

// fetchOptions controls flush/fetch behavior (spec.md §4.H).
type fetchOptions struct {
	ForceNewline    bool
	ForceFlush      bool
	IgnoreAlignment bool
}

// composer accumulates mixed text/style/raw/space/align items into lines,
// applies alignment padding, merges adjacent compatible text items, and
// flushes finished lines to a callback. It is the line composition engine
// of spec.md §4.H.
type composer struct {
	cursor    int
	columns   int
	embedded  bool
	alignment byte

	buffer []CommandItem
	style  *StyleTracker

	storedStyle []styleDelta // style delta to reopen at the start of the next line

	onLine func(Line)
}

func newComposer(columns int, embedded bool, onLine func(Line)) *composer {
	c := &composer{columns: columns, embedded: embedded, alignment: Left, onLine: onLine}
	c.style = newStyleTracker(c)
	return c
}

// onStyleDelta implements styleSink: the style tracker calls straight back
// into the composer instead of through a captured closure (spec.md §9's
// redesign note on the style-callback pattern).
func (c *composer) onStyleDelta(d styleDelta) {
	c.add(CommandItem{Kind: itemStyle, Style: d}, 0)
}

// Text word-wraps value against the remaining column budget (indent =
// current cursor) and adds the wrapped lines; every line but the last is
// flushed immediately (spec.md §4.H "text").
func (c *composer) Text(value, codepage string) {
	width := int(c.style.Current().Width)
	lines := wrap(value, wrapOptions{Columns: c.columns, Width: width, Indent: c.cursor})
	for i, l := range lines {
		cellLen := utf8.RuneCountInString(l) * width
		item := CommandItem{Kind: itemText, Text: l, Codepage: codepage, Len: cellLen}
		c.add(item, cellLen)
		if i != len(lines)-1 {
			c.Flush(fetchOptions{})
		}
	}
}

// Space adds a space item of size n and advances the cursor by n.
func (c *composer) Space(n int) {
	c.add(CommandItem{Kind: itemSpace, Len: n}, n)
}

// Raw adds an opaque payload, advancing the cursor by logicalLen.
func (c *composer) Raw(b []byte, logicalLen int) {
	c.add(CommandItem{Kind: itemRaw, Payload: b, Len: logicalLen}, logicalLen)
}

// Align queues a layout-only alignment change (spec.md §4.H "fetch").
func (c *composer) Align(value byte) {
	c.add(CommandItem{Kind: itemAlign, Style: styleDelta{Byte: value}}, 0)
}

// AlignRaw adds an align item carrying an already-framed dialect payload;
// unlike Align, it stays in-line rather than being treated as layout-only.
func (c *composer) AlignRaw(value byte, payload []byte) {
	c.add(CommandItem{Kind: itemAlign, Style: styleDelta{Byte: value}, Payload: payload}, 0)
}

// add appends item to the buffer, flushing first if it would overflow the
// column budget (spec.md §4.H "add").
func (c *composer) add(item CommandItem, length int) {
	if length+c.cursor > c.columns {
		c.Flush(fetchOptions{})
	}
	c.buffer = append(c.buffer, item)
	c.cursor += length
}

// End forces the cursor to the column budget so the next add flushes.
func (c *composer) End() {
	c.cursor = c.columns
}

// Cursor returns the current column position.
func (c *composer) Cursor() int { return c.cursor }

// SetColumns rescales the column budget, used when a font change alters
// the characters-per-line available (spec.md §4.I).
func (c *composer) SetColumns(n int) { c.columns = n }

// Alignment returns the alignment that would apply to the line currently
// being built, used by operations (barcode/qr/pdf417/image) that need to
// bracket themselves with the dialect's native alignment command rather
// than space padding (spec.md §4.I: "sets/resets alignment around the
// barcode").
func (c *composer) Alignment() byte { return c.alignment }

// Flush retrieves the current line via fetch and emits it to onLine.
func (c *composer) Flush(opt fetchOptions) {
	line, ok := c.fetch(opt)
	if !ok {
		return
	}
	c.onLine(line)
}

func (c *composer) fetch(opt fetchOptions) (Line, bool) {
	// Nothing pending: a bare ForceFlush (e.g. from an operation that
	// always flushes before framing itself) is a no-op, but ForceNewline
	// is a deliberate request for a blank line and still produces one.
	if c.cursor == 0 && len(c.buffer) == 0 && !opt.ForceNewline {
		return Line{}, false
	}

	height := lineHeight(c.buffer)

	currentAlign, nextAlign, hadAlign := resolveAlignment(c.buffer, c.alignment)
	buf := stripLayoutAligns(c.buffer)
	buf = mergeTextItems(buf)
	buf = mergeSizeStyles(buf)

	prefix := deltasToItems(c.storedStyle)
	suffix := deltasToItems(c.style.store())

	out := assembleLine(buf, prefix, suffix, currentAlign, c.columns, c.cursor, c.embedded, opt.IgnoreAlignment)

	if len(out) == 0 && opt.ForceNewline {
		out = []CommandItem{{Kind: itemEmpty}}
	}

	if hadAlign {
		c.alignment = nextAlign
	}
	c.storedStyle = c.style.restore()
	c.cursor = 0
	c.buffer = nil

	return Line{Items: out, Height: height}, true
}

// resolveAlignment implements spec.md §4.H's align-item scanning rule: the
// last layout-only align item becomes the next line's alignment; earlier
// such items overwrite the current line's alignment.
func resolveAlignment(buf []CommandItem, carried byte) (current, next byte, had bool) {
	current = carried
	var idxs []int
	for i, it := range buf {
		if it.Kind == itemAlign && len(it.Payload) == 0 {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		return current, carried, false
	}
	next = buf[idxs[len(idxs)-1]].Style.Byte
	if len(idxs) > 1 {
		current = buf[idxs[len(idxs)-2]].Style.Byte
	}
	return current, next, true
}

func stripLayoutAligns(buf []CommandItem) []CommandItem {
	out := make([]CommandItem, 0, len(buf))
	for _, it := range buf {
		if it.Kind == itemAlign && len(it.Payload) == 0 {
			continue
		}
		out = append(out, it)
	}
	return out
}

// mergeTextItems merges adjacent text items sharing a compatible codepage
// (equal, or one unset).
func mergeTextItems(buf []CommandItem) []CommandItem {
	out := make([]CommandItem, 0, len(buf))
	for _, it := range buf {
		if it.Kind == itemText && len(out) > 0 {
			last := &out[len(out)-1]
			if last.Kind == itemText && codepageCompatible(last.Codepage, it.Codepage) {
				var b strings.Builder
				b.WriteString(last.Text)
				b.WriteString(it.Text)
				last.Text = b.String()
				last.Len += it.Len
				if last.Codepage == "" {
					last.Codepage = it.Codepage
				}
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func codepageCompatible(a, b string) bool {
	return a == b || a == "" || b == ""
}

// mergeSizeStyles merges adjacent size-style deltas, keeping the latter.
func mergeSizeStyles(buf []CommandItem) []CommandItem {
	out := make([]CommandItem, 0, len(buf))
	for _, it := range buf {
		if it.Kind == itemStyle && it.Style.Property == "size" && len(out) > 0 {
			last := &out[len(out)-1]
			if last.Kind == itemStyle && last.Style.Property == "size" {
				last.Style = it.Style
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func deltasToItems(deltas []styleDelta) []CommandItem {
	out := make([]CommandItem, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, CommandItem{Kind: itemStyle, Style: d})
	}
	return out
}

// assembleLine builds the final item list per spec.md §4.H's
// left/right/center construction rules.
func assembleLine(buf, prefix, suffix []CommandItem, align byte, columns, cursor int, embedded, ignoreAlignment bool) []CommandItem {
	leftOnly := cursor == 0 && (ignoreAlignment || !embedded)
	switch {
	case align == Right && !leftOnly:
		buf = rightTrimTrailingSpace(buf, &cursor)
		pad := columns - cursor
		if pad < 0 {
			pad = 0
		}
		out := append([]CommandItem{}, prefix...)
		if pad > 0 {
			out = append(out, CommandItem{Kind: itemSpace, Len: pad})
		}
		out = append(out, buf...)
		out = append(out, suffix...)
		return out

	case align == Center && !leftOnly:
		remaining := columns - cursor
		if remaining < 0 {
			remaining = 0
		}
		left := remaining / 2
		right := remaining - left
		out := append([]CommandItem{}, prefix...)
		if left > 0 {
			out = append(out, CommandItem{Kind: itemSpace, Len: left})
		}
		out = append(out, buf...)
		out = append(out, suffix...)
		if embedded && right > 0 {
			out = append(out, CommandItem{Kind: itemSpace, Len: right})
		}
		return out

	default: // Left, or cursor == 0 with ignoreAlignment / non-embedded
		out := append([]CommandItem{}, prefix...)
		out = append(out, buf...)
		out = append(out, suffix...)
		if embedded && (align == Left || ignoreAlignment) {
			pad := columns - cursor
			if pad > 0 {
				out = append(out, CommandItem{Kind: itemSpace, Len: pad})
			}
		}
		return out
	}
}

// rightTrimTrailingSpace strips a trailing space item, or trailing
// whitespace from a trailing text item (accounting for its width
// multiplier), adjusting cursor to match.
func rightTrimTrailingSpace(buf []CommandItem, cursor *int) []CommandItem {
	if len(buf) == 0 {
		return buf
	}
	last := buf[len(buf)-1]
	switch last.Kind {
	case itemSpace:
		*cursor -= last.Len
		return buf[:len(buf)-1]
	case itemText:
		trimmed := strings.TrimRight(last.Text, " ")
		removed := utf8.RuneCountInString(last.Text) - utf8.RuneCountInString(trimmed)
		if removed == 0 {
			return buf
		}
		widthMultiplier := 1
		if len(last.Text) > 0 {
			widthMultiplier = last.Len / utf8.RuneCountInString(last.Text)
			if widthMultiplier < 1 {
				widthMultiplier = 1
			}
		}
		out := append([]CommandItem{}, buf[:len(buf)-1]...)
		if trimmed != "" {
			newLast := last
			newLast.Text = trimmed
			newLast.Len = utf8.RuneCountInString(trimmed) * widthMultiplier
			out = append(out, newLast)
		}
		*cursor -= removed * widthMultiplier
		return out
	default:
		return buf
	}
}
