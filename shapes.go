package escline

import "strings"

// VerticalAlign controls how a table cell's rendered lines are padded
// against its row's tallest cell.
type VerticalAlign int

const (
	Top VerticalAlign = iota
	Bottom
)

// RuleStyle selects the glyph set box/rule border drawing uses.
type RuleStyle int

const (
	RuleNone RuleStyle = iota
	RuleSingle
	RuleDouble
)

// TableOptions controls table() layout.
type TableOptions struct {
	MarginLeft    int
	MarginRight   int
	VerticalAlign VerticalAlign
}

// Table renders data through one nested (embedded) encoder per cell, sized
// to its column's width, then concatenates each row's cell lines
// horizontally — padding every cell to the tallest cell in its row per
// opt.VerticalAlign (spec.md §4.I "table").
func (e *Encoder) Table(columns []int, data [][]string, opt TableOptions) *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("table") {
		return e
	}
	for _, row := range data {
		rendered := make([][]Line, len(row))
		tallest := 1
		for i, cell := range row {
			width := cellWidth(columns, i)
			sub := e.newEmbedded(width)
			sub.Text(cell)
			lines, err := sub.Commands()
			if err != nil {
				return e.fail(err)
			}
			rendered[i] = lines
			if len(lines) > tallest {
				tallest = len(lines)
			}
		}
		for r := 0; r < tallest; r++ {
			var rowBuf []byte
			for i := range row {
				width := cellWidth(columns, i)
				rowBuf = append(rowBuf, repeatSpaces(opt.MarginLeft)...)
				rowBuf = append(rowBuf, e.cellLineBytes(rendered[i], r, tallest, width, opt.VerticalAlign)...)
				rowBuf = append(rowBuf, repeatSpaces(opt.MarginRight)...)
			}
			e.composer.Raw(rowBuf, 0)
			e.composer.Flush(fetchOptions{ForceNewline: true})
		}
	}
	return e
}

func cellWidth(columns []int, i int) int {
	if i < len(columns) {
		return columns[i]
	}
	return columns[len(columns)-1]
}

// cellLineBytes returns the bytes for a cell's r'th rendered line, or a
// blank line of the right width when the cell has fewer lines than the
// row's tallest cell (padding at the top or bottom per align).
func (e *Encoder) cellLineBytes(lines []Line, r, tallest, width int, align VerticalAlign) []byte {
	pad := tallest - len(lines)
	var idx int
	switch align {
	case Bottom:
		idx = r - pad
	default: // Top
		idx = r
	}
	if idx < 0 || idx >= len(lines) {
		return []byte(strings.Repeat(" ", width))
	}
	return e.linearizeLine(lines[idx])
}

func repeatSpaces(n int) []byte {
	if n <= 0 {
		return nil
	}
	return []byte(strings.Repeat(" ", n))
}

// RuleOptions controls rule() framing.
type RuleOptions struct {
	Style RuleStyle
	Width int
}

var ruleGlyphs = map[RuleStyle]byte{
	RuleSingle: '-',
	RuleDouble: '=',
}

// Rule queues one horizontal rule line of the given style and width.
func (e *Encoder) Rule(opt RuleOptions) *Encoder {
	if e.err != nil {
		return e
	}
	if opt.Style == RuleNone {
		return e
	}
	glyph, ok := ruleGlyphs[opt.Style]
	if !ok {
		glyph = '-'
	}
	e.composer.Text(strings.Repeat(string(glyph), opt.Width), e.activeCodepage)
	e.composer.Flush(fetchOptions{ForceNewline: true})
	return e
}

// BoxOptions controls box() framing.
type BoxOptions struct {
	Style                    RuleStyle
	Width                    int
	MarginLeft, MarginRight  int
	PaddingLeft, PaddingRight int
	Align                    byte
}

var boxBorders = map[RuleStyle]struct{ tl, tr, bl, br, h, v byte }{
	RuleSingle: {'+', '+', '+', '+', '-', '|'},
	RuleDouble: {'#', '#', '#', '#', '=', '#'},
}

// Box renders contents through a nested embedded encoder and wraps the
// result in a border, per opt.Style ("none" draws no border, only margins
// and padding), per spec.md §4.I "box".
func (e *Encoder) Box(opt BoxOptions, contents func(*Encoder)) *Encoder {
	if e.err != nil {
		return e
	}
	if !e.requireNotEmbedded("box") {
		return e
	}

	innerWidth := opt.Width - opt.PaddingLeft - opt.PaddingRight
	if _, ok := boxBorders[opt.Style]; ok {
		innerWidth -= 2
	}
	if innerWidth < 1 {
		innerWidth = 1
	}

	sub := e.newEmbedded(innerWidth)
	sub.Align(opt.Align)
	contents(sub)
	lines, err := sub.Commands()
	if err != nil {
		return e.fail(err)
	}

	marginL := repeatSpaces(opt.MarginLeft)
	marginR := repeatSpaces(opt.MarginRight)
	padL := repeatSpaces(opt.PaddingLeft)
	padR := repeatSpaces(opt.PaddingRight)

	border, hasBorder := boxBorders[opt.Style]

	if hasBorder {
		top := append([]byte{}, marginL...)
		top = append(top, border.tl)
		top = append(top, repeatByte(border.h, opt.Width-2)...)
		top = append(top, border.tr)
		top = append(top, marginR...)
		e.composer.Raw(top, 0)
		e.composer.Flush(fetchOptions{ForceNewline: true})
	}

	for _, l := range lines {
		row := append([]byte{}, marginL...)
		if hasBorder {
			row = append(row, border.v)
		}
		row = append(row, padL...)
		row = append(row, e.linearizeLine(l)...)
		row = append(row, padR...)
		if hasBorder {
			row = append(row, border.v)
		}
		row = append(row, marginR...)
		e.composer.Raw(row, 0)
		e.composer.Flush(fetchOptions{ForceNewline: true})
	}

	if hasBorder {
		bottom := append([]byte{}, marginL...)
		bottom = append(bottom, border.bl)
		bottom = append(bottom, repeatByte(border.h, opt.Width-2)...)
		bottom = append(bottom, border.br)
		bottom = append(bottom, marginR...)
		e.composer.Raw(bottom, 0)
		e.composer.Flush(fetchOptions{ForceNewline: true})
	}

	return e
}

func repeatByte(b byte, n int) []byte {
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
