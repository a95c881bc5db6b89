package escline

import (
	"strings"
	"unicode/utf8"
)

// wrapOptions parameterizes wrap per spec.md §4.F.
type wrapOptions struct {
	Columns int
	Width   int // per-character cell width multiplier
	Indent  int // cursor position before the first wrapped line
}

// wrap splits text into lines such that for every line L,
// runeCount(L)*Width + (first-line Indent) <= Columns. Splitting units are
// whitespace, soft-hyphen breaks ([^\s-]+?-\b), and explicit newlines. A
// token too long for even an empty line is cut character-wise: a partial
// prefix is kept on the current line only if at least 8 character cells
// of room remain there; the remainder is cut into maximum-width pieces.
// Trailing whitespace is stripped from every line except the last;
// explicit empty lines (from consecutive newlines) are preserved.
func wrap(text string, opt wrapOptions) []string {
	width := opt.Width
	if width < 1 {
		width = 1
	}
	maxFirst := (opt.Columns - opt.Indent) / width
	if maxFirst < 1 {
		maxFirst = 1
	}
	maxRest := opt.Columns / width
	if maxRest < 1 {
		maxRest = 1
	}

	paragraphs := strings.Split(text, "\n")
	var out []string
	for pi, para := range paragraphs {
		budget := maxRest
		if pi == 0 {
			budget = maxFirst
		}
		out = append(out, wrapParagraph(para, budget, maxRest)...)
	}
	last := paragraphs[len(paragraphs)-1]
	if trail := last[len(strings.TrimRight(last, " \t")):]; trail != "" && len(out) > 0 {
		out[len(out)-1] += trail
	}
	return out
}

// wrapUnit is one splitting unit within a paragraph: either a whole
// whitespace-delimited field, or one soft-hyphen piece of such a field.
// spaceBefore is false for a hyphen piece (it glues to the piece before it
// with no space when both land on the same line) and true for the first
// piece of every field after the first.
type wrapUnit struct {
	text        string
	spaceBefore bool
}

// hyphenSplit breaks field at soft-hyphen boundaries matching spec.md
// §4.F's `[^\s-]+?-\b`: every run of non-hyphen characters up to and
// including a hyphen is its own unit, so a long hyphenated compound can
// wrap immediately after a hyphen instead of only at whitespace.
func hyphenSplit(field string) []wrapUnit {
	parts := strings.Split(field, "-")
	if len(parts) == 1 {
		return []wrapUnit{{text: field}}
	}
	units := make([]wrapUnit, 0, len(parts))
	for i, part := range parts {
		text := part
		if i < len(parts)-1 {
			text += "-"
		}
		if text == "" {
			continue
		}
		units = append(units, wrapUnit{text: text, spaceBefore: false})
	}
	if len(units) == 0 {
		return []wrapUnit{{text: field}}
	}
	return units
}

// wrapParagraph wraps one newline-delimited paragraph. firstBudget applies
// only to the paragraph's first output line; subsequent lines use
// maxWidth.
func wrapParagraph(p string, firstBudget, maxWidth int) []string {
	if p == "" {
		return []string{""}
	}

	fields := strings.Fields(p)
	if len(fields) == 0 {
		return []string{""}
	}

	var units []wrapUnit
	for _, field := range fields {
		sub := hyphenSplit(field)
		sub[0].spaceBefore = true
		units = append(units, sub...)
	}
	units[0].spaceBefore = false

	var lines []string
	var cur []wrapUnit
	curLen := 0
	budget := firstBudget

	render := func(us []wrapUnit) string {
		var b strings.Builder
		for i, u := range us {
			if i > 0 && u.spaceBefore {
				b.WriteByte(' ')
			}
			b.WriteString(u.text)
		}
		return b.String()
	}

	flush := func() {
		lines = append(lines, render(cur))
		cur = nil
		curLen = 0
		budget = maxWidth
	}

	for _, u := range units {
		tok := u.text
		tokLen := utf8.RuneCountInString(tok)
		sep := 0
		if len(cur) > 0 && u.spaceBefore {
			sep = 1
		}

		if curLen+sep+tokLen <= budget {
			cur = append(cur, u)
			curLen += sep + tokLen
			continue
		}

		if tokLen <= budget && len(cur) == 0 {
			// token alone fits an empty line; nothing to flush.
			cur = append(cur, u)
			curLen = tokLen
			continue
		}

		if tokLen <= maxWidth {
			if len(cur) > 0 {
				flush()
			}
			cur = append(cur, wrapUnit{text: tok})
			curLen = tokLen
			continue
		}

		// Token exceeds even a full empty line: cut character-wise.
		remaining := []rune(tok)
		if len(cur) > 0 {
			room := budget - curLen - sep
			if room >= 8 {
				prefix := string(remaining[:room])
				cur = append(cur, wrapUnit{text: prefix, spaceBefore: u.spaceBefore})
				remaining = remaining[room:]
			}
			flush()
		}
		for len(remaining) > maxWidth {
			lines = append(lines, string(remaining[:maxWidth]))
			remaining = remaining[maxWidth:]
		}
		if len(remaining) > 0 {
			cur = append(cur, wrapUnit{text: string(remaining)})
			curLen = len(remaining)
		}
		budget = maxWidth
	}

	if len(cur) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
