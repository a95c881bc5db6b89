package escline

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// codepageTable maps a named codepage to its x/text encoding and the wire
// byte a dialect writes to select it. The wire byte assignments follow the
// common ESC/POS "n" parameter for ESC t / 1B 1D 74.
var codepageTable = map[string]struct {
	enc encoding.Encoding
	id  byte
}{
	"cp437":       {charmap.CodePage437, 0},
	"cp850":       {charmap.CodePage850, 2},
	"cp858":       {charmap.CodePage858, 19},
	"cp860":       {charmap.CodePage860, 3},
	"cp863":       {charmap.CodePage863, 4},
	"cp865":       {charmap.CodePage865, 5},
	"windows1252": {charmap.Windows1252, 16},
	"windows1251": {charmap.Windows1251, 17},
	"gbk":         {simplifiedchinese.GBK, 255},
	"gb18030":     {simplifiedchinese.GB18030, 255},
	"big5":        {traditionalchinese.Big5, 255},
	"shiftjis":    {japanese.ShiftJIS, 255},
	"euckr":       {korean.EUCKR, 255},
}

// codepageClient is the concrete backing for the external "codepage
// encoding library" described in spec.md §6. It wraps golang.org/x/text
// encoders behind the supports/encode/autoEncode contract.
type codepageClient struct{}

func newCodepageClient() *codepageClient { return &codepageClient{} }

// supports reports whether name is a known codepage.
func (c *codepageClient) supports(name string) bool {
	_, ok := codepageTable[name]
	return ok
}

// wireID returns the byte a dialect writes on the wire to select name.
// Panics are never raised here; callers must check supports first.
func (c *codepageClient) wireID(name string) byte {
	return codepageTable[name].id
}

// encode converts s into bytes under the named codepage, substituting '?'
// for unmappable runes via encoding.ReplaceUnsupported, matching the
// retrieved ESC/POS driver's own encode path.
func (c *codepageClient) encode(s, name string) []byte {
	entry, ok := codepageTable[name]
	if !ok {
		return []byte(s)
	}
	out, _ := encoding.ReplaceUnsupported(entry.enc.NewEncoder()).Bytes([]byte(s))
	return out
}

// encodedRun is one maximal segment of a text run tagged with the codepage
// that will encode it.
type encodedRun struct {
	Codepage string
	Text     string
}

// autoEncode segments s into maximal runs, each tagged with the first
// candidate codepage (in declared order, per spec.md §9's open question
// resolution) that round-trips every rune in the run without loss. A run
// boundary is placed wherever the winning candidate would change. Actual
// byte encoding happens later, per text item, via encode — segmentation
// only resolves which codepage each run is written under.
func (c *codepageClient) autoEncode(s string, candidates []string) []encodedRun {
	if len(candidates) == 0 {
		return []encodedRun{{Codepage: "", Text: s}}
	}

	runes := []rune(s)
	var runs []encodedRun
	i := 0
	for i < len(runes) {
		cp := c.bestCodepage(runes[i], candidates)
		j := i + 1
		for j < len(runes) && c.bestCodepage(runes[j], candidates) == cp {
			j++
		}
		runs = append(runs, encodedRun{Codepage: cp, Text: string(runes[i:j])})
		i = j
	}
	return runs
}

// bestCodepage returns the first candidate (in order) whose round trip
// (encode then decode) reproduces r exactly, i.e. the rune is representable
// without substitution; falls back to the first candidate otherwise.
func (c *codepageClient) bestCodepage(r rune, candidates []string) string {
	for _, name := range candidates {
		entry, ok := codepageTable[name]
		if !ok {
			continue
		}
		enc, err := entry.enc.NewEncoder().Bytes([]byte(string(r)))
		if err != nil {
			continue
		}
		dec, err := entry.enc.NewDecoder().Bytes(enc)
		if err != nil {
			continue
		}
		if string(dec) == string(r) {
			return name
		}
	}
	return candidates[0]
}
