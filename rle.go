package escline

// maxRunLength is the longest run a single RLE control byte can encode
// (ctrl range 0x80..0xFF maps to run lengths 2..129).
const maxRunLength = 129

// maxLiteralLength is the longest literal block a single RLE control byte
// can introduce (ctrl range 0x00..0x7F maps to literal lengths 1..128).
const maxLiteralLength = 128

// RLEResult is the outcome of compressRLE: the encoded (or, if compression
// did not help, original) bytes, plus bookkeeping used to decide the wire
// mode byte for GS v 0 (m=0 uncompressed, m=1 RLE).
type RLEResult struct {
	Data           []byte
	Compressed     bool
	OriginalSize   int
	CompressedSize int
}

// Ratio returns CompressedSize/OriginalSize, or 1 for an empty input.
func (r RLEResult) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 1
	}
	return float64(r.CompressedSize) / float64(r.OriginalSize)
}

// compressRLE implements the control-byte scheme compatible with ESC/POS
// GS v 0 mode 1: a control byte >= 0x80 introduces a run — the next byte is
// repeated (ctrl-0x80)+2 times; a control byte < 0x80 introduces a literal
// block of ctrl+1 bytes. If the compressed form is not smaller than the
// input, the original bytes are returned unmodified with Compressed=false.
func compressRLE(d []byte) RLEResult {
	out := make([]byte, 0, len(d))

	i := 0
	for i < len(d) {
		full := fullRunLengthAt(d, i)
		if full >= 2 {
			take := full
			if take > maxRunLength {
				take = maxRunLength
			}
			out = append(out, 0x80+byte(take-2), d[i])
			i += take

			// A run longer than the wire format can address is capped at
			// encode time; the byte immediately after the cap is flushed as
			// its own one-byte literal rather than re-examined for a second
			// run, matching the reference encoder's "restart a new run"
			// behavior at the 129-byte boundary (spec.md §4.C.5, §8). This
			// is a known, intentionally-preserved quirk: see DESIGN.md.
			if full > take {
				out = append(out, 0x00, d[i])
				i++
			}
			continue
		}

		// Collect a literal block, stopping early if a run of >= 2 starts
		// at the next position so that run is not absorbed into a literal.
		start := i
		i++
		for i < len(d) && i-start < maxLiteralLength {
			if runLengthAt(d, i) >= 2 {
				break
			}
			i++
		}
		litLen := i - start
		out = append(out, byte(litLen-1))
		out = append(out, d[start:i]...)
	}

	if len(out) >= len(d) {
		cp := make([]byte, len(d))
		copy(cp, d)
		return RLEResult{Data: cp, Compressed: false, OriginalSize: len(d), CompressedSize: len(d)}
	}
	return RLEResult{Data: out, Compressed: true, OriginalSize: len(d), CompressedSize: len(out)}
}

// runLengthAt returns how many consecutive bytes starting at i equal d[i],
// capped at maxRunLength.
func runLengthAt(d []byte, i int) int {
	if i >= len(d) {
		return 0
	}
	v := d[i]
	n := 1
	for i+n < len(d) && d[i+n] == v && n < maxRunLength {
		n++
	}
	return n
}

// fullRunLengthAt returns how many consecutive bytes starting at i equal
// d[i], uncapped — used to detect when a run must be split across more than
// one control byte.
func fullRunLengthAt(d []byte, i int) int {
	if i >= len(d) {
		return 0
	}
	v := d[i]
	n := 1
	for i+n < len(d) && d[i+n] == v {
		n++
	}
	return n
}

// decompressRLE inverts compressRLE's control-byte scheme. Exposed for
// tests and for any caller that needs to verify a compressed payload before
// transmission.
func decompressRLE(d []byte) []byte {
	out := make([]byte, 0, len(d)*2)
	i := 0
	for i < len(d) {
		ctrl := d[i]
		i++
		if ctrl < 0x80 {
			n := int(ctrl) + 1
			out = append(out, d[i:i+n]...)
			i += n
			continue
		}
		n := int(ctrl-0x80) + 2
		b := d[i]
		i++
		for k := 0; k < n; k++ {
			out = append(out, b)
		}
	}
	return out
}
