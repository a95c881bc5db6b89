package escline

import "context"

// Commands finalizes the composer (flushing any partial line), applies
// the auto-flush policy, and returns the ordered line queue, resetting
// internal state for the next document (spec.md §4.I).
func (e *Encoder) Commands() ([]Line, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.composer.Flush(fetchOptions{ForceFlush: true})

	if e.autoFlush && !e.lastIsCutOrPulse() {
		if seq := e.dialect.Flush(); len(seq) > 0 {
			e.lines = append(e.lines, Line{Items: []CommandItem{{Kind: itemLineSpacing, Payload: seq}}, Height: 1})
		}
	}

	lines := e.lines
	e.lines = nil
	e.composer = newComposer(e.composer.columns, e.embedded, e.onLine)
	return lines, nil
}

func (e *Encoder) lastIsCutOrPulse() bool {
	if len(e.lines) == 0 {
		return false
	}
	items := e.lines[len(e.lines)-1].Items
	if len(items) == 0 {
		return false
	}
	k := items[len(items)-1].Kind
	return k == itemCut || k == itemPulse
}

// Encode reduces the command queue into a contiguous byte buffer
// (spec.md §4.I "encode(format=array)").
func (e *Encoder) Encode() ([]byte, error) {
	lines, err := e.Commands()
	if err != nil {
		return nil, err
	}
	return e.linearize(lines), nil
}

// EncodeLines reduces the command queue into one byte buffer per line
// (spec.md §4.I "encode(format=lines)").
func (e *Encoder) EncodeLines() ([][]byte, error) {
	lines, err := e.Commands()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, 0, len(lines))
	for _, l := range lines {
		out = append(out, e.linearize([]Line{l}))
	}
	return out, nil
}

func (e *Encoder) linearize(lines []Line) []byte {
	var buf []byte
	var activeCP *byte
	for _, line := range lines {
		e.appendLineItems(&buf, line.Items, &activeCP)
		suppressNewline := len(line.Items) > 0 && line.Items[len(line.Items)-1].Kind == itemPulse
		if !suppressNewline {
			buf = append(buf, e.newline...)
		}
	}
	return buf
}

// linearizeLine renders one line's items to bytes with no trailing
// terminator, used by table/box to concatenate cell lines horizontally
// before the row's own newline is appended.
func (e *Encoder) linearizeLine(line Line) []byte {
	var buf []byte
	var activeCP *byte
	e.appendLineItems(&buf, line.Items, &activeCP)
	return buf
}

func (e *Encoder) appendLineItems(buf *[]byte, items []CommandItem, activeCP **byte) {
	for _, it := range items {
		switch it.Kind {
		case itemText:
			if it.Codepage != "" && e.cp.supports(it.Codepage) {
				id := e.cp.wireID(it.Codepage)
				if *activeCP == nil || **activeCP != id {
					*buf = append(*buf, e.dialect.Codepage(id)...)
					idCopy := id
					*activeCP = &idCopy
				}
				*buf = append(*buf, e.cp.encode(it.Text, it.Codepage)...)
			} else {
				*buf = append(*buf, it.Text...)
			}
		case itemStyle:
			*buf = append(*buf, e.translateStyle(it.Style)...)
		case itemSpace:
			for i := 0; i < it.Len; i++ {
				*buf = append(*buf, ' ')
			}
		case itemRaw, itemAlign, itemImage, itemBarcode, itemQRCode, itemPDF417,
			itemCut, itemPulse, itemFont, itemCodepage, itemInitialize, itemLineSpacing:
			*buf = append(*buf, it.Payload...)
		case itemEmpty:
			// no bytes
		}
	}
}

func (e *Encoder) translateStyle(d styleDelta) []byte {
	switch d.Property {
	case "bold":
		return e.dialect.Bold(d.Bool)
	case "italic":
		return e.dialect.Italic(d.Bool)
	case "underline":
		return e.dialect.Underline(d.Byte)
	case "invert":
		return e.dialect.Invert(d.Bool)
	case "size":
		return e.dialect.Size(d.Width, d.Height)
	default:
		return nil
	}
}

// ChunkResult is the per-chunk progress record spec.md §6 describes for
// encodeAsyncIterator.
type ChunkResult struct {
	Index      int
	Total      int
	Bytes      []byte
	BytesSent  int
	TotalBytes int
	IsLast     bool
}

// ChunkIterator is a lazy, finite sequence of byte slices of length at
// most chunkSize, produced from a fully-encoded document (spec.md §4.I
// "encodeAsyncIterator").
type ChunkIterator struct {
	data      []byte
	chunkSize int
	pos       int
	index     int
	total     int
}

// EncodeChunks encodes the document and returns an iterator over fixed
// size chunks. If chunkSize <= 0, the encoder's configured default is
// used.
func (e *Encoder) EncodeChunks(chunkSize int) (*ChunkIterator, error) {
	if chunkSize <= 0 {
		chunkSize = e.chunkSize
	}
	if chunkSize < 1 {
		return nil, newConfigErr("chunkSize", chunkSize)
	}
	data, err := e.Encode()
	if err != nil {
		return nil, err
	}
	total := (len(data) + chunkSize - 1) / chunkSize
	if len(data) == 0 {
		total = 0
	}
	return &ChunkIterator{data: data, chunkSize: chunkSize, total: total}, nil
}

// Next returns the next chunk, or ok=false when the sequence is exhausted.
func (it *ChunkIterator) Next() (ChunkResult, bool) {
	if it.pos >= len(it.data) {
		return ChunkResult{}, false
	}
	end := it.pos + it.chunkSize
	if end > len(it.data) {
		end = len(it.data)
	}
	chunk := it.data[it.pos:end]
	it.pos = end
	it.index++
	res := ChunkResult{
		Index:      it.index - 1,
		Total:      it.total,
		Bytes:      chunk,
		BytesSent:  it.pos,
		TotalBytes: len(it.data),
		IsLast:     it.pos >= len(it.data),
	}
	return res, true
}

// Stream drains the iterator into sender, calling onChunkSent (if
// non-nil) after each chunk is sent, and stopping early if ctx is
// canceled between chunks — the idiomatic Go mapping of "if an iterator
// consumer stops iterating, no further chunks are produced" (spec.md §5).
func (it *ChunkIterator) Stream(ctx context.Context, sender Sender, onChunkSent func(ChunkResult)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		chunk, ok := it.Next()
		if !ok {
			return nil
		}
		if err := sender.Send(chunk.Bytes); err != nil {
			return err
		}
		if onChunkSent != nil {
			onChunkSent(chunk)
		}
	}
}
