package escline

// frameRasterStrip builds one ESC/POS GS v 0 command for a single raster
// strip: header `1D 76 30 m xL xH yL yH` followed by data (spec.md §4.C.6).
// m is 0 for uncompressed data, 1 for RLE mode 1. out is acquired from pool
// and handed to the caller, which owns it (escposDialect.Image copies it
// into the combined raster payload and then releases it); strip.Data (an
// intermediate pack buffer, already copied into out via data) is released
// here (spec.md §§3, 7).
func frameRasterStrip(strip RasterStrip, wb int, data []byte, compressed bool, pool *Pool) []byte {
	m := byte(0)
	if compressed {
		m = 1
	}
	out := pool.Acquire(8 + len(data))[:0]
	out = append(out, GS, 'v', '0', m)
	out = append(out, byte(wb), byte(wb>>8))
	out = append(out, byte(strip.Rows), byte(strip.Rows>>8))
	out = append(out, data...)
	pool.Release(strip.Data)
	return out
}

// frameEscposColumnStrips emits the ESC/POS column (ESC *) framing for a
// full image: one `1B 33 24` line-spacing command, one `1B 2A 21 nL nH`
// header plus 3W data bytes and a trailing line-feed per strip, then one
// `1B 32` reset. out is acquired from pool and becomes the command's
// Payload; each strip's raw pack buffer is released once copied in.
func frameEscposColumnStrips(strips []ColumnStrip, w int, pool *Pool) []byte {
	total := 3
	for _, s := range strips {
		total += 5 + len(s.Data) + 1
	}
	out := pool.Acquire(total)[:0]
	out = append(out, ESC, '3', 24)
	nl, nh := byte(w), byte(w>>8)
	for _, s := range strips {
		out = append(out, ESC, '*', '!', nl, nh)
		out = append(out, s.Data...)
		out = append(out, LF)
		pool.Release(s.Data)
	}
	out = append(out, ESC, '2')
	return out
}

// frameStarColumnStrips emits the StarPRNT column (ESC X) framing: per
// strip, header `1B 58 nL nH`, then 3W data bytes, then `0A 0D`. Same
// acquire/release split as frameEscposColumnStrips.
func frameStarColumnStrips(strips []ColumnStrip, w int, pool *Pool) []byte {
	total := 0
	for _, s := range strips {
		total += 4 + len(s.Data) + 2
	}
	out := pool.Acquire(total)[:0]
	nl, nh := byte(w), byte(w>>8)
	for _, s := range strips {
		out = append(out, ESC, 'X', nl, nh)
		out = append(out, s.Data...)
		out = append(out, LF, CR)
		pool.Release(s.Data)
	}
	return out
}
