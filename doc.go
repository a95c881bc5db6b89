// Package escline encodes a sequence of high-level receipt document
// operations — text, styling, tables, barcodes, images, cuts — into the
// byte-exact command stream of one of three thermal printer dialects:
// ESC/POS, StarPRNT, or Star Line.
//
// The facade type Encoder accumulates operations through a fluent API and
// produces either a single contiguous buffer (Encode) or a backpressure-aware
// sequence of fixed-size chunks (EncodeChunks, via a ChunkIterator) suitable
// for streaming over a slow link.
package escline
