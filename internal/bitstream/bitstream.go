// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bitstream provides MSB-first bit-packed writing and reading
// over byte slices. Bit order is fixed MSB-first within each byte so
// that bit offsets recorded by one component are meaningful to any
// other, independent of the code table in use.
package bitstream

// Writer accumulates a bit stream. The zero value is ready for use.
type Writer struct {
	buf []byte
	// cur holds pending bits left-aligned (the first pending bit is bit
	// 63). n is the number of pending bits, always < 8 between calls.
	cur  uint64
	n    uint
	bits int
}

// Append writes the low `width` bits of pattern to the stream, most
// significant bit first. width must be ≤ 32.
func (w *Writer) Append(pattern uint32, width uint) {
	if width == 0 {
		return
	}
	p := uint64(pattern) & (uint64(1)<<width - 1)
	w.cur |= p << (64 - w.n - width)
	w.n += width
	w.bits += int(width)
	for w.n >= 8 {
		w.buf = append(w.buf, byte(w.cur>>56))
		w.cur <<= 8
		w.n -= 8
	}
}

// BitLen returns the number of bits appended so far.
func (w *Writer) BitLen() int {
	return w.bits
}

// Size returns the number of bytes Finish will return.
func (w *Writer) Size() int {
	return (w.bits + 7) / 8
}

// Finish flushes any partial final byte (zero-padded) and returns the
// packed stream. The Writer must not be used after Finish.
func (w *Writer) Finish() []byte {
	if w.n > 0 {
		w.buf = append(w.buf, byte(w.cur>>56))
		w.cur = 0
		w.n = 0
	}
	return w.buf
}

// Reader reads a bit stream produced by Writer. Reads past the end of
// the underlying data yield zero bits; callers are expected to bound
// their reads using externally-known symbol counts.
type Reader struct {
	data []byte
	pos  int
}

// MakeReader returns a Reader positioned at the given bit offset.
func MakeReader(data []byte, bitOffset int) Reader {
	return Reader{data: data, pos: bitOffset}
}

// Pos returns the current bit offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total number of bits available in the stream.
func (r *Reader) Len() int {
	return len(r.data) * 8
}

// Seek repositions the reader at an absolute bit offset.
func (r *Reader) Seek(bitOffset int) {
	r.pos = bitOffset
}

// Peek returns the next `width` bits without advancing, MSB-first,
// right-aligned in the result. width must be ≤ 32. Bits beyond the end
// of the stream read as zero.
func (r *Reader) Peek(width uint) uint32 {
	base := r.pos >> 3
	shift := uint(r.pos & 7)
	var v uint64
	for i := 0; i < 5; i++ {
		v <<= 8
		if j := base + i; j < len(r.data) {
			v |= uint64(r.data[j])
		}
	}
	// v holds a 40-bit window whose first bit of interest sits `shift`
	// bits below the window's MSB.
	return uint32(v >> (40 - shift - width) & (uint64(1)<<width - 1))
}

// Skip advances the reader by `width` bits.
func (r *Reader) Skip(width uint) {
	r.pos += int(width)
}
