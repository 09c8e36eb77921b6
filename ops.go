// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

import "github.com/ctSkennerton/postbis/internal/crc"

// Substring returns the substring of start (1-based) and length as a
// new compressed value, clamping the window the way SQL substr does: a
// start at or before zero shifts the window left without growing it.
// A negative length fails with ErrOutOfRange.
func (s *CompressedSequence) Substring(start, length int) (*CompressedSequence, error) {
	if length < 0 {
		return nil, outOfRangeErrorf("negative substring length %d", length)
	}
	lo := start
	if lo < 1 {
		lo = 1
	}
	hi := start + length
	if hi > s.symbolCount+1 {
		hi = s.symbolCount + 1
	}
	if hi <= lo {
		return encode(nil, s.table, make([]int, s.table.NumSlots())), nil
	}
	out := make([]byte, hi-lo)
	if err := s.Decompress(out, lo-1, hi-lo); err != nil {
		return nil, err
	}
	return s.recompress(out)
}

// Reverse returns a new value whose i-th symbol is the input's
// (n-1-i)-th. Codes are variable-length, so the stream cannot be
// reversed bit-wise; the value is decoded and re-encoded.
func (s *CompressedSequence) Reverse() (*CompressedSequence, error) {
	out := make([]byte, s.symbolCount)
	if err := s.Decompress(out, 0, s.symbolCount); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return s.recompress(out)
}

// recompress encodes symbols that came out of this value's own
// decoder, under the same code table.
func (s *CompressedSequence) recompress(symbols []byte) (*CompressedSequence, error) {
	slotFreq := make([]int, s.table.NumSlots())
	for _, b := range symbols {
		slotFreq[s.table.Slot(b)]++
	}
	return encode(symbols, s.table, slotFreq), nil
}

// Hash returns a CRC32 over the decoded symbol stream. Equal sequences
// hash equally regardless of per-value swizzling.
func (s *CompressedSequence) Hash() (uint32, error) {
	d, err := s.decoderAt(0)
	if err != nil {
		return 0, err
	}
	var buf [512]byte
	var c crc.CRC
	for remaining := s.symbolCount; remaining > 0; {
		n := len(buf)
		if remaining < n {
			n = remaining
		}
		if err := d.fill(buf[:n]); err != nil {
			return 0, err
		}
		c = c.Update(buf[:n])
		remaining -= n
	}
	return c.Value(), nil
}

// Alphabet returns the distinct symbols present in the sequence, in
// the order first encountered.
func (s *CompressedSequence) Alphabet() ([]byte, error) {
	d, err := s.decoderAt(0)
	if err != nil {
		return nil, err
	}
	var seen [256]bool
	out := make([]byte, 0, s.table.NumSlots())
	for i := 0; i < s.symbolCount; i++ {
		b, err := d.next()
		if err != nil {
			return nil, err
		}
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	return out, nil
}
