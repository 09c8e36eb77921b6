// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package postbis implements a compact on-disk representation for
// aligned amino-acid sequences together with the operations needed to
// store, retrieve, slice, compare, hash and search them without fully
// decompressing.
//
// A compressed sequence is a single contiguous blob:
//
//	offset  size            field
//	0       4               header: [symbol_count:28 | table_id:2 |
//	                                 has_index:1 | swizzled:1], little-endian
//	4       1               stride_log2      (present iff has_index)
//	5       ...             index entries    (n = ceil(symbol_count/stride))
//	                        each: [symbol_offset:uvarint][bit_offset:uvarint]
//	...     k               swizzle map      (present iff swizzled;
//	                                          k = table slot count)
//	...     ceil(bits/8)    code stream, MSB-first within each byte
//
// The substring index maps every stride-th symbol to the bit offset at
// which its code begins, making random access O(1) anchor lookup plus
// O(stride) serial decode. Values below a length threshold carry no
// index and are decoded from the start.
package postbis

import (
	"encoding/binary"

	"github.com/ctSkennerton/postbis/alphabet"
	"github.com/ctSkennerton/postbis/internal/binfmt"
	"github.com/ctSkennerton/postbis/internal/bitstream"
)

const (
	headerSize = 4

	maxSymbolCount = 1<<28 - 1

	// Substring index stride: one anchor per 64 symbols. Larger strides
	// shrink the index at the cost of more serial decode per random
	// access.
	defaultStrideLog2 = 6

	// Sequences shorter than this carry no substring index; a serial
	// decode from the start is already cheap.
	indexThreshold = 128
)

// header bit assignment within the little-endian uint32.
const (
	countBits      = 28
	countMask      = 1<<countBits - 1
	tableShift     = 28
	tableMask      = 3
	hasIndexFlag   = 1 << 30
	hasSwizzleFlag = 1 << 31
)

// indexEntry anchors symbol k*stride at the bit offset where its code
// begins.
type indexEntry struct {
	symbolOffset int
	bitOffset    int
}

// CompressedSequence is an immutable compressed aligned amino-acid
// sequence. All mutating operations (Substring, Reverse) return a new
// value.
type CompressedSequence struct {
	data        []byte
	symbolCount int
	table       *alphabet.CodeTable
	strideLog2  uint8
	index       []indexEntry
	// swizzle[slot] is the table slot whose symbol the code of slot
	// encodes in this value; nil when the value is unswizzled.
	swizzle []uint8
	// stream aliases the code-stream suffix of data.
	stream []byte
}

// FromBytes parses and validates a stored blob. The blob is retained
// by reference; the caller must not modify it afterwards.
func FromBytes(blob []byte) (*CompressedSequence, error) {
	if len(blob) < headerSize {
		return nil, corruptHeaderErrorf("blob of %d bytes is shorter than the header", len(blob))
	}
	hdr := binary.LittleEndian.Uint32(blob)
	s := &CompressedSequence{
		data:        blob,
		symbolCount: int(hdr & countMask),
	}
	table, err := alphabet.ByID(alphabet.ID(hdr >> tableShift & tableMask))
	if err != nil {
		return nil, corruptHeaderErrorf("%v", err)
	}
	s.table = table

	off := headerSize
	if hdr&hasIndexFlag != 0 {
		if off >= len(blob) {
			return nil, corruptHeaderErrorf("truncated before stride byte")
		}
		s.strideLog2 = blob[off]
		off++
		if s.strideLog2 == 0 || s.strideLog2 >= countBits {
			return nil, corruptHeaderErrorf("impossible stride 2^%d", s.strideLog2)
		}
		stride := 1 << s.strideLog2
		n := (s.symbolCount + stride - 1) / stride
		s.index = make([]indexEntry, n)
		prevBit := -1
		for k := 0; k < n; k++ {
			symOff, m := binary.Uvarint(blob[off:])
			if m <= 0 {
				return nil, corruptHeaderErrorf("truncated index entry %d", k)
			}
			off += m
			bitOff, m := binary.Uvarint(blob[off:])
			if m <= 0 {
				return nil, corruptHeaderErrorf("truncated index entry %d", k)
			}
			off += m
			if symOff != uint64(k)<<s.strideLog2 {
				return nil, corruptHeaderErrorf("index anchor %d at symbol %d, expected %d",
					k, symOff, uint64(k)<<s.strideLog2)
			}
			if int(bitOff) <= prevBit {
				return nil, corruptHeaderErrorf("index anchor %d at bit %d not past anchor %d",
					k, bitOff, prevBit)
			}
			prevBit = int(bitOff)
			s.index[k] = indexEntry{symbolOffset: int(symOff), bitOffset: int(bitOff)}
		}
	}
	if hdr&hasSwizzleFlag != 0 {
		n := table.NumSlots()
		if off+n > len(blob) {
			return nil, corruptHeaderErrorf("truncated swizzle map")
		}
		s.swizzle = blob[off : off+n]
		off += n
		var seen [256]bool
		for _, src := range s.swizzle {
			if int(src) >= n || seen[src] {
				return nil, corruptHeaderErrorf("swizzle map is not a bijection over %d slots", n)
			}
			seen[src] = true
		}
	}
	s.stream = blob[off:]
	for k := range s.index {
		if s.index[k].bitOffset > len(s.stream)*8 {
			return nil, corruptHeaderErrorf("index anchor %d at bit %d past stream end (%d bits)",
				k, s.index[k].bitOffset, len(s.stream)*8)
		}
	}
	return s, nil
}

// Bytes returns the stored blob. The caller must not modify it.
func (s *CompressedSequence) Bytes() []byte {
	return s.data
}

// assemble lays out a blob from its parts and returns the parsed value.
func assemble(
	count int, table *alphabet.CodeTable, anchors []indexEntry, swizzle []uint8, stream []byte,
) *CompressedSequence {
	hdr := uint32(count) | uint32(table.ID())<<tableShift
	size := headerSize + len(swizzle) + len(stream)
	if anchors != nil {
		hdr |= hasIndexFlag
		size += 1 + len(anchors)*2*binary.MaxVarintLen64
	}
	if swizzle != nil {
		hdr |= hasSwizzleFlag
	}
	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint32(buf, hdr)
	s := &CompressedSequence{
		symbolCount: count,
		table:       table,
		index:       anchors,
	}
	if anchors != nil {
		s.strideLog2 = defaultStrideLog2
		buf = append(buf, defaultStrideLog2)
		for _, a := range anchors {
			buf = binary.AppendUvarint(buf, uint64(a.symbolOffset))
			buf = binary.AppendUvarint(buf, uint64(a.bitOffset))
		}
	}
	if swizzle != nil {
		off := len(buf)
		buf = append(buf, swizzle...)
		s.swizzle = buf[off : off+len(swizzle)]
	}
	off := len(buf)
	buf = append(buf, stream...)
	s.stream = buf[off:]
	s.data = buf
	return s
}

// CharLength returns the number of logical symbols, gaps included.
func (s *CompressedSequence) CharLength() int {
	return s.symbolCount
}

// OctetLength returns the byte length of the stored blob.
func (s *CompressedSequence) OctetLength() int {
	return len(s.data)
}

// CompressionRatio returns the ratio of the text form's byte size to
// the blob's byte size, header and index included. Any length prefix a
// host prepends to the blob is excluded.
func (s *CompressedSequence) CompressionRatio() float64 {
	return float64(s.symbolCount) / float64(len(s.data))
}

// Modifier returns the type modifier implied by the value's code table.
func (s *CompressedSequence) Modifier() TypeModifier {
	return modifierForTable(s.table.ID())
}

// decoder streams symbols out of the code stream.
type decoder struct {
	seq *CompressedSequence
	r   bitstream.Reader
}

// decoderAt positions a decoder so that the next symbol it produces is
// the one at index from. It seeks to the greatest index anchor at or
// before from and discards the remainder serially.
func (s *CompressedSequence) decoderAt(from int) (decoder, error) {
	var sym int
	d := decoder{seq: s}
	if s.index != nil {
		// Anchors are dense at multiples of the stride, so the floor
		// lookup is a direct index.
		k := from >> s.strideLog2
		if k >= len(s.index) {
			k = len(s.index) - 1
		}
		a := s.index[k]
		sym = a.symbolOffset
		d.r = bitstream.MakeReader(s.stream, a.bitOffset)
	} else {
		d.r = bitstream.MakeReader(s.stream, 0)
	}
	for ; sym < from; sym++ {
		if _, ok := s.table.Decode(&d.r); !ok {
			return decoder{}, corruptHeaderErrorf("undecodable code at bit %d", d.r.Pos())
		}
	}
	return d, nil
}

// next decodes one symbol.
func (d *decoder) next() (byte, error) {
	slot, ok := d.seq.table.Decode(&d.r)
	if !ok {
		return 0, corruptHeaderErrorf("undecodable code at bit %d", d.r.Pos())
	}
	if d.seq.swizzle != nil {
		slot = int(d.seq.swizzle[slot])
	}
	return d.seq.table.Entry(slot).Symbol, nil
}

// fill decodes len(out) symbols into out.
func (d *decoder) fill(out []byte) error {
	for i := range out {
		b, err := d.next()
		if err != nil {
			return err
		}
		out[i] = b
	}
	return nil
}

// Describe formats the blob layout for debugging.
func (s *CompressedSequence) Describe() string {
	f := binfmt.New(s.data)
	f.Uint32("header: symbol_count=%d table=%s has_index=%t swizzled=%t",
		s.symbolCount, s.table.ID(), s.index != nil, s.swizzle != nil)
	if s.index != nil {
		f.Byte("stride_log2=%d", s.strideLog2)
		for k := range s.index {
			f.Uvarint("anchor %d: symbol %d", k, s.index[k].symbolOffset)
			f.Uvarint("anchor %d: bit %d", k, s.index[k].bitOffset)
		}
	}
	if s.swizzle != nil {
		f.HexBytesln(len(s.swizzle), "swizzle map (%d slots)", len(s.swizzle))
	}
	if f.More() {
		f.HexBytesln(len(s.stream), "code stream (%d bits)", len(s.stream)*8)
	}
	return f.String()
}
