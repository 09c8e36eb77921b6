// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/ctSkennerton/postbis/alphabet"
	"github.com/ctSkennerton/postbis/internal/bitstream"
)

// Compress validates input against the modifier's restricting alphabet
// and encodes it into a compressed sequence. Case is folded to upper
// under a case-insensitive modifier. info, if non-nil, must describe
// input (as returned by ScanSequenceInfo); it spares Compress the
// frequency rescan used for swizzling.
func Compress(input []byte, tm TypeModifier, info *SequenceInfo) (*CompressedSequence, error) {
	if len(input) > maxSymbolCount {
		return nil, outOfRangeErrorf("sequence of %d symbols exceeds the maximum of %d",
			len(input), maxSymbolCount)
	}
	table, err := alphabet.ByID(tm.tableID())
	if err != nil {
		return nil, err
	}
	slotFreq := make([]int, table.NumSlots())
	if info != nil && info.Length == len(input) {
		for i, b := range input {
			if table.Slot(b) < 0 {
				return nil, unknownSymbolErrorf(b, i)
			}
		}
		for b, n := range info.Frequencies {
			if n > 0 {
				slot := table.Slot(byte(b))
				if slot < 0 {
					return nil, errors.AssertionFailedf(
						"sequence info counts byte %q absent from the validated input", rune(b))
				}
				slotFreq[slot] += n
			}
		}
	} else {
		for i, b := range input {
			slot := table.Slot(b)
			if slot < 0 {
				return nil, unknownSymbolErrorf(b, i)
			}
			slotFreq[slot]++
		}
	}
	return encode(input, table, slotFreq), nil
}

// encode compresses symbols already validated against table. slotFreq
// holds per-slot symbol counts and drives the swizzle decision.
func encode(symbols []byte, table *alphabet.CodeTable, slotFreq []int) *CompressedSequence {
	swizzle, inv := computeSwizzle(table, slotFreq)

	var w bitstream.Writer
	var anchors []indexEntry
	if len(symbols) >= indexThreshold {
		anchors = make([]indexEntry, 0, (len(symbols)+1<<defaultStrideLog2-1)>>defaultStrideLog2)
	}
	for i, b := range symbols {
		if anchors != nil && i&(1<<defaultStrideLog2-1) == 0 {
			anchors = append(anchors, indexEntry{symbolOffset: i, bitOffset: w.BitLen()})
		}
		slot := table.Slot(b)
		if inv != nil {
			slot = int(inv[slot])
		}
		table.AppendCode(&w, slot)
	}
	return assemble(len(symbols), table, anchors, swizzle, w.Finish())
}

// computeSwizzle decides whether rebinding the table's shortest codes
// to this value's most frequent symbols shrinks the code stream. When
// it does, it returns the persisted slot permutation (code slot to
// source slot) and its inverse (source slot to code slot) for the
// encoder; otherwise both are nil and codes are used as registered.
//
// Slots are ordered by ascending code length, so assigning them in
// order of decreasing frequency is optimal for the fixed code lengths.
// The sort is stable on the slot number, keeping the choice
// deterministic for identical frequency tables: recompressing a
// decompressed value reproduces the blob byte for byte.
func computeSwizzle(table *alphabet.CodeTable, slotFreq []int) (swizzle, inv []uint8) {
	n := table.NumSlots()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return slotFreq[order[a]] > slotFreq[order[b]]
	})
	var plain, swizzled int
	for i := 0; i < n; i++ {
		bits := int(table.Entry(i).Length)
		plain += slotFreq[i] * bits
		swizzled += slotFreq[order[i]] * bits
	}
	// The map costs one byte per slot; swizzle only when the stream
	// shrinks by more than that.
	if (swizzled+7)/8+n >= (plain+7)/8 {
		return nil, nil
	}
	swizzle = make([]uint8, n)
	inv = make([]uint8, n)
	for i, src := range order {
		swizzle[i] = uint8(src)
		inv[src] = uint8(i)
	}
	return swizzle, inv
}

// Decompress writes length decoded symbols starting at symbol index
// from into out, which must hold at least length bytes. No terminator
// is written.
func (s *CompressedSequence) Decompress(out []byte, from, length int) error {
	if from < 0 || length < 0 || from+length > s.symbolCount {
		return outOfRangeErrorf("window [%d,%d) of a sequence of %d symbols",
			from, from+length, s.symbolCount)
	}
	if len(out) < length {
		return errors.AssertionFailedf("output buffer of %d bytes for %d symbols", len(out), length)
	}
	d, err := s.decoderAt(from)
	if err != nil {
		return err
	}
	return d.fill(out[:length])
}
