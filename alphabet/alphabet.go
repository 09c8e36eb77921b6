// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package alphabet defines the fixed prefix-code tables used to encode
// aligned amino-acid sequences. A table maps each accepted symbol byte
// to a variable-length bit code; codes are prefix-free so the decoder
// never needs lookahead beyond the current code. Tables are built once
// at package init and are immutable thereafter.
package alphabet

import (
	"github.com/cockroachdb/errors"

	"github.com/ctSkennerton/postbis/internal/bitstream"
)

// ID identifies a registered code table. The two-bit table id field of
// a compressed value's header holds one of these.
type ID uint8

const (
	// IUPAC is the case-insensitive aligned amino-acid table: the 20
	// standard amino acids, the ambiguity codes B, J, X and Z, and the
	// alignment gap '-'. Lowercase input folds to the uppercase code.
	IUPAC ID = iota
	// IUPACCase is the case-sensitive variant: lowercase letters carry
	// their own codes.
	IUPACCase
	// ASCII covers all printable bytes (0x20..0x7E), folding lowercase
	// letters to uppercase.
	ASCII
	// ASCIICase covers all printable bytes, case preserved.
	ASCIICase

	numTables
)

// String returns the name used in debug output and test files.
func (id ID) String() string {
	switch id {
	case IUPAC:
		return "iupac"
	case IUPACCase:
		return "iupac_case_sensitive"
	case ASCII:
		return "ascii"
	case ASCIICase:
		return "ascii_case_sensitive"
	default:
		return "unknown"
	}
}

// Gap is the alignment gap symbol. It dominates the symbol frequency
// of aligned data, so every table gives it the shortest code.
const Gap = byte('-')

// Entry is one symbol's code assignment: the low Length bits of Code,
// written MSB-first.
type Entry struct {
	Symbol byte
	Code   uint32
	Length uint8
}

// CodeTable is an immutable symbol-to-bitcode map. Slots are ordered
// by ascending code length, which makes slot order the preference
// order for swizzling: rebinding slot i to a more frequent symbol
// never lengthens its code.
type CodeTable struct {
	id            ID
	caseSensitive bool
	entries       []Entry
	slot          [256]int16
	maxLen        uint8
	// decode maps the next maxLen bits of the stream to slot<<4|len.
	// Zero marks bit patterns that no code produces (all real entries
	// have len >= 2).
	decode []uint16
}

// ByID returns the registered table for id.
func ByID(id ID) (*CodeTable, error) {
	if id >= numTables {
		return nil, errors.Newf("aligned_aa: no code table with id %d", int(id))
	}
	return tables[id], nil
}

// FixedAlignedAACode returns one of the fixed aligned amino-acid
// tables: 0 selects the IUPAC table, 1 the case-sensitive variant.
func FixedAlignedAACode(id uint) (*CodeTable, error) {
	if id > uint(IUPACCase) {
		return nil, errors.Newf("aligned_aa: no fixed aligned AA code with id %d", id)
	}
	return tables[id], nil
}

// FixedAlignedAACodes returns the fixed aligned amino-acid tables.
func FixedAlignedAACodes() []*CodeTable {
	return []*CodeTable{tables[IUPAC], tables[IUPACCase]}
}

// ID returns the table's registered id.
func (t *CodeTable) ID() ID {
	return t.id
}

// CaseSensitive reports whether the table distinguishes letter case.
func (t *CodeTable) CaseSensitive() bool {
	return t.caseSensitive
}

// NumSlots returns the number of code slots in the table.
func (t *CodeTable) NumSlots() int {
	return len(t.entries)
}

// Entry returns the code assignment of the given slot.
func (t *CodeTable) Entry(slot int) Entry {
	return t.entries[slot]
}

// MaxCodeLen returns the longest code length in bits.
func (t *CodeTable) MaxCodeLen() uint8 {
	return t.maxLen
}

// Fold normalizes an input byte under the table's case rule.
func (t *CodeTable) Fold(b byte) byte {
	if !t.caseSensitive && b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// Slot returns the code slot for an input byte, folding case for
// case-insensitive tables, or -1 if the byte is not in the alphabet.
func (t *CodeTable) Slot(b byte) int {
	return int(t.slot[b])
}

// AppendCode writes the code of the given slot to w.
func (t *CodeTable) AppendCode(w *bitstream.Writer, slot int) {
	e := t.entries[slot]
	w.Append(e.Code, uint(e.Length))
}

// Decode reads the next code from r and returns its slot. Returns
// false if the upcoming bits match no code in the table, which on a
// validated stream indicates corruption.
func (t *CodeTable) Decode(r *bitstream.Reader) (int, bool) {
	v := t.decode[r.Peek(uint(t.maxLen))]
	if v == 0 {
		return 0, false
	}
	r.Skip(uint(v & 0xf))
	return int(v >> 4), true
}

// lengthClass declares the symbols that share one code length, in
// decreasing expected frequency. Classes must be listed in ascending
// length order.
type lengthClass struct {
	length  uint8
	symbols string
}

// makeTable assigns canonical codes: entries are flattened in class
// order and codes count upward, shifting left at each length increase.
// Panics if the lengths violate the Kraft inequality; the tables are
// static so this is an init-time assertion.
func makeTable(id ID, caseSensitive bool, classes []lengthClass) *CodeTable {
	t := &CodeTable{id: id, caseSensitive: caseSensitive}
	for i := range t.slot {
		t.slot[i] = -1
	}
	var code uint32
	var prev uint8
	for _, c := range classes {
		if c.length < prev {
			panic("alphabet: length classes out of order")
		}
		code <<= c.length - prev
		prev = c.length
		for i := 0; i < len(c.symbols); i++ {
			if code >= 1<<c.length {
				panic("alphabet: code table overflows (Kraft inequality violated)")
			}
			sym := c.symbols[i]
			if t.slot[sym] != -1 {
				panic("alphabet: duplicate symbol")
			}
			t.slot[sym] = int16(len(t.entries))
			if !caseSensitive && sym >= 'A' && sym <= 'Z' {
				t.slot[sym+('a'-'A')] = int16(len(t.entries))
			}
			t.entries = append(t.entries, Entry{Symbol: sym, Code: code, Length: c.length})
			code++
		}
	}
	t.maxLen = prev
	t.buildDecodeTable()
	return t
}

func (t *CodeTable) buildDecodeTable() {
	t.decode = make([]uint16, 1<<t.maxLen)
	for slot, e := range t.entries {
		pad := t.maxLen - e.Length
		lo := e.Code << pad
		hi := (e.Code + 1) << pad
		v := uint16(slot)<<4 | uint16(e.Length)
		for i := lo; i < hi; i++ {
			t.decode[i] = v
		}
	}
}
