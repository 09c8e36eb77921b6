// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package alphabet

// The fixed tables. Code lengths are static, tuned for typical aligned
// protein data: the gap dominates, common residues (L, A, G, S, V, E)
// come next, and the ambiguity codes are rare. The ASCII tables order
// letters by English text frequency instead.
//
// Within a table the length classes must satisfy the Kraft inequality;
// makeTable panics at init otherwise.

// aaOrder lists the 20 standard amino acids and the ambiguity codes in
// decreasing typical frequency.
const (
	aaCommon = "LAGSVE"
	aaMid    = "TKDIPRNQF"
	aaRare   = "YMHCW"
	aaAmbig  = "BZXJ"
)

// enFreq is the latin alphabet in decreasing English letter frequency,
// used by the ASCII tables.
const enFreq = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

var tables [numTables]*CodeTable

func init() {
	tables[IUPAC] = makeTable(IUPAC, false, []lengthClass{
		{2, "-"},
		{4, aaCommon},
		{5, aaMid},
		{6, aaRare},
		{8, aaAmbig},
	})
	tables[IUPACCase] = makeTable(IUPACCase, true, []lengthClass{
		{2, "-"},
		{4, aaCommon},
		{5, aaMid},
		{6, aaRare},
		{11, aaAmbig + lower(aaCommon+aaMid+aaRare+aaAmbig)},
	})
	tables[ASCII] = makeTable(ASCII, false, []lengthClass{
		{3, "-"},
		{6, enFreq},
		{7, " 0123456789"},
		{8, remainingPrintable("-", enFreq, lower(enFreq), " 0123456789")},
	})
	tables[ASCIICase] = makeTable(ASCIICase, true, []lengthClass{
		{3, "-"},
		{6, enFreq + lower(enFreq)},
		{10, remainingPrintable("-", enFreq, lower(enFreq))},
	})
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] += 'a' - 'A'
	}
	return string(b)
}

// remainingPrintable returns the printable bytes (0x20..0x7E) not
// present in any of the covered sets, in byte order.
func remainingPrintable(covered ...string) string {
	var seen [256]bool
	for _, s := range covered {
		for i := 0; i < len(s); i++ {
			seen[s[i]] = true
		}
	}
	var out []byte
	for b := byte(0x20); b <= 0x7E; b++ {
		if !seen[b] {
			out = append(out, b)
		}
	}
	return string(out)
}
