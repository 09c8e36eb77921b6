// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

import (
	"strings"

	"github.com/ctSkennerton/postbis/alphabet"
)

// RestrictingAlphabet selects the set of bytes a sequence may contain.
type RestrictingAlphabet uint8

const (
	// RestrictIUPAC accepts the IUPAC amino-acid letters, the ambiguity
	// codes and the alignment gap.
	RestrictIUPAC RestrictingAlphabet = iota
	// RestrictASCII accepts any printable byte.
	RestrictASCII
)

// String returns the keyword used in the textual modifier form.
func (ra RestrictingAlphabet) String() string {
	if ra == RestrictASCII {
		return "ascii"
	}
	return "iupac"
}

// TypeModifier is the per-column configuration pair that selects a
// sequence's code table. The zero value is the default modifier:
// case-insensitive, IUPAC.
type TypeModifier struct {
	CaseSensitive       bool
	RestrictingAlphabet RestrictingAlphabet
}

// ToInt condenses the modifier into the single non-negative integer
// understood by the host.
func (tm TypeModifier) ToInt() int {
	v := int(tm.RestrictingAlphabet&3) << 1
	if tm.CaseSensitive {
		v |= 1
	}
	return v
}

// TypeModifierFromInt is the inverse of ToInt. The sentinel -1 means
// no modifier was supplied and yields the default.
func TypeModifierFromInt(v int) TypeModifier {
	if v < 0 {
		return TypeModifier{}
	}
	return TypeModifier{
		CaseSensitive:       v&1 == 1,
		RestrictingAlphabet: RestrictingAlphabet(v>>1) & 3,
	}
}

// ParseTypeModifier parses the textual modifier form: a comma-separated
// list of case-insensitive keywords drawn from case_sensitive,
// case_insensitive, iupac and ascii. Duplicate or contradictory
// keywords fail with ErrBadModifier. The empty string yields the
// default modifier.
func ParseTypeModifier(s string) (TypeModifier, error) {
	var tm TypeModifier
	var caseSet, alphaSet bool
	for _, kw := range strings.Split(s, ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		switch kw {
		case "case_sensitive", "case_insensitive":
			if caseSet {
				return TypeModifier{}, badModifierErrorf("conflicting keyword %q", kw)
			}
			caseSet = true
			tm.CaseSensitive = kw == "case_sensitive"
		case "iupac", "ascii":
			if alphaSet {
				return TypeModifier{}, badModifierErrorf("conflicting keyword %q", kw)
			}
			alphaSet = true
			if kw == "ascii" {
				tm.RestrictingAlphabet = RestrictASCII
			}
		default:
			return TypeModifier{}, badModifierErrorf("unknown keyword %q", kw)
		}
	}
	return tm, nil
}

// String renders the textual modifier form.
func (tm TypeModifier) String() string {
	cs := "case_insensitive"
	if tm.CaseSensitive {
		cs = "case_sensitive"
	}
	return cs + "," + tm.RestrictingAlphabet.String()
}

// tableID maps the modifier to its registered code table.
func (tm TypeModifier) tableID() alphabet.ID {
	switch {
	case tm.RestrictingAlphabet == RestrictASCII && tm.CaseSensitive:
		return alphabet.ASCIICase
	case tm.RestrictingAlphabet == RestrictASCII:
		return alphabet.ASCII
	case tm.CaseSensitive:
		return alphabet.IUPACCase
	default:
		return alphabet.IUPAC
	}
}

// modifierForTable recovers the modifier a stored table id implies.
func modifierForTable(id alphabet.ID) TypeModifier {
	switch id {
	case alphabet.IUPACCase:
		return TypeModifier{CaseSensitive: true}
	case alphabet.ASCII:
		return TypeModifier{RestrictingAlphabet: RestrictASCII}
	case alphabet.ASCIICase:
		return TypeModifier{CaseSensitive: true, RestrictingAlphabet: RestrictASCII}
	default:
		return TypeModifier{}
	}
}
