// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestTypeModifierInt(t *testing.T) {
	for _, tm := range []TypeModifier{
		{},
		{CaseSensitive: true},
		{RestrictingAlphabet: RestrictASCII},
		{CaseSensitive: true, RestrictingAlphabet: RestrictASCII},
	} {
		require.Equal(t, tm, TypeModifierFromInt(tm.ToInt()))
	}
	require.Equal(t, TypeModifier{}, TypeModifierFromInt(-1))
	require.Equal(t, 0, TypeModifier{}.ToInt())
	require.Equal(t, 1, TypeModifier{CaseSensitive: true}.ToInt())
	require.Equal(t, 2, TypeModifier{RestrictingAlphabet: RestrictASCII}.ToInt())
	require.Equal(t, 3,
		TypeModifier{CaseSensitive: true, RestrictingAlphabet: RestrictASCII}.ToInt())
}

func TestParseTypeModifier(t *testing.T) {
	cases := []struct {
		in   string
		want TypeModifier
	}{
		{"", TypeModifier{}},
		{"case_insensitive", TypeModifier{}},
		{"iupac", TypeModifier{}},
		{"case_sensitive", TypeModifier{CaseSensitive: true}},
		{"ascii", TypeModifier{RestrictingAlphabet: RestrictASCII}},
		{"case_sensitive,ascii", TypeModifier{CaseSensitive: true, RestrictingAlphabet: RestrictASCII}},
		{"ascii, case_sensitive", TypeModifier{CaseSensitive: true, RestrictingAlphabet: RestrictASCII}},
		{"CASE_SENSITIVE,IUPAC", TypeModifier{CaseSensitive: true}},
	}
	for _, c := range cases {
		tm, err := ParseTypeModifier(c.in)
		require.NoError(t, err, "input %q", c.in)
		require.Equal(t, c.want, tm, "input %q", c.in)
	}

	for _, in := range []string{
		"case_sensitive,case_insensitive",
		"case_sensitive,case_sensitive",
		"iupac,ascii",
		"ascii,ascii",
		"dna",
		"case sensitive",
	} {
		_, err := ParseTypeModifier(in)
		require.Error(t, err, "input %q", in)
		require.True(t, errors.Is(err, ErrBadModifier), "input %q", in)
	}
}

func TestTypeModifierString(t *testing.T) {
	require.Equal(t, "case_insensitive,iupac", TypeModifier{}.String())
	require.Equal(t, "case_sensitive,ascii",
		TypeModifier{CaseSensitive: true, RestrictingAlphabet: RestrictASCII}.String())
	// The rendered form parses back to the same modifier.
	for i := 0; i < 4; i++ {
		tm := TypeModifierFromInt(i)
		got, err := ParseTypeModifier(tm.String())
		require.NoError(t, err)
		require.Equal(t, tm, got)
	}
}
