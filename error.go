// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

import "github.com/cockroachdb/errors"

// The error kinds surfaced by this package. Errors returned from any
// operation can be classified with errors.Is against these sentinels;
// the formatted message carries the detail (offending byte, offset,
// window bounds).
var (
	// ErrUnknownSymbol marks input bytes outside the selected alphabet.
	ErrUnknownSymbol = errors.New("aligned_aa: unknown symbol")
	// ErrBadModifier marks malformed type modifier keyword lists.
	ErrBadModifier = errors.New("aligned_aa: bad type modifier")
	// ErrOutOfRange marks windows extending past the sequence end.
	ErrOutOfRange = errors.New("aligned_aa: out of range")
	// ErrCorruptHeader marks values whose header or code stream cannot
	// be trusted.
	ErrCorruptHeader = errors.New("aligned_aa: corrupt header")
)

func unknownSymbolErrorf(b byte, offset int) error {
	return errors.Mark(
		errors.Newf("aligned_aa: unknown symbol %q at offset %d", rune(b), offset),
		ErrUnknownSymbol)
}

func badModifierErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf("aligned_aa: bad type modifier: "+format, args...), ErrBadModifier)
}

func outOfRangeErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf("aligned_aa: out of range: "+format, args...), ErrOutOfRange)
}

func corruptHeaderErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf("aligned_aa: corrupt header: "+format, args...), ErrCorruptHeader)
}
