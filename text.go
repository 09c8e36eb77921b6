// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

import "bytes"

// The text boundary adapter: entry points for the two raw buffer
// shapes a host hands over (null-terminated C strings and
// length-delimited buffers) and the matching output shapes.

// CompressBytes compresses a length-delimited input buffer.
func CompressBytes(input []byte, tm TypeModifier) (*CompressedSequence, error) {
	return Compress(input, tm, nil)
}

// CompressCString compresses a null-terminated input buffer. Input
// stops at the first NUL; a buffer without one is used whole.
func CompressCString(buf []byte, tm TypeModifier) (*CompressedSequence, error) {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return Compress(buf, tm, nil)
}

// Text returns the decoded symbols as a length-delimited buffer: no
// terminator, no trailing newline, exact symbol preservation modulo
// the case folding performed at compress time.
func (s *CompressedSequence) Text() ([]byte, error) {
	out := make([]byte, s.symbolCount)
	if err := s.Decompress(out, 0, s.symbolCount); err != nil {
		return nil, err
	}
	return out, nil
}

// CString returns the decoded symbols as a null-terminated buffer.
func (s *CompressedSequence) CString() ([]byte, error) {
	out := make([]byte, s.symbolCount+1)
	if err := s.Decompress(out, 0, s.symbolCount); err != nil {
		return nil, err
	}
	out[s.symbolCount] = 0
	return out, nil
}
