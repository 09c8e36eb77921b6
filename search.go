// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

import "bytes"

// strposChunk symbols of the haystack are decoded per search step; the
// previous needle-length-minus-one symbols are retained across steps
// so matches spanning chunk boundaries are found.
const strposChunk = 512

// Strpos returns the 1-based position of the first occurrence of
// needle's decoded symbols within s, or 0 if absent. An empty needle
// matches at position 1. Case folding follows the haystack's modifier:
// under a case-insensitive haystack the needle is folded before
// matching.
func (s *CompressedSequence) Strpos(needle *CompressedSequence) (int, error) {
	n := needle.symbolCount
	if n == 0 {
		return 1, nil
	}
	if n > s.symbolCount {
		return 0, nil
	}
	pat, err := needle.Text()
	if err != nil {
		return 0, err
	}
	for i := range pat {
		pat[i] = s.table.Fold(pat[i])
	}

	d, err := s.decoderAt(0)
	if err != nil {
		return 0, err
	}
	buf := make([]byte, 0, strposChunk+n-1)
	base := 0 // symbol index of buf[0]
	for remaining := s.symbolCount; remaining > 0; {
		m := strposChunk
		if remaining < m {
			m = remaining
		}
		off := len(buf)
		buf = buf[:off+m]
		if err := d.fill(buf[off:]); err != nil {
			return 0, err
		}
		remaining -= m
		if i := bytes.Index(buf, pat); i >= 0 {
			return base + i + 1, nil
		}
		if keep := n - 1; len(buf) > keep {
			base += len(buf) - keep
			copy(buf, buf[len(buf)-keep:])
			buf = buf[:keep]
		}
	}
	return 0, nil
}
