// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

import "bytes"

// Compare orders two sequences lexicographically by decoded symbol
// value, returning -1, 0 or +1. Both decoders stream in lockstep and
// stop at the first difference; on common-prefix equality the shorter
// sequence sorts first. Sequences compressed under different tables
// compare by their decoded (post-folding) bytes.
func (s *CompressedSequence) Compare(o *CompressedSequence) (int, error) {
	n := s.symbolCount
	if o.symbolCount < n {
		n = o.symbolCount
	}
	ds, err := s.decoderAt(0)
	if err != nil {
		return 0, err
	}
	do, err := o.decoderAt(0)
	if err != nil {
		return 0, err
	}
	var a, b [512]byte
	for done := 0; done < n; {
		m := len(a)
		if n-done < m {
			m = n - done
		}
		if err := ds.fill(a[:m]); err != nil {
			return 0, err
		}
		if err := do.fill(b[:m]); err != nil {
			return 0, err
		}
		if c := bytes.Compare(a[:m], b[:m]); c != 0 {
			return c, nil
		}
		done += m
	}
	switch {
	case s.symbolCount < o.symbolCount:
		return -1, nil
	case s.symbolCount > o.symbolCount:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether both sequences decode to the same symbols.
func (s *CompressedSequence) Equal(o *CompressedSequence) (bool, error) {
	if s.symbolCount != o.symbolCount {
		return false, nil
	}
	c, err := s.Compare(o)
	return c == 0, err
}

// Less reports s < o under Compare's order.
func (s *CompressedSequence) Less(o *CompressedSequence) (bool, error) {
	c, err := s.Compare(o)
	return c < 0, err
}

// LessEqual reports s <= o under Compare's order.
func (s *CompressedSequence) LessEqual(o *CompressedSequence) (bool, error) {
	c, err := s.Compare(o)
	return c <= 0, err
}

// Greater reports s > o under Compare's order.
func (s *CompressedSequence) Greater(o *CompressedSequence) (bool, error) {
	c, err := s.Compare(o)
	return c > 0, err
}

// GreaterEqual reports s >= o under Compare's order.
func (s *CompressedSequence) GreaterEqual(o *CompressedSequence) (bool, error) {
	c, err := s.Compare(o)
	return c >= 0, err
}
