// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

// SequenceInfo summarizes one scan over a raw input buffer. Input
// functions that already scanned the buffer can pass it to Compress to
// avoid recomputing the frequency table used for swizzling.
type SequenceInfo struct {
	Length      int
	ASCIIClean  bool
	Frequencies [256]int
}

// ScanSequenceInfo scans input and returns its summary.
func ScanSequenceInfo(input []byte) *SequenceInfo {
	info := &SequenceInfo{Length: len(input), ASCIIClean: true}
	for _, b := range input {
		if b >= 0x80 {
			info.ASCIIClean = false
		}
		info.Frequencies[b]++
	}
	return info
}
