// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package crc implements the checksum used to hash decoded sequences.
// The hash is computed over decoded symbol streams, never over the
// compressed representation, so values that differ only in their
// per-value swizzle hash identically.
package crc

import "hash/crc32"

// CRC is a running CRC-32 (IEEE polynomial).
type CRC uint32

// New returns the CRC of b, ready for further updates.
func New(b []byte) CRC {
	return CRC(0).Update(b)
}

// Update returns the CRC extended by b.
func (c CRC) Update(b []byte) CRC {
	return CRC(crc32.Update(uint32(c), crc32.IEEETable, b))
}

// Value returns the checksum.
func (c CRC) Value() uint32 {
	return uint32(c)
}
