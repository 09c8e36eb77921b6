// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package binfmt exposes utilities for formatting binary data with
// descriptive comments.
package binfmt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// New constructs a new binary formatter over data.
func New(data []byte) *Formatter {
	offsetWidth := strconv.Itoa(max(int(math.Log10(float64(max(len(data)-1, 1))))+1, 1))
	return &Formatter{
		data:            data,
		offsetFormatStr: "%0" + offsetWidth + "d-%0" + offsetWidth + "d: ",
	}
}

// Formatter is a utility for formatting binary data with descriptive
// comments. Callers step through the data with the typed methods; each
// step emits one line of the form "off-off: x hexbytes # comment".
type Formatter struct {
	buf             bytes.Buffer
	data            []byte
	off             int
	offsetFormatStr string
}

// More returns true if there is data remaining to format.
func (f *Formatter) More() bool {
	return f.off < len(f.data)
}

// Offset returns the current offset within the data slice.
func (f *Formatter) Offset() int {
	return f.off
}

// Byte formats a single byte with the provided comment.
func (f *Formatter) Byte(format string, args ...interface{}) byte {
	v := f.data[f.off]
	f.line(1, format, args...)
	return v
}

// Uint32 formats a little-endian uint32 with the provided comment.
func (f *Formatter) Uint32(format string, args ...interface{}) uint32 {
	v := binary.LittleEndian.Uint32(f.data[f.off:])
	f.line(4, format, args...)
	return v
}

// Uvarint formats an unsigned varint with the provided comment.
func (f *Formatter) Uvarint(format string, args ...interface{}) uint64 {
	v, n := binary.Uvarint(f.data[f.off:])
	f.line(n, format, args...)
	return v
}

// HexBytesln formats n bytes as hex with the provided comment.
func (f *Formatter) HexBytesln(n int, format string, args ...interface{}) {
	f.line(n, format, args...)
}

func (f *Formatter) line(n int, format string, args ...interface{}) {
	fmt.Fprintf(&f.buf, f.offsetFormatStr, f.off, f.off+n)
	fmt.Fprintf(&f.buf, "x %-24x", f.data[f.off:f.off+n])
	if format != "" {
		f.buf.WriteString(" # ")
		fmt.Fprintf(&f.buf, format, args...)
	}
	f.buf.WriteByte('\n')
	f.off += n
}

// String returns the accumulated output.
func (f *Formatter) String() string {
	return f.buf.String()
}
