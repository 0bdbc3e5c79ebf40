// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nibbles provides a slice-like view over sequences of 4-bit
// values packed two to a byte, high nibble first. A view may begin in
// either nibble of its first byte; slicing carries that parity so that
// sub-views index correctly without repacking.
package nibbles

import "strconv"

// Nibbles is a view over packed 4-bit values. The zero value is an
// empty view. Views share their underlying bytes; Set mutates the
// shared storage.
type Nibbles struct {
	// info packs the view length in the high bits and the parity of
	// the first value in the low bit: 0 means the first value is in
	// the high nibble of bytes[0], 1 means the low nibble.
	info  int
	bytes []byte
}

// Make returns nibbles of the given length backed by fresh storage.
func Make(n int) Nibbles {
	return Nibbles{
		info:  n << 1,
		bytes: make([]byte, (n+1)>>1),
	}
}

// From returns a view of length n over the given packed bytes. Only
// the parity of offset is used: an even offset starts the view in the
// high nibble, an odd offset in the low nibble of bytes[0].
func From(n, offset int, bytes []byte) Nibbles {
	return Nibbles{
		info:  (n << 1) | (offset & 1),
		bytes: bytes,
	}
}

// Len returns the number of 4-bit values in the view.
func (n Nibbles) Len() int { return n.info >> 1 }

func (n Nibbles) offset() int { return n.info & 1 }

// Bytes returns the packed storage underlying the view.
func (n Nibbles) Bytes() []byte { return n.bytes }

// Get returns the value at the given index.
func (n Nibbles) Get(index int) byte {
	if uint(index) >= uint(n.Len()) {
		panic("nibbles: index out of range")
	}
	index += n.offset()
	i := index >> 1
	bit := index & 1
	return 0xf & (n.bytes[i] >> uint((1^bit)<<2))
}

// Set sets the value at the given index.
func (n Nibbles) Set(index int, value byte) {
	if uint(index) >= uint(n.Len()) {
		panic("nibbles: index out of range")
	}
	index += n.offset()
	i := index >> 1
	bit := index & 1
	n.bytes[i] = ((0xf << uint(bit<<2)) & n.bytes[i]) | ((0xf & value) << uint((1^bit)<<2))
}

// Slice returns the sub-view covering [low,high). The result shares
// storage with the receiver and recomputes the first-value parity at
// the new origin.
func (n Nibbles) Slice(low, high int) Nibbles {
	if low < 0 || high < low || high > n.Len() {
		panic("nibbles: slice bounds out of range")
	}
	offset := n.offset()
	return Nibbles{
		info:  ((high - low) << 1) | (offset ^ (low & 1)),
		bytes: n.bytes[(low+offset)>>1 : (high+offset+1)>>1],
	}
}

// Expand returns a byte slice with the same contents, one value per byte.
func (n Nibbles) Expand() []byte {
	length := n.Len()
	offset := n.offset()
	result := make([]byte, length)
	for k := range result {
		index := k + offset
		i := index >> 1
		bit := index & 1
		result[k] = 0xf & (n.bytes[i] >> uint((1^bit)<<2))
	}
	return result
}

// Append appends the given value, returning the updated view.
func (n Nibbles) Append(value byte) Nibbles {
	length := n.Len()
	offset := n.offset()
	index := length + offset
	if index&1 == 1 {
		i := index >> 1
		n.bytes[i] = ((0xf << 4) & n.bytes[i]) | (0xf & value)
		return Nibbles{
			info:  ((length + 1) << 1) | offset,
			bytes: n.bytes,
		}
	}
	return Nibbles{
		info:  ((length + 1) << 1) | offset,
		bytes: append(n.bytes, (0xf&value)<<4),
	}
}

// AppendSlice appends the values of m, returning the updated view.
func (n Nibbles) AppendSlice(m Nibbles) Nibbles {
	for i, length := 0, m.Len(); i < length; i++ {
		n = n.Append(m.Get(i))
	}
	return n
}

// String returns a representation of the view values.
func (n Nibbles) String() string {
	length := n.Len()
	if length == 0 {
		return "[]"
	}
	b := []byte{'['}
	b = strconv.AppendInt(b, int64(n.Get(0)), 10)
	for i := 1; i < length; i++ {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(n.Get(i)), 10)
	}
	return string(append(b, ']'))
}
