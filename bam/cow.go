// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

// Borrowed reports whether the record still reads from a buffer owned
// by an external producer.
func (r *Record) Borrowed() bool { return r.data[r.nulIndex()] != 0 }

// ensureOwned flips a borrowed record to an owned duplicate of its
// buffer. Every mutator calls it before writing. The name terminator
// byte is the borrowed flag; the duplicate restores it to zero.
func (r *Record) ensureOwned() {
	i := r.nulIndex()
	if r.data[i] == 0 {
		return
	}
	dup := make([]byte, len(r.data))
	copy(dup, r.data)
	dup[i] = 0
	r.data = dup
}

// Clone returns an owned deep copy of the record, regardless of whether
// the receiver is borrowed.
func (r *Record) Clone() *Record {
	dup := make([]byte, len(r.data))
	copy(dup, r.data)
	c := &Record{data: dup}
	c.data[c.nulIndex()] = 0
	return c
}
