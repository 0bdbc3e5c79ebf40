// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import "github.com/apexbio/bambuf/nibbles"

// maxSeqLen is the longest sequence a record construction or
// replacement accepts.
const maxSeqLen = 255

var (
	n16TableRev = [16]byte{'=', 'A', 'C', 'M', 'G', 'R', 'S', 'V', 'T', 'W', 'Y', 'H', 'K', 'D', 'B', 'N'}
	n16Table    = [256]byte{
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0x1, 0x2, 0x4, 0x8, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0x0, 0xf, 0xf,
		0xf, 0x1, 0xe, 0x2, 0xd, 0xf, 0xf, 0x4, 0xb, 0xf, 0xf, 0xc, 0xf, 0x3, 0xf, 0xf,
		0xf, 0xf, 0x5, 0x6, 0x8, 0xf, 0x7, 0x9, 0xf, 0xa, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0x1, 0xe, 0x2, 0xd, 0xf, 0xf, 0x4, 0xb, 0xf, 0xf, 0xc, 0xf, 0x3, 0xf, 0xf,
		0xf, 0xf, 0x5, 0x6, 0x8, 0xf, 0x7, 0x9, 0xf, 0xa, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
		0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf,
	}
)

// packSeq returns the 4-bit packed form of a base sequence, the first
// base of each pair in the high nibble. When the length is odd the
// final low nibble is zero.
func packSeq(s string) []byte {
	ns := make([]byte, (len(s)+1)>>1)
	var np byte
	for i := 0; i < len(s); i++ {
		if i&1 == 0 {
			np = n16Table[s[i]] << 4
		} else {
			ns[i>>1] = np | n16Table[s[i]]
		}
	}
	// The last base of an odd-length sequence has not been written
	// yet, so do that now.
	if len(s)&1 != 0 {
		ns[len(ns)-1] = np
	}
	return ns
}

// Seq is a random-access view over a record's packed nucleotide
// region. Indexing, slicing and front/back removal are O(1); a view
// never mutates the underlying buffer and does not survive a
// subsequent structural mutation of its record.
type Seq struct {
	nib nibbles.Nibbles
}

// Seq returns a view over the record's sequence.
func (r *Record) Seq() Seq {
	return Seq{nib: nibbles.From(r.SeqLen(), 0, r.RawSeq())}
}

// Len returns the number of bases in the view.
func (s Seq) Len() int { return s.nib.Len() }

// At returns the base character at position i.
func (s Seq) At(i int) byte { return n16TableRev[s.nib.Get(i)] }

// Slice returns the sub-view covering bases [a,b). The sub-view
// derives its first-nibble alignment from the parent.
func (s Seq) Slice(a, b int) Seq { return Seq{nib: s.nib.Slice(a, b)} }

// DropFront returns the view without its first base.
func (s Seq) DropFront() Seq { return s.Slice(1, s.Len()) }

// DropBack returns the view without its last base.
func (s Seq) DropBack() Seq { return s.Slice(0, s.Len()-1) }

// String returns the bases of the view as text.
func (s Seq) String() string {
	b := make([]byte, s.Len())
	for i := range b {
		b[i] = s.At(i)
	}
	return string(b)
}
