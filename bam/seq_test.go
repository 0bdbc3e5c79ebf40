// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import "gopkg.in/check.v1"

func (s *S) TestSeqIndex(c *check.C) {
	r := testRecord(c)
	sq := r.Seq()
	c.Assert(sq.Len(), check.Equals, len(testSeq))
	for i := 0; i < sq.Len(); i++ {
		c.Check(sq.At(i), check.Equals, testSeq[i], check.Commentf("base %d", i))
	}
}

func (s *S) TestSeqSlice(c *check.C) {
	r := testRecord(c)
	sq := r.Seq()
	for a := 0; a <= sq.Len(); a++ {
		for b := a; b <= sq.Len(); b++ {
			c.Check(sq.Slice(a, b).String(), check.Equals, testSeq[a:b], check.Commentf("[%d,%d)", a, b))
		}
	}

	// Sub-slicing a view that starts on an odd nibble.
	odd := sq.Slice(3, 21)
	c.Check(odd.String(), check.Equals, testSeq[3:21])
	c.Check(odd.Slice(2, 9).String(), check.Equals, testSeq[5:12])
	c.Check(odd.Slice(1, 2).At(0), check.Equals, testSeq[4])
}

func (s *S) TestSeqDrop(c *check.C) {
	r := testRecord(c)
	sq := r.Seq()

	front := sq
	for i := 0; front.Len() > 0; i++ {
		c.Assert(front.At(0), check.Equals, testSeq[i])
		front = front.DropFront()
	}

	back := sq
	for i := sq.Len() - 1; back.Len() > 0; i-- {
		c.Assert(back.At(back.Len()-1), check.Equals, testSeq[i])
		back = back.DropBack()
	}
}

func (s *S) TestSeqOddLength(c *check.C) {
	r, err := New("r1", "ACGTN", mustCigar(c, "5M"), nil)
	c.Assert(err, check.Equals, nil)
	c.Check(r.SeqLen(), check.Equals, 5)
	c.Check(len(r.RawSeq()), check.Equals, 3)
	c.Check(r.Seq().String(), check.Equals, "ACGTN")
	c.Check(r.Seq().Slice(1, 5).String(), check.Equals, "CGTN")
	c.Check(r.Seq().Slice(3, 4).String(), check.Equals, "T")
}

func (s *S) TestSeqAmbiguityCodes(c *check.C) {
	const iupac = "=ACMGRSVTWYHKDBN"
	r, err := New("r1", iupac, mustCigar(c, "16M"), nil)
	c.Assert(err, check.Equals, nil)
	c.Check(r.Seq().String(), check.Equals, iupac)

	// Lower case encodes as the same nibbles.
	c.Assert(r.SetSeq("acgtn"), check.Equals, nil)
	c.Check(r.Seq().String(), check.Equals, "ACGTN")
}
