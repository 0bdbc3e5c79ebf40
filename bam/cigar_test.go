// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import (
	"github.com/pkg/errors"
	"gopkg.in/check.v1"
)

func (s *S) TestCigarOp(c *check.C) {
	op, err := NewCigarOp(22, 'M')
	c.Assert(err, check.Equals, nil)
	c.Check(op.Len(), check.Equals, 22)
	c.Check(op.Type(), check.Equals, CigarMatch)
	c.Check(op.String(), check.Equals, "22M")

	_, err = NewCigarOp(1, 'Q')
	c.Check(errors.Cause(err), check.Equals, ErrInvalidCigarOp)
	_, err = NewCigarOp(1<<28, 'M')
	c.Check(errors.Cause(err), check.Equals, ErrBadLength)
	_, err = NewCigarOp(-1, 'M')
	c.Check(errors.Cause(err), check.Equals, ErrBadLength)

	// Codes outside the defined operations render as "?".
	c.Check(CigarOpType(9).String(), check.Equals, "?")
	c.Check(cigarInvalid.String(), check.Equals, "?")
}

func (s *S) TestCigarConsumes(c *check.C) {
	type consume struct{ query, ref bool }
	expect := map[CigarOpType]consume{
		CigarMatch:       {query: true, ref: true},
		CigarInsertion:   {query: true, ref: false},
		CigarDeletion:    {query: false, ref: true},
		CigarSkipped:     {query: false, ref: true},
		CigarSoftClipped: {query: true, ref: false},
		CigarHardClipped: {query: false, ref: false},
		CigarPadded:      {query: false, ref: false},
		CigarEqual:       {query: true, ref: true},
		CigarMismatch:    {query: true, ref: true},
		cigarInvalid:     {query: false, ref: false},
	}
	for t, want := range expect {
		c.Check(t.ConsumesQuery(), check.Equals, want.query, check.Commentf("op %s", t))
		c.Check(t.ConsumesReference(), check.Equals, want.ref, check.Commentf("op %s", t))
	}
	for t, want := range map[CigarOpType]bool{
		CigarMatch:     true,
		CigarEqual:     true,
		CigarMismatch:  true,
		CigarInsertion: false,
		CigarDeletion:  false,
	} {
		c.Check(t.IsMatchOrMismatch(), check.Equals, want, check.Commentf("op %s", t))
	}
}

func (s *S) TestParseCigar(c *check.C) {
	ops, err := ParseCigar([]byte("*"))
	c.Assert(err, check.Equals, nil)
	c.Check(ops, check.IsNil)
	c.Check(ops.String(), check.Equals, "*")

	ops, err = ParseCigar([]byte("5M2I3D1S"))
	c.Assert(err, check.Equals, nil)
	c.Check(ops.String(), check.Equals, "5M2I3D1S")
	ref, read := ops.Lengths()
	c.Check(ref, check.Equals, 8)
	c.Check(read, check.Equals, 8)

	for _, bad := range []string{"5", "M", "5Q", "270000000M"} {
		_, err = ParseCigar([]byte(bad))
		c.Check(err, check.NotNil, check.Commentf("cigar %q", bad))
	}
}

func (s *S) TestCoveredUnmapped(c *check.C) {
	r := testRecord(c)
	c.Check(r.Covered(), check.Equals, 22)
	r.SetFlags(r.Flags() | Unmapped)
	c.Check(r.Covered(), check.Equals, 0)
	// The CIGAR itself is preserved on unmapped records.
	c.Check(r.Cigar().String(), check.Equals, "22M")
}
