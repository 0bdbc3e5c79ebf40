// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/check.v1"
)

func (s *S) TestAuxSetGet(c *check.C) {
	r := testRecord(c)

	c.Assert(r.SetAux("RG", 15), check.Equals, nil)
	v, err := r.Aux("RG")
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.Equals, int8(15))
	c.Check(r.AuxCount(), check.Equals, 1)

	c.Assert(r.SetAux("X1", []int32{1, 2, 3, 4, 5}), check.Equals, nil)
	v, err = r.Aux("X1")
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.DeepEquals, []int32{1, 2, 3, 4, 5})
	c.Check(r.AuxCount(), check.Equals, 2)

	// Replacing with a wider type splices the entry in place.
	c.Assert(r.SetAux("RG", float32(5.6)), check.Equals, nil)
	v, err = r.Aux("RG")
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.Equals, float32(5.6))
	c.Check(r.AuxCount(), check.Equals, 2)

	c.Assert(r.SetAux("X1", nil), check.Equals, nil)
	c.Check(r.AuxCount(), check.Equals, 1)
	v, err = r.Aux("X1")
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.Equals, nil)

	// The float survives its neighbour's removal.
	v, err = r.Aux("RG")
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.Equals, float32(5.6))
}

func (s *S) TestAuxTypes(c *check.C) {
	r := testRecord(c)
	values := []struct {
		key string
		in  interface{}
		out interface{}
	}{
		{key: "XA", in: Char('g'), out: Char('g')},
		{key: "Xb", in: int8(-7), out: int8(-7)},
		{key: "XB", in: uint8(200), out: uint8(200)},
		{key: "Xs", in: int16(-300), out: int16(-300)},
		{key: "XS", in: uint16(40000), out: uint16(40000)},
		{key: "Xi", in: int32(-70000), out: int32(-70000)},
		{key: "XI", in: uint32(3000000000), out: uint32(3000000000)},
		{key: "Xf", in: float32(1.5), out: float32(1.5)},
		{key: "XZ", in: "text", out: "text"},
		{key: "XH", in: Hex("1AE301"), out: Hex("1AE301")},
		{key: "Xc", in: []int8{-1, 0, 1}, out: []int8{-1, 0, 1}},
		{key: "XC", in: []uint8{250, 251}, out: []uint8{250, 251}},
		{key: "XF", in: []float32{0.5, -0.25}, out: []float32{0.5, -0.25}},
		{key: "Xn", in: 200, out: int16(200)},
		{key: "XN", in: 100000, out: int32(100000)},
		{key: "Xu", in: uint(65000), out: uint16(65000)},
	}
	for _, tt := range values {
		c.Assert(r.SetAux(tt.key, tt.in), check.Equals, nil, check.Commentf("key %s", tt.key))
	}
	c.Check(r.AuxCount(), check.Equals, len(values))
	for _, tt := range values {
		v, err := r.Aux(tt.key)
		c.Assert(err, check.Equals, nil)
		c.Check(v, check.DeepEquals, tt.out, check.Commentf("key %s", tt.key))
	}
}

func (s *S) TestAuxSetGetIsNoop(c *check.C) {
	r := testRecord(c)
	c.Assert(r.SetAux("X0", 24), check.Equals, nil)
	c.Assert(r.SetAux("X1", "abcd"), check.Equals, nil)
	c.Assert(r.SetAux("X2", []int8{1, 2, 3}), check.Equals, nil)

	for _, key := range []string{"X0", "X1", "X2"} {
		before := append([]byte(nil), r.data...)
		v, err := r.Aux(key)
		c.Assert(err, check.Equals, nil)
		c.Assert(r.SetAux(key, v), check.Equals, nil)
		c.Check(bytes.Equal(r.data, before), check.Equals, true, check.Commentf("key %s", key))
	}
}

func (s *S) TestAuxDelete(c *check.C) {
	r := testRecord(c)
	c.Assert(r.SetAux("X0", 1), check.Equals, nil)
	c.Assert(r.SetAux("X1", 2), check.Equals, nil)
	c.Assert(r.SetAux("X2", 3), check.Equals, nil)

	// Deleting an absent key is a no-op.
	before := append([]byte(nil), r.data...)
	c.Assert(r.SetAux("ZZ", nil), check.Equals, nil)
	c.Check(bytes.Equal(r.data, before), check.Equals, true)
	c.Check(r.AuxCount(), check.Equals, 3)

	c.Assert(r.DelAux("X1"), check.Equals, nil)
	c.Check(r.AuxCount(), check.Equals, 2)
	v, err := r.Aux("X1")
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.Equals, nil)

	// Neighbours are intact after the splice.
	v, _ = r.Aux("X0")
	c.Check(v, check.Equals, int8(1))
	v, _ = r.Aux("X2")
	c.Check(v, check.Equals, int8(3))

	r.ClearAux()
	c.Check(r.AuxCount(), check.Equals, 0)
	c.Check(len(r.data), check.Equals, r.auxOffset())
}

func (s *S) TestAuxOrder(c *check.C) {
	r := testRecord(c)
	keys := []string{"K0", "K1", "K2", "K3"}
	for i, k := range keys {
		c.Assert(r.SetAux(k, i), check.Equals, nil)
	}
	// Replacement preserves stream order for the other entries.
	c.Assert(r.SetAux("K1", "longer-than-before"), check.Equals, nil)

	var got []string
	err := r.EachAux(func(key string, v interface{}) error {
		got = append(got, key)
		return nil
	})
	c.Assert(err, check.Equals, nil)
	c.Check(got, check.DeepEquals, keys)
}

func (s *S) TestAuxErrors(c *check.C) {
	r := testRecord(c)

	_, err := r.Aux("TOO LONG")
	c.Check(errors.Cause(err), check.Equals, ErrBadKey)
	c.Check(errors.Cause(r.SetAux("x", 1)), check.Equals, ErrBadKey)
	c.Check(errors.Cause(r.DelAux("")), check.Equals, ErrBadKey)

	c.Check(errors.Cause(r.SetAux("XX", struct{}{})), check.Equals, ErrUnknownTagType)
	c.Check(errors.Cause(r.SetAux("XX", int(1)<<40)), check.Equals, ErrBadLength)

	// A malformed stream reports its unknown type byte.
	c.Assert(r.SetAux("X0", 1), check.Equals, nil)
	r.data = append(r.data, 'Y', 'Y', '!', 0)
	_, err = r.Aux("ZZ")
	c.Check(errors.Cause(err), check.Equals, ErrUnknownTagType)
	c.Check(r.AuxCount(), check.Equals, 1)
}

func (s *S) TestAuxPrebuilt(c *check.C) {
	aux := []byte{
		'X', '0', 'c', 24,
		'X', '1', 'Z', 'a', 'b', 'c', 'd', 0,
		'X', '2', 'B', 'c', 3, 0, 0, 0, 1, 2, 3,
	}
	r, err := New("readname", testSeq, mustCigar(c, "22M"), aux)
	c.Assert(err, check.Equals, nil)
	c.Check(r.AuxCount(), check.Equals, 3)

	v, err := r.Aux("X0")
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.Equals, int8(24))
	v, err = r.Aux("X1")
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.Equals, "abcd")
	v, err = r.Aux("X2")
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.DeepEquals, []int8{1, 2, 3})
}
