// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// A Packer receives the MsgPack projection of a record. BeginArray and
// BeginMap open a container of n elements; Pack emits one value.
type Packer interface {
	BeginArray(n int) error
	BeginMap(n int) error
	Pack(v interface{}) error
}

type encoderPacker struct {
	enc *msgpack.Encoder
}

// NewPacker returns a Packer emitting MsgPack to w.
func NewPacker(w io.Writer) Packer {
	return encoderPacker{enc: msgpack.NewEncoder(w)}
}

func (p encoderPacker) BeginArray(n int) error { return p.enc.EncodeArrayLen(n) }

func (p encoderPacker) BeginMap(n int) error { return p.enc.EncodeMapLen(n) }

func (p encoderPacker) Pack(v interface{}) error { return p.enc.Encode(v) }

// MarshalMsgpack emits the record as a 13-element array: name, flag,
// reference id, 1-based position, mapping quality, CIGAR lengths,
// CIGAR operation characters, mate reference id, 1-based mate
// position, template length, sequence text, quality bytes and the tag
// map in stream order.
func (r *Record) MarshalMsgpack(p Packer) error {
	if err := p.BeginArray(13); err != nil {
		return err
	}

	cigar := r.Cigar()
	lengths := make([]int, len(cigar))
	chars := make([]string, len(cigar))
	for i, co := range cigar {
		lengths[i] = co.Len()
		chars[i] = co.Type().String()
	}

	for _, v := range []interface{}{
		r.Name(),
		uint16(r.Flags()),
		r.RefID(),
		r.Pos() + 1,
		r.MapQ(),
		lengths,
		chars,
		r.MateRefID(),
		r.MatePos() + 1,
		r.TempLen(),
		r.Seq().String(),
		r.Qual(),
	} {
		if err := p.Pack(v); err != nil {
			return err
		}
	}

	if err := p.BeginMap(r.AuxCount()); err != nil {
		return err
	}
	return r.EachAux(func(key string, v interface{}) error {
		if err := p.Pack(key); err != nil {
			return err
		}
		return p.Pack(packableAux(v))
	})
}

// packableAux converts record-specific tag value types to types the
// encoder understands.
func packableAux(v interface{}) interface{} {
	switch v := v.(type) {
	case Char:
		return string(rune(v))
	case Hex:
		return []byte(v)
	default:
		return v
	}
}
