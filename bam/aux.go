// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import (
	"math"

	"github.com/pkg/errors"
)

// A Char is an aux tag value of wire type 'A', a single printable
// character.
type Char byte

// A Hex is an aux tag value of wire type 'H': hex-encoded text, kept
// distinct from the 'Z' string type.
type Hex []byte

// auxJumps gives the payload width of fixed-width aux value types, -1
// for the variable-width types, and 0 for unrecognized type bytes.
var auxJumps = [256]int{
	'A': 1,
	'c': 1, 'C': 1,
	's': 2, 'S': 2,
	'i': 4, 'I': 4,
	'f': 4,
	'Z': -1,
	'H': -1,
	'B': -1,
}

// auxEntryLen returns the total byte length of the tag entry at the
// start of b, including its two-byte key.
func auxEntryLen(b []byte) (int, error) {
	if len(b) < 4 {
		return 0, errors.Wrapf(ErrTruncated, "%d byte tag entry", len(b))
	}
	switch t := b[2]; {
	case auxJumps[t] > 0:
		n := 3 + auxJumps[t]
		if n > len(b) {
			return 0, errors.Wrapf(ErrTruncated, "%c tag payload", t)
		}
		return n, nil
	case t == 'Z' || t == 'H':
		for i := 3; i < len(b); i++ {
			if b[i] == 0 {
				return i + 1, nil
			}
		}
		return 0, errors.Wrapf(ErrTruncated, "unterminated %c tag", t)
	case t == 'B':
		if len(b) < 8 {
			return 0, errors.Wrap(ErrTruncated, "array tag header")
		}
		w := auxJumps[b[3]]
		if w <= 0 {
			return 0, errors.Wrapf(ErrUnknownTagType, "array subtype %q", b[3])
		}
		n := 8 + int(ord.Uint32(b[4:]))*w
		if n > len(b) {
			return 0, errors.Wrap(ErrTruncated, "array tag payload")
		}
		return n, nil
	default:
		return 0, errors.Wrapf(ErrUnknownTagType, "%q", t)
	}
}

// decodeAux returns the typed value of the tag entry at the start of b.
// The entry must already have been length-checked by auxEntryLen.
func decodeAux(b []byte) (interface{}, error) {
	switch t := b[2]; t {
	case 'A':
		return Char(b[3]), nil
	case 'c':
		return int8(b[3]), nil
	case 'C':
		return uint8(b[3]), nil
	case 's':
		return int16(ord.Uint16(b[3:])), nil
	case 'S':
		return ord.Uint16(b[3:]), nil
	case 'i':
		return int32(ord.Uint32(b[3:])), nil
	case 'I':
		return ord.Uint32(b[3:]), nil
	case 'f':
		return math.Float32frombits(ord.Uint32(b[3:])), nil
	case 'Z':
		return string(zTerminated(b[3:])), nil
	case 'H':
		h := zTerminated(b[3:])
		return Hex(append([]byte(nil), h...)), nil
	case 'B':
		n := int(ord.Uint32(b[4:]))
		p := b[8:]
		switch st := b[3]; st {
		case 'c':
			v := make([]int8, n)
			for i := range v {
				v[i] = int8(p[i])
			}
			return v, nil
		case 'C':
			return append([]uint8(nil), p[:n]...), nil
		case 's':
			v := make([]int16, n)
			for i := range v {
				v[i] = int16(ord.Uint16(p[i*2:]))
			}
			return v, nil
		case 'S':
			v := make([]uint16, n)
			for i := range v {
				v[i] = ord.Uint16(p[i*2:])
			}
			return v, nil
		case 'i':
			v := make([]int32, n)
			for i := range v {
				v[i] = int32(ord.Uint32(p[i*4:]))
			}
			return v, nil
		case 'I':
			v := make([]uint32, n)
			for i := range v {
				v[i] = ord.Uint32(p[i*4:])
			}
			return v, nil
		case 'f':
			v := make([]float32, n)
			for i := range v {
				v[i] = math.Float32frombits(ord.Uint32(p[i*4:]))
			}
			return v, nil
		default:
			return nil, errors.Wrapf(ErrUnknownTagType, "array subtype %q", st)
		}
	default:
		return nil, errors.Wrapf(ErrUnknownTagType, "%q", t)
	}
}

func zTerminated(b []byte) []byte {
	for i, v := range b {
		if v == 0 {
			return b[:i]
		}
	}
	return b
}

// encodeAux returns the typed wire payload for a tag value, starting
// with its type byte. Plain int values are narrowed to the smallest
// signed type (c, s, i) that holds them, and plain uint values to the
// smallest unsigned type (C, S, I).
func encodeAux(v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case Char:
		return []byte{'A', byte(v)}, nil
	case int:
		switch {
		case math.MinInt8 <= v && v <= math.MaxInt8:
			return []byte{'c', byte(v)}, nil
		case math.MinInt16 <= v && v <= math.MaxInt16:
			b := []byte{'s', 0, 0}
			ord.PutUint16(b[1:], uint16(v))
			return b, nil
		case math.MinInt32 <= v && v <= math.MaxInt32:
			b := []byte{'i', 0, 0, 0, 0}
			ord.PutUint32(b[1:], uint32(v))
			return b, nil
		default:
			return nil, errors.Wrapf(ErrBadLength, "integer value %d", v)
		}
	case uint:
		switch {
		case v <= math.MaxUint8:
			return []byte{'C', byte(v)}, nil
		case v <= math.MaxUint16:
			b := []byte{'S', 0, 0}
			ord.PutUint16(b[1:], uint16(v))
			return b, nil
		case v <= math.MaxUint32:
			b := []byte{'I', 0, 0, 0, 0}
			ord.PutUint32(b[1:], uint32(v))
			return b, nil
		default:
			return nil, errors.Wrapf(ErrBadLength, "unsigned value %d", v)
		}
	case int8:
		return []byte{'c', byte(v)}, nil
	case uint8:
		return []byte{'C', v}, nil
	case int16:
		b := []byte{'s', 0, 0}
		ord.PutUint16(b[1:], uint16(v))
		return b, nil
	case uint16:
		b := []byte{'S', 0, 0}
		ord.PutUint16(b[1:], v)
		return b, nil
	case int32:
		b := []byte{'i', 0, 0, 0, 0}
		ord.PutUint32(b[1:], uint32(v))
		return b, nil
	case uint32:
		b := []byte{'I', 0, 0, 0, 0}
		ord.PutUint32(b[1:], v)
		return b, nil
	case float32:
		b := []byte{'f', 0, 0, 0, 0}
		ord.PutUint32(b[1:], math.Float32bits(v))
		return b, nil
	case string:
		b := make([]byte, 0, len(v)+2)
		b = append(b, 'Z')
		b = append(b, v...)
		return append(b, 0), nil
	case Hex:
		b := make([]byte, 0, len(v)+2)
		b = append(b, 'H')
		b = append(b, v...)
		return append(b, 0), nil
	case []int8:
		b := auxArrayHeader('c', len(v))
		for _, e := range v {
			b = append(b, byte(e))
		}
		return b, nil
	case []uint8:
		return append(auxArrayHeader('C', len(v)), v...), nil
	case []int16:
		b := auxArrayHeader('s', len(v))
		for _, e := range v {
			b = ordAppend16(b, uint16(e))
		}
		return b, nil
	case []uint16:
		b := auxArrayHeader('S', len(v))
		for _, e := range v {
			b = ordAppend16(b, e)
		}
		return b, nil
	case []int32:
		b := auxArrayHeader('i', len(v))
		for _, e := range v {
			b = ordAppend32(b, uint32(e))
		}
		return b, nil
	case []uint32:
		b := auxArrayHeader('I', len(v))
		for _, e := range v {
			b = ordAppend32(b, e)
		}
		return b, nil
	case []float32:
		b := auxArrayHeader('f', len(v))
		for _, e := range v {
			b = ordAppend32(b, math.Float32bits(e))
		}
		return b, nil
	default:
		return nil, errors.Wrapf(ErrUnknownTagType, "dynamic type %T", v)
	}
}

func auxArrayHeader(sub byte, n int) []byte {
	b := make([]byte, 6, 6+n*auxJumps[sub])
	b[0] = 'B'
	b[1] = sub
	ord.PutUint32(b[2:], uint32(n))
	return b
}

func ordAppend16(b []byte, v uint16) []byte {
	var s [2]byte
	ord.PutUint16(s[:], v)
	return append(b, s[:]...)
}

func ordAppend32(b []byte, v uint32) []byte {
	var s [4]byte
	ord.PutUint32(s[:], v)
	return append(b, s[:]...)
}

// findAux locates the entry for key in the tag stream, returning its
// [begin,end) offsets within the record buffer, or begin == -1 when the
// key is absent.
func (r *Record) findAux(key string) (begin, end int, err error) {
	data := r.data
	for i := r.auxOffset(); i < len(data); {
		n, err := auxEntryLen(data[i:])
		if err != nil {
			return -1, -1, err
		}
		if data[i] == key[0] && data[i+1] == key[1] {
			return i, i + n, nil
		}
		i += n
	}
	return -1, -1, nil
}

// Aux returns the value of the tag with the given two-byte key, or nil
// when the tag is absent.
func (r *Record) Aux(key string) (interface{}, error) {
	if len(key) != 2 {
		return nil, errors.Wrapf(ErrBadKey, "%q", key)
	}
	begin, end, err := r.findAux(key)
	if err != nil || begin < 0 {
		return nil, err
	}
	return decodeAux(r.data[begin:end])
}

// SetAux sets the tag with the given two-byte key to the given value,
// replacing an existing entry in place when the payload width is
// unchanged and splicing the stream otherwise. A nil value deletes the
// tag. Stream order is preserved except for the mutated entry.
func (r *Record) SetAux(key string, v interface{}) error {
	if len(key) != 2 {
		return errors.Wrapf(ErrBadKey, "%q", key)
	}
	if v == nil {
		return r.DelAux(key)
	}
	payload, err := encodeAux(v)
	if err != nil {
		return err
	}
	begin, end, err := r.findAux(key)
	if err != nil {
		return err
	}
	if begin < 0 {
		entry := make([]byte, 0, 2+len(payload))
		entry = append(entry, key[0], key[1])
		entry = append(entry, payload...)
		r.splice(len(r.data), 0, entry)
		return nil
	}
	r.splice(begin+2, end-(begin+2), payload)
	return nil
}

// DelAux removes the tag with the given two-byte key. Removing an
// absent tag is a no-op.
func (r *Record) DelAux(key string) error {
	if len(key) != 2 {
		return errors.Wrapf(ErrBadKey, "%q", key)
	}
	begin, end, err := r.findAux(key)
	if err != nil || begin < 0 {
		return err
	}
	r.splice(begin, end-begin, nil)
	return nil
}

// ClearAux removes every tag from the record.
func (r *Record) ClearAux() {
	off := r.auxOffset()
	r.splice(off, len(r.data)-off, nil)
}

// EachAux calls fn for each tag in stream order. Iteration stops at the
// first error from fn or from decoding.
func (r *Record) EachAux(fn func(key string, v interface{}) error) error {
	data := r.data
	for i := r.auxOffset(); i < len(data); {
		n, err := auxEntryLen(data[i:])
		if err != nil {
			return err
		}
		v, err := decodeAux(data[i : i+n])
		if err != nil {
			return err
		}
		if err := fn(string(data[i:i+2]), v); err != nil {
			return err
		}
		i += n
	}
	return nil
}

// AuxCount returns the number of tags in the record, skipping over
// payloads without decoding them. Malformed trailing data is not
// counted.
func (r *Record) AuxCount() int {
	var n int
	data := r.data
	for i := r.auxOffset(); i < len(data); {
		j, err := auxEntryLen(data[i:])
		if err != nil {
			break
		}
		n++
		i += j
	}
	return n
}
