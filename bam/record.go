// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/apexbio/bambuf/internal/binning"
)

// Record buffer layout. All multi-byte integers are little-endian on
// the wire.
//
//	offset size semantic
//	0      4    reference id (-1 unmapped)
//	4      4    0-based leftmost position (-1 unset)
//	8      4    bin<<16 | mapQ<<8 | lReadName
//	12     4    flags<<16 | nCigarOp
//	16     4    sequence length in bases
//	20     4    mate reference id
//	24     4    mate position
//	28     4    template length
//	32     ...  name NUL, cigar, packed sequence, qualities, aux tags
const (
	refIDOffset   = 0
	posOffset     = 4
	binMqNlOffset = 8
	flagNcOffset  = 12
	lSeqOffset    = 16
	mateRefOffset = 20
	matePosOffset = 24
	tempLenOffset = 28
	fixedBytes    = 32
)

// maxName is the longest storable read name: the length byte holds the
// name plus its NUL terminator.
const maxName = 254

// validName reports whether a read name is storable: 1 to maxName
// bytes with no interior NUL.
func validName(name string) bool {
	if len(name) == 0 || len(name) > maxName {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] == 0 {
			return false
		}
	}
	return true
}

// A Record is a single BAM alignment held as its wire-encoded byte
// buffer. The zero value is not usable; construct records with New,
// Wrap or ReadWire.
//
// The byte holding the name's NUL terminator doubles as the borrowed
// flag: non-zero means the buffer is shared with an external producer
// and will be duplicated on first mutation. The byte is restored to
// zero on every externally observable serialization.
type Record struct {
	data []byte
}

// New returns a freshly allocated Record with the given read name,
// sequence, CIGAR and pre-encoded aux tag bytes. The record is
// unplaced: reference and mate reference ids and positions are -1 and
// all flags are clear. Qualities are set to 0xff (unknown).
func New(name, seq string, cigar Cigar, aux []byte) (*Record, error) {
	if !validName(name) {
		return nil, errors.Wrapf(ErrBadLength, "name %q", name)
	}
	if len(seq) == 0 || len(seq) > maxSeqLen {
		return nil, errors.Wrapf(ErrBadLength, "sequence length %d", len(seq))
	}
	if len(cigar) > 0xffff {
		return nil, errors.Wrapf(ErrBadLength, "cigar operation count %d", len(cigar))
	}

	lName := len(name) + 1
	packed := packSeq(seq)
	data := make([]byte, fixedBytes+lName+len(cigar)<<2+len(packed)+len(seq)+len(aux))

	r := &Record{data: data}
	r.putU32(refIDOffset, uint32(0xffffffff))
	r.putU32(posOffset, uint32(0xffffffff))
	r.putU32(binMqNlOffset, uint32(lName))
	r.putU32(flagNcOffset, uint32(len(cigar))&0xffff)
	r.putU32(lSeqOffset, uint32(len(seq)))
	r.putU32(mateRefOffset, uint32(0xffffffff))
	r.putU32(matePosOffset, uint32(0xffffffff))

	off := fixedBytes
	off += copy(data[off:], name)
	off++ // Name terminator doubles as the borrowed flag; zero means owned.
	for _, co := range cigar {
		ord.PutUint32(data[off:], uint32(co))
		off += 4
	}
	off += copy(data[off:], packed)
	for i := 0; i < len(seq); i++ {
		data[off+i] = 0xff
	}
	off += len(seq)
	copy(data[off:], aux)

	r.recalculateBin()
	return r, nil
}

// Wrap returns a Record borrowing the given wire-encoded buffer. The
// buffer is not copied: the record reads from it directly and flips to
// an owned duplicate on first mutation. On big-endian hosts the buffer
// is swapped to host order in place.
func Wrap(data []byte) (*Record, error) {
	if err := validateWire(data); err != nil {
		return nil, err
	}
	if hostIsBig {
		swapRecord(data, binary.LittleEndian)
	}
	r := &Record{data: data}
	r.data[r.nulIndex()] = 1
	return r, nil
}

// validateWire checks that the fixed header of a wire buffer is
// present and that the offsets it implies stay within the buffer.
// Lengths are read little-endian, the wire order.
func validateWire(data []byte) error {
	if len(data) < fixedBytes {
		return errors.Wrapf(ErrTruncated, "%d header bytes", len(data))
	}
	lName := int(binary.LittleEndian.Uint32(data[binMqNlOffset:]) & 0xff)
	if lName < 2 {
		return errors.Wrapf(ErrBadLength, "name length with terminator %d", lName)
	}
	nCigar := int(binary.LittleEndian.Uint32(data[flagNcOffset:]) & 0xffff)
	lSeq := int(int32(binary.LittleEndian.Uint32(data[lSeqOffset:])))
	if lSeq < 0 {
		return errors.Wrapf(ErrBadLength, "sequence length %d", lSeq)
	}
	end := fixedBytes + lName + nCigar<<2 + (lSeq+1)>>1 + lSeq
	if end > len(data) {
		return errors.Wrapf(ErrTruncated, "need %d bytes, have %d", end, len(data))
	}
	return nil
}

func (r *Record) u32(off int) uint32 { return ord.Uint32(r.data[off:]) }

func (r *Record) putU32(off int, v uint32) { ord.PutUint32(r.data[off:], v) }

func (r *Record) lReadName() int { return int(r.u32(binMqNlOffset) & 0xff) }
func (r *Record) nCigar() int    { return int(r.u32(flagNcOffset) & 0xffff) }

// Region offsets. Everything downstream of the fixed header is located
// from lReadName, nCigar and SeqLen alone.
func (r *Record) cigarOffset() int { return fixedBytes + r.lReadName() }
func (r *Record) seqOffset() int   { return r.cigarOffset() + r.nCigar()<<2 }
func (r *Record) qualOffset() int  { return r.seqOffset() + (r.SeqLen()+1)>>1 }
func (r *Record) auxOffset() int   { return r.qualOffset() + r.SeqLen() }

// nulIndex is the byte holding the name terminator and borrowed flag.
func (r *Record) nulIndex() int { return r.cigarOffset() - 1 }

// RefID returns the reference id, -1 when unmapped.
func (r *Record) RefID() int { return int(int32(r.u32(refIDOffset))) }

// Pos returns the 0-based leftmost position, -1 when unset.
func (r *Record) Pos() int { return int(int32(r.u32(posOffset))) }

// Bin returns the stored BAM index bin of the record.
func (r *Record) Bin() int { return int(r.u32(binMqNlOffset) >> 16) }

// MapQ returns the mapping quality.
func (r *Record) MapQ() byte { return byte(r.u32(binMqNlOffset) >> 8) }

// Flags returns the alignment FLAG field.
func (r *Record) Flags() Flags { return Flags(r.u32(flagNcOffset) >> 16) }

// SeqLen returns the sequence length in bases.
func (r *Record) SeqLen() int { return int(int32(r.u32(lSeqOffset))) }

// MateRefID returns the mate's reference id, -1 when unset.
func (r *Record) MateRefID() int { return int(int32(r.u32(mateRefOffset))) }

// MatePos returns the mate's 0-based position, -1 when unset.
func (r *Record) MatePos() int { return int(int32(r.u32(matePosOffset))) }

// TempLen returns the observed template length.
func (r *Record) TempLen() int { return int(int32(r.u32(tempLenOffset))) }

// Name returns the read name.
func (r *Record) Name() string { return string(r.data[fixedBytes:r.nulIndex()]) }

// Cigar returns the CIGAR operations as a slice reinterpreted over the
// record buffer. The slice is valid until the next structural
// mutation and must not be written through.
func (r *Record) Cigar() Cigar {
	n := r.nCigar()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*CigarOp)(unsafe.Pointer(&r.data[r.cigarOffset()])), n)
}

// RawSeq returns the packed nucleotide bytes, two bases per byte, the
// first base of each pair in the high nibble.
func (r *Record) RawSeq() []byte { return r.data[r.seqOffset():r.qualOffset()] }

// Qual returns the per-base qualities. A value of 0xff means unknown.
func (r *Record) Qual() []byte { return r.data[r.qualOffset():r.auxOffset()] }

// Covered returns the number of reference bases covered by the
// alignment, and 0 when the record is unmapped regardless of CIGAR.
func (r *Record) Covered() int {
	if r.Unmapped() {
		return 0
	}
	ref, _ := r.Cigar().Lengths()
	return ref
}

// Strand returns '+' for forward alignments and '-' for reverse.
func (r *Record) Strand() byte {
	if r.Reversed() {
		return '-'
	}
	return '+'
}

// Equal reports whether r and o hold byte-identical records. The
// borrowed flag byte is excluded from the comparison.
func (r *Record) Equal(o *Record) bool {
	if len(r.data) != len(o.data) {
		return false
	}
	rn, on := r.nulIndex(), o.nulIndex()
	for i := range r.data {
		a, b := r.data[i], o.data[i]
		if i == rn {
			a = 0
		}
		if i == on {
			b = 0
		}
		if a != b {
			return false
		}
	}
	return true
}

// String returns a string representation of the Record.
func (r *Record) String() string {
	return fmt.Sprintf("%s %v %v %d %d..%d (%d) %d %d:%d %d %s %v",
		r.Name(),
		r.Flags(),
		r.Cigar(),
		r.MapQ(),
		r.Pos(),
		r.Pos()+r.Covered(),
		r.Bin(),
		r.RefID(),
		r.MateRefID(),
		r.MatePos(),
		r.TempLen(),
		r.Seq(),
		r.Qual(),
	)
}

// recalculateBin stores the index bin for the current position and
// reference span.
func (r *Record) recalculateBin() {
	pos := r.Pos()
	end := pos + r.Covered()
	if !binning.IsValidPos(pos) || !binning.IsValidPos(end) {
		return
	}
	r.setBin(binning.BinFor(pos, end))
}

func (r *Record) setBin(b uint16) {
	r.putU32(binMqNlOffset, r.u32(binMqNlOffset)&0xffff|uint32(b)<<16)
}
