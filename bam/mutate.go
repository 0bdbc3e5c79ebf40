// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import "github.com/pkg/errors"

// splice replaces the del bytes at offset at with repl, shifting any
// trailing bytes and growing or shrinking the buffer as needed. The
// record is made owned first. Header fields describing the spliced
// region must be updated by the caller after the splice.
func (r *Record) splice(at, del int, repl []byte) {
	r.ensureOwned()
	if len(repl) == del {
		copy(r.data[at:at+del], repl)
		return
	}
	data := make([]byte, 0, len(r.data)-del+len(repl))
	data = append(data, r.data[:at]...)
	data = append(data, repl...)
	data = append(data, r.data[at+del:]...)
	r.data = data
}

// SetRefID sets the reference id.
func (r *Record) SetRefID(id int) {
	r.ensureOwned()
	r.putU32(refIDOffset, uint32(int32(id)))
}

// SetPos sets the 0-based leftmost position and recalculates the
// index bin.
func (r *Record) SetPos(pos int) {
	r.ensureOwned()
	r.putU32(posOffset, uint32(int32(pos)))
	r.recalculateBin()
}

// SetMapQ sets the mapping quality.
func (r *Record) SetMapQ(q byte) {
	r.ensureOwned()
	r.putU32(binMqNlOffset, r.u32(binMqNlOffset)&^uint32(0xff<<8)|uint32(q)<<8)
}

// SetFlags sets the FLAG field. The stored bin is not recalculated,
// even when the unmapped bit changes.
func (r *Record) SetFlags(f Flags) {
	r.ensureOwned()
	r.putU32(flagNcOffset, r.u32(flagNcOffset)&0xffff|uint32(f)<<16)
}

// SetMateRefID sets the mate's reference id.
func (r *Record) SetMateRefID(id int) {
	r.ensureOwned()
	r.putU32(mateRefOffset, uint32(int32(id)))
}

// SetMatePos sets the mate's 0-based position.
func (r *Record) SetMatePos(pos int) {
	r.ensureOwned()
	r.putU32(matePosOffset, uint32(int32(pos)))
}

// SetTempLen sets the observed template length.
func (r *Record) SetTempLen(n int) {
	r.ensureOwned()
	r.putU32(tempLenOffset, uint32(int32(n)))
}

// SetStrand sets or clears the reverse flag from a strand character,
// which must be '+' or '-'.
func (r *Record) SetStrand(c byte) error {
	switch c {
	case '+':
		r.SetFlags(r.Flags() &^ Reverse)
	case '-':
		r.SetFlags(r.Flags() | Reverse)
	default:
		return errors.Wrapf(ErrBadLength, "strand %q", c)
	}
	return nil
}

// SetName replaces the read name, rewriting the name region and its
// stored length.
func (r *Record) SetName(name string) error {
	if !validName(name) {
		return errors.Wrapf(ErrBadLength, "name %q", name)
	}
	repl := make([]byte, len(name)+1)
	copy(repl, name)
	r.splice(fixedBytes, r.lReadName(), repl)
	r.putU32(binMqNlOffset, r.u32(binMqNlOffset)&^uint32(0xff)|uint32(len(name)+1))
	return nil
}

// SetCigar replaces the CIGAR operations, shifting the sequence,
// quality and tag regions, and recalculates the index bin.
func (r *Record) SetCigar(c Cigar) error {
	if len(c) > 0xffff {
		return errors.Wrapf(ErrBadLength, "cigar operation count %d", len(c))
	}
	repl := make([]byte, len(c)<<2)
	for i, co := range c {
		ord.PutUint32(repl[i<<2:], uint32(co))
	}
	r.splice(r.cigarOffset(), r.nCigar()<<2, repl)
	r.putU32(flagNcOffset, r.u32(flagNcOffset)&^uint32(0xffff)|uint32(len(c)))
	r.recalculateBin()
	return nil
}

// SetSeq replaces the nucleotide sequence, resizing the packed sequence
// and quality regions. All base qualities are reset to 0xff (unknown).
func (r *Record) SetSeq(seq string) error {
	if len(seq) == 0 || len(seq) > maxSeqLen {
		return errors.Wrapf(ErrBadLength, "sequence length %d", len(seq))
	}
	packed := packSeq(seq)
	repl := make([]byte, len(packed)+len(seq))
	copy(repl, packed)
	for i := len(packed); i < len(repl); i++ {
		repl[i] = 0xff
	}
	old := r.auxOffset() - r.seqOffset()
	r.splice(r.seqOffset(), old, repl)
	r.putU32(lSeqOffset, uint32(len(seq)))
	return nil
}

// SetQual replaces the per-base qualities, whose length must equal the
// sequence length.
func (r *Record) SetQual(qual []byte) error {
	if len(qual) != r.SeqLen() {
		return errors.Wrapf(ErrBadLength, "quality length %d for %d bases", len(qual), r.SeqLen())
	}
	r.ensureOwned()
	copy(r.data[r.qualOffset():], qual)
	return nil
}
