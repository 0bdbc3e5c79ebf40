// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Cigar is a set of CIGAR operations.
type Cigar []CigarOp

// String returns the CIGAR string for c, or "*" when c is empty.
func (c Cigar) String() string {
	if len(c) == 0 {
		return "*"
	}
	var b bytes.Buffer
	for _, co := range c {
		fmt.Fprint(&b, co)
	}
	return b.String()
}

// Lengths returns the number of reference and read bases described by
// the Cigar.
func (c Cigar) Lengths() (ref, read int) {
	for _, co := range c {
		t := co.Type()
		if t.ConsumesReference() {
			ref += co.Len()
		}
		if t.ConsumesQuery() {
			read += co.Len()
		}
	}
	return ref, read
}

// CigarOp is a single CIGAR operation: the operation length in the
// upper 28 bits and the operation type in the lower 4.
type CigarOp uint32

// maxCigarLen is one more than the largest representable operation
// length.
const maxCigarLen = 1 << 28

// NewCigarOp returns a CIGAR operation of length n for the operation
// character c, which must be one of MIDNSHP=X.
func NewCigarOp(n int, c byte) (CigarOp, error) {
	t := cigarOpTypeLookup[c]
	if t == cigarInvalid {
		return 0, errors.Wrapf(ErrInvalidCigarOp, "%q", c)
	}
	if n < 0 || n >= maxCigarLen {
		return 0, errors.Wrapf(ErrBadLength, "cigar operation length %d", n)
	}
	return CigarOp(t) | CigarOp(n)<<4, nil
}

// Type returns the type of the CIGAR operation for the CigarOp.
func (co CigarOp) Type() CigarOpType { return CigarOpType(co & 0xf) }

// Len returns the number of positions affected by the CigarOp CIGAR operation.
func (co CigarOp) Len() int { return int(co >> 4) }

// String returns the string representation of the CigarOp.
func (co CigarOp) String() string { return fmt.Sprintf("%d%s", co.Len(), co.Type().String()) }

// A CigarOpType represents the type of operation described by a CigarOp.
type CigarOpType byte

const (
	CigarMatch       CigarOpType = iota // Alignment match (can be a sequence match or mismatch).
	CigarInsertion                      // Insertion to the reference.
	CigarDeletion                       // Deletion from the reference.
	CigarSkipped                        // Skipped region from the reference.
	CigarSoftClipped                    // Soft clipping (clipped sequences present in SEQ).
	CigarHardClipped                    // Hard clipping (clipped sequences NOT present in SEQ).
	CigarPadded                         // Padding (silent deletion from padded reference).
	CigarEqual                          // Sequence match.
	CigarMismatch                       // Sequence mismatch.

	cigarInvalid CigarOpType = 0xf
)

var cigarOps = []string{"M", "I", "D", "N", "S", "H", "P", "=", "X"}

// cigarConsume holds two bits per operation type: bit 0 set when the
// operation consumes query bases, bit 1 set when it consumes reference
// bases.
//
//	          X  =  P  H  S  N  D  I  M
const cigarConsume = 0b11_11_00_00_01_10_10_01_11

// cigarMatchMask has a bit set for each operation type that aligns
// query bases against reference bases (M, = and X).
const cigarMatchMask = 1<<CigarMatch | 1<<CigarEqual | 1<<CigarMismatch

// ConsumesQuery returns whether the operation type consumes query bases.
func (t CigarOpType) ConsumesQuery() bool { return cigarConsume>>(2*uint(t))&1 != 0 }

// ConsumesReference returns whether the operation type consumes
// reference bases.
func (t CigarOpType) ConsumesReference() bool { return cigarConsume>>(2*uint(t))&2 != 0 }

// IsMatchOrMismatch returns whether the operation type aligns query
// bases against the reference.
func (t CigarOpType) IsMatchOrMismatch() bool { return cigarMatchMask>>uint(t)&1 != 0 }

// String returns the string representation of a CigarOpType. Invalid
// operation types render as "?".
func (t CigarOpType) String() string {
	if int(t) >= len(cigarOps) {
		return "?"
	}
	return cigarOps[t]
}

var cigarOpTypeLookup [256]CigarOpType

func init() {
	for i := range cigarOpTypeLookup {
		cigarOpTypeLookup[i] = cigarInvalid
	}
	for op, c := range []byte{'M', 'I', 'D', 'N', 'S', 'H', 'P', '=', 'X'} {
		cigarOpTypeLookup[c] = CigarOpType(op)
	}
}

var powers = []int{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8}

// atoi returns the integer interpretation of b which must be an ASCII
// decimal number representation.
func atoi(b []byte, i int) (int, error) {
	if len(b) == 0 || len(b) > len(powers) {
		return 0, errors.Wrapf(ErrBadLength, "cigar operation count %q at %d", b, i)
	}
	n := 0
	k := len(b) - 1
	for i, v := range b {
		n += int(v-'0') * powers[k-i]
	}
	if n < 0 || maxCigarLen <= n {
		return n, errors.Wrapf(ErrBadLength, "cigar operation count %q at %d", b, i)
	}
	return n, nil
}

// ParseCigar returns a Cigar parsed from the provided byte slice.
// A "*" input returns a nil Cigar.
func ParseCigar(b []byte) (Cigar, error) {
	if len(b) == 1 && b[0] == '*' {
		return nil, nil
	}
	var c Cigar
	for i := 0; i < len(b); i++ {
		j := i
		for j < len(b) && '0' <= b[j] && b[j] <= '9' {
			j++
		}
		if j == len(b) {
			return nil, errors.Wrapf(ErrInvalidCigarOp, "missing operation in %q", b)
		}
		n, err := atoi(b[i:j], i)
		if err != nil {
			return nil, err
		}
		op, err := NewCigarOp(n, b[j])
		if err != nil {
			return nil, errors.Wrapf(err, "cigar %q at %d", b, j)
		}
		c = append(c, op)
		i = j
	}
	return c, nil
}
