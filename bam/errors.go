// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import "github.com/pkg/errors"

// Error kinds reported by record operations. Call sites wrap these with
// context; use errors.Is or errors.Cause to classify a failure.
var (
	// ErrBadKey is returned when an aux tag key is not exactly two bytes.
	ErrBadKey = errors.New("bam: invalid aux tag key")

	// ErrBadLength is returned when a name, sequence, quality slice,
	// CIGAR operation length or strand character is out of range.
	ErrBadLength = errors.New("bam: length or value out of range")

	// ErrUnknownTagType is returned when an aux tag wire type byte is
	// not in the recognized set.
	ErrUnknownTagType = errors.New("bam: unknown aux tag type")

	// ErrInvalidCigarOp is returned when a CIGAR operation character is
	// outside MIDNSHP=X during construction.
	ErrInvalidCigarOp = errors.New("bam: invalid cigar operation")

	// ErrTruncated is returned when a wire buffer is too short for the
	// lengths its header declares.
	ErrTruncated = errors.New("bam: truncated record")
)
