// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bam provides a buffer-backed representation of BAM alignment
// records.
//
// A Record is a single contiguous byte buffer holding the exact wire
// encoding of one alignment: the fixed-width header fields, the
// NUL-terminated read name, the packed CIGAR operations, the 4-bit
// packed nucleotide sequence, the per-base qualities and the auxiliary
// tag stream. Field accessors decode directly from the buffer; mutators
// write back into it, splicing the variable-length regions as needed.
//
// Records wrapped around an externally produced buffer are borrowed
// views and duplicate their storage on first mutation, so records
// sliced out of a bulk-decoded block stay allocation-free until
// written to.
//
// Concurrent read-only access to a record is safe. Two records sharing
// a borrowed buffer must not both mutate; callers either establish
// exclusion externally or duplicate eagerly with Clone.
package bam
