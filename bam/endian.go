// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import (
	"encoding/binary"
	"unsafe"
)

// The wire format is little-endian, but the in-memory buffer is kept in
// host order so that the CIGAR region can be reinterpreted as a
// []CigarOp without copying. On little-endian hosts the two orders
// coincide and the swap functions are never called; on big-endian hosts
// the buffer is swapped to host order when wrapped and back to wire
// order around serialization.
var (
	// ord is the byte order of record buffers in memory: the host order.
	ord binary.ByteOrder = func() binary.ByteOrder {
		x := uint16(1)
		if *(*byte)(unsafe.Pointer(&x)) == 1 {
			return binary.LittleEndian
		}
		return binary.BigEndian
	}()
	hostIsBig = ord != binary.ByteOrder(binary.LittleEndian)
)

func swap2(b []byte) { b[0], b[1] = b[1], b[0] }

func swap4(b []byte) { b[0], b[3] = b[3], b[0]; b[1], b[2] = b[2], b[1] }

// swapRecord reverses the byte order of every fixed-width integer in
// the record buffer: the eight 32-bit header words, each CIGAR
// operation word and each numeric aux tag payload. Text fields, the
// packed sequence and the qualities are untouched. cur is the order the
// buffer is currently in; the walk needs it to read the lengths that
// locate the swappable regions.
func swapRecord(data []byte, cur binary.ByteOrder) {
	if len(data) < fixedBytes {
		return
	}
	lName := int(cur.Uint32(data[binMqNlOffset:]) & 0xff)
	nCigar := int(cur.Uint32(data[flagNcOffset:]) & 0xffff)
	lSeq := int(int32(cur.Uint32(data[lSeqOffset:])))
	for off := 0; off < fixedBytes; off += 4 {
		swap4(data[off:])
	}
	off := fixedBytes + lName
	for i := 0; i < nCigar && off+4 <= len(data); i++ {
		swap4(data[off:])
		off += 4
	}
	if lSeq < 0 {
		return
	}
	off += (lSeq+1)>>1 + lSeq
	if off < 0 || off > len(data) {
		return
	}
	swapAux(data[off:], cur)
}

// swapAux reverses the byte order of the numeric payloads of an aux tag
// stream: scalar s/S/i/I/f values and each element of a B array,
// including its length word.
func swapAux(b []byte, cur binary.ByteOrder) {
	for i := 0; i+3 <= len(b); {
		switch t := b[i+2]; t {
		case 'A', 'c', 'C':
			i += 4
		case 's', 'S':
			if i+5 > len(b) {
				return
			}
			swap2(b[i+3:])
			i += 5
		case 'i', 'I', 'f':
			if i+7 > len(b) {
				return
			}
			swap4(b[i+3:])
			i += 7
		case 'Z', 'H':
			i += 3
			for i < len(b) && b[i] != 0 {
				i++
			}
			i++
		case 'B':
			if i+8 > len(b) {
				return
			}
			w := auxJumps[b[i+3]]
			n := int(cur.Uint32(b[i+4:]))
			swap4(b[i+4:])
			if w <= 0 {
				return
			}
			i += 8
			for k := 0; k < n && i+w <= len(b); k++ {
				switch w {
				case 2:
					swap2(b[i:])
				case 4:
					swap4(b[i:])
				}
				i += w
			}
		default:
			return
		}
	}
}
