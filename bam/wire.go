// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// WriteWire writes the record to w in wire form: a 32-bit little-endian
// block size equal to the buffer length, then the buffer itself. The
// borrowed flag byte is zeroed for the duration of the write, and on
// big-endian hosts the buffer is swapped to wire order and back.
func (r *Record) WriteWire(w io.Writer) error {
	nul := r.nulIndex()
	saved := r.data[nul]
	r.data[nul] = 0
	defer func() { r.data[nul] = saved }()

	if hostIsBig {
		swapRecord(r.data, ord)
		defer swapRecord(r.data, binary.LittleEndian)
	}

	ew := &errWriter{w: w}
	bw := binaryWriter{w: ew}
	bw.writeInt32(int32(len(r.data)))
	ew.Write(r.data)
	return ew.err
}

// ReadWire reads one wire-encoded record from rd: a 32-bit
// little-endian block size followed by that many record bytes. The
// returned record owns its buffer.
func ReadWire(rd io.Reader) (*Record, error) {
	var sb [4]byte
	if _, err := io.ReadFull(rd, sb[:]); err != nil {
		return nil, err
	}
	size := int(int32(binary.LittleEndian.Uint32(sb[:])))
	if size < fixedBytes {
		return nil, errors.Wrapf(ErrTruncated, "block size %d", size)
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(rd, data); err != nil {
		return nil, err
	}
	if err := validateWire(data); err != nil {
		return nil, err
	}
	if hostIsBig {
		swapRecord(data, binary.LittleEndian)
	}
	return &Record{data: data}, nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	var n int
	n, w.err = w.w.Write(p)
	return n, w.err
}

type binaryWriter struct {
	w   *errWriter
	buf [4]byte
}

func (w *binaryWriter) writeInt32(v int32) {
	binary.LittleEndian.PutUint32(w.buf[:4], uint32(v))
	w.w.Write(w.buf[:4])
}
