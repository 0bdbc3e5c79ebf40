// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binning provides the UCSC hierarchical binning arithmetic used
// by BAM records and their companion indexes.
package binning

const (
	indexWordBits = 29
	nextBinShift  = 3
)

// IsValidPos returns a boolean indicating whether the given position
// is in the valid range for BAM/SAM.
func IsValidPos(i int) bool { return -1 <= i && i <= (1<<indexWordBits-1)-1 } // 0-based.

const (
	level0 = uint32(((1 << (iota * nextBinShift)) - 1) / 7)
	level1
	level2
	level3
	level4
	level5
)

const (
	level0Shift = indexWordBits - (iota * nextBinShift)
	level1Shift
	level2Shift
	level3Shift
	level4Shift
	level5Shift
)

// BinFor returns the bin number for an interval covering [beg,end)
// (zero-based, half-close-half-open).
func BinFor(beg, end int) uint16 {
	end--
	switch {
	case beg>>level5Shift == end>>level5Shift:
		return uint16(level5 + uint32(beg>>level5Shift))
	case beg>>level4Shift == end>>level4Shift:
		return uint16(level4 + uint32(beg>>level4Shift))
	case beg>>level3Shift == end>>level3Shift:
		return uint16(level3 + uint32(beg>>level3Shift))
	case beg>>level2Shift == end>>level2Shift:
		return uint16(level2 + uint32(beg>>level2Shift))
	case beg>>level1Shift == end>>level1Shift:
		return uint16(level1 + uint32(beg>>level1Shift))
	}
	return uint16(level0)
}
