// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

const (
	formatLen  = 15 // format information bits
	versionLen = 18 // version information bits

	formatPoly  = 0x537  // x^10 + x^8 + x^5 + x^4 + x^2 + x + 1
	formatMask  = 0x5412 // XORed with format information
	versionPoly = 0x1f25 // x^12 + x^11 + x^10 + x^9 + x^8 + x^5 + x^2 + 1
)

// Error correction level indicators: L=01, M=00, Q=11, H=10.
var levelBits = [4]uint32{L: 1, M: 0, Q: 3, H: 2}

// bch returns the remainder of v multiplied by x^n divided by poly,
// where n is the degree of poly.
func bch(v, poly uint32) uint32 {
	n := bits.Len32(poly) - 1
	v <<= n
	for l := bits.Len32(v); l > n; l = bits.Len32(v) {
		v ^= poly << (l - 1 - n)
	}
	return v
}

// FormatBits returns the 15 bit format information for level l and
// mask pattern mask, BCH coded and masked.
func FormatBits(l Level, mask int) uint32 {
	v := levelBits[l]<<3 | uint32(mask)
	return (v<<10 | bch(v, formatPoly)) ^ formatMask
}

// VersionBits returns the 18 bit BCH coded version information.
// It is only present in versions 7 and up.
func VersionBits(v Version) uint32 {
	return uint32(v)<<12 | bch(uint32(v), versionPoly)
}

// formatPos returns the coordinates of format bit i, bit 0 being the
// least significant, in the copy around the upper left position box
// and in the copy split between the other two.
func formatPos(siz, i int) (x1, y1, x2, y2 int) {
	switch {
	case i < 6:
		x1, y1 = 8, i
	case i < 8:
		x1, y1 = 8, i+1 // skip the horizontal timing strip
	case i == 8:
		x1, y1 = 7, 8
	default:
		x1, y1 = 14-i, 8
	}
	if i < 8 {
		x2, y2 = siz-1-i, 8
	} else {
		x2, y2 = 8, siz-15+i
	}
	return
}

// versionPos returns the coordinates of version bit i in the block
// above the lower left position box.  The block left of the upper
// right position box is its transpose.
func versionPos(siz, i int) (x, y int) {
	return i / 3, siz - 11 + i%3
}

// WriteFormat writes the format information for level l and mask
// pattern mask to the reserved modules of m.
func (m *Matrix) WriteFormat(l Level, mask int) {
	fb := FormatBits(l, mask)
	for i := 0; i < formatLen; i++ {
		dark := fb>>i&1 != 0
		x1, y1, x2, y2 := formatPos(m.Size, i)
		m.setDark(x1, y1, dark)
		m.setDark(x2, y2, dark)
	}
}

// WriteVersion writes the version information to the reserved
// modules of m.  It does nothing for versions below 7.
func (m *Matrix) WriteVersion(v Version) {
	if v < 7 {
		return
	}
	vb := VersionBits(v)
	for i := 0; i < versionLen; i++ {
		dark := vb>>i&1 != 0
		x, y := versionPos(m.Size, i)
		m.setDark(x, y, dark)
		m.setDark(y, x, dark)
	}
}
