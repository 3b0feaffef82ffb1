// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: symbol
// tables, segment encoding, error correction blocks, module placement,
// masking and format information.
package coding // import "github.com/unixdj/qrenc/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrenc/gf256"
)

var (
	ErrCapacityExceeded     = errors.New("qr: data exceeds symbol capacity")
	ErrUnsupportedCharacter = errors.New("qr: character not encodable in mode")
	ErrInvalidParameter     = errors.New("qr: invalid parameter")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is in the range 1 to 40.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// QR version size classes, selecting the character count field length.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// Words returns the total number of data and error correction
// codewords in a symbol of version v.
func (v Version) Words() int { return vtab[v].words }

// Remainder returns the number of remainder bits placed after the
// last codeword.
func (v Version) Remainder() int { return vtab[v].remainder }

// Alignment returns the row and column coordinates of the alignment
// pattern centres, or nil for version 1.
func (v Version) Alignment() []int {
	if a := vtab[v].align; len(a) != 0 {
		return append([]int(nil), a...)
	}
	return nil
}

// DataBytes returns the number of data codewords that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	return v.Layout(l).DataBytes()
}

// Blocks returns the number of error correction blocks in a QR code
// with the given version and level.
func (v Version) Blocks(l Level) int { return v.Layout(l).Blocks() }

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// A Layout describes the error correction block structure of a
// version and level.  Blocks in group 2 hold one data codeword more
// than blocks in group 1.
type Layout struct {
	Check  int // error correction codewords per block
	Group1 int // number of blocks in group 1
	Data1  int // data codewords per group 1 block
	Group2 int // number of blocks in group 2
}

// Layout returns the block layout for version v and level l.
func (v Version) Layout(l Level) Layout {
	lev := vtab[v].level[l]
	return Layout{
		Check:  lev.check,
		Group1: lev.nblock1,
		Data1:  lev.ndata1,
		Group2: lev.nblock2,
	}
}

// Blocks returns the total number of blocks.
func (b Layout) Blocks() int { return b.Group1 + b.Group2 }

// DataBytes returns the total number of data codewords.
func (b Layout) DataBytes() int {
	return b.Group1*b.Data1 + b.Group2*(b.Data1+1)
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% recoverable
	M              // 15% recoverable
	Q              // 25% recoverable
	H              // 30% recoverable
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// ParseLevel returns the level named by s, one of "L", "M", "Q", "H"
// in either case.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "l", "L":
		return L, nil
	case "m", "M":
		return M, nil
	case "q", "Q":
		return Q, nil
	case "h", "H":
		return H, nil
	}
	return 0, fmt.Errorf("%w: level %q", ErrInvalidParameter, s)
}
