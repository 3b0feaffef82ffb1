// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

//go:generate sh -c "go run gen.go | gofmt > vtab.go"

// A version describes metadata associated with a version.
type version struct {
	words     int   // total codewords
	remainder int   // remainder bits
	align     []int // alignment pattern centre coordinates
	level     [4]level
}

// A level describes the blocks of a version at an error correction
// level.
type level struct {
	check   int // check codewords per block
	nblock1 int // blocks in group 1
	ndata1  int // data codewords per group 1 block
	nblock2 int // blocks in group 2, holding ndata1+1 data codewords
}

// countLength lists lengths of the character count field in the
// three QR version size classes, indexed by Mode.
var countLength = [Kanji + 1][3]int{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
}
