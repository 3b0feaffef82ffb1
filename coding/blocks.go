// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrenc/gf256"

// Interleave splits the data codewords into the error correction
// blocks of version v at level l, computes the check codewords of
// each block and returns all codewords in symbol order: the data
// codewords of all blocks interleaved by index, followed by the
// check codewords interleaved the same way.  Group 2 blocks, being
// one codeword longer, alone contribute the last data index.
//
// Interleave panics if len(data) is not the data capacity.
func Interleave(v Version, l Level, data []byte) []byte {
	lay := v.Layout(l)
	if len(data) != lay.DataBytes() {
		panic("qr: wrong data length")
	}
	nblock := lay.Blocks()
	blocks := make([][]byte, nblock)
	check := make([]byte, nblock*lay.Check)
	rs := gf256.NewRSEncoder(Field, lay.Check)
	for i := range blocks {
		n := lay.Data1
		if i >= lay.Group1 {
			n++
		}
		blocks[i], data = data[:n], data[n:]
		rs.ECC(blocks[i], check[i*lay.Check:(i+1)*lay.Check])
	}

	dst := make([]byte, 0, v.Words())
	for j := 0; j <= lay.Data1; j++ {
		for _, b := range blocks {
			if j < len(b) {
				dst = append(dst, b[j])
			}
		}
	}
	for j := 0; j < lay.Check; j++ {
		for i := 0; i < nblock; i++ {
			dst = append(dst, check[i*lay.Check+j])
		}
	}
	if len(dst) != v.Words() {
		panic("qr: internal error")
	}
	return dst
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0, yielding the remainder bits.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
