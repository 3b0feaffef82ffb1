// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an MSB-first bit writer holding the data codewords of a
// QR code under construction.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, v.Words())}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Len returns the number of bits written.
func (b *Bits) Len() int { return b.nbit }

// Bytes returns the written bytes.  Bytes panics unless a whole
// number of bytes has been written.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v, most significant first.
// nbit must not exceed 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Pad adds up to four terminator bits to b without exceeding the
// capacity of version v at level l, fills the last byte with zero
// bits and appends the alternating pad codewords 0xec and 0x11 up
// to the capacity.  Pad panics if b holds more than the capacity.
func (b *Bits) Pad(v Version, l Level) {
	n := v.DataBits(l)
	if b.nbit > n {
		panic("qr: too much data")
	}
	b.nbit = min(b.nbit+4, n)
	b.nbit = (b.nbit + 7) &^ 7
	for len(b.b) < b.nbit>>3 {
		b.b = append(b.b, 0)
	}
	for pad := byte(0xec); len(b.b) < n>>3; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
	}
	b.nbit = len(b.b) * 8
}
