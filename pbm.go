// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrenc

import (
	"bufio"
	"fmt"
	"io"
)

// EncodePBM writes a Portable Bit Map (P4) image displaying the code
// to w, for use with netpbm.  The image has c.Scale pixels per module
// and a quiet zone of c.Border modules.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return fmt.Errorf("%w: scale %d, border %d", ErrInvalidParameter,
			c.Scale, c.Border)
	}
	side := c.Size + 2*c.Border
	pix := side * c.Scale
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "P4\n%d %d\n", pix, pix)

	// Each module row is packed once and written Scale times.
	p := newBitPacker(pix)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		p.reset()
		for x := -c.Border; x < c.Size+c.Border; x++ {
			p.put(c.Black(x, y) != c.Reverse, c.Scale)
		}
		for i := 0; i < c.Scale; i++ {
			b.Write(p.buf)
		}
	}
	// bufio.Writer keeps the first write error.
	return b.Flush()
}

// bitPacker packs a row of pixels into bytes, most significant bit
// first, 1 for black.  Unused low bits of the last byte stay 0.
type bitPacker struct {
	buf []byte
	n   int // pixels packed
}

func newBitPacker(width int) *bitPacker {
	return &bitPacker{buf: make([]byte, (width+7)/8)}
}

func (p *bitPacker) reset() {
	clear(p.buf)
	p.n = 0
}

// put appends n pixels of the same colour.
func (p *bitPacker) put(black bool, n int) {
	if !black {
		p.n += n
		return
	}
	for ; n > 0 && p.n&7 != 0; n-- {
		p.buf[p.n>>3] |= 0x80 >> (p.n & 7)
		p.n++
	}
	for ; n >= 8; n -= 8 {
		p.buf[p.n>>3] = 0xff
		p.n += 8
	}
	for ; n > 0; n-- {
		p.buf[p.n>>3] |= 0x80 >> (p.n & 7)
		p.n++
	}
}
