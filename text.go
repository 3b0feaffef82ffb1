// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrenc

import (
	"io"
	"strings"
)

// pixel reports whether the module at (x,y), counting from the upper
// left corner of the quiet zone, is drawn.  Past the bottom edge
// nothing is drawn.
func (c *Code) pixel(x, y int) bool {
	if y >= c.Size+2*c.Border {
		return false
	}
	return c.Black(x-c.Border, y-c.Border) != c.Reverse
}

// halfBlocks maps the drawn state of an upper and a lower module to
// a character.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// String returns the code drawn with Unicode half block characters,
// two rows of modules per line, including the quiet zone.
func (c *Code) String() string {
	pix := c.Size + 2*c.Border
	var b strings.Builder
	b.Grow((pix*len("█") + 1) * (pix + 1) / 2)
	for y := 0; y < pix; y += 2 {
		for x := 0; x < pix; x++ {
			i := 0
			if c.pixel(x, y) {
				i |= 2
			}
			if c.pixel(x, y+1) {
				i |= 1
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ascii returns the code drawn with two characters per module, '#'
// for drawn and ' ' for blank, including the quiet zone.
func (c *Code) ascii() []byte {
	pix := c.Size + 2*c.Border
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := 0; y < pix; y++ {
		for x := 0; x < pix; x++ {
			var p byte = ' '
			if c.pixel(x, y) {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	return b
}

// EncodeText writes the code to w as text: in ASCII if ascii is set,
// otherwise as returned by String.
func (c *Code) EncodeText(w io.Writer, ascii bool) error {
	if c.Border < 0 {
		return ErrInvalidParameter
	}
	var err error
	if ascii {
		_, err = w.Write(c.ascii())
	} else {
		_, err = io.WriteString(w, c.String())
	}
	return err
}
