// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrenc encodes QR codes.

Text is encoded in a single segment, in the narrowest mode that can
represent all of it, in the smallest version that fits at the given
error correction level.  The result is a square grid of modules with
renderers for images, PBM and text.
*/
package qrenc // import "github.com/unixdj/qrenc"

import (
	"fmt"
	"image"
	"image/color"

	"github.com/unixdj/qrenc/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 7% recoverable
	M = coding.M // 15% recoverable
	Q = coding.Q // 25% recoverable
	H = coding.H // 30% recoverable
)

// A Mode is a QR segment encoding mode.
type Mode = coding.Mode

const (
	Numeric      = coding.Numeric
	Alphanumeric = coding.Alphanumeric
	Byte         = coding.Byte
	Kanji        = coding.Kanji
)

var (
	ErrCapacityExceeded     = coding.ErrCapacityExceeded
	ErrUnsupportedCharacter = coding.ErrUnsupportedCharacter
	ErrInvalidParameter     = coding.ErrInvalidParameter
)

// CharacterError reports a character that the forced mode cannot
// encode.
type CharacterError = coding.CharacterError

// Defaults for Code rendering.
const (
	DefaultScale  = 8
	DefaultBorder = 4
)

// Options controls encoding.  The zero Options selects the mode and
// version automatically.
type Options struct {
	Mode    Mode           // encoding mode; 0: narrowest that fits the text
	Version coding.Version // QR version; 0: smallest that fits the data

	// Workers limits the number of goroutines scoring masks.
	// If Workers <= 0, runtime.GOMAXPROCS(0) is used.
	Workers int
}

// Encode returns an encoding of text at the given error correction
// level, choosing the mode and version automatically.
func Encode(text string, level Level) (*Code, error) {
	return Options{}.Encode(text, level)
}

// Encode returns an encoding of text at the given error correction
// level according to o.
func (o Options) Encode(text string, level Level) (*Code, error) {
	if !level.IsValid() {
		return nil, fmt.Errorf("%w: level %d", ErrInvalidParameter, level)
	}
	if o.Mode != 0 && !o.Mode.IsValid() {
		return nil, fmt.Errorf("%w: mode %d", ErrInvalidParameter, o.Mode)
	}
	if o.Version != 0 && !o.Version.IsValid() {
		return nil, fmt.Errorf("%w: version %d", ErrInvalidParameter,
			o.Version)
	}

	seg := coding.Segment{Text: text, Mode: o.Mode}
	if seg.Mode == 0 {
		seg.Mode = Classify(text)
	} else if err := seg.Validate(); err != nil {
		return nil, err
	}

	v := o.Version
	if v == 0 {
		var err error
		if v, err = ResolveVersion(seg.Mode, level, seg.Count()); err != nil {
			return nil, err
		}
	} else if n, nb := seg.EncodedLength(v.SizeClass()), v.DataBits(level); n > nb {
		return nil, fmt.Errorf("%w: cannot encode %d bits into %d-bit code",
			ErrCapacityExceeded, n, nb)
	}

	e, err := coding.NewEncoder(v, level)
	if err != nil {
		return nil, err
	}
	e.Workers = o.Workers
	sym, err := e.Encode(seg)
	if err != nil {
		return nil, err
	}
	return newCode(sym, seg.Mode), nil
}

// A Code is a square grid of modules.
// It implements image.Image and PBM and text encoding.
type Code struct {
	Version coding.Version // QR version
	Level   Level          // error correction level
	Mode    Mode           // encoding mode of the text
	Mask    int            // mask pattern applied
	Penalty coding.Penalty // penalty of the applied mask
	Matrix  *coding.Matrix // modules with their kinds

	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of modules on a side
	Stride int    // number of bytes per row

	Scale   int  // number of image pixels per module
	Border  int  // quiet zone width in modules
	Reverse bool // swap black and white
}

func newCode(sym *coding.Symbol, mode Mode) *Code {
	siz := sym.Matrix.Size
	stride := (siz + 7) >> 3
	c := &Code{
		Version: sym.Version,
		Level:   sym.Level,
		Mode:    mode,
		Mask:    sym.Mask,
		Penalty: sym.Scores[sym.Mask],
		Matrix:  sym.Matrix,
		Bitmap:  make([]byte, siz*stride),
		Size:    siz,
		Stride:  stride,
		Scale:   DefaultScale,
		Border:  DefaultBorder,
	}
	for y := 0; y < siz; y++ {
		row := c.Bitmap[y*stride:]
		for x := 0; x < siz; x++ {
			if sym.Matrix.At(x, y).IsDark() {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// Black returns true if the module at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// Bools returns the modules as rows of columns, true for black.
func (c *Code) Bools() [][]bool {
	b := make([][]bool, c.Size)
	for y := range b {
		b[y] = make([]bool, c.Size)
		for x := range b[y] {
			b[y][x] = c.Black(x, y)
		}
	}
	return b
}

// isValid reports whether the rendering parameters are usable.
func (c *Code) isValid() bool {
	const maxSide = 1 << 16
	return c.Scale > 0 && c.Border >= 0 &&
		(c.Size+2*c.Border) <= maxSide/c.Scale
}

// Image returns an Image displaying the code, with c.Scale pixels
// per module and a quiet zone of c.Border modules.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
