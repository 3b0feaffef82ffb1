// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrenc

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrenc/coding"
)

// HELLO WORLD at level M, mask 0; R and X are dark format and data
// modules.
const helloWorld = `#######.r_X_X.#######
#.....#.RXX__.#.....#
#.###.#.r_X_X.#.###.#
#.###.#.r_X_X.#.###.#
#.###.#.R_XXX.#.###.#
#.....#.rXXX_.#.....#
#######.#.#.#.#######
........r____........
RrRrRr#rrX__XrrrRrrRr
_XXXX_._X__X____X___X
___XXX#XXX_X__X_XX___
XXXX_X.XX__XXX_X_XXX_
_X__XX#X_X_X__XXX_X_X
........#_X___X___X_X
#######.r___X__X_XX__
#.....#.rXX___XX_X___
#.###.#.RX__X_XXXXXXX
#.###.#.r_XX_X_X___X_
#.###.#.RXXX_XXX_X__X
#.....#.r__XXX___X_XX
#######.RX_X_XXX____X
`

func TestEncodeHelloWorld(t *testing.T) {
	c, err := Encode("HELLO WORLD", M)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(1), c.Version)
	assert.Equal(t, M, c.Level)
	assert.Equal(t, Alphanumeric, c.Mode)
	assert.Equal(t, 0, c.Mask)
	assert.Equal(t, coding.Penalty{Runs: 191, Boxes: 159, Finders: 800},
		c.Penalty)
	assert.Equal(t, 21, c.Size)
	assert.Equal(t, helloWorld, c.Matrix.String())

	rows := strings.Split(helloWorld, "\n")
	bools := c.Bools()
	require.Len(t, bools, 21)
	for y, row := range bools {
		for x, dark := range row {
			want := strings.IndexByte("#RX", rows[y][x]) >= 0
			require.Equal(t, want, dark, "(%d,%d)", x, y)
			require.Equal(t, want, c.Black(x, y), "(%d,%d)", x, y)
		}
	}
	assert.False(t, c.Black(-1, 0))
	assert.False(t, c.Black(0, 21))
}

func TestEncodeOptions(t *testing.T) {
	for _, tt := range []struct {
		name    string
		opt     Options
		text    string
		level   Level
		version coding.Version
		mode    Mode
	}{
		{"numeric", Options{}, "01234567", H, 1, Numeric},
		{"empty", Options{}, "", L, 1, Numeric},
		{"kanji", Options{}, "点茗", H, 1, Kanji},
		{"mixed kanji", Options{}, "点a", H, 1, Byte},
		{"lower case", Options{}, "hello, world", Q, 2, Byte},
		{"forced byte", Options{Mode: Byte}, "HELLO WORLD", M, 1, Byte},
		{"forced version", Options{Version: 5}, "HELLO", L, 5, Alphanumeric},
		{"long", Options{}, strings.Repeat("9", 7089), L, 40, Numeric},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.opt.Encode(tt.text, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.version, c.Version)
			assert.Equal(t, tt.mode, c.Mode)
			assert.Equal(t, tt.level, c.Level)
			assert.Equal(t, tt.version.Size(), c.Size)
			assert.Equal(t, c.Matrix.Size, c.Size)
		})
	}

	c, err := Encode("01234567", H)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Mask)
}

func TestEncodeErrors(t *testing.T) {
	for _, tt := range []struct {
		name  string
		opt   Options
		text  string
		level Level
		err   error
	}{
		{"level", Options{}, "1", Level(4), ErrInvalidParameter},
		{"negative level", Options{}, "1", Level(-1), ErrInvalidParameter},
		{"mode", Options{Mode: Mode(5)}, "1", L, ErrInvalidParameter},
		{"version", Options{Version: 41}, "1", L, ErrInvalidParameter},
		{"negative version", Options{Version: -1}, "1", L, ErrInvalidParameter},
		{"character", Options{Mode: Numeric}, "12a", L, ErrUnsupportedCharacter},
		{"kanji", Options{Mode: Kanji}, "点a", L, ErrUnsupportedCharacter},
		{"too long", Options{}, strings.Repeat("a", 2954), L, ErrCapacityExceeded},
		{"too long at H", Options{}, strings.Repeat("9", 3058), H, ErrCapacityExceeded},
		{"version too small", Options{Version: 1},
			strings.Repeat("A", 30), H, ErrCapacityExceeded},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.opt.Encode(tt.text, tt.level)
			require.Nil(t, c)
			require.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}

	_, err := Options{Mode: Numeric}.Encode("12a", L)
	var ce *CharacterError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, &CharacterError{Mode: Numeric, Rune: 'a', Offset: 2}, ce)
}

func TestEncodeWorkers(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)
	c1, err := Options{Workers: 1}.Encode(text, Q)
	require.NoError(t, err)
	c8, err := Options{Workers: 8}.Encode(text, Q)
	require.NoError(t, err)
	assert.Equal(t, c1, c8)
}

// tiny returns a 3×3 code:
//
//	#.#
//	.#.
//	###
func tiny() *Code {
	return &Code{
		Bitmap: []byte{0xa0, 0x40, 0xe0},
		Size:   3,
		Stride: 1,
		Scale:  2,
		Border: 1,
	}
}

func TestImage(t *testing.T) {
	c := tiny()
	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
	assert.Equal(t, color.GrayModel, img.ColorModel())
	for _, tt := range []struct {
		x, y  int
		black bool
	}{
		{0, 0, false}, {1, 1, false},
		{2, 2, true}, {3, 3, true},
		{4, 2, false}, {6, 2, true},
		{4, 4, true}, {5, 5, true},
		{2, 6, true}, {7, 7, true},
		{8, 8, false}, {9, 2, false},
	} {
		want := color.Color(color.Gray{0xff})
		if tt.black {
			want = color.Gray{0}
		}
		assert.Equal(t, want, img.At(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
	c.Reverse = true
	assert.Equal(t, color.Color(color.Gray{0}), img.At(0, 0))
	assert.Equal(t, color.Color(color.Gray{0xff}), img.At(2, 2))
}
