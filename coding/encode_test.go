// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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
	sym, err := Encode(1, M, Segment{"HELLO WORLD", Alphanumeric})
	require.NoError(t, err)
	assert.Equal(t, Version(1), sym.Version)
	assert.Equal(t, M, sym.Level)
	assert.Equal(t, 0, sym.Mask)
	assert.Equal(t, [NumMasks]Penalty{
		{191, 159, 800, 0},
		{198, 195, 880, 0},
		{217, 183, 840, 0},
		{218, 219, 840, 0},
		{204, 201, 880, 0},
		{208, 198, 920, 0},
		{206, 192, 960, 0},
		{180, 168, 880, 0},
	}, sym.Scores)
	// Masked flags don't show in String.
	assert.Equal(t, helloWorld, sym.Matrix.String())
}

func TestEncoderCodewords(t *testing.T) {
	e, err := NewEncoder(1, H)
	require.NoError(t, err)
	require.NoError(t, e.Write(Segment{"01234567", Numeric}))
	words, err := e.Codewords()
	require.NoError(t, err)
	require.Len(t, words, 26)
	assert.Equal(t, []byte{
		0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11, 0xec,
	}, words[:9])

	e.Reset()
	sym, err := e.Encode(Segment{"01234567", Numeric})
	require.NoError(t, err)
	assert.Equal(t, 6, sym.Mask)
	assert.Equal(t, 1273, sym.Scores[6].Total())
}

func TestEncodeMultipleSegments(t *testing.T) {
	e, err := NewEncoder(2, L)
	require.NoError(t, err)
	require.NoError(t, e.Write(
		Segment{"ABC", Alphanumeric},
		Segment{"123", Numeric},
		Segment{"点", Kanji},
		Segment{"xyz", Byte},
	))
	assert.Equal(t, 4+9+17+4+10+10+4+8+13+4+8+24, e.b.Len())
	sym, err := e.Code()
	require.NoError(t, err)
	assert.Equal(t, 25, sym.Matrix.Size)
	// The format information matches the chosen mask.
	fb := FormatBits(L, sym.Mask)
	for i := 0; i < formatLen; i++ {
		x1, y1, x2, y2 := formatPos(25, i)
		require.Equal(t, fb>>i&1 != 0, sym.Matrix.Black(x1, y1))
		require.Equal(t, fb>>i&1 != 0, sym.Matrix.Black(x2, y2))
	}
}

func TestEncodeVersion7(t *testing.T) {
	sym, err := Encode(7, Q, Segment{strings.Repeat("QR CODE ", 10), Alphanumeric})
	require.NoError(t, err)
	m := sym.Matrix
	vb := VersionBits(7)
	for i := 0; i < versionLen; i++ {
		require.Equal(t, vb>>i&1 != 0, m.Black(i/3, 34+i%3), "bit %d", i)
		require.Equal(t, vb>>i&1 != 0, m.Black(34+i%3, i/3), "bit %d", i)
	}
	// Same input, same symbol, whatever the worker count.
	e, err := NewEncoder(7, Q)
	require.NoError(t, err)
	e.Workers = 1
	sym1, err := e.Encode(Segment{strings.Repeat("QR CODE ", 10), Alphanumeric})
	require.NoError(t, err)
	assert.Equal(t, sym, sym1)
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(1, H, Segment{"01234567890123456", Numeric})
	require.NoError(t, err)
	_, err = Encode(1, H, Segment{"012345678901234567", Numeric})
	require.True(t, errors.Is(err, ErrCapacityExceeded))

	_, err = Encode(1, M, Segment{"hello", Alphanumeric})
	var ce *CharacterError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 'h', ce.Rune)
	assert.Equal(t, 0, ce.Offset)

	_, err = NewEncoder(1, Level(4))
	require.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = NewEncoder(0, L)
	require.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = Encode(41, L)
	require.True(t, errors.Is(err, ErrInvalidParameter))
}
