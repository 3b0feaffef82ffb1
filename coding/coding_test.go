// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionTable(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		require.Equal(t, int(v)*4+17, v.Size())
		for l := L; l <= H; l++ {
			lay := v.Layout(l)
			require.Positive(t, lay.Group1, "%d-%s", v, l)
			// data + check codewords fill the symbol
			require.Equal(t, v.Words(),
				lay.DataBytes()+lay.Blocks()*lay.Check, "%d-%s", v, l)
			require.Equal(t, lay.DataBytes(), v.DataBytes(l))
			require.Equal(t, v.DataBytes(l)*8, v.DataBits(l))
			if l > L {
				require.Less(t, v.DataBytes(l), v.DataBytes(l-1),
					"%d-%s", v, l)
			}
		}
		if v > MinVersion {
			require.Greater(t, v.Words(), (v - 1).Words())
		}
		a := v.Alignment()
		if v == 1 {
			require.Nil(t, a)
			continue
		}
		require.Equal(t, 6, a[0])
		require.Equal(t, v.Size()-7, a[len(a)-1])
		require.Len(t, a, int(v)/7+2)
	}
}

func TestLayout(t *testing.T) {
	assert.Equal(t, Layout{Check: 10, Group1: 1, Data1: 16}, Version(1).Layout(M))
	assert.Equal(t, Layout{Check: 18, Group1: 2, Data1: 15, Group2: 2},
		Version(5).Layout(Q))
	assert.Equal(t, Layout{Check: 30, Group1: 20, Data1: 15, Group2: 61},
		Version(40).Layout(H))
	assert.Equal(t, 81, Version(40).Blocks(H))
	assert.Equal(t, 4, Version(5).Blocks(Q))
	assert.Equal(t, 9, Version(1).DataBytes(H))
	assert.Equal(t, 19, Version(1).DataBytes(L))
	assert.Equal(t, 2956, Version(40).DataBytes(L))
	assert.Equal(t, 1276, Version(40).DataBytes(H))
	assert.Equal(t, 7, Version(2).Remainder())
	assert.Equal(t, 3, Version(14).Remainder())
	assert.Equal(t, 0, Version(40).Remainder())
}

func TestSizeClass(t *testing.T) {
	for _, tt := range []struct {
		v     Version
		class int
	}{
		{1, Class0}, {9, Class0}, {10, Class1}, {26, Class1},
		{27, Class2}, {40, Class2},
	} {
		assert.Equal(t, tt.class, tt.v.SizeClass(), "version %d", tt.v)
	}
	assert.True(t, Version(40).IsValid())
	assert.False(t, Version(0).IsValid())
	assert.False(t, Version(41).IsValid())
}

func TestLevel(t *testing.T) {
	for i, s := range []string{"L", "M", "Q", "H"} {
		l, err := ParseLevel(s)
		require.NoError(t, err)
		require.Equal(t, Level(i), l)
		require.Equal(t, s, l.String())
	}
	l, err := ParseLevel("q")
	require.NoError(t, err)
	require.Equal(t, Q, l)
	_, err = ParseLevel("x")
	require.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Equal(t, "7", Level(7).String())
	assert.False(t, Level(-1).IsValid())
}
